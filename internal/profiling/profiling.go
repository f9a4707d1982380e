package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Cheap cumulative timing for the generation pipeline. Totals accumulate
// until Reset; the viewer resets once per frame.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track records the elapsed time under name when the returned func runs.
// Usage: defer profiling.Track("terrain.Generate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears all accumulated totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, largest first.
func TopN(n int) string {
	snap := Snapshot()
	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, float64(list[i].dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}
