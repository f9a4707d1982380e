package terrain

import (
	"math"
	"runtime"
	"sync"

	"github.com/sundjerbob/ww3-sub001/internal/profiling"
)

// Streamer generates chunk meshes in the background around a focus
// position. Generation is embarrassingly parallel across chunks, so a
// small worker pool drains a job channel while the store's idempotent
// Generate keeps duplicate work harmless.
type Streamer struct {
	jobs      chan ChunkCoord
	pending   map[ChunkCoord]struct{}
	pendingMu sync.Mutex

	maxPending     int
	maxJobsPerCall int

	store *Store
	wg    sync.WaitGroup
}

// NewStreamer starts NumCPU workers draining the generation queue.
func NewStreamer(store *Store) *Streamer {
	st := &Streamer{
		jobs:           make(chan ChunkCoord, 1024),
		pending:        make(map[ChunkCoord]struct{}),
		maxPending:     4096,
		maxJobsPerCall: 512,
		store:          store,
	}

	workers := max(runtime.NumCPU(), 1)
	for i := 0; i < workers; i++ {
		st.wg.Add(1)
		go st.worker()
	}
	return st
}

// Close stops the workers and waits for in-flight builds to finish.
func (st *Streamer) Close() {
	close(st.jobs)
	st.wg.Wait()
}

func (st *Streamer) worker() {
	defer st.wg.Done()
	for coord := range st.jobs {
		st.store.Generate(coord.X, coord.Z)
		st.pendingMu.Lock()
		delete(st.pending, coord)
		st.pendingMu.Unlock()
	}
}

// GenerateAroundSync builds every chunk within radius (in chunks) of the
// world position on the calling goroutine.
func (st *Streamer) GenerateAroundSync(worldX, worldZ float64, radius int) {
	defer profiling.Track("terrain.GenerateAroundSync")()
	cx, cz := st.centerChunk(worldX, worldZ)
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			st.store.Generate(cx+int32(dx), cz+int32(dz))
		}
	}
}

// StreamAround queues chunks within radius of the world position for
// background generation, nearest ring first so geometry close to the
// focus appears before the horizon fills in.
func (st *Streamer) StreamAround(worldX, worldZ float64, radius int) {
	defer profiling.Track("terrain.StreamAround")()
	cx, cz := st.centerChunk(worldX, worldZ)

	jobsPushed := 0
	for r := 0; r <= radius; r++ {
		if jobsPushed >= st.maxJobsPerCall {
			return
		}
		if r == 0 {
			if st.request(ChunkCoord{X: cx, Z: cz}) {
				jobsPushed++
			}
			continue
		}

		x0, x1 := cx-int32(r), cx+int32(r)
		z0, z1 := cz-int32(r), cz+int32(r)

		for x := x0; x <= x1; x++ {
			if st.request(ChunkCoord{X: x, Z: z0}) {
				jobsPushed++
			}
			if st.request(ChunkCoord{X: x, Z: z1}) {
				jobsPushed++
			}
			if jobsPushed >= st.maxJobsPerCall {
				return
			}
		}
		for z := z0 + 1; z <= z1-1; z++ {
			if st.request(ChunkCoord{X: x0, Z: z}) {
				jobsPushed++
			}
			if st.request(ChunkCoord{X: x1, Z: z}) {
				jobsPushed++
			}
			if jobsPushed >= st.maxJobsPerCall {
				return
			}
		}
	}
}

// PendingCount returns the number of queued-but-unbuilt chunks.
func (st *Streamer) PendingCount() int {
	st.pendingMu.Lock()
	defer st.pendingMu.Unlock()
	return len(st.pending)
}

func (st *Streamer) centerChunk(worldX, worldZ float64) (int32, int32) {
	size := st.store.ChunkParams().ChunkSize
	return int32(math.Floor(worldX / size)), int32(math.Floor(worldZ / size))
}

// request enqueues a chunk unless it is already built, already pending,
// or the queue is saturated. Returns true if enqueued.
func (st *Streamer) request(coord ChunkCoord) bool {
	if st.store.IsGenerated(coord.X, coord.Z) {
		return false
	}

	st.pendingMu.Lock()
	if _, ok := st.pending[coord]; ok {
		st.pendingMu.Unlock()
		return false
	}
	if st.maxPending > 0 && len(st.pending) >= st.maxPending {
		st.pendingMu.Unlock()
		return false
	}
	st.pending[coord] = struct{}{}
	st.pendingMu.Unlock()

	select {
	case st.jobs <- coord:
		return true
	default:
		// Queue full: roll back the reservation.
		st.pendingMu.Lock()
		delete(st.pending, coord)
		st.pendingMu.Unlock()
		return false
	}
}
