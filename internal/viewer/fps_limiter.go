package viewer

import "time"

// FPSLimiter provides high-precision frame pacing.
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter caps the frame rate at limit fps; limit <= 0 disables
// pacing entirely.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait blocks until the next frame is due. Uses a hybrid sleep/spin
// approach: coarse sleep first, then a short busy-wait for precision at
// high caps.
func (f *FPSLimiter) Wait() {
	if f.limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(f.limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Resync after a hitch so the limiter does not chase lost frames.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
