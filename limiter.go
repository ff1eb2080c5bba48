package parallax

import "context"

// Limiter caps the number of API calls a client has in flight.
//
// A nil *Limiter never blocks.
type Limiter struct {
	sem chan struct{}
}

// NewLimiter returns a limiter allowing maxConcurrent calls, or nil when
// maxConcurrent is not positive.
func NewLimiter(maxConcurrent int) *Limiter {
	if maxConcurrent <= 0 {
		return nil
	}
	return &Limiter{sem: make(chan struct{}, maxConcurrent)}
}

// Acquire blocks until a slot is free or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l == nil {
		return nil
	}
	select {
	case l.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) Release() {
	if l == nil {
		return
	}
	<-l.sem
}
