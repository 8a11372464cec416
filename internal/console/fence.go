package console

import "sync/atomic"

// Fence hands out increasing tokens for one kind of request. Only the
// response to the most recently issued token may be applied.
type Fence struct {
	latest atomic.Uint64
}

func (f *Fence) Next() uint64 {
	return f.latest.Add(1)
}

func (f *Fence) Current(token uint64) bool {
	return f.latest.Load() == token
}
