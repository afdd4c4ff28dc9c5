package session

import (
	"context"
	"sync"
)

// Future is a single-shot asynchronous result handle. It resolves exactly
// once, with either a message value or an error, and is safe for concurrent
// use by any number of resolvers and waiters.
type Future struct {
	once sync.Once
	done chan struct{}
	msg  any
	err  error
}

// NewFuture returns an unresolved future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// CompletedFuture returns a future already resolved with message.
func CompletedFuture(message any) *Future {
	f := NewFuture()
	f.Complete(message)
	return f
}

// FailedFuture returns a future already resolved with err.
func FailedFuture(err error) *Future {
	f := NewFuture()
	f.Fail(err)
	return f
}

// Complete resolves the future with message. It reports whether this call
// resolved it; a future already resolved is left untouched.
func (f *Future) Complete(message any) bool {
	return f.resolve(message, nil)
}

// Fail resolves the future with err. It reports whether this call resolved
// it; a future already resolved is left untouched.
func (f *Future) Fail(err error) bool {
	return f.resolve(nil, err)
}

// Cancel resolves the future with ErrCanceled, releasing all waiters. The
// underlying operation is not undone; messages already dispatched stay
// dispatched. Cancel reports whether this call resolved the future.
func (f *Future) Cancel() bool {
	return f.resolve(nil, ErrCanceled)
}

func (f *Future) resolve(msg any, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.msg = msg
		f.err = err
		close(f.done)
		resolved = true
	})
	return resolved
}

// Done returns a channel closed when the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolution of the future. It must only be called after
// Done has been closed.
func (f *Future) Result() (any, error) {
	return f.msg, f.err
}

// Wait blocks until the future resolves or ctx is done, whichever happens
// first, and returns the outcome. When ctx ends the wait, Wait returns
// context.Cause(ctx); the future itself stays pending.
func (f *Future) Wait(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.msg, f.err
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	}
}
