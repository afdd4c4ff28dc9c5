package session

import "context"

// Subscriber receives the emissions of a Publisher. Either callback may be
// nil, in which case that notification is dropped.
type Subscriber struct {
	// OnNext is invoked with the message once it has been transmitted.
	OnNext func(message any)

	// OnDone is invoked exactly once when the operation finishes: with nil
	// on success, with the failure otherwise.
	OnDone func(err error)
}

func (s Subscriber) next(message any) {
	if s.OnNext != nil {
		s.OnNext(message)
	}
}

func (s Subscriber) finish(err error) {
	if s.OnDone != nil {
		s.OnDone(err)
	}
}

// Publisher is a cold, single-message producer: no work happens until
// Subscribe, and every subscription performs its own independent
// transmission. Subscribe returns without blocking; the subscriber's
// callbacks fire from another goroutine once the operation resolves or ctx
// is done.
type Publisher interface {
	Subscribe(ctx context.Context, sub Subscriber)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, sub Subscriber)

func (f PublisherFunc) Subscribe(ctx context.Context, sub Subscriber) {
	f(ctx, sub)
}

// FuturePublisher builds a cold Publisher from a future-producing start
// function. Each subscription calls start, then relays the future's outcome:
// the message through OnNext followed by OnDone(nil) on success, OnDone(err)
// on failure. When ctx ends first, the subscription completes with
// context.Cause(ctx) and stops observing the future.
func FuturePublisher(start func() *Future) Publisher {
	return PublisherFunc(func(ctx context.Context, sub Subscriber) {
		fut := start()
		go func() {
			select {
			case <-fut.Done():
				msg, err := fut.Result()
				if err != nil {
					sub.finish(err)
					return
				}
				sub.next(msg)
				sub.finish(nil)
			case <-ctx.Done():
				sub.finish(context.Cause(ctx))
			}
		}()
	})
}

// ToFuture subscribes to p and resolves the returned future when the
// subscription completes: with message on normal completion, or with the
// encountered failure. Intermediate emissions are discarded; callers chain
// on "my message went out", not on per-peer results.
func ToFuture(p Publisher, message any) *Future {
	fut := NewFuture()
	p.Subscribe(context.Background(), Subscriber{
		OnDone: func(err error) {
			if err != nil {
				fut.Fail(err)
				return
			}
			fut.Complete(message)
		},
	})
	return fut
}
