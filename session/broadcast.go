package session

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vitalvas/wsession/codec"
)

// FanOut delivers message to every session in peers accepted by filter,
// reusing each peer's SendAsync, and returns a future aggregating the
// outcome: it completes with message only when every selected leg
// succeeded, and otherwise fails with the first failure encountered.
//
// Sessions that are no longer open are skipped; a selection of zero peers
// completes trivially. Legs run concurrently and independently — a plain
// errgroup.Group carries no shared cancellation, so one peer's failure
// never tears down another's in-flight send. A nil filter accepts every
// peer.
//
// Transport-backed Broadcast implementations are expected to wrap FanOut
// over their registry's open-session snapshot.
func FanOut(peers []Session, message any, mediaType codec.MediaType, filter Filter) *Future {
	if filter == nil {
		filter = AcceptAll
	}

	targets := make([]Session, 0, len(peers))
	for _, peer := range peers {
		if peer.IsOpen() && filter(peer) {
			targets = append(targets, peer)
		}
	}

	fut := NewFuture()
	if len(targets) == 0 {
		fut.Complete(message)
		return fut
	}

	var group errgroup.Group
	for _, peer := range targets {
		peer := peer
		group.Go(func() error {
			_, err := peer.SendAsync(message, mediaType).Wait(context.Background())
			return err
		})
	}

	go func() {
		if err := group.Wait(); err != nil {
			fut.Fail(err)
			return
		}
		fut.Complete(message)
	}()

	return fut
}
