package session

import (
	"context"

	"github.com/vitalvas/wsession/codec"
)

// This file derives every calling convention from the three session
// primitives. Defaulting happens here and nowhere else: a zero media type
// resolves to codec.Default, a nil filter to AcceptAll. Each function is a
// pure adapter over Session.Send, Session.SendAsync, or Session.Broadcast
// with the defaults substituted, so shorthand calls behave identically to
// their fully specified forms.

func resolveMediaType(mediaType codec.MediaType) codec.MediaType {
	if mediaType == "" {
		return codec.Default
	}
	return mediaType
}

func resolveFilter(filter Filter) Filter {
	if filter == nil {
		return AcceptAll
	}
	return filter
}

// Send returns the producer form of a send. A zero mediaType selects
// codec.Default. Transmission happens per subscription.
func Send(s Session, message any, mediaType codec.MediaType) Publisher {
	return s.Send(message, resolveMediaType(mediaType))
}

// SendAsync starts a send and returns its future. A zero mediaType selects
// codec.Default.
func SendAsync(s Session, message any, mediaType codec.MediaType) *Future {
	return s.SendAsync(message, resolveMediaType(mediaType))
}

// SendSync sends message and blocks until the transmission is acknowledged,
// ctx is done, or the send fails. A zero mediaType selects codec.Default.
// The only two failure translations are: ctx ending the wait, reported as a
// *Error interruption; and the send itself failing, reported as a *Error
// wrapping the cause.
func SendSync(ctx context.Context, s Session, message any, mediaType codec.MediaType) error {
	return await(ctx, "send", SendAsync(s, message, mediaType))
}

// Broadcast returns the producer form of a broadcast. A zero mediaType
// selects codec.Default and a nil filter matches every open session.
// Fan-out happens per subscription.
func Broadcast(s Session, message any, mediaType codec.MediaType, filter Filter) Publisher {
	return s.Broadcast(message, resolveMediaType(mediaType), resolveFilter(filter))
}

// BroadcastAsync starts a broadcast and returns a future that resolves with
// message once every selected peer acknowledged, or with the first failure.
// A zero mediaType selects codec.Default and a nil filter matches every
// open session.
func BroadcastAsync(s Session, message any, mediaType codec.MediaType, filter Filter) *Future {
	return ToFuture(Broadcast(s, message, mediaType, filter), message)
}

// BroadcastSync broadcasts message and blocks until every selected peer
// acknowledged, ctx is done, or a leg fails. Defaults and failure
// translations match SendSync.
func BroadcastSync(ctx context.Context, s Session, message any, mediaType codec.MediaType, filter Filter) error {
	return await(ctx, "broadcast", BroadcastAsync(s, message, mediaType, filter))
}

// await blocks on fut and performs the two permitted failure translations
// for the blocking forms.
func await(ctx context.Context, op string, fut *Future) error {
	select {
	case <-ctx.Done():
		return newInterruptedError(op, context.Cause(ctx))
	case <-fut.Done():
		if _, err := fut.Result(); err != nil {
			return newFailureError(op, err)
		}
		return nil
	}
}
