// Package session defines the contract for an open WebSocket session and the
// operations derived from it.
//
// A Session is one live, bidirectional, message-oriented connection together
// with its identity metadata and a mutable attribute store. The transport
// layer (see the wsnet package for one binding) creates sessions and owns
// their I/O; this package only specifies what a session must provide and
// builds every calling convention on top of that minimal surface.
//
// # Primitives and derived forms
//
// Implementations supply three primitives: Send (a cold Publisher whose each
// subscription performs one transmission), SendAsync (a single-shot Future),
// and Broadcast (a cold Publisher fanning the message out to every open peer
// matched by a filter). Everything else is composition. The package-level
// functions Send, SendAsync, SendSync, Broadcast, BroadcastAsync, and
// BroadcastSync fill in defaults (codec.Default for a zero media type, an
// accept-all filter for nil) and adapt between the producer, future, and
// blocking conventions without introducing new side effects:
//
//	// fire-and-forget, default media type
//	session.Send(sess, msg).Subscribe(ctx, session.Subscriber{})
//
//	// future
//	fut := session.SendAsync(sess, msg)
//	_, err := fut.Wait(ctx)
//
//	// blocking, explicit media type and filter
//	err := session.BroadcastSync(ctx, sess, msg, codec.TextPlain, filter)
//
// The blocking forms translate failure in exactly two ways: cancellation of
// the waiting context becomes an interruption *Error, and failure of the
// underlying operation becomes a failure *Error wrapping the cause.
//
// # Broadcast semantics
//
// A broadcast succeeds only when every selected peer's send succeeds. One
// peer's failure never cancels another peer's in-flight send; the aggregate
// outcome carries the first failure encountered. A filter selecting no open
// peers completes trivially. On a client session, where no peer set exists,
// Broadcast behaves exactly like Send.
//
// # Concurrency
//
// Sessions, registries, futures, and attribute stores are safe for
// concurrent use. Only SendSync and BroadcastSync block the calling
// goroutine; producer and future forms never do.
package session
