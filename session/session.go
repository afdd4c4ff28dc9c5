package session

import (
	"net/url"

	"github.com/vitalvas/wsession/codec"
)

// Principal identifies the authenticated user a session was opened for.
type Principal interface {
	Name() string
}

// Filter selects the peer sessions a broadcast targets.
type Filter func(Session) bool

// AcceptAll matches every session. It is the filter substituted when a
// caller passes nil.
func AcceptAll(Session) bool { return true }

// Exclude returns a filter matching every session except the given one,
// compared by ID. Useful for rebroadcasting a message to everyone but its
// sender.
func Exclude(s Session) Filter {
	id := s.ID()
	return func(peer Session) bool {
		return peer.ID() != id
	}
}

// Session is one open logical WebSocket connection.
//
// Implementations are created and owned by a transport layer; this package
// never constructs or destroys sessions. Send, SendAsync, and Broadcast are
// the mandatory primitives every other operation derives from; they are
// called with an explicit media type and (for Broadcast) a non-nil filter —
// the package-level functions of this package perform all defaulting before
// reaching them. Each call to any of the three is an independent
// transmission.
//
// All methods must be safe for concurrent use.
type Session interface {
	// ID returns the opaque unique identifier assigned when the session
	// was opened. It never changes.
	ID() string

	// Attributes returns the session's mutable attribute store. The Set
	// and Get methods operate on the same store, so the session itself is
	// directly usable as a key/value container.
	Attributes() *Attributes

	// Set stores an attribute value, equivalent to Attributes().Set.
	Set(name string, value any)

	// Get retrieves an attribute value, equivalent to Attributes().Get.
	Get(name string) (any, bool)

	// IsOpen reports whether the session is open. It is true from creation
	// until a close completes and permanently false afterwards.
	IsOpen() bool

	// IsSecure reports whether the underlying transport is encrypted.
	IsSecure() bool

	// OpenSessions returns the sessions currently open in this session's
	// scope: on a server, every peer sharing the endpoint (including this
	// session); on a client, just this session. The result is a snapshot
	// of a live view — sessions closed at the time of the call are never
	// included.
	OpenSessions() []Session

	// RequestURI returns the URI the session was opened under.
	RequestURI() *url.URL

	// ProtocolVersion returns the negotiated WebSocket protocol version.
	ProtocolVersion() string

	// Subprotocol returns the negotiated subprotocol, or "" when none was.
	Subprotocol() string

	// RequestParameters returns the query parameters of the opening
	// request. The result may be empty and must not be modified.
	RequestParameters() url.Values

	// URIVariables returns path variables matched while routing the
	// opening request. The result may be empty and must not be modified.
	URIVariables() map[string]string

	// UserPrincipal returns the authenticated principal the session was
	// opened for, or nil when unauthenticated.
	UserPrincipal() Principal

	// Send transmits message to the remote peer, encoded by the codec
	// registered for mediaType. The returned Publisher is cold: each
	// subscription performs one transmission and then emits the original
	// message followed by completion, or completes with the encoding or
	// transport failure.
	Send(message any, mediaType codec.MediaType) Publisher

	// SendAsync transmits message to the remote peer, encoded by the codec
	// registered for mediaType. The transmission starts immediately; the
	// returned future resolves with the original message on acknowledgment
	// or with the encoding or transport failure.
	SendAsync(message any, mediaType codec.MediaType) *Future

	// Broadcast transmits message to every session in OpenSessions
	// matched by filter, this session included unless filtered out. On a
	// client session it behaves exactly like Send. The returned Publisher
	// is cold; each subscription performs the fan-out, completing
	// successfully only when every selected peer's send succeeded and
	// otherwise with the first failure. One peer's failure does not
	// disturb another peer's send.
	Broadcast(message any, mediaType codec.MediaType, filter Filter) Publisher

	// Close closes the session with NormalClosure. Closing an already
	// closed session is a no-op and never fails.
	Close() error

	// CloseWith closes the session, conveying reason to the peer when the
	// transport supports it. Closing an already closed session is a no-op
	// and never fails.
	CloseWith(reason CloseReason) error
}
