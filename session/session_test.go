package session

import (
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalvas/wsession/codec"
)

// fakeSession implements Session entirely in memory, recording every
// transmission. It mirrors the structure transport bindings use: SendAsync
// is the native primitive, Send wraps it in a cold publisher, Broadcast
// fans out over a registry (or degenerates to Send without one).
type fakeSession struct {
	id       string
	attrs    *Attributes
	open     atomic.Bool
	secure   bool
	registry *Registry

	mu      sync.Mutex
	sent    []sentMessage
	sendErr error
}

type sentMessage struct {
	message   any
	mediaType codec.MediaType
}

func newFakeSession(id string, registry *Registry) *fakeSession {
	s := &fakeSession{
		id:       id,
		attrs:    NewAttributes(),
		registry: registry,
	}
	s.open.Store(true)
	if registry != nil {
		registry.Add(s)
	}
	return s
}

func (s *fakeSession) failSends(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendErr = err
}

func (s *fakeSession) sentMessages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sent...)
}

func (s *fakeSession) ID() string                      { return s.id }
func (s *fakeSession) Attributes() *Attributes         { return s.attrs }
func (s *fakeSession) Set(name string, value any)      { s.attrs.Set(name, value) }
func (s *fakeSession) Get(name string) (any, bool)     { return s.attrs.Get(name) }
func (s *fakeSession) IsOpen() bool                    { return s.open.Load() }
func (s *fakeSession) IsSecure() bool                  { return s.secure }
func (s *fakeSession) RequestURI() *url.URL            { return &url.URL{Path: "/ws"} }
func (s *fakeSession) ProtocolVersion() string         { return "13" }
func (s *fakeSession) Subprotocol() string             { return "" }
func (s *fakeSession) RequestParameters() url.Values   { return nil }
func (s *fakeSession) URIVariables() map[string]string { return nil }
func (s *fakeSession) UserPrincipal() Principal        { return nil }

func (s *fakeSession) OpenSessions() []Session {
	if s.registry == nil {
		if s.IsOpen() {
			return []Session{s}
		}
		return nil
	}
	return s.registry.OpenSessions()
}

func (s *fakeSession) SendAsync(message any, mediaType codec.MediaType) *Future {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open.Load() {
		return FailedFuture(ErrSessionClosed)
	}
	if s.sendErr != nil {
		return FailedFuture(s.sendErr)
	}
	s.sent = append(s.sent, sentMessage{message: message, mediaType: mediaType})
	return CompletedFuture(message)
}

func (s *fakeSession) Send(message any, mediaType codec.MediaType) Publisher {
	return FuturePublisher(func() *Future {
		return s.SendAsync(message, mediaType)
	})
}

func (s *fakeSession) Broadcast(message any, mediaType codec.MediaType, filter Filter) Publisher {
	if s.registry == nil {
		return s.Send(message, mediaType)
	}
	return FuturePublisher(func() *Future {
		return FanOut(s.registry.OpenSessions(), message, mediaType, filter)
	})
}

func (s *fakeSession) Close() error {
	return s.CloseWith(NormalClosure)
}

func (s *fakeSession) CloseWith(CloseReason) error {
	if s.open.CompareAndSwap(true, false) && s.registry != nil {
		s.registry.Remove(s.id)
	}
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	reg := NewRegistry()
	s := newFakeSession("a", reg)

	assert.True(t, s.IsOpen())
	assert.Len(t, s.OpenSessions(), 1)

	assert.NoError(t, s.Close())
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.OpenSessions())

	// closing again is a no-op
	assert.NoError(t, s.Close())
	assert.NoError(t, s.CloseWith(GoingAway))
	assert.False(t, s.IsOpen())
}

func TestSessionAsAttributeContainer(t *testing.T) {
	s := newFakeSession("a", nil)

	s.Set("user", "alice")
	v, ok := s.Get("user")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	// the session's own surface and the dedicated accessor share one store
	got, ok := s.Attributes().String("user")
	assert.True(t, ok)
	assert.Equal(t, "alice", got)
}

func TestExcludeFilter(t *testing.T) {
	reg := NewRegistry()
	a := newFakeSession("a", reg)
	b := newFakeSession("b", reg)

	filter := Exclude(a)
	assert.False(t, filter(a))
	assert.True(t, filter(b))
	assert.True(t, AcceptAll(a))
}
