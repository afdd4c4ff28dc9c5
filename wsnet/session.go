package wsnet

import (
	"errors"
	"io"
	"net"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
	"golang.org/x/net/websocket"

	"github.com/vitalvas/wsession/codec"
	"github.com/vitalvas/wsession/session"
)

// outbound is one queued transmission awaiting the writer goroutine.
type outbound struct {
	fut       *session.Future
	message   any
	mediaType codec.MediaType
}

// wsSession implements session.Session over a *websocket.Conn. Server
// sessions carry the endpoint's registry; client sessions have peers == nil
// and are their own peer set.
type wsSession struct {
	id     string
	attrs  *session.Attributes
	conn   *websocket.Conn
	codecs *codec.Registry
	peers  *session.Registry

	requestURI  *url.URL
	params      url.Values
	vars        map[string]string
	principal   session.Principal
	secure      bool
	subprotocol string
	version     string

	open      atomic.Bool
	closeOnce sync.Once
	reasonVal atomic.Value // session.CloseReason

	mu     sync.Mutex
	out    *queue.Queue
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

func newSession(conn *websocket.Conn, codecs *codec.Registry, peers *session.Registry) *wsSession {
	s := &wsSession{
		id:     newSessionID(),
		attrs:  session.NewAttributes(),
		conn:   conn,
		codecs: codecs,
		peers:  peers,
		out:    queue.New(),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.open.Store(true)
	go s.writeLoop()
	return s
}

func (s *wsSession) ID() string                      { return s.id }
func (s *wsSession) Attributes() *session.Attributes { return s.attrs }
func (s *wsSession) Set(name string, value any)      { s.attrs.Set(name, value) }
func (s *wsSession) Get(name string) (any, bool)     { return s.attrs.Get(name) }
func (s *wsSession) IsOpen() bool                    { return s.open.Load() }
func (s *wsSession) IsSecure() bool                  { return s.secure }
func (s *wsSession) RequestURI() *url.URL            { return s.requestURI }
func (s *wsSession) ProtocolVersion() string         { return s.version }
func (s *wsSession) Subprotocol() string             { return s.subprotocol }
func (s *wsSession) RequestParameters() url.Values   { return s.params }
func (s *wsSession) URIVariables() map[string]string { return s.vars }
func (s *wsSession) UserPrincipal() session.Principal {
	return s.principal
}

func (s *wsSession) OpenSessions() []session.Session {
	if s.peers == nil {
		if s.IsOpen() {
			return []session.Session{s}
		}
		return nil
	}
	return s.peers.OpenSessions()
}

func (s *wsSession) Send(message any, mediaType codec.MediaType) session.Publisher {
	return session.FuturePublisher(func() *session.Future {
		return s.SendAsync(message, mediaType)
	})
}

func (s *wsSession) SendAsync(message any, mediaType codec.MediaType) *session.Future {
	fut := session.NewFuture()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fut.Fail(session.ErrSessionClosed)
		return fut
	}
	s.out.Add(outbound{fut: fut, message: message, mediaType: mediaType})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return fut
}

func (s *wsSession) Broadcast(message any, mediaType codec.MediaType, filter session.Filter) session.Publisher {
	if s.peers == nil {
		// a client has exactly one peer: the server
		return s.Send(message, mediaType)
	}
	return session.FuturePublisher(func() *session.Future {
		return session.FanOut(s.peers.OpenSessions(), message, mediaType, filter)
	})
}

func (s *wsSession) Close() error {
	return s.CloseWith(session.NormalClosure)
}

func (s *wsSession) CloseWith(reason session.CloseReason) error {
	var err error
	s.closeOnce.Do(func() {
		err = s.shutdown(reason)
	})
	return err
}

// shutdown runs at most once. It flips the session to closed, deregisters
// it, fails every queued transmission, and closes the connection.
func (s *wsSession) shutdown(reason session.CloseReason) error {
	s.reasonVal.Store(reason)
	s.open.Store(false)
	if s.peers != nil {
		s.peers.Remove(s.id)
	}

	s.mu.Lock()
	s.closed = true
	for s.out.Length() > 0 {
		ob := s.out.Remove().(outbound)
		ob.fut.Fail(session.ErrSessionClosed)
	}
	s.mu.Unlock()
	close(s.done)

	return s.conn.Close()
}

// closedReason returns the reason recorded by the close that won.
func (s *wsSession) closedReason() session.CloseReason {
	if v := s.reasonVal.Load(); v != nil {
		return v.(session.CloseReason)
	}
	return session.NoStatusReceived
}

// writeLoop is the single writer: it drains the outbound queue in FIFO
// order so completion order matches submission order per connection.
func (s *wsSession) writeLoop() {
	for {
		s.mu.Lock()
		if s.out.Length() == 0 {
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return
			}
			select {
			case <-s.wake:
			case <-s.done:
			}
			continue
		}
		ob := s.out.Remove().(outbound)
		s.mu.Unlock()
		s.transmit(ob)
	}
}

// transmit resolves the codec, encodes, and writes one message. Nothing is
// written when codec resolution or encoding fails.
func (s *wsSession) transmit(ob outbound) {
	c, err := s.codecs.Lookup(ob.mediaType)
	if err != nil {
		ob.fut.Fail(err)
		return
	}
	data, err := c.Encode(ob.message)
	if err != nil {
		ob.fut.Fail(err)
		return
	}
	if ob.mediaType.IsBinary() {
		err = websocket.Message.Send(s.conn, data)
	} else {
		err = websocket.Message.Send(s.conn, string(data))
	}
	if err != nil {
		ob.fut.Fail(err)
		return
	}
	ob.fut.Complete(ob.message)
}

// readLoop receives frames until the connection ends, forwarding payloads
// to onMessage. The terminating error is mapped to a CloseReason: a clean
// peer close surfaces as NoStatusReceived (the transport hides close
// codes), anything else as AbnormalClosure. A locally initiated close keeps
// its original reason.
func (s *wsSession) readLoop(onMessage func(session.Session, []byte), onClose func(session.Session, session.CloseReason)) {
	for {
		var data []byte
		if err := websocket.Message.Receive(s.conn, &data); err != nil {
			reason := session.AbnormalClosure
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				reason = session.NoStatusReceived
			}
			_ = s.CloseWith(reason)
			if onClose != nil {
				onClose(s, s.closedReason())
			}
			return
		}
		if onMessage != nil {
			onMessage(s, data)
		}
	}
}
