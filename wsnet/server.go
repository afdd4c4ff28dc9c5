package wsnet

import (
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/vitalvas/wsession/codec"
	"github.com/vitalvas/wsession/session"
)

func newSessionID() string {
	return uuid.NewString()
}

// Server upgrades HTTP requests into WebSocket sessions sharing one
// open-session registry. The zero value is a working server using
// codec.DefaultRegistry and accepting any handshake.
type Server struct {
	// Codecs resolves media types for outbound messages. Nil selects
	// codec.DefaultRegistry.
	Codecs *codec.Registry

	// Subprotocols lists supported subprotocols in preference order. The
	// first one the client also offers is negotiated; with no overlap (or
	// an empty list) no subprotocol is negotiated.
	Subprotocols []string

	// Handshake, when set, can reject the upgrade by returning an error.
	// Origin checks belong here.
	Handshake func(config *websocket.Config, req *http.Request) error

	// URIVariables, when set, supplies the path variables exposed through
	// Session.URIVariables, typically from the router that matched the
	// request.
	URIVariables func(req *http.Request) map[string]string

	// Principal, when set, resolves the authenticated principal exposed
	// through Session.UserPrincipal.
	Principal func(req *http.Request) session.Principal

	// OnOpen is invoked after a session is registered.
	OnOpen func(sess session.Session)

	// OnMessage is invoked with the payload of every received data frame.
	OnMessage func(sess session.Session, data []byte)

	// OnClose is invoked once after a session closed, locally or by the
	// peer.
	OnClose func(sess session.Session, reason session.CloseReason)

	once     sync.Once
	registry *session.Registry
}

func (srv *Server) init() {
	srv.once.Do(func() {
		srv.registry = session.NewRegistry()
	})
}

// Sessions returns the registry of sessions open on this server.
func (srv *Server) Sessions() *session.Registry {
	srv.init()
	return srv.registry
}

func (srv *Server) codecs() *codec.Registry {
	if srv.Codecs != nil {
		return srv.Codecs
	}
	return codec.DefaultRegistry
}

// ServeHTTP implements http.Handler by upgrading the request and serving
// the session until it closes.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.init()
	ws := websocket.Server{
		Handshake: srv.handshake,
		Handler:   srv.handle,
	}
	ws.ServeHTTP(w, r)
}

func (srv *Server) handshake(config *websocket.Config, req *http.Request) error {
	if srv.Handshake != nil {
		if err := srv.Handshake(config, req); err != nil {
			return err
		}
	}
	config.Protocol = negotiate(srv.Subprotocols, config.Protocol)
	return nil
}

// negotiate picks the first supported subprotocol the client offered. The
// result holds at most one entry, as the accept handshake requires.
func negotiate(supported, offered []string) []string {
	for _, proto := range supported {
		if slices.Contains(offered, proto) {
			return []string{proto}
		}
	}
	return nil
}

// handle runs for the lifetime of one connection.
func (srv *Server) handle(conn *websocket.Conn) {
	req := conn.Request()
	config := conn.Config()

	sess := newSession(conn, srv.codecs(), srv.registry)
	sess.requestURI = req.URL
	sess.params = req.URL.Query()
	sess.secure = req.TLS != nil
	sess.version = strconv.Itoa(config.Version)
	if len(config.Protocol) > 0 {
		sess.subprotocol = config.Protocol[0]
	}
	if srv.URIVariables != nil {
		sess.vars = srv.URIVariables(req)
	}
	if srv.Principal != nil {
		sess.principal = srv.Principal(req)
	}

	srv.registry.Add(sess)
	if srv.OnOpen != nil {
		srv.OnOpen(sess)
	}

	sess.readLoop(srv.OnMessage, srv.OnClose)
}
