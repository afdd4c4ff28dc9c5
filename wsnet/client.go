package wsnet

import (
	"crypto/tls"
	"net/http"
	"strconv"

	"golang.org/x/net/websocket"

	"github.com/vitalvas/wsession/codec"
	"github.com/vitalvas/wsession/session"
)

const defaultOrigin = "http://localhost/"

// Dialer opens client sessions. The zero value uses codec.DefaultRegistry
// and a localhost origin.
type Dialer struct {
	// Codecs resolves media types for outbound messages. Nil selects
	// codec.DefaultRegistry.
	Codecs *codec.Registry

	// Subprotocols lists the subprotocols to request, in preference order.
	Subprotocols []string

	// Origin is the origin sent during the handshake. Empty selects
	// "http://localhost/".
	Origin string

	// TLSConfig configures wss connections.
	TLSConfig *tls.Config

	// Header holds extra handshake request headers.
	Header http.Header

	// OnMessage is invoked with the payload of every received data frame.
	OnMessage func(sess session.Session, data []byte)

	// OnClose is invoked once after the session closed, locally or by the
	// server.
	OnClose func(sess session.Session, reason session.CloseReason)
}

// Dial opens a session to the given ws:// or wss:// URL using a zero
// Dialer.
func Dial(url string) (session.Session, error) {
	return new(Dialer).Dial(url)
}

// Dial opens a session to the given ws:// or wss:// URL. The returned
// session is its own peer set: OpenSessions contains only itself and
// Broadcast behaves exactly like Send.
func (d *Dialer) Dial(url string) (session.Session, error) {
	origin := d.Origin
	if origin == "" {
		origin = defaultOrigin
	}

	config, err := websocket.NewConfig(url, origin)
	if err != nil {
		return nil, err
	}
	config.Protocol = d.Subprotocols
	if d.TLSConfig != nil {
		config.TlsConfig = d.TLSConfig
	}
	if d.Header != nil {
		config.Header = d.Header
	}

	conn, err := websocket.DialConfig(config)
	if err != nil {
		return nil, err
	}

	codecs := d.Codecs
	if codecs == nil {
		codecs = codec.DefaultRegistry
	}

	sess := newSession(conn, codecs, nil)
	sess.requestURI = config.Location
	sess.params = config.Location.Query()
	sess.secure = config.Location.Scheme == "wss"
	sess.version = strconv.Itoa(config.Version)
	if len(config.Protocol) > 0 {
		sess.subprotocol = config.Protocol[0]
	}

	go sess.readLoop(d.OnMessage, d.OnClose)
	return sess, nil
}
