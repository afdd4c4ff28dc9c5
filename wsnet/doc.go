// Package wsnet binds the session contract to golang.org/x/net/websocket.
//
// Server is an http.Handler that upgrades incoming requests into sessions
// registered on a shared open-session registry, so broadcasts from any
// session reach every peer on the endpoint. Dialer produces client sessions
// whose Broadcast degenerates to Send.
//
// Server example:
//
//	srv := &wsnet.Server{
//	    OnMessage: func(sess session.Session, data []byte) {
//	        session.Broadcast(sess, string(data), codec.TextPlain, nil).
//	            Subscribe(context.Background(), session.Subscriber{})
//	    },
//	}
//	http.Handle("/ws", srv)
//
// Client example:
//
//	sess, err := wsnet.Dial("ws://localhost:8080/ws")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	err = session.SendSync(ctx, sess, "hello", codec.TextPlain)
//
// Each session runs a single writer goroutine draining an unbounded FIFO
// queue, so per-connection completion order matches submission order and the
// asynchronous send forms never block the caller.
//
// The underlying transport does not expose WebSocket close codes: a
// CloseReason passed to CloseWith reaches local OnClose observers, while the
// peer sees a plain close frame, and a peer-initiated close surfaces as
// NoStatusReceived.
package wsnet
