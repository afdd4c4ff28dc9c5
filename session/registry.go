package session

import "sync"

// Registry tracks the open sessions sharing one endpoint scope. It backs
// the OpenSessions view of server sessions: the transport adds a session
// after a successful handshake and removes it when its close completes.
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	sessions map[string]Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Add registers s under its ID, replacing any session with the same ID.
func (r *Registry) Add(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID()]; !ok {
		r.order = append(r.order, s.ID())
	}
	r.sessions[s.ID()] = s
}

// Remove deregisters the session with the given ID.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return
	}
	delete(r.sessions, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the session registered under id and whether it exists.
func (r *Registry) Get(id string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// OpenSessions returns a snapshot of the registered sessions that are open
// at the time of the call, in registration order. A session concurrently
// closing may still appear; sends to it fail that session's leg only.
func (r *Registry) OpenSessions() []Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	open := make([]Session, 0, len(r.order))
	for _, id := range r.order {
		if s := r.sessions[id]; s != nil && s.IsOpen() {
			open = append(open, s)
		}
	}
	return open
}
