package tui

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Connection describes one live SSH visitor.
type Connection struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// ConnectionRegistry tracks live connections. Safe for concurrent use.
// A limit of zero means unlimited.
type ConnectionRegistry struct {
	mu    sync.RWMutex
	conns map[string]Connection
	limit int
}

// NewConnectionRegistry creates an empty registry.
func NewConnectionRegistry(limit int) *ConnectionRegistry {
	return &ConnectionRegistry{
		conns: make(map[string]Connection),
		limit: max(limit, 0),
	}
}

// Open admits a connection. ok is false when the registry is full.
func (r *ConnectionRegistry) Open(user, remote string) (conn Connection, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.conns) >= r.limit {
		return Connection{}, false
	}
	conn = Connection{
		ID:      uuid.NewString(),
		User:    user,
		Remote:  remote,
		Started: time.Now(),
	}
	r.conns[conn.ID] = conn
	return conn, true
}

// Close removes a connection. Unknown IDs are ignored.
func (r *ConnectionRegistry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, id)
}

// Count returns the number of live connections.
func (r *ConnectionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// List returns live connections, oldest first.
func (r *ConnectionRegistry) List() []Connection {
	r.mu.RLock()
	out := make([]Connection, 0, len(r.conns))
	for _, c := range r.conns {
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}
