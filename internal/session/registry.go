package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/rpc"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

// slot is a map entry: either a pending reservation or an open handle.
type slot struct {
	handle *Handle
}

func (s *slot) pending() bool { return s.handle == nil }

// Config carries the shared, immutable collaborators of a [Registry].
type Config struct {
	NetworkID     string
	ForcedNodeURL string
	RPC           rpc.NodeClient
	Resolver      *rpc.Resolver
	Storage       store.WalletRepository
}

// Registry is the process-wide map of open sessions. It is created once at
// startup and passed to whoever needs it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*slot

	networkID     string
	forcedNodeURL string
	rpc           rpc.NodeClient
	resolver      *rpc.Resolver
	storage       store.WalletRepository
}

// NewRegistry returns an empty registry.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		sessions:      make(map[string]*slot),
		networkID:     cfg.NetworkID,
		forcedNodeURL: cfg.ForcedNodeURL,
		rpc:           cfg.RPC,
		resolver:      cfg.Resolver,
		storage:       cfg.Storage,
	}
}

// Exists reports whether an open session is registered for identifier.
func (r *Registry) Exists(identifier string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[identifier]
	return ok && !s.pending()
}

// Get returns the open session of identifier.
func (r *Registry) Get(identifier string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[identifier]
	if !ok || s.pending() {
		return nil, false
	}
	return s.handle, true
}

// Insert registers h for identifier, replacing any entry, and returns h.
func (r *Registry) Insert(identifier string, h *Handle) *Handle {
	r.mu.Lock()
	r.sessions[identifier] = &slot{handle: h}
	r.mu.Unlock()
	return h
}

// Remove unregisters and returns the open session of identifier. The
// wallet is not closed; that is the caller's job. A pending reservation is
// left alone.
func (r *Registry) Remove(identifier string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[identifier]
	if !ok || s.pending() {
		return nil, false
	}
	delete(r.sessions, identifier)
	return s.handle, true
}

// RemoveIdle unregisters h if it is still the open session of its
// identifier and was not touched after deadline.
func (r *Registry) RemoveIdle(h *Handle, deadline time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[h.Identifier()]
	if !ok || s.handle != h || !h.LastUsed().Before(deadline) {
		return false
	}
	delete(r.sessions, h.Identifier())
	return true
}

// Restore registers h again unless its identifier was taken meanwhile.
func (r *Registry) Restore(h *Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[h.Identifier()]; ok {
		return false
	}
	r.sessions[h.Identifier()] = &slot{handle: h}
	return true
}

// Drain unregisters every open session and returns the handles. Pending
// reservations stay in place. Used at shutdown; the caller closes the
// handles.
func (r *Registry) Drain() []*Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Handle, 0, len(r.sessions))
	for id, s := range r.sessions {
		if s.pending() {
			continue
		}
		out = append(out, s.handle)
		delete(r.sessions, id)
	}
	return out
}

// Reserve claims identifier for a command that will build a session.
// It fails with ErrSessionExists when a session is open and with
// ErrSessionBusy when another reservation is held.
func (r *Registry) Reserve(identifier string) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[identifier]; ok {
		if s.pending() {
			return nil, ErrSessionBusy
		}
		return nil, ErrSessionExists
	}

	s := &slot{}
	r.sessions[identifier] = s
	return &Reservation{registry: r, identifier: identifier, slot: s}, nil
}

// ReserveOpen is Reserve for commands that act on an open session too
// (destroy): the open handle is taken out of the registry and returned
// together with the reservation, so no other command can reach it.
func (r *Registry) ReserveOpen(identifier string) (*Reservation, *Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var h *Handle
	if s, ok := r.sessions[identifier]; ok {
		if s.pending() {
			return nil, nil, ErrSessionBusy
		}
		h = s.handle
	}

	s := &slot{}
	r.sessions[identifier] = s
	return &Reservation{registry: r, identifier: identifier, slot: s}, h, nil
}

// Storage returns the storage backend.
func (r *Registry) Storage() (store.WalletRepository, error) {
	if r.storage == nil {
		return nil, ErrStorageNotConfigured
	}
	return r.storage, nil
}

// RPC returns the shared node client. The registry never closes it.
func (r *Registry) RPC() rpc.NodeClient { return r.rpc }

// Resolver returns the node resolver shared by all sessions.
func (r *Registry) Resolver() *rpc.Resolver { return r.resolver }

// NetworkID returns the configured network name.
func (r *Registry) NetworkID() string { return r.networkID }

// ForcedNodeURL returns the node override or "".
func (r *Registry) ForcedNodeURL() string { return r.forcedNodeURL }

// Snapshot returns the open handles at the time of the call.
func (r *Registry) Snapshot() []*Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Handle, 0, len(r.sessions))
	for _, s := range r.sessions {
		if !s.pending() {
			out = append(out, s.handle)
		}
	}
	return out
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range r.sessions {
		if !s.pending() {
			n++
		}
	}
	return n
}

// Reservation is a claim on an identifier returned by Reserve. Exactly one
// of Commit or Release takes effect; later calls are no-ops.
type Reservation struct {
	registry   *Registry
	identifier string
	slot       *slot
	once       sync.Once
}

// Identifier returns the reserved identifier.
func (res *Reservation) Identifier() string { return res.identifier }

// Commit registers h in place of the reservation and returns it.
func (res *Reservation) Commit(h *Handle) *Handle {
	res.once.Do(func() {
		r := res.registry
		r.mu.Lock()
		defer r.mu.Unlock()

		if r.sessions[res.identifier] == res.slot {
			res.slot.handle = h
		} else {
			r.sessions[res.identifier] = &slot{handle: h}
		}
	})
	return h
}

// Release drops the reservation if it is still in place.
func (res *Reservation) Release() {
	res.once.Do(func() {
		r := res.registry
		r.mu.Lock()
		defer r.mu.Unlock()

		if r.sessions[res.identifier] == res.slot {
			delete(r.sessions, res.identifier)
		}
	})
}
