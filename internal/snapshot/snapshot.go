// Package snapshot holds the atomically-swappable view of the active route
// configuration.
//
// A Snapshot is an immutable point-in-time value built whole from a parsed
// config: the groups, the flattened keyword index derived from them, the
// default route, and the public address. The Store publishes snapshots with a
// single pointer swap, so any number of concurrent readers observe either the
// old value or the new one, never a torn mix, and never block. A reader that
// holds a snapshot across a long computation keeps seeing a fully consistent
// view.
package snapshot

import (
	"sync/atomic"

	"github.com/conneroisu/hop/internal/routes"
)

// Snapshot is an immutable point-in-time view of the full route
// configuration. Snapshots are never mutated in place; reload builds a new
// one and publishes it whole.
type Snapshot struct {
	PublicAddress string
	DefaultRoute  string
	Groups        []routes.Group
	// Routes is the flattened keyword index, always derived from Groups
	// via routes.Flatten.
	Routes map[string]routes.Route
}

// New builds a snapshot from grouped routes, deriving the flattened keyword
// index. The index and groups are always built together so they cannot
// diverge.
func New(publicAddress, defaultRoute string, groups []routes.Group) *Snapshot {
	return &Snapshot{
		PublicAddress: publicAddress,
		DefaultRoute:  defaultRoute,
		Groups:        groups,
		Routes:        routes.Flatten(groups),
	}
}

// Store holds the currently active snapshot behind an atomic pointer.
// Publish and Current are both non-blocking; concurrent publishers are
// serialized by the atomic swap itself, last one wins.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store with an initial snapshot.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Publish installs snap as the current snapshot. It never blocks readers;
// a previously returned snapshot stays valid for any reader still holding
// it.
func (s *Store) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

// Current returns the latest published snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}
