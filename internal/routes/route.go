// Package routes defines the route model and the query resolution engine.
//
// A Route maps a keyword to either an external redirect template or a local
// executable. Routes are grouped for presentation; resolution happens against
// a flattened keyword index built from the groups in configured order.
package routes

import (
	"fmt"
	"os"

	"github.com/conneroisu/hop/internal/errors"
)

// Kind classifies a route target.
type Kind int

const (
	// KindExternal is a redirect-template string, possibly containing a
	// {{query}} placeholder.
	KindExternal Kind = iota
	// KindInternal is a filesystem path to an executable.
	KindInternal
)

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindExternal:
		return "external"
	case KindInternal:
		return "local"
	default:
		return "unknown"
	}
}

// Route is a single keyword's resolution target with its argument-count
// constraints.
type Route struct {
	Kind        Kind
	Path        string
	Hidden      bool
	Description string
	MinArgs     *uint
	MaxArgs     *uint
}

// Group is a named, orderable collection of routes. Keywords are unique
// within a group but not across groups.
type Group struct {
	Name        string
	Description string
	Hidden      bool
	Routes      map[string]Route
}

// ClassifyKind decides whether a path string names a local executable or an
// external redirect target by probing the filesystem. This is a one-time,
// best-effort classification hint taken at config-parse time, not a safety
// property: a file that appears or disappears later reclassifies on the next
// reload.
func ClassifyKind(path string) Kind {
	if _, err := os.Stat(path); err == nil {
		return KindInternal
	}
	return KindExternal
}

// Validate checks the route's argument-count constraints for consistency.
func (r Route) Validate() error {
	if r.MinArgs != nil && r.MaxArgs != nil && *r.MinArgs > *r.MaxArgs {
		return errors.NewValidationError(fmt.Sprintf(
			"route %q: min_args (%d) exceeds max_args (%d)",
			r.Path, *r.MinArgs, *r.MaxArgs,
		))
	}
	return nil
}

// AcceptsArgCount reports whether n satisfies the route's argument-count
// constraints. An absent bound is unconstrained on that side; both bounds
// are inclusive.
func (r Route) AcceptsArgCount(n int) bool {
	if r.MinArgs != nil && uint(n) < *r.MinArgs {
		return false
	}
	if r.MaxArgs != nil && uint(n) > *r.MaxArgs {
		return false
	}
	return true
}

// String returns a short description of the route for logging.
func (r Route) String() string {
	return fmt.Sprintf("%s (%s)", r.Kind, r.Path)
}
