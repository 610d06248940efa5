package server

import (
	"net/http"

	"github.com/conneroisu/hop/internal/executor"
	"github.com/conneroisu/hop/internal/routes"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.index.Execute(w, struct{ Hostname string }{snap.PublicAddress}); err != nil {
		s.logger.Error(r.Context(), err, "rendering index page")
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.list.Execute(w, struct{ Groups []routes.Group }{snap.Groups}); err != nil {
		s.logger.Error(r.Context(), err, "rendering route listing")
	}
}

func (s *Server) handleOpenSearch(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	w.Header().Set("Content-Type", "application/opensearchdescription+xml")
	if err := s.templates.opensearch.Execute(w, struct{ Hostname string }{snap.PublicAddress}); err != nil {
		s.logger.Error(r.Context(), err, "rendering opensearch descriptor")
	}
}

// handleHop resolves the "to" query parameter against the current snapshot
// and either redirects or returns a computed body.
func (s *Server) handleHop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("to")
	snap := s.store.Current()

	resolution, ok := routes.Resolve(query, snap.Routes, snap.DefaultRoute)
	if !ok {
		s.logger.Debug(ctx, "query did not resolve", "query", query)
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	route := resolution.Route
	s.logger.Debug(ctx, "query resolved",
		"route", route.String(),
		"args", resolution.Args)

	var destination string
	switch route.Kind {
	case routes.KindInternal:
		action, err := s.executor.Run(route.Path, resolution.Args)
		if err != nil {
			s.logger.Error(ctx, err, "route program failed", "route", route.String())
			http.Error(w, "Something went wrong :(", http.StatusInternalServerError)
			return
		}
		if action.Type == executor.ActionBody {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(action.Value))
			return
		}
		destination = action.Value
	case routes.KindExternal:
		destination = route.Path
	}

	rendered, err := renderDestination(destination, resolution.Args)
	if err != nil {
		s.logger.Error(ctx, err, "rendering redirect target", "route", route.String())
		http.Error(w, "Something went wrong :(", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, rendered, http.StatusFound)
}
