package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/nkravets/statuswatch/internal/state"
)

// Server exposes the current health state, read-only. The target set is
// fixed per process, so there are no mutation endpoints.
type Server struct {
	Logger *zap.Logger
	States state.Store
}

func NewServer(l *zap.Logger, st state.Store) *Server {
	return &Server{Logger: l, States: st}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/status", s.handleStatus)

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.States.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.Logger.Warn("status_encode_error", zap.Error(err))
	}
}
