package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	roleassignment "hexclan/contexts/event-management/role-assignment-service"
	_ "hexclan/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	roles  roleassignment.Module
}

func New(roles roleassignment.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		roles:  roles,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/v1/events/{event_id}/roles", s.handleListMembers)
	s.mux.HandleFunc("POST /api/v1/events/{event_id}/roles", s.handleAttachRole)
	s.mux.HandleFunc("PUT /api/v1/events/{event_id}/roles/{user_id}", s.handleUpdateRole)
	s.mux.HandleFunc("PATCH /api/v1/events/{event_id}/roles/{user_id}", s.handleUpdateRole)
	s.mux.HandleFunc("DELETE /api/v1/events/{event_id}/roles/{user_id}", s.handleDetachRole)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
