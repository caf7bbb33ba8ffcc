// Package api is the local HTTP bridge between a chat host and the tracker.
// GET endpoints are public (read-only status).
// POST endpoints require a bearer token and feed messages or commands.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/reprotrack/internal/persistence"
	"github.com/talgya/reprotrack/internal/settings"
	"github.com/talgya/reprotrack/internal/tracker"
)

// RollLog is the journal read side.
type RollLog interface {
	RecentRolls(ctx context.Context, chatID string, limit int) ([]persistence.Roll, error)
}

// Server serves tracker state over HTTP.
type Server struct {
	Tracker  *tracker.Tracker
	Rolls    RollLog // nil disables /rolls
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	// Roll limiter; NewServer sets 60 rolls per minute per IP.
	Limiter *RateLimiter
}

// NewServer creates a server with the default roll limiter.
func NewServer(t *tracker.Tracker, rolls RollLog, port int, adminKey string) *Server {
	return &Server{
		Tracker:  t,
		Rolls:    rolls,
		Port:     port,
		AdminKey: adminKey,
		Limiter:  NewRateLimiter(60, time.Minute),
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public endpoints.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/prompt", s.handlePrompt)
	mux.HandleFunc("/api/v1/rolls", s.handleRolls)
	mux.HandleFunc("/api/v1/chats", s.handleChats)

	// Host endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/message", s.adminOnly(s.handleMessage))
	mux.HandleFunc("/api/v1/command", s.adminOnly(s.handleCommand))

	return corsMiddleware(mux)
}

// Start begins serving in a goroutine and returns the server for shutdown.
func (s *Server) Start() *http.Server {
	addr := fmt.Sprintf(":%d", s.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
	return srv
}

// corsMiddleware adds CORS headers for allowed host origins.
// REPRO_CORS_ORIGINS adds a comma-separated list of origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:8000": true,
		"http://127.0.0.1:8000": true,
	}
	if env := os.Getenv("REPRO_CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly requires POST with a bearer token.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if s.AdminKey == "" {
			writeError(w, http.StatusForbidden, "host endpoints disabled (no REPRO_ADMIN_KEY set)")
			return
		}
		if !s.checkBearerToken(r) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	chat := r.URL.Query().Get("chat")
	if chat == "" {
		chat = settings.DefaultChat
	}
	ss, ok := s.Tracker.Session(chat)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown chat")
		return
	}
	writeJSON(w, map[string]any{
		"chat":     chat,
		"language": s.Tracker.Language(),
		"session":  ss,
		"methods":  ss.Contraception.List(),
		"standing": s.Tracker.Standing(chat),
	})
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Tracker.Slots().Snapshot())
}

func (s *Server) handleChats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Tracker.Chats())
}

func (s *Server) handleRolls(w http.ResponseWriter, r *http.Request) {
	if s.Rolls == nil {
		writeError(w, http.StatusServiceUnavailable, "roll journal not available")
		return
	}
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	rolls, err := s.Rolls.RecentRolls(r.Context(), r.URL.Query().Get("chat"), limit)
	if err != nil {
		slog.Error("reading roll journal failed", "error", err)
		writeError(w, http.StatusInternalServerError, "journal read failed")
		return
	}
	if rolls == nil {
		rolls = []persistence.Roll{}
	}
	writeJSON(w, rolls)
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Chat string `json:"chat"`
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if s.Limiter != nil && s.Limiter.reject(w, clientIP(r)) {
		return
	}

	rep, err := s.Tracker.HandleMessage(req.Chat, req.ID, req.Text)
	if err != nil {
		// Faults are reported in a 200 body.
		slog.Error("message hook error", "chat", req.Chat, "error", err)
		writeJSON(w, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, rep)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Chat string            `json:"chat"`
		Name string            `json:"name"`
		Args map[string]string `json:"args"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if tracker.IsRoll(req.Name) && s.Limiter != nil && s.Limiter.reject(w, clientIP(r)) {
		return
	}

	out, err := s.Tracker.Execute(req.Chat, req.Name, req.Args)
	switch {
	case errors.Is(err, tracker.ErrUnknownCommand):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, tracker.ErrInternal):
		slog.Error("command fault", "command", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "command failed")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Info("command executed", "chat", req.Chat, "command", req.Name)
	writeJSON(w, map[string]string{"output": out})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
