// Package web exposes the booking calendar over HTTP: the computed
// month/week/day views, the navigation operations, booking CRUD and the
// iCalendar feed. It is a thin presentation surface; all date logic
// lives in internal/calendar.
package web

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"riascal/internal/calendar"
	"riascal/internal/config"
	"riascal/internal/ics"
	appLog "riascal/internal/log"
	"riascal/internal/model"
	"riascal/internal/store"
)

// Server holds the session cursor and wires handlers to the store and
// the calendar core. The cursor expects one logical actor, so every
// handler that reads or mutates it does so under cursorMu.
type Server struct {
	cfg    *config.Config
	store  *store.Store
	loc    *time.Location
	router chi.Router

	cursorMu sync.Mutex
	cursor   *calendar.Cursor
}

// NewServer constructs a new Server with a cursor positioned at today
// (in the configured business timezone) in month view.
func NewServer(cfg *config.Config, st *store.Store) *Server {
	loc := resolveLocationOrLocal(cfg.Timezone)
	s := &Server{
		cfg:   cfg,
		store: st,
		loc:   loc,
	}
	s.cursor = calendar.NewCursor(func() time.Time { return time.Now().In(loc) })
	s.router = chi.NewRouter()
	s.registerRoutes()
	return s
}

// Handler returns the root http.Handler, with basic auth applied when
// configured.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.router)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	// Empty username or password counts as disabled.
	if s.cfg.BasicAuth.Username == "" || s.cfg.BasicAuth.Password == "" {
		return false
	}
	return true
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="riascal", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) registerRoutes() {
	s.router.Use(chimiddleware.Recoverer)

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/calendar.ics", s.handleFeed)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/view", s.handleView)
		r.Post("/nav/prev", s.handleNavPrev)
		r.Post("/nav/next", s.handleNavNext)
		r.Post("/nav/today", s.handleNavToday)
		r.Post("/view-mode", s.handleViewMode)
		r.Post("/select-date", s.handleSelectDate)

		r.Get("/events", s.handleListEvents)
		r.Post("/events", s.handleCreateEvent)
		r.Put("/events/{id}", s.handleUpdateEvent)
		r.Delete("/events/{id}", s.handleDeleteEvent)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleFeed serves the whole booking collection as an iCalendar feed.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	body := ics.Serialize(s.store.List(r.Context()), s.cfg.CalendarName)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// handleView renders the current cursor state. Views are recomputed in
// full on every call; nothing is cached across requests.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.cursorMu.Lock()
	resp := s.renderView(r)
	s.cursorMu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNavPrev(w http.ResponseWriter, r *http.Request) {
	s.cursorMu.Lock()
	s.cursor.StepBackward()
	resp := s.renderView(r)
	s.cursorMu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNavNext(w http.ResponseWriter, r *http.Request) {
	s.cursorMu.Lock()
	s.cursor.StepForward()
	resp := s.renderView(r)
	s.cursorMu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNavToday(w http.ResponseWriter, r *http.Request) {
	s.cursorMu.Lock()
	s.cursor.GoToToday()
	resp := s.renderView(r)
	s.cursorMu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViewMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	mode, err := calendar.ParseViewMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.cursorMu.Lock()
	s.cursor.SetViewMode(mode)
	resp := s.renderView(r)
	s.cursorMu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSelectDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	day, err := time.ParseInLocation(model.DateFormat, req.Date, s.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	s.cursorMu.Lock()
	s.cursor.SelectDate(day)
	resp := s.renderView(r)
	s.cursorMu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

// handleListEvents lists bookings, optionally narrowed to one day with
// ?date=YYYY-MM-DD.
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events := s.store.List(r.Context())

	if q := r.URL.Query().Get("date"); q != "" {
		day, err := time.ParseInLocation(model.DateFormat, q, s.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		events = calendar.EventsOnDate(events, day)
	}

	writeJSON(w, http.StatusOK, toEventDTOs(events))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var d eventDTO
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	ev, err := s.fromEventDTO(d)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.Create(r.Context(), ev)
	if err != nil {
		if errors.Is(err, store.ErrExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toEventDTO(created))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var d eventDTO
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	d.ID = chi.URLParam(r, "id")

	ev, err := s.fromEventDTO(d)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.store.Update(r.Context(), ev)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toEventDTO(updated))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func resolveLocationOrLocal(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		appLog.Error("failed to load timezone; falling back to local", err, "name", name)
		return time.Local
	}
	return loc
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
