// Package server exposes the conversion engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mvx3/csscolor"
)

// Server is the HTTP facade over the conversion engine. The engine itself
// never logs; all request logging happens here.
type Server struct {
	log *zap.Logger
}

// New creates a Server. A nil logger disables logging.
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log.Named("server")}
}

// Router builds the chi router with all routes attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/convert", s.handleConvert)
	r.Get("/names/{name}", s.handleName)
	return r
}

// ListenAndServe runs the service on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Router())
}

type convertResponse struct {
	Input  string `json:"input"`
	Hex    string `json:"hex"`
	Format string `json:"format"`
	Output string `json:"output"`
}

type nameResponse struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleConvert serves GET /convert?value=<color>&to=<format>.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	to := r.URL.Query().Get("to")

	target, err := csscolor.ParseFormat(to)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	hex, err := csscolor.ToHex(value)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}

	out, err := csscolor.FromHex(hex, target)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}

	s.log.Info("converted",
		zap.String("value", value),
		zap.String("hex", hex),
		zap.Stringer("to", target))

	writeJSON(w, http.StatusOK, convertResponse{
		Input:  value,
		Hex:    hex,
		Format: target.String(),
		Output: out,
	})
}

// handleName serves GET /names/{name}.
func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "name")
	hex, ok := csscolor.NameToHex(keyword)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown color name"})
		return
	}
	writeJSON(w, http.StatusOK, nameResponse{Name: keyword, Hex: hex})
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.log.Warn("conversion failed", zap.Error(err))
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps conversion errors to HTTP statuses: absent input is a
// bad request, everything else is an unprocessable value.
func statusFor(err error) int {
	if errors.Is(err, csscolor.ErrMissingInput) || errors.Is(err, csscolor.ErrUnknownTargetFormat) {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
