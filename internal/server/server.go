package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"craftlink/internal/app"
	"craftlink/internal/store"
	"craftlink/internal/token"
	"craftlink/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App
	// Version is reported by the health endpoint.
	Version string
	// DebugErrors echoes internal error text to clients. Leave off in
	// production; the full error is always logged.
	DebugErrors bool
}

// Server exposes the HTTP endpoints.
type Server struct {
	app         *app.App
	version     string
	debugErrors bool
	mux         *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	version := cfg.Version
	if version == "" {
		version = "1.0.0"
	}
	s := &Server{
		app:         cfg.App,
		version:     version,
		debugErrors: cfg.DebugErrors,
		mux:         http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	// auth
	s.mux.HandleFunc("/auth/register", s.handleRegister)
	s.mux.HandleFunc("/auth/login", s.handleLogin)
	s.mux.HandleFunc("/auth/verify-token", s.handleVerifyToken)
	s.mux.HandleFunc("/auth/profile", s.handleProfile)

	// public craftsman browsing
	s.mux.HandleFunc("/craftsmen", s.handleCraftsmen)
	s.mux.HandleFunc("/craftsmen/", s.handleCraftsmanByID)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "API is running",
		"version": s.version,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req app.RegisterRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	res, err := s.app.Register(req)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	message := "Customer registered successfully"
	if res.Role == domain.RoleCraftsman {
		message = "Craftsman registered successfully. Account pending verification."
	}
	writeSuccess(w, http.StatusCreated, authPayload(res), message)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req app.LoginRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	res, err := s.app.Login(req)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, authPayload(res), "Login successful")
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req verifyTokenRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	claims, err := s.app.VerifyToken(req.Token)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	payload := map[string]any{
		"user_id":   claims.UserID,
		"user_type": claims.UserType,
		"exp":       claims.ExpiresAt.Unix(),
	}
	writeSuccess(w, http.StatusOK, payload, "Token is valid")
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	raw, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authorization token is required")
		return
	}
	profile, err := s.app.Profile(raw)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	data := map[string]any{"user_type": profile.Role}
	if profile.Role == domain.RoleCustomer {
		data["user"] = profile.Customer
	} else {
		data["craftsman"] = profile.Craftsman
	}
	writeSuccess(w, http.StatusOK, data, "")
}

func (s *Server) handleCraftsmen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	filter := store.CraftsmanFilter{
		ServiceType: strings.TrimSpace(r.URL.Query().Get("service_type")),
		Location:    strings.TrimSpace(r.URL.Query().Get("location")),
	}
	craftsmen, err := s.app.ListCraftsmen(filter)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"craftsmen": craftsmen}, "")
}

func (s *Server) handleCraftsmanByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	rawID := strings.TrimPrefix(r.URL.Path, "/craftsmen/")
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusNotFound, "Craftsman not found")
		return
	}
	detail, err := s.app.GetCraftsman(uint(id))
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "Craftsman not found")
			return
		}
		s.writeAppError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"craftsman": detail}, "")
}

// writeAppError maps flow errors to their fixed status codes. Anything
// unrecognized is an internal failure: logged in full, echoed only when
// debugErrors is enabled.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *app.MissingFieldError
	switch {
	case errors.As(err, &missing),
		errors.Is(err, app.ErrInvalidUserType),
		errors.Is(err, app.ErrEmailExists),
		errors.Is(err, app.ErrTokenRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrInvalidCredentials),
		errors.Is(err, token.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		msg := "internal server error"
		if s.debugErrors {
			msg = err.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

// response is the envelope carried by every JSON response.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// authPayload shapes registration/login data: the record under a role-named
// key, plus token and user_type.
func authPayload(res app.AuthResult) map[string]any {
	data := map[string]any{
		"token":     res.Token,
		"user_type": res.Role,
	}
	if res.Role == domain.RoleCustomer {
		data["user"] = res.Customer
	} else {
		data["craftsman"] = res.Craftsman
	}
	return data
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		slog.Warn("missing bearer prefix", "path", r.URL.Path)
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw == "" {
		slog.Warn("empty bearer token", "path", r.URL.Path)
		return "", false
	}
	return raw, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, response{Success: true, Data: data, Message: message})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Success: false, Error: msg})
}
