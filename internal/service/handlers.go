// Package service exposes the extraction engine over HTTP for editor and
// CI integrations that want structured diagnostics over the wire.
package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects"
	"github.com/handleui/winnow/dialects/matcher"
	"github.com/handleui/winnow/extract"
)

const (
	// SECURITY: Maximum request body size to prevent memory exhaustion DoS.
	// 10MB is sufficient for typical build logs while preventing abuse.
	maxBodySize = 10 * 1024 * 1024

	// SECURITY: Maximum log string length within the JSON to prevent memory exhaustion.
	// This is separate from body size since JSON encoding overhead exists.
	maxLogsLength = 8 * 1024 * 1024

	// maxMatchers bounds the number of per-request custom patterns.
	maxMatchers = 64
)

// ParseRequest is the request body for POST /parse.
type ParseRequest struct {
	Logs     string           `json:"logs"`
	Matchers []matcher.Config `json:"matchers,omitempty"`
	BasePath string           `json:"basePath,omitempty"`
}

// ParseResponse is the response body for POST /parse.
type ParseResponse struct {
	Diagnostics *diag.Collection `json:"diagnostics"`
	Stats       Stats            `json:"stats"`
}

// Stats provides summary statistics for the parse result.
type Stats struct {
	Lines      int   `json:"lines"`
	Skipped    int   `json:"skipped"`
	Progress   int   `json:"progress"`
	Count      int   `json:"count"`
	Errors     int   `json:"errors"`
	Warnings   int   `json:"warnings"`
	DurationMs int64 `json:"durationMs"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Parsers int    `json:"parsers"`
	Version string `json:"version"`
}

// ErrorResponse is the response body for error cases.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler holds shared state for HTTP handlers.
type Handler struct {
	version  string
	matchers []matcher.Config
	parsers  int
	logger   *slog.Logger
}

// NewHandler creates a new Handler. The base matchers apply to every
// request, merged before any request-supplied ones. The parser count
// reported by /health covers the resulting default set; per-request
// sessions build their own registries, so nothing stateful is shared here.
func NewHandler(version string, baseMatchers []matcher.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		version:  version,
		matchers: baseMatchers,
		parsers:  len(dialects.Default(baseMatchers...).Parsers()),
		logger:   logger,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// SecurityHeadersMiddleware adds security headers to all responses.
// SECURITY: These headers protect against common web vulnerabilities.
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// SECURITY: Prevent MIME type sniffing attacks.
		w.Header().Set("X-Content-Type-Options", "nosniff")
		// SECURITY: Prevent clickjacking attacks.
		w.Header().Set("X-Frame-Options", "DENY")
		// SECURITY: Disable caching for API responses to prevent sensitive data leakage.
		w.Header().Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware returns middleware that logs request details.
func (h *Handler) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		h.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", wrapped.status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
	})
}

// HandleHealth handles GET /health requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Parsers: h.parsers,
		Version: h.version,
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleParse handles POST /parse requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	// SECURITY: Validate Content-Type to prevent content-type confusion attacks.
	// Accept missing Content-Type for curl convenience, but reject non-JSON types.
	// Use HasPrefix to handle charset suffixes like "application/json; charset=utf-8".
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		writeJSON(w, http.StatusUnsupportedMediaType, ErrorResponse{Error: "Content-Type must be application/json"})
		return
	}

	defer func() { _ = r.Body.Close() }()

	// SECURITY: Limit body size to prevent memory exhaustion DoS.
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	// SECURITY: Check if the body was truncated (hit the limit).
	if len(body) == maxBodySize {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
		return
	}

	var req ParseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// SECURITY: Don't expose parsing details that could reveal internal structure.
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}

	if req.Logs == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "logs field is required"})
		return
	}

	// SECURITY: Validate logs length to prevent memory exhaustion from large strings.
	if len(req.Logs) > maxLogsLength {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "logs field too large"})
		return
	}

	// SECURITY: Bound per-request pattern count; each config compiles a regex.
	if len(req.Matchers) > maxMatchers {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "too many matchers"})
		return
	}

	start := time.Now()

	// A fresh session per request: no parser state crosses requests. Base
	// matchers go first so registration order stays stable across requests.
	configs := make([]matcher.Config, 0, len(h.matchers)+len(req.Matchers))
	configs = append(configs, h.matchers...)
	configs = append(configs, req.Matchers...)

	session := extract.NewSession(configs...)
	if err := session.Consume(strings.NewReader(req.Logs)); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "failed to scan logs"})
		return
	}

	coll := session.Diagnostics()

	if req.BasePath != "" {
		relativized := diag.NewCollection()
		for _, file := range coll.Files() {
			for _, d := range coll.ByFile[file] {
				d.File = makeRelative(d.File, req.BasePath)
				relativized.Add(d)
			}
		}
		for _, d := range coll.NoFile {
			relativized.Add(d)
		}
		coll = relativized
	}

	counts := coll.Severities()
	resp := ParseResponse{
		Diagnostics: coll,
		Stats: Stats{
			Lines:      session.LinesFed(),
			Skipped:    session.LinesSkipped(),
			Progress:   session.Progress(),
			Count:      coll.Total,
			Errors:     counts[diag.SeverityError],
			Warnings:   counts[diag.SeverityWarning],
			DurationMs: time.Since(start).Milliseconds(),
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// makeRelative converts an absolute path to relative if it's under basePath.
func makeRelative(path, basePath string) string {
	if basePath == "" {
		return path
	}
	// Simple prefix stripping for the HTTP API
	if len(path) > len(basePath) && path[:len(basePath)] == basePath {
		rel := path[len(basePath):]
		if rel != "" && (rel[0] == '/' || rel[0] == '\\') {
			rel = rel[1:]
		}
		return rel
	}
	return path
}
