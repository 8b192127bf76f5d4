package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"go-sales-dashboard/internal/logging"
	"go-sales-dashboard/internal/metrics"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the per-request id on responses (and is honoured on requests)
const RequestIDHeader = "X-Request-ID"

// unmatchedRoute labels 404 traffic in metrics so arbitrary paths don't become series
const unmatchedRoute = "unmatched"

type HandlerFunc func(http.ResponseWriter, *http.Request)

type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  map[string]bool        // track registered paths
	log    zerolog.Logger
}

// ServerOptions are the http.Server knobs used by Start
type ServerOptions struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func New() *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
		log:    logging.Component("http"),
	}

	// Catch-all handler, dispatching on METHOD:PATH
	r.mux.HandleFunc("/", r.serve)
	return r
}

func (r *Router) serve(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	lrw.Header().Set(RequestIDHeader, requestID)

	route := unmatchedRoute
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().
				Str("request_id", requestID).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			if !lrw.wroteHeader {
				writeJSONError(lrw, http.StatusInternalServerError, "internal server error")
			} else {
				lrw.statusCode = http.StatusInternalServerError
			}
		}

		duration := time.Since(start)
		metrics.RecordHTTPRequest(req.Method, route, lrw.statusCode, duration)
		r.log.WithLevel(statusLevel(lrw.statusCode)).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", lrw.statusCode).
			Dur("duration", duration).
			Msg("request")
	}()

	h, pattern, status := r.match(req.Method, req.URL.Path)
	switch status {
	case http.StatusOK:
		route = pattern
		h(lrw, req)
	case http.StatusMethodNotAllowed:
		route = pattern
		writeJSONError(lrw, status, "Method Not Allowed")
	default:
		writeJSONError(lrw, status, "Not Found")
	}
}

// match resolves a handler for method and path, trying the exact route
// first and wildcard routes (most specific first) after.
func (r *Router) match(method, path string) (HandlerFunc, string, int) {
	if h, ok := r.routes[method+":"+path]; ok {
		return h, path, http.StatusOK
	}

	// prefer the longest wildcard pattern that has a handler for method
	var handled, matched string
	for routePath := range r.paths {
		if !strings.Contains(routePath, "*") || !matchWildcardRoute(path, routePath) {
			continue
		}
		if len(routePath) > len(matched) {
			matched = routePath
		}
		if _, ok := r.routes[method+":"+routePath]; ok && len(routePath) > len(handled) {
			handled = routePath
		}
	}
	if handled != "" {
		return r.routes[method+":"+handled], handled, http.StatusOK
	}
	if matched != "" {
		return nil, matched, http.StatusMethodNotAllowed
	}
	if r.paths[path] {
		return nil, path, http.StatusMethodNotAllowed
	}
	return nil, "", http.StatusNotFound
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// A trailing wildcard matches any number of remaining segments
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}
	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}
	return true
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	r.routes[key] = handler
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)  { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc) { r.register(http.MethodPost, path, handler) }

// Handle mounts an http.Handler, e.g. a file server under "/static/*"
func (r *Router) Handle(method, path string, handler http.Handler) {
	r.register(method, path, handler.ServeHTTP)
}

// Getter methods for testing
func (r *Router) Routes() map[string]HandlerFunc {
	return r.routes
}

func (r *Router) Paths() map[string]bool {
	return r.paths
}

// ServeHTTP lets the router be used directly with httptest
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// --- Start server ---

// Start serves until ctx is cancelled, then drains in-flight requests
// for at most opts.ShutdownTimeout.
func (r *Router) Start(ctx context.Context, opts ServerOptions) error {
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           r.mux,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       2 * opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.Info().Msgf("🚀 Server started on http://localhost%s", displayAddr(opts.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return addr
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if lrw.wroteHeader {
		return
	}
	lrw.statusCode = code
	lrw.wroteHeader = true
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if !lrw.wroteHeader {
		lrw.WriteHeader(http.StatusOK)
	}
	return lrw.ResponseWriter.Write(b)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// statusLevel picks the log level for a finished request
func statusLevel(code int) zerolog.Level {
	switch {
	case code >= 500:
		return zerolog.ErrorLevel
	case code >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
