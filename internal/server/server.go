package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/ingestion"
	"github.com/jonathan/ae-qualify/internal/server/ratelimit"
	"github.com/jonathan/ae-qualify/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port             int
	MaxFileSizeMB    int
	MaxFilesPerBatch int
	PDFTimeout       time.Duration
	Verbose          bool
}

// Server represents the HTTP server over one state store.
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	st          *store.Store
	filler      *autofill.Filler
	rateLimiter *ratelimit.Limiter
	cfg         Config
}

// New creates a new server instance.
func New(cfg Config, st *store.Store, filler *autofill.Filler) *Server {
	if cfg.MaxFileSizeMB <= 0 {
		cfg.MaxFileSizeMB = ingestion.DefaultMaxFileSizeMB
	}
	if cfg.MaxFilesPerBatch <= 0 {
		cfg.MaxFilesPerBatch = ingestion.DefaultMaxFilesPerBatch
	}

	s := &Server{
		st:          st,
		filler:      filler,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		cfg:         cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// State surface
	mux.HandleFunc("GET /state", s.handleGetState)
	mux.HandleFunc("PUT /state/active-form", s.handleSetActiveForm)
	mux.HandleFunc("PUT /state/active-project", s.handleSetActiveProject)

	// Project CRUD
	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("POST /projects", s.handleCreateProject)
	mux.HandleFunc("PUT /projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", s.handleDeleteProject)

	// Uploaded assets
	mux.HandleFunc("GET /assets", s.handleListAssets)
	mux.HandleFunc("DELETE /assets/{id}", s.handleDeleteAsset)
	mux.HandleFunc("POST /assets/upload", s.handleUpload)

	// Form data and patches; {kind} is one of SF330_PART_I, SF330_PART_II,
	// SF254, SF255, SF252.
	mux.HandleFunc("GET /forms/{kind}", s.handleGetForm)
	mux.HandleFunc("PUT /forms/{kind}", s.handlePatchForm)

	// SF330 child collections
	mux.HandleFunc("POST /forms/SF330_PART_I/key-personnel", s.handleAddKeyPersonnel)
	mux.HandleFunc("DELETE /forms/SF330_PART_I/key-personnel/{id}", s.handleRemoveKeyPersonnel)
	mux.HandleFunc("POST /forms/SF330_PART_I/example-projects", s.handleAddExampleProject)
	mux.HandleFunc("DELETE /forms/SF330_PART_I/example-projects/{id}", s.handleRemoveExampleProject)
	mux.HandleFunc("POST /forms/SF330_PART_II/employees-by-discipline", s.handleAddEmployeeByDiscipline)
	mux.HandleFunc("PUT /forms/SF330_PART_II/employees-by-discipline/{id}", s.handleUpdateEmployeeByDiscipline)
	mux.HandleFunc("DELETE /forms/SF330_PART_II/employees-by-discipline/{id}", s.handleRemoveEmployeeByDiscipline)

	// Progress and export; {form} is one of SF330, SF254, SF255, SF252.
	mux.HandleFunc("GET /progress", s.handleAllProgress)
	mux.HandleFunc("GET /progress/{form}", s.handleFormProgress)
	mux.HandleFunc("GET /export/{form}", s.handleExport)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // uploads run extraction inline
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler stack, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the browser dashboard.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorFromErr maps a typed error to its status and writes the response.
func (s *Server) errorFromErr(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// extractClientID extracts the client identifier from the request. Uses the
// IP from RemoteAddr; X-Forwarded-For is deliberately ignored since the
// server fronts a local dashboard, not a proxy chain.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
