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

	"github.com/daniel/career-coach/internal/advisor"
	"github.com/daniel/career-coach/internal/compat"
	"github.com/daniel/career-coach/internal/config"
	"github.com/daniel/career-coach/internal/db"
	"github.com/daniel/career-coach/internal/llm"
	"github.com/daniel/career-coach/internal/roadmap"
	"github.com/daniel/career-coach/internal/server/middleware"
	"github.com/daniel/career-coach/internal/server/ratelimit"
	"github.com/daniel/career-coach/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	llmClient   llm.Client
	advisor     *advisor.Advisor
	roadmaps    *roadmap.Service
	jobs        jobRequirementsStore
	scorer      *compat.Scorer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	RateLimit   int
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{db: database}

	// The advisor runs against a disabled client when no API key is
	// configured; generation then degrades to the template roadmap.
	if cfg.APIKey == "" {
		log.Printf("No API key configured; roadmap generation will use the template fallback")
		s.llmClient = llm.DisabledClient{}
	} else {
		client, err := llm.NewClient(context.Background(), nil, cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
	}

	s.advisor = advisor.New(s.llmClient)
	s.roadmaps = roadmap.NewService(database, database, database, database, s.advisor)
	s.jobs = database
	s.scorer = compat.NewScorer(s.advisor)

	s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)

	// Authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Candidate endpoints
	mux.Handle("POST /roadmap", s.authedKind(types.KindCandidate, s.handleGenerateRoadmap))
	mux.Handle("GET /roadmap", s.authedKind(types.KindCandidate, s.handleGetCurrentRoadmap))
	mux.Handle("PUT /roadmap/milestone", s.authedKind(types.KindCandidate, s.handleMilestoneStatus))
	mux.Handle("PUT /candidates/me/targets", s.authedKind(types.KindCandidate, s.handleUpdateTargets))
	mux.Handle("POST /candidates/me/resume", s.authedKind(types.KindCandidate, s.handleUploadResume))

	// Roadmap endpoints shared by both variants
	mux.Handle("GET /roadmaps/{id}", s.authed(s.handleGetRoadmap))
	mux.Handle("GET /roadmaps/{id}/progress", s.authed(s.handleRoadmapProgress))
	mux.Handle("GET /roadmaps/{id}/recommendations", s.authed(s.handleRoadmapRecommendations))

	// Recruiter endpoints
	mux.Handle("POST /recruiters/job-requirements", s.authedKind(types.KindRecruiter, s.handleCreateJobRequirements))
	mux.Handle("GET /recruiters/job-requirements", s.authedKind(types.KindRecruiter, s.handleListJobRequirements))
	mux.Handle("GET /recruiters/job-requirements/{id}", s.authedKind(types.KindRecruiter, s.handleGetJobRequirements))
	mux.Handle("POST /recruiters/job-description/analyze", s.authedKind(types.KindRecruiter, s.handleAnalyzeJobDescription))
	mux.Handle("POST /roadmaps/compatibility/{candidateId}", s.authedKind(types.KindRecruiter, s.handleCompatibility))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// authed wraps a handler with token authentication.
func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return middleware.Auth(s.jwtService.AsTokenValidator())(h)
}

// authedKind wraps a handler with authentication plus a user-variant guard.
func (s *Server) authedKind(kind types.UserKind, h http.HandlerFunc) http.Handler {
	return middleware.Auth(s.jwtService.AsTokenValidator())(
		middleware.RequireKind(string(kind))(h))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
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

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
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
