// Package web implements the Session Architect web application: the
// generator UI, account pages, and the JSON note endpoints.
package web

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/sessionarchitect/sessionarchitect/internal/llm"
	"github.com/sessionarchitect/sessionarchitect/internal/plan"
	"github.com/sessionarchitect/sessionarchitect/internal/store"
)

// Server is the HTTP application server.
type Server struct {
	address   string
	port      int
	planner   *plan.Planner
	llmClient llm.Client
	store     *store.Store
	sessions  *SessionManager
	templates map[string]*template.Template
	logger    *slog.Logger
	server    *http.Server
}

// NewServer creates the application server.
func NewServer(address string, port int, planner *plan.Planner, client llm.Client, st *store.Store, sessions *SessionManager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		address:   address,
		port:      port,
		planner:   planner,
		llmClient: client,
		store:     st,
		sessions:  sessions,
		templates: loadTemplates(),
		logger:    logger.With("component", "web"),
	}
}

// Routes builds the request mux. Split out from Start so tests can
// drive the handlers through httptest without binding a port.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Public pages
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /faq", s.handleFAQ)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /signup", s.handleSignupPage)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("GET /logout", s.handleLogout)

	// Generator
	mux.HandleFunc("GET /generator", s.requireAuth(s.handleGeneratorPage))
	mux.HandleFunc("POST /generator", s.requireAuth(s.handleGenerate))
	mux.HandleFunc("POST /generate-dap", s.requireAuthJSON(s.handleGenerateDAP))
	mux.HandleFunc("POST /generate-soap", s.requireAuthJSON(s.handleGenerateSOAP))
	mux.HandleFunc("POST /export/{type}", s.requireAuth(s.handleExport))

	// Account pages
	mux.HandleFunc("GET /dashboard", s.requireAuth(s.handleDashboard))
	mux.HandleFunc("GET /billing", s.requireAuth(s.handleBilling))
	mux.HandleFunc("GET /history", s.requireAuth(s.handleHistory))
	mux.HandleFunc("GET /history/{id}", s.requireAuth(s.handleHistoryDetail))
	mux.HandleFunc("GET /personalize", s.requireAuth(s.handlePersonalizePage))
	mux.HandleFunc("POST /personalize", s.requireAuth(s.handlePersonalize))

	// API
	mux.HandleFunc("POST /api/validate-api-key", s.handleValidateAPIKey)

	// Everything else is a 404 page.
	mux.HandleFunc("/", s.handleNotFound)

	return s.withLogging(mux)
}

// Start begins serving HTTP requests and blocks until the listener stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      s.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // generation calls are slow
	}

	addr := s.address
	if addr == "" {
		addr = "0.0.0.0"
	}
	s.logger.Info("starting web server", "address", addr, "port", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// requireAuth redirects unauthenticated requests to the login page and
// passes the resolved session to the wrapped handler.
func (s *Server) requireAuth(next func(http.ResponseWriter, *http.Request, *Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFromRequest(r)
		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

// requireAuthJSON is requireAuth for the JSON endpoints: a missing
// session gets a 401 body instead of a redirect.
func (s *Server) requireAuthJSON(next func(http.ResponseWriter, *http.Request, *Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFromRequest(r)
		if sess == nil {
			writeJSONError(w, s.logger, http.StatusUnauthorized, "not logged in")
			return
		}
		next(w, r, sess)
	}
}
