package webui

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ca-srg/brandrank/internal/checker"
	"github.com/ca-srg/brandrank/internal/export"
	"github.com/ca-srg/brandrank/internal/types"
)

// ServerConfig holds the web UI server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns the default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            "localhost",
		Port:            8081,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    120 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Server represents the web UI server
type Server struct {
	config       *ServerConfig
	appConfig    *types.Config
	httpServer   *http.Server
	templates    *TemplateManager
	state        *CheckState
	checker      *checker.Checker
	exporter     *export.Exporter
	logger       *log.Logger
	shutdownOnce sync.Once
}

// NewServer creates a new web UI server
func NewServer(serverConfig *ServerConfig, appConfig *types.Config, logger *log.Logger) (*Server, error) {
	if serverConfig == nil {
		serverConfig = DefaultServerConfig()
	}
	if appConfig == nil {
		return nil, fmt.Errorf("application config is required")
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[webui] ", log.LstdFlags)
	}

	templates, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	state := NewCheckState()

	// An API key from the environment seeds the session credential; the
	// form can still override it.
	if appConfig.OpenAIAPIKey != "" {
		state.SetCredential(appConfig.OpenAIAPIKey)
	}

	return &Server{
		config:    serverConfig,
		appConfig: appConfig,
		templates: templates,
		state:     state,
		checker:   checker.New(appConfig),
		exporter:  export.New(),
		logger:    logger,
	}, nil
}

// Run starts the server and blocks until context is cancelled
func (s *Server) Run(ctx context.Context) error {
	mux := s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:      s.loggingMiddleware(mux),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("Starting Web UI server at http://%s:%d", s.config.Host, s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-errChan:
		return err
	}
}

// shutdown performs graceful shutdown
func (s *Server) shutdown() error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.logger.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}
	})
	return shutdownErr
}

// setupRoutes configures HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		s.logger.Printf("Warning: failed to setup static files: %v", err)
	} else {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Pages
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/check", s.handleCheck)
	mux.HandleFunc("/history", s.handleHistoryPage)
	mux.HandleFunc("/export.csv", s.handleExportCSV)

	// API endpoints
	mux.HandleFunc("/api/check", s.handleAPICheck)
	mux.HandleFunc("/api/history", s.handleAPIHistory)

	return mux
}

// loggingMiddleware logs HTTP requests. Form values never reach the log:
// the credential travels in the POST body.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		s.logger.Printf("%s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		s.logger.Printf("%s %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetState returns the current session state
func (s *Server) GetState() *CheckState {
	return s.state
}
