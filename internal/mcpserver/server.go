package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/mcp-go/server"
)

// Options configures the tool server.
type Options struct {
	Names        []string // Seed idea names
	Title        string   // Export filename title
	ExportDir    string
	ExportFormat string // Default format for export-results
	Version      string
}

// Server exposes the evaluation wizard as MCP tools. It can be served over
// stdio or as a streamable HTTP endpoint.
type Server struct {
	ctrl      *Controller
	opts      Options
	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
	mu        sync.Mutex
}

// New creates a server with all tools registered.
func New(opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		ctrl: NewController(opts.Names...),
		opts: opts,
	}

	s.mcpServer = server.NewMCPServer(
		"ideaeval",
		opts.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s
}

// Controller returns the state controller backing the tools.
func (s *Server) Controller() *Controller {
	return s.ctrl
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logger.Debug("Serving MCP tools over stdio")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// Start serves the tools over HTTP on addr (use "127.0.0.1:0" for a random
// port). Returns the bound port.
func (s *Server) Start(ctx context.Context, addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	))
	s.stdServer = &http.Server{Handler: mux}

	logger.Debug("Starting MCP server on port %d", s.port)

	// Capture stdServer so Stop cannot race the goroutine
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	return s.port, nil
}

// Stop shuts down the HTTP server. Safe to call when not started.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}

	logger.Debug("Stopping MCP server")
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.stdServer = nil
	return nil
}

// URL returns the HTTP endpoint of a started server.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://127.0.0.1:%d/mcp", s.port)
}
