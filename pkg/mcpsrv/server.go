package mcpsrv

import (
	"context"
	"fmt"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/ing-mcp/internal/cache"
	"github.com/usestring/ing-mcp/internal/config"
	"github.com/usestring/ing-mcp/internal/logging"
	"github.com/usestring/ing-mcp/internal/mcp"
	"github.com/usestring/ing-mcp/internal/mcp/tools"
	"github.com/usestring/ing-mcp/internal/movementfetch"
	"github.com/usestring/ing-mcp/internal/query"
	"github.com/usestring/ing-mcp/pkg/client"
)

// Server is the ING MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// ClientFromEnv builds a bank client from ING_COOKIE, ING_BASE_URL and
// HTTP_CLIENT_TIMEOUT_MS.
func ClientFromEnv() (*client.Client, error) {
	return ClientFromConfig(config.Load())
}

// ClientFromConfig builds a bank client from a loaded configuration.
// A zero HTTPClientTimeout keeps http.DefaultClient.
func ClientFromConfig(cfg *config.Config) (*client.Client, error) {
	if cfg.Cookie == "" {
		return nil, fmt.Errorf("ING_COOKIE is not set: copy the Cookie header of a logged-in ib.ing.cz session")
	}

	opts := []client.Option{client.WithBaseURL(cfg.BaseURL)}
	if cfg.HTTPClientTimeout > 0 {
		opts = append(opts, client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClientTimeout}))
	}
	return client.New(cfg.Cookie, opts...)
}

// NewServer creates a new MCP server with builtin ING tools.
//
// The client parameter is required. Use functional options to configure
// logging, add custom tools, etc.
func NewServer(c *client.Client, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}

	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Load()
	}

	logCfg := logging.Config{
		Level:      cfg.config.LogLevel,
		FilePath:   cfg.config.LogFile,
		MaxSizeMB:  cfg.config.LogMaxSizeMB,
		MaxBackups: cfg.config.LogMaxBackups,
		MaxAgeDays: cfg.config.LogMaxAgeDays,
		Compress:   cfg.config.LogCompress,
	}
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	movementCache, err := cache.NewMovementCache(cfg.config.MovementCacheMaxItems)
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create movement cache: %w", err)
	}

	deps := &Deps{
		Client:    c,
		Cache:     movementCache,
		Movements: movementfetch.New(c, movementCache, cfg.config.FetchWorkers),
		Config:    cfg.config,
		Query:     query.NewEngine(),
	}
	toolDeps := &tools.Deps{
		Client:    deps.Client,
		Cache:     deps.Cache,
		Movements: deps.Movements,
		Config:    deps.Config,
		Query:     deps.Query,
	}

	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}

	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.promptRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.resourceRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// MCPServer returns the underlying MCP server, e.g. to connect other transports.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.internal.MCPServer()
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
