package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/usestring/ing-mcp/pkg/mcpsrv"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// ING_COOKIE carries the browser session; ING_BASE_URL and
	// HTTP_CLIENT_TIMEOUT_MS are optional (see internal/config).
	bank, err := mcpsrv.ClientFromEnv()
	if err != nil {
		slog.Error("failed to create ING client", "error", err)
		os.Exit(1)
	}

	// LOG_LEVEL, LOG_FILE and the other settings are read from the environment.
	server, err := mcpsrv.NewServer(bank)
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	slog.Info("starting ING MCP server on stdio")
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
