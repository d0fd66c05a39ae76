package mcpsrv

import (
	"github.com/usestring/ing-mcp/internal/cache"
	"github.com/usestring/ing-mcp/internal/config"
	"github.com/usestring/ing-mcp/internal/movementfetch"
	"github.com/usestring/ing-mcp/internal/query"
	"github.com/usestring/ing-mcp/pkg/client"
)

// Deps contains all dependencies available to custom tools.
// Custom tools share the client, movement cache, and engines of the builtin tools.
type Deps struct {
	Client    *client.Client
	Cache     *cache.MovementCache
	Movements *movementfetch.Fetcher
	Config    *config.Config
	Query     *query.Engine
}
