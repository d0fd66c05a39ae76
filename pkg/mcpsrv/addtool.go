package mcpsrv

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/ing-mcp/internal/mcp/tools"
)

// AddTool registers a tool after checking that the zero value of its output
// type passes the JSON schema the SDK infers for it. A nil slice marshals as
// null and fails an inferred "type": "array"; AddTool panics at registration
// with the offending field instead of failing every call at runtime.
//
// Use this instead of [sdkmcp.AddTool] to get the additional check.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools.AddTool(srv, t, h)
}
