// Package mcpsrv provides an extensible MCP server for the ING banking API.
//
// The server exposes the client operations (account holder, products,
// movements, movement detail) as MCP tools together with JQ querying and
// JSON Schema inference and validation over the returned payloads.
//
// # Basic Usage
//
// Build the client from the environment (ING_COOKIE) and serve over stdio:
//
//	c, err := mcpsrv.ClientFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	server, err := mcpsrv.NewServer(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Add custom tools using MCP SDK types directly:
//
//	type BalanceInput struct {
//	    ProductID string `json:"product_id"`
//	}
//
//	type BalanceOutput struct {
//	    Balance any `json:"balance"`
//	}
//
//	server, err := mcpsrv.NewServer(c,
//	    mcpsrv.WithDepsTool(&mcp.Tool{Name: "balance", Description: "Balance of one product"},
//	        func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, in BalanceInput) (*mcp.CallToolResult, BalanceOutput, error) {
//	            return func(ctx context.Context, req *mcp.CallToolRequest, in BalanceInput) (*mcp.CallToolResult, BalanceOutput, error) {
//	                products, err := d.Client.ListProducts(ctx)
//	                ...
//	            }
//	        }),
//	)
//
// # Configuration
//
// Configuration is read from environment variables (see internal/config);
// logging can be overridden with options:
//
//	server, err := mcpsrv.NewServer(c,
//	    mcpsrv.WithLogLevel("debug"),
//	    mcpsrv.WithLogFile("/var/log/ing-mcp.log"),
//	)
package mcpsrv
