package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_client",
		Description: "Get information about the logged-in ING client (account holder).",
	}, ToolClient(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_products",
		Description: "List the client's financial products (accounts, cards). Each product carries the id used by ing_movements. Large arrays and strings are trimmed unless full=true.",
	}, ToolProducts(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_movements",
		Description: "List a page of movements (transactions) of a product between from_date and to_date (default today). Dates are YYYY-MM-DD. Use limit/offset to page; default page size is 25.",
	}, ToolMovements(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_movement",
		Description: "Get the full detail of one movement by id. Details are cached and also readable as the ing://movement/{id} resource.",
	}, ToolMovement(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_movement_details",
		Description: "Fetch the details of several movements concurrently. Per-movement failures are reported inline and do not fail the call.",
	}, ToolMovementDetails(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_query",
		Description: "Run a JQ expression against a payload selected by resource (client, products, movements, movement). Example: resource=movements with expression '.. | objects | select(has(\"amount\")) | .amount'.",
	}, ToolQuery(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_infer_schema",
		Description: "Infer a JSON Schema describing a payload selected by resource. Useful before writing ing_query expressions against unfamiliar bank payloads.",
	}, ToolInferSchema(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "ing_validate_schema",
		Description: "Validate a payload selected by resource against a JSON Schema document and list violations.",
	}, ToolValidateSchema(d))
}
