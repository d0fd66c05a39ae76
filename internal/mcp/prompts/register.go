package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "spending_report",
		Description: "Summarize income and spending of one product over a date range. Walks through product lookup, paging movements and aggregating with ing_query.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "from_date",
				Description: "First day of the period (YYYY-MM-DD)",
				Required:    true,
			},
			{
				Name:        "to_date",
				Description: "Last day of the period (YYYY-MM-DD, default: today)",
				Required:    false,
			},
			{
				Name:        "product",
				Description: "Product alias or id to report on (default: ask after listing products)",
				Required:    false,
			},
		},
	}, HandleSpendingReport(cfg))
}
