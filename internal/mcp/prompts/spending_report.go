package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleSpendingReport implements the spending report workflow.
func HandleSpendingReport(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		args := req.Params.Arguments

		fromDate := args["from_date"]
		if fromDate == "" {
			return nil, fmt.Errorf("from_date is required")
		}
		toDate := args["to_date"]
		product := args["product"]

		period := "from " + fromDate + " until today"
		if toDate != "" {
			period = "from " + fromDate + " to " + toDate
		}

		var sb strings.Builder

		sb.WriteString("# Spending Report\n\n")
		sb.WriteString(fmt.Sprintf("Summarize income and spending %s. ", period))
		sb.WriteString("All data is read-only and comes straight from the bank; do not guess missing values.\n\n")

		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **Pick the product** - call `ing_products`\n")
		if product != "" {
			sb.WriteString(fmt.Sprintf("   - Use the product matching `%s` (alias or id)\n", product))
		} else {
			sb.WriteString("   - If the client has more than one product, ask which one to report on\n")
		}
		sb.WriteString("   - Note its `id`; ing_movements takes it as `product_id`\n\n")

		sb.WriteString("2. **Page through movements** - call `ing_movements`\n")
		sb.WriteString(fmt.Sprintf("   - A page holds %d movements unless `limit` is set\n", cfg.DefaultPageSize))
		sb.WriteString("   - Increase `offset` by the page size until a page comes back short\n")
		sb.WriteString("   - Set `full: true` so long arrays are not trimmed\n\n")

		sb.WriteString("3. **Aggregate** - prefer `ing_query` over reading raw pages\n")
		sb.WriteString("   - Run `ing_infer_schema` on resource `movements` first if field names are unknown\n")
		sb.WriteString("   - Sum negative and positive amounts separately\n\n")

		sb.WriteString("4. **Explain outliers** - fetch details only for the largest movements\n")
		sb.WriteString(fmt.Sprintf("   - `ing_movement_details` accepts up to %d ids per call\n\n", cfg.MaxBatch))

		sb.WriteString("## Suggested Tools\n\n")
		sb.WriteString("```\n")
		sb.WriteString("ing_products()\n")
		if toDate != "" {
			sb.WriteString(fmt.Sprintf("ing_movements(product_id: \"<id>\", from_date: \"%s\", to_date: \"%s\", full: true)\n", fromDate, toDate))
		} else {
			sb.WriteString(fmt.Sprintf("ing_movements(product_id: \"<id>\", from_date: \"%s\", full: true)\n", fromDate))
		}
		sb.WriteString(fmt.Sprintf("ing_query(resource: \"movements\", product_id: \"<id>\", from_date: \"%s\", limit: 500, expression: \"[.. | objects | select(has(\\\"amount\\\")) | .amount] | add\")\n", fromDate))
		sb.WriteString("```\n\n")

		sb.WriteString("## Output\n\n")
		sb.WriteString("- Total income, total spending and net balance change, with currency\n")
		sb.WriteString("- Top five expenses with date and counterparty\n")
		sb.WriteString("- Anything that looks like a recurring payment\n\n")
		sb.WriteString("If a tool fails with `UNAUTHORIZED`, stop and ask the user for a fresh cookie.\n")

		return &sdkmcp.GetPromptResult{
			Description: "Spending report workflow",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
