package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/ing-mcp/internal/mcp/tools"
)

// Resource URIs:
//   ing://products
//   ing://movement/{movement}

const productsURI = "ing://products"

// registerResources registers resources and resource templates.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         productsURI,
		Name:        "Products",
		Description: "All financial products of the client, untrimmed. ing_products returns a compact version of the same payload.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.6,
		},
	}, s.handleResourceProducts)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: tools.MovementURIPrefix + "{movement}",
		Name:        "Movement",
		Description: "Detail of one movement. Served from the movement cache when ing_movement or ing_movement_details already fetched it.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.8,
		},
	}, s.handleResourceMovement)
}

func (s *Server) handleResourceProducts(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	products, err := s.deps.Client.ListProducts(ctx)
	if err != nil {
		return nil, tools.WrapBankError(err)
	}
	return toResourceResult(req.Params.URI, products)
}

func (s *Server) handleResourceMovement(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	movementID, err := parseMovementURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	movement, err := s.deps.Movements.Fetch(ctx, movementID)
	if err != nil {
		return nil, tools.WrapBankError(err)
	}
	return toResourceResult(req.Params.URI, movement)
}

// parseMovementURI extracts the movement ID from an ing://movement/{id} URI.
func parseMovementURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, tools.MovementURIPrefix)
	if !ok {
		return "", tools.ErrInvalidInput(fmt.Sprintf("invalid movement URI %q: expected %s{id}", uri, tools.MovementURIPrefix))
	}
	id, err := url.PathUnescape(rest)
	if err != nil || id == "" {
		return "", tools.ErrInvalidInput(fmt.Sprintf("invalid movement URI %q", uri))
	}
	return id, nil
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: tools.MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
