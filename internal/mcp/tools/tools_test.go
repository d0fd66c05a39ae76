package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/ing-mcp/internal/cache"
	"github.com/usestring/ing-mcp/internal/config"
	"github.com/usestring/ing-mcp/internal/movementfetch"
	"github.com/usestring/ing-mcp/internal/query"
	"github.com/usestring/ing-mcp/pkg/client"
)

const testCookie = "genoma-session-id=s3cr3t; lang=cs"

const productsBody = `[
	{"id": "p-1", "alias": "Main", "balance": {"amount": 1200.5, "currency": "CZK"}},
	{"id": "p-2", "alias": "Savings", "balance": {"amount": 90000, "currency": "CZK"}}
]`

const movementsBody = `{"movements": [
	{"id": "m-1", "amount": -250, "description": "Groceries"},
	{"id": "m-2", "amount": 30000, "description": "Salary"},
	{"id": "m-3", "amount": -99.9, "description": "Streaming"}
]}`

// bankStub serves canned payloads for the four bank endpoints.
type bankStub struct {
	hits      atomic.Int32
	lastQuery atomic.Value
}

func (b *bankStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.hits.Add(1)
	if r.Header.Get(client.SessionHeader) != "s3cr3t" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/rest")
	w.Header().Set("Content-Type", "application/json")
	switch {
	case path == "/client":
		fmt.Fprint(w, `{"name": "Jana Novakova", "clientNumber": 123456}`)
	case path == "/products":
		fmt.Fprint(w, productsBody)
	case path == "/products/p-1/movements":
		b.lastQuery.Store(r.URL.RawQuery)
		fmt.Fprint(w, movementsBody)
	case strings.HasPrefix(path, "/movements/"):
		id := strings.TrimPrefix(path, "/movements/")
		if strings.HasPrefix(id, "missing") {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "movement not found"}`)
			return
		}
		fmt.Fprintf(w, `{"id": %q, "amount": -250, "counterparty": "Albert"}`, id)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestDeps(t *testing.T) (*Deps, *bankStub) {
	t.Helper()
	stub := &bankStub{}
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	c, err := client.New(testCookie,
		client.WithBaseURL(server.URL+"/rest"),
		client.WithHTTPClient(server.Client()),
		client.WithClock(func() time.Time { return time.Date(2026, time.March, 5, 9, 0, 0, 0, time.Local) }),
	)
	require.NoError(t, err)

	mc, err := cache.NewMovementCache(16)
	require.NoError(t, err)

	cfg := &config.Config{
		MaxBatchMovements:    3,
		CompactMaxArrayItems: 1,
		CompactMaxStringLen:  500,
		DefaultQueryLimit:    50,
	}
	return &Deps{
		Client:    c,
		Cache:     mc,
		Movements: movementfetch.New(c, mc, 2),
		Config:    cfg,
		Query:     query.NewEngine(),
	}, stub
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var coded *CodedError
	require.True(t, errors.As(err, &coded), "expected CodedError, got %v", err)
	return coded.Code
}

func TestParseDate(t *testing.T) {
	iso, err := ParseDate("from_date", "2026-03-01")
	require.NoError(t, err)
	czech, err := ParseDate("from_date", "01/03/2026")
	require.NoError(t, err)
	assert.True(t, iso.Equal(czech))
	assert.Equal(t, "01/03/2026", client.FormatDate(iso))

	zero, err := ParseDate("to_date", "  ")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = ParseDate("to_date", "March 1st")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Contains(t, err.Error(), "to_date")
}

func TestMovementsOptions(t *testing.T) {
	opts, err := MovementsOptions("2026-01-01", "", 0, 0)
	require.NoError(t, err)
	assert.True(t, opts.To.IsZero())
	assert.Zero(t, opts.Limit)

	tests := []struct {
		name          string
		from, to      string
		limit, offset int
	}{
		{"missing from", "", "2026-01-01", 0, 0},
		{"reversed range", "2026-02-01", "2026-01-01", 0, 0},
		{"negative limit", "2026-01-01", "", -1, 0},
		{"negative offset", "2026-01-01", "", 0, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MovementsOptions(tt.from, tt.to, tt.limit, tt.offset)
			require.Error(t, err)
			assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
		})
	}
}

func TestWrapBankError(t *testing.T) {
	assert.Nil(t, WrapBankError(nil))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", &client.APIError{StatusCode: 401, Message: "nope"}, ErrCodeUnauthorized},
		{"forbidden", fmt.Errorf("getting client: %w", &client.APIError{StatusCode: 403}), ErrCodeUnauthorized},
		{"not found", &client.APIError{StatusCode: 404, Message: "gone"}, ErrCodeNotFound},
		{"server error", &client.APIError{StatusCode: 502, Message: "bad gateway"}, ErrCodeBankAPIError},
		{"login page", fmt.Errorf("decoding response: %w", client.ErrHTMLResponse), ErrCodeUnauthorized},
		{"deadline", fmt.Errorf("executing request: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"other", errors.New("connection refused"), ErrCodeBankAPIError},
		{"already coded", ErrInvalidInput("bad"), ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeOf(t, WrapBankError(tt.err)))
		})
	}

	wrapped := WrapBankError(&client.APIError{StatusCode: 500})
	var apiErr *client.APIError
	assert.True(t, errors.As(wrapped, &apiErr))
}

func TestToolClient(t *testing.T) {
	d, _ := newTestDeps(t)

	_, out, err := ToolClient(d)(context.Background(), nil, ClientInput{})
	require.NoError(t, err)
	holder, ok := out.Client.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jana Novakova", holder["name"])
}

func TestToolProducts_Compaction(t *testing.T) {
	d, _ := newTestDeps(t)

	_, out, err := ToolProducts(d)(context.Background(), nil, ProductsInput{})
	require.NoError(t, err)
	require.NotNil(t, out.Compaction)
	assert.Equal(t, 1, out.Compaction.TrimmedArrays)

	_, full, err := ToolProducts(d)(context.Background(), nil, ProductsInput{Full: true})
	require.NoError(t, err)
	assert.Nil(t, full.Compaction)
	assert.Len(t, full.Products, 2)
}

func TestToolMovements(t *testing.T) {
	d, stub := newTestDeps(t)

	_, out, err := ToolMovements(d)(context.Background(), nil, MovementsInput{
		ProductID: "p-1",
		FromDate:  "2026-02-01",
		Full:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", out.ProductID)
	assert.Equal(t, "fromDate=01%2F02%2F2026&limit=25&offset=0&toDate=05%2F03%2F2026", stub.lastQuery.Load())

	_, _, err = ToolMovements(d)(context.Background(), nil, MovementsInput{FromDate: "2026-02-01"})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}

func TestToolMovement_Cached(t *testing.T) {
	d, stub := newTestDeps(t)
	handler := ToolMovement(d)

	_, out, err := handler(context.Background(), nil, MovementInput{MovementID: "m-1"})
	require.NoError(t, err)
	assert.Equal(t, "ing://movement/m-1", out.Resource.URI)
	assert.Equal(t, MimeJSON, out.Resource.MIME)

	_, _, err = handler(context.Background(), nil, MovementInput{MovementID: "m-1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, stub.hits.Load())
	assert.Equal(t, 1, d.Cache.Len())

	_, _, err = handler(context.Background(), nil, MovementInput{MovementID: "missing-1"})
	assert.Equal(t, ErrCodeNotFound, codeOf(t, err))
}

func TestToolMovementDetails(t *testing.T) {
	d, _ := newTestDeps(t)
	handler := ToolMovementDetails(d)

	_, out, err := handler(context.Background(), nil, MovementDetailsInput{
		MovementIDs: []string{"m-1", "missing-2", "m-3"},
	})
	require.NoError(t, err)
	require.Len(t, out.Movements, 3)
	assert.Equal(t, 1, out.FailedCount)
	assert.Equal(t, "m-1", out.Movements[0].MovementID)
	assert.NotNil(t, out.Movements[0].Movement)
	assert.Contains(t, out.Movements[1].Error, ErrCodeNotFound)
	assert.Empty(t, out.Movements[2].Error)

	_, _, err = handler(context.Background(), nil, MovementDetailsInput{
		MovementIDs: []string{"a", "b", "c", "d"},
	})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}

func TestToolQuery(t *testing.T) {
	d, stub := newTestDeps(t)
	handler := ToolQuery(d)

	_, out, err := handler(context.Background(), nil, QueryInput{
		Source:     Source{Resource: ResourceMovements, ProductID: "p-1", FromDate: "2026-01-01"},
		Expression: ".movements[] | select(.amount < 0) | .id",
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"m-1", "m-3"}, out.Values)
	assert.Equal(t, 2, out.RawCount)

	hits := stub.hits.Load()
	_, _, err = handler(context.Background(), nil, QueryInput{
		Source:     Source{Resource: ResourceProducts},
		Expression: ".[",
	})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Equal(t, hits, stub.hits.Load(), "bad expression must not reach the bank")
}

func TestLoad_Validation(t *testing.T) {
	d, _ := newTestDeps(t)

	tests := []struct {
		name string
		src  Source
	}{
		{"unknown resource", Source{Resource: "accounts"}},
		{"movements without product", Source{Resource: ResourceMovements, FromDate: "2026-01-01"}},
		{"movements without from", Source{Resource: ResourceMovements, ProductID: "p-1"}},
		{"movement without id", Source{Resource: ResourceMovement}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Load(context.Background(), tt.src)
			assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
		})
	}
}

func TestToolInferSchema(t *testing.T) {
	d, _ := newTestDeps(t)

	_, out, err := ToolInferSchema(d)(context.Background(), nil, InferSchemaInput{
		Source: Source{Resource: ResourceProducts},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.SampleCount)
	s, ok := out.Schema.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", s["type"])
}

func TestToolValidateSchema(t *testing.T) {
	d, _ := newTestDeps(t)
	handler := ToolValidateSchema(d)

	_, out, err := handler(context.Background(), nil, ValidateSchemaInput{
		Source: Source{Resource: ResourceClient},
		Schema: `{"type": "object", "required": ["name", "clientNumber"], "properties": {"clientNumber": {"type": "integer"}}}`,
	})
	require.NoError(t, err)
	assert.True(t, out.Valid)

	_, out, err = handler(context.Background(), nil, ValidateSchemaInput{
		Source: Source{Resource: ResourceClient},
		Schema: `{"type": "object", "required": ["email"]}`,
	})
	require.NoError(t, err)
	assert.False(t, out.Valid)
	assert.NotEmpty(t, out.Errors)

	_, _, err = handler(context.Background(), nil, ValidateSchemaInput{
		Source: Source{Resource: ResourceClient},
		Schema: `{not json`,
	})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}
