package tools

import (
	"context"
	"fmt"
)

// Resource names accepted by Source.Resource.
const (
	ResourceClient    = "client"
	ResourceProducts  = "products"
	ResourceMovements = "movements"
	ResourceMovement  = "movement"
)

// Source selects which API payload a tool operates on.
type Source struct {
	Resource   string `json:"resource" jsonschema:"required,One of: client, products, movements, movement"`
	ProductID  string `json:"product_id,omitempty" jsonschema:"Product UUID (resource=movements)"`
	FromDate   string `json:"from_date,omitempty" jsonschema:"First day, YYYY-MM-DD (resource=movements)"`
	ToDate     string `json:"to_date,omitempty" jsonschema:"Last day, YYYY-MM-DD (resource=movements, default: today)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Page size (resource=movements, default: 25)"`
	Offset     int    `json:"offset,omitempty" jsonschema:"Movements to skip (resource=movements)"`
	MovementID string `json:"movement_id,omitempty" jsonschema:"Movement UUID (resource=movement)"`
}

// Load fetches the payload the source points at.
func (d *Deps) Load(ctx context.Context, src Source) (any, error) {
	var (
		v   any
		err error
	)

	switch src.Resource {
	case ResourceClient:
		v, err = d.Client.GetClient(ctx)

	case ResourceProducts:
		v, err = d.Client.ListProducts(ctx)

	case ResourceMovements:
		if src.ProductID == "" {
			return nil, ErrInvalidInput("product_id is required for resource=movements")
		}
		opts, optErr := MovementsOptions(src.FromDate, src.ToDate, src.Limit, src.Offset)
		if optErr != nil {
			return nil, optErr
		}
		v, err = d.Client.ListMovements(ctx, src.ProductID, opts)

	case ResourceMovement:
		if src.MovementID == "" {
			return nil, ErrInvalidInput("movement_id is required for resource=movement")
		}
		v, err = d.Movements.Fetch(ctx, src.MovementID)

	default:
		return nil, ErrInvalidInput(fmt.Sprintf("unknown resource %q: expected client, products, movements or movement", src.Resource))
	}

	if err != nil {
		return nil, WrapBankError(err)
	}
	return v, nil
}
