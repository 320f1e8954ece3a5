package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// FindAll returns a page of clients plus the total count. The filter's
	// search term matches name, phone and arc_name substrings.
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, int64, error)
	Save(ctx context.Context, client *Client) error
	// Delete removes the client and cascades to its sales and their items
	// in a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleRepository defines persistence operations for the Sale aggregate.
// Save persists the sale and its full item set atomically: items removed
// from the aggregate are deleted, the rest are upserted, all in one
// transaction, so partial item state is never observable.
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	Save(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
}
