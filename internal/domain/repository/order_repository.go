package repository

import (
	"context"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
)

// OrderRepository provides read access to the orders collection. This service
// never writes orders; creation happens in the customer-facing apps.
type OrderRepository interface {
	// List returns every order document, projected into display models.
	// There is no filtering or paging at the source.
	List(ctx context.Context) ([]entity.Order, error)

	// GetByID returns a single order, or apperror.ErrNotFound if the
	// document does not exist.
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// Count returns the number of order documents.
	Count(ctx context.Context) (int64, error)
}
