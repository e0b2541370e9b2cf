package repository

import (
	"context"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
)

// VenueRepository provides point reads against the stores and restaurants
// collections. GetStore and GetRestaurant return apperror.ErrNotFound when
// the referenced document is absent; callers are expected to substitute a
// fallback name rather than fail.
type VenueRepository interface {
	GetStore(ctx context.Context, id string) (*entity.Venue, error)
	GetRestaurant(ctx context.Context, id string) (*entity.Venue, error)

	ListRestaurants(ctx context.Context) ([]entity.Venue, error)
	CountRestaurants(ctx context.Context) (int64, error)
}
