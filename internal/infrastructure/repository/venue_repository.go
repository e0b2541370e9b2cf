package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/gbmfoods/admin-api/internal/domain/entity"
	domainRepo "github.com/gbmfoods/admin-api/internal/domain/repository"
	"github.com/gbmfoods/admin-api/internal/infrastructure/database"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type venueRepository struct {
	client *firestore.Client
}

// NewVenueRepository creates a Firestore-backed venue repository covering
// both the stores and restaurants collections.
func NewVenueRepository(client *firestore.Client) domainRepo.VenueRepository {
	return &venueRepository{client: client}
}

func (r *venueRepository) GetStore(ctx context.Context, id string) (*entity.Venue, error) {
	return r.getVenue(ctx, database.CollectionStores, "Store", id)
}

func (r *venueRepository) GetRestaurant(ctx context.Context, id string) (*entity.Venue, error) {
	return r.getVenue(ctx, database.CollectionRestaurants, "Restaurant", id)
}

func (r *venueRepository) getVenue(ctx context.Context, collection, resource, id string) (*entity.Venue, error) {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NewNotFoundError(resource)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", collection, id, err)
	}

	venue := projectVenue(snap.Ref.ID, snap.Data())
	return &venue, nil
}

func (r *venueRepository) ListRestaurants(ctx context.Context) ([]entity.Venue, error) {
	iter := r.client.Collection(database.CollectionRestaurants).Documents(ctx)
	defer iter.Stop()

	var venues []entity.Venue
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list restaurants: %w", err)
		}
		venues = append(venues, projectVenue(snap.Ref.ID, snap.Data()))
	}
	return venues, nil
}

func (r *venueRepository) CountRestaurants(ctx context.Context) (int64, error) {
	snaps, err := r.client.Collection(database.CollectionRestaurants).Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return int64(len(snaps)), nil
}
