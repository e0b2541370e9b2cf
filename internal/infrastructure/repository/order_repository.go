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

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates a Firestore-backed order repository
func NewOrderRepository(client *firestore.Client) domainRepo.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	iter := r.client.Collection(database.CollectionOrders).Documents(ctx)
	defer iter.Stop()

	var orders []entity.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		orders = append(orders, ProjectOrder(snap.Ref.ID, snap.Data()))
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.client.Collection(database.CollectionOrders).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NewNotFoundError("Order")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	order := ProjectOrder(snap.Ref.ID, snap.Data())
	return &order, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	snaps, err := r.client.Collection(database.CollectionOrders).Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return int64(len(snaps)), nil
}
