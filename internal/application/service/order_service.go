package service

import (
	"context"
	"sync"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
	"github.com/gbmfoods/admin-api/internal/domain/repository"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"go.uber.org/zap"
)

// Venue name fallbacks, substituted when a referenced document is missing or
// carries no name. A deleted venue is indistinguishable from a never-set
// reference here; both render the generic label.
const (
	fallbackStoreName      = "Store"
	fallbackRestaurantName = "Restaurant"
	noVenuePlaceholder     = "-"
)

// VenueNames maps the venue ids referenced by an order batch to display
// names. It is rebuilt from scratch on every fetch cycle and never persisted.
type VenueNames struct {
	Stores      map[string]string `json:"stores"`
	Restaurants map[string]string `json:"restaurants"`
}

// DisplayName returns the resolved venue name for an order: the store name if
// a store is referenced, else the restaurant name, else a neutral placeholder.
func (n VenueNames) DisplayName(o entity.Order) string {
	if o.StoreID != "" {
		if name, ok := n.Stores[o.StoreID]; ok && name != "" {
			return name
		}
		return fallbackStoreName
	}
	if o.RestaurantID != "" {
		if name, ok := n.Restaurants[o.RestaurantID]; ok && name != "" {
			return name
		}
		return fallbackRestaurantName
	}
	return noVenuePlaceholder
}

// OrderView is an order with its resolved venue name attached, ready for the
// list and detail views.
type OrderView struct {
	entity.Order
	VenueName string `json:"venue_name"`
}

// OrderService loads orders and resolves their venue references.
type OrderService struct {
	orderRepo repository.OrderRepository
	venueRepo repository.VenueRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, venueRepo repository.VenueRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		venueRepo: venueRepo,
	}
}

// BrowseOrders fetches the full order collection, resolves venue names for
// the batch and returns a fresh browser over the result. A failed bulk fetch
// surfaces a single upstream error; partial results are never returned.
func (s *OrderService) BrowseOrders(ctx context.Context) (*OrderBrowser, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		logger.L().Error("order fetch failed", zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch orders")
	}

	names := s.ResolveVenueNames(ctx, orders)

	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = OrderView{Order: o, VenueName: names.DisplayName(o)}
	}

	return NewOrderBrowser(views), nil
}

// GetOrder fetches a single order and presents its detail view.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		logger.L().Error("order fetch failed", zap.String("order_id", id), zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch orders")
	}

	names := s.ResolveVenueNames(ctx, []entity.Order{*order})
	view := OrderView{Order: *order, VenueName: names.DisplayName(*order)}
	detail := PresentOrder(view)
	return &detail, nil
}

// ResolveVenueNames resolves the distinct store and restaurant ids referenced
// by a batch of orders. All lookups run concurrently and the result is only
// assembled after every lookup has finished. An individual lookup failure
// produces a fallback entry, never an error.
func (s *OrderService) ResolveVenueNames(ctx context.Context, orders []entity.Order) VenueNames {
	storeIDs := make(map[string]struct{})
	restaurantIDs := make(map[string]struct{})
	for _, o := range orders {
		if o.StoreID != "" {
			storeIDs[o.StoreID] = struct{}{}
		}
		if o.RestaurantID != "" {
			restaurantIDs[o.RestaurantID] = struct{}{}
		}
	}

	names := VenueNames{
		Stores:      make(map[string]string, len(storeIDs)),
		Restaurants: make(map[string]string, len(restaurantIDs)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for id := range storeIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			name := s.lookupName(ctx, id, fallbackStoreName, s.venueRepo.GetStore)
			mu.Lock()
			names.Stores[id] = name
			mu.Unlock()
		}(id)
	}

	for id := range restaurantIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			name := s.lookupName(ctx, id, fallbackRestaurantName, s.venueRepo.GetRestaurant)
			mu.Lock()
			names.Restaurants[id] = name
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	return names
}

func (s *OrderService) lookupName(
	ctx context.Context,
	id, fallback string,
	get func(context.Context, string) (*entity.Venue, error),
) string {
	venue, err := get(ctx, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			logger.L().Warn("venue lookup failed", zap.String("venue_id", id), zap.Error(err))
		}
		return fallback
	}
	if venue.Name == "" || venue.Name == "No Name" {
		return fallback
	}
	return venue.Name
}
