package service

import (
	"context"

	"github.com/gbmfoods/admin-api/internal/domain/repository"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"go.uber.org/zap"
)

// DashboardService provides the staff dashboard statistics.
type DashboardService struct {
	orderRepo repository.OrderRepository
	venueRepo repository.VenueRepository
	userRepo  repository.UserRepository
	agentRepo repository.AgentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	venueRepo repository.VenueRepository,
	userRepo repository.UserRepository,
	agentRepo repository.AgentRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo: orderRepo,
		venueRepo: venueRepo,
		userRepo:  userRepo,
		agentRepo: agentRepo,
	}
}

// DashboardStats represents the dashboard counters.
type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalRestaurants int64 `json:"total_restaurants"`
	TotalOrders      int64 `json:"total_orders"`
	TotalAgents      int64 `json:"total_agents"`
	AgentsApproved   int64 `json:"agents_approved"`
	AgentsPending    int64 `json:"agents_pending"`
}

// GetStats returns collection counts plus the agent verification split.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, s.upstream(err)
	}
	stats.TotalUsers = users

	restaurants, err := s.venueRepo.CountRestaurants(ctx)
	if err != nil {
		return nil, s.upstream(err)
	}
	stats.TotalRestaurants = restaurants

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, s.upstream(err)
	}
	stats.TotalOrders = orders

	agents, err := s.agentRepo.List(ctx)
	if err != nil {
		return nil, s.upstream(err)
	}
	stats.TotalAgents = int64(len(agents))
	for _, a := range agents {
		if a.IsVerified {
			stats.AgentsApproved++
		} else {
			stats.AgentsPending++
		}
	}

	return stats, nil
}

func (s *DashboardService) upstream(err error) error {
	logger.L().Error("dashboard stats fetch failed", zap.Error(err))
	return apperror.NewUpstreamError("Failed to fetch dashboard stats")
}
