package service

import (
	"context"
	"strings"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
	"github.com/gbmfoods/admin-api/internal/domain/repository"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"go.uber.org/zap"
)

// DirectoryService backs the thin list views: users, agents and restaurants.
// Search is the same case-insensitive substring match the orders screen uses.
type DirectoryService struct {
	userRepo  repository.UserRepository
	agentRepo repository.AgentRepository
	venueRepo repository.VenueRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	userRepo repository.UserRepository,
	agentRepo repository.AgentRepository,
	venueRepo repository.VenueRepository,
) *DirectoryService {
	return &DirectoryService{
		userRepo:  userRepo,
		agentRepo: agentRepo,
		venueRepo: venueRepo,
	}
}

// ListUsers returns marketplace customer accounts matching the search.
func (s *DirectoryService) ListUsers(ctx context.Context, search string) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.L().Error("user fetch failed", zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch users")
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entity.User, 0, len(users))
	for _, u := range users {
		if matchesAny(needle, u.ID, u.Name, u.Email, u.Role) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// ListAgents returns delivery agents matching the search.
func (s *DirectoryService) ListAgents(ctx context.Context, search string) ([]entity.Agent, error) {
	agents, err := s.agentRepo.List(ctx)
	if err != nil {
		logger.L().Error("agent fetch failed", zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch agents")
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entity.Agent, 0, len(agents))
	for _, a := range agents {
		if matchesAny(needle, a.ID, a.Name, a.Email, a.Phone) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// ListRestaurants returns restaurant partners matching the search.
func (s *DirectoryService) ListRestaurants(ctx context.Context, search string) ([]entity.Venue, error) {
	venues, err := s.venueRepo.ListRestaurants(ctx)
	if err != nil {
		logger.L().Error("restaurant fetch failed", zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch restaurants")
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entity.Venue, 0, len(venues))
	for _, v := range venues {
		if matchesAny(needle, v.ID, v.Name, v.Email, v.Phone) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func matchesAny(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
