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
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a Firestore-backed user repository
func NewUserRepository(client *firestore.Client) domainRepo.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	iter := r.client.Collection(database.CollectionUsers).Documents(ctx)
	defer iter.Stop()

	var users []entity.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, projectUser(snap.Ref.ID, snap.Data()))
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	snaps, err := r.client.Collection(database.CollectionUsers).Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return int64(len(snaps)), nil
}

type agentRepository struct {
	client *firestore.Client
}

// NewAgentRepository creates a Firestore-backed agent repository
func NewAgentRepository(client *firestore.Client) domainRepo.AgentRepository {
	return &agentRepository{client: client}
}

func (r *agentRepository) List(ctx context.Context) ([]entity.Agent, error) {
	iter := r.client.Collection(database.CollectionAgents).Documents(ctx)
	defer iter.Stop()

	var agents []entity.Agent
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list agents: %w", err)
		}
		agents = append(agents, projectAgent(snap.Ref.ID, snap.Data()))
	}
	return agents, nil
}

type adminRepository struct {
	client *firestore.Client
}

// NewAdminRepository creates a Firestore-backed staff account repository
func NewAdminRepository(client *firestore.Client) domainRepo.AdminRepository {
	return &adminRepository{client: client}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	iter := r.client.Collection(database.CollectionAdmins).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, apperror.NewNotFoundError("Admin")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin %s: %w", email, err)
	}

	admin := projectAdmin(snap.Ref.ID, snap.Data())
	return &admin, nil
}
