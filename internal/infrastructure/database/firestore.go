package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/gbmfoods/admin-api/internal/config"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"google.golang.org/api/option"
)

// Collection names in the backing store.
const (
	CollectionOrders      = "orders"
	CollectionStores      = "stores"
	CollectionRestaurants = "restaurants"
	CollectionUsers       = "users"
	CollectionAgents      = "agents"
	CollectionAdmins      = "admins"
)

// NewFirestoreClient creates a Firestore client for the configured project.
// Credentials fall back to application default credentials when no file is
// configured.
func NewFirestoreClient(ctx context.Context, cfg *config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firestore: %w", err)
	}

	logger.L().Info("Connected to Firestore project " + cfg.ProjectID)
	return client, nil
}
