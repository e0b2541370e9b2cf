package service

import (
	"context"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"github.com/gbmfoods/admin-api/pkg/paystack"
	"go.uber.org/zap"
)

// TransactionGateway is the read surface of the payment gateway.
type TransactionGateway interface {
	ListTransactions(ctx context.Context) ([]paystack.Transaction, error)
}

// TransactionService proxies payment transactions from the gateway's read API.
type TransactionService struct {
	gateway TransactionGateway
}

// NewTransactionService creates a new transaction service
func NewTransactionService(gateway TransactionGateway) *TransactionService {
	return &TransactionService{gateway: gateway}
}

// ListTransactions returns all gateway transactions. Any gateway failure
// surfaces as a single upstream error; there are no retries.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	txns, err := s.gateway.ListTransactions(ctx)
	if err != nil {
		logger.L().Error("transaction fetch failed", zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch transactions")
	}

	out := make([]entity.Transaction, len(txns))
	for i, t := range txns {
		out[i] = entity.Transaction{
			ID:        t.ID,
			Reference: t.Reference,
			Amount:    t.Amount,
			Status:    t.Status,
			Channel:   t.Channel,
			Email:     t.Customer.Email,
			FirstName: t.Customer.FirstName,
			LastName:  t.Customer.LastName,
			PaidAt:    t.PaidAt,
		}
	}
	return out, nil
}
