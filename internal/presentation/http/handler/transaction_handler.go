package handler

import (
	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List returns recent payment transactions from the payment gateway
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
		"total":        len(transactions),
	})
}
