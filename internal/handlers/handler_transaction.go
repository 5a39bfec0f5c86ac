package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	portssvc "github.com/paisatrack/paisa_tracker_app/internal/core/ports/services"
	"github.com/paisatrack/paisa_tracker_app/internal/dto"
	"github.com/paisatrack/paisa_tracker_app/internal/middleware"
)

// transactionHandler handles HTTP requests against the local store.
type transactionHandler struct {
	store portssvc.TransactionSvcFacade
}

func newTransactionHandler(store portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{store: store}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, store portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(store)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
		txns.POST("/reload", h.reloadTransactions)
	}
}

// listTransactions serves the cached view, filtered by the optional month,
// category and bank query parameters. It never touches storage.
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var opts portssvc.FilterOptions
	if v, ok := c.GetQuery("month"); ok {
		opts.Month = &v
	}
	if v, ok := c.GetQuery("category"); ok {
		opts.Category = &v
	}
	if v, ok := c.GetQuery("bank"); ok {
		opts.Bank = &v
	}

	txns := h.store.Filter(opts)
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	txn := req.ToDomainTransaction(uuid.NewString())
	if err := h.store.Add(c.Request.Context(), txn); err != nil {
		logger.Error("Failed to add transaction", slog.String("transaction_id", txn.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save transaction"})
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(&txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	txn := req.ToDomainTransaction(id)
	if err := h.store.Edit(c.Request.Context(), txn); err != nil {
		logger.Error("Failed to edit transaction", slog.String("transaction_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	logger.Info("Transaction updated", slog.String("transaction_id", id))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(&txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		logger.Error("Failed to remove transaction", slog.String("transaction_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", id))
	c.Status(http.StatusNoContent)
}

// reloadTransactions resynchronizes the cache from the persisted relation.
// This is the recovery path after suspected cache divergence.
func (h *transactionHandler) reloadTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.store.Load(c.Request.Context()); err != nil {
		logger.Error("Failed to reload transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload transactions"})
		return
	}

	c.Status(http.StatusNoContent)
}
