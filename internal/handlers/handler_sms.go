package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/paisatrack/paisa_tracker_app/internal/core/ports/services"
	"github.com/paisatrack/paisa_tracker_app/internal/dto"
	"github.com/paisatrack/paisa_tracker_app/internal/middleware"
)

// smsHandler accepts inbound message events from the delivery collaborator.
type smsHandler struct {
	ingestion portssvc.IngestionSvc
}

func newSMSHandler(ingestion portssvc.IngestionSvc) *smsHandler {
	return &smsHandler{ingestion: ingestion}
}

func registerSMSRoutes(rg *gin.RouterGroup, ingestion portssvc.IngestionSvc, rateLimit gin.HandlerFunc) {
	h := newSMSHandler(ingestion)
	rg.POST("/sms", rateLimit, h.receiveSMS)
}

// receiveSMS enqueues the message and returns immediately. Whether the message
// yields a transaction is decided asynchronously; classification and
// extraction outcomes are invisible to the sender by design.
func (h *smsHandler) receiveSMS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for receiveSMS", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ingestion.Enqueue(c.Request.Context(), req.ToDomainMessage()); err != nil {
		logger.Error("Failed to enqueue sms", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ingestion unavailable"})
		return
	}

	c.Status(http.StatusAccepted)
}
