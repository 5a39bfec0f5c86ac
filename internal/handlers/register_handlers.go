package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/paisatrack/paisa_tracker_app/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	store portssvc.TransactionSvcFacade,
	ingestion portssvc.IngestionSvc,
	smsRateLimit gin.HandlerFunc,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerTransactionRoutes(v1, store)
	registerSMSRoutes(v1, ingestion, smsRateLimit)
}
