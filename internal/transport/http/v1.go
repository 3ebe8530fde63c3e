package http

import (
	"github.com/gin-gonic/gin"

	"github.com/vaultpay/payout-backend/internal/handler"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler) {
	v1 := r.Group("/api/v1")

	payouts := v1.Group("/payouts")
	{
		payouts.POST("", h.PayoutHandler.Create)
		payouts.GET("", h.PayoutHandler.List)
		payouts.GET("/:id", h.PayoutHandler.Get)
		payouts.POST("/:id/approve", h.PayoutHandler.Approve)
	}

	v1.GET("/health/db", h.HealthHandler.Database)

	r.GET("/metrics", h.MetricsHandler.Handler())
	r.GET("/healthz", h.HealthHandler.Basic)
}
