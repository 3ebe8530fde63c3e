package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/vaultpay/payout-backend/internal/handler/health"
	"github.com/vaultpay/payout-backend/internal/handler/metrics"
	"github.com/vaultpay/payout-backend/internal/handler/payout"
	"github.com/vaultpay/payout-backend/internal/store"
	"github.com/vaultpay/payout-backend/internal/utils/config"
	"github.com/vaultpay/payout-backend/internal/utils/logger"
)

type Handler struct {
	PayoutHandler  payout.IHandler
	HealthHandler  health.IHandler
	MetricsHandler *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger, db *gorm.DB, s *store.Store,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		PayoutHandler:  payout.New(db, s, logger, appConfig),
		HealthHandler:  health.New(db, logger),
		MetricsHandler: metrics.NewMetricsHandler(metricsRegistry),
	}
}
