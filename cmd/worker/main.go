package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/vaultpay/payout-backend/internal/chainrpc"
	"github.com/vaultpay/payout-backend/internal/handler/metrics"
	"github.com/vaultpay/payout-backend/internal/monitoring"
	"github.com/vaultpay/payout-backend/internal/risk"
	"github.com/vaultpay/payout-backend/internal/store"
	pgstore "github.com/vaultpay/payout-backend/internal/store/postgres"
	"github.com/vaultpay/payout-backend/internal/utils/config"
	"github.com/vaultpay/payout-backend/internal/utils/logger"
	"github.com/vaultpay/payout-backend/internal/worker"
)

func main() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	s := store.New()

	var chainRpc chainrpc.IChainRPC
	if appConfig.Blockchain.UseFakeChain {
		if appConfig.Environment.IsProduction() {
			logger.Fatal("fake chain client is not allowed in production")
		}
		logger.Info("using fake chain client")
		chainRpc = chainrpc.NewFake()
	} else {
		var err error
		chainRpc, err = chainrpc.New(appConfig, logger)
		if err != nil {
			logger.Fatal("failed to init chain rpc", map[string]string{
				"error": err.Error(),
			})
		}
	}

	riskChecker, err := risk.New(appConfig.Risk)
	if err != nil {
		logger.Fatal("invalid risk config", map[string]string{
			"error": err.Error(),
		})
	}

	metricsRegistry := prometheus.NewRegistry()
	workerMetrics := monitoring.NewWorkerMetrics(metricsRegistry)

	w := worker.New(db, s, chainRpc, riskChecker, appConfig, logger, workerMetrics)

	// metrics/health sidecar for the worker process
	go func() {
		r := gin.New()
		r.Use(gin.Recovery())
		r.GET("/metrics", metrics.NewMetricsHandler(metricsRegistry).Handler())
		r.GET("/healthz", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "ok"})
		})
		if err := r.Run(":9090"); err != nil {
			logger.Error("worker metrics server stopped", map[string]string{
				"error": err.Error(),
			})
		}
	}()

	c := cron.New()
	_, err = c.AddFunc("@every "+appConfig.Worker.TickPeriod, func() {
		result, err := w.Tick(appConfig.Worker.ID, time.Now().UTC(), appConfig.Worker.LeaseDuration)
		if err != nil {
			logger.Error("tick failed", map[string]string{
				"worker": appConfig.Worker.ID,
				"error":  err.Error(),
			})
			return
		}
		if result.Action != worker.ActionNone || result.ClaimedID != "" {
			logger.Info("tick completed", map[string]string{
				"worker":    appConfig.Worker.ID,
				"claimedId": result.ClaimedID,
				"action":    string(result.Action),
			})
		}
	})
	if err != nil {
		logger.Fatal("invalid tick period", map[string]string{
			"period": appConfig.Worker.TickPeriod,
			"error":  err.Error(),
		})
	}

	logger.Info("payout worker started", map[string]string{
		"worker": appConfig.Worker.ID,
		"period": appConfig.Worker.TickPeriod,
	})
	c.Run()
}
