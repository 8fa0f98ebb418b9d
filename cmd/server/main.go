package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"congresstrack/internal/benchmark"
	"congresstrack/internal/config"
	cronrunner "congresstrack/internal/cron"
	"congresstrack/internal/db"
	"congresstrack/internal/ethics"
	"congresstrack/internal/handler"
	"congresstrack/internal/logger"
	gormrepository "congresstrack/internal/repository/gorm"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("CT_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	quoteClient := &benchmark.Client{
		HTTP:        &http.Client{Timeout: cfg.Benchmark.Timeout},
		QuoteURL:    cfg.Benchmark.QuoteURL,
		YearOpenURL: cfg.Benchmark.YearOpenURL,
		Symbol:      cfg.Benchmark.Symbol,
	}
	quoteCache := &benchmark.Cache{
		Source: quoteClient,
		TTL:    cfg.Benchmark.CacheTTL,
		Logger: logger,
	}

	ethicsService := &ethics.Service{
		Trades:      store,
		Politicians: store,
		Behavior:    &ethics.BehaviorAggregator{Benchmark: quoteCache, Logger: logger},
		Analyzer:    ethics.NewAnalyzer(),
		Logger:      logger,
		MaxTrades:   cfg.Ethics.MaxTrades,
		WindowDays:  cfg.Ethics.TimingWindowDays,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	ethicsHandler := &handler.EthicsHandler{Service: ethicsService, Logger: logger}
	ethicsHandler.Register(engine)
	tradeHandler := &handler.TradeHandler{Repo: store}
	tradeHandler.Register(engine)
	politicianHandler := &handler.PoliticianHandler{Repo: store}
	politicianHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err := cronRunner.Add(cfg.Cron.BenchmarkRefresh, func(ctx context.Context) {
			if err := quoteCache.Refresh(ctx); err != nil {
				logger.Warn("benchmark refresh failed", zap.Error(err))
				return
			}
			logger.Info("benchmark cache refreshed")
		})
		if err != nil {
			logger.Warn("cron register benchmark refresh failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
