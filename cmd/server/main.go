package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/supplement-store/internal/config"
	"example.com/supplement-store/internal/infra/persistence/mongodb"
	"example.com/supplement-store/internal/infra/security"
	httpapi "example.com/supplement-store/internal/interface/http"
	authuc "example.com/supplement-store/internal/usecase/auth"
	cataloguc "example.com/supplement-store/internal/usecase/catalog"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer db.Client().Disconnect(context.Background())

	productRepo := mongodb.NewProductRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("product indexes", zap.Error(err))
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("user indexes", zap.Error(err))
	}

	tokenSvc := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	hasher := security.NewBcryptService(0)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:    authuc.NewService(userRepo, hasher, tokenSvc),
		CatalogService: cataloguc.NewService(productRepo),
		TokenService:   tokenSvc,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.Router(),
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Server.AppEnv == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}
