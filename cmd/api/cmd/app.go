package cmd

import (
	"context"
	"fmt"
	"os"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	eventUseCase "github.com/amirhossein-jamali/gift-tracker/internal/domain/usecase/event"
	purchaseUseCase "github.com/amirhossein-jamali/gift-tracker/internal/domain/usecase/purchase"
	settlementUseCase "github.com/amirhossein-jamali/gift-tracker/internal/domain/usecase/settlement"
	userUseCase "github.com/amirhossein-jamali/gift-tracker/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/config"
)

// app is the wired application shared by the subcommands
type app struct {
	cfg    *config.Config
	logger coreport.Logger
	tp     coreport.TimeProvider
	db     *database.Manager
	tokens *security.JWTIssuer

	users       *userUseCase.UserUseCase
	events      *eventUseCase.EventUseCase
	purchases   *purchaseUseCase.PurchaseUseCase
	settlements *settlementUseCase.SettlementUseCase
}

// loadConfig applies the global flags and loads the validated configuration
func loadConfig() (*config.Config, error) {
	if environment != "" {
		if err := os.Setenv("GT_ENV", environment); err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.Logger.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// newApp connects to the database and wires repositories and use cases
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		return nil, err
	}
	appLogger = appLogger.With(map[string]any{"env": cfg.Environment})

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		_ = appLogger.Flush()
		return nil, err
	}

	db := dbManager.DB()
	uow := dbManager.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(db, appLogger)
	eventRepo := repository.NewEventRepository(db, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(db, appLogger)

	return &app{
		cfg:    cfg,
		logger: appLogger,
		tp:     tp,
		db:     dbManager,
		tokens: security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer, tp),

		users:       userUseCase.NewUserUseCase(uow, userRepo, security.NewBcryptHasher(cfg.Auth.BcryptCost), tp, appLogger),
		events:      eventUseCase.NewEventUseCase(uow, eventRepo, purchaseRepo, tp, appLogger),
		purchases:   purchaseUseCase.NewPurchaseUseCase(uow, eventRepo, purchaseRepo, tp, appLogger),
		settlements: settlementUseCase.NewSettlementUseCase(userRepo, eventRepo, purchaseRepo, appLogger),
	}, nil
}

// migrate brings the schema up to date
func (a *app) migrate(ctx context.Context) error {
	if err := a.db.Migrate(ctx); err != nil {
		a.logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// close releases the database and flushes the logger
func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = a.logger.Flush()
}
