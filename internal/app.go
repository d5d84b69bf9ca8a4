// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "pocketbook/internal/api"
	"pocketbook/internal/api/handler"
	"pocketbook/internal/config"
	"pocketbook/internal/repository"
	"pocketbook/internal/repository/postgres"
	"pocketbook/internal/service"
	"pocketbook/internal/util"
	"pocketbook/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	WalletRepository   repository.WalletRepository
	BucketRepository   repository.BucketRepository
	CategoryRepository repository.CategoryRepository
	EarningRepository  repository.EarningRepository
	ExpenseRepository  repository.ExpenseRepository
	MovementRepository repository.MovementRepository

	// Services
	WalletService   service.WalletService
	BucketService   service.BucketService
	CategoryService service.CategoryService
	EarningService  service.EarningService
	ExpenseService  service.ExpenseService
	MovementService service.MovementService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(app.Config.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.WalletRepository = postgres.NewWalletRepository(app.DB)
	app.BucketRepository = postgres.NewBucketRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.EarningRepository = postgres.NewEarningRepository(app.DB)
	app.ExpenseRepository = postgres.NewExpenseRepository(app.DB)
	app.MovementRepository = postgres.NewMovementRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	// The reconcilers get the concrete db.BeginTx, db.CommitTx, db.RollbackTx
	// functions from pkg/db; plain CRUD services run on the pool directly.
	app.WalletService = service.NewWalletService(app.DB, app.WalletRepository)
	app.BucketService = service.NewBucketService(app.DB, app.BucketRepository)
	app.CategoryService = service.NewCategoryService(app.DB, app.CategoryRepository)
	app.EarningService = service.NewEarningService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor for reads outside transactions
		app.WalletRepository,
		app.BucketRepository,
		app.EarningRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.ExpenseService = service.NewExpenseService(
		app.DB,
		app.DB,
		app.WalletRepository,
		app.BucketRepository,
		app.CategoryRepository,
		app.ExpenseRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.MovementService = service.NewMovementService(
		app.DB,
		app.DB,
		app.WalletRepository,
		app.MovementRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	app.HTTPHandler = router.NewRouter(router.Handlers{
		Wallet:   handler.NewWalletHandler(app.WalletService, app.Logger),
		Bucket:   handler.NewBucketHandler(app.BucketService, app.Logger),
		Category: handler.NewCategoryHandler(app.CategoryService, app.Logger),
		Earning:  handler.NewEarningHandler(app.EarningService, app.Logger),
		Expense:  handler.NewExpenseHandler(app.ExpenseService, app.Logger),
		Movement: handler.NewMovementHandler(app.MovementService, app.Logger),
	}, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
