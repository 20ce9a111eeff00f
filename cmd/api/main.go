// Package main is the entry point for the BudgetBook API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budgetbook/backend/config"
	"github.com/budgetbook/backend/internal/application/usecase/account"
	"github.com/budgetbook/backend/internal/application/usecase/auth"
	"github.com/budgetbook/backend/internal/application/usecase/budget"
	"github.com/budgetbook/backend/internal/application/usecase/category"
	"github.com/budgetbook/backend/internal/application/usecase/transaction"
	"github.com/budgetbook/backend/internal/infra/db"
	"github.com/budgetbook/backend/internal/infra/server/router"
	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetbook/backend/internal/integration/persistence"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting BudgetBook API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.AccountModel{},
		&model.BudgetPeriodModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Connect to Redis for rate limiting
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	accountRepo := persistence.NewAccountRepository(database.DB())
	periodRepo := persistence.NewBudgetPeriodRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	uow := persistence.NewUnitOfWork(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(periodRepo, categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(uow)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(uow)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(uow)

	// Create budget use cases
	getMonthUseCase := budget.NewGetMonthUseCase(periodRepo, categoryRepo)
	assignMoneyUseCase := budget.NewAssignMoneyUseCase(uow)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(uow)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow)

	// Create controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)
	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	budgetController := controller.NewBudgetController(
		getMonthUseCase,
		assignMoneyUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		budgetController,
		transactionController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("Failed to close redis connection", "error", err)
	}

	slog.Info("Server exited properly")
}
