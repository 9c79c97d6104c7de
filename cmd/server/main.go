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

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DylanZhuo/GoodLand-W1/internal/config"
	"github.com/DylanZhuo/GoodLand-W1/internal/engine"
	"github.com/DylanZhuo/GoodLand-W1/internal/handler"
	"github.com/DylanZhuo/GoodLand-W1/internal/repository"
	"github.com/DylanZhuo/GoodLand-W1/internal/service"
	"github.com/DylanZhuo/GoodLand-W1/pkg/response"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := initDB(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	eng, err := buildEngine(cfg)
	if err != nil {
		logger.Fatal("Failed to build engine policy", zap.Error(err))
	}

	loanRepo := repository.NewLoanRepository(db)
	investorRepo := repository.NewInvestorRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	cashflowService := service.NewCashflowService(loanRepo, investorRepo, eng, redisClient, cfg, logger)
	reminderService := service.NewReminderService(investorRepo, reminderRepo, cfg, logger)

	cashflowHandler := handler.NewCashflowHandler(cashflowService)
	reminderHandler := handler.NewReminderHandler(reminderService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	router := setupRoutes(cashflowHandler, reminderHandler, healthHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() || cfg.Logging.Format != "json" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	specialProjects, err := cfg.SpecialProjectIDs()
	if err != nil {
		return nil, err
	}
	policy := engine.NewPolicy(specialProjects, cfg.Business.CompanyNameMatch, cfg.PaidTolerance())
	return engine.New(policy), nil
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(cashflowHandler *handler.CashflowHandler, reminderHandler *handler.ReminderHandler, healthHandler *handler.HealthHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware)
	router.Use(response.CORSMiddleware)

	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/cashflow/forecast", cashflowHandler.Forecast).Methods("GET")
	api.HandleFunc("/loans/status", cashflowHandler.LoanBook).Methods("GET")
	api.HandleFunc("/reminders", reminderHandler.Upcoming).Methods("GET")
	api.HandleFunc("/reminders/mark", reminderHandler.Mark).Methods("POST")

	return router
}
