package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/DylanZhuo/GoodLand-W1/internal/config"
	"github.com/DylanZhuo/GoodLand-W1/internal/engine"
	"github.com/DylanZhuo/GoodLand-W1/internal/repository"
	"github.com/DylanZhuo/GoodLand-W1/internal/service"
)

const jobTimeout = 2 * time.Minute

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

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	specialProjects, err := cfg.SpecialProjectIDs()
	if err != nil {
		logger.Fatal("Failed to parse special project ids", zap.Error(err))
	}
	eng := engine.New(engine.NewPolicy(specialProjects, cfg.Business.CompanyNameMatch, cfg.PaidTolerance()))

	loanRepo := repository.NewLoanRepository(db)
	investorRepo := repository.NewInvestorRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	cashflowService := service.NewCashflowService(loanRepo, investorRepo, eng, redisClient, cfg, logger)
	reminderService := service.NewReminderService(investorRepo, reminderRepo, cfg, logger)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Fatal("Invalid scheduler timezone", zap.Error(err))
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))
	setupCronJobs(c, cfg, cashflowService, reminderService, logger)

	c.Start()
	logger.Info("Scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	logger.Info("Scheduler stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() || cfg.Logging.Format != "json" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func setupCronJobs(
	c *cron.Cron,
	cfg *config.Config,
	cashflowService *service.CashflowService,
	reminderService *service.ReminderService,
	logger *zap.Logger,
) {
	// Morning forecast snapshot: regenerates the report and warms the
	// cache before the dashboard's first read of the day.
	_, err := c.AddFunc(cfg.Scheduler.SnapshotSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		report, err := cashflowService.Forecast(ctx, cfg.Business.ForecastHorizonMonths)
		if err != nil {
			logger.Error("Forecast snapshot job failed", zap.Error(err))
			return
		}
		logger.Info("Forecast snapshot refreshed",
			zap.Int("months", len(report.Months)),
			zap.String("total_net_cash", report.TotalNetCash.String()),
		)
	})
	if err != nil {
		logger.Error("Failed to schedule forecast snapshot job", zap.Error(err))
	}

	// Daily payout reminder sweep.
	_, err = c.AddFunc(cfg.Scheduler.ReminderSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		reminders, err := reminderService.UpcomingPayouts(ctx, cfg.Business.ReminderHorizonDays)
		if err != nil {
			logger.Error("Reminder sweep job failed", zap.Error(err))
			return
		}

		outstanding := 0
		for _, reminder := range reminders {
			if !reminder.Paid && !reminder.Ignored {
				outstanding++
			}
		}
		logger.Info("Reminder sweep complete",
			zap.Int("scheduled", len(reminders)),
			zap.Int("outstanding", outstanding),
		)
	})
	if err != nil {
		logger.Error("Failed to schedule reminder sweep job", zap.Error(err))
	}
}
