package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DylanZhuo/GoodLand-W1/internal/config"
	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
	"github.com/DylanZhuo/GoodLand-W1/internal/engine"
	"github.com/DylanZhuo/GoodLand-W1/internal/repository"
	customError "github.com/DylanZhuo/GoodLand-W1/pkg/errors"
)

// Loans at or above this principal get diagnostic classification logs.
var largeLoanThreshold = decimal.NewFromInt(1000000)

// CashflowService orchestrates the forecast: it fetches the book,
// hands it to the engine with a single now snapshot, and caches the
// resulting report. The service owns all I/O; the engine stays pure.
type CashflowService struct {
	loanRepo     repository.LoanRepository
	investorRepo repository.InvestorRepository
	engine       *engine.Engine
	redis        *redis.Client
	config       *config.Config
	logger       *zap.Logger
}

func NewCashflowService(
	loanRepo repository.LoanRepository,
	investorRepo repository.InvestorRepository,
	eng *engine.Engine,
	redisClient *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) *CashflowService {
	return &CashflowService{
		loanRepo:     loanRepo,
		investorRepo: investorRepo,
		engine:       eng,
		redis:        redisClient,
		config:       cfg,
		logger:       logger,
	}
}

// Forecast produces the monthly cashflow report for the given horizon,
// serving from cache when a fresh copy exists.
func (s *CashflowService) Forecast(ctx context.Context, horizonMonths int) (*domain.CashflowReport, error) {
	if horizonMonths <= 0 {
		horizonMonths = s.config.Business.ForecastHorizonMonths
	}

	cacheKey := fmt.Sprintf("cashflow:forecast:%d", horizonMonths)
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached domain.CashflowReport
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("discarding unreadable cached forecast", zap.String("key", cacheKey))
		}
	}

	loans, err := s.loanRepo.GetActiveLoans(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	fundings, err := s.investorRepo.GetActiveFundings(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	// One snapshot for the whole projection; every per-month branch
	// must see the same current date.
	now := time.Now()
	report := s.engine.ProjectCashflow(loans, fundings, horizonMonths, now)

	s.logger.Info("cashflow forecast generated",
		zap.Int("horizon_months", horizonMonths),
		zap.Int("loans", len(loans)),
		zap.Int("fundings", len(fundings)),
		zap.String("total_net_cash", report.TotalNetCash.String()),
	)

	if s.redis != nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := s.redis.Set(ctx, cacheKey, payload, s.config.ForecastTTL()).Err(); err != nil {
				s.logger.Warn("failed to cache forecast", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return report, nil
}

// LoanBook classifies every loan on the active book: expected upfront
// interest, interest payment status and lifecycle status.
func (s *CashflowService) LoanBook(ctx context.Context) ([]domain.LoanStatusDetail, error) {
	loans, err := s.loanRepo.GetActiveLoans(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	now := time.Now()
	details := s.engine.ClassifyLoanBook(loans, now)

	// Operational visibility on notable loans: large principals and
	// anything already carrying a payment.
	for _, detail := range details {
		if detail.Principal.GreaterThanOrEqual(largeLoanThreshold) || detail.ActualPaid.IsPositive() {
			s.logger.Debug("loan classified",
				zap.Int64("loan_id", detail.LoanID),
				zap.String("interest_status", detail.InterestStatus),
				zap.String("loan_status", detail.LoanStatus),
				zap.String("expected", detail.ExpectedInterest.String()),
				zap.String("paid", detail.ActualPaid.String()),
			)
		}
	}

	return details, nil
}
