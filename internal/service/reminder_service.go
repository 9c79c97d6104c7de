package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/DylanZhuo/GoodLand-W1/internal/config"
	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
	"github.com/DylanZhuo/GoodLand-W1/internal/engine"
	"github.com/DylanZhuo/GoodLand-W1/internal/repository"
	customError "github.com/DylanZhuo/GoodLand-W1/pkg/errors"
	"github.com/DylanZhuo/GoodLand-W1/pkg/utils"
)

// ReminderService projects upcoming investor payout dates and overlays
// the durable paid/ignored flags a human has recorded against them.
type ReminderService struct {
	investorRepo repository.InvestorRepository
	reminderRepo repository.ReminderRepository
	config       *config.Config
	logger       *zap.Logger
}

func NewReminderService(
	investorRepo repository.InvestorRepository,
	reminderRepo repository.ReminderRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		investorRepo: investorRepo,
		reminderRepo: reminderRepo,
		config:       cfg,
		logger:       logger,
	}
}

// UpcomingPayouts lists every scheduled investor payout falling within
// the day horizon, annotated with any paid/ignored flag. Fundings
// without contact details still produce reminders.
func (s *ReminderService) UpcomingPayouts(ctx context.Context, horizonDays int) ([]domain.PaymentReminder, error) {
	if horizonDays <= 0 {
		horizonDays = s.config.Business.ReminderHorizonDays
	}

	fundings, err := s.investorRepo.GetActiveFundings(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	flags, err := s.reminderRepo.ListByStage(ctx, domain.ReminderStageInvestorPayout)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	flagIndex := make(map[string]domain.PaymentReminderFlag, len(flags))
	for _, flag := range flags {
		flagIndex[flagKey(flag.InvestorID, flag.ScheduledDate)] = flag
	}

	now := time.Now()
	horizonEnd := now.AddDate(0, 0, horizonDays)

	var reminders []domain.PaymentReminder
	for _, funding := range fundings {
		anchor := engine.SelectAnchor(funding.Payments.LastPaymentDate, funding.TransactionDate, funding.StartDate)
		dates := engine.GenerateSchedule(anchor, funding.EndDate, horizonEnd, funding.Payments.Count > 0, now)
		amount := engine.RoundCurrency(engine.MonthlyInterest(funding.Amount, funding.AnnualRate))

		for _, scheduledDate := range dates {
			reminder := domain.PaymentReminder{
				Stage:         domain.ReminderStageInvestorPayout,
				LoanID:        funding.LoanID,
				InvestorID:    funding.InvestorID,
				InvestorName:  funding.InvestorName,
				Email:         funding.Email,
				Phone:         funding.Phone,
				ScheduledDate: scheduledDate,
				Amount:        amount,
			}
			if flag, ok := flagIndex[flagKey(funding.InvestorID, scheduledDate)]; ok {
				reminder.Paid = flag.Paid
				reminder.Ignored = flag.Ignored
			}
			reminders = append(reminders, reminder)
		}
	}

	sort.Slice(reminders, func(i, j int) bool {
		if !reminders[i].ScheduledDate.Equal(reminders[j].ScheduledDate) {
			return reminders[i].ScheduledDate.Before(reminders[j].ScheduledDate)
		}
		return reminders[i].InvestorID < reminders[j].InvestorID
	})

	return reminders, nil
}

// MarkPaid records a human confirmation that a scheduled payout went out.
func (s *ReminderService) MarkPaid(ctx context.Context, investorID int64, scheduledDate time.Time) error {
	return s.mark(ctx, investorID, scheduledDate, true, false)
}

// MarkIgnored suppresses a scheduled payout reminder without paying it.
func (s *ReminderService) MarkIgnored(ctx context.Context, investorID int64, scheduledDate time.Time) error {
	return s.mark(ctx, investorID, scheduledDate, false, true)
}

func (s *ReminderService) mark(ctx context.Context, investorID int64, scheduledDate time.Time, paid, ignored bool) error {
	flag := &domain.PaymentReminderFlag{
		Stage:         domain.ReminderStageInvestorPayout,
		InvestorID:    investorID,
		ScheduledDate: scheduledDate,
		Paid:          paid,
		Ignored:       ignored,
	}

	if err := s.reminderRepo.Upsert(ctx, flag); err != nil {
		return customError.WrapDatabaseError(err)
	}

	s.logger.Info("reminder flag updated",
		zap.Int64("investor_id", investorID),
		zap.String("scheduled_date", utils.FormatDate(scheduledDate)),
		zap.Bool("paid", paid),
		zap.Bool("ignored", ignored),
	)
	return nil
}

func flagKey(investorID int64, scheduledDate time.Time) string {
	return fmt.Sprintf("%d|%s", investorID, utils.FormatDate(scheduledDate))
}
