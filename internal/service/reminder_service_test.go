package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
	"github.com/DylanZhuo/GoodLand-W1/internal/engine"
	"github.com/DylanZhuo/GoodLand-W1/tests/mocks"
)

func testReminderService(investorRepo *mocks.MockInvestorRepository, reminderRepo *mocks.MockReminderRepository) *ReminderService {
	return NewReminderService(investorRepo, reminderRepo, testConfig(), zap.NewNop())
}

func TestUpcomingPayouts_AnnotatesFlags(t *testing.T) {
	investorRepo := &mocks.MockInvestorRepository{}
	reminderRepo := &mocks.MockReminderRepository{}
	svc := testReminderService(investorRepo, reminderRepo)

	lastPayment := time.Now().AddDate(0, 0, -20)
	nextDue := engine.NextDueDate(lastPayment)

	funding := domain.InvestorFunding{
		ID: 11, LoanID: 1, InvestorID: 101,
		InvestorName: "Jane Smith",
		Email:        "jane@example.com",
		Amount:       decimal.NewFromInt(250000),
		AnnualRate:   decimal.NewFromFloat(0.09),
		StartDate:    time.Now().AddDate(0, -3, 0),
		EndDate:      time.Now().AddDate(0, 9, 0),
		Payments: domain.PaymentSummary{
			Count:           2,
			LastPaymentDate: &lastPayment,
		},
	}

	investorRepo.On("GetActiveFundings", mock.Anything).Return([]domain.InvestorFunding{funding}, nil)
	reminderRepo.On("ListByStage", mock.Anything, domain.ReminderStageInvestorPayout).Return([]domain.PaymentReminderFlag{
		{Stage: domain.ReminderStageInvestorPayout, InvestorID: 101, ScheduledDate: nextDue, Paid: true},
	}, nil)

	reminders, err := svc.UpcomingPayouts(context.Background(), 30)

	require.NoError(t, err)
	require.NotEmpty(t, reminders)

	first := reminders[0]
	assert.Equal(t, int64(101), first.InvestorID)
	assert.True(t, first.ScheduledDate.Equal(nextDue))
	assert.True(t, first.Paid)
	assert.False(t, first.Ignored)
	// 250000 * 0.09 / 12
	assert.True(t, first.Amount.Equal(decimal.NewFromFloat(1875)), "amount = %s", first.Amount)

	investorRepo.AssertExpectations(t)
	reminderRepo.AssertExpectations(t)
}

func TestUpcomingPayouts_MissingContactStillReminds(t *testing.T) {
	investorRepo := &mocks.MockInvestorRepository{}
	reminderRepo := &mocks.MockReminderRepository{}
	svc := testReminderService(investorRepo, reminderRepo)

	funding := domain.InvestorFunding{
		ID: 12, LoanID: 2, InvestorID: 102,
		InvestorName: "Quiet Holdings",
		Amount:       decimal.NewFromInt(100000),
		AnnualRate:   decimal.NewFromFloat(0.12),
		StartDate:    time.Now().AddDate(0, 0, 5),
		EndDate:      time.Now().AddDate(1, 0, 0),
	}

	investorRepo.On("GetActiveFundings", mock.Anything).Return([]domain.InvestorFunding{funding}, nil)
	reminderRepo.On("ListByStage", mock.Anything, domain.ReminderStageInvestorPayout).Return([]domain.PaymentReminderFlag{}, nil)

	reminders, err := svc.UpcomingPayouts(context.Background(), 30)

	require.NoError(t, err)
	require.NotEmpty(t, reminders)
	assert.Empty(t, reminders[0].Email)
	assert.Empty(t, reminders[0].Phone)
	assert.False(t, reminders[0].Paid)
}

func TestMarkPaid(t *testing.T) {
	investorRepo := &mocks.MockInvestorRepository{}
	reminderRepo := &mocks.MockReminderRepository{}
	svc := testReminderService(investorRepo, reminderRepo)

	scheduled := time.Date(2025, time.October, 9, 0, 0, 0, 0, time.UTC)

	reminderRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(flag *domain.PaymentReminderFlag) bool {
		return flag.InvestorID == 101 &&
			flag.ScheduledDate.Equal(scheduled) &&
			flag.Paid && !flag.Ignored &&
			flag.Stage == domain.ReminderStageInvestorPayout
	})).Return(nil)

	err := svc.MarkPaid(context.Background(), 101, scheduled)

	require.NoError(t, err)
	reminderRepo.AssertExpectations(t)
}
