package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) GetActiveLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, loanID int64) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

type MockInvestorRepository struct {
	mock.Mock
}

func (m *MockInvestorRepository) GetActiveFundings(ctx context.Context) ([]domain.InvestorFunding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestorFunding), args.Error(1)
}

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Upsert(ctx context.Context, flag *domain.PaymentReminderFlag) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockReminderRepository) ListByStage(ctx context.Context, stage string) ([]domain.PaymentReminderFlag, error) {
	args := m.Called(ctx, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentReminderFlag), args.Error(1)
}
