package testutil

import (
	"context"

	"wordgen/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDashboardRepository is a mock for DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetStats() (domain.Stats, error) {
	args := m.Called()
	return args.Get(0).(domain.Stats), args.Error(1)
}

func (m *MockDashboardRepository) ListTransactions(limit int) ([]domain.Transaction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockDashboardRepository) ListFlaggedAccounts() ([]domain.FlaggedAccount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlaggedAccount), args.Error(1)
}

func (m *MockDashboardRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockWordSource is a mock for WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) FetchWord(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// WordSourceFunc adapts a function to the WordSource interface
type WordSourceFunc func(ctx context.Context) (string, error)

func (f WordSourceFunc) FetchWord(ctx context.Context) (string, error) {
	return f(ctx)
}
