package repository

import (
	"context"

	"wordgen/internal/domain"
)

// DashboardRepository provides read-only dashboard data
type DashboardRepository interface {
	GetStats() (domain.Stats, error)
	ListTransactions(limit int) ([]domain.Transaction, error)
	ListFlaggedAccounts() ([]domain.FlaggedAccount, error)
	ListUsers() ([]domain.User, error)
}

// WordSource fetches a single random word from an upstream provider
type WordSource interface {
	FetchWord(ctx context.Context) (string, error)
}
