package testutil

import (
	"time"

	"wordgen/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id int, name, email string, status domain.UserStatus) domain.User {
	return domain.User{
		ID:       id,
		Name:     name,
		Email:    email,
		Balance:  1000,
		Status:   status,
		JoinedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// NewTestTransaction creates a test transaction
func NewTestTransaction(id, user, txType string, status domain.TransactionStatus) domain.Transaction {
	return domain.Transaction{
		ID:     id,
		User:   user,
		Amount: 100,
		Type:   txType,
		Status: status,
		Time:   "1 min ago",
	}
}

// NewTestFlaggedAccount creates a test flagged account
func NewTestFlaggedAccount(id, name string, risk domain.Risk) domain.FlaggedAccount {
	return domain.FlaggedAccount{
		ID:     id,
		Name:   name,
		Reason: "test reason",
		Risk:   risk,
		Amount: 5000,
	}
}
