package memory

import (
	"time"

	"wordgen/internal/domain"
)

// DashboardRepo implements repository.DashboardRepository over fixed data
type DashboardRepo struct {
	stats        domain.Stats
	transactions []domain.Transaction
	flagged      []domain.FlaggedAccount
	users        []domain.User
}

// NewDashboardRepo creates a repository holding the built-in dataset
func NewDashboardRepo() *DashboardRepo {
	return &DashboardRepo{
		stats: domain.Stats{
			TotalUsers:         24563,
			TotalRevenue:       1847293,
			ActiveTransactions: 1247,
			FlaggedAccounts:    18,
		},
		transactions: []domain.Transaction{
			{ID: "TX001", User: "John Doe", Amount: 1250.00, Type: "transfer", Status: domain.TxCompleted, Time: "2 min ago"},
			{ID: "TX002", User: "Sarah Smith", Amount: 3400.00, Type: "deposit", Status: domain.TxPending, Time: "5 min ago"},
			{ID: "TX003", User: "Mike Johnson", Amount: 890.50, Type: "withdrawal", Status: domain.TxCompleted, Time: "12 min ago"},
			{ID: "TX004", User: "Emma Wilson", Amount: 2100.00, Type: "transfer", Status: domain.TxFlagged, Time: "18 min ago"},
			{ID: "TX005", User: "David Brown", Amount: 567.25, Type: "payment", Status: domain.TxCompleted, Time: "25 min ago"},
		},
		flagged: []domain.FlaggedAccount{
			{ID: "ACC001", Name: "Alex Thompson", Reason: "Unusual activity pattern", Risk: domain.RiskHigh, Amount: 45000},
			{ID: "ACC002", Name: "Lisa Chen", Reason: "Multiple failed logins", Risk: domain.RiskMedium, Amount: 12500},
			{ID: "ACC003", Name: "Robert Davis", Reason: "Large transactions", Risk: domain.RiskLow, Amount: 89000},
		},
		users: []domain.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Balance: 12500.00, Status: domain.UserActive, JoinedAt: date(2024, 1, 15)},
			{ID: 2, Name: "Sarah Smith", Email: "sarah@example.com", Balance: 8900.50, Status: domain.UserActive, JoinedAt: date(2024, 2, 20)},
			{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", Balance: 15600.75, Status: domain.UserSuspended, JoinedAt: date(2024, 1, 8)},
			{ID: 4, Name: "Emma Wilson", Email: "emma@example.com", Balance: 22100.00, Status: domain.UserActive, JoinedAt: date(2024, 3, 12)},
			{ID: 5, Name: "David Brown", Email: "david@example.com", Balance: 5670.25, Status: domain.UserPending, JoinedAt: date(2024, 6, 1)},
		},
	}
}

// GetStats returns the headline numbers
func (r *DashboardRepo) GetStats() (domain.Stats, error) {
	return r.stats, nil
}

// ListTransactions returns up to limit most recent transactions; limit <= 0 returns all
func (r *DashboardRepo) ListTransactions(limit int) ([]domain.Transaction, error) {
	n := len(r.transactions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Transaction, n)
	copy(out, r.transactions[:n])
	return out, nil
}

// ListFlaggedAccounts returns all flagged accounts
func (r *DashboardRepo) ListFlaggedAccounts() ([]domain.FlaggedAccount, error) {
	out := make([]domain.FlaggedAccount, len(r.flagged))
	copy(out, r.flagged)
	return out, nil
}

// ListUsers returns all users
func (r *DashboardRepo) ListUsers() ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
