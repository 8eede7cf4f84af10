package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"wordgen/internal/domain"
	"wordgen/internal/repository"

	"go.uber.org/zap"
)

const recentTransactionsLimit = 5

// Month-over-month trends shown on the overview cards
const (
	usersTrend        = 12.5
	revenueTrend      = 8.2
	transactionsTrend = -2.1
	flaggedTrend      = -15.3
)

var analyticsSections = []string{
	"Revenue Trends",
	"User Growth",
	"Transaction Volume",
	"Risk Assessment",
}

// DashboardService prepares the read-only admin views
type DashboardService struct {
	repo   repository.DashboardRepository
	logger *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.DashboardRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		logger: logger,
	}
}

// Overview returns the stat cards, the latest transactions and flagged accounts
func (s *DashboardService) Overview() (domain.Overview, error) {
	stats, err := s.repo.GetStats()
	if err != nil {
		return domain.Overview{}, fmt.Errorf("load stats: %w", err)
	}

	recent, err := s.repo.ListTransactions(recentTransactionsLimit)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("load recent transactions: %w", err)
	}

	flagged, err := s.repo.ListFlaggedAccounts()
	if err != nil {
		return domain.Overview{}, fmt.Errorf("load flagged accounts: %w", err)
	}

	return domain.Overview{
		Cards:        statCards(stats),
		Recent:       recent,
		FlaggedItems: flagged,
	}, nil
}

// Users returns users whose name, email or status contains search
func (s *DashboardService) Users(search string) ([]domain.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	needle := normalize(search)
	if needle == "" {
		return users, nil
	}

	filtered := make([]domain.User, 0, len(users))
	for _, u := range users {
		if matches(needle, u.Name, u.Email, string(u.Status), strconv.Itoa(u.ID)) {
			filtered = append(filtered, u)
		}
	}

	s.logger.Debug("Filtered users",
		zap.String("search", needle),
		zap.Int("total", len(users)),
		zap.Int("matched", len(filtered)),
	)

	return filtered, nil
}

// Transactions returns transactions whose id, user, type or status contains search
func (s *DashboardService) Transactions(search string) ([]domain.Transaction, error) {
	txs, err := s.repo.ListTransactions(0)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	needle := normalize(search)
	if needle == "" {
		return txs, nil
	}

	filtered := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if matches(needle, tx.ID, tx.User, tx.Type, string(tx.Status)) {
			filtered = append(filtered, tx)
		}
	}

	s.logger.Debug("Filtered transactions",
		zap.String("search", needle),
		zap.Int("total", len(txs)),
		zap.Int("matched", len(filtered)),
	)

	return filtered, nil
}

// Alerts returns flagged accounts, most severe first
func (s *DashboardService) Alerts() ([]domain.FlaggedAccount, error) {
	accounts, err := s.repo.ListFlaggedAccounts()
	if err != nil {
		return nil, fmt.Errorf("load flagged accounts: %w", err)
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Risk.Rank() < accounts[j].Risk.Rank()
	})

	return accounts, nil
}

// AnalyticsSections returns the analytics panel titles
func (s *DashboardService) AnalyticsSections() []string {
	out := make([]string, len(analyticsSections))
	copy(out, analyticsSections)
	return out
}

func statCards(stats domain.Stats) []domain.StatCard {
	return []domain.StatCard{
		{Title: "Total Users", Value: domain.FormatCount(int64(stats.TotalUsers)), Trend: usersTrend},
		{Title: "Total Revenue", Value: "$" + domain.FormatCount(stats.TotalRevenue), Trend: revenueTrend},
		{Title: "Active Transactions", Value: domain.FormatCount(int64(stats.ActiveTransactions)), Trend: transactionsTrend},
		{Title: "Flagged Accounts", Value: strconv.Itoa(stats.FlaggedAccounts), Trend: flaggedTrend},
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func matches(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
