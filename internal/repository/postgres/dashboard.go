package postgres

import (
	"database/sql"

	"wordgen/internal/domain"
)

// DashboardRepo implements repository.DashboardRepository on PostgreSQL.
// It only reads; the tables are seeded by migrations.
type DashboardRepo struct {
	db *sql.DB
}

// NewDashboardRepo creates a new dashboard repository
func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// GetStats returns the headline numbers
// Missing stats row yields zero values
func (r *DashboardRepo) GetStats() (domain.Stats, error) {
	var s domain.Stats
	query := `
		SELECT total_users, total_revenue, active_transactions, flagged_accounts
		FROM dashboard_stats
		WHERE id = 1
	`
	err := r.db.QueryRow(query).Scan(
		&s.TotalUsers, &s.TotalRevenue, &s.ActiveTransactions, &s.FlaggedAccounts,
	)

	if err == sql.ErrNoRows {
		return domain.Stats{}, nil
	}
	if err != nil {
		return domain.Stats{}, err
	}

	return s, nil
}

// ListTransactions returns the most recent transactions first
// limit <= 0 returns all rows
func (r *DashboardRepo) ListTransactions(limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_name, amount, type, status, time_label
		FROM transactions
		ORDER BY position ASC
	`

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(query+" LIMIT $1", limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var status string
		if err := rows.Scan(&tx.ID, &tx.User, &tx.Amount, &tx.Type, &status, &tx.Time); err != nil {
			return nil, err
		}
		tx.Status = domain.TransactionStatus(status)
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// ListFlaggedAccounts returns all flagged accounts
func (r *DashboardRepo) ListFlaggedAccounts() ([]domain.FlaggedAccount, error) {
	query := `
		SELECT id, name, reason, risk, amount
		FROM flagged_accounts
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.FlaggedAccount
	for rows.Next() {
		var a domain.FlaggedAccount
		var risk string
		if err := rows.Scan(&a.ID, &a.Name, &a.Reason, &risk, &a.Amount); err != nil {
			return nil, err
		}
		a.Risk = domain.Risk(risk)
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

// ListUsers returns all users ordered by id
func (r *DashboardRepo) ListUsers() ([]domain.User, error) {
	query := `
		SELECT id, name, email, balance, status, joined_on
		FROM users
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var status string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Balance, &status, &u.JoinedAt); err != nil {
			return nil, err
		}
		u.Status = domain.UserStatus(status)
		users = append(users, u)
	}

	return users, rows.Err()
}
