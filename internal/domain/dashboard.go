package domain

// Stats holds the headline numbers of the overview tab
type Stats struct {
	TotalUsers         int
	TotalRevenue       int64
	ActiveTransactions int
	FlaggedAccounts    int
}

// StatCard is one headline number with its month-over-month trend in percent.
// A zero trend is not displayed.
type StatCard struct {
	Title string
	Value string
	Trend float64
}

// TransactionStatus is the processing state of a transaction
type TransactionStatus string

const (
	TxCompleted TransactionStatus = "completed"
	TxPending   TransactionStatus = "pending"
	TxFlagged   TransactionStatus = "flagged"
)

// Transaction is a recent money movement
type Transaction struct {
	ID     string
	User   string
	Amount float64
	Type   string
	Status TransactionStatus
	Time   string // relative, e.g. "2 min ago"
}

// Risk is the severity of a security alert
type Risk string

const (
	RiskHigh   Risk = "high"
	RiskMedium Risk = "medium"
	RiskLow    Risk = "low"
)

// Rank orders risks from most to least severe
func (r Risk) Rank() int {
	switch r {
	case RiskHigh:
		return 0
	case RiskMedium:
		return 1
	case RiskLow:
		return 2
	default:
		return 3
	}
}

// FlaggedAccount is an account raised by fraud monitoring
type FlaggedAccount struct {
	ID     string
	Name   string
	Reason string
	Risk   Risk
	Amount float64
}

// Overview is everything the overview tab shows
type Overview struct {
	Cards        []StatCard
	Recent       []Transaction
	FlaggedItems []FlaggedAccount
}
