// Package view renders dashboard data as plain text for chat messages and the terminal.
package view

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"wordgen/internal/domain"
	"wordgen/internal/service"
)

// Tab renders the tab selected in session, applying its search
func Tab(dashboard *service.DashboardService, session domain.Session, now time.Time) (string, error) {
	switch session.Tab {
	case domain.TabUsers:
		users, err := dashboard.Users(session.Search)
		if err != nil {
			return "", err
		}
		return Users(users, session.Search, now), nil

	case domain.TabTransactions:
		txs, err := dashboard.Transactions(session.Search)
		if err != nil {
			return "", err
		}
		return Transactions(txs, session.Search), nil

	case domain.TabAlerts:
		accounts, err := dashboard.Alerts()
		if err != nil {
			return "", err
		}
		return Alerts(accounts), nil

	case domain.TabAnalytics:
		return Analytics(dashboard.AnalyticsSections()), nil

	default:
		ov, err := dashboard.Overview()
		if err != nil {
			return "", err
		}
		return Overview(ov), nil
	}
}

// Overview renders the stat cards, recent transactions and flagged accounts
func Overview(ov domain.Overview) string {
	var sb strings.Builder
	sb.WriteString("📊 Dashboard Overview\n\n")

	for _, card := range ov.Cards {
		fmt.Fprintf(&sb, "%s: %s", card.Title, card.Value)
		if trend := domain.FormatTrend(card.Trend); trend != "" {
			fmt.Fprintf(&sb, " (%s)", trend)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nRecent Transactions\n")
	if len(ov.Recent) == 0 {
		sb.WriteString("No transactions\n")
	}
	for _, tx := range ov.Recent {
		fmt.Fprintf(&sb, "• %s — %s • %s — %s [%s]\n",
			tx.User, tx.Type, tx.Time, domain.FormatMoney(tx.Amount), tx.Status)
	}

	sb.WriteString("\nFlagged Accounts\n")
	if len(ov.FlaggedItems) == 0 {
		sb.WriteString("No flagged accounts\n")
	}
	for _, a := range ov.FlaggedItems {
		fmt.Fprintf(&sb, "%s %s — %s (%s risk)\n", riskIcon(a.Risk), a.Name, a.Reason, a.Risk)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Users renders the user list, noting the active search
func Users(users []domain.User, search string, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("👥 User Management")
	writeSearch(&sb, search)

	if len(users) == 0 {
		sb.WriteString("No users found")
		return sb.String()
	}

	for _, u := range users {
		fmt.Fprintf(&sb, "%s <%s>\nBalance: %s • %s • joined %s\n\n",
			u.Name, u.Email, domain.FormatMoney(u.Balance), u.Status, domain.FormatDate(u.JoinedAt, now))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func Transactions(txs []domain.Transaction, search string) string {
	var sb strings.Builder
	sb.WriteString("💳 Transaction Monitoring")
	writeSearch(&sb, search)

	if len(txs) == 0 {
		sb.WriteString("No transactions found")
		return sb.String()
	}

	for _, tx := range txs {
		fmt.Fprintf(&sb, "%s • %s • %s • %s • %s • %s\n",
			tx.ID, tx.User, domain.FormatMoney(tx.Amount), tx.Type, tx.Status, tx.Time)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Alerts renders flagged accounts in the order given
func Alerts(accounts []domain.FlaggedAccount) string {
	var sb strings.Builder
	sb.WriteString("🚨 Security Alerts\n\n")

	if len(accounts) == 0 {
		sb.WriteString("No open alerts")
		return sb.String()
	}

	for _, a := range accounts {
		fmt.Fprintf(&sb, "%s %s (%s)\n%s\nRisk: %s • Amount: %s\n\n",
			riskIcon(a.Risk), a.Name, a.ID, a.Reason, a.Risk, domain.FormatMoney(a.Amount))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func Analytics(sections []string) string {
	var sb strings.Builder
	sb.WriteString("📈 Analytics Dashboard\n")
	for _, s := range sections {
		fmt.Fprintf(&sb, "\n%s\nChart visualization would go here\n", s)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeSearch(sb *strings.Builder, search string) {
	if search != "" {
		fmt.Fprintf(sb, "\n🔎 Search: %q", search)
	}
	sb.WriteString("\n\n")
}

func riskIcon(r domain.Risk) string {
	switch r {
	case domain.RiskHigh:
		return "🔴"
	case domain.RiskMedium:
		return "🟡"
	default:
		return "🟢"
	}
}


// Split cuts text into chunks of at most limit bytes, preferring line breaks
func Split(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}

		extra := len(line)
		if current.Len() > 0 {
			extra++
		}
		if current.Len()+extra > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
