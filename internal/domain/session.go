package domain

import (
	"fmt"
	"strings"
)

// Tab is a dashboard section
type Tab string

const (
	TabOverview     Tab = "overview"
	TabUsers        Tab = "users"
	TabTransactions Tab = "transactions"
	TabAlerts       Tab = "alerts"
	TabAnalytics    Tab = "analytics"
)

var tabLabels = map[Tab]string{
	TabOverview:     "Overview",
	TabUsers:        "Users",
	TabTransactions: "Transactions",
	TabAlerts:       "Security Alerts",
	TabAnalytics:    "Analytics",
}

// Tabs returns all tabs in display order
func Tabs() []Tab {
	return []Tab{TabOverview, TabUsers, TabTransactions, TabAlerts, TabAnalytics}
}

// Label returns the human-readable tab name
func (t Tab) Label() string {
	return tabLabels[t]
}

// ParseTab maps a tab name to a Tab
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tabLabels[t]; !ok {
		return "", fmt.Errorf("unknown tab %q", s)
	}
	return t, nil
}

// InputState is what the chat is expected to send next as plain text
type InputState string

const (
	InputIdle          InputState = "idle"
	InputWaitingCount  InputState = "waiting_count"
	InputWaitingSearch InputState = "waiting_search"
)

// Session holds the per-chat view state
type Session struct {
	Tab    Tab
	Search string
	Input  InputState
	Batch  Batch
}

// NewSession returns the state of a chat that has not interacted yet
func NewSession() Session {
	return Session{Tab: TabOverview, Input: InputIdle}
}

// Clone returns a copy that shares no memory with s
func (s Session) Clone() Session {
	c := s
	c.Batch = s.Batch.Clone()
	return c
}
