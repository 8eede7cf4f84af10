package handler

import (
	"fmt"
	"strings"
	"time"

	"wordgen/internal/domain"
	"wordgen/internal/view"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDashboard handles /dashboard [tab] and the dashboard button
func (h *Handler) handleDashboard(c tele.Context) error {
	userID := c.Sender().ID

	var payload string
	if c.Callback() == nil && c.Message() != nil {
		payload = strings.TrimSpace(c.Message().Payload)
	}

	var tab domain.Tab
	if payload != "" {
		parsed, err := domain.ParseTab(payload)
		if err != nil {
			return c.Send(fmt.Sprintf("Unknown tab %q. Try one of: %s", payload, tabNames()))
		}
		tab = parsed
	}

	session := h.UpdateSession(userID, func(s domain.Session) domain.Session {
		if tab != "" {
			s.Tab = tab
		}
		s.Input = domain.InputIdle
		return s
	})

	return h.showTab(c, session)
}

// handleSearch handles /search [text]
func (h *Handler) handleSearch(c tele.Context) error {
	userID := c.Sender().ID

	term := strings.TrimSpace(c.Message().Payload)
	if term == "" {
		h.UpdateSession(userID, func(s domain.Session) domain.Session {
			s.Input = domain.InputWaitingSearch
			return s
		})
		return c.Send(searchPromptText, cancelMarkup())
	}

	return h.applySearch(c, userID, term)
}

func (h *Handler) applySearch(c tele.Context, userID int64, term string) error {
	session := h.UpdateSession(userID, func(s domain.Session) domain.Session {
		s.Search = term
		s.Input = domain.InputIdle
		// Search only narrows the user and transaction lists
		if s.Tab != domain.TabUsers && s.Tab != domain.TabTransactions {
			s.Tab = domain.TabUsers
		}
		return s
	})

	h.logger.Info("Dashboard search",
		zap.Int64("user_id", userID),
		zap.String("search", term),
	)

	return h.showTab(c, session)
}

// handleClearSearch drops the search filter and redraws the current tab
func (h *Handler) handleClearSearch(c tele.Context) error {
	session := h.UpdateSession(c.Sender().ID, func(s domain.Session) domain.Session {
		s.Search = ""
		return s
	})
	return h.showTab(c, session)
}

// showTab renders the session's tab and shows it with navigation
func (h *Handler) showTab(c tele.Context, session domain.Session) error {
	text, err := view.Tab(h.dashboard, session, time.Now())
	if err != nil {
		h.logger.Error("Failed to load dashboard",
			zap.String("tab", string(session.Tab)),
			zap.Error(err),
		)
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
		}
		return c.Send("Failed to load data. Please try again later.")
	}

	// Dashboard views are short; only the first chunk is editable
	return h.show(c, view.Split(text, messageLimit)[0], tabMarkup(session.Tab, session.Search))
}

func tabNames() string {
	names := make([]string, 0, len(domain.Tabs()))
	for _, t := range domain.Tabs() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
