package handler

import (
	"strings"
	"unicode"

	"wordgen/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same content was already shown, nothing to send
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one for commands
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles callbacks not routed to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch data {
	case btnGenerate.Unique:
		return h.handleGeneratePrompt(c)
	case btnExport.Unique:
		return h.handleExport(c)
	case btnDashboard.Unique:
		return h.handleDashboard(c)
	case btnClearSearch.Unique:
		return h.handleClearSearch(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	// Dynamic buttons
	switch {
	case strings.HasPrefix(data, tabPrefix):
		return h.handleTabSelection(c, data)
	case strings.HasPrefix(data, removePrefix):
		return h.handleRemoveButton(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleTabSelection switches the dashboard to another tab
func (h *Handler) handleTabSelection(c tele.Context, data string) error {
	userID := c.Sender().ID

	tab, err := domain.ParseTab(strings.TrimPrefix(data, tabPrefix))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown tab"})
	}

	session := h.UpdateSession(userID, func(s domain.Session) domain.Session {
		s.Tab = tab
		s.Input = domain.InputIdle
		return s
	})

	return h.showTab(c, session)
}

// handleRemoveButton removes one word from the batch the button belongs to
func (h *Handler) handleRemoveButton(c tele.Context, data string) error {
	userID := c.Sender().ID

	batchID, index, err := parseRemoveData(data)
	if err != nil {
		h.logger.Warn("Bad remove callback", zap.String("data", data), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Invalid button"})
	}

	var (
		stale     bool
		removeErr error
	)
	session := h.UpdateSession(userID, func(s domain.Session) domain.Session {
		if s.Batch.ID != batchID {
			stale = true
			return s
		}
		s.Batch, removeErr = s.Batch.Remove(index)
		return s
	})

	if stale {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This list was replaced. Use the latest one.",
			ShowAlert: true,
		})
	}
	if removeErr != nil {
		return c.Respond(&tele.CallbackResponse{Text: "That word is already gone"})
	}

	h.logger.Info("Word removed",
		zap.Int64("user_id", userID),
		zap.Int("index", index),
		zap.Int("remaining", session.Batch.Len()),
	)

	return h.show(c, renderBatch(session.Batch)[0], batchMarkup(session.Batch))
}

// handleCancel cancels pending input and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetInput(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}
