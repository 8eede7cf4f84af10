package handler

import (
	"strconv"
	"strings"

	"wordgen/internal/domain"
	"wordgen/internal/view"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and shows the main menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	if c.Callback() == nil {
		h.logger.Info("User started bot",
			zap.Int64("user_id", userID),
			zap.String("username", c.Sender().Username),
		)
	}

	h.ResetInput(userID)

	if c.Callback() != nil {
		return h.show(c, mainMenuText, mainMenuMarkup())
	}
	return c.Send(mainMenuText+"\n\n"+helpText, mainMenuMarkup())
}

// handleWords handles /words [N]
func (h *Handler) handleWords(c tele.Context) error {
	userID := c.Sender().ID

	payload := strings.TrimSpace(c.Message().Payload)
	if payload == "" {
		return h.promptCount(c, userID)
	}
	return h.generate(c, userID, payload)
}

// handleGeneratePrompt asks for a word count from an inline button
func (h *Handler) handleGeneratePrompt(c tele.Context) error {
	return h.promptCount(c, c.Sender().ID)
}

func (h *Handler) promptCount(c tele.Context, userID int64) error {
	h.UpdateSession(userID, func(s domain.Session) domain.Session {
		s.Input = domain.InputWaitingCount
		return s
	})

	if c.Callback() != nil {
		// Keep the previous list visible, ask in a new message
		_ = c.Respond()
	}
	return c.Send(countPromptText, cancelMarkup())
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore unknown commands
	if strings.HasPrefix(text, "/") {
		return nil
	}

	session := h.Session(userID)

	switch session.Input {
	case domain.InputWaitingCount:
		return h.generate(c, userID, text)

	case domain.InputWaitingSearch:
		return h.applySearch(c, userID, text)

	default:
		// A bare number starts a generation
		if _, err := domain.ParseCount(text); err == nil {
			return h.generate(c, userID, text)
		}
		return c.Send(mainMenuText, mainMenuMarkup())
	}
}

// generate validates raw, fetches the words and shows the new batch
func (h *Handler) generate(c tele.Context, userID int64, raw string) error {
	count, err := domain.ParseCount(raw)
	if err != nil {
		h.logger.Debug("Rejected word count",
			zap.Int64("user_id", userID),
			zap.String("input", raw),
			zap.Error(err),
		)
		return c.Send(countErrorText(err), cancelMarkup())
	}

	if !h.tryAcquire(userID) {
		return c.Send("⏳ Still working on your previous list, please wait.")
	}
	defer h.release(userID)

	h.ResetInput(userID)
	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send typing action", zap.Error(err))
	}

	words, err := h.generator.Generate(h.ctx, count)
	if err != nil {
		h.logger.Error("Failed to generate words",
			zap.Int64("user_id", userID),
			zap.Int("count", count),
			zap.Error(err),
		)
		return c.Send("Something went wrong. Please try again later.")
	}

	batch := domain.NewBatch(words)
	h.UpdateSession(userID, func(s domain.Session) domain.Session {
		s.Batch = batch
		return s
	})

	return h.sendBatch(c, batch)
}

// sendBatch sends the list in as many messages as needed, actions on the last
func (h *Handler) sendBatch(c tele.Context, batch domain.Batch) error {
	chunks := renderBatch(batch)
	for i, chunk := range chunks {
		if i == len(chunks)-1 {
			return c.Send(chunk, batchMarkup(batch))
		}
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

// handleRemove handles /remove K with a 1-based word number
func (h *Handler) handleRemove(c tele.Context) error {
	userID := c.Sender().ID

	k, err := strconv.Atoi(strings.TrimSpace(c.Message().Payload))
	if err != nil {
		return c.Send("Usage: /remove K, where K is the word number in the list.")
	}

	var removeErr error
	session := h.UpdateSession(userID, func(s domain.Session) domain.Session {
		s.Batch, removeErr = s.Batch.Remove(k - 1)
		return s
	})
	if removeErr != nil {
		return c.Send("⚠️ " + capitalize(removeErr.Error()) + ".")
	}

	return h.sendBatch(c, session.Batch)
}

// handleExport sends the last list as plain text, one word per line
func (h *Handler) handleExport(c tele.Context) error {
	userID := c.Sender().ID
	batch := h.Session(userID).Batch

	if c.Callback() != nil {
		_ = c.Respond()
	}

	if batch.Empty() {
		return c.Send("No words yet. Generate some with /words.")
	}

	for _, chunk := range view.Split(batch.Joined(), messageLimit) {
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}
