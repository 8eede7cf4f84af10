package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wordgen/internal/domain"
	"wordgen/internal/view"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v3"
)

const (
	// Telegram rejects messages longer than 4096 characters
	messageLimit = 4000

	// Larger batches are edited with /remove instead of buttons
	maxRemoveButtons = 20
	removeButtonsRow = 5

	removePrefix = "rm_"
	tabPrefix    = "tab_"
)

var errBadCallback = errors.New("malformed callback data")

const (
	mainMenuText     = "🏠 Main menu\n\nChoose an action:"
	countPromptText  = "How many words? Send a number from 1 to 1000."
	searchPromptText = "Send a name, email, id or status to filter users and transactions."
	helpText         = "Commands:\n" +
		"/words N — generate N random words\n" +
		"/remove K — remove word number K from the last list\n" +
		"/export — send the last list as plain text\n" +
		"/dashboard [tab] — open the admin dashboard\n" +
		"/search text — filter users and transactions"
)

// renderBatch returns the numbered word list split into sendable chunks
func renderBatch(b domain.Batch) []string {
	if b.Empty() {
		return []string{"The list is empty. Generate a new one with /words."}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎲 %d words:\n\n", b.Len())
	for i, w := range b.Words {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, w)
	}
	return view.Split(strings.TrimRight(sb.String(), "\n"), messageLimit)
}

// batchMarkup returns remove buttons for small batches plus the list actions
func batchMarkup(b domain.Batch) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if !b.Empty() && b.Len() <= maxRemoveButtons {
		row := tele.Row{}
		for i := range b.Words {
			row = append(row, markup.Data(fmt.Sprintf("✖ %d", i+1), removeData(b.ID, i)))
			if len(row) == removeButtonsRow {
				rows = append(rows, row)
				row = tele.Row{}
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if b.Empty() {
		rows = append(rows, markup.Row(btnGenerate, btnMainMenu))
	} else {
		rows = append(rows, markup.Row(btnExport, btnGenerate))
		rows = append(rows, markup.Row(btnMainMenu))
	}

	markup.Inline(rows...)
	return markup
}

func removeData(batchID uuid.UUID, index int) string {
	return removePrefix + batchID.String() + "_" + strconv.Itoa(index)
}

// parseRemoveData extracts the batch ID and word index from a remove button
func parseRemoveData(data string) (uuid.UUID, int, error) {
	rest, ok := strings.CutPrefix(data, removePrefix)
	if !ok {
		return uuid.Nil, 0, errBadCallback
	}

	sep := strings.LastIndex(rest, "_")
	if sep < 0 {
		return uuid.Nil, 0, errBadCallback
	}

	id, err := uuid.Parse(rest[:sep])
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("%w: %v", errBadCallback, err)
	}

	index, err := strconv.Atoi(rest[sep+1:])
	if err != nil || index < 0 {
		return uuid.Nil, 0, errBadCallback
	}

	return id, index, nil
}

// countErrorText explains a rejected count to the user
func countErrorText(err error) string {
	var countErr *domain.CountError
	if errors.As(err, &countErr) {
		return fmt.Sprintf("⚠️ %s. %s", capitalize(countErr.Reason), countPromptText)
	}
	return "⚠️ " + countPromptText
}

// tabMarkup returns the dashboard navigation with the active tab marked
func tabMarkup(active domain.Tab, search string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	tabs := domain.Tabs()
	for i := 0; i < len(tabs); i += 2 {
		row := tele.Row{}
		for _, tab := range tabs[i:min(i+2, len(tabs))] {
			label := tab.Label()
			if tab == active {
				label = "• " + label
			}
			row = append(row, markup.Data(label, tabPrefix+string(tab)))
		}
		rows = append(rows, row)
	}

	if search != "" {
		rows = append(rows, markup.Row(btnClearSearch))
	}
	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
