package handler

import (
	"fmt"
	"strings"
	"testing"

	"wordgen/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveData_RoundTrip(t *testing.T) {
	id := uuid.New()

	for _, index := range []int{0, 7, 19} {
		data := removeData(id, index)
		assert.LessOrEqual(t, len(data), 63, "callback data is limited to 64 bytes")

		gotID, gotIndex, err := parseRemoveData(data)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, index, gotIndex)
	}
}

func TestParseRemoveData_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "wrong prefix", data: "tab_users"},
		{name: "no index", data: "rm_" + uuid.NewString()},
		{name: "bad uuid", data: "rm_not-a-uuid_1"},
		{name: "bad index", data: "rm_" + uuid.NewString() + "_x"},
		{name: "negative index", data: "rm_" + uuid.NewString() + "_-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseRemoveData(tt.data)
			assert.ErrorIs(t, err, errBadCallback)
		})
	}
}

func TestRenderBatch(t *testing.T) {
	assert.Equal(t,
		[]string{"🎲 2 words:\n\n1. sun\n2. moon"},
		renderBatch(domain.NewBatch([]string{"sun", "moon"})),
	)

	empty := renderBatch(domain.NewBatch(nil))
	require.Len(t, empty, 1)
	assert.Contains(t, empty[0], "empty")
}

func TestBatchMarkup(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		wantRemove int
		wantRows   int
	}{
		{name: "empty", size: 0, wantRemove: 0, wantRows: 1},
		{name: "one word", size: 1, wantRemove: 1, wantRows: 3},
		{name: "full row", size: 5, wantRemove: 5, wantRows: 3},
		{name: "partial second row", size: 7, wantRemove: 7, wantRows: 4},
		{name: "largest with buttons", size: maxRemoveButtons, wantRemove: maxRemoveButtons, wantRows: 6},
		{name: "too large for buttons", size: maxRemoveButtons + 1, wantRemove: 0, wantRows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]string, tt.size)
			for i := range words {
				words[i] = fmt.Sprintf("w%d", i)
			}
			b := domain.NewBatch(words)

			markup := batchMarkup(b)
			assert.Len(t, markup.InlineKeyboard, tt.wantRows)

			removes := 0
			for _, row := range markup.InlineKeyboard {
				assert.LessOrEqual(t, len(row), removeButtonsRow)
				for _, btn := range row {
					if strings.HasPrefix(btn.Unique, removePrefix) {
						_, idx, err := parseRemoveData(btn.Unique)
						require.NoError(t, err)
						assert.Equal(t, fmt.Sprintf("✖ %d", idx+1), btn.Text)
						removes++
					}
				}
			}
			assert.Equal(t, tt.wantRemove, removes)
		})
	}
}

func TestTabMarkup(t *testing.T) {
	markup := tabMarkup(domain.TabAlerts, "")

	var labels []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	assert.Equal(t, []string{
		"Overview", "Users",
		"Transactions", "• Security Alerts",
		"Analytics",
		btnMainMenu.Text,
	}, labels)

	withSearch := tabMarkup(domain.TabUsers, "john")
	assert.Len(t, withSearch.InlineKeyboard, len(markup.InlineKeyboard)+1)
}

func TestCountErrorText(t *testing.T) {
	_, err := domain.ParseCount("")
	assert.Equal(t, "⚠️ Count is required. "+countPromptText, countErrorText(err))

	assert.Equal(t, "⚠️ "+countPromptText, countErrorText(fmt.Errorf("other")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Word", capitalize("word"))
}
