package handler

import (
	"errors"
	"testing"

	"wordgen/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData(t *testing.T) {
	id := uuid.MustParse("6f1c2a4e-8b7d-4c3e-9a2f-1d5e7b9c0a11")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tab button",
			input:    "\ftab_users",
			expected: "tab_users",
		},
		{
			name:     "remove button",
			input:    "\f" + removeData(id, 3),
			expected: "rm_6f1c2a4e-8b7d-4c3e-9a2f-1d5e7b9c0a11_3",
		},
		{
			name:     "static button with padding",
			input:    "  \fmain_menu \n",
			expected: "main_menu",
		},
		{
			name:     "unprintable bytes inside",
			input:    "clear\x00_search\x01",
			expected: "clear_search",
		},
		{
			name:     "only marker",
			input:    "\f",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestHandleCallback_Routing(t *testing.T) {
	tests := []struct {
		name   string
		data   func(h *Handler) string
		verify func(t *testing.T, h *Handler, c *fakeContext)
	}{
		{
			name: "remove button edits the list",
			data: func(h *Handler) string { return removeData(h.Session(testUserID).Batch.ID, 3) },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				assert.Equal(t, []string{"w1", "w2", "w3", "w5"}, h.Session(testUserID).Batch.Words)
				require.Len(t, c.edited, 1)
				assert.Contains(t, c.edited[0], "4 words")
			},
		},
		{
			name: "tab button switches tab",
			data: func(*Handler) string { return "tab_users" },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				assert.Equal(t, domain.TabUsers, h.Session(testUserID).Tab)
				require.Len(t, c.edited, 1)
				assert.Contains(t, c.edited[0], "User Management")
			},
		},
		{
			name: "unknown tab is answered and ignored",
			data: func(*Handler) string { return "tab_reports" },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				assert.Equal(t, domain.TabOverview, h.Session(testUserID).Tab)
				require.Len(t, c.responses, 1)
				assert.Equal(t, "Unknown tab", c.responses[0].Text)
			},
		},
		{
			name: "generate button asks for a count",
			data: func(*Handler) string { return btnGenerate.Unique },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				assert.Equal(t, domain.InputWaitingCount, h.Session(testUserID).Input)
				assert.Equal(t, []string{countPromptText}, c.sent)
				// The old list stays untouched
				assert.Empty(t, c.edited)
				assert.Len(t, h.Session(testUserID).Batch.Words, 5)
			},
		},
		{
			name: "export button sends the plain list",
			data: func(*Handler) string { return btnExport.Unique },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				assert.Equal(t, []string{"w1\nw2\nw3\nw4\nw5"}, c.sent)
			},
		},
		{
			name: "dashboard button shows the current tab",
			data: func(*Handler) string { return btnDashboard.Unique },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				require.Len(t, c.edited, 1)
				assert.Contains(t, c.edited[0], "Dashboard Overview")
			},
		},
		{
			name: "malformed remove data",
			data: func(*Handler) string { return "rm_garbage" },
			verify: func(t *testing.T, h *Handler, c *fakeContext) {
				assert.Len(t, h.Session(testUserID).Batch.Words, 5)
				require.Len(t, c.responses, 1)
				assert.Equal(t, "Invalid button", c.responses[0].Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(sequence("w1", "w2", "w3", "w4", "w5"))
			require.NoError(t, h.handleWords(newCommand("/words 5", "5")))

			c := newButton(tt.data(h))
			require.NoError(t, h.handleCallback(c))
			tt.verify(t, h, c)
		})
	}
}

func TestShow_MessageNotModified(t *testing.T) {
	h := newTestHandler(sequence("a"))
	c := newButton(btnCancel.Unique)
	c.editErr = errors.New("telegram: message is not modified (400)")

	require.NoError(t, h.handleCallback(c))

	assert.Empty(t, c.sent)
	assert.Len(t, c.responses, 1)
}

func TestShow_EditFailedSendsNew(t *testing.T) {
	h := newTestHandler(sequence("a"))
	c := newButton(btnCancel.Unique)
	c.editErr = errors.New("telegram: message to edit not found (400)")

	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, []string{mainMenuText}, c.sent)
	assert.Len(t, c.responses, 1)
}
