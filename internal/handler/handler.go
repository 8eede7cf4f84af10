package handler

import (
	"context"
	"sync"

	"wordgen/internal/domain"
	"wordgen/internal/middleware"
	"wordgen/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	generator *service.GeneratorService
	dashboard *service.DashboardService
	logger    *zap.Logger

	// ctx bounds word generation; cancelling it fills pending words from the fallback pool
	ctx context.Context

	// Per-chat view state
	sessions   map[int64]domain.Session
	sessionMux sync.RWMutex

	// Chats with a generation in flight
	busy    map[int64]struct{}
	busyMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	generator *service.GeneratorService,
	dashboard *service.DashboardService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		generator: generator,
		dashboard: dashboard,
		logger:    logger,
		ctx:       ctx,
		sessions:  make(map[int64]domain.Session),
		busy:      make(map[int64]struct{}),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.RequestLogger(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/words", h.handleWords)
	h.bot.Handle("/remove", h.handleRemove)
	h.bot.Handle("/export", h.handleExport)
	h.bot.Handle("/dashboard", h.handleDashboard)
	h.bot.Handle("/search", h.handleSearch)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnGenerate, h.handleGeneratePrompt)
	h.bot.Handle(&btnExport, h.handleExport)
	h.bot.Handle(&btnDashboard, h.handleDashboard)
	h.bot.Handle(&btnClearSearch, h.handleClearSearch)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Session returns a snapshot of the chat's view state
func (h *Handler) Session(userID int64) domain.Session {
	h.sessionMux.RLock()
	defer h.sessionMux.RUnlock()

	s, exists := h.sessions[userID]
	if !exists {
		return domain.NewSession()
	}
	return s.Clone()
}

// UpdateSession applies fn to the chat's state and stores the result
func (h *Handler) UpdateSession(userID int64, fn func(domain.Session) domain.Session) domain.Session {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	s, exists := h.sessions[userID]
	if !exists {
		s = domain.NewSession()
	}
	s = fn(s.Clone())
	h.sessions[userID] = s
	return s.Clone()
}

// ResetInput stops waiting for free-text input
func (h *Handler) ResetInput(userID int64) {
	h.UpdateSession(userID, func(s domain.Session) domain.Session {
		s.Input = domain.InputIdle
		return s
	})
}

// tryAcquire marks a generation as running for the chat; false if one already is
func (h *Handler) tryAcquire(userID int64) bool {
	h.busyMux.Lock()
	defer h.busyMux.Unlock()

	if _, running := h.busy[userID]; running {
		return false
	}
	h.busy[userID] = struct{}{}
	return true
}

func (h *Handler) release(userID int64) {
	h.busyMux.Lock()
	defer h.busyMux.Unlock()
	delete(h.busy, userID)
}

// Inline keyboard buttons
var (
	btnGenerate = tele.Btn{
		Unique: "generate",
		Text:   "🎲 Generate words",
	}
	btnExport = tele.Btn{
		Unique: "export",
		Text:   "📋 Export",
	}
	btnDashboard = tele.Btn{
		Unique: "dashboard",
		Text:   "📊 Admin dashboard",
	}
	btnClearSearch = tele.Btn{
		Unique: "clear_search",
		Text:   "✖️ Clear search",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnGenerate),
		menu.Row(btnDashboard),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
