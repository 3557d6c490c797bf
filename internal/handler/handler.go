package handler

import (
	"context"
	"time"

	"nutritrack/internal/dialog"
	"nutritrack/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	telemw "gopkg.in/telebot.v3/middleware"
)

// Commands is the command menu published to Telegram
var Commands = []tele.Command{
	{Text: "start", Description: "Start the bot"},
	{Text: "help", Description: "Show the list of commands"},
	{Text: "track", Description: "Track your meal"},
	{Text: "view", Description: "View your meal history"},
	{Text: "delete", Description: "Delete your meal history"},
	{Text: "cancel", Description: "Cancel the current operation"},
}

// Settings returns the bot settings. Updates are handled one at a time in
// arrival order, so a chat's dialog never sees its messages reordered.
func Settings(token string, logger *zap.Logger) tele.Settings {
	return tele.Settings{
		Token:       token,
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		Synchronous: true,
		OnError:     OnError(logger),
	}
}

// Handler connects the bot to the dialog router
type Handler struct {
	bot    *tele.Bot
	router *dialog.Router
	logger *zap.Logger

	// replier adapts a telebot context for the router
	replier func(c tele.Context) dialog.Replier
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, router *dialog.Router, logger *zap.Logger) *Handler {
	return &Handler{
		bot:     bot,
		router:  router,
		logger:  logger,
		replier: newContextReplier,
	}
}

// RegisterHandlers registers middleware and all bot handlers
func (h *Handler) RegisterHandlers() {
	// Middleware must be in place before Handle is called
	h.bot.Use(
		telemw.Recover(func(err error) {
			h.logger.Error("Handler panicked", zap.Error(err))
		}),
		middleware.RequestLogger(h.logger),
	)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/track", h.handleTrack)
	h.bot.Handle("/view", h.handleView)
	h.bot.Handle("/delete", h.handleDelete)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)
}

// OnError returns the bot-wide error hook: log and keep polling
func OnError(logger *zap.Logger) func(error, tele.Context) {
	return func(err error, c tele.Context) {
		fields := []zap.Field{zap.Error(err)}
		if c != nil {
			if chat := c.Chat(); chat != nil {
				fields = append(fields, zap.Int64("chat_id", chat.ID))
			}
			if upd := c.Update(); upd.ID != 0 {
				fields = append(fields, zap.Int("update_id", upd.ID))
			}
		}
		logger.Error("Update caused error", fields...)
	}
}

func (h *Handler) handleStart(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.Start(context.Background(), id, h.replier(c))
}

func (h *Handler) handleHelp(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.Help(context.Background(), id, h.replier(c))
}

func (h *Handler) handleTrack(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.Track(context.Background(), id, h.replier(c))
}

func (h *Handler) handleView(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.View(context.Background(), id, h.replier(c))
}

func (h *Handler) handleDelete(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.Delete(context.Background(), id, h.replier(c))
}

func (h *Handler) handleCancel(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.Cancel(context.Background(), id, h.replier(c))
}

// handleText handles all non-command text messages
func (h *Handler) handleText(c tele.Context) error {
	id, ok := chatID(c)
	if !ok {
		return nil
	}
	return h.router.Text(context.Background(), id, c.Text(), h.replier(c))
}

// chatID returns the chat an update belongs to, or false for chatless updates
func chatID(c tele.Context) (int64, bool) {
	if chat := c.Chat(); chat != nil {
		return chat.ID, true
	}
	if sender := c.Sender(); sender != nil {
		return sender.ID, true
	}
	return 0, false
}

type contextReplier struct {
	c tele.Context
}

func newContextReplier(c tele.Context) dialog.Replier {
	return contextReplier{c: c}
}

func (r contextReplier) Reply(text string) error {
	return r.c.Send(text)
}
