package middleware

import (
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

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

// RequestLogger logs every handled update with its duration
func RequestLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			id, _ := chatID(c)
			logger.Debug("Update handled",
				zap.Int64("chat_id", id),
				zap.Bool("command", strings.HasPrefix(c.Text(), "/")),
				zap.Duration("duration", time.Since(start)),
				zap.Bool("failed", err != nil),
			)
			return err
		}
	}
}
