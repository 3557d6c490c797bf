package dialog

import (
	"context"
	"strings"

	"nutritrack/internal/domain"

	"go.uber.org/zap"
)

// Replier sends a text message back to the chat an update came from
type Replier interface {
	Reply(text string) error
}

// MealStore is the meal history the router reads and writes
type MealStore interface {
	Track(ctx context.Context, chatID int64, meal string) error
	History(ctx context.Context, chatID int64) ([]string, error)
	HasHistory(ctx context.Context, chatID int64) (bool, error)
	ClearHistory(ctx context.Context, chatID int64) error
}

// Advisor produces advisory text; false means the service was unavailable
type Advisor interface {
	MealAdvice(ctx context.Context, meal string) (string, bool)
	SmallTalk(ctx context.Context) (string, bool)
}

// Router routes commands and free text of a chat according to its dialog state.
// Callers must not run two updates of the same chat concurrently.
type Router struct {
	machine *Machine
	meals   MealStore
	advisor Advisor
	logger  *zap.Logger
}

// NewRouter creates a new router
func NewRouter(machine *Machine, meals MealStore, advisor Advisor, logger *zap.Logger) *Router {
	return &Router{
		machine: machine,
		meals:   meals,
		advisor: advisor,
		logger:  logger,
	}
}

// Start handles /start
func (r *Router) Start(_ context.Context, chatID int64, out Replier) error {
	r.logger.Info("Chat started bot", zap.Int64("chat_id", chatID))
	return out.Reply(msgStart)
}

// Help handles /help
func (r *Router) Help(_ context.Context, _ int64, out Replier) error {
	return out.Reply(msgHelp)
}

// Track handles /track: prompt for a meal and wait for it
func (r *Router) Track(_ context.Context, chatID int64, out Replier) error {
	r.machine.Set(chatID, domain.StateTracking)
	return out.Reply(msgTrackPrompt)
}

// View handles /view
func (r *Router) View(ctx context.Context, chatID int64, out Replier) error {
	meals, err := r.meals.History(ctx, chatID)
	if err != nil {
		r.logger.Error("Failed to load meal history", zap.Error(err), zap.Int64("chat_id", chatID))
		return out.Reply(msgError)
	}

	if len(meals) == 0 {
		return out.Reply(msgNoMeals)
	}
	return out.Reply(msgHistoryHeader + strings.Join(meals, "\n"))
}

// Delete handles /delete: ask for confirmation if there is anything to delete
func (r *Router) Delete(ctx context.Context, chatID int64, out Replier) error {
	has, err := r.meals.HasHistory(ctx, chatID)
	if err != nil {
		r.logger.Error("Failed to check meal history", zap.Error(err), zap.Int64("chat_id", chatID))
		return out.Reply(msgError)
	}

	if !has {
		r.machine.Reset(chatID)
		return out.Reply(msgNothingToDelete)
	}

	r.machine.Set(chatID, domain.StateConfirmingDelete)
	return out.Reply(msgConfirmDelete)
}

// Cancel handles /cancel from any state
func (r *Router) Cancel(_ context.Context, chatID int64, out Replier) error {
	if state := r.machine.State(chatID); state != domain.StateIdle {
		r.logger.Info("Dialog cancelled",
			zap.Int64("chat_id", chatID),
			zap.String("state", string(state)),
		)
	}
	r.machine.Reset(chatID)
	return out.Reply(msgCancelled)
}

// Text handles a plain message according to the chat's dialog state
func (r *Router) Text(ctx context.Context, chatID int64, text string, out Replier) error {
	// Unregistered commands are not meal descriptions
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch r.machine.State(chatID) {
	case domain.StateTracking:
		return r.completeTracking(ctx, chatID, text, out)
	case domain.StateConfirmingDelete:
		return r.completeDelete(ctx, chatID, text, out)
	default:
		return r.respond(ctx, text, out)
	}
}

func (r *Router) completeTracking(ctx context.Context, chatID int64, meal string, out Replier) error {
	if err := r.meals.Track(ctx, chatID, meal); err != nil {
		r.logger.Error("Failed to track meal",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		// Stay in tracking so the user can resend
		r.machine.Set(chatID, domain.StateTracking)
		return out.Reply(msgTrackFailed)
	}

	r.logger.Info("Meal tracked",
		zap.Int64("chat_id", chatID),
		zap.String("meal", meal),
	)
	r.machine.Reset(chatID)

	if err := out.Reply(msgTracked); err != nil {
		return err
	}

	advice, ok := r.advisor.MealAdvice(ctx, meal)
	if !ok {
		return out.Reply(msgAdviceFailed)
	}
	return out.Reply(advice)
}

func (r *Router) completeDelete(ctx context.Context, chatID int64, answer string, out Replier) error {
	r.machine.Reset(chatID)

	if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		return out.Reply(msgDeleteCancelled)
	}

	if err := r.meals.ClearHistory(ctx, chatID); err != nil {
		r.logger.Error("Failed to delete meal history", zap.Error(err), zap.Int64("chat_id", chatID))
		return out.Reply(msgError)
	}

	r.logger.Info("Meal history deleted", zap.Int64("chat_id", chatID))
	return out.Reply(msgDeleted)
}

// respond answers idle small talk from the keyword table
func (r *Router) respond(ctx context.Context, text string, out Replier) error {
	action, reply := matchKeyword(text)
	if action == replySmallTalk {
		if answer, ok := r.advisor.SmallTalk(ctx); ok {
			reply = answer
		}
	}
	return out.Reply(reply)
}
