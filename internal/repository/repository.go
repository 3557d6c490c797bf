package repository

import "context"

// MealRepository defines meal history operations.
// Entries come back in the order they were appended.
type MealRepository interface {
	Append(ctx context.Context, chatID int64, text string) error
	List(ctx context.Context, chatID int64) ([]string, error)
	Clear(ctx context.Context, chatID int64) error
}
