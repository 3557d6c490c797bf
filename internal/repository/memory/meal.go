package memory

import (
	"context"
	"sync"
)

// MealRepo implements repository.MealRepository in process memory
type MealRepo struct {
	meals map[int64][]string
	mu    sync.RWMutex
}

// NewMealRepo creates an empty in-memory meal repository
func NewMealRepo() *MealRepo {
	return &MealRepo{meals: make(map[int64][]string)}
}

// Append adds a meal to the end of the chat's history
func (r *MealRepo) Append(_ context.Context, chatID int64, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals[chatID] = append(r.meals[chatID], text)
	return nil
}

// List returns a copy of the chat's history
func (r *MealRepo) List(_ context.Context, chatID int64) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meals := r.meals[chatID]
	out := make([]string, len(meals))
	copy(out, meals)
	return out, nil
}

// Clear drops the chat's history
func (r *MealRepo) Clear(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.meals, chatID)
	return nil
}
