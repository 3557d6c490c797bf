package service

import (
	"context"
	"fmt"

	"nutritrack/internal/repository"
)

// MealService handles meal history logic
type MealService struct {
	mealRepo repository.MealRepository
}

// NewMealService creates a new meal service
func NewMealService(mealRepo repository.MealRepository) *MealService {
	return &MealService{mealRepo: mealRepo}
}

// Track records a meal description as-is
func (s *MealService) Track(ctx context.Context, chatID int64, meal string) error {
	if err := s.mealRepo.Append(ctx, chatID, meal); err != nil {
		return fmt.Errorf("append meal: %w", err)
	}
	return nil
}

// History returns the chat's meals in the order they were tracked
func (s *MealService) History(ctx context.Context, chatID int64) ([]string, error) {
	meals, err := s.mealRepo.List(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// HasHistory reports whether the chat has at least one meal
func (s *MealService) HasHistory(ctx context.Context, chatID int64) (bool, error) {
	meals, err := s.History(ctx, chatID)
	if err != nil {
		return false, err
	}
	return len(meals) > 0, nil
}

// ClearHistory removes all of the chat's meals
func (s *MealService) ClearHistory(ctx context.Context, chatID int64) error {
	if err := s.mealRepo.Clear(ctx, chatID); err != nil {
		return fmt.Errorf("clear meals: %w", err)
	}
	return nil
}
