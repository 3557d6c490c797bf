package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "nutritrack:meals:"

// MealRepo implements repository.MealRepository with one redis list per chat
type MealRepo struct {
	client goredis.Cmdable
}

// NewMealRepo creates a new redis-backed meal repository
func NewMealRepo(client goredis.Cmdable) *MealRepo {
	return &MealRepo{client: client}
}

func mealsKey(chatID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, chatID)
}

// Append pushes a meal onto the tail of the chat's list
func (r *MealRepo) Append(ctx context.Context, chatID int64, text string) error {
	return r.client.RPush(ctx, mealsKey(chatID), text).Err()
}

// List returns the whole list; a missing key is an empty history
func (r *MealRepo) List(ctx context.Context, chatID int64) ([]string, error) {
	meals, err := r.client.LRange(ctx, mealsKey(chatID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []string{}
	}
	return meals, nil
}

// Clear deletes the chat's list
func (r *MealRepo) Clear(ctx context.Context, chatID int64) error {
	return r.client.Del(ctx, mealsKey(chatID)).Err()
}
