package postgres

import (
	"context"
	"database/sql"
)

// MealRepo implements repository.MealRepository
type MealRepo struct {
	db *sql.DB
}

// NewMealRepo creates a new meal repository
func NewMealRepo(db *sql.DB) *MealRepo {
	return &MealRepo{db: db}
}

// Append saves a meal description for the chat
func (r *MealRepo) Append(ctx context.Context, chatID int64, text string) error {
	query := `
		INSERT INTO meals (chat_id, description)
		VALUES ($1, $2)
	`
	_, err := r.db.ExecContext(ctx, query, chatID, text)
	return err
}

// List returns the chat's meals in submission order
func (r *MealRepo) List(ctx context.Context, chatID int64) ([]string, error) {
	query := `
		SELECT description
		FROM meals
		WHERE chat_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := []string{}
	for rows.Next() {
		var description string
		if err := rows.Scan(&description); err != nil {
			return nil, err
		}
		meals = append(meals, description)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}

// Clear deletes every meal of the chat
func (r *MealRepo) Clear(ctx context.Context, chatID int64) error {
	query := `DELETE FROM meals WHERE chat_id = $1`
	_, err := r.db.ExecContext(ctx, query, chatID)
	return err
}
