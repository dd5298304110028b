package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, sub *Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO push_subscriptions (
			id, platform, endpoint,
			meal_reminders, menu_updates, special_meals,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (endpoint)
		DO UPDATE SET platform = $2,
		              meal_reminders = $4,
		              menu_updates = $5,
		              special_meals = $6
	`, sub.ID, sub.Platform, sub.Endpoint,
		sub.Preferences.MealReminders,
		sub.Preferences.MenuUpdates,
		sub.Preferences.SpecialMeals,
	)
	return err
}

func (r *PostgresRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM push_subscriptions WHERE endpoint = $1
	`, endpoint)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Subscription, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, platform, endpoint,
		       meal_reminders, menu_updates, special_meals,
		       created_at
		FROM push_subscriptions
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var sub Subscription
		if err := rows.Scan(
			&sub.ID, &sub.Platform, &sub.Endpoint,
			&sub.Preferences.MealReminders,
			&sub.Preferences.MenuUpdates,
			&sub.Preferences.SpecialMeals,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
