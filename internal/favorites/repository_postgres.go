package favorites

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Add(ctx context.Context, userID, item string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorites (user_id, item, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, item) DO NOTHING
	`, userID, item)
	return err
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, item string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND item = $2
	`, userID, item)
	return err
}
