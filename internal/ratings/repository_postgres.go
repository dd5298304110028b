package ratings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key Key) (*Record, error) {
	rec := &Record{}

	err := r.db.QueryRow(ctx, `
		SELECT rating, count, last_updated
		FROM ratings
		WHERE mess = $1 AND day = $2 AND meal = $3 AND item = $4
	`, key.Mess, key.Day, key.Meal, key.Item).Scan(
		&rec.Rating, &rec.Count, &rec.LastUpdated,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) Put(ctx context.Context, key Key, rec Record) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ratings (mess, day, meal, item, rating, count, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (mess, day, meal, item)
		DO UPDATE SET rating = $5, count = $6, last_updated = $7
	`, key.Mess, key.Day, key.Meal, key.Item, rec.Rating, rec.Count, rec.LastUpdated)
	return err
}

func (r *PostgresRepository) All(ctx context.Context) (map[Key]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT mess, day, meal, item, rating, count, last_updated
		FROM ratings
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[Key]Record)
	for rows.Next() {
		var k Key
		var rec Record
		if err := rows.Scan(&k.Mess, &k.Day, &k.Meal, &k.Item, &rec.Rating, &rec.Count, &rec.LastUpdated); err != nil {
			return nil, err
		}
		out[k] = rec
	}
	return out, rows.Err()
}
