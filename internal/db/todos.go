package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"blog/internal/models"
)

// Todos backs the REST todo endpoints.
type Todos struct {
	pool *pgxpool.Pool
}

func NewTodos(pool *pgxpool.Pool) *Todos {
	return &Todos{pool: pool}
}

func (s *Todos) All(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, status, user_id FROM todo_items ORDER BY id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query todos")
	}
	defer rows.Close()

	out := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		var name *string
		if err := rows.Scan(&t.ID, &name, &t.Status, &t.UserID); err != nil {
			return nil, errors.Wrap(err, "scan todo")
		}
		if name != nil {
			t.Name = *name
		}
		out = append(out, t)
	}
	return out, errors.Wrap(rows.Err(), "iterate todos")
}

func (s *Todos) Create(ctx context.Context, name string) (models.Todo, error) {
	var t models.Todo
	err := s.pool.QueryRow(ctx,
		`INSERT INTO todo_items (name) VALUES ($1) RETURNING id, name, status`,
		name).Scan(&t.ID, &t.Name, &t.Status)
	if err != nil {
		return models.Todo{}, errors.Wrap(err, "insert todo")
	}
	return t, nil
}
