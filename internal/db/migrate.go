package db

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

func Migrate(ctx context.Context, pool *pgxpool.Pool, schemaPath string) error {
	b, err := os.ReadFile(schemaPath)
	if err != nil {
		return errors.Wrap(err, "read schema")
	}
	if _, err := pool.Exec(ctx, string(b)); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}
