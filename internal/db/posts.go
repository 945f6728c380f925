package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"blog/internal/models"
)

// Posts reads and writes the posts table and keeps the owning user's post_ids
// list in step with it. Lookups return (nil, nil) when no row matches.
type Posts struct {
	pool *pgxpool.Pool
}

func NewPosts(pool *pgxpool.Pool) *Posts {
	return &Posts{pool: pool}
}

const postCols = `id, title, content, image_url, creator_id, created_at, updated_at`

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.CreatorID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan post")
	}
	return &p, nil
}

// Create inserts the post and appends its id to the creator's post list in
// one transaction.
func (s *Posts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO posts (title, content, image_url, creator_id) VALUES ($1, $2, $3, $4)
		 RETURNING `+postCols,
		p.Title, p.Content, p.ImageURL, p.CreatorID)
	created, err := scanPost(row)
	if err != nil {
		return nil, errors.Wrap(err, "insert post")
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET post_ids = array_append(post_ids, $2) WHERE id = $1`,
		p.CreatorID, created.ID); err != nil {
		return nil, errors.Wrap(err, "append post id")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	return created, nil
}

func (s *Posts) ByID(ctx context.Context, id int64) (*models.Post, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+postCols+` FROM posts WHERE id = $1`, id)
	return scanPost(row)
}

// ByIDWithCreator fetches a post with its owning user resolved.
func (s *Posts) ByIDWithCreator(ctx context.Context, id int64) (*models.Post, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT p.id, p.title, p.content, p.image_url, p.creator_id, p.created_at, p.updated_at,
		        u.id, u.email, u.name, u.status
		 FROM posts p JOIN users u ON u.id = p.creator_id
		 WHERE p.id = $1`, id)
	var p models.Post
	var u models.User
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.CreatorID, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Email, &u.Name, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan post with creator")
	}
	p.Creator = &u
	return &p, nil
}

// Page returns one page of posts, newest first.
func (s *Posts) Page(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+postCols+` FROM posts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "query posts")
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (s *Posts) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count posts")
	}
	return n, nil
}

func (s *Posts) ByCreator(ctx context.Context, userID int64) ([]*models.Post, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+postCols+` FROM posts WHERE creator_id = $1 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, errors.Wrap(err, "query posts by creator")
	}
	defer rows.Close()
	return collectPosts(rows)
}

// Update persists title, content and image url; updated_at advances to now().
func (s *Posts) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE posts SET title = $2, content = $3, image_url = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+postCols,
		p.ID, p.Title, p.Content, p.ImageURL)
	updated, err := scanPost(row)
	if err != nil {
		return nil, errors.Wrap(err, "update post")
	}
	if updated == nil {
		return nil, errors.New("post deleted concurrently")
	}
	updated.Creator = p.Creator
	return updated, nil
}

// Delete removes the post and pulls its id from the owner's post list in one
// transaction, so a concurrent read never sees one without the other.
func (s *Posts) Delete(ctx context.Context, id, creatorID int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "delete post")
	}
	if _, err := tx.Exec(ctx,
		`UPDATE users SET post_ids = array_remove(post_ids, $2) WHERE id = $1`,
		creatorID, id); err != nil {
		return errors.Wrap(err, "remove post id")
	}
	return errors.Wrap(tx.Commit(ctx), "commit")
}

func collectPosts(rows pgx.Rows) ([]*models.Post, error) {
	var out []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "iterate posts")
}
