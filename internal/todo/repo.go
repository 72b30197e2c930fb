package todo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/platform/httpx"
)

// Repository defines persistence operations for the todo module. Every
// method binds the owner id; there is no unscoped access path.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Todo, error)
	Insert(ctx context.Context, ownerID int64, task string) (*Todo, error)
	Delete(ctx context.Context, ownerID, todoID int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByOwner returns the owner's todos, newest first.
func (r *PGRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, task, user_id FROM todos WHERE user_id = $1 ORDER BY id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	todos := make([]Todo, 0)
	for rows.Next() {
		var item Todo
		if err := rows.Scan(&item.ID, &item.Task, &item.UserID); err != nil {
			return nil, err
		}
		todos = append(todos, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

// Insert stores a new todo for the owner.
func (r *PGRepository) Insert(ctx context.Context, ownerID int64, task string) (*Todo, error) {
	var item Todo
	err := r.pool.QueryRow(ctx,
		`INSERT INTO todos (task, user_id) VALUES ($1, $2) RETURNING id, task, user_id`,
		task, ownerID,
	).Scan(&item.ID, &item.Task, &item.UserID)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the owner's todo. A todo belonging to another user is
// indistinguishable from a nonexistent one.
func (r *PGRepository) Delete(ctx context.Context, ownerID, todoID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`, todoID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
