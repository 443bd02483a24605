package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/dbx"
	"github.com/dobleb/todo-backend/internal/models"
)

// PostgresRepository implements todo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const todoColumns = "id, user_id, title, completed, latitude, longitude, photo_uri, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		item     models.Todo
		lat, lng sql.NullFloat64
		photo    sql.NullString
	)
	err := row.Scan(&item.ID, &item.UserID, &item.Title, &item.Completed,
		&lat, &lng, &photo, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if lat.Valid && lng.Valid {
		item.Location = &models.Location{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	if photo.Valid {
		item.PhotoURI = photo.String
	}
	return &item, nil
}

// Create inserts a todo record, stamping created_at/updated_at.
func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (id, user_id, title, completed, latitude, longitude, photo_uri, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
		`
	var (
		lat, lng sql.NullFloat64
		photo    sql.NullString
	)
	if todo.Location != nil {
		lat = sql.NullFloat64{Float64: todo.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: todo.Location.Longitude, Valid: true}
	}
	if todo.PhotoURI != "" {
		photo = sql.NullString{String: todo.PhotoURI, Valid: true}
	}

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		todo.ID, todo.UserID, todo.Title, todo.Completed, lat, lng, photo, now, now).
		Scan(&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

// GetByID fetches a todo matching both id and owner.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = $1 AND user_id = $2`, todoColumns)

	item, err := scanTodo(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// ListByUser returns all todos for userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE user_id = $1 ORDER BY created_at DESC`, todoColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Todo{}
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites only the fields present in patch and bumps updated_at.
// Absent fields are left untouched. Returns common.ErrNotFound when no row
// matches both id and owner.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch *models.TodoPatch) (*models.Todo, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	if patch.Location != nil {
		add("latitude", patch.Location.Latitude)
		add("longitude", patch.Location.Longitude)
	}
	if patch.PhotoURI != nil {
		add("photo_uri", sql.NullString{String: *patch.PhotoURI, Valid: *patch.PhotoURI != ""})
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id, userID)
	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args)-1, len(args), todoColumns)

	item, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// Delete removes a todo matching both id and owner, returning the deleted
// record's snapshot.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (*models.Todo, error) {
	query := fmt.Sprintf(`DELETE FROM todos WHERE id = $1 AND user_id = $2 RETURNING %s`, todoColumns)

	item, err := scanTodo(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}
