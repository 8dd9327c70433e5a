package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// SaveCategory создаёт категорию.
func (s *Storage) SaveCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	const op = "storage.postgres.SaveCategory"

	_, err := s.db.Exec(ctx, `INSERT INTO categories(id, name) VALUES ($1, $2)`,
		category.ID, category.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// CategoryByID находит категорию по ID.
func (s *Storage) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	const op = "storage.postgres.CategoryByID"

	var category models.Category
	err := s.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &category, nil
}

// DeleteCategory удаляет категорию; если на неё ссылаются события — ErrConflict.
func (s *Storage) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteCategory"

	tag, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// Categories возвращает страницу категорий, отсортированных по имени.
func (s *Storage) Categories(ctx context.Context, from, size int32) ([]models.Category, error) {
	const op = "storage.postgres.Categories"

	rows, err := s.db.Query(ctx, `
		SELECT id, name
		FROM categories
		ORDER BY name
		OFFSET $1 LIMIT $2
	`, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}
