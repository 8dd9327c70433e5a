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

// insertCompilationEvents — вставка связей подборка-событие с сохранением
// порядка (position).
func insertCompilationEvents(ctx context.Context, tx pgx.Tx, compilationID uuid.UUID, events []models.Event) error {
	for i, e := range events {
		_, err := tx.Exec(ctx, `
			INSERT INTO compilation_events(compilation_id, event_id, position)
			VALUES ($1, $2, $3)
		`, compilationID, e.ID, i)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				// Событие исчезло между выборкой и вставкой связи.
				return storage.ErrNotFound
			}

			return err
		}
	}

	return nil
}

// compilationEvents загружает события подборки в порядке добавления.
func (s *Storage) compilationEvents(ctx context.Context, op string, compilationID uuid.UUID) ([]models.Event, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN compilation_events ce ON ce.event_id = e.id
		WHERE ce.compilation_id = $1
		ORDER BY ce.position
	`, compilationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectEvents(op, rows)
}

// SaveCompilation создаёт подборку вместе со связями одной транзакцией.
func (s *Storage) SaveCompilation(ctx context.Context, compilation *models.Compilation) (*models.Compilation, error) {
	const op = "storage.postgres.SaveCompilation"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO compilations(id, title, pinned)
		VALUES ($1, $2, $3)
	`, compilation.ID, compilation.Title, compilation.Pinned)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := insertCompilationEvents(ctx, tx, compilation.ID, compilation.Events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return compilation, nil
}

// CompilationByID возвращает подборку с загруженными событиями.
func (s *Storage) CompilationByID(ctx context.Context, id uuid.UUID) (*models.Compilation, error) {
	const op = "storage.postgres.CompilationByID"

	var c models.Compilation
	err := s.db.QueryRow(ctx, `
		SELECT id, title, pinned FROM compilations WHERE id = $1
	`, id).Scan(&c.ID, &c.Title, &c.Pinned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.Events, err = s.compilationEvents(ctx, op, c.ID)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Compilations возвращает страницу подборок с событиями; при непустом
// pinned — только закреплённые/незакреплённые.
func (s *Storage) Compilations(ctx context.Context, pinned *bool, from, size int32) ([]models.Compilation, error) {
	const op = "storage.postgres.Compilations"

	query := `SELECT id, title, pinned FROM compilations`
	args := []any{from, size}
	if pinned != nil {
		query += ` WHERE pinned = $3`
		args = append(args, *pinned)
	}
	query += ` ORDER BY title OFFSET $1 LIMIT $2`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var compilations []models.Compilation
	for rows.Next() {
		var c models.Compilation
		if err := rows.Scan(&c.ID, &c.Title, &c.Pinned); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		compilations = append(compilations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range compilations {
		compilations[i].Events, err = s.compilationEvents(ctx, op, compilations[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return compilations, nil
}

// UpdateCompilation перезаписывает заголовок/флаг и заменяет состав событий.
func (s *Storage) UpdateCompilation(ctx context.Context, compilation *models.Compilation) (*models.Compilation, error) {
	const op = "storage.postgres.UpdateCompilation"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE compilations SET title = $2, pinned = $3 WHERE id = $1
	`, compilation.ID, compilation.Title, compilation.Pinned)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM compilation_events WHERE compilation_id = $1
	`, compilation.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := insertCompilationEvents(ctx, tx, compilation.ID, compilation.Events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return compilation, nil
}

// DeleteCompilation удаляет подборку; связи уходят каскадом.
func (s *Storage) DeleteCompilation(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteCompilation"

	tag, err := s.db.Exec(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
