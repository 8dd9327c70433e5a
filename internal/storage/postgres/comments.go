package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

const commentColumns = `id, event_id, author_id, parent_id, text, status, is_deleted, created, updated`

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID,
		&c.EventID,
		&c.AuthorID,
		&c.ParentID,
		&c.Text,
		&c.Status,
		&c.IsDeleted,
		&c.Created,
		&c.Updated,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// SaveComment создаёт комментарий или ответ.
func (s *Storage) SaveComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	const op = "storage.postgres.SaveComment"

	_, err := s.db.Exec(ctx, `
		INSERT INTO comments(id, event_id, author_id, parent_id, text, status, is_deleted, created, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, comment.ID, comment.EventID, comment.AuthorID, comment.ParentID,
		comment.Text, comment.Status, comment.IsDeleted, comment.Created, comment.Updated)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// CommentByID возвращает комментарий вне зависимости от флага удаления.
func (s *Storage) CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	const op = "storage.postgres.CommentByID"

	comment, err := scanComment(s.db.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// CommentByIDForAuthor возвращает неудалённый комментарий автора.
func (s *Storage) CommentByIDForAuthor(ctx context.Context, id, authorID uuid.UUID) (*models.Comment, error) {
	const op = "storage.postgres.CommentByIDForAuthor"

	comment, err := scanComment(s.db.QueryRow(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE id = $1 AND author_id = $2 AND is_deleted = false
	`, id, authorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// UpdateCommentText обновляет текст и отметку времени правки.
func (s *Storage) UpdateCommentText(ctx context.Context, id uuid.UUID, text string, updated time.Time) (*models.Comment, error) {
	const op = "storage.postgres.UpdateCommentText"

	comment, err := scanComment(s.db.QueryRow(ctx, `
		UPDATE comments
		SET text = $2, updated = $3
		WHERE id = $1
		RETURNING `+commentColumns, id, text, updated))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// UpdateCommentStatus выставляет статус модерации.
func (s *Storage) UpdateCommentStatus(ctx context.Context, id uuid.UUID, status models.CommentStatus) (*models.Comment, error) {
	const op = "storage.postgres.UpdateCommentStatus"

	comment, err := scanComment(s.db.QueryRow(ctx, `
		UPDATE comments
		SET status = $2
		WHERE id = $1
		RETURNING `+commentColumns, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// SoftDeleteComment помечает комментарий удалённым (is_deleted=true, DELETED).
func (s *Storage) SoftDeleteComment(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.SoftDeleteComment"

	tag, err := s.db.Exec(ctx, `
		UPDATE comments
		SET is_deleted = true, status = 'DELETED'
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// HardDeleteComment удаляет запись безвозвратно; поддерево ответов
// уходит каскадом (FK ON DELETE CASCADE).
func (s *Storage) HardDeleteComment(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.HardDeleteComment"

	tag, err := s.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// PublishedByEvent возвращает страницу опубликованных неудалённых
// комментариев события (старые сначала).
func (s *Storage) PublishedByEvent(ctx context.Context, eventID uuid.UUID, from, size int32) ([]models.Comment, error) {
	const op = "storage.postgres.PublishedByEvent"

	rows, err := s.db.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE event_id = $1 AND status = 'PUBLISHED' AND is_deleted = false
		ORDER BY created
		OFFSET $2 LIMIT $3
	`, eventID, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collectComments(op, rows)
}

// PublishedByAuthor возвращает опубликованные неудалённые комментарии автора.
func (s *Storage) PublishedByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Comment, error) {
	const op = "storage.postgres.PublishedByAuthor"

	rows, err := s.db.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE author_id = $1 AND status = 'PUBLISHED' AND is_deleted = false
		ORDER BY created
	`, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collectComments(op, rows)
}

// TopLevelByFilter возвращает страницу корневых комментариев для
// модерационной очереди (старые сначала).
func (s *Storage) TopLevelByFilter(ctx context.Context, filter storage.CommentFilter) ([]models.Comment, error) {
	const op = "storage.postgres.TopLevelByFilter"

	conds := []string{`parent_id IS NULL`}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Text != "" {
		conds = append(conds, fmt.Sprintf("text ILIKE %s", arg("%"+filter.Text+"%")))
	}

	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("status = %s", arg(*filter.Status)))
		if *filter.Status != models.CommentStatusDeleted {
			conds = append(conds, `is_deleted = false`)
		}
	} else {
		conds = append(conds, `is_deleted = false`)
	}

	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY created
		OFFSET ` + arg(filter.From) + ` LIMIT ` + arg(filter.Size)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collectComments(op, rows)
}

// RepliesByParents возвращает прямых детей перечисленных комментариев
// (один уровень дерева, старые сначала).
func (s *Storage) RepliesByParents(ctx context.Context, parentIDs []uuid.UUID) ([]models.Comment, error) {
	const op = "storage.postgres.RepliesByParents"

	if len(parentIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE parent_id = ANY($1)
		ORDER BY created
	`, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collectComments(op, rows)
}

func collectComments(op string, rows pgx.Rows) ([]models.Comment, error) {
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}
