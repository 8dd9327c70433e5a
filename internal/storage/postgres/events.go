package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

const eventColumns = `
	id, initiator_id, category_id, title, annotation, description,
	lat, lon, event_date, paid, participant_limit, request_moderation,
	confirmed_requests, state, created_on, published_on`

// scanEvent — единая распаковка строки события.
func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.InitiatorID,
		&e.CategoryID,
		&e.Title,
		&e.Annotation,
		&e.Description,
		&e.Location.Lat,
		&e.Location.Lon,
		&e.EventDate,
		&e.Paid,
		&e.ParticipantLimit,
		&e.RequestModeration,
		&e.ConfirmedRequests,
		&e.State,
		&e.CreatedOn,
		&e.PublishedOn,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// SaveEvent создаёт событие.
func (s *Storage) SaveEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	const op = "storage.postgres.SaveEvent"

	query := `
		INSERT INTO events(id, initiator_id, category_id, title, annotation, description,
			lat, lon, event_date, paid, participant_limit, request_moderation,
			confirmed_requests, state, created_on, published_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := s.db.Exec(ctx, query,
		event.ID,
		event.InitiatorID,
		event.CategoryID,
		event.Title,
		event.Annotation,
		event.Description,
		event.Location.Lat,
		event.Location.Lon,
		event.EventDate,
		event.Paid,
		event.ParticipantLimit,
		event.RequestModeration,
		event.ConfirmedRequests,
		event.State,
		event.CreatedOn,
		event.PublishedOn,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			// Инициатор или категория исчезли между проверкой и вставкой.
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// EventByID возвращает событие в любом состоянии.
func (s *Storage) EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	const op = "storage.postgres.EventByID"

	event, err := scanEvent(s.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// UpdateEvent перезаписывает изменяемые поля события.
func (s *Storage) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events
		SET category_id = $2, title = $3, annotation = $4, description = $5,
			lat = $6, lon = $7, event_date = $8, paid = $9,
			participant_limit = $10, request_moderation = $11,
			confirmed_requests = $12, state = $13, published_on = $14
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		event.ID,
		event.CategoryID,
		event.Title,
		event.Annotation,
		event.Description,
		event.Location.Lat,
		event.Location.Lon,
		event.EventDate,
		event.Paid,
		event.ParticipantLimit,
		event.RequestModeration,
		event.ConfirmedRequests,
		event.State,
		event.PublishedOn,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return event, nil
}

// EventsByInitiator возвращает страницу событий инициатора (новые сначала).
func (s *Storage) EventsByInitiator(ctx context.Context, initiatorID uuid.UUID, from, size int32) ([]models.Event, error) {
	const op = "storage.postgres.EventsByInitiator"

	rows, err := s.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE initiator_id = $1
		ORDER BY created_on DESC
		OFFSET $2 LIMIT $3
	`, initiatorID, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectEvents(op, rows)
}

// EventsByIDs возвращает события из перечисленных; отсутствующие
// идентификаторы молча пропускаются.
func (s *Storage) EventsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Event, error) {
	const op = "storage.postgres.EventsByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = ANY($1)
		ORDER BY event_date
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectEvents(op, rows)
}

// PublishedEvents возвращает страницу опубликованных событий по фильтру.
// Сортировка фиксирована: ближайшие по дате события сначала.
func (s *Storage) PublishedEvents(ctx context.Context, filter storage.EventFilter) ([]models.Event, error) {
	const op = "storage.postgres.PublishedEvents"

	conds := []string{`state = 'PUBLISHED'`}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Text != "" {
		p := arg("%" + filter.Text + "%")
		conds = append(conds, fmt.Sprintf("(annotation ILIKE %s OR description ILIKE %s)", p, p))
	}

	if len(filter.CategoryIDs) > 0 {
		conds = append(conds, fmt.Sprintf("category_id = ANY(%s)", arg(filter.CategoryIDs)))
	}

	if filter.Paid != nil {
		conds = append(conds, fmt.Sprintf("paid = %s", arg(*filter.Paid)))
	}

	if !filter.RangeStart.IsZero() {
		conds = append(conds, fmt.Sprintf("event_date >= %s", arg(filter.RangeStart)))
	}

	if !filter.RangeEnd.IsZero() {
		conds = append(conds, fmt.Sprintf("event_date <= %s", arg(filter.RangeEnd)))
	}

	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY event_date
		OFFSET ` + arg(filter.From) + ` LIMIT ` + arg(filter.Size)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectEvents(op, rows)
}

func collectEvents(op string, rows pgx.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}
