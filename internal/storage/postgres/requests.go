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

// lockEvent читает поля события, нужные для контроля вместимости,
// под блокировкой строки (FOR UPDATE). Блокировка действует до конца
// транзакции и сериализует всех писателей счётчика одного события;
// разные события друг друга не задерживают.
func lockEvent(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*models.Event, error) {
	var e models.Event
	err := tx.QueryRow(ctx, `
		SELECT id, participant_limit, request_moderation, confirmed_requests
		FROM events
		WHERE id = $1
		FOR UPDATE
	`, eventID).Scan(&e.ID, &e.ParticipantLimit, &e.RequestModeration, &e.ConfirmedRequests)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	return &e, nil
}

// SubmitRequest атомарно фиксирует новую заявку.
//
// Под блокировкой строки события: повторная проверка лимита, вставка
// заявки, для CONFIRMED — инкремент счётчика. Повторная заявка той же
// пары (событие, заявитель) ловится уникальным индексом.
func (s *Storage) SubmitRequest(ctx context.Context, request *models.Request) (*models.Request, error) {
	const op = "storage.postgres.SubmitRequest"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	event, err := lockEvent(ctx, tx, request.EventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !event.HasCapacity() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNoCapacity)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO requests(id, event_id, requester_id, created, status)
		VALUES ($1, $2, $3, $4, $5)
	`, request.ID, request.EventID, request.RequesterID, request.Created, request.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if request.Status == models.RequestStatusConfirmed {
		_, err = tx.Exec(ctx, `
			UPDATE events
			SET confirmed_requests = confirmed_requests + 1
			WHERE id = $1
		`, request.EventID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return request, nil
}

// RequestExists сообщает, подавал ли пользователь заявку на событие.
func (s *Storage) RequestExists(ctx context.Context, eventID, requesterID uuid.UUID) (bool, error) {
	const op = "storage.postgres.RequestExists"

	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM requests WHERE event_id = $1 AND requester_id = $2
		)
	`, eventID, requesterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// RequestByID возвращает заявку.
func (s *Storage) RequestByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	const op = "storage.postgres.RequestByID"

	var r models.Request
	err := s.db.QueryRow(ctx, `
		SELECT id, event_id, requester_id, created, status
		FROM requests
		WHERE id = $1
	`, id).Scan(&r.ID, &r.EventID, &r.RequesterID, &r.Created, &r.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &r, nil
}

// RequestsByRequester возвращает все заявки пользователя (новые сначала).
func (s *Storage) RequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]models.Request, error) {
	const op = "storage.postgres.RequestsByRequester"

	rows, err := s.db.Query(ctx, `
		SELECT id, event_id, requester_id, created, status
		FROM requests
		WHERE requester_id = $1
		ORDER BY created DESC
	`, requesterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectRequests(op, rows)
}

// RequestsByEvent возвращает все заявки события (старые сначала).
func (s *Storage) RequestsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Request, error) {
	const op = "storage.postgres.RequestsByEvent"

	rows, err := s.db.Query(ctx, `
		SELECT id, event_id, requester_id, created, status
		FROM requests
		WHERE event_id = $1
		ORDER BY created
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectRequests(op, rows)
}

// UpdateRequestStatus выставляет статус заявки. Счётчик события не
// затрагивается: отмена подтверждённой заявки слот не освобождает.
func (s *Storage) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus) (*models.Request, error) {
	const op = "storage.postgres.UpdateRequestStatus"

	var r models.Request
	err := s.db.QueryRow(ctx, `
		UPDATE requests
		SET status = $2
		WHERE id = $1
		RETURNING id, event_id, requester_id, created, status
	`, id, status).Scan(&r.ID, &r.EventID, &r.RequesterID, &r.Created, &r.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &r, nil
}

// ResolveRequests атомарно применяет пакетное решение организатора.
//
// Весь пакет и счётчик события фиксируются одной транзакцией под
// блокировкой строки события; любая ошибка валидации откатывает пакет
// целиком — частичное применение невозможно.
func (s *Storage) ResolveRequests(ctx context.Context, eventID uuid.UUID, requestIDs []uuid.UUID, decision models.ResolveDecision) (*models.ResolutionResult, error) {
	const op = "storage.postgres.ResolveRequests"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	event, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if decision == models.DecisionConfirm && !event.HasCapacity() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNoCapacity)
	}

	rows, err := tx.Query(ctx, `
		SELECT id, event_id, requester_id, created, status
		FROM requests
		WHERE id = ANY($1)
		FOR UPDATE
	`, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	loaded, err := collectRequests(op, rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Request, len(loaded))
	for _, r := range loaded {
		byID[r.ID] = r
	}

	// Валидация и восстановление входного порядка пакета.
	requests := make([]models.Request, 0, len(requestIDs))
	for _, id := range requestIDs {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s: request %s: %w", op, id, storage.ErrNotFound)
		}
		if r.EventID != eventID {
			return nil, fmt.Errorf("%s: request %s: %w", op, id, storage.ErrForeignRequest)
		}
		if r.Status != models.RequestStatusPending {
			return nil, fmt.Errorf("%s: request %s: %w", op, id, storage.ErrNotPending)
		}
		requests = append(requests, r)
	}

	result := models.PartitionPending(event, requests, decision)

	confirmedIDs := make([]uuid.UUID, 0, len(result.Confirmed))
	for _, r := range result.Confirmed {
		confirmedIDs = append(confirmedIDs, r.ID)
	}
	rejectedIDs := make([]uuid.UUID, 0, len(result.Rejected))
	for _, r := range result.Rejected {
		rejectedIDs = append(rejectedIDs, r.ID)
	}

	if len(confirmedIDs) > 0 {
		if _, err := tx.Exec(ctx, `UPDATE requests SET status = 'CONFIRMED' WHERE id = ANY($1)`, confirmedIDs); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if _, err := tx.Exec(ctx, `UPDATE events SET confirmed_requests = $2 WHERE id = $1`,
			eventID, event.ConfirmedRequests); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if len(rejectedIDs) > 0 {
		if _, err := tx.Exec(ctx, `UPDATE requests SET status = 'REJECTED' WHERE id = ANY($1)`, rejectedIDs); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &result, nil
}

func collectRequests(op string, rows pgx.Rows) ([]models.Request, error) {
	defer rows.Close()

	var requests []models.Request
	for rows.Next() {
		var r models.Request
		if err := rows.Scan(&r.ID, &r.EventID, &r.RequesterID, &r.Created, &r.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return requests, nil
}
