package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// NewCompilationInput — данные новой подборки.
// Pinned по умолчанию false; EventIDs может быть пустым (пустая витрина).
type NewCompilationInput struct {
	Title    string
	Pinned   *bool
	EventIDs []uuid.UUID
}

// UpdateCompilationInput — частичное обновление подборки.
// nil означает «не менять»; пустой EventIDs состав не трогает
// (замена состава — только непустым списком).
type UpdateCompilationInput struct {
	Title    *string
	Pinned   *bool
	EventIDs []uuid.UUID
}

// validCompilationTitle нормализует и проверяет заголовок подборки.
func validCompilationTitle(op, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%s: %w: title is required", op, ErrInvalidArgument)
	}
	if utf8.RuneCountInString(title) > models.MaxCompilationTitleLen {
		return "", fmt.Errorf("%s: %w: title is too long", op, ErrInvalidArgument)
	}

	return title, nil
}

// compilationEventsByIDs разворачивает список идентификаторов в события.
// Отсутствующие идентификаторы молча пропускаются: витрина собирается
// из того, что ещё существует.
func (s *Service) compilationEventsByIDs(ctx context.Context, op string, ids []uuid.UUID) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	events, err := s.storage.EventsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return events, nil
}

// CreateCompilation создаёт подборку событий для витрины.
//
// Ошибки: ErrInvalidArgument (заголовок), ErrInternal.
func (s *Service) CreateCompilation(ctx context.Context, input NewCompilationInput) (*models.Compilation, error) {
	const op = "service.compilations.CreateCompilation"

	title, err := validCompilationTitle(op, input.Title)
	if err != nil {
		return nil, err
	}

	events, err := s.compilationEventsByIDs(ctx, op, input.EventIDs)
	if err != nil {
		return nil, err
	}

	compilation := &models.Compilation{
		ID:     uuid.New(),
		Title:  title,
		Pinned: input.Pinned != nil && *input.Pinned,
		Events: events,
	}

	saved, err := s.storage.SaveCompilation(ctx, compilation)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w: event disappeared", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return saved, nil
}

// UpdateCompilation частично обновляет подборку; непустой EventIDs
// заменяет состав целиком.
//
// Ошибки: ErrNotFound, ErrInvalidArgument, ErrInternal.
func (s *Service) UpdateCompilation(ctx context.Context, id uuid.UUID, input UpdateCompilationInput) (*models.Compilation, error) {
	const op = "service.compilations.UpdateCompilation"

	compilation, err := s.storage.CompilationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	if input.Title != nil {
		title, err := validCompilationTitle(op, *input.Title)
		if err != nil {
			return nil, err
		}
		compilation.Title = title
	}

	if input.Pinned != nil {
		compilation.Pinned = *input.Pinned
	}

	if len(input.EventIDs) > 0 {
		events, err := s.compilationEventsByIDs(ctx, op, input.EventIDs)
		if err != nil {
			return nil, err
		}
		compilation.Events = events
	}

	updated, err := s.storage.UpdateCompilation(ctx, compilation)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return updated, nil
}

// DeleteCompilation удаляет подборку.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) DeleteCompilation(ctx context.Context, id uuid.UUID) error {
	const op = "service.compilations.DeleteCompilation"

	if err := s.storage.DeleteCompilation(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return nil
}

// CompilationByID возвращает подборку с событиями.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) CompilationByID(ctx context.Context, id uuid.UUID) (*models.Compilation, error) {
	const op = "service.compilations.CompilationByID"

	compilation, err := s.storage.CompilationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return compilation, nil
}

// Compilations возвращает страницу подборок; pinned == nil — все.
//
// Ошибки: ErrInternal.
func (s *Service) Compilations(ctx context.Context, pinned *bool, from, size int32) ([]models.Compilation, error) {
	const op = "service.compilations.Compilations"

	compilations, err := s.storage.Compilations(ctx, pinned, from, s.pageLimit(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return compilations, nil
}
