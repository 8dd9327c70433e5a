package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// CreateUser регистрирует пользователя. Email уникален без учёта регистра.
//
// Ошибки: ErrInvalidArgument, ErrConflict (занятый email), ErrInternal.
func (s *Service) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	const op = "service.admin.CreateUser"

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%s: %w: name and email are required", op, ErrInvalidArgument)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%s: %w: malformed email", op, ErrInvalidArgument)
	}

	user, err := s.storage.SaveUser(ctx, &models.User{
		ID:      uuid.New(),
		Name:    name,
		Email:   email,
		Created: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w: email is already taken", op, ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return user, nil
}

// DeleteUser удаляет пользователя.
//
// Ошибки: ErrNotFound, ErrConflict (есть связанные сущности), ErrInternal.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const op = "service.admin.DeleteUser"

	if err := s.storage.DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			return fmt.Errorf("%s: %w: user has related entities", op, ErrConflict)
		default:
			return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
		}
	}

	return nil
}

// Users возвращает страницу пользователей; при непустом списке ids
// пагинация игнорируется и возвращаются только перечисленные.
//
// Ошибки: ErrInternal.
func (s *Service) Users(ctx context.Context, ids []uuid.UUID, from, size int32) ([]models.User, error) {
	const op = "service.admin.Users"

	users, err := s.storage.Users(ctx, ids, from, s.pageLimit(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return users, nil
}

// CreateCategory создаёт категорию событий.
//
// Ошибки: ErrInvalidArgument, ErrConflict (занятое имя), ErrInternal.
func (s *Service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	const op = "service.admin.CreateCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w: name is required", op, ErrInvalidArgument)
	}

	category, err := s.storage.SaveCategory(ctx, &models.Category{
		ID:   uuid.New(),
		Name: name,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w: category name is already taken", op, ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию без событий.
//
// Ошибки: ErrNotFound, ErrConflict (категория используется), ErrInternal.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "service.admin.DeleteCategory"

	if err := s.storage.DeleteCategory(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			return fmt.Errorf("%s: %w: category is in use", op, ErrConflict)
		default:
			return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
		}
	}

	return nil
}

// CategoryByID возвращает категорию.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	const op = "service.admin.CategoryByID"

	category, err := s.storage.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return category, nil
}

// Categories возвращает страницу категорий.
//
// Ошибки: ErrInternal.
func (s *Service) Categories(ctx context.Context, from, size int32) ([]models.Category, error) {
	const op = "service.admin.Categories"

	categories, err := s.storage.Categories(ctx, from, s.pageLimit(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return categories, nil
}
