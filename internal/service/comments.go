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

// ModerationFilterInput — параметры модерационной выборки комментариев.
type ModerationFilterInput struct {
	Text   string
	Status *models.CommentStatus
	From   int32
	Size   int32
}

// AddComment создаёт корневой комментарий к опубликованному событию.
// Новый комментарий попадает в очередь модерации со статусом CHECKING.
//
// Ошибки: ErrInvalidArgument (пустой текст), ErrNotFound,
// ErrValidation (событие не опубликовано), ErrInternal.
func (s *Service) AddComment(ctx context.Context, authorID, eventID uuid.UUID, text string) (*models.Comment, error) {
	const op = "service.comments.AddComment"

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w: empty text", op, ErrInvalidArgument)
	}

	if err := s.requireUser(ctx, op, authorID); err != nil {
		return nil, err
	}

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.State != models.EventStatePublished {
		return nil, fmt.Errorf("%s: %w: event is not published", op, ErrValidation)
	}

	return s.saveComment(ctx, op, &models.Comment{
		ID:       uuid.New(),
		EventID:  eventID,
		AuthorID: authorID,
		Text:     text,
		Status:   models.CommentStatusChecking,
		Created:  time.Now().UTC(),
		Updated:  time.Now().UTC(),
	})
}

// AddReply создаёт ответ на существующий комментарий того же события.
// Отвечать на удалённый комментарий или комментарий другого события нельзя.
//
// Ошибки: ErrInvalidArgument, ErrNotFound (пользователь, событие,
// родитель), ErrValidation, ErrInternal.
func (s *Service) AddReply(ctx context.Context, authorID, eventID, parentID uuid.UUID, text string) (*models.Comment, error) {
	const op = "service.comments.AddReply"

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w: empty text", op, ErrInvalidArgument)
	}

	if err := s.requireUser(ctx, op, authorID); err != nil {
		return nil, err
	}

	if _, err := s.eventByID(ctx, op, eventID); err != nil {
		return nil, err
	}

	parent, err := s.commentByID(ctx, op, parentID)
	if err != nil {
		return nil, err
	}

	if parent.IsDeleted {
		return nil, fmt.Errorf("%s: %w: parent comment is deleted", op, ErrValidation)
	}

	if parent.EventID != eventID {
		return nil, fmt.Errorf("%s: %w: parent belongs to another event", op, ErrValidation)
	}

	pid := parentID

	return s.saveComment(ctx, op, &models.Comment{
		ID:       uuid.New(),
		EventID:  eventID,
		AuthorID: authorID,
		ParentID: &pid,
		Text:     text,
		Status:   models.CommentStatusChecking,
		Created:  time.Now().UTC(),
		Updated:  time.Now().UTC(),
	})
}

// UpdateCommentByAuthor правит текст собственного комментария;
// статус модерации при этом не меняется.
//
// Ошибки: ErrInvalidArgument, ErrNotFound, ErrForbidden,
// ErrValidation (удалён), ErrInternal.
func (s *Service) UpdateCommentByAuthor(ctx context.Context, authorID, commentID uuid.UUID, text string) (*models.Comment, error) {
	const op = "service.comments.UpdateCommentByAuthor"

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w: empty text", op, ErrInvalidArgument)
	}

	if err := s.requireUser(ctx, op, authorID); err != nil {
		return nil, err
	}

	comment, err := s.commentByID(ctx, op, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != authorID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if comment.IsDeleted {
		return nil, fmt.Errorf("%s: %w: comment is deleted", op, ErrValidation)
	}

	updated, err := s.storage.UpdateCommentText(ctx, commentID, text, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return updated, nil
}

// DeleteCommentByAuthor мягко удаляет собственный комментарий.
// Повторное удаление — no-op.
//
// Ошибки: ErrNotFound, ErrForbidden, ErrInternal.
func (s *Service) DeleteCommentByAuthor(ctx context.Context, authorID, commentID uuid.UUID) error {
	const op = "service.comments.DeleteCommentByAuthor"

	if err := s.requireUser(ctx, op, authorID); err != nil {
		return err
	}

	comment, err := s.commentByID(ctx, op, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != authorID {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if comment.IsDeleted {
		return nil
	}

	if err := s.storage.SoftDeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return nil
}

// DeleteCommentByAdmin мягко удаляет произвольный комментарий.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) DeleteCommentByAdmin(ctx context.Context, commentID uuid.UUID) error {
	const op = "service.comments.DeleteCommentByAdmin"

	if _, err := s.commentByID(ctx, op, commentID); err != nil {
		return err
	}

	if err := s.storage.SoftDeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return nil
}

// HardDeleteComment безвозвратно удаляет комментарий вместе с поддеревом
// ответов.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) HardDeleteComment(ctx context.Context, commentID uuid.UUID) error {
	const op = "service.comments.HardDeleteComment"

	if err := s.storage.HardDeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return nil
}

// ModerateComment выставляет комментарию вердикт модератора:
// PUBLISHED или REJECTED. Уже опубликованный комментарий повторно
// не модерируется; отклонённый может быть опубликован пересмотром.
//
// Ошибки: ErrInvalidArgument, ErrNotFound, ErrValidation
// (уже опубликован), ErrInternal.
func (s *Service) ModerateComment(ctx context.Context, commentID uuid.UUID, status models.CommentStatus) (*models.Comment, error) {
	const op = "service.comments.ModerateComment"

	if status != models.CommentStatusPublished && status != models.CommentStatusRejected {
		return nil, fmt.Errorf("%s: %w: status %q is not a moderation verdict", op, ErrInvalidArgument, status)
	}

	comment, err := s.commentByID(ctx, op, commentID)
	if err != nil {
		return nil, err
	}

	if comment.Status == models.CommentStatusPublished {
		return nil, fmt.Errorf("%s: %w: comment is already published", op, ErrValidation)
	}

	if comment.IsDeleted {
		return nil, fmt.Errorf("%s: %w: comment is deleted", op, ErrValidation)
	}

	updated, err := s.storage.UpdateCommentStatus(ctx, commentID, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return updated, nil
}

// CommentsForModeration возвращает модерационную выборку: страницу
// корневых комментариев по фильтру и, для каждого корня, его поддерево
// ответов в порядке обхода в ширину. Ответ, не прошедший фильтр по
// статусу, отсекает своё поддерево.
//
// Ошибки: ErrInternal.
func (s *Service) CommentsForModeration(ctx context.Context, input ModerationFilterInput) ([]models.Comment, error) {
	const op = "service.comments.CommentsForModeration"

	roots, err := s.storage.TopLevelByFilter(ctx, storage.CommentFilter{
		Text:   input.Text,
		Status: input.Status,
		From:   input.From,
		Size:   s.pageLimit(input.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	result := make([]models.Comment, 0, len(roots))
	for _, root := range roots {
		result = append(result, root)

		replies, err := s.collectReplies(ctx, root.ID, input.Status)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
		}

		result = append(result, replies...)
	}

	return result, nil
}

// collectReplies обходит поддерево ответов в ширину, уровень за уровнем.
// Глубина дерева не ограничена схемой, поэтому обход итеративный:
// очередь родительских идентификаторов, один запрос на уровень.
func (s *Service) collectReplies(ctx context.Context, rootID uuid.UUID, status *models.CommentStatus) ([]models.Comment, error) {
	var collected []models.Comment

	queue := []uuid.UUID{rootID}
	for len(queue) > 0 {
		replies, err := s.storage.RepliesByParents(ctx, queue)
		if err != nil {
			return nil, err
		}

		queue = queue[:0]
		for _, reply := range replies {
			if status != nil && reply.Status != *status {
				continue
			}
			if status == nil && reply.IsDeleted {
				continue
			}

			collected = append(collected, reply)
			queue = append(queue, reply.ID)
		}
	}

	return collected, nil
}

// PublishedCommentsByEvent возвращает страницу опубликованных
// комментариев события.
//
// Ошибки: ErrNotFound, ErrValidation (событие не опубликовано), ErrInternal.
func (s *Service) PublishedCommentsByEvent(ctx context.Context, eventID uuid.UUID, from, size int32) ([]models.Comment, error) {
	const op = "service.comments.PublishedCommentsByEvent"

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.State != models.EventStatePublished {
		return nil, fmt.Errorf("%s: %w: event is not published", op, ErrValidation)
	}

	comments, err := s.storage.PublishedByEvent(ctx, eventID, from, s.pageLimit(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return comments, nil
}

// CommentsByAuthor возвращает опубликованные комментарии пользователя.
//
// Ошибки: ErrNotFound (пользователь), ErrInternal.
func (s *Service) CommentsByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Comment, error) {
	const op = "service.comments.CommentsByAuthor"

	if err := s.requireUser(ctx, op, authorID); err != nil {
		return nil, err
	}

	comments, err := s.storage.PublishedByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return comments, nil
}

// CommentOfAuthor возвращает неудалённый комментарий его автору.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) CommentOfAuthor(ctx context.Context, authorID, commentID uuid.UUID) (*models.Comment, error) {
	const op = "service.comments.CommentOfAuthor"

	if err := s.requireUser(ctx, op, authorID); err != nil {
		return nil, err
	}

	comment, err := s.storage.CommentByIDForAuthor(ctx, commentID, authorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return comment, nil
}

// CommentByID возвращает комментарий администратору вне зависимости
// от флага удаления.
//
// Ошибки: ErrNotFound, ErrInternal.
func (s *Service) CommentByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	const op = "service.comments.CommentByID"

	return s.commentByID(ctx, op, commentID)
}

// commentByID читает комментарий с маппингом ошибок хранилища.
func (s *Service) commentByID(ctx context.Context, op string, commentID uuid.UUID) (*models.Comment, error) {
	comment, err := s.storage.CommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w: comment does not exist", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return comment, nil
}

// saveComment сохраняет комментарий с маппингом ошибок хранилища.
func (s *Service) saveComment(ctx context.Context, op string, comment *models.Comment) (*models.Comment, error) {
	saved, err := s.storage.SaveComment(ctx, comment)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return saved, nil
}
