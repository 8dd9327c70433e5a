package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentStatus — статус модерации комментария.
// CHECKING назначается при создании; администратор переводит в
// PUBLISHED/REJECTED; DELETED выставляется при мягком удалении.
type CommentStatus string

const (
	CommentStatusChecking  CommentStatus = "CHECKING"
	CommentStatusPublished CommentStatus = "PUBLISHED"
	CommentStatusRejected  CommentStatus = "REJECTED"
	CommentStatusDeleted   CommentStatus = "DELETED"
)

// ParseCommentStatus разбирает строковое представление статуса.
func ParseCommentStatus(s string) (CommentStatus, bool) {
	switch CommentStatus(s) {
	case CommentStatusChecking, CommentStatusPublished, CommentStatusRejected, CommentStatusDeleted:
		return CommentStatus(s), true
	}

	return "", false
}

// Comment — комментарий к событию или ответ в ветке.
// Важно:
//   - ParentID == nil для корневого комментария; ответы образуют
//     дерево по ссылке на родителя (список смежности);
//   - инвариант: IsDeleted == true влечёт Status == DELETED
//     (мягкое удаление); жёсткое удаление стирает запись целиком;
//   - Updated обновляется при правке текста автором.
type Comment struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	AuthorID  uuid.UUID
	ParentID  *uuid.UUID
	Text      string
	Status    CommentStatus
	IsDeleted bool
	Created   time.Time
	Updated   time.Time
}
