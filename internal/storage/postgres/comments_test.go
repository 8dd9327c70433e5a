package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// Интеграционные тесты репозитория comments.go: дерево ответов,
// модерационная выборка корней и оба режима удаления.
// Контейнерный harness общий с requests_test.go (startPostgres).

// seedComment — создаёт комментарий с заданным статусом и смещением времени
// создания (для детерминированного порядка в выборках).
func seedComment(t *testing.T, st *Storage, eventID, authorID uuid.UUID, parentID *uuid.UUID, status models.CommentStatus, offset time.Duration) *models.Comment {
	t.Helper()
	now := time.Now().UTC().Add(offset)
	c, err := st.SaveComment(context.Background(), &models.Comment{
		ID:       uuid.New(),
		EventID:  eventID,
		AuthorID: authorID,
		ParentID: parentID,
		Text:     "comment " + uuid.NewString()[:8],
		Status:   status,
		Created:  now,
		Updated:  now,
	})
	require.NoError(t, err)
	return c
}

// TestIntegration_RepliesByParents_OneLevelOrdered — прямые дети перечисленных
// родителей, старые сначала; внуки не попадают.
func TestIntegration_RepliesByParents_OneLevelOrdered(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st)
	event := seedPublishedEvent(t, st, seedUser(t, st).ID, 0)

	root := seedComment(t, st, event.ID, author.ID, nil, models.CommentStatusPublished, 0)
	replyB := seedComment(t, st, event.ID, author.ID, &root.ID, models.CommentStatusPublished, 2*time.Second)
	replyA := seedComment(t, st, event.ID, author.ID, &root.ID, models.CommentStatusPublished, time.Second)
	grand := seedComment(t, st, event.ID, author.ID, &replyA.ID, models.CommentStatusPublished, 3*time.Second)

	got, err := st.RepliesByParents(context.Background(), []uuid.UUID{root.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, replyA.ID, got[0].ID)
	require.Equal(t, replyB.ID, got[1].ID)

	next, err := st.RepliesByParents(context.Background(), []uuid.UUID{replyA.ID, replyB.ID})
	require.NoError(t, err)
	require.Len(t, next, 1)
	require.Equal(t, grand.ID, next[0].ID)

	empty, err := st.RepliesByParents(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

// TestIntegration_TopLevelByFilter_StatusAndText — выборка корней по статусу
// и подстроке текста; ответы в очередь не попадают.
func TestIntegration_TopLevelByFilter_StatusAndText(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st)
	event := seedPublishedEvent(t, st, seedUser(t, st).ID, 0)

	checking := seedComment(t, st, event.ID, author.ID, nil, models.CommentStatusChecking, 0)
	seedComment(t, st, event.ID, author.ID, nil, models.CommentStatusPublished, time.Second)
	seedComment(t, st, event.ID, author.ID, &checking.ID, models.CommentStatusChecking, 2*time.Second)

	status := models.CommentStatusChecking
	got, err := st.TopLevelByFilter(context.Background(), storage.CommentFilter{
		Status: &status,
		From:   0,
		Size:   50,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, checking.ID, got[0].ID)

	// Поиск по подстроке текста регистронезависимый.
	needle := checking.Text[len(checking.Text)-8:]
	got, err = st.TopLevelByFilter(context.Background(), storage.CommentFilter{
		Text: needle,
		From: 0,
		Size: 50,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, checking.ID, got[0].ID)
}

// TestIntegration_SoftDeleteComment — мягкое удаление выставляет флаг и статус,
// запись остаётся доступной через CommentByID, но исчезает из публичных выборок.
func TestIntegration_SoftDeleteComment(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st)
	event := seedPublishedEvent(t, st, seedUser(t, st).ID, 0)
	c := seedComment(t, st, event.ID, author.ID, nil, models.CommentStatusPublished, 0)

	require.NoError(t, st.SoftDeleteComment(context.Background(), c.ID))

	got, err := st.CommentByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.True(t, got.IsDeleted)
	require.Equal(t, models.CommentStatusDeleted, got.Status)

	public, err := st.PublishedByEvent(context.Background(), event.ID, 0, 50)
	require.NoError(t, err)
	require.Empty(t, public)

	_, err = st.CommentByIDForAuthor(context.Background(), c.ID, author.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_HardDeleteComment_CascadesReplies — жёсткое удаление корня
// каскадом стирает поддерево ответов.
func TestIntegration_HardDeleteComment_CascadesReplies(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st)
	event := seedPublishedEvent(t, st, seedUser(t, st).ID, 0)

	root := seedComment(t, st, event.ID, author.ID, nil, models.CommentStatusPublished, 0)
	reply := seedComment(t, st, event.ID, author.ID, &root.ID, models.CommentStatusPublished, time.Second)
	grand := seedComment(t, st, event.ID, author.ID, &reply.ID, models.CommentStatusPublished, 2*time.Second)

	require.NoError(t, st.HardDeleteComment(context.Background(), root.ID))

	for _, id := range []uuid.UUID{root.ID, reply.ID, grand.ID} {
		_, err := st.CommentByID(context.Background(), id)
		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrNotFound)
	}
}

// TestIntegration_HardDeleteComment_NotFound — удаление отсутствующей записи.
func TestIntegration_HardDeleteComment_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	err := st.HardDeleteComment(context.Background(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdateCommentText — правка меняет текст и updated,
// статус модерации не трогает.
func TestIntegration_UpdateCommentText(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st)
	event := seedPublishedEvent(t, st, seedUser(t, st).ID, 0)
	c := seedComment(t, st, event.ID, author.ID, nil, models.CommentStatusPublished, 0)

	updated := time.Now().UTC().Add(time.Minute)
	got, err := st.UpdateCommentText(context.Background(), c.ID, "edited", updated)
	require.NoError(t, err)
	require.Equal(t, "edited", got.Text)
	require.Equal(t, models.CommentStatusPublished, got.Status)
	require.WithinDuration(t, updated, got.Updated, time.Second)
}
