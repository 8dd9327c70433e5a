package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// Интеграционные тесты репозитория compilations.go: сохранение состава
// с порядком, фильтр по закреплённым, замена состава и каскадное удаление.
// Контейнерный harness общий с requests_test.go (startPostgres).

// seedCompilation — создаёт подборку с переданными событиями.
func seedCompilation(t *testing.T, st *Storage, title string, pinned bool, events ...models.Event) *models.Compilation {
	t.Helper()
	c, err := st.SaveCompilation(context.Background(), &models.Compilation{
		ID:     uuid.New(),
		Title:  title,
		Pinned: pinned,
		Events: events,
	})
	require.NoError(t, err)
	return c
}

func TestIntegration_SaveCompilation_KeepsEventOrder(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	user := seedUser(t, st)
	first := seedPublishedEvent(t, st, user.ID, 0)
	second := seedPublishedEvent(t, st, user.ID, 0)

	saved := seedCompilation(t, st, "Weekend picks", false, *second, *first)

	got, err := st.CompilationByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Len(t, got.Events, 2)
	require.Equal(t, second.ID, got.Events[0].ID)
	require.Equal(t, first.ID, got.Events[1].ID)
}

func TestIntegration_SaveCompilation_UnknownEvent_ReturnsNotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.SaveCompilation(context.Background(), &models.Compilation{
		ID:     uuid.New(),
		Title:  "Ghost shelf",
		Events: []models.Event{{ID: uuid.New()}},
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Compilations_PinnedFilter(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedCompilation(t, st, "Plain", false)
	pinnedComp := seedCompilation(t, st, "Featured", true)

	pinned := true
	got, err := st.Compilations(context.Background(), &pinned, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, pinnedComp.ID, got[0].ID)

	all, err := st.Compilations(context.Background(), nil, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestIntegration_UpdateCompilation_ReplacesLinks(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	user := seedUser(t, st)
	old := seedPublishedEvent(t, st, user.ID, 0)
	fresh := seedPublishedEvent(t, st, user.ID, 0)

	saved := seedCompilation(t, st, "Shelf", false, *old)
	saved.Title = "Renamed shelf"
	saved.Pinned = true
	saved.Events = []models.Event{*fresh}

	updated, err := st.UpdateCompilation(context.Background(), saved)
	require.NoError(t, err)
	require.Equal(t, "Renamed shelf", updated.Title)
	require.True(t, updated.Pinned)

	got, err := st.CompilationByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
	require.Equal(t, fresh.ID, got.Events[0].ID)
}

func TestIntegration_UpdateCompilation_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UpdateCompilation(context.Background(), &models.Compilation{
		ID:    uuid.New(),
		Title: "Nobody",
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DeleteCompilation_CascadesLinks(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	user := seedUser(t, st)
	event := seedPublishedEvent(t, st, user.ID, 0)
	saved := seedCompilation(t, st, "Droppable", false, *event)

	require.NoError(t, st.DeleteCompilation(context.Background(), saved.ID))

	_, err := st.CompilationByID(context.Background(), saved.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Событие переживает удаление подборки.
	_, err = st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
}

func TestIntegration_DeleteCompilation_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	require.ErrorIs(t, st.DeleteCompilation(context.Background(), uuid.New()), storage.ErrNotFound)
}

func TestIntegration_EventsByIDs_SkipsMissing(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	user := seedUser(t, st)
	event := seedPublishedEvent(t, st, user.ID, 0)

	got, err := st.EventsByIDs(context.Background(), []uuid.UUID{event.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, event.ID, got[0].ID)
}
