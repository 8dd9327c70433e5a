package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// Файл интеграционных тестов для пакета postgres (репозиторий requests.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations (1_init.up.sql);
// - проверяет атомарность подачи заявки и инвариант вместимости (в т.ч. под конкуренцией);
// - валидирует пакетное решение организатора: частичное подтверждение и откат всего пакета при ошибке.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет миграцию и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// seedUser — создаёт пользователя для ссылочной целостности событий и заявок.
func seedUser(t *testing.T, st *Storage) *models.User {
	t.Helper()
	u, err := st.SaveUser(context.Background(), &models.User{
		ID:      uuid.New(),
		Name:    "user-" + uuid.NewString()[:8],
		Email:   uuid.NewString()[:8] + "@example.com",
		Created: time.Now().UTC(),
	})
	require.NoError(t, err)
	return u
}

// seedPublishedEvent — создаёт опубликованное событие с заданным лимитом участников.
func seedPublishedEvent(t *testing.T, st *Storage, initiatorID uuid.UUID, limit int32) *models.Event {
	t.Helper()
	cat, err := st.SaveCategory(context.Background(), &models.Category{
		ID:   uuid.New(),
		Name: "cat-" + uuid.NewString()[:8],
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	published := now
	e, err := st.SaveEvent(context.Background(), &models.Event{
		ID:                uuid.New(),
		InitiatorID:       initiatorID,
		CategoryID:        cat.ID,
		Title:             "Go meetup",
		Annotation:        "annotation",
		Description:       "description",
		Location:          models.Location{Lat: 55.75, Lon: 37.61},
		EventDate:         now.Add(72 * time.Hour),
		Paid:              false,
		ParticipantLimit:  limit,
		RequestModeration: true,
		State:             models.EventStatePublished,
		CreatedOn:         now,
		PublishedOn:       &published,
	})
	require.NoError(t, err)
	return e
}

// newPending — заготовка заявки для прямой записи в хранилище.
func newPending(eventID, requesterID uuid.UUID) *models.Request {
	return &models.Request{
		ID:          uuid.New(),
		EventID:     eventID,
		RequesterID: requesterID,
		Created:     time.Now().UTC(),
		Status:      models.RequestStatusPending,
	}
}

// TestIntegration_SubmitRequest_Confirmed_IncrementsCounter — подтверждённая заявка
// атомарно увеличивает счётчик события.
func TestIntegration_SubmitRequest_Confirmed_IncrementsCounter(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	requester := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 2)

	req := newPending(event.ID, requester.ID)
	req.Status = models.RequestStatusConfirmed

	got, err := st.SubmitRequest(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusConfirmed, got.Status)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, updated.ConfirmedRequests)
}

// TestIntegration_SubmitRequest_Pending_DoesNotTouchCounter — ожидающая заявка
// счётчик не меняет.
func TestIntegration_SubmitRequest_Pending_DoesNotTouchCounter(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	requester := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 2)

	_, err := st.SubmitRequest(context.Background(), newPending(event.ID, requester.ID))
	require.NoError(t, err)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, updated.ConfirmedRequests)
}

// TestIntegration_SubmitRequest_DuplicatePair_ReturnsAlreadyExists — уникальный индекс
// (event_id, requester_id) запрещает повторную заявку в любом статусе.
func TestIntegration_SubmitRequest_DuplicatePair_ReturnsAlreadyExists(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	requester := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 0)

	_, err := st.SubmitRequest(context.Background(), newPending(event.ID, requester.ID))
	require.NoError(t, err)

	_, err = st.SubmitRequest(context.Background(), newPending(event.ID, requester.ID))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	exists, err := st.RequestExists(context.Background(), event.ID, requester.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

// TestIntegration_SubmitRequest_FullEvent_ReturnsNoCapacity — заполненное событие
// отклоняет новую заявку на уровне хранилища.
func TestIntegration_SubmitRequest_FullEvent_ReturnsNoCapacity(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	first := seedUser(t, st)
	second := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 1)

	confirmed := newPending(event.ID, first.ID)
	confirmed.Status = models.RequestStatusConfirmed
	_, err := st.SubmitRequest(context.Background(), confirmed)
	require.NoError(t, err)

	_, err = st.SubmitRequest(context.Background(), newPending(event.ID, second.ID))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNoCapacity)
}

// TestIntegration_SubmitRequest_Concurrent_NeverOverbooks — под конкуренцией
// блокировка строки события не даёт превысить лимит участников.
func TestIntegration_SubmitRequest_Concurrent_NeverOverbooks(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	const limit = 3
	const attempts = 8

	initiator := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, limit)

	requesters := make([]*models.User, attempts)
	for i := range requesters {
		requesters[i] = seedUser(t, st)
	}

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := newPending(event.ID, requesters[i].ID)
			req.Status = models.RequestStatusConfirmed
			_, errs[i] = st.SubmitRequest(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, storage.ErrNoCapacity)
			full++
		}
	}

	require.Equal(t, limit, ok)
	require.Equal(t, attempts-limit, full)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, limit, updated.ConfirmedRequests)
}

// TestIntegration_UpdateRequestStatus_CancelConfirmed_KeepsCounter — отмена
// подтверждённой заявки слот не освобождает.
func TestIntegration_UpdateRequestStatus_CancelConfirmed_KeepsCounter(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	requester := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 5)

	req := newPending(event.ID, requester.ID)
	req.Status = models.RequestStatusConfirmed
	_, err := st.SubmitRequest(context.Background(), req)
	require.NoError(t, err)

	canceled, err := st.UpdateRequestStatus(context.Background(), req.ID, models.RequestStatusCanceled)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusCanceled, canceled.Status)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, updated.ConfirmedRequests)
}

// TestIntegration_ResolveRequests_PartialConfirm_Spillover — при нехватке мест
// хвост пакета отклоняется, счётчик фиксируется одной транзакцией.
func TestIntegration_ResolveRequests_PartialConfirm_Spillover(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 2)

	ids := make([]uuid.UUID, 0, 3)
	for i := 0; i < 3; i++ {
		req := newPending(event.ID, seedUser(t, st).ID)
		_, err := st.SubmitRequest(context.Background(), req)
		require.NoError(t, err)
		ids = append(ids, req.ID)
	}

	result, err := st.ResolveRequests(context.Background(), event.ID, ids, models.DecisionConfirm)
	require.NoError(t, err)
	require.Len(t, result.Confirmed, 2)
	require.Len(t, result.Rejected, 1)
	require.Equal(t, ids[2], result.Rejected[0].ID)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, updated.ConfirmedRequests)

	// Статусы в БД соответствуют результату.
	for i, id := range ids {
		got, err := st.RequestByID(context.Background(), id)
		require.NoError(t, err)
		if i < 2 {
			require.Equal(t, models.RequestStatusConfirmed, got.Status)
		} else {
			require.Equal(t, models.RequestStatusRejected, got.Status)
		}
	}
}

// TestIntegration_ResolveRequests_RejectAll — отклонение не трогает счётчик.
func TestIntegration_ResolveRequests_RejectAll(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 10)

	req := newPending(event.ID, seedUser(t, st).ID)
	_, err := st.SubmitRequest(context.Background(), req)
	require.NoError(t, err)

	result, err := st.ResolveRequests(context.Background(), event.ID, []uuid.UUID{req.ID}, models.DecisionReject)
	require.NoError(t, err)
	require.Empty(t, result.Confirmed)
	require.Len(t, result.Rejected, 1)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, updated.ConfirmedRequests)
}

// TestIntegration_ResolveRequests_ForeignRequest_AbortsBatch — чужая заявка
// в пакете откатывает транзакцию целиком: статусы остаются PENDING.
func TestIntegration_ResolveRequests_ForeignRequest_AbortsBatch(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 10)
	other := seedPublishedEvent(t, st, initiator.ID, 10)

	own := newPending(event.ID, seedUser(t, st).ID)
	_, err := st.SubmitRequest(context.Background(), own)
	require.NoError(t, err)

	foreign := newPending(other.ID, seedUser(t, st).ID)
	_, err = st.SubmitRequest(context.Background(), foreign)
	require.NoError(t, err)

	_, err = st.ResolveRequests(context.Background(), event.ID,
		[]uuid.UUID{own.ID, foreign.ID}, models.DecisionConfirm)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrForeignRequest)

	got, err := st.RequestByID(context.Background(), own.ID)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusPending, got.Status)

	updated, err := st.EventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, updated.ConfirmedRequests)
}

// TestIntegration_ResolveRequests_NotPending — решённая заявка в пакете
// отклоняет весь пакет.
func TestIntegration_ResolveRequests_NotPending(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	initiator := seedUser(t, st)
	event := seedPublishedEvent(t, st, initiator.ID, 10)

	resolved := newPending(event.ID, seedUser(t, st).ID)
	resolved.Status = models.RequestStatusConfirmed
	_, err := st.SubmitRequest(context.Background(), resolved)
	require.NoError(t, err)

	_, err = st.ResolveRequests(context.Background(), event.ID,
		[]uuid.UUID{resolved.ID}, models.DecisionReject)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotPending)
}

// TestIntegration_RequestByID_NotFound — поиск отсутствующей заявки.
func TestIntegration_RequestByID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.RequestByID(context.Background(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_RequestQueries_ContextCanceled — отменённый контекст
// «просачивается» в ошибки чтения как context.Canceled.
func TestIntegration_RequestQueries_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // отменяем заранее

	_, err := st.RequestsByRequester(ctx, uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)

	_, err = st.RequestByID(ctx, uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
