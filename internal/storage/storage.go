// Package storage задаёт контракты хранилища events-сервиса.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/имя категории/пара событие-заявитель).
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — нарушение ссылочной целостности (например, удаление категории с событиями).
	ErrConflict = errors.New("conflict")
	// ErrNoCapacity — лимит участников события исчерпан.
	ErrNoCapacity = errors.New("no capacity")
	// ErrNotPending — заявка из пакета не находится в статусе ожидания.
	ErrNotPending = errors.New("request is not pending")
	// ErrForeignRequest — заявка из пакета относится к другому событию.
	ErrForeignRequest = errors.New("request belongs to another event")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт пользователя. При занятом email — ErrAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) (*models.User, error)
	// UserByID возвращает пользователя. Если не найден — ErrNotFound.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserExists сообщает, существует ли пользователь.
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	// DeleteUser удаляет пользователя. Если не найден — ErrNotFound.
	DeleteUser(ctx context.Context, id uuid.UUID) error
	// Users возвращает страницу пользователей; при непустом ids — только перечисленных.
	Users(ctx context.Context, ids []uuid.UUID, from, size int32) ([]models.User, error)
}

// CategoryStorage выполняет операции над категориями событий.
type CategoryStorage interface {
	// SaveCategory создаёт категорию. При занятом имени — ErrAlreadyExists.
	SaveCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	// CategoryByID возвращает категорию. Если не найдена — ErrNotFound.
	CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	// DeleteCategory удаляет категорию. Если не найдена — ErrNotFound;
	// если на неё ссылаются события — ErrConflict.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	// Categories возвращает страницу категорий, отсортированных по имени.
	Categories(ctx context.Context, from, size int32) ([]models.Category, error)
}

// EventFilter — параметры публичного поиска опубликованных событий.
type EventFilter struct {
	Text        string
	CategoryIDs []uuid.UUID
	Paid        *bool
	RangeStart  time.Time
	RangeEnd    time.Time
	From        int32
	Size        int32
}

// EventStorage выполняет операции над событиями.
type EventStorage interface {
	// SaveEvent создаёт событие.
	SaveEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	// EventByID возвращает событие в любом состоянии. Если не найдено — ErrNotFound.
	EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// UpdateEvent перезаписывает изменяемые поля события (включая состояние,
	// дату публикации и счётчик подтверждённых). Если не найдено — ErrNotFound.
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	// EventsByInitiator возвращает страницу событий инициатора (новые сначала).
	EventsByInitiator(ctx context.Context, initiatorID uuid.UUID, from, size int32) ([]models.Event, error)
	// EventsByIDs возвращает события из перечисленных; отсутствующие
	// идентификаторы молча пропускаются.
	EventsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Event, error)
	// PublishedEvents возвращает страницу опубликованных событий по фильтру,
	// отсортированных по дате события.
	PublishedEvents(ctx context.Context, filter EventFilter) ([]models.Event, error)
}

// RequestStorage выполняет операции над заявками на участие.
//
// SubmitRequest и ResolveRequests — единственные операции, меняющие
// счётчик подтверждённых участников; обе захватывают блокировку строки
// события (FOR UPDATE) и применяют все изменения одной транзакцией,
// чтобы параллельные заявки не проскочили мимо лимита.
type RequestStorage interface {
	// SubmitRequest атомарно фиксирует новую заявку: блокирует строку
	// события, повторно проверяет лимит, вставляет заявку и для статуса
	// CONFIRMED инкрементирует счётчик события.
	// Возможные ошибки: ErrNotFound (событие исчезло), ErrNoCapacity,
	// ErrAlreadyExists (повторная заявка той же пары).
	SubmitRequest(ctx context.Context, request *models.Request) (*models.Request, error)

	// RequestExists сообщает, подавал ли пользователь заявку на событие
	// (в любом статусе).
	RequestExists(ctx context.Context, eventID, requesterID uuid.UUID) (bool, error)

	// RequestByID возвращает заявку. Если не найдена — ErrNotFound.
	RequestByID(ctx context.Context, id uuid.UUID) (*models.Request, error)

	// RequestsByRequester возвращает все заявки пользователя (новые сначала).
	RequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]models.Request, error)

	// RequestsByEvent возвращает все заявки события (старые сначала).
	RequestsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Request, error)

	// UpdateRequestStatus выставляет статус заявки (используется для отмены
	// заявителем; счётчик события не затрагивается).
	// Если заявка не найдена — ErrNotFound.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus) (*models.Request, error)

	// ResolveRequests атомарно применяет пакетное решение организатора:
	// блокирует строку события, загружает заявки пакета, проверяет их
	// принадлежность событию и статус PENDING, строит разбиение
	// (models.PartitionPending) и одной транзакцией записывает новые
	// статусы и счётчик события.
	// Возможные ошибки: ErrNotFound (событие/заявка), ErrNoCapacity
	// (лимит уже исчерпан до начала), ErrForeignRequest, ErrNotPending.
	// Любая ошибка откатывает весь пакет целиком.
	ResolveRequests(ctx context.Context, eventID uuid.UUID, requestIDs []uuid.UUID, decision models.ResolveDecision) (*models.ResolutionResult, error)
}

// CommentFilter — параметры модерационной выборки корневых комментариев.
type CommentFilter struct {
	Text   string
	Status *models.CommentStatus
	From   int32
	Size   int32
}

// CommentStorage выполняет операции над комментариями.
type CommentStorage interface {
	// SaveComment создаёт комментарий или ответ. Если указан ParentID,
	// родитель должен существовать (проверяется сервисным слоем).
	SaveComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// CommentByID возвращает комментарий вне зависимости от флага удаления.
	// Если не найден — ErrNotFound.
	CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	// CommentByIDForAuthor возвращает неудалённый комментарий автора.
	// Если не найден/удалён/чужой — ErrNotFound.
	CommentByIDForAuthor(ctx context.Context, id, authorID uuid.UUID) (*models.Comment, error)
	// UpdateCommentText обновляет текст и отметку времени правки.
	// Если не найден — ErrNotFound.
	UpdateCommentText(ctx context.Context, id uuid.UUID, text string, updated time.Time) (*models.Comment, error)
	// UpdateCommentStatus выставляет статус модерации. Если не найден — ErrNotFound.
	UpdateCommentStatus(ctx context.Context, id uuid.UUID, status models.CommentStatus) (*models.Comment, error)
	// SoftDeleteComment помечает комментарий удалённым (is_deleted=true, DELETED).
	// Если не найден — ErrNotFound.
	SoftDeleteComment(ctx context.Context, id uuid.UUID) error
	// HardDeleteComment удаляет запись безвозвратно (вместе с поддеревом ответов).
	// Если не найдена — ErrNotFound.
	HardDeleteComment(ctx context.Context, id uuid.UUID) error
	// PublishedByEvent возвращает страницу опубликованных неудалённых
	// комментариев события (старые сначала).
	PublishedByEvent(ctx context.Context, eventID uuid.UUID, from, size int32) ([]models.Comment, error)
	// PublishedByAuthor возвращает опубликованные неудалённые комментарии автора.
	PublishedByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Comment, error)
	// TopLevelByFilter возвращает страницу корневых комментариев для
	// модерационной очереди (старые сначала). Статус DELETED включает
	// удалённые записи, прочие фильтры их исключают.
	TopLevelByFilter(ctx context.Context, filter CommentFilter) ([]models.Comment, error)
	// RepliesByParents возвращает прямых детей перечисленных комментариев
	// (один уровень дерева, старые сначала). Обход вглубь выполняет
	// сервисный слой итеративно.
	RepliesByParents(ctx context.Context, parentIDs []uuid.UUID) ([]models.Comment, error)
}

// CompilationStorage выполняет операции над подборками событий.
type CompilationStorage interface {
	// SaveCompilation создаёт подборку вместе со связями на события
	// одной транзакцией.
	SaveCompilation(ctx context.Context, compilation *models.Compilation) (*models.Compilation, error)
	// CompilationByID возвращает подборку с загруженными событиями.
	// Если не найдена — ErrNotFound.
	CompilationByID(ctx context.Context, id uuid.UUID) (*models.Compilation, error)
	// Compilations возвращает страницу подборок (с событиями); при
	// непустом pinned — только закреплённые/незакреплённые.
	Compilations(ctx context.Context, pinned *bool, from, size int32) ([]models.Compilation, error)
	// UpdateCompilation перезаписывает заголовок и флаг закрепления и
	// заменяет состав событий на переданный. Если не найдена — ErrNotFound.
	UpdateCompilation(ctx context.Context, compilation *models.Compilation) (*models.Compilation, error)
	// DeleteCompilation удаляет подборку (связи уходят каскадом).
	// Если не найдена — ErrNotFound.
	DeleteCompilation(ctx context.Context, id uuid.UUID) error
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	CategoryStorage
	EventStorage
	RequestStorage
	CommentStorage
	CompilationStorage
	Close()
}
