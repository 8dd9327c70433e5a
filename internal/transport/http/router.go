// Package http собирает REST-поверхность events-сервиса: публичные
// чтения, личный кабинет инициатора/заявителя и административные ручки.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-events-platform/internal/service"
	"github.com/pribylovaa/go-events-platform/internal/transport/http/handlers"
	"github.com/pribylovaa/go-events-platform/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики/латентность по шаблону маршрута
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// публичная поверхность
	r.Get("/events", h.ListPublishedEvents)
	r.Get("/events/{eventID}", h.GetPublishedEvent)
	r.Get("/events/{eventID}/comments", h.ListEventComments)
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{categoryID}", h.GetCategory)
	r.Get("/compilations", h.ListCompilations)
	r.Get("/compilations/{compilationID}", h.GetCompilation)

	// личный кабинет: события инициатора
	r.Post("/users/{userID}/events", h.CreateEvent)
	r.Get("/users/{userID}/events", h.ListOwnEvents)
	r.Get("/users/{userID}/events/{eventID}", h.GetOwnEvent)
	r.Patch("/users/{userID}/events/{eventID}", h.UpdateOwnEvent)
	r.Get("/users/{userID}/events/{eventID}/requests", h.ListEventRequests)
	r.Patch("/users/{userID}/events/{eventID}/requests", h.ResolveEventRequests)

	// личный кабинет: заявки на участие
	r.Post("/users/{userID}/requests", h.CreateRequest)
	r.Get("/users/{userID}/requests", h.ListOwnRequests)
	r.Patch("/users/{userID}/requests/{requestID}/cancel", h.CancelRequest)

	// личный кабинет: комментарии
	r.Post("/users/{userID}/comments/events/{eventID}", h.CreateComment)
	r.Post("/users/{userID}/comments/events/{eventID}/replies/{parentID}", h.CreateReply)
	r.Get("/users/{userID}/comments", h.ListOwnComments)
	r.Get("/users/{userID}/comments/{commentID}", h.GetOwnComment)
	r.Patch("/users/{userID}/comments/{commentID}", h.UpdateOwnComment)
	r.Delete("/users/{userID}/comments/{commentID}", h.DeleteOwnComment)

	// административная поверхность
	r.Patch("/admin/events/{eventID}", h.DecideEvent)
	r.Post("/admin/users", h.CreateUser)
	r.Get("/admin/users", h.ListUsers)
	r.Delete("/admin/users/{userID}", h.DeleteUser)
	r.Post("/admin/categories", h.CreateCategory)
	r.Delete("/admin/categories/{categoryID}", h.DeleteCategory)
	r.Post("/admin/compilations", h.CreateCompilation)
	r.Patch("/admin/compilations/{compilationID}", h.UpdateCompilation)
	r.Delete("/admin/compilations/{compilationID}", h.DeleteCompilation)
	r.Get("/admin/comments/filter", h.FilterComments)
	r.Get("/admin/comments/{commentID}", h.GetComment)
	r.Patch("/admin/comments/{commentID}", h.ModerateComment)
	r.Delete("/admin/comments/{commentID}", h.DeleteComment)
	r.Delete("/admin/comments/{commentID}/hard", h.HardDeleteComment)
}
