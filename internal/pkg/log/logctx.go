// Package log переносит request-scoped *slog.Logger через context.Context:
// middleware привязывает логгер с атрибутами запроса (request_id, метод,
// путь), нижние слои достают его через From и пишут в тот же поток.
package log

import (
	"context"
	"log/slog"
)

// loggerKey — непубличный тип ключа, исключает коллизии с чужими
// значениями в контексте.
type loggerKey struct{}

// Into возвращает контекст с привязанным логгером запроса.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From возвращает логгер запроса из ctx. Если логгер не привязан,
// привязан nil или под ключом лежит чужое значение — отдаёт
// slog.Default(), чтобы вызывающему не приходилось проверять nil.
func From(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || l == nil {
		return slog.Default()
	}

	return l
}
