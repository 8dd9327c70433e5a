package models

import "github.com/google/uuid"

// MaxCompilationTitleLen — предельная длина заголовка подборки.
const MaxCompilationTitleLen = 50

// Compilation — курируемая подборка событий для витрины.
// Events хранит события подборки в порядке добавления; состав
// заменяется целиком при обновлении.
type Compilation struct {
	ID     uuid.UUID
	Title  string
	Pinned bool
	Events []Event
}
