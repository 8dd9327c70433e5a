package models

import (
	"time"

	"github.com/google/uuid"
)

// User — пользователь платформы. Обслуживается сквозным CRUD
// администратора; движку допуска нужен только факт существования.
type User struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Created time.Time
}

// Category — категория событий.
type Category struct {
	ID   uuid.UUID
	Name string
}
