package repo

import (
	"github.com/BuzzLyutic/htmx-todos/internal/model"
)

// TodoRepository определяет интерфейс для работы со списком задач
type TodoRepository interface {
	Create(text string) model.Todo
	Get(id uint64) (model.Todo, error)
	At(pos int) (model.Todo, bool)
	Toggle(id uint64) (int, error)
	ToggleAll() bool
	Delete(id uint64) error
	SetFilter(f model.Filter)
	Filter() model.Filter
	CountActive() int
	AllCompleted() bool
	Snapshot() model.Snapshot
	GetStats() Stats
}

// CounterRepository определяет интерфейс счетчика на странице About
type CounterRepository interface {
	Increment() uint64
	Get() uint64
}

type Stats struct {
	TotalTodos int          `json:"total_todos"`
	Active     int          `json:"active"`
	Completed  int          `json:"completed"`
	Filter     model.Filter `json:"filter"`
	LastID     uint64       `json:"last_id"`
}
