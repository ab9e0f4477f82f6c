package repo

import (
	"errors"
	"slices"
	"sync"

	"github.com/BuzzLyutic/htmx-todos/internal/model"
)

var ErrorNotFound = errors.New("not found")

type TodoRepo struct { // Хранилище задач в памяти процесса
	mu     sync.RWMutex
	items  []model.Todo // порядок вставки
	inc    uint64
	filter model.Filter
}

func NewTodoRepo() *TodoRepo {
	return &TodoRepo{
		items:  make([]model.Todo, 0),
		filter: model.FilterAll,
	}
}

func (r *TodoRepo) Create(text string) model.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inc++
	t := model.Todo{
		ID:   r.inc,
		Text: text,
	}
	r.items = append(r.items, t)
	return t
}

func (r *TodoRepo) Get(id uint64) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos := r.indexOf(id)
	if pos < 0 {
		return model.Todo{}, ErrorNotFound
	}
	return r.items[pos], nil
}

// At returns the todo at an insertion-order position, as reported by Toggle.
func (r *TodoRepo) At(pos int) (model.Todo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pos < 0 || pos >= len(r.items) {
		return model.Todo{}, false
	}
	return r.items[pos], true
}

// Toggle flips the completed flag and returns the position of the todo in insertion order.
func (r *TodoRepo) Toggle(id uint64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := r.indexOf(id)
	if pos < 0 {
		return -1, ErrorNotFound
	}
	r.items[pos].Completed = !r.items[pos].Completed
	return pos, nil
}

// ToggleAll completes every todo, or clears them all when every todo is
// already completed. It reports whether any todo changed state.
func (r *TodoRepo) ToggleAll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := !r.allDone()
	dirty := false
	for i := range r.items {
		if r.items[i].Completed != set {
			dirty = true
		}
		r.items[i].Completed = set
	}
	return dirty
}

func (r *TodoRepo) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := r.indexOf(id)
	if pos < 0 {
		return ErrorNotFound
	}
	r.items = slices.Delete(r.items, pos, pos+1)
	return nil
}

func (r *TodoRepo) SetFilter(f model.Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = f
}

func (r *TodoRepo) Filter() model.Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter
}

func (r *TodoRepo) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.countActive()
}

// AllCompleted is false for an empty list.
func (r *TodoRepo) AllCompleted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items) > 0 && r.allDone()
}

// Snapshot returns the visible todos newest first, together with the
// values the footer and the toggle-all checkbox are rendered from.
func (r *TodoRepo) Snapshot() model.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visible := make([]model.Todo, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.filter.Matches(r.items[i]) {
			visible = append(visible, r.items[i])
		}
	}

	return model.Snapshot{
		Items:   visible,
		Filter:  r.filter,
		Active:  r.countActive(),
		AllDone: len(r.items) > 0 && r.allDone(),
	}
}

func (r *TodoRepo) GetStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := r.countActive()
	return Stats{
		TotalTodos: len(r.items),
		Active:     active,
		Completed:  len(r.items) - active,
		Filter:     r.filter,
		LastID:     r.inc,
	}
}

func (r *TodoRepo) indexOf(id uint64) int {
	return slices.IndexFunc(r.items, func(t model.Todo) bool {
		return t.ID == id
	})
}

func (r *TodoRepo) countActive() int {
	n := 0
	for _, t := range r.items {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (r *TodoRepo) allDone() bool {
	for _, t := range r.items {
		if !t.Completed {
			return false
		}
	}
	return true
}
