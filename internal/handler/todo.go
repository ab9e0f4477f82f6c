package handler

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/htmx-todos/internal/model"
	"github.com/BuzzLyutic/htmx-todos/internal/repo"
	"github.com/BuzzLyutic/htmx-todos/internal/view"
)

type TodoHandler struct {
	base
	todos repo.TodoRepository
	param ParamFunc
}

type TodoOption func(*TodoHandler)

// WithParamFunc replaces the chi path parameter lookup.
func WithParamFunc(fn ParamFunc) TodoOption {
	return func(h *TodoHandler) {
		h.param = fn
	}
}

func NewTodoHandler(todos repo.TodoRepository, v *view.Renderer, logger *zap.Logger, opts ...TodoOption) *TodoHandler {
	h := &TodoHandler{
		base:  base{view: v, logger: logger},
		todos: todos,
		param: ChiParam,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TodoHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap := h.todos.Snapshot()
	h.page(w, r, view.TitleTodos, func(w io.Writer) error {
		return h.view.Todos(w, snap)
	})
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.handleErrors(w, r, fmt.Errorf("%w: %v", ErrInvalidForm, err))
		return
	}

	todo := h.todos.Create(r.PostForm.Get("text"))
	h.logger.Debug("todo created", zap.Uint64("id", todo.ID))

	if !IsPartial(r) {
		h.Index(w, r)
		return
	}

	snap := h.todos.Snapshot()
	var row renderFunc
	if snap.Filter.Matches(todo) {
		row = func(w io.Writer) error { return h.view.TodoItem(w, todo) }
	}
	h.fragments(w, r,
		row,
		func(w io.Writer) error { return h.view.TodoInput(w, true) },
		func(w io.Writer) error { return h.view.TodoCount(w, snap.Active, true) },
		func(w io.Writer) error { return h.view.ToggleAll(w, snap.AllDone, true) },
	)
}

func (h *TodoHandler) Filter(w http.ResponseWriter, r *http.Request) {
	filter, err := model.ParseFilter(r.URL.Query().Get("mode"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.todos.SetFilter(filter)

	if !IsPartial(r) {
		h.Index(w, r)
		return
	}

	snap := h.todos.Snapshot()
	h.fragments(w, r, func(w io.Writer) error {
		return h.view.TodoItems(w, snap.Items, true)
	})
}

func (h *TodoHandler) ToggleAll(w http.ResponseWriter, r *http.Request) {
	dirty := h.todos.ToggleAll()

	if !IsPartial(r) {
		h.Index(w, r)
		return
	}

	snap := h.todos.Snapshot()
	var list renderFunc
	if dirty {
		list = func(w io.Writer) error { return h.view.TodoItems(w, snap.Items, true) }
	}
	h.fragments(w, r,
		func(w io.Writer) error { return h.view.TodoCount(w, snap.Active, true) },
		func(w io.Writer) error { return h.view.ToggleAll(w, snap.AllDone, true) },
		list,
	)
}

func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, h.param)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	pos, err := h.todos.Toggle(id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if !IsPartial(r) {
		h.Index(w, r)
		return
	}

	snap := h.todos.Snapshot()
	var row renderFunc
	// Пустой ответ убирает строку: она больше не подходит под фильтр
	if todo, ok := h.itemAt(pos, id); ok && snap.Filter.Matches(todo) {
		row = func(w io.Writer) error { return h.view.TodoItem(w, todo) }
	}
	h.fragments(w, r,
		row,
		func(w io.Writer) error { return h.view.TodoCount(w, snap.Active, true) },
		func(w io.Writer) error { return h.view.ToggleAll(w, snap.AllDone, true) },
	)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, h.param)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.todos.Delete(id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.logger.Debug("todo deleted", zap.Uint64("id", id))

	if !IsPartial(r) {
		h.Index(w, r)
		return
	}

	snap := h.todos.Snapshot()
	h.fragments(w, r,
		func(w io.Writer) error { return h.view.TodoCount(w, snap.Active, true) },
		func(w io.Writer) error { return h.view.ToggleAll(w, snap.AllDone, true) },
	)
}

// itemAt reads back a toggled todo by position, falling back to a lookup by
// id when another writer has moved it in the meantime.
func (h *TodoHandler) itemAt(pos int, id uint64) (model.Todo, bool) {
	if todo, ok := h.todos.At(pos); ok && todo.ID == id {
		return todo, true
	}
	todo, err := h.todos.Get(id)
	return todo, err == nil
}
