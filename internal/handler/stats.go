package handler

import (
	"net/http"

	"github.com/BuzzLyutic/htmx-todos/internal/repo"
	"github.com/BuzzLyutic/htmx-todos/pkg/respond"
)

type StatsResponse struct {
	Counter uint64     `json:"counter"`
	Todos   repo.Stats `json:"todos"`
}

type StatsHandler struct {
	todos   repo.TodoRepository
	counter repo.CounterRepository
}

func NewStatsHandler(todos repo.TodoRepository, counter repo.CounterRepository) *StatsHandler {
	return &StatsHandler{
		todos:   todos,
		counter: counter,
	}
}

func (h *StatsHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, StatsResponse{
		Counter: h.counter.Get(),
		Todos:   h.todos.GetStats(),
	})
}
