package handler

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/htmx-todos/internal/repo"
	"github.com/BuzzLyutic/htmx-todos/internal/view"
)

type AboutHandler struct {
	base
	counter repo.CounterRepository
}

func NewAboutHandler(counter repo.CounterRepository, v *view.Renderer, logger *zap.Logger) *AboutHandler {
	return &AboutHandler{
		base:    base{view: v, logger: logger},
		counter: counter,
	}
}

func (h *AboutHandler) Index(w http.ResponseWriter, r *http.Request) {
	count := h.counter.Get()
	h.page(w, r, view.TitleAbout, func(w io.Writer) error {
		return h.view.About(w, count)
	})
}

func (h *AboutHandler) Increment(w http.ResponseWriter, r *http.Request) {
	count := h.counter.Increment()
	h.logger.Debug("counter incremented", zap.Uint64("count", count))

	if !IsPartial(r) {
		h.Index(w, r)
		return
	}
	h.fragments(w, r, func(w io.Writer) error {
		return h.view.AboutCount(w, count)
	})
}
