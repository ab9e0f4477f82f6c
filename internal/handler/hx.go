package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/htmx-todos/internal/model"
	"github.com/BuzzLyutic/htmx-todos/internal/repo"
	"github.com/BuzzLyutic/htmx-todos/internal/view"
	"github.com/BuzzLyutic/htmx-todos/pkg/respond"
)

// HeaderHXRequest is set by htmx on every request it issues, including boosted navigation.
const HeaderHXRequest = "HX-Request"

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidForm = errors.New("invalid form")
)

// IsPartial reports whether the client asked for a fragment rather than a full page.
func IsPartial(r *http.Request) bool {
	_, ok := r.Header[http.CanonicalHeaderKey(HeaderHXRequest)]
	return ok
}

// ParamFunc extracts a path parameter; it lets the same handlers run under chi and gorilla/mux.
type ParamFunc func(r *http.Request, key string) string

func ChiParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

func parseID(r *http.Request, param ParamFunc) (uint64, error) {
	id, err := strconv.ParseUint(param(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

type renderFunc func(w io.Writer) error

// base holds what every page handler needs: the renderer and the logger.
type base struct {
	view   *view.Renderer
	logger *zap.Logger
}

// page answers a read: the nav shell for boosted navigation, the full document otherwise.
func (b *base) page(w http.ResponseWriter, r *http.Request, title string, content renderFunc) {
	var body bytes.Buffer
	if err := content(&body); err != nil {
		b.handleErrors(w, r, err)
		return
	}

	wrap := b.view.Page
	if IsPartial(r) {
		wrap = b.view.Nav
	}

	var out bytes.Buffer
	if err := wrap(&out, title, body.Bytes()); err != nil {
		b.handleErrors(w, r, err)
		return
	}
	respond.HTML(w, r, http.StatusOK, out.Bytes())
}

// fragments concatenates fragment renderers into a single htmx response.
func (b *base) fragments(w http.ResponseWriter, r *http.Request, parts ...renderFunc) {
	var out bytes.Buffer
	for _, part := range parts {
		if part == nil {
			continue
		}
		if err := part(&out); err != nil {
			b.handleErrors(w, r, err)
			return
		}
	}
	respond.HTML(w, r, http.StatusOK, out.Bytes())
}

func (b *base) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var message string
	switch {
	case errors.Is(err, repo.ErrorNotFound), errors.Is(err, ErrInvalidID):
		message = "Invalid item number"
	case errors.Is(err, model.ErrInvalidFilter):
		message = "Invalid filter"
	case errors.Is(err, ErrInvalidForm):
		message = "Invalid form"
	default:
		b.logger.Error("internal error", zap.String("path", r.URL.Path), zap.Error(err))
		respond.Status(w, r, http.StatusInternalServerError)
		return
	}

	b.logger.Debug("bad request", zap.String("path", r.URL.Path), zap.Error(err))
	if IsPartial(r) {
		respond.Status(w, r, http.StatusBadRequest)
		return
	}
	respond.HTML(w, r, http.StatusBadRequest, []byte("<p>"+message+"</p>"))
}
