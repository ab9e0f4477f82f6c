// Package router mounts the handlers on an HTTP router. Two front-ends serve
// the same route table: chi (default) and gorilla/mux.
package router

import (
	"net/http"

	"github.com/BuzzLyutic/htmx-todos/internal/handler"
)

const (
	KindChi = "chi"
	KindMux = "mux"
)

type Handlers struct {
	About *handler.AboutHandler
	Todos *handler.TodoHandler
	Stats *handler.StatsHandler
}

// route is one entry of the route table shared by both routers.
type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

func routes(h Handlers) []route {
	return []route{
		{http.MethodGet, "/health", h.Stats.Health},
		{http.MethodGet, "/stats", h.Stats.Stats},

		{http.MethodGet, "/", h.About.Index},
		{http.MethodPost, "/", h.About.Increment},

		{http.MethodGet, "/todos", h.Todos.Index},
		{http.MethodPost, "/todos", h.Todos.Create},
		{http.MethodGet, "/todos/filter", h.Todos.Filter},
		{http.MethodPost, "/todos/toggleall", h.Todos.ToggleAll},
		{http.MethodPost, "/todos/todo/{id}/toggle", h.Todos.Toggle},
		{http.MethodDelete, "/todos/todo/{id}", h.Todos.Delete},
	}
}

// ParamFunc returns the path parameter lookup matching the router kind.
func ParamFunc(kind string) handler.ParamFunc {
	if kind == KindMux {
		return MuxParam
	}
	return handler.ChiParam
}
