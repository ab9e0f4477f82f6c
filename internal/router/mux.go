package router

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"
)

func MuxParam(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

// NewMux serves the same routes as NewChi on gorilla/mux. The chi
// middlewares are plain http.Handler decorators, so alice can chain them.
func NewMux(h Handlers, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	for _, rt := range routes(h) {
		r.HandleFunc(rt.path, rt.handler).Methods(rt.method)
	}

	return alice.New(
		middleware.RequestID,
		middleware.RealIP,
		AccessLog(logger),
		middleware.Recoverer,
	).Then(r)
}
