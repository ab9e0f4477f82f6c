// Package app assembles the server with fx: every store, handler and the
// HTTP server are constructed once here and injected where needed.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/htmx-todos/internal/config"
	"github.com/BuzzLyutic/htmx-todos/internal/handler"
	"github.com/BuzzLyutic/htmx-todos/internal/repo"
	"github.com/BuzzLyutic/htmx-todos/internal/router"
	"github.com/BuzzLyutic/htmx-todos/internal/view"
	"github.com/BuzzLyutic/htmx-todos/internal/worker"
)

func New() *fx.App {
	return fx.New(Options())
}

func Options() fx.Option {
	return fx.Options(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			config.Load,
			NewLogger,
			view.New,
			newTodoRepo,
			newCounterRepo,
			handler.NewAboutHandler,
			newTodoHandler,
			handler.NewStatsHandler,
			newHandlers,
			newRouter,
			newListener,
			newServer,
			newReporter,
		),
		fx.Invoke(runServer, runReporter),
	)
}

func newTodoRepo() repo.TodoRepository {
	return repo.NewTodoRepo()
}

func newCounterRepo() repo.CounterRepository {
	return repo.NewCounterRepo()
}

func newTodoHandler(todos repo.TodoRepository, v *view.Renderer, logger *zap.Logger, cfg config.Config) *handler.TodoHandler {
	return handler.NewTodoHandler(todos, v, logger, handler.WithParamFunc(router.ParamFunc(cfg.Router)))
}

func newHandlers(about *handler.AboutHandler, todos *handler.TodoHandler, stats *handler.StatsHandler) router.Handlers {
	return router.Handlers{About: about, Todos: todos, Stats: stats}
}

func newRouter(cfg config.Config, h router.Handlers, logger *zap.Logger) http.Handler {
	if cfg.Router == router.KindMux {
		return router.NewMux(h, logger)
	}
	return router.NewChi(h, logger)
}

func newListener(cfg config.Config) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	return ln, nil
}

func newServer(cfg config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func newReporter(todos repo.TodoRepository, counter repo.CounterRepository, logger *zap.Logger, cfg config.Config) *worker.Reporter {
	return worker.NewReporter(todos, counter, logger, cfg.StatsInterval)
}

func runServer(lc fx.Lifecycle, srv *http.Server, ln net.Listener, cfg config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() { // Запуск сервера и обработка ошибок
				logger.Info("Server started", zap.String("addr", ln.Addr().String()), zap.String("router", cfg.Router))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Graceful shutdown
			logger.Info("Shutting down server...")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("Server stopped successfully")
			return nil
		},
	})
}

func runReporter(lc fx.Lifecycle, r *worker.Reporter) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start(context.Background())
			return nil
		},
		OnStop: func(context.Context) error {
			r.Stop()
			return nil
		},
	})
}
