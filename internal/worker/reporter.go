package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/htmx-todos/internal/repo"
)

// Reporter periodically logs a snapshot of both stores.
type Reporter struct {
	todos    repo.TodoRepository
	counter  repo.CounterRepository
	logger   *zap.Logger
	interval time.Duration
	wg       sync.WaitGroup
	stop     chan struct{}
	once     sync.Once
}

func NewReporter(todos repo.TodoRepository, counter repo.CounterRepository, logger *zap.Logger, interval time.Duration) *Reporter {
	return &Reporter{
		todos:    todos,
		counter:  counter,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (r *Reporter) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Debug("Stats reporter disabled")
		return
	}
	r.logger.Info("Starting stats reporter", zap.Duration("interval", r.interval))

	r.wg.Add(1)
	go r.run(ctx)
}

func (r *Reporter) Stop() {
	r.once.Do(func() {
		close(r.stop)
	})
	r.wg.Wait()
	r.logger.Info("Stats reporter stopped")
}

func (r *Reporter) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *Reporter) report() {
	stats := r.todos.GetStats()
	r.logger.Info("Stats",
		zap.Uint64("counter", r.counter.Get()),
		zap.Int("todos", stats.TotalTodos),
		zap.Int("active", stats.Active),
		zap.Int("completed", stats.Completed),
		zap.Stringer("filter", stats.Filter),
	)
}
