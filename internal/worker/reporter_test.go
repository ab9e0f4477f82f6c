package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BuzzLyutic/htmx-todos/internal/repo"
)

func TestReporter_LogsStats(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	todos := repo.NewTodoRepo()
	counter := repo.NewCounterRepo()
	todos.Create("A")
	counter.Increment()

	r := NewReporter(todos, counter, zap.New(core), 10*time.Millisecond)
	r.Start(context.Background())

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Stats").Len() > 0
	}, time.Second, 5*time.Millisecond)
	r.Stop()

	fields := logs.FilterMessage("Stats").All()[0].ContextMap()
	assert.Equal(t, uint64(1), fields["counter"])
	assert.Equal(t, int64(1), fields["todos"])
	assert.Equal(t, int64(1), fields["active"])
	assert.Equal(t, "All", fields["filter"])
	assert.Equal(t, 1, logs.FilterMessage("Stats reporter stopped").Len())
}

func TestReporter_Disabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewReporter(repo.NewTodoRepo(), repo.NewCounterRepo(), zap.New(core), 0)

	r.Start(context.Background())
	r.Stop()

	assert.Equal(t, 1, logs.FilterMessage("Stats reporter disabled").Len())
	assert.Equal(t, 0, logs.FilterMessage("Stats").Len())
}

func TestReporter_StopsOnContextCancel(t *testing.T) {
	r := NewReporter(repo.NewTodoRepo(), repo.NewCounterRepo(), zap.NewNop(), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop")
	}
}
