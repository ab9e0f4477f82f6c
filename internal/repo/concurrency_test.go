package repo

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/htmx-todos/internal/model"
)

func TestConcurrent_CreateUniqueIDs(t *testing.T) {
	r := NewTodoRepo()

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	ids := make([][]uint64, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				todo := r.Create(fmt.Sprintf("todo %d-%d", idx, j))
				ids[idx] = append(ids[idx], todo.ID)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, goroutines*perGoroutine)
	for i, list := range ids {
		for j := 1; j < len(list); j++ {
			assert.Less(t, list[j-1], list[j], "goroutine %d observed non-increasing ids", i)
		}
		for _, id := range list {
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
	assert.Equal(t, uint64(goroutines*perGoroutine), r.GetStats().LastID)
}

func TestConcurrent_MixedReadersAndWriters(t *testing.T) {
	r := NewTodoRepo()
	for i := 0; i < 100; i++ {
		r.Create(fmt.Sprintf("seed %d", i))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				switch j % 4 {
				case 0:
					r.Create("x")
				case 1:
					_, _ = r.Toggle(uint64(j + idx))
				case 2:
					r.ToggleAll()
				case 3:
					_ = r.Delete(uint64(j*idx + 1))
				}
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.SetFilter(model.Filters()[j%3])
				snap := r.Snapshot()
				for _, todo := range snap.Items {
					assert.True(t, snap.Filter.Matches(todo))
				}
			}
		}()
	}
	wg.Wait()

	stats := r.GetStats()
	assert.Equal(t, stats.TotalTodos, stats.Active+stats.Completed)
}

func TestConcurrent_CounterIncrement(t *testing.T) {
	c := NewCounterRepo()

	const goroutines = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(goroutines*100), c.Get())
}
