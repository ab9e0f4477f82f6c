package repo

import "sync"

type CounterRepo struct {
	mu    sync.Mutex
	value uint64
}

func NewCounterRepo() *CounterRepo {
	return &CounterRepo{}
}

func (c *CounterRepo) Increment() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

func (c *CounterRepo) Get() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
