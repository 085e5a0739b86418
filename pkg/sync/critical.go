package sync

import (
	"context"
	"sync"
)

type CriticalSection interface {
	Execute(ctx context.Context, name string, f func() error) error
}

type criticalSection struct {
	mu    *sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu      sync.Mutex
	holders int
}

func NewCriticalSection() CriticalSection {
	return &criticalSection{
		mu:    &sync.Mutex{},
		locks: make(map[string]*lockEntry),
	}
}

func (c *criticalSection) Execute(ctx context.Context, name string, f func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := c.acquireEntry(name)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		c.releaseEntry(name, entry)
	}()

	return f()
}

func (c *criticalSection) acquireEntry(name string) *lockEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.locks[name]
	if !ok {
		entry = &lockEntry{}
		c.locks[name] = entry
	}
	entry.holders++
	return entry
}

func (c *criticalSection) releaseEntry(name string, entry *lockEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.holders--
	if entry.holders == 0 {
		delete(c.locks, name)
	}
}
