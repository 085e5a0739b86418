package lazy

import (
	"fmt"
	"sync"
)

type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

type loader[T any] struct {
	provider func() (T, error)
	onceLoad *sync.Once
	isLoaded bool
	value    T
	err      error
}

func New[T any](provider func() (T, error)) Loader[T] {
	var empty T
	return &loader[T]{
		provider: provider,
		onceLoad: &sync.Once{},
		isLoaded: false,
		value:    empty,
		err:      nil,
	}
}

func (l *loader[T]) MustLoad() T {
	v, err := l.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load %T: %w", v, err))
	}
	return v
}

func (l *loader[T]) Load() (T, error) {
	l.onceLoad.Do(func() {
		l.value, l.err = l.provider()
		l.isLoaded = l.err == nil
	})
	return l.value, l.err
}

func (l *loader[T]) IfLoaded(fn func(T)) {
	if l.isLoaded {
		fn(l.value)
	}
}
