package stream

import "sync"

type (
	// Publisher fans out full-snapshot values to any number of subscribers.
	// A new subscriber immediately receives the latest published snapshot,
	// then every subsequent one. Snapshots arrive in publish order; a slow
	// subscriber is conflated to the latest snapshot, the publisher never
	// blocks on delivery.
	Publisher[T any] interface {
		Publish(value T)
		Subscribe() Subscription[T]
		Close()
	}

	Subscription[T any] interface {
		Updates() <-chan T
		Close()
	}
)

type publisher[T any] struct {
	mu      sync.Mutex
	subs    map[*subscription[T]]struct{}
	last    T
	hasLast bool
	closed  bool
}

func NewPublisher[T any]() Publisher[T] {
	return &publisher[T]{
		subs: make(map[*subscription[T]]struct{}),
	}
}

func (p *publisher[T]) Publish(value T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.last = value
	p.hasLast = true
	for sub := range p.subs {
		sub.send(value)
	}
}

func (p *publisher[T]) Subscribe() Subscription[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &subscription[T]{
		parent: p,
		ch:     make(chan T, 1),
	}
	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subs[sub] = struct{}{}
	if p.hasLast {
		sub.send(p.last)
	}
	return sub
}

func (p *publisher[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.closed = true
	for sub := range p.subs {
		close(sub.ch)
		delete(p.subs, sub)
	}
}

type subscription[T any] struct {
	parent *publisher[T]
	ch     chan T
}

func (s *subscription[T]) Updates() <-chan T {
	return s.ch
}

func (s *subscription[T]) Close() {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()

	if _, ok := s.parent.subs[s]; !ok {
		return
	}

	delete(s.parent.subs, s)
	close(s.ch)
}

// send is called with the parent mutex held; the channel holds at most the
// latest value, so replacing a pending one keeps publish order.
func (s *subscription[T]) send(value T) {
	select {
	case s.ch <- value:
		return
	default:
	}

	select {
	case <-s.ch:
	default:
	}

	select {
	case s.ch <- value:
	default:
	}
}
