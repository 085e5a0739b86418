package worker

import (
	"context"
	"sync"
)

type ErrorJob func(context.Context) error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctx                 context.Context
	ctxCancel           context.CancelFunc
	cancelCtxAfterError bool

	errChan   chan error
	errResult error
	pool      Pool
	wg        *sync.WaitGroup

	onceCloser *sync.Once
}

func WithinFailFastGroup(ctx context.Context, pool Pool) Group {
	return newGroup(ctx, pool, true)
}

func WithinFailSafeGroup(ctx context.Context, pool Pool) Group {
	return newGroup(ctx, pool, false)
}

func NewFailFastGroup(ctx context.Context) Group {
	return WithinFailFastGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func NewFailSafeGroup(ctx context.Context) Group {
	return WithinFailSafeGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func newGroup(ctx context.Context, pool Pool, cancelCtxAfterError bool) Group {
	var ctxCancel context.CancelFunc
	ctx, ctxCancel = context.WithCancel(ctx)
	return &group{
		ctx:                 ctx,
		ctxCancel:           ctxCancel,
		cancelCtxAfterError: cancelCtxAfterError,
		errChan:             make(chan error, 1),
		errResult:           nil,
		pool:                pool,
		wg:                  &sync.WaitGroup{},
		onceCloser:          &sync.Once{},
	}
}

func (g *group) Do(job ErrorJob) {
	handleErr := func(err error) {
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			if g.cancelCtxAfterError {
				g.ctxCancel()
			}
		default:
		}
	}

	g.wg.Add(1)
	g.pool.Do(func() {
		handleErr(job(g.ctx))
		g.wg.Done()
	})
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
