package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mobileheap/profilecard/pkg/log"
	"github.com/mobileheap/profilecard/pkg/worker"
)

func TestPeriodicalContextJob_RunsUntilContextEnds(t *testing.T) {
	ticks := make(chan struct{}, 16)
	job := worker.PeriodicalContextJob(func(context.Context) error {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return errors.New("tick failed")
	}, time.Millisecond, log.NewStub())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- job(ctx) }()

	// a failing job is logged and must not stop the loop
	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(5 * time.Second):
			t.Fatal("periodical job stopped ticking")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("periodical job did not stop on context end")
	}
}
