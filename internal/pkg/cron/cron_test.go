package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsImmediatelyAndOnInterval(t *testing.T) {
	var runs int64

	s := NewScheduler()
	s.Add(&Job{
		Name:     "counter",
		Interval: 20 * time.Millisecond,
		Run: func(ctx context.Context) error {
			atomic.AddInt64(&runs, 1)
			return nil
		},
	})
	s.Start()
	defer s.Stop()

	time.Sleep(70 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(2))
}

func TestSchedulerStop(t *testing.T) {
	var runs int64

	s := NewScheduler()
	s.Add(&Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			atomic.AddInt64(&runs, 1)
			return nil
		},
	})
	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	// Let any in-flight run finish before sampling.
	time.Sleep(20 * time.Millisecond)
	stopped := atomic.LoadInt64(&runs)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt64(&runs))
}
