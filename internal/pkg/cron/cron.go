package cron

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Job is a named task run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []*Job
	cancel context.CancelFunc
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Add(job *Job) {
	s.jobs = append(s.jobs, job)
}

// Start runs every job once immediately, then on its interval.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, job := range s.jobs {
		go s.loop(ctx, job)
	}
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Scheduler) loop(ctx context.Context, job *Job) {
	run := func() {
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			log.Error().Err(err).Str("job", job.Name).Msg("cron job failed")
			return
		}
		log.Info().Str("job", job.Name).Dur("took", time.Since(start)).Msg("cron job finished")
	}

	run()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
