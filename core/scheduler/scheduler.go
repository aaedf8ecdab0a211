package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is the unit of work run on every tick.
type Job func(ctx context.Context)

// Scheduler runs a Job on a cron schedule and never lets two runs overlap.
// A tick that fires while the previous one is still running is skipped.
type Scheduler struct {
	cfg    Config
	cron   *cron.Cron
	job    cron.Job
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler for job. The schedule is validated here so that a bad
// expression fails at startup rather than silently never firing.
func New(cfg Config, job Job, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
	}

	cl := cronLogger{s: logger.Sugar()}
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cfg:    cfg,
		cron:   cron.New(cron.WithLogger(cl)),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	s.job = cron.NewChain(cron.SkipIfStillRunning(cl), cron.Recover(cl)).Then(cron.FuncJob(func() {
		s.runTick(job)
	}))

	if _, err := s.cron.AddJob(cfg.Schedule, s.job); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to schedule job: %w", err)
	}

	return s, nil
}

// Start begins firing ticks in the background.
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler started", zap.String("schedule", s.cfg.Schedule))
	s.cron.Start()
	if s.cfg.RunOnStart {
		go s.job.Run()
	}
}

// Trigger runs one guarded tick synchronously.
// It returns immediately if a tick is already running.
func (s *Scheduler) Trigger() {
	s.job.Run()
}

// Stop stops firing new ticks and waits for the running one, bounded by ctx.
// If ctx expires first the running tick is cancelled.
func (s *Scheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop()
	defer s.cancel()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

func (s *Scheduler) runTick(job Job) {
	s.wg.Add(1)
	defer s.wg.Done()

	ctx := s.ctx
	if s.cfg.TickTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TickTimeoutSeconds)*time.Second)
		defer cancel()
	}
	job(ctx)
}
