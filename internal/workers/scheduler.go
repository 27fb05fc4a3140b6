// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
)

var (
	ErrInvalidJob        = errors.New("invalid job")
	ErrUnknownJob        = errors.New("unknown job")
	ErrConstraintsNotMet = errors.New("job constraints not met")
)

// Policy decides what Register does when a job with the same name exists.
type Policy int

const (
	// KeepExisting leaves the registered job untouched.
	KeepExisting Policy = iota
	// Replace stops the registered job and installs the new one.
	Replace
)

// Constraint is a device condition a run requires.
type Constraint int

const (
	RequireUnmetered Constraint = iota
	RequireBatteryNotLow
)

func (c Constraint) String() string {
	switch c {
	case RequireUnmetered:
		return "unmetered"
	case RequireBatteryNotLow:
		return "battery_not_low"
	}
	return fmt.Sprintf("constraint(%d)", int(c))
}

// Job is a named periodic task.
type Job struct {
	Name        string
	Interval    time.Duration
	Constraints []Constraint
	Worker      Worker

	// Permanent marks errors that must not be retried. Nil retries
	// every error.
	Permanent func(error) bool
}

// JobStatus is the observable state of one job.
type JobStatus struct {
	Name      string
	Runs      int
	Failures  int
	Skipped   int
	LastRunAt time.Time
	LastError string
}

type scheduled struct {
	job    Job
	status JobStatus
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler runs registered jobs until Stop. It is safe for concurrent use.
type Scheduler struct {
	conditions  DeviceConditions
	maxAttempts int
	backoffBase time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	jobs   map[string]*scheduled
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates an idle scheduler. Zero settings fall back to the
// defaults: 3 attempts per run, 30s first backoff step.
func NewScheduler(cfg config.ClientWorkers, conditions DeviceConditions, log *logger.Logger) *Scheduler {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultJobMaxAttempts
	}
	base := cfg.BackoffBase
	if base <= 0 {
		base = config.DefaultBackoffBase
	}

	return &Scheduler{
		conditions:  conditions,
		maxAttempts: maxAttempts,
		backoffBase: base,
		logger:      log,
		jobs:        make(map[string]*scheduled),
	}
}

// Register adds job under its name. It reports whether the job was
// installed; with KeepExisting an already registered name is left alone.
// A job registered on a running scheduler starts immediately.
func (s *Scheduler) Register(job Job, policy Policy) (bool, error) {
	if job.Name == "" || job.Interval <= 0 || job.Worker == nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidJob, job.Name)
	}

	s.mu.Lock()
	old, exists := s.jobs[job.Name]
	if exists && policy == KeepExisting {
		s.mu.Unlock()
		s.logger.Debug().Str("job", job.Name).Msg("job already registered, keeping existing")
		return false, nil
	}

	var stopOld func()
	if exists && old.cancel != nil {
		cancel, done := old.cancel, old.done
		stopOld = func() {
			cancel()
			<-done
		}
	}

	sj := &scheduled{job: job, status: JobStatus{Name: job.Name}}
	s.jobs[job.Name] = sj
	if s.ctx != nil {
		s.launch(sj)
	}
	s.mu.Unlock()

	if exists {
		if stopOld != nil {
			stopOld()
		}
		s.logger.Info().Str("job", job.Name).Msg("job replaced")
	} else {
		s.logger.Info().Str("job", job.Name).Dur("interval", job.Interval).Msg("job registered")
	}
	return true, nil
}

// Start launches a loop for every registered job. Every loop runs its job
// once right away and then once per interval. Start on a running scheduler
// is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	for _, sj := range s.jobs {
		s.launch(sj)
	}
}

// Stop cancels every loop and waits until all of them have exited. It is
// safe to call on an idle scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.ctx, s.cancel = nil, nil
	for _, sj := range s.jobs {
		sj.cancel = nil
	}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// RunNow runs the named job once outside its schedule, honoring its
// constraints and retry policy.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	sj, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return s.runOnce(ctx, sj)
}

// Status returns the state of every job sorted by name.
func (s *Scheduler) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]JobStatus, 0, len(s.jobs))
	for _, sj := range s.jobs {
		out = append(out, sj.status)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// launch must be called with s.mu held and s.ctx set.
func (s *Scheduler) launch(sj *scheduled) {
	ctx, cancel := context.WithCancel(s.ctx)
	sj.cancel = cancel
	sj.done = make(chan struct{})

	s.wg.Add(1)
	go s.loop(ctx, sj)
}

func (s *Scheduler) loop(ctx context.Context, sj *scheduled) {
	defer s.wg.Done()
	defer close(sj.done)

	_ = s.runOnce(ctx, sj)

	t := time.NewTicker(sj.job.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = s.runOnce(ctx, sj)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, sj *scheduled) error {
	job := sj.job
	log := s.logger.With().Str("job", job.Name).Logger()

	if unmet := s.unmet(job.Constraints); len(unmet) > 0 {
		s.record(sj, func(st *JobStatus) { st.Skipped++ })
		log.Debug().Strs("unmet", unmet).Msg("job skipped")
		return ErrConstraintsNotMet
	}

	attempt := 0
	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewExponential(s.backoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := job.Worker.Run(ctx)
		if err == nil {
			return nil
		}
		if job.Permanent != nil && job.Permanent(err) {
			return err
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("job attempt failed")
		return retry.RetryableError(err)
	})

	now := time.Now()
	s.record(sj, func(st *JobStatus) {
		st.Runs++
		st.LastRunAt = now
		st.LastError = ""
		if err != nil {
			st.Failures++
			st.LastError = err.Error()
		}
	})

	if err != nil {
		log.Error().Err(err).Int("attempts", attempt).Msg("job failed, waiting for next period")
		return err
	}
	log.Debug().Int("attempts", attempt).Msg("job finished")
	return nil
}

func (s *Scheduler) unmet(constraints []Constraint) []string {
	var unmet []string
	for _, c := range constraints {
		ok := true
		switch c {
		case RequireUnmetered:
			ok = s.conditions == nil || s.conditions.Unmetered()
		case RequireBatteryNotLow:
			ok = s.conditions == nil || s.conditions.BatteryNotLow()
		}
		if !ok {
			unmet = append(unmet, c.String())
		}
	}
	return unmet
}

func (s *Scheduler) record(sj *scheduled, update func(*JobStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update(&sj.status)
}
