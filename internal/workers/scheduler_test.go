// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
)

// spyWorker считает вызовы Run и возвращает ошибки из очереди.
type spyWorker struct {
	calls atomic.Int64
	errs  []error
}

func (w *spyWorker) Run(_ context.Context) error {
	n := w.calls.Add(1)
	if int(n) <= len(w.errs) {
		return w.errs[n-1]
	}
	return nil
}

func newTestScheduler(conditions DeviceConditions) *Scheduler {
	return NewScheduler(config.ClientWorkers{MaxAttempts: 3, BackoffBase: time.Millisecond}, conditions, logger.Nop())
}

func testJob(name string, w Worker) Job {
	return Job{Name: name, Interval: time.Hour, Worker: w}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestScheduler_Register_Invalid(t *testing.T) {
	s := newTestScheduler(nil)

	for _, job := range []Job{
		{Interval: time.Hour, Worker: &spyWorker{}},
		{Name: "x", Worker: &spyWorker{}},
		{Name: "x", Interval: time.Hour},
	} {
		ok, err := s.Register(job, Replace)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidJob)
	}
}

func TestScheduler_Register_KeepExisting(t *testing.T) {
	s := newTestScheduler(nil)
	first, second := &spyWorker{}, &spyWorker{}

	ok, err := s.Register(testJob("job", first), KeepExisting)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Register(testJob("job", second), KeepExisting)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.RunNow(context.Background(), "job"))
	assert.Equal(t, int64(1), first.calls.Load())
	assert.Zero(t, second.calls.Load())
}

func TestScheduler_Register_Replace(t *testing.T) {
	s := newTestScheduler(nil)
	first, second := &spyWorker{}, &spyWorker{}

	_, err := s.Register(testJob("job", first), KeepExisting)
	require.NoError(t, err)
	ok, err := s.Register(testJob("job", second), Replace)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.RunNow(context.Background(), "job"))
	assert.Zero(t, first.calls.Load())
	assert.Equal(t, int64(1), second.calls.Load())
}

func TestScheduler_RunNow_UnknownJob(t *testing.T) {
	err := newTestScheduler(nil).RunNow(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

// ── retry ───────────────────────────────────────────────────────────────────

func TestScheduler_RunNow_RetriesUntilSuccess(t *testing.T) {
	s := newTestScheduler(nil)
	boom := errors.New("network down")
	w := &spyWorker{errs: []error{boom, boom}}
	_, err := s.Register(testJob("job", w), Replace)
	require.NoError(t, err)

	require.NoError(t, s.RunNow(context.Background(), "job"))
	assert.Equal(t, int64(3), w.calls.Load())

	st := s.Status()
	require.Len(t, st, 1)
	assert.Equal(t, 1, st[0].Runs)
	assert.Zero(t, st[0].Failures)
	assert.Empty(t, st[0].LastError)
}

func TestScheduler_RunNow_GivesUpAfterMaxAttempts(t *testing.T) {
	s := newTestScheduler(nil)
	boom := errors.New("network down")
	w := &spyWorker{errs: []error{boom, boom, boom, boom}}
	_, err := s.Register(testJob("job", w), Replace)
	require.NoError(t, err)

	err = s.RunNow(context.Background(), "job")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(3), w.calls.Load())

	st := s.Status()[0]
	assert.Equal(t, 1, st.Failures)
	assert.Equal(t, "network down", st.LastError)
}

func TestScheduler_RunNow_PermanentErrorIsNotRetried(t *testing.T) {
	s := newTestScheduler(nil)
	denied := errors.New("denied")
	w := &spyWorker{errs: []error{denied, denied, denied}}

	job := testJob("job", w)
	job.Permanent = func(err error) bool { return errors.Is(err, denied) }
	_, err := s.Register(job, Replace)
	require.NoError(t, err)

	assert.ErrorIs(t, s.RunNow(context.Background(), "job"), denied)
	assert.Equal(t, int64(1), w.calls.Load())
}

// ── constraints ─────────────────────────────────────────────────────────────

func TestScheduler_Constraints(t *testing.T) {
	conditions := NewStaticConditions(config.ClientDevice{Metered: true})
	s := newTestScheduler(conditions)
	w := &spyWorker{}

	job := testJob("job", w)
	job.Constraints = []Constraint{RequireUnmetered, RequireBatteryNotLow}
	_, err := s.Register(job, Replace)
	require.NoError(t, err)

	assert.ErrorIs(t, s.RunNow(context.Background(), "job"), ErrConstraintsNotMet)

	conditions.SetMetered(false)
	conditions.SetBatteryLow(true)
	assert.ErrorIs(t, s.RunNow(context.Background(), "job"), ErrConstraintsNotMet)
	assert.Zero(t, w.calls.Load())

	conditions.SetBatteryLow(false)
	require.NoError(t, s.RunNow(context.Background(), "job"))
	assert.Equal(t, int64(1), w.calls.Load())

	st := s.Status()[0]
	assert.Equal(t, 2, st.Skipped)
	assert.Equal(t, 1, st.Runs)
}

func TestScheduler_NoConditionsProviderAllowsEverything(t *testing.T) {
	s := newTestScheduler(nil)
	w := &spyWorker{}
	job := testJob("job", w)
	job.Constraints = []Constraint{RequireUnmetered}
	_, err := s.Register(job, Replace)
	require.NoError(t, err)

	require.NoError(t, s.RunNow(context.Background(), "job"))
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func TestScheduler_Start_RunsPeriodically(t *testing.T) {
	s := newTestScheduler(nil)
	w := &spyWorker{}
	_, err := s.Register(Job{Name: "job", Interval: 10 * time.Millisecond, Worker: w}, Replace)
	require.NoError(t, err)

	// Интервал 10ms — за 55ms должно быть несколько запусков
	s.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	s.Stop()

	got := w.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "вызвано: %d", got)
}

func TestScheduler_Stop_StopsLoops(t *testing.T) {
	s := newTestScheduler(nil)
	w := &spyWorker{}
	_, err := s.Register(Job{Name: "job", Interval: 10 * time.Millisecond, Worker: w}, Replace)
	require.NoError(t, err)

	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	callsAfterStop := w.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, w.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestScheduler_Stop_BeforeStart_NoPanic(t *testing.T) {
	s := newTestScheduler(nil)
	assert.NotPanics(t, func() { s.Stop() })
	assert.NotPanics(t, func() { s.Stop() })
}

func TestScheduler_Start_ContextCancelStopsLoops(t *testing.T) {
	s := newTestScheduler(nil)
	w := &spyWorker{}
	_, err := s.Register(Job{Name: "job", Interval: 10 * time.Millisecond, Worker: w}, Replace)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	calls := w.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, w.calls.Load())
	s.Stop()
}

func TestScheduler_RegisterWhileRunning(t *testing.T) {
	s := newTestScheduler(nil)
	s.Start(context.Background())
	defer s.Stop()

	first := &spyWorker{}
	_, err := s.Register(Job{Name: "job", Interval: 10 * time.Millisecond, Worker: first}, Replace)
	require.NoError(t, err)

	// новый job стартует сразу
	assert.Eventually(t, func() bool { return first.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)

	second := &spyWorker{}
	_, err = s.Register(Job{Name: "job", Interval: 10 * time.Millisecond, Worker: second}, Replace)
	require.NoError(t, err)

	stopped := first.calls.Load()
	assert.Eventually(t, func() bool { return second.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, stopped, first.calls.Load())
}
