// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the periodic background jobs of the client: data
// sync, reminder notifications and cache cleanup.
//
// A [Scheduler] owns one loop per registered [Job]. Before every run the
// job's constraints are checked against a [DeviceConditions] provider; a
// failed run is retried with exponential backoff up to a fixed number of
// attempts and then waits for the next period.
package workers

import "context"

// Worker is the body of a job. Run is called once per attempt.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error { return f(ctx) }

// DeviceConditions reports the device state job constraints depend on.
type DeviceConditions interface {
	Unmetered() bool
	BatteryNotLow() bool
}
