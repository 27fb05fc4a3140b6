// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/models"
)

// Job names are fixed so a registration is idempotent across restarts.
const (
	JobDataSync              = "autobrain_data_sync"
	JobReminderNotifications = "autobrain_reminder_notifications"
	JobCacheCleanup          = "autobrain_cache_cleanup"
)

// DataSyncJob pushes and pulls every collection in background mode. It only
// runs on an unmetered network with a healthy battery; a missing or
// rejected token is not retried.
func DataSyncJob(sync service.ClientSyncService, userID string, interval time.Duration) Job {
	return Job{
		Name:        JobDataSync,
		Interval:    orDefault(interval, config.DefaultSyncInterval),
		Constraints: []Constraint{RequireUnmetered, RequireBatteryNotLow},
		Worker: WorkerFunc(func(ctx context.Context) error {
			reports, err := sync.SyncAll(ctx, userID, models.SyncModeBackground)
			pushed, pulled := 0, 0
			for _, r := range reports {
				pushed += r.Pushed
				pulled += r.Pulled
			}
			logger.FromContext(ctx).Debug().Int("pushed", pushed).Int("pulled", pulled).Msg("background sync pass")
			return err
		}),
		Permanent: func(err error) bool {
			return errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, service.ErrWrongUserScope)
		},
	}
}

// ReminderJob announces due reminders.
func ReminderJob(reminders service.ClientReminderService, interval time.Duration) Job {
	return Job{
		Name:     JobReminderNotifications,
		Interval: orDefault(interval, config.DefaultReminderInterval),
		Worker: WorkerFunc(func(ctx context.Context) error {
			_, err := reminders.NotifyDue(ctx)
			return err
		}),
	}
}

// CleanupJob drops expired diagnostics and stale image cache entries.
func CleanupJob(cleanup service.ClientCleanupService, interval time.Duration) Job {
	return Job{
		Name:     JobCacheCleanup,
		Interval: orDefault(interval, config.DefaultCleanupInterval),
		Worker: WorkerFunc(func(ctx context.Context) error {
			_, err := cleanup.Cleanup(ctx)
			return err
		}),
	}
}

// RegisterDefaultJobs registers the three client jobs, keeping any job that
// is already scheduled under the same name.
func RegisterDefaultJobs(s *Scheduler, services *service.ClientServices, userID string, cfg config.ClientWorkers) error {
	jobs := []Job{
		DataSyncJob(services.SyncService, userID, cfg.SyncInterval),
		ReminderJob(services.ReminderService, cfg.ReminderInterval),
		CleanupJob(services.CleanupService, cfg.CleanupInterval),
	}

	var errs []error
	for _, job := range jobs {
		if _, err := s.Register(job, KeepExisting); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
