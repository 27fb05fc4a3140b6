// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReminderPriority is the owner-assigned importance of a reminder.
type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
)

// Reminder is a scheduled maintenance task. A completed reminder carries
// CompletedAt; completion before DueDate is allowed.
type Reminder struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	CarID            string           `json:"car_id"`
	Title            string           `json:"title"`
	Type             string           `json:"type"`
	DueDate          time.Time        `json:"due_date"`
	Priority         ReminderPriority `json:"priority"`
	IsCompleted      bool             `json:"is_completed"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	NotificationSent bool             `json:"notification_sent"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	SyncMeta `json:"-"`
}

// DaysOverdue returns how many whole days the reminder is past due at now,
// or 0 when it is completed or not yet due.
func (r Reminder) DaysOverdue(now time.Time) int {
	if r.IsCompleted || !now.After(r.DueDate) {
		return 0
	}
	return int(now.Sub(r.DueDate).Hours() / 24)
}
