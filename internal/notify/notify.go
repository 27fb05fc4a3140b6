// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers local notifications to the device owner.
//
// Delivery itself is outside the scope of the project: the shipped
// [LogNotifier] writes each notification to the client log. What the
// package guarantees is the channel contract: four fixed channel ids, each
// registered exactly once, on first use.
package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/autobrain/internal/logger"
)

// Channel identifiers. They are part of the device contract and never change.
const (
	ChannelReminders = "autobrain_reminders"
	ChannelMessages  = "autobrain_messages"
	ChannelBookings  = "autobrain_bookings"
	ChannelBreakdown = "autobrain_breakdown"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

var channelNames = map[string]string{
	ChannelReminders: "Maintenance reminders",
	ChannelMessages:  "Messages",
	ChannelBookings:  "Service bookings",
	ChannelBreakdown: "Breakdown alerts",
}

// Notification is a single message for the owner.
type Notification struct {
	Channel string
	// Tag deduplicates notifications on the device, e.g. a reminder id.
	Tag   string
	Title string
	Body  string
}

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

// Notifier shows notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier registers channels lazily and writes notifications to the log.
type LogNotifier struct {
	logger *logger.Logger

	mu         sync.Mutex
	registered map[string]struct{}
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{
		logger:     log,
		registered: make(map[string]struct{}, len(channelNames)),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, note Notification) error {
	if err := n.ensureChannel(note.Channel); err != nil {
		return err
	}

	n.logger.Info().
		Str("channel", note.Channel).
		Str("tag", note.Tag).
		Str("title", note.Title).
		Str("body", note.Body).
		Msg("notification")
	return nil
}

// Registered reports whether channel was already created.
func (n *LogNotifier) Registered(channel string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, ok := n.registered[channel]
	return ok
}

func (n *LogNotifier) ensureChannel(channel string) error {
	name, ok := channelNames[channel]
	if !ok {
		return ErrUnknownChannel
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, done := n.registered[channel]; done {
		return nil
	}
	n.registered[channel] = struct{}{}
	n.logger.Debug().Str("channel", channel).Str("name", name).Msg("notification channel registered")
	return nil
}
