// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync/atomic"

	"github.com/MKhiriev/autobrain/internal/config"
)

// StaticConditions is a [DeviceConditions] seeded from configuration. The
// values can be flipped at runtime.
type StaticConditions struct {
	metered    atomic.Bool
	batteryLow atomic.Bool
}

func NewStaticConditions(cfg config.ClientDevice) *StaticConditions {
	c := &StaticConditions{}
	c.metered.Store(cfg.Metered)
	c.batteryLow.Store(cfg.BatteryLow)
	return c
}

func (c *StaticConditions) Unmetered() bool     { return !c.metered.Load() }
func (c *StaticConditions) BatteryNotLow() bool { return !c.batteryLow.Load() }

func (c *StaticConditions) SetMetered(v bool)    { c.metered.Store(v) }
func (c *StaticConditions) SetBatteryLow(v bool) { c.batteryLow.Store(v) }
