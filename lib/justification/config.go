// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"time"

	"github.com/benbjohnson/clock"
)

const (
	defaultTickInterval    = time.Second
	defaultRequestCooldown = 5 * time.Second
)

// Config is the configuration of the justification handler.
type Config struct {
	SessionPeriod SessionPeriod
	// RequestCooldown is the minimum time between two requests for a
	// missing justification, and between a finalization and a request.
	RequestCooldown time.Duration
	// StaleRequestsAfter is the time without finalization after which
	// pending requests are cleared. Zero disables clearing.
	StaleRequestsAfter time.Duration
	// TickInterval is how often the handler considers requesting a
	// missing justification when no notification arrives.
	TickInterval  time.Duration
	RequestPolicy RequestPolicy
	Clock         clock.Clock
}

func (c *Config) setDefaults() {
	if c.RequestCooldown == 0 {
		c.RequestCooldown = defaultRequestCooldown
	}
	if c.TickInterval == 0 {
		c.TickInterval = defaultTickInterval
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
}
