// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// SchedulerAction is the decision of a request scheduler on a tick.
type SchedulerAction uint8

const (
	// Wait means no request should be sent now.
	Wait SchedulerAction = iota
	// Request means the missing justification should be requested.
	Request
	// ClearQueue means pending requests are stale and should be dropped
	// before requesting again.
	ClearQueue
)

func (a SchedulerAction) String() string {
	switch a {
	case Wait:
		return "wait"
	case Request:
		return "request"
	case ClearQueue:
		return "clear queue"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// RequestScheduler decides when missing justifications should be requested.
type RequestScheduler interface {
	ScheduleAction() SchedulerAction
	OnRequestSent()
	OnBlockFinalized()
	OnQueueCleared()
}

// RequestPolicy gates whether requests may be sent at all.
type RequestPolicy uint32

const (
	// AllowRequests lets requests be sent once the cooldown has elapsed.
	AllowRequests RequestPolicy = iota
	// DenyRequests suppresses all requests.
	DenyRequests
)

func (p RequestPolicy) String() string {
	switch p {
	case AllowRequests:
		return "allow"
	case DenyRequests:
		return "deny"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(p))
	}
}

// ParseRequestPolicy parses a request policy from its name.
func ParseRequestPolicy(s string) (RequestPolicy, error) {
	switch strings.ToLower(s) {
	case AllowRequests.String():
		return AllowRequests, nil
	case DenyRequests.String():
		return DenyRequests, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownRequestPolicy, s)
}

// Scheduler is the RequestScheduler implementation. Requests are allowed
// once the cooldown has elapsed since both the last request and the last
// finalization. A fresh scheduler allows a request immediately.
// The policy can be changed concurrently with UpdatePolicy; all other
// methods must be called from a single goroutine.
type Scheduler struct {
	clock              clock.Clock
	cooldown           time.Duration
	staleRequestsAfter time.Duration
	policy             atomic.Uint32

	lastRequest      time.Time
	lastFinalization time.Time
	lastClear        time.Time
}

// NewScheduler creates a scheduler. A zero staleRequestsAfter disables
// clearing stale requests.
func NewScheduler(clk clock.Clock, cooldown, staleRequestsAfter time.Duration,
	policy RequestPolicy) *Scheduler {
	s := &Scheduler{
		clock:              clk,
		cooldown:           cooldown,
		staleRequestsAfter: staleRequestsAfter,
		lastClear:          clk.Now(),
	}
	s.policy.Store(uint32(policy))
	return s
}

// UpdatePolicy changes the request policy. It takes effect on the next
// call to ScheduleAction.
func (s *Scheduler) UpdatePolicy(policy RequestPolicy) {
	s.policy.Store(uint32(policy))
}

// Policy returns the current request policy.
func (s *Scheduler) Policy() RequestPolicy {
	return RequestPolicy(s.policy.Load())
}

// ScheduleAction returns what should be done now.
func (s *Scheduler) ScheduleAction() SchedulerAction {
	if s.Policy() == DenyRequests {
		return Wait
	}

	now := s.clock.Now()
	if !s.cooledDown(now, s.lastFinalization) || !s.cooledDown(now, s.lastRequest) {
		return Wait
	}

	if s.staleRequestsAfter > 0 {
		lastProgress := s.lastClear
		if s.lastFinalization.After(lastProgress) {
			lastProgress = s.lastFinalization
		}
		if now.Sub(lastProgress) >= s.staleRequestsAfter {
			return ClearQueue
		}
	}

	return Request
}

func (s *Scheduler) cooledDown(now, last time.Time) bool {
	return last.IsZero() || now.Sub(last) >= s.cooldown
}

// OnRequestSent records a request was sent.
func (s *Scheduler) OnRequestSent() {
	s.lastRequest = s.clock.Now()
}

// OnBlockFinalized records a block was finalized, which restarts the cooldown.
func (s *Scheduler) OnBlockFinalized() {
	s.lastFinalization = s.clock.Now()
}

// OnQueueCleared records pending requests were dropped.
func (s *Scheduler) OnQueueCleared() {
	s.lastClear = s.clock.Now()
}
