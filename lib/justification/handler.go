// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"
	"time"

	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/benbjohnson/clock"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "justification"))

// SetLogLevel sets the log level of the package logger.
func SetLogLevel(level log.Level) {
	logger.PatchLevel(level)
}

// Handler turns justification notifications into block finalizations.
// It drains the authority and import streams interleaved, finalizes
// verified blocks of the current session, and periodically requests the
// justification ending the current session while it is missing.
type Handler struct {
	sessionInfo SessionInfoProvider
	requester   BlockRequester
	blockState  BlockState
	finalizer   BlockFinalizer
	scheduler   RequestScheduler
	metrics     *Metrics

	tickInterval time.Duration
	clock        clock.Clock
}

// NewHandler creates a justification handler. The metrics may be nil.
func NewHandler(sessionInfo SessionInfoProvider, requester BlockRequester, blockState BlockState,
	finalizer BlockFinalizer, scheduler RequestScheduler, metrics *Metrics, cfg Config) *Handler {
	cfg.setDefaults()

	return &Handler{
		sessionInfo:  sessionInfo,
		requester:    requester,
		blockState:   blockState,
		finalizer:    finalizer,
		scheduler:    scheduler,
		metrics:      metrics,
		tickInterval: cfg.TickInterval,
		clock:        cfg.Clock,
	}
}

// Run handles notifications from both streams until one of them is
// closed, at which point it panics: a node which can no longer learn
// about finality must not keep running as if it could.
func (h *Handler) Run(authorityCh, importCh <-chan JustificationNotification) {
	ticker := h.clock.Ticker(h.tickInterval)
	defer ticker.Stop()

	logger.Info("justification handler started")

	// probe straight away instead of waiting for the first tick
	h.requestMissingJustification()

	for {
		select {
		case notification, ok := <-authorityCh:
			if !ok {
				h.streamClosed(SourceAuthority)
			}
			h.handleNotification(notification, SourceAuthority)
		case notification, ok := <-importCh:
			if !ok {
				h.streamClosed(SourceImport)
			}
			h.handleNotification(notification, SourceImport)
		case <-ticker.C:
		}

		h.requestMissingJustification()
	}
}

func (h *Handler) streamClosed(source Source) {
	err := fmt.Errorf("%w: %s", ErrNotificationStreamClosed, source)
	logger.Critical(err.Error())
	panic(err)
}

func (h *Handler) handleNotification(notification JustificationNotification, source Source) (
	outcome Outcome) {
	defer func() {
		h.metrics.notification(source, outcome)
	}()

	decoded, err := Decode(notification.Justification)
	if err != nil {
		logger.Warnf("dropping %s from %s stream: %s", notification, source, err)
		return OutcomeDecodeFailed
	}

	info := h.sessionInfo.ForBlockNumber(notification.Number)
	if info.Verifier == nil {
		logger.Debugf("dropping %s: verifier for session %d is not available",
			notification, info.Session)
		return OutcomeNoVerifier
	}

	finalised, err := h.blockState.FinalisedNumber()
	if err != nil {
		logger.Errorf("cannot get finalised block number: %s", err)
		return OutcomeStateError
	}

	if notification.Number <= finalised {
		logger.Debugf("dropping %s: block #%d is already finalised", notification, finalised)
		return OutcomeStale
	}

	current := h.sessionInfo.ForBlockNumber(finalised + 1)
	if notification.Number > current.LastBlock {
		logger.Debugf("dropping %s: session %d must end with block #%d being finalised first",
			notification, current.Session, current.LastBlock)
		return OutcomeFutureSession
	}

	justification := decoded.Upgrade()
	if !info.Verifier.Verify(justification, notification.Hash) {
		logger.Warnf("dropping %s from %s stream: verification failed", notification, source)
		return OutcomeVerifyFailed
	}

	encoded, err := justification.Encode()
	if err != nil {
		logger.Errorf("cannot encode %s: %s", notification, err)
		return OutcomeFinalizationError
	}

	err = h.finalizer.FinalizeBlock(notification.Hash, notification.Number, encoded)
	if err != nil {
		logger.Errorf("failed to finalise block #%d (%s): %s",
			notification.Number, notification.Hash, err)
		return OutcomeFinalizationError
	}

	h.scheduler.OnBlockFinalized()
	h.metrics.finalized(notification.Number)
	logger.Debugf("finalised block #%d (%s) with %s justification from %s stream",
		notification.Number, notification.Hash, decoded.Version(), source)
	return OutcomeFinalized
}

// requestMissingJustification requests the justification of the block
// ending the current session, or of the best block if the session end
// has not been imported yet, when the scheduler allows it.
func (h *Handler) requestMissingJustification() {
	finalised, err := h.blockState.FinalisedNumber()
	if err != nil {
		logger.Errorf("cannot get finalised block number: %s", err)
		return
	}

	info := h.sessionInfo.ForBlockNumber(finalised + 1)
	if info.Verifier == nil {
		logger.Debugf("verifier for session %d is not available yet, not requesting justifications",
			info.Session)
		return
	}

	switch h.scheduler.ScheduleAction() {
	case Wait:
		return
	case ClearQueue:
		logger.Debugf("no block finalised recently, clearing pending justification requests")
		h.requester.ClearJustificationRequests()
		h.scheduler.OnQueueCleared()
		h.metrics.queueCleared()
	case Request:
	}

	best, err := h.blockState.BestBlockNumber()
	if err != nil {
		logger.Errorf("cannot get best block number: %s", err)
		return
	}

	target := info.LastBlock
	if best < target {
		target = best
	}
	if target <= finalised {
		return
	}

	hash, err := h.blockState.GetHashByNumber(target)
	if err != nil {
		logger.Debugf("cannot get hash of block #%d: %s", target, err)
		return
	}

	logger.Debugf("requesting justification for block #%d (%s)", target, hash)
	h.requester.RequestJustification(hash, target)
	h.scheduler.OnRequestSent()
	h.metrics.requestSent()
}
