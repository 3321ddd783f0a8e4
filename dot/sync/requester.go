// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/ChainSafe/gossamer/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "sync"))

// SetLogLevel sets the log level of the package logger.
func SetLogLevel(level log.Level) {
	logger.PatchLevel(level)
}

const (
	defaultRequestTimeout = 10 * time.Second
	stopTimeout           = 30 * time.Second
)

type justificationRequest struct {
	hash   common.Hash
	number uint
}

func (r justificationRequest) String() string {
	return fmt.Sprintf("justification request for block #%d (%s)", r.number, r.hash)
}

// JustificationRequester queues justification requests and sends them to
// the network one at a time. Requests for a block already queued are
// ignored, and queued requests for finalised blocks are dropped.
type JustificationRequester struct {
	network        Network
	blockState     BlockState
	requestTimeout time.Duration

	mtx     sync.Mutex
	queue   *requestsQueue[justificationRequest]
	pending map[common.Hash]struct{}
	wake    chan struct{}

	finalisedCh chan *types.FinalisationInfo
	cancel      context.CancelFunc
	doneCh      chan struct{}
}

// NewJustificationRequester creates a requester. A zero request timeout
// uses the default timeout.
func NewJustificationRequester(network Network, blockState BlockState,
	requestTimeout time.Duration) (*JustificationRequester, error) {
	if network == nil {
		return nil, errNilNetwork
	}
	if blockState == nil {
		return nil, errNilBlockState
	}
	if requestTimeout == 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &JustificationRequester{
		network:        network,
		blockState:     blockState,
		requestTimeout: requestTimeout,
		queue:          newRequestsQueue[justificationRequest](),
		pending:        make(map[common.Hash]struct{}),
		wake:           make(chan struct{}, 1),
	}, nil
}

// RequestJustification queues a request for the justification of the block.
func (r *JustificationRequester) RequestJustification(hash common.Hash, number uint) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.pending[hash]; ok {
		logger.Tracef("justification of block #%d (%s) already requested", number, hash)
		return
	}

	r.pending[hash] = struct{}{}
	r.queue.PushBack(justificationRequest{hash: hash, number: number})

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// ClearJustificationRequests drops all the queued requests.
func (r *JustificationRequester) ClearJustificationRequests() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	cleared := r.queue.Clear()
	r.pending = make(map[common.Hash]struct{})
	logger.Debugf("cleared %d pending justification requests", cleared)
}

// Pending returns the number of queued requests.
func (r *JustificationRequester) Pending() int {
	return r.queue.Len()
}

// Start subscribes to finalised blocks and starts sending requests.
func (r *JustificationRequester) Start() error {
	if r.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.doneCh = make(chan struct{})
	r.finalisedCh = r.blockState.GetFinalisedNotifierChannel()

	go r.run(ctx)
	return nil
}

// Stop stops sending requests and waits for the request in flight.
func (r *JustificationRequester) Stop() error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	defer r.blockState.FreeFinalisedNotifierChannel(r.finalisedCh)

	timeoutTimer := time.NewTimer(stopTimeout)
	select {
	case <-r.doneCh:
		if !timeoutTimer.Stop() {
			<-timeoutTimer.C
		}
		return nil
	case <-timeoutTimer.C:
		return fmt.Errorf("%w: justification requester", ErrStopTimeout)
	}
}

func (r *JustificationRequester) run(ctx context.Context) {
	defer close(r.doneCh)

	logger.Debug("justification requester started")
	for {
		select {
		case <-ctx.Done():
			logger.Debug("justification requester stopped")
			return
		case info := <-r.finalisedCh:
			r.pruneFinalised(info.Number)
		case <-r.wake:
			r.sendQueued(ctx)
		}
	}
}

func (r *JustificationRequester) sendQueued(ctx context.Context) {
	for ctx.Err() == nil {
		request, ok := r.pop()
		if !ok {
			return
		}

		requestCtx, cancel := context.WithTimeout(ctx, r.requestTimeout)
		err := r.network.SendJustificationRequest(requestCtx, request.hash, request.number)
		cancel()
		if err != nil {
			logger.Debugf("failed to send %s: %s", request, err)
			continue
		}
		logger.Tracef("sent %s", request)
	}
}

func (r *JustificationRequester) pop() (request justificationRequest, ok bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	request, ok = r.queue.PopFront()
	if ok {
		delete(r.pending, request.hash)
	}
	return request, ok
}

func (r *JustificationRequester) pruneFinalised(finalised uint) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	removed := r.queue.RemoveIf(func(request justificationRequest) bool {
		return request.number <= finalised
	})
	for _, request := range removed {
		delete(r.pending, request.hash)
	}

	if len(removed) > 0 {
		logger.Debugf("dropped %d justification requests for blocks finalised up to #%d",
			len(removed), finalised)
	}
}
