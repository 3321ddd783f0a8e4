// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/aleph-finality/lib/justification"
)

const handlerStopTimeout = 30 * time.Second

// handlerService runs the justification handler over the authority
// and import notification queues. Closing either queue outside of Stop
// crashes the process.
type handlerService struct {
	handler   *justification.Handler
	authority *justification.NotificationQueue
	imports   *justification.NotificationQueue

	stopping atomic.Bool
	done     chan struct{}
}

func newHandlerService(handler *justification.Handler) *handlerService {
	return &handlerService{
		handler:   handler,
		authority: justification.NewNotificationQueue(),
		imports:   justification.NewNotificationQueue(),
	}
}

func (s *handlerService) Start() error {
	s.done = make(chan struct{})
	go s.run()
	return nil
}

func (s *handlerService) run() {
	defer close(s.done)
	defer func() {
		// nothing receives from the queues once the handler returned
		s.authority.Abandon()
		s.imports.Abandon()

		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if ok && errors.Is(err, justification.ErrNotificationStreamClosed) && s.stopping.Load() {
			logger.Debug("justification handler stopped")
			return
		}
		panic(r)
	}()

	s.handler.Run(s.authority.Receive(), s.imports.Receive())
}

// Stop closes both queues and waits for the handler to drain them.
func (s *handlerService) Stop() error {
	s.stopping.Store(true)
	s.authority.Close()
	s.imports.Close()

	timer := time.NewTimer(handlerStopTimeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return nil
	case <-timer.C:
		return errHandlerStopTimeout
	}
}
