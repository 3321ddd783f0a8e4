// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"container/list"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer/lib/common"
)

// ErrQueueClosed is returned when sending to a closed notification queue.
var ErrQueueClosed = errors.New("notification queue closed")

// Source identifies which inbound stream a notification came from.
type Source string

const (
	// SourceAuthority is the stream of justifications produced by this
	// node taking part in consensus.
	SourceAuthority Source = "authority"
	// SourceImport is the stream of justifications received with imported
	// blocks or in answer to justification requests.
	SourceImport Source = "import"
)

// JustificationNotification carries an encoded justification for a block.
// The justification may use any known wire version.
type JustificationNotification struct {
	Justification []byte
	Hash          common.Hash
	Number        uint
}

func (n JustificationNotification) String() string {
	return fmt.Sprintf("justification for block #%d (%s)", n.Number, n.Hash)
}

// NotificationQueue is an unbounded queue of justification notifications.
// Send never blocks; notifications are delivered in order on the channel
// returned by Receive. Once closed and drained, the receive channel is closed.
type NotificationQueue struct {
	mu     sync.Mutex
	queue  *list.List
	closed bool
	wake   chan struct{}
	out    chan JustificationNotification

	abandonOnce sync.Once
	abandoned   chan struct{}
}

// NewNotificationQueue creates a notification queue and starts
// delivering its notifications.
func NewNotificationQueue() *NotificationQueue {
	q := &NotificationQueue{
		queue:     list.New(),
		wake:      make(chan struct{}, 1),
		out:       make(chan JustificationNotification),
		abandoned: make(chan struct{}),
	}
	go q.deliver()
	return q
}

// Send queues the notification for delivery.
func (q *NotificationQueue) Send(notification JustificationNotification) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return fmt.Errorf("%w: %s", ErrQueueClosed, notification)
	}

	q.queue.PushBack(notification)
	q.signal()
	return nil
}

// Close stops accepting notifications. Already queued notifications
// are still delivered before the receive channel is closed.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.signal()
}

// Abandon closes the queue and drops the notifications not delivered yet.
// It is called once nothing receives from the queue anymore, so that
// delivery does not block forever.
func (q *NotificationQueue) Abandon() {
	q.Close()
	q.abandonOnce.Do(func() {
		close(q.abandoned)
	})
}

// Receive returns the channel notifications are delivered on.
func (q *NotificationQueue) Receive() <-chan JustificationNotification {
	return q.out
}

// Len returns the number of notifications waiting for delivery.
func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Len()
}

func (q *NotificationQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *NotificationQueue) popFront() (notification JustificationNotification, ok, closed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.queue.Front()
	if e == nil {
		return notification, false, q.closed
	}
	q.queue.Remove(e)
	return e.Value.(JustificationNotification), true, q.closed
}

func (q *NotificationQueue) deliver() {
	defer close(q.out)

	for {
		notification, ok, closed := q.popFront()
		if !ok {
			if closed {
				return
			}
			select {
			case <-q.wake:
			case <-q.abandoned:
				return
			}
			continue
		}

		select {
		case q.out <- notification:
		case <-q.abandoned:
			return
		}
	}
}
