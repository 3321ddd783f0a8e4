// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/gossamer/lib/common"
)

const defaultBufferSize = 128

// GetFinalisedNotifierChannel function to retrieve a finalised block notifier channel
func (bs *BlockState) GetFinalisedNotifierChannel() chan *types.FinalisationInfo {
	bs.finalisedLock.Lock()
	defer bs.finalisedLock.Unlock()

	ch := make(chan *types.FinalisationInfo, defaultBufferSize)
	bs.finalised[ch] = struct{}{}

	return ch
}

// FreeFinalisedNotifierChannel to free finalised notifier channel
func (bs *BlockState) FreeFinalisedNotifierChannel(ch chan *types.FinalisationInfo) {
	bs.finalisedLock.Lock()
	defer bs.finalisedLock.Unlock()

	delete(bs.finalised, ch)
}

// notifyFinalized sends the finalised block to every subscriber without
// blocking. Subscribers with a full channel miss the notification.
func (bs *BlockState) notifyFinalized(hash common.Hash, number uint) {
	bs.finalisedLock.RLock()
	defer bs.finalisedLock.RUnlock()

	if len(bs.finalised) == 0 {
		return
	}

	logger.Debug("notifying finalised block channels...")
	info := &types.FinalisationInfo{
		Hash:   hash,
		Number: number,
	}

	for ch := range bs.finalised {
		select {
		case ch <- info:
		default:
			logger.Warnf("finalised notifier channel full, dropping notification for block #%d", number)
		}
	}
}
