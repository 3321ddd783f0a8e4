// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"context"

	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/gossamer/lib/common"
)

// BlockState is the interface for the block state
type BlockState interface {
	GetFinalisedNotifierChannel() chan *types.FinalisationInfo
	FreeFinalisedNotifierChannel(ch chan *types.FinalisationInfo)
}

// Network is the interface for the network
type Network interface {
	// SendJustificationRequest asks peers for the justification of a block.
	// Answers are expected on the import justification stream.
	SendJustificationRequest(ctx context.Context, hash common.Hash, number uint) error
}
