// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import "github.com/ChainSafe/gossamer/lib/common"

// BlockState is the read only view of the chain the handler needs.
type BlockState interface {
	FinalisedNumber() (uint, error)
	BestBlockNumber() (uint, error)
	GetHashByNumber(number uint) (common.Hash, error)
}

// BlockFinalizer commits blocks as finalized. Finalizing a block at or
// below the finalized height must be a no-op returning nil.
type BlockFinalizer interface {
	FinalizeBlock(hash common.Hash, number uint, justification []byte) error
}

// BlockRequester asks peers for the justification of a block.
// Requests are fire and forget: answers come back through the import stream.
type BlockRequester interface {
	RequestJustification(hash common.Hash, number uint)
	ClearJustificationRequests()
}
