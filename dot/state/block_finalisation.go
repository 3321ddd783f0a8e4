// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
)

// FinalizeBlock finalises the canonical block at the given number and
// stores its justification. Finalising a block at or below the finalised
// height does nothing and returns nil, so finalisation never goes backwards.
func (bs *BlockState) FinalizeBlock(hash common.Hash, number uint, justification []byte) error {
	bs.Lock()
	defer bs.Unlock()

	finalised, err := bs.finalisedNumber()
	if err != nil {
		return err
	}

	if number <= finalised {
		logger.Debugf("block #%d (%s) is not above finalised block #%d, ignoring",
			number, hash, finalised)
		return nil
	}

	canonical, err := bs.getHashByNumber(number)
	if err != nil {
		return fmt.Errorf("cannot finalise block %s: %w", hash, err)
	}
	if canonical != hash {
		return fmt.Errorf("%w: block #%d is %s, not %s",
			ErrHashMismatch, number, canonical, hash)
	}

	batch := bs.db.NewBatch()
	if err = batch.Put(justificationKey(hash), justification); err != nil {
		return err
	}
	if err = batch.Put(finalisedNumberKey, encodeBlockNumber(number)); err != nil {
		return err
	}
	if err = batch.Flush(); err != nil {
		return fmt.Errorf("failed to set finalised block #%d (%s): %w", number, hash, err)
	}

	logger.Infof("🔨 finalised block #%d (%s)", number, hash)
	bs.notifyFinalized(hash, number)
	return nil
}

// GetHighestFinalisedHash returns the hash of the highest finalised block.
func (bs *BlockState) GetHighestFinalisedHash() (common.Hash, error) {
	bs.RLock()
	defer bs.RUnlock()

	finalised, err := bs.finalisedNumber()
	if err != nil {
		return common.Hash{}, err
	}
	return bs.getHashByNumber(finalised)
}

// NumberIsFinalised checks if a block number is finalised or not
func (bs *BlockState) NumberIsFinalised(number uint) (bool, error) {
	finalised, err := bs.FinalisedNumber()
	if err != nil {
		return false, err
	}
	return number <= finalised, nil
}

// HasJustification returns true if a justification is stored for the block.
func (bs *BlockState) HasJustification(hash common.Hash) (bool, error) {
	return bs.db.Has(justificationKey(hash))
}

// GetJustification returns the justification the block was finalised with.
func (bs *BlockState) GetJustification(hash common.Hash) ([]byte, error) {
	justification, err := bs.db.Get(justificationKey(hash))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: no justification for %s", ErrBlockNotFound, hash)
	}
	return justification, err
}
