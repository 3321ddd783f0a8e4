// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "state"))

// SetLogLevel sets the log level of the package logger.
func SetLogLevel(level log.Level) {
	logger.PatchLevel(level)
}

var blockPrefix = "block"

var (
	headerPrefix        = []byte("hdr") // headerPrefix + hash -> header
	headerHashPrefix    = []byte("hsh") // headerHashPrefix + encodedBlockNum -> hash
	justificationPrefix = []byte("jcp") // justificationPrefix + hash -> justification
	bestBlockNumberKey  = []byte("best")
	finalisedNumberKey  = []byte("fin")
)

// BlockState stores block headers, the canonical chain and the finalised
// block with its justification.
type BlockState struct {
	sync.RWMutex
	db chaindb.Database

	finalised     map[chan *types.FinalisationInfo]struct{}
	finalisedLock sync.RWMutex
}

// NewBlockStateFromGenesis initialises the block state with the genesis
// header, which is both the best and the finalised block.
func NewBlockStateFromGenesis(db chaindb.Database, genesis *types.Header) (*BlockState, error) {
	bs := newBlockState(db)

	batch := bs.db.NewBatch()
	enc, err := genesis.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding genesis header: %w", err)
	}

	hash := genesis.Hash()
	for _, kv := range []struct{ key, value []byte }{
		{headerKey(hash), enc},
		{headerHashKey(genesis.Number), hash.ToBytes()},
		{bestBlockNumberKey, encodeBlockNumber(genesis.Number)},
		{finalisedNumberKey, encodeBlockNumber(genesis.Number)},
	} {
		if err := batch.Put(kv.key, kv.value); err != nil {
			return nil, err
		}
	}

	if err := batch.Flush(); err != nil {
		return nil, fmt.Errorf("writing genesis block: %w", err)
	}

	return bs, nil
}

// NewBlockState loads a block state previously initialised with
// NewBlockStateFromGenesis.
func NewBlockState(db chaindb.Database) (*BlockState, error) {
	bs := newBlockState(db)

	has, err := bs.db.Has(finalisedNumberKey)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotInitialised
	}

	return bs, nil
}

func newBlockState(db chaindb.Database) *BlockState {
	return &BlockState{
		db:        chaindb.NewTable(db, blockPrefix),
		finalised: make(map[chan *types.FinalisationInfo]struct{}),
	}
}

// IsInitialised returns true if the database holds an initialised block state.
func IsInitialised(db chaindb.Database) (bool, error) {
	return chaindb.NewTable(db, blockPrefix).Has(finalisedNumberKey)
}

// encodeBlockNumber encodes a block number as big endian uint64
func encodeBlockNumber(number uint) []byte {
	enc := make([]byte, 8) // encoding results in 8 bytes
	binary.BigEndian.PutUint64(enc, uint64(number))
	return enc
}

// headerKey = headerPrefix + hash
func headerKey(hash common.Hash) []byte {
	return append(append([]byte{}, headerPrefix...), hash.ToBytes()...)
}

// headerHashKey = headerHashPrefix + num (uint64 big endian)
func headerHashKey(number uint) []byte {
	return append(append([]byte{}, headerHashPrefix...), encodeBlockNumber(number)...)
}

// justificationKey = justificationPrefix + hash
func justificationKey(hash common.Hash) []byte {
	return append(append([]byte{}, justificationPrefix...), hash.ToBytes()...)
}

// HasHeader returns true if the header of the block is known.
func (bs *BlockState) HasHeader(hash common.Hash) (bool, error) {
	return bs.db.Has(headerKey(hash))
}

// GetHeader returns the header of the block with the given hash.
func (bs *BlockState) GetHeader(hash common.Hash) (*types.Header, error) {
	data, err := bs.db.Get(headerKey(hash))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, hash)
	} else if err != nil {
		return nil, err
	}

	header := new(types.Header)
	err = scale.Unmarshal(data, header)
	if err != nil {
		return nil, fmt.Errorf("decoding header %s: %w", hash, err)
	}

	header.Hash()
	return header, nil
}

// AddHeader stores the header and makes it the canonical block at its
// number. The best block number is raised if the header is above it.
func (bs *BlockState) AddHeader(header *types.Header) error {
	bs.Lock()
	defer bs.Unlock()

	finalised, err := bs.finalisedNumber()
	if err != nil {
		return err
	}
	if header.Number <= finalised {
		return fmt.Errorf("%w: #%d is not above #%d", ErrBelowFinalised, header.Number, finalised)
	}

	hasParent, err := bs.HasHeader(header.ParentHash)
	if err != nil {
		return fmt.Errorf("checking parent %s: %w", header.ParentHash, err)
	}
	if !hasParent {
		return fmt.Errorf("%w: %s", ErrUnknownParent, header.ParentHash)
	}

	enc, err := header.Encode()
	if err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}

	best, err := bs.bestBlockNumber()
	if err != nil {
		return err
	}

	hash := header.Hash()
	batch := bs.db.NewBatch()
	if err = batch.Put(headerKey(hash), enc); err != nil {
		return err
	}
	if err = batch.Put(headerHashKey(header.Number), hash.ToBytes()); err != nil {
		return err
	}
	if header.Number > best {
		if err = batch.Put(bestBlockNumberKey, encodeBlockNumber(header.Number)); err != nil {
			return err
		}
	}

	if err = batch.Flush(); err != nil {
		return fmt.Errorf("writing header #%d (%s): %w", header.Number, hash, err)
	}

	logger.Tracef("added header #%d (%s)", header.Number, hash)
	return nil
}

// GetHashByNumber returns the hash of the canonical block at the given number.
func (bs *BlockState) GetHashByNumber(number uint) (common.Hash, error) {
	bs.RLock()
	defer bs.RUnlock()
	return bs.getHashByNumber(number)
}

func (bs *BlockState) getHashByNumber(number uint) (common.Hash, error) {
	hash, err := bs.db.Get(headerHashKey(number))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return common.Hash{}, fmt.Errorf("%w: #%d", ErrBlockNotFound, number)
	} else if err != nil {
		return common.Hash{}, err
	}

	return common.NewHash(hash), nil
}

// BestBlockNumber returns the number of the highest known block.
func (bs *BlockState) BestBlockNumber() (uint, error) {
	bs.RLock()
	defer bs.RUnlock()
	return bs.bestBlockNumber()
}

func (bs *BlockState) bestBlockNumber() (uint, error) {
	return bs.loadNumber(bestBlockNumberKey)
}

// FinalisedNumber returns the number of the highest finalised block.
func (bs *BlockState) FinalisedNumber() (uint, error) {
	bs.RLock()
	defer bs.RUnlock()
	return bs.finalisedNumber()
}

func (bs *BlockState) finalisedNumber() (uint, error) {
	return bs.loadNumber(finalisedNumberKey)
}

func (bs *BlockState) loadNumber(key []byte) (uint, error) {
	enc, err := bs.db.Get(key)
	if err != nil {
		return 0, fmt.Errorf("getting %s block number: %w", key, err)
	}
	if len(enc) != 8 {
		return 0, fmt.Errorf("invalid %s block number encoding: %d bytes", key, len(enc))
	}
	return uint(binary.BigEndian.Uint64(enc)), nil
}
