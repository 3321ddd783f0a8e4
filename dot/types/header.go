// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"golang.org/x/crypto/blake2b"
)

// Header is a block header as known to the finality gadget.
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         uint        `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	hash           common.Hash
}

// NewHeader creates a new block header and sets its hash field
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash, number uint) *Header {
	header := &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
	}
	header.Hash()
	return header
}

// Encode returns the SCALE encoding of a header
func (bh *Header) Encode() ([]byte, error) {
	return scale.Marshal(*bh)
}

// Hash returns the blake2b-256 hash of the SCALE encoded header.
// The hash is cached after the first call.
// If encoding the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	if bh.hash != (common.Hash{}) {
		return bh.hash
	}

	encoded, err := bh.Encode()
	if err != nil {
		panic(fmt.Sprintf("encoding header: %s", err))
	}

	bh.hash = common.Hash(blake2b.Sum256(encoded))
	return bh.hash
}

// DeepCopy returns a deep copy of the header
func (bh *Header) DeepCopy() *Header {
	cp := *bh
	return &cp
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Hash())
}
