// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
)

// AuthorityID is the ed25519 public key of a session authority.
type AuthorityID [32]byte

// Verifier checks a justification is a valid quorum signature over a
// block hash. Implementations must be safe for concurrent use and free
// of side effects.
type Verifier interface {
	Verify(justification Justification, hash common.Hash) bool
}

// SessionVerifier verifies justifications against the authorities of
// one session.
type SessionVerifier struct {
	authorities []*ed25519.PublicKey
}

// NewSessionVerifier creates a verifier for the authorities given in
// node index order.
func NewSessionVerifier(authorities []AuthorityID) (*SessionVerifier, error) {
	if len(authorities) == 0 {
		return nil, ErrNoAuthorities
	}

	keys := make([]*ed25519.PublicKey, len(authorities))
	for i := range authorities {
		// the public key keeps the slice it is built from
		raw := make([]byte, len(authorities[i]))
		copy(raw, authorities[i][:])
		key, err := ed25519.NewPublicKey(raw)
		if err != nil {
			return nil, fmt.Errorf("authority %d: %w", i, err)
		}
		keys[i] = key
	}

	return &SessionVerifier{authorities: keys}, nil
}

// NodeCount returns the number of authorities of the session.
func (v *SessionVerifier) NodeCount() NodeCount {
	return NodeCount(len(v.authorities))
}

// Verify returns true if the signature set is sized for the session,
// every signature present is valid for the block hash, and there are
// at least Threshold signatures.
func (v *SessionVerifier) Verify(justification Justification, hash common.Hash) bool {
	if justification.SignatureSetSize() != v.NodeCount() {
		logger.Debugf("signature set of size %d does not match session of %d nodes",
			justification.SignatureSetSize(), v.NodeCount())
		return false
	}

	var signed NodeCount
	for i, signature := range justification.Signatures {
		if signature == nil {
			continue
		}

		ok, err := v.authorities[i].Verify(hash[:], signature[:])
		if err != nil || !ok {
			logger.Debugf("invalid signature of node %d for block %s", i, hash)
			return false
		}
		signed++
	}

	return signed >= Threshold(v.NodeCount())
}

// Threshold returns the number of signatures needed for a quorum
// among n nodes: strictly more than two thirds.
func Threshold(n NodeCount) NodeCount {
	return 2*n/3 + 1
}
