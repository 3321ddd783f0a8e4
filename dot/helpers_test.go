// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"testing"

	"github.com/ChainSafe/aleph-finality/dot/config"
	"github.com/ChainSafe/aleph-finality/dot/state"
	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/aleph-finality/lib/justification"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
	"github.com/stretchr/testify/require"
)

const testSessionPeriod = 10

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Global.BasePath = t.TempDir()
	cfg.Global.InMemory = true
	cfg.Global.LogLvl = "error"
	cfg.Justification.SessionPeriod = testSessionPeriod
	return cfg
}

// addTestHeaders adds a chain of depth headers on top of the best block.
func addTestHeaders(t *testing.T, bs *state.BlockState, depth int) []*types.Header {
	t.Helper()

	best, err := bs.BestBlockNumber()
	require.NoError(t, err)
	parent, err := bs.GetHashByNumber(best)
	require.NoError(t, err)

	headers := make([]*types.Header, depth)
	for i := range headers {
		number := best + uint(i) + 1
		header := types.NewHeader(parent, common.Hash{byte(number)}, common.Hash{}, number)
		require.NoError(t, bs.AddHeader(header))
		headers[i] = header
		parent = header.Hash()
	}
	return headers
}

type testAuthorities []*ed25519.Keypair

func newTestAuthorities(t *testing.T, n int) testAuthorities {
	t.Helper()

	authorities := make(testAuthorities, n)
	for i := range authorities {
		keypair, err := ed25519.GenerateKeypair()
		require.NoError(t, err)
		authorities[i] = keypair
	}
	return authorities
}

func (a testAuthorities) ids() []justification.AuthorityID {
	ids := make([]justification.AuthorityID, len(a))
	for i, keypair := range a {
		copy(ids[i][:], keypair.Public().Encode())
	}
	return ids
}

// encodedJustification returns the encoding of a justification of the
// hash signed by all the authorities.
func (a testAuthorities) encodedJustification(t *testing.T, hash common.Hash) []byte {
	t.Helper()

	j := justification.NewJustification(justification.NodeCount(len(a)))
	for i, keypair := range a {
		raw, err := keypair.Sign(hash[:])
		require.NoError(t, err)
		var signature justification.Signature
		copy(signature[:], raw)
		require.NoError(t, j.AddSignature(justification.NodeIndex(i), signature))
	}

	encoded, err := j.Encode()
	require.NoError(t, err)
	return encoded
}
