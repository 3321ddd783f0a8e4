// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/aleph-finality/lib/utils"
	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/stretchr/testify/require"
)

var testGenesisHeader = types.NewHeader(common.Hash{}, common.Hash{0x01}, common.Hash{0x02}, 0)

func newInMemoryDB(t *testing.T) chaindb.Database {
	t.Helper()

	db, err := utils.SetupDatabase(t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func newTestBlockState(t *testing.T) *BlockState {
	t.Helper()

	bs, err := NewBlockStateFromGenesis(newInMemoryDB(t), testGenesisHeader.DeepCopy())
	require.NoError(t, err)
	return bs
}

// addBlocksToState adds a chain of depth headers on top of the best block
// and returns them in increasing number order.
func addBlocksToState(t *testing.T, bs *BlockState, depth int) []*types.Header {
	t.Helper()

	best, err := bs.BestBlockNumber()
	require.NoError(t, err)
	parent, err := bs.GetHashByNumber(best)
	require.NoError(t, err)

	headers := make([]*types.Header, depth)
	for i := range headers {
		number := best + uint(i) + 1
		header := types.NewHeader(parent, common.Hash{byte(number)}, common.Hash{}, number)
		err = bs.AddHeader(header)
		require.NoError(t, err)

		headers[i] = header
		parent = header.Hash()
	}
	return headers
}
