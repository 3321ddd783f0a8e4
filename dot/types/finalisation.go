// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import "github.com/ChainSafe/gossamer/lib/common"

// FinalisationInfo is sent to subscribers each time a block is finalised.
type FinalisationInfo struct {
	Hash   common.Hash
	Number uint
}
