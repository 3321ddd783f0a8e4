// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import "errors"

var (
	// ErrBlockNotFound is returned when no block with a given hash or number is known.
	ErrBlockNotFound = errors.New("block not found")
	// ErrHashMismatch is returned when finalising a block which is not the
	// canonical block at its number.
	ErrHashMismatch = errors.New("hash does not match canonical block")
	// ErrBelowFinalised is returned when adding a header at or below the
	// finalised height.
	ErrBelowFinalised = errors.New("block number at or below finalised block")
	// ErrUnknownParent is returned when adding a header whose parent is not known.
	ErrUnknownParent = errors.New("parent block not found")
	// ErrNotInitialised is returned when loading state from a database
	// which was never initialised with a genesis header.
	ErrNotInitialised = errors.New("state not initialised")
)
