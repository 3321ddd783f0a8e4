// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"errors"
)

var (
	errNilNetwork    = errors.New("cannot have nil Network")
	errNilBlockState = errors.New("cannot have nil BlockState")

	// ErrStopTimeout is returned when the requester does not stop in time.
	ErrStopTimeout = errors.New("stop timeout")
	// ErrAlreadyStarted is returned when starting a started requester.
	ErrAlreadyStarted = errors.New("justification requester already started")
)
