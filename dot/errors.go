// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

var (
	// ErrNilNetwork is returned when creating a node without network.
	ErrNilNetwork = errors.New("network is nil")
	// ErrNodeStarted is returned when starting a node twice.
	ErrNodeStarted = errors.New("node already started")
	// ErrNodeStopped is returned when starting or stopping a stopped node.
	ErrNodeStopped = errors.New("node already stopped")

	errHandlerStopTimeout = errors.New("timeout waiting for justification handler to stop")
)
