// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import "errors"

var (
	// ErrDecode is returned when bytes cannot be decoded as a justification
	// of any known version.
	ErrDecode = errors.New("cannot decode justification")
	// ErrNodeIndexOutOfRange is returned when adding a signature for a node
	// index outside of the signature set.
	ErrNodeIndexOutOfRange = errors.New("node index out of range")
	// ErrNotificationStreamClosed is the panic value of the handler when one
	// of its inbound notification streams is closed.
	ErrNotificationStreamClosed = errors.New("justification notification stream closed")
	// ErrAuthoritiesNotFound is returned by an AuthorityProvider when the
	// authorities of a session are not known yet.
	ErrAuthoritiesNotFound = errors.New("authorities not found")
	// ErrNoAuthorities is returned when creating a verifier without authorities.
	ErrNoAuthorities = errors.New("no authorities")
	// ErrInvalidSessionPeriod is returned for a zero session period.
	ErrInvalidSessionPeriod = errors.New("session period must be greater than zero")
	// ErrUnknownRequestPolicy is returned when parsing an unknown policy name.
	ErrUnknownRequestPolicy = errors.New("unknown request policy")
)
