// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/aleph-finality/lib/justification"
	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

var (
	authorityPrefix   = "authority"
	authoritiesPrefix = []byte("auth")
)

// AuthorityState stores the authorities of each session.
type AuthorityState struct {
	db chaindb.Database
}

// NewAuthorityState returns a new AuthorityState
func NewAuthorityState(db chaindb.Database) *AuthorityState {
	return &AuthorityState{
		db: chaindb.NewTable(db, authorityPrefix),
	}
}

func authoritiesKey(session justification.SessionID) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(session))
	return append(append([]byte{}, authoritiesPrefix...), buf...)
}

// SetAuthorities sets the authorities of the session, in node index order.
func (s *AuthorityState) SetAuthorities(session justification.SessionID,
	authorities []justification.AuthorityID) error {
	if len(authorities) == 0 {
		return fmt.Errorf("session %d: %w", session, justification.ErrNoAuthorities)
	}

	enc, err := scale.Marshal(authorities)
	if err != nil {
		return fmt.Errorf("encoding authorities: %w", err)
	}

	return s.db.Put(authoritiesKey(session), enc)
}

// Authorities returns the authorities of the session. The error wraps
// justification.ErrAuthoritiesNotFound if they were never set.
func (s *AuthorityState) Authorities(session justification.SessionID) (
	[]justification.AuthorityID, error) {
	enc, err := s.db.Get(authoritiesKey(session))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: session %d", justification.ErrAuthoritiesNotFound, session)
	} else if err != nil {
		return nil, err
	}

	var authorities []justification.AuthorityID
	err = scale.Unmarshal(enc, &authorities)
	if err != nil {
		return nil, fmt.Errorf("decoding authorities of session %d: %w", session, err)
	}

	return authorities, nil
}
