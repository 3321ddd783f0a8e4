// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"errors"
	"fmt"
	"sync"

	lrucache "github.com/ChainSafe/aleph-finality/lib/utils/lru-cache"
)

// SessionID identifies a session: a contiguous range of blocks
// governed by one validator set.
type SessionID uint32

// SessionPeriod is the number of blocks in a session.
type SessionPeriod uint32

// SessionOf returns the session the block number belongs to.
func (p SessionPeriod) SessionOf(number uint) SessionID {
	return SessionID(number / uint(p))
}

// FirstBlock returns the number of the first block of the session.
func (p SessionPeriod) FirstBlock(session SessionID) uint {
	return uint(session) * uint(p)
}

// LastBlock returns the number of the last block of the session.
func (p SessionPeriod) LastBlock(session SessionID) uint {
	return (uint(session)+1)*uint(p) - 1
}

// SessionInfo describes the session governing a block.
// Verifier is nil when the validator set of the session is not known yet.
type SessionInfo struct {
	Session   SessionID
	LastBlock uint
	Verifier  Verifier
}

// SessionInfoProvider resolves the session governing a block.
type SessionInfoProvider interface {
	ForBlockNumber(number uint) SessionInfo
}

// AuthorityProvider returns the authorities of a session, in node index
// order. It returns an error wrapping ErrAuthoritiesNotFound if the
// authorities of the session are not known yet.
type AuthorityProvider interface {
	Authorities(session SessionID) ([]AuthorityID, error)
}

const defaultMaxCachedVerifiers = 8

// SessionInfoProviderImpl resolves sessions from the session period and
// builds session verifiers from the authorities known for each session.
// Once a session's verifier is available it stays available: evicted
// verifiers are rebuilt from the persisted authorities.
type SessionInfoProviderImpl struct {
	period      SessionPeriod
	authorities AuthorityProvider

	mu        sync.Mutex
	verifiers *lrucache.LRUCache[SessionID, Verifier]
}

// NewSessionInfoProvider returns a session info provider for the given
// session period and authority provider.
func NewSessionInfoProvider(period SessionPeriod, authorities AuthorityProvider) (
	*SessionInfoProviderImpl, error) {
	if period == 0 {
		return nil, ErrInvalidSessionPeriod
	}

	return &SessionInfoProviderImpl{
		period:      period,
		authorities: authorities,
		verifiers:   lrucache.NewLRUCache[SessionID, Verifier](defaultMaxCachedVerifiers),
	}, nil
}

// ForBlockNumber returns the session info for the block number.
func (p *SessionInfoProviderImpl) ForBlockNumber(number uint) SessionInfo {
	session := p.period.SessionOf(number)
	return SessionInfo{
		Session:   session,
		LastBlock: p.period.LastBlock(session),
		Verifier:  p.verifierFor(session),
	}
}

func (p *SessionInfoProviderImpl) verifierFor(session SessionID) Verifier {
	p.mu.Lock()
	defer p.mu.Unlock()

	verifier, ok := p.verifiers.Get(session)
	if ok {
		return verifier
	}

	authorities, err := p.authorities.Authorities(session)
	if err != nil {
		if !errors.Is(err, ErrAuthoritiesNotFound) {
			logger.Warnf("cannot get authorities for session %d: %s", session, err)
		}
		return nil
	}

	sessionVerifier, err := NewSessionVerifier(authorities)
	if err != nil {
		logger.Warnf("cannot create verifier for session %d: %s", session, err)
		return nil
	}

	evicted, didEvict := p.verifiers.Put(session, sessionVerifier)
	if didEvict {
		logger.Tracef("evicted verifier of session %d from cache", evicted)
	}
	return sessionVerifier
}

func (s SessionInfo) String() string {
	return fmt.Sprintf("session %d (last block %d, verifier available: %t)",
		s.Session, s.LastBlock, s.Verifier != nil)
}
