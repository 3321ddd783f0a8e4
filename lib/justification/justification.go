// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// SignatureLength is the length in bytes of an authority signature.
const SignatureLength = 64

// NodeCount is the number of nodes (validators) in a session.
type NodeCount uint

// NodeIndex is the position of a node in the session's authority list.
type NodeIndex uint64

// Version is the wire version of an encoded justification.
type Version uint8

const (
	// V1 is the legacy encoding, where each signature carries the
	// index of the node that produced it.
	V1 Version = iota + 1
	// V2 is the current encoding, without the redundant index.
	V2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}

// Signature is an authority signature over a block hash.
type Signature [SignatureLength]byte

// VersionedJustification is a justification together with the wire version
// it was decoded from. It is implemented by LegacyJustification (V1) and
// Justification (V2) only.
type VersionedJustification interface {
	Version() Version
	SignatureSetSize() NodeCount
	// Upgrade returns the justification in its current (V2) form.
	Upgrade() Justification
	Encode() ([]byte, error)
	isVersionedJustification()
}

// Justification is the current (V2) form of a finality justification:
// one optional signature per session authority, indexed by position.
type Justification struct {
	Signatures []*Signature
}

// NewJustification returns a justification with an empty signature set
// sized for the given number of nodes.
func NewJustification(size NodeCount) Justification {
	return Justification{Signatures: make([]*Signature, size)}
}

// AddSignature sets the signature of the node at the given index.
// It returns an error if the index is outside of the signature set.
func (j Justification) AddSignature(index NodeIndex, signature Signature) error {
	if uint64(index) >= uint64(len(j.Signatures)) {
		return fmt.Errorf("%w: index %d for set of size %d",
			ErrNodeIndexOutOfRange, index, len(j.Signatures))
	}
	j.Signatures[index] = &signature
	return nil
}

// Version returns V2.
func (Justification) Version() Version { return V2 }

// SignatureSetSize returns the number of slots of the signature set.
func (j Justification) SignatureSetSize() NodeCount { return NodeCount(len(j.Signatures)) }

// Upgrade returns the justification itself.
func (j Justification) Upgrade() Justification { return j }

// Encode returns the V2 SCALE encoding of the justification.
func (j Justification) Encode() ([]byte, error) {
	return scale.Marshal(j)
}

// Equal returns true if both justifications hold the same signatures
// in the same slots.
func (j Justification) Equal(other Justification) bool {
	if len(j.Signatures) != len(other.Signatures) {
		return false
	}
	for i := range j.Signatures {
		if !equalSignatures(j.Signatures[i], other.Signatures[i]) {
			return false
		}
	}
	return true
}

func (Justification) isVersionedJustification() {}

// LegacySignature is a V1 signature slot, carrying the index of the
// node it belongs to alongside the signature.
type LegacySignature struct {
	Index     uint64
	Signature Signature
}

// LegacyJustification is the legacy (V1) form of a finality justification.
// It is kept so justifications produced by older nodes stay decodable.
type LegacyJustification struct {
	Signatures []*LegacySignature
}

// NewLegacyJustification returns a legacy justification with an empty
// signature set sized for the given number of nodes.
func NewLegacyJustification(size NodeCount) LegacyJustification {
	return LegacyJustification{Signatures: make([]*LegacySignature, size)}
}

// AddSignature sets the signature of the node at the given index.
func (j LegacyJustification) AddSignature(index NodeIndex, signature Signature) error {
	if uint64(index) >= uint64(len(j.Signatures)) {
		return fmt.Errorf("%w: index %d for set of size %d",
			ErrNodeIndexOutOfRange, index, len(j.Signatures))
	}
	j.Signatures[index] = &LegacySignature{Index: uint64(index), Signature: signature}
	return nil
}

// Version returns V1.
func (LegacyJustification) Version() Version { return V1 }

// SignatureSetSize returns the number of slots of the signature set.
func (j LegacyJustification) SignatureSetSize() NodeCount {
	return NodeCount(len(j.Signatures))
}

// Upgrade converts the legacy justification to its V2 form,
// dropping the per signature index.
func (j LegacyJustification) Upgrade() Justification {
	upgraded := NewJustification(j.SignatureSetSize())
	for i, legacy := range j.Signatures {
		if legacy == nil {
			continue
		}
		signature := legacy.Signature
		upgraded.Signatures[i] = &signature
	}
	return upgraded
}

// Encode returns the V1 SCALE encoding of the justification.
func (j LegacyJustification) Encode() ([]byte, error) {
	return scale.Marshal(j)
}

// Equal returns true if both legacy justifications are identical,
// including the per signature indexes.
func (j LegacyJustification) Equal(other LegacyJustification) bool {
	if len(j.Signatures) != len(other.Signatures) {
		return false
	}
	for i := range j.Signatures {
		a, b := j.Signatures[i], other.Signatures[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

func (LegacyJustification) isVersionedJustification() {}

func equalSignatures(a, b *Signature) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
