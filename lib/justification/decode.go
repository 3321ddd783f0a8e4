// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Decode decodes an encoded justification of any known wire version.
// The current (V2) layout is tried first. Legacy (V1) layout is tried if
// the bytes are not a canonical V2 encoding, meaning they either fail to
// decode or are not entirely consumed by the V2 layout.
// A signature set without any signature has the same encoding in both
// versions and is returned as V2.
func Decode(encoded []byte) (VersionedJustification, error) {
	current, errV2 := decodeCurrent(encoded)
	if errV2 == nil {
		return current, nil
	}

	legacy, errV1 := decodeLegacy(encoded)
	if errV1 == nil {
		return legacy, nil
	}

	return nil, fmt.Errorf("%w: as %s: %s; as %s: %s",
		ErrDecode, V2, errV2, V1, errV1)
}

// DecodeAndUpgrade decodes an encoded justification of any known wire
// version and returns it in its current form.
func DecodeAndUpgrade(encoded []byte) (Justification, error) {
	decoded, err := Decode(encoded)
	if err != nil {
		return Justification{}, err
	}
	return decoded.Upgrade(), nil
}

func decodeCurrent(encoded []byte) (Justification, error) {
	var justification Justification
	err := decodeExact(encoded, &justification, func() ([]byte, error) {
		return justification.Encode()
	})
	if err != nil {
		return Justification{}, err
	}
	return justification, nil
}

func decodeLegacy(encoded []byte) (LegacyJustification, error) {
	var justification LegacyJustification
	err := decodeExact(encoded, &justification, func() ([]byte, error) {
		return justification.Encode()
	})
	if err != nil {
		return LegacyJustification{}, err
	}
	return justification, nil
}

// decodeExact unmarshals encoded into dst and checks the decoded value
// re-encodes to exactly the same bytes, so trailing or non canonical
// bytes are rejected.
func decodeExact(encoded []byte, dst interface{}, reencode func() ([]byte, error)) error {
	if len(encoded) == 0 {
		return fmt.Errorf("empty input")
	}

	// every slot takes at least one byte, so a set announcing more
	// slots than there are bytes left is rejected before allocating it.
	var setSize *big.Int
	err := scale.Unmarshal(encoded, &setSize)
	if err != nil {
		return fmt.Errorf("decoding signature set size: %w", err)
	}
	if setSize.Cmp(big.NewInt(int64(len(encoded)))) >= 0 {
		return fmt.Errorf("signature set size %s exceeds input length %d", setSize, len(encoded))
	}

	err = scale.Unmarshal(encoded, dst)
	if err != nil {
		return err
	}

	reencoded, err := reencode()
	if err != nil {
		return fmt.Errorf("re-encoding: %w", err)
	}

	if !bytes.Equal(reencoded, encoded) {
		return fmt.Errorf("not a canonical encoding: %d bytes re-encoded for %d bytes of input",
			len(reencoded), len(encoded))
	}
	return nil
}
