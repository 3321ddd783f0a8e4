// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Format is the format of the logger output.
type Format uint8

const (
	// FormatConsole prints plain text lines, with a coloured level
	// when the writer is a terminal.
	FormatConsole Format = iota
	// FormatPlain prints plain text lines without colours.
	FormatPlain
)

func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatPlain:
		return "plain"
	default:
		return "unknown"
	}
}
