// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger. Options only override
// the settings they set, so they can be used to patch a logger tree.
type Option func(s *settings)

// SetLevel sets the minimum level logged. It defaults to Info.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetFormat sets the line format. It defaults to FormatConsole.
func SetFormat(format Format) Option {
	return func(s *settings) {
		s.format = &format
	}
}

// SetWriter sets the destination of log lines. It defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// SetCallerFile shows or hides the caller file name. Hidden by default.
func SetCallerFile(enabled bool) Option {
	return setCaller(callerFile, enabled)
}

// SetCallerLine shows or hides the caller line number. Hidden by default.
func SetCallerLine(enabled bool) Option {
	return setCaller(callerLine, enabled)
}

// SetCallerFunc shows or hides the caller function name. Hidden by default.
func SetCallerFunc(enabled bool) Option {
	return setCaller(callerFunc, enabled)
}

func setCaller(field callerField, enabled bool) Option {
	return func(s *settings) {
		s.caller.set(field, enabled)
	}
}

// AddContext appends a key value pair shown on every line, such as the
// package name. Values of an existing key are appended to it.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		s.context = append(s.context, contextKeyValues{key: key, values: []string{value}})
	}
}
