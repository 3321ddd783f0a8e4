// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerField is a part of the caller location shown in log lines.
type callerField uint8

const (
	callerFile callerField = 1 << iota
	callerLine
	callerFunc

	allCallerFields = callerFile | callerLine | callerFunc
)

// callerSettings tracks the caller fields explicitly enabled and the ones
// explicitly disabled. A field in neither set is unset and is inherited
// when merging.
type callerSettings struct {
	enabled  callerField
	disabled callerField
}

func (c *callerSettings) set(field callerField, enabled bool) {
	if enabled {
		c.enabled |= field
		c.disabled &^= field
		return
	}
	c.disabled |= field
	c.enabled &^= field
}

func (c *callerSettings) mergeWith(other callerSettings) {
	c.enabled = c.enabled&^other.disabled | other.enabled
	c.disabled = c.disabled&^other.enabled | other.disabled
}

// setDefaults disables every unset field.
func (c *callerSettings) setDefaults() {
	c.disabled |= allCallerFields &^ c.enabled
}

func (c callerSettings) has(field callerField) bool {
	return c.enabled&field != 0
}

func (c callerSettings) any() bool {
	return c.enabled != 0
}

// getCallerString returns the caller of the exported log method,
// skipping the log method itself and the internal log function.
func getCallerString(settings callerSettings) string {
	const depth = 3
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "error"
	}

	fields := make([]string, 0, 3)

	if settings.has(callerFile) {
		fields = append(fields, filepath.Base(file))
	}

	if settings.has(callerLine) {
		fields = append(fields, "L"+strconv.Itoa(line))
	}

	if settings.has(callerFunc) {
		if details := runtime.FuncForPC(pc); details != nil {
			fields = append(fields, strings.TrimLeft(filepath.Ext(details.Name()), "."))
		}
	}

	return strings.Join(fields, ":")
}
