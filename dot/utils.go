// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/aleph-finality/dot/config"
	"github.com/ChainSafe/aleph-finality/dot/state"
	"github.com/ChainSafe/aleph-finality/dot/sync"
	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/ChainSafe/aleph-finality/internal/metrics"
	"github.com/ChainSafe/aleph-finality/lib/justification"
)

// setupLogger sets the global log level then the log level of
// each package which has one configured.
func setupLogger(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("cannot parse global log level: %w", err)
	}
	log.Patch(
		log.SetLevel(level),
		log.SetCallerFile(cfg.Global.LogCaller),
		log.SetCallerLine(cfg.Global.LogCaller),
	)

	packageLevels := []struct {
		name     string
		level    string
		setLevel func(log.Level)
	}{
		{name: "justification", level: cfg.Log.JustificationLvl, setLevel: justification.SetLogLevel},
		{name: "state", level: cfg.Log.StateLvl, setLevel: state.SetLogLevel},
		{name: "sync", level: cfg.Log.SyncLvl, setLevel: sync.SetLogLevel},
		{name: "metrics", level: cfg.Log.MetricsLvl, setLevel: metrics.SetLogLevel},
	}

	for _, pkg := range packageLevels {
		if pkg.level == "" {
			continue
		}
		level, err := log.ParseLevel(pkg.level)
		if err != nil {
			return fmt.Errorf("cannot parse %s log level: %w", pkg.name, err)
		}
		pkg.setLevel(level)
	}
	return nil
}
