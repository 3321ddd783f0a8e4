// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/aleph-finality/dot/config"
	"github.com/ChainSafe/aleph-finality/dot/state"
	"github.com/ChainSafe/aleph-finality/lib/justification"
	"github.com/ChainSafe/aleph-finality/lib/utils"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/urfave/cli"
)

var errMissingArgument = errors.New("missing argument")

var decodeCommand = cli.Command{
	Action:    decodeAction,
	Name:      "decode",
	Usage:     "Decode a hex encoded justification",
	ArgsUsage: "<hex>",
	Description: "The decode command prints the version and signature set of a justification.\n" +
		"\tUsage: aleph-finality decode 0x0c01...",
}

var configCommand = cli.Command{
	Action: configAction,
	Name:   "config",
	Usage:  "Print the default configuration",
	Flags: []cli.Flag{
		OutputFlag,
	},
	Description: "The config command prints the default TOML configuration, or writes it to --output.\n" +
		"\tUsage: aleph-finality config --output config.toml",
}

var statusCommand = cli.Command{
	Action: statusAction,
	Name:   "status",
	Usage:  "Print the finalized and best blocks of a node database",
	Flags: []cli.Flag{
		ConfigFlag,
		BasePathFlag,
	},
	Description: "The status command opens the node database and prints its finality state.\n" +
		"\tUsage: aleph-finality status --config config.toml",
}

func decodeAction(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return fmt.Errorf("%w: hex encoded justification", errMissingArgument)
	}
	if !strings.HasPrefix(arg, "0x") {
		arg = "0x" + arg
	}

	raw, err := common.HexToBytes(arg)
	if err != nil {
		return fmt.Errorf("cannot decode hex: %w", err)
	}

	decoded, err := justification.Decode(raw)
	if err != nil {
		return err
	}

	signed := 0
	for _, signature := range decoded.Upgrade().Signatures {
		if signature != nil {
			signed++
		}
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "version: %s\nsignature set size: %d\nsignatures: %d\n",
		decoded.Version(), decoded.SignatureSetSize(), signed)
	return err
}

func configAction(ctx *cli.Context) error {
	cfg := config.Default()

	if output := ctx.String(OutputFlag.Name); output != "" {
		err := cfg.Export(output)
		if err != nil {
			return err
		}
		logger.Infof("configuration written to %s", output)
		return nil
	}

	raw, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = ctx.App.Writer.Write(raw)
	return err
}

// loadConfig loads the configuration file given, or the default
// configuration, and applies the base path flag.
func loadConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	cfg = config.Default()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if basePath := ctx.String(BasePathFlag.Name); basePath != "" {
		cfg.Global.BasePath = utils.ExpandDir(basePath)
	}
	return cfg, nil
}

func statusAction(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if !utils.PathExists(cfg.Global.BasePath) {
		return fmt.Errorf("%w: %s", state.ErrNotInitialised, cfg.Global.BasePath)
	}

	db, err := utils.SetupDatabase(cfg.Global.BasePath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		closeErr := db.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
	}()

	bs, err := state.NewBlockState(db)
	if err != nil {
		return err
	}

	finalised, err := bs.FinalisedNumber()
	if err != nil {
		return err
	}
	finalisedHash, err := bs.GetHighestFinalisedHash()
	if err != nil {
		return err
	}
	best, err := bs.BestBlockNumber()
	if err != nil {
		return err
	}
	bestHash, err := bs.GetHashByNumber(best)
	if err != nil {
		return err
	}

	period := justification.SessionPeriod(cfg.Justification.SessionPeriod)
	_, err = fmt.Fprintf(ctx.App.Writer,
		"finalized: #%d (%s)\nbest: #%d (%s)\nsession: %d (last block #%d)\n",
		finalised, finalisedHash, best, bestHash,
		period.SessionOf(finalised+1), period.LastBlock(period.SessionOf(finalised+1)))
	return err
}
