// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "aleph-finality"
	app.Usage = "Inspect justifications and the finality state of a node"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		LogFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		level, err := log.ParseLevel(ctx.GlobalString(LogFlag.Name))
		if err != nil {
			return err
		}
		log.PatchLevel(level)
		return nil
	}
	app.Commands = []cli.Command{
		decodeCommand,
		configCommand,
		statusCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}
