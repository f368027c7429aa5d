package main

import (
	"github.com/alecthomas/kong"
	"github.com/gentoomaniac/logging"
	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/config"
)

var (
	version = "unset"
	commit  = "unset"
	binName = "coldstore"
	builtBy = "manual"
	date    = "unset"
)

var cli struct {
	logging.LoggingConfig

	ConfigFile string `short:"c" help:"Path to the config file." type:"path"`

	Parity  Parity  `cmd:"" help:"Sort archive volumes into their groups and build recovery files."`
	Archive Archive `cmd:"" help:"Create encrypted archives for the configured archive sets."`
	Sync    Sync    `cmd:"" help:"Commit pending changes in the configured git directories."`

	Version kong.VersionFlag `short:"v" help:"Display version."`
}

func main() {
	ctx := kong.Parse(&cli, kong.UsageOnError(), kong.Vars{
		"version": version,
		"commit":  commit,
		"binName": binName,
		"builtBy": builtBy,
		"date":    date,
	})
	logging.Setup(&cli.LoggingConfig)

	cfg, err := config.Load(cli.ConfigFile)
	if err != nil {
		log.Error().Err(err).Msg("could not load config")
		ctx.Exit(1)
	}

	switch ctx.Command() {
	case "parity <run-id>":
		err = cli.Parity.Run(cfg)
	case "archive":
		err = cli.Archive.Run(cfg)
	case "sync":
		err = cli.Sync.Run(cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		ctx.Exit(1)
	}
	ctx.Exit(0)
}
