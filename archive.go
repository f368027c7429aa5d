package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/archive"
	"github.com/gentoomaniac/coldstore/pkg/config"
	"github.com/gentoomaniac/coldstore/pkg/execx"
	"github.com/gentoomaniac/coldstore/pkg/fsx"
	"github.com/gentoomaniac/coldstore/pkg/timer"
	"github.com/gentoomaniac/coldstore/pkg/vcs"
)

type Archive struct {
	Type    string `help:"Archive type marker." enum:"FULL,INCR" default:"FULL"`
	SkipGit bool   `help:"Skip the git synchronization pass."`
}

func (a *Archive) Run(cfg *config.Config) error {
	password, ok := cfg.Password()
	if !ok {
		return fmt.Errorf("environment variable %s is not set", cfg.PasswordEnv)
	}

	runner := execx.System{}

	if !a.SkipGit {
		if err := syncGitDirs(runner, cfg); err != nil {
			return err
		}
	}

	archiver := archive.New(runner, cfg.SevenZip.CompressionLevel, cfg.SevenZip.VolumeSize)
	start := time.Now()
	runID := start.Format("060102")

	for _, set := range cfg.ArchiveSets {
		destDir := filepath.Join(cfg.DestDir, set.Dest)
		if err := fsx.EnsureDir(destDir); err != nil {
			return err
		}

		destPath := filepath.Join(destDir, archive.Name(runID, a.Type, set.Name))
		source := filepath.Join(cfg.BaseDir, set.Source)
		log.Info().Str("set", set.Name).Str("source", source).Msg("archiving")

		if err := archiver.Create(destPath, source, password, set.Exclude); err != nil {
			return fmt.Errorf("archive failed for %s: %w", set.Name, err)
		}
		if err := archiver.Test(destPath, password); err != nil {
			return fmt.Errorf("archive test failed for %s: %w", set.Name, err)
		}

		if size, err := fsx.DirSize(destDir); err == nil {
			log.Info().Str("set", set.Name).Int64("dest_bytes", size).Msg("archive written")
		}
	}

	log.Info().Str("duration", timer.Elapsed(start)).Msg("archive run finished")
	return nil
}

func syncGitDirs(runner execx.Runner, cfg *config.Config) error {
	for _, dir := range cfg.GitDirs {
		if err := vcs.Commit(runner, filepath.Join(cfg.BaseDir, dir)); err != nil {
			return fmt.Errorf("git sync failed for %s: %w", dir, err)
		}
	}
	return nil
}
