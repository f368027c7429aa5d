package main

import (
	"github.com/gentoomaniac/coldstore/pkg/config"
	"github.com/gentoomaniac/coldstore/pkg/execx"
)

type Sync struct{}

func (s *Sync) Run(cfg *config.Config) error {
	return syncGitDirs(execx.System{}, cfg)
}
