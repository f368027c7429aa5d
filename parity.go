package main

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/catalog"
	"github.com/gentoomaniac/coldstore/pkg/config"
	"github.com/gentoomaniac/coldstore/pkg/execx"
	"github.com/gentoomaniac/coldstore/pkg/parity"
	"github.com/gentoomaniac/coldstore/pkg/prompt"
)

type Parity struct {
	RunID    string `arg:"" name:"run-id" help:"Run identifier in YYMMDD format."`
	NoPrompt bool   `help:"Process all archive sets without asking."`
}

var runIDFormat = regexp.MustCompile(`^\d{6}$`)

func (p *Parity) Run(cfg *config.Config) error {
	if !runIDFormat.MatchString(p.RunID) {
		return fmt.Errorf("run id %q is not in YYMMDD format", p.RunID)
	}

	sets := make([]parity.Set, 0, len(cfg.ArchiveSets))
	for _, set := range cfg.ArchiveSets {
		sets = append(sets, parity.Set{
			Root: filepath.Join(cfg.DestDir, set.Dest),
			Name: set.Name,
		})
	}

	var selector prompt.SkipSelector = prompt.Console{}
	if p.NoPrompt || !cfg.AllowSkip {
		selector = prompt.Fixed{}
	}

	controller := &parity.Controller{
		RunID:     p.RunID,
		Sets:      sets,
		Selector:  selector,
		Processor: &parity.Processor{RunID: p.RunID, Driver: parity.NewDriver(execx.System{})},
		Catalog:   openCatalog(cfg),
	}
	defer closeCatalog(controller.Catalog)

	return controller.Run()
}

// openCatalog returns the run catalog, or nil when it is disabled or
// unavailable. The catalog never gates a run.
func openCatalog(cfg *config.Config) catalog.Catalog {
	if cfg.CatalogPath == "" {
		return nil
	}
	sqlite, err := catalog.NewSQLite(cfg.CatalogPath)
	if err == nil {
		err = sqlite.Init()
	}
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.CatalogPath).Msg("run catalog unavailable")
		return nil
	}
	return sqlite
}

func closeCatalog(cat catalog.Catalog) {
	if cat == nil {
		return
	}
	if err := cat.Close(); err != nil {
		log.Warn().Err(err).Msg("could not close run catalog")
	}
}
