package parity

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/execx"
)

// Driver shells out to par2 to create and verify recovery files for one
// subrange directory. It composes the command line and interprets the exit
// status; it never parses par2's output. Invocations block with no timeout.
type Driver struct {
	Runner execx.Runner
	Binary string
	// CreateArgs are extra flags for "par2 create", e.g. the block count.
	CreateArgs []string
}

func NewDriver(runner execx.Runner) *Driver {
	return &Driver{
		Runner:     runner,
		Binary:     "par2",
		CreateArgs: []string{"-c625"},
	}
}

// Create builds a fresh recovery set over all volumes present in dir.
func (d *Driver) Create(dir, runID, name string) error {
	volumes, err := listVolumes(dir, runID, name)
	if err != nil {
		return err
	}
	if len(volumes) == 0 {
		return fmt.Errorf("no volumes in %s", dir)
	}

	args := append([]string{"create"}, d.CreateArgs...)
	args = append(args, RecoveryName(runID, name))
	args = append(args, volumes...)

	out, err := d.Runner.Run(dir, d.Binary, args...)
	log.Debug().Str("dir", dir).Str("output", strings.TrimSpace(string(out))).Msg("par2 create")
	if err != nil {
		return fmt.Errorf("par2 create: %w", err)
	}
	return nil
}

// Verify checks the just-created recovery set against the volumes in dir.
func (d *Driver) Verify(dir, runID, name string) error {
	out, err := d.Runner.Run(dir, d.Binary, "verify", RecoveryName(runID, name))
	log.Debug().Str("dir", dir).Str("output", strings.TrimSpace(string(out))).Msg("par2 verify")
	if err != nil {
		return fmt.Errorf("par2 verify: %w", err)
	}
	return nil
}

// listVolumes returns the volume filenames in dir, excluding recovery
// files, in ascending order.
func listVolumes(dir, runID, name string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	prefix := VolumePrefix(runID, name)
	var volumes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) && !strings.HasSuffix(entry.Name(), ".par2") {
			volumes = append(volumes, entry.Name())
		}
	}
	return volumes, nil
}
