package parity

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Set names one archive destination to process.
type Set struct {
	// Root is the absolute path of the archive-set directory.
	Root string
	// Name is the archive-set name used in volume filenames.
	Name string
}

// Result is what processing one archive set produced.
type Result struct {
	SubRanges int
	Moved     int
	Leftovers []string
}

// Processor works through one archive set at a time: sort the volumes into
// their subranges, then build and verify recovery files per subrange.
type Processor struct {
	RunID  string
	Driver *Driver
}

// ProcessSet handles one archive set. par2 failures are logged and do not
// stop the remaining subranges: recovery files are best-effort hardening
// for cold storage, not a gate on the backup itself. A malformed subrange
// name or a filesystem error aborts.
func (p *Processor) ProcessSet(set Set) (*Result, error) {
	log.Info().Str("set", set.Name).Str("path", set.Root).Msg("processing archive set")

	ranges, err := Partition(set.Root)
	if err != nil {
		return nil, err
	}

	result := &Result{SubRanges: len(ranges)}
	for _, subrange := range ranges {
		log.Info().Str("set", set.Name).Str("subrange", subrange.Name).Msg("processing subrange")

		moved, err := Relocate(set.Root, subrange, p.RunID, set.Name)
		if err != nil {
			return nil, err
		}
		result.Moved += moved

		dir := filepath.Join(set.Root, subrange.Name)
		if err := p.Driver.Create(dir, p.RunID, set.Name); err != nil {
			log.Warn().Err(err).Str("subrange", subrange.Name).Msg("recovery file creation failed")
		}
		if err := p.Driver.Verify(dir, p.RunID, set.Name); err != nil {
			log.Warn().Err(err).Str("subrange", subrange.Name).Msg("recovery file verification failed")
		}
	}

	leftovers, err := Leftovers(set.Root, p.RunID, set.Name)
	if err != nil {
		return nil, err
	}
	result.Leftovers = leftovers

	if len(leftovers) > 0 {
		log.Warn().Str("set", set.Name).Strs("files", leftovers).Msg("volumes claimed by no subrange")
	} else {
		log.Info().Str("set", set.Name).Int("moved", result.Moved).Msg("all volumes processed")
	}
	return result, nil
}

// Leftovers lists the files in the set root that still match the run's
// volume naming pattern after all subranges were processed. A non-empty
// list means a subrange gap or a volume index outside every declared
// interval.
func Leftovers(root, runID, name string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	prefix := VolumePrefix(runID, name)
	var leftovers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			leftovers = append(leftovers, entry.Name())
		}
	}
	return leftovers, nil
}
