package parity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Relocate moves every volume of the subrange that still sits in the
// archive-set root into the subrange directory. A volume that is gone from
// the root was moved by an earlier run and is skipped, so a second pass
// over the same subrange is a no-op. A volume that already exists at the
// target is never overwritten; that collision aborts the relocation.
// Returns the number of files moved.
func Relocate(root string, subrange SubRange, runID, name string) (int, error) {
	moved := 0
	for index := subrange.Start; index <= subrange.End; index++ {
		volume := VolumeName(runID, name, index)
		source := filepath.Join(root, volume)
		if _, err := os.Stat(source); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return moved, err
		}
		target := filepath.Join(root, subrange.Name, volume)
		if _, err := os.Stat(target); err == nil {
			return moved, fmt.Errorf("volume %q already exists in %s", volume, subrange.Name)
		}
		if err := os.Rename(source, target); err != nil {
			return moved, err
		}
		log.Debug().Str("volume", volume).Str("subrange", subrange.Name).Msg("volume relocated")
		moved++
	}
	return moved, nil
}
