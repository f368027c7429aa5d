package parity

import (
	"fmt"
)

// marker is the archive-type tag baked into volume filenames. Recovery
// files are only ever built over full archives.
const marker = "FULL"

// VolumeName builds the filename of one archive volume, e.g.
// "240714 FULL projects.7z.007". Indices above 999 keep their natural
// width, matching how 7z numbers volumes.
func VolumeName(runID, name string, index int) string {
	return fmt.Sprintf("%s %s %s.7z.%03d", runID, marker, name, index)
}

// VolumePrefix is the prefix shared by every volume of one archive set in
// one run. Anything under the set root still carrying it after processing
// was claimed by no subrange.
func VolumePrefix(runID, name string) string {
	return fmt.Sprintf("%s %s %s.7z.", runID, marker, name)
}

// RecoveryName is the filename of the recovery set index built over one
// subrange's volumes.
func RecoveryName(runID, name string) string {
	return fmt.Sprintf("%s %s %s.7z.par2", runID, marker, name)
}
