package archive

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/execx"
)

// Archiver drives 7z to produce and test encrypted multi-volume archives.
// The password goes to 7z on the command line and is never logged.
type Archiver struct {
	Runner           execx.Runner
	Binary           string
	CompressionLevel string
	VolumeSize       string
}

func New(runner execx.Runner, compressionLevel, volumeSize string) *Archiver {
	return &Archiver{
		Runner:           runner,
		Binary:           "7z",
		CompressionLevel: compressionLevel,
		VolumeSize:       volumeSize,
	}
}

// Name builds the archive filename for one set, e.g.
// "240714 FULL projects.7z". The volume files 7z produces append ".001",
// ".002" and so on.
func Name(runID, archiveType, name string) string {
	return fmt.Sprintf("%s %s %s.7z", runID, archiveType, name)
}

// Create archives sourcePath into the multi-volume archive at destPath.
func (a *Archiver) Create(destPath, sourcePath, password string, exclude []string) error {
	args := []string{
		"a", "-t7z", destPath, sourcePath,
		"-mmt=on", a.CompressionLevel, "-m0=lzma2",
		"-v" + a.VolumeSize, "-mhe=on", "-p" + password,
	}
	for _, pattern := range exclude {
		args = append(args, "-xr!"+pattern)
	}

	out, err := a.Runner.Run("", a.Binary, args...)
	log.Debug().Str("archive", destPath).Str("output", strings.TrimSpace(string(out))).Msg("7z create")
	if err != nil {
		return fmt.Errorf("7z create: %w", err)
	}
	return nil
}

// Test runs an integrity check against a just-created archive, addressed
// through its first volume.
func (a *Archiver) Test(destPath, password string) error {
	out, err := a.Runner.Run("", a.Binary, "t", destPath+".001", "-p"+password)
	log.Debug().Str("archive", destPath).Str("output", strings.TrimSpace(string(out))).Msg("7z test")
	if err != nil {
		return fmt.Errorf("7z test: %w", err)
	}
	return nil
}
