package vcs

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/execx"
)

// Commit stages and commits everything pending in the work tree at dir.
// Clean trees are left alone. The commit message is the current time in
// "YYMMDD HH:MM".
func Commit(runner execx.Runner, dir string) error {
	return commitAt(runner, dir, time.Now())
}

func commitAt(runner execx.Runner, dir string, now time.Time) error {
	log.Info().Str("dir", dir).Msg("syncing work tree")

	if out, err := runner.Run(dir, "git", "add", "."); err != nil {
		return fmt.Errorf("git add: %w: %s", err, bytes.TrimSpace(out))
	}

	status, err := runner.Run(dir, "git", "status", "--porcelain")
	if err != nil {
		return fmt.Errorf("git status: %w", err)
	}
	if len(bytes.TrimSpace(status)) == 0 {
		log.Info().Str("dir", dir).Msg("nothing to commit")
		return nil
	}

	message := now.Format("060102 15:04")
	if out, err := runner.Run(dir, "git", "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit: %w: %s", err, bytes.TrimSpace(out))
	}
	log.Info().Str("dir", dir).Msg("changes committed")
	return nil
}
