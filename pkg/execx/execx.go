package execx

import (
	"os/exec"
)

// Runner executes an external command and returns its combined output.
// Implementations block until the command exits; a non-zero exit status is
// returned as an error.
type Runner interface {
	Run(dir string, name string, args ...string) ([]byte, error)
}

// System runs commands on the host.
type System struct{}

func (System) Run(dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
