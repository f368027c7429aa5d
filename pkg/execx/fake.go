package execx

import (
	"fmt"
	"strings"
)

// Call records one command invocation made through a Fake.
type Call struct {
	Dir  string
	Name string
	Args []string
}

func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Fake is a Runner for tests. It records every call and fails any call
// whose working directory or rendered command line contains one of the
// FailOn substrings.
type Fake struct {
	Calls  []Call
	FailOn []string
	Output []byte
}

func (f *Fake) Run(dir string, name string, args ...string) ([]byte, error) {
	call := Call{Dir: dir, Name: name, Args: args}
	f.Calls = append(f.Calls, call)
	for _, pattern := range f.FailOn {
		if strings.Contains(dir+" "+call.String(), pattern) {
			return f.Output, fmt.Errorf("exit status 1")
		}
	}
	return f.Output, nil
}
