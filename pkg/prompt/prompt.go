package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// SkipSelector chooses which 1-based positions of a candidate list to
// leave out of a run. The controller only depends on this interface, so
// automated runs and tests never touch a console.
type SkipSelector interface {
	Select(names []string) (map[int]bool, error)
}

// Console lists the candidates and reads one line of whitespace-separated
// numbers. An empty answer skips nothing, and so does a failed read (no
// terminal attached), so unattended runs process everything.
type Console struct{}

func (Console) Select(names []string) (map[int]bool, error) {
	fmt.Println("Select archive sets to skip (enter the numbers, separated by spaces):")
	for i, name := range names {
		fmt.Printf("%d. %s\n", i+1, name)
	}

	selector := promptui.Prompt{
		Label: "Numbers to skip (empty to process all)",
	}
	input, err := selector.Run()
	if err != nil {
		return map[int]bool{}, nil
	}
	return Parse(input), nil
}

// Parse extracts the numeric tokens of a skip answer. Anything that is not
// a number is ignored.
func Parse(input string) map[int]bool {
	skips := map[int]bool{}
	for _, token := range strings.Fields(input) {
		if number, err := strconv.Atoi(token); err == nil {
			skips[number] = true
		}
	}
	return skips
}

// Fixed always selects the same positions.
type Fixed map[int]bool

func (f Fixed) Select([]string) (map[int]bool, error) {
	return map[int]bool(f), nil
}
