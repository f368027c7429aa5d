package parity

import (
	"fmt"
	"strconv"
	"strings"
)

// SubRange is one batch of sequential archive volumes, represented on disk
// as a directory named "{start}-{end}" holding the volumes of that
// inclusive index interval.
type SubRange struct {
	// Name is the directory name as found on disk.
	Name  string
	Start int
	End   int
}

// ParseSubRange parses a subrange directory name.
func ParseSubRange(name string) (SubRange, error) {
	first, second, found := strings.Cut(name, "-")
	if !found {
		return SubRange{}, fmt.Errorf("subrange %q: name is not of the form start-end", name)
	}
	start, err := strconv.Atoi(first)
	if err != nil {
		return SubRange{}, fmt.Errorf("subrange %q: invalid start: %w", name, err)
	}
	end, err := strconv.Atoi(second)
	if err != nil {
		return SubRange{}, fmt.Errorf("subrange %q: invalid end: %w", name, err)
	}
	if start > end {
		return SubRange{}, fmt.Errorf("subrange %q: start is after end", name)
	}
	return SubRange{Name: name, Start: start, End: end}, nil
}

// Contains reports whether the volume index falls inside the interval.
func (s SubRange) Contains(index int) bool {
	return index >= s.Start && index <= s.End
}

func (s SubRange) overlaps(other SubRange) bool {
	return s.Start <= other.End && other.Start <= s.End
}
