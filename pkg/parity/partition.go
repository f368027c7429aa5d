package parity

import (
	"fmt"
	"os"
)

// Partition enumerates the subranges of an archive-set root: its immediate
// subdirectories whose name starts with a digit, in ascending lexicographic
// order. A digit-prefixed directory that does not parse as a subrange is a
// hard error; skipping it silently would leave its volumes behind and turn
// the leftover report into noise. Intervals must not overlap either, since
// a volume matched by two subranges would land in whichever sorts first.
func Partition(root string) ([]SubRange, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var ranges []SubRange
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name[0] < '0' || name[0] > '9' {
			continue
		}
		subrange, err := ParseSubRange(name)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, subrange)
	}

	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].overlaps(ranges[j]) {
				return nil, fmt.Errorf("subranges %s and %s overlap in %s", ranges[i].Name, ranges[j].Name, root)
			}
		}
	}

	return ranges, nil
}
