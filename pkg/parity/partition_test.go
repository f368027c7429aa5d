package parity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
}

func TestPartition(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003", "004-010", "011-020", "notes", "Archive")
	// digit-prefixed plain files are not subranges
	require.NoError(t, os.WriteFile(filepath.Join(root, "001-003.txt"), nil, 0o644))

	ranges, err := Partition(root)
	require.NoError(t, err)

	names := make([]string, len(ranges))
	for i, subrange := range ranges {
		names[i] = subrange.Name
	}
	assert.Equal(t, []string{"001-003", "004-010", "011-020"}, names)
	assert.Equal(t, 1, ranges[0].Start)
	assert.Equal(t, 20, ranges[2].End)
}

func TestPartitionEmptyRoot(t *testing.T) {
	ranges, err := Partition(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestPartitionMalformedNameIsFatal(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003", "04to10")

	_, err := Partition(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "04to10")
}

func TestPartitionRejectsOverlap(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-005", "004-010")

	_, err := Partition(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestPartitionMissingRoot(t *testing.T) {
	_, err := Partition(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
}
