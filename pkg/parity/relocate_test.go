package parity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVolumes(t *testing.T, root, runID, name string, indices ...int) {
	t.Helper()
	for _, index := range indices {
		path := filepath.Join(root, VolumeName(runID, name, index))
		require.NoError(t, os.WriteFile(path, []byte("volume"), 0o644))
	}
}

func TestRelocate(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003")
	writeVolumes(t, root, "240714", "X", 1, 2, 3)

	moved, err := Relocate(root, SubRange{Name: "001-003", Start: 1, End: 3}, "240714", "X")
	require.NoError(t, err)
	assert.Equal(t, 3, moved)

	for _, index := range []int{1, 2, 3} {
		volume := VolumeName("240714", "X", index)
		assert.FileExists(t, filepath.Join(root, "001-003", volume))
		assert.NoFileExists(t, filepath.Join(root, volume))
	}
}

func TestRelocateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003")
	writeVolumes(t, root, "240714", "X", 1, 2, 3)
	subrange := SubRange{Name: "001-003", Start: 1, End: 3}

	moved, err := Relocate(root, subrange, "240714", "X")
	require.NoError(t, err)
	assert.Equal(t, 3, moved)

	moved, err = Relocate(root, subrange, "240714", "X")
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
}

func TestRelocateIgnoresMissingVolumes(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-010")
	writeVolumes(t, root, "240714", "X", 2, 5)

	moved, err := Relocate(root, SubRange{Name: "001-010", Start: 1, End: 10}, "240714", "X")
	require.NoError(t, err)
	assert.Equal(t, 2, moved)
}

func TestRelocateLeavesOtherRunsAlone(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003")
	writeVolumes(t, root, "240714", "X", 1)
	writeVolumes(t, root, "240601", "X", 1)
	writeVolumes(t, root, "240714", "Y", 1)

	moved, err := Relocate(root, SubRange{Name: "001-003", Start: 1, End: 3}, "240714", "X")
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	assert.FileExists(t, filepath.Join(root, VolumeName("240601", "X", 1)))
	assert.FileExists(t, filepath.Join(root, VolumeName("240714", "Y", 1)))
}

func TestRelocateNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003")
	writeVolumes(t, root, "240714", "X", 1)
	target := filepath.Join(root, "001-003", VolumeName("240714", "X", 1))
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))

	_, err := Relocate(root, SubRange{Name: "001-003", Start: 1, End: 3}, "240714", "X")
	require.Error(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
}
