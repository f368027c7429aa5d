package parity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentoomaniac/coldstore/pkg/execx"
)

func newTestProcessor(runID string, fake *execx.Fake) *Processor {
	return &Processor{RunID: runID, Driver: NewDriver(fake)}
}

func TestProcessSet(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003")
	writeVolumes(t, root, "240714", "X", 1, 2, 3)

	fake := &execx.Fake{}
	result, err := newTestProcessor("240714", fake).ProcessSet(Set{Root: root, Name: "X"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SubRanges)
	assert.Equal(t, 3, result.Moved)
	assert.Empty(t, result.Leftovers)

	// one create and one verify, both inside the subrange directory
	require.Len(t, fake.Calls, 2)
	assert.Equal(t, "create", fake.Calls[0].Args[0])
	assert.Equal(t, "verify", fake.Calls[1].Args[0])
	assert.Equal(t, filepath.Join(root, "001-003"), fake.Calls[0].Dir)
	assert.Equal(t, filepath.Join(root, "001-003"), fake.Calls[1].Dir)
}

func TestProcessSetReportsLeftovers(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-003")
	writeVolumes(t, root, "240714", "X", 1, 2, 3, 4)

	result, err := newTestProcessor("240714", &execx.Fake{}).ProcessSet(Set{Root: root, Name: "X"})
	require.NoError(t, err)

	// index 4 lies outside every declared interval: it stays put and is
	// reported, not moved
	assert.Equal(t, []string{VolumeName("240714", "X", 4)}, result.Leftovers)
	assert.FileExists(t, filepath.Join(root, VolumeName("240714", "X", 4)))
}

func TestProcessSetContinuesAfterCreateFailure(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-002", "003-004")
	writeVolumes(t, root, "240714", "X", 1, 2, 3, 4)

	fake := &execx.Fake{FailOn: []string{filepath.Join(root, "001-002") + " par2 create"}}
	result, err := newTestProcessor("240714", fake).ProcessSet(Set{Root: root, Name: "X"})
	require.NoError(t, err)

	// the first subrange's create failed, but both subranges were fully
	// processed anyway
	assert.Equal(t, 2, result.SubRanges)
	assert.Equal(t, 4, result.Moved)
	assert.Empty(t, result.Leftovers)
	assert.Len(t, fake.Calls, 4)
}

func TestProcessSetFailsOnMalformedSubRange(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "001-oops")
	writeVolumes(t, root, "240714", "X", 1)

	_, err := newTestProcessor("240714", &execx.Fake{}).ProcessSet(Set{Root: root, Name: "X"})
	require.Error(t, err)
	// nothing was moved before the parse error surfaced
	assert.FileExists(t, filepath.Join(root, VolumeName("240714", "X", 1)))
}

func TestLeftoversMatchesRunPatternOnly(t *testing.T) {
	root := t.TempDir()
	writeVolumes(t, root, "240714", "X", 5)
	writeVolumes(t, root, "240601", "X", 5)
	writeVolumes(t, root, "240714", "Y", 5)

	leftovers, err := Leftovers(root, "240714", "X")
	require.NoError(t, err)
	assert.Equal(t, []string{VolumeName("240714", "X", 5)}, leftovers)
}
