package parity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubRange(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{name: "001-003", start: 1, end: 3},
		{name: "004-010", start: 4, end: 10},
		{name: "0-0", start: 0, end: 0},
		{name: "100-100", start: 100, end: 100},
		{name: "1", wantErr: true},
		{name: "1-2-3", wantErr: true},
		{name: "a-b", wantErr: true},
		{name: "001-abc", wantErr: true},
		{name: "010-001", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subrange, err := ParseSubRange(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, subrange.Name)
			assert.Equal(t, tt.start, subrange.Start)
			assert.Equal(t, tt.end, subrange.End)
		})
	}
}

func TestSubRangeContains(t *testing.T) {
	subrange := SubRange{Name: "004-010", Start: 4, End: 10}

	assert.True(t, subrange.Contains(4))
	assert.True(t, subrange.Contains(7))
	assert.True(t, subrange.Contains(10))
	assert.False(t, subrange.Contains(3))
	assert.False(t, subrange.Contains(11))
}
