package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"32", 32, false},
		{"32.00", 32, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"-3", 0, true},
		{"3.5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"5000", 5000, false},
		{"12,500", 12500, false},
		{"4500.5", 4500.5, false},
		{"-1", 0, true},
		{"heavy", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeight(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseDimension_EmptyIsZero(t *testing.T) {
	got, err := ParseDimension("")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestParseFlag(t *testing.T) {
	for _, s := range []string{"Y", "yes", "TRUE", "1"} {
		got, err := ParseFlag(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"", "N", "no", "false", "0"} {
		got, err := ParseFlag(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}
	_, err := ParseFlag("maybe")
	assert.Error(t, err)
}
