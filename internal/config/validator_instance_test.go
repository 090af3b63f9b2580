package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator())
}

func TestARGBValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"empty string", "", true},
		{"rgb", "#FB7E16", true},
		{"argb", "#FFFB7E16", true},
		{"without hash", "FFAAAAAA", true},
		{"lowercase", "#ffd9d9d9", true},
		{"short", "#FFF", false},
		{"odd length", "#FFFFFFF", false},
		{"not hex", "#GGGGGG", false},
		{"named", "orange", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "argb")
			if tt.expected {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestParseARGB(t *testing.T) {
	c, err := ParseARGB("#80FB7E16")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xFB, G: 0x7E, B: 0x16, A: 0x80}, c)

	c, err = ParseARGB("D9D9D9")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF}, c)

	_, err = ParseARGB("#XYZXYZ")
	require.Error(t, err)

	require.Nil(t, colorOr(""))
	require.Equal(t, c, colorOr("#D9D9D9"))
}
