package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThreshold(t *testing.T) {
	for input, want := range map[string]int{"0": 0, "5": 5, "10": 10} {
		got, err := ParseThreshold(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}
}

func TestParseThreshold_Invalid(t *testing.T) {
	for _, input := range []string{"-1", "11", "abc", "5.5", ""} {
		_, err := ParseThreshold(input)
		assert.Error(t, err, input)
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "600 B", FormatBytes(600))
	assert.Equal(t, "2.00 KiB", FormatBytes(2048))
	assert.Equal(t, "5.00 MiB", FormatBytes(5*1024*1024))
	assert.Equal(t, "1.50 GiB", FormatBytes(3*1024*1024*1024/2))
}
