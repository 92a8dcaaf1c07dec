package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDollar(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{2_500_000, "$2.50M"},
		{1_000_000, "$1.00M"},
		{150_000, "$150.0K"},
		{1_000, "$1.0K"},
		{999.99, "$999.99"},
		{0, "$0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDollar(tt.val), "FormatDollar(%v)", tt.val)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{1.5, "$1.5000"},
		{1, "$1.0000"},
		{0.05, "$0.050000"},
		{0.01, "$0.010000"},
		{0.000123, "$0.0001230000"},
		{0, "$0.0000000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.val), "FormatPrice(%v)", tt.val)
	}
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "+5.25%", FormatChange(5.25))
	assert.Equal(t, "+0.00%", FormatChange(0))
	assert.Equal(t, "-3.10%", FormatChange(-3.1))
}
