package utils_test

import (
	"testing"

	"basemedia/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int
	}{
		{"Int", 7, 7},
		{"Int64", int64(12), 12},
		{"Uint8", uint8(3), 3},
		{"Float", 4.9, 4},
		{"String", "42", 42},
		{"NegativeString", "-3", -3},
		{"InvalidString", "v1", 0},
		{"Bytes", []byte("9"), 9},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.val))
		})
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"Plain", "12", 12},
		{"Decimal", "2.0", 2},
		{"TrailingLetters", "3a", 3},
		{"LeadingSpace", "  7 beta", 7},
		{"Negative", "-4x", -4},
		{"Plus", "+5", 5},
		{"NoDigits", "v1", 0},
		{"SignOnly", "-", 0},
		{"Empty", "", 0},
		{"Overflow", "99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.LeadingInt(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want bool
	}{
		{"Bool", true, true},
		{"One", 1, true},
		{"Zero", 0, false},
		{"StringTrue", "TRUE", true},
		{"StringOne", "1", true},
		{"StringOther", "yes", false},
		{"Bytes", []byte("true"), true},
		{"Unsupported", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToBool(tt.val))
		})
	}
}
