package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISBN(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"9780262033848", true},
		{"978-0-262-03384-8", true},
		{"978 0262 033848", true},
		{"0262033844", true},
		{"Introduction to Algorithms", false},
		{"978-0-262-03384-X", false},
		{"CS 170 Course Reader", false},
		{"-- --", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsISBN(tt.ref), "ref %q", tt.ref)
	}
}
