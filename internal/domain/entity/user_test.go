package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected int
	}{
		{"negative points clamp to level 1", -10, 1},
		{"zero points", 0, 1},
		{"just below first threshold", 99, 1},
		{"first threshold", 100, 2},
		{"mid range", 450, 5},
		{"cap", 2000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelForPoints(tt.points))
		})
	}
}
