package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopLeft(t *testing.T) {
	// Primary 1920x1080 at the origin, a taller 2560x1440 display to its
	// right. Bottom-left space puts the secondary's top edge at y=1440.
	const primary = 1080.0

	tests := []struct {
		name  string
		x, y  float64
		wantX int
		wantY int
	}{
		{"primary top-left", 0, 1080, 0, 0},
		{"primary bottom-left", 0, 0, 0, 1080},
		{"primary center", 960, 540, 960, 540},
		{"secondary top", 2000, 1440, 2000, -360},
		{"secondary bottom", 2000, 0, 2000, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := topLeft(tt.x, tt.y, primary)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
