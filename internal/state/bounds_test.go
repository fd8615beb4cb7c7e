package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		paths   []Path
		padding float32
		want    Rect
		ok      bool
	}{
		{"empty", nil, 10, Rect{}, false},
		{"only empty paths", []Path{{}, {Points: []Point{}}}, 10, Rect{}, false},
		{"single point", []Path{{Points: []Point{{5, 5}}}}, 0, Rect{X: 5, Y: 5}, true},
		{"padded", []Path{{Points: []Point{{0, 0}, {10, 20}}}}, 5, Rect{X: -5, Y: -5, Width: 20, Height: 30}, true},
		{"union", []Path{
			{Points: []Point{{0, 0}, {10, 10}}},
			{},
			{Points: []Point{{-10, 5}, {3, 40}}},
		}, 0, Rect{X: -10, Y: 0, Width: 20, Height: 40}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bounds(tt.paths, tt.padding)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

