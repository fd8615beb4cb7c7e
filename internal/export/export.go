// Package export writes a render pass of the drawing canvas to PDF, SVG or
// PNG.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"TalkDraw/internal/state"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrNotFinite     = errors.New("drawing has non-finite coordinates")
)

// Margin is the blank space kept around the drawing, in pixels.
const Margin = 20

// MaxSide caps the longest side of an exported page; larger drawings are
// scaled down to fit.
const MaxSide = 8192

// Default page used when there is nothing to draw, in pixels.
const emptyWidth, emptyHeight = 400, 300

// Extensions lists the file types Write understands.
var Extensions = []string{".pdf", ".svg", ".png"}

// page returns the area to export: the padded bounds of every stroke.
func page(paths []state.Path) state.Rect {
	var widest float32
	for _, p := range paths {
		widest = max(widest, p.Width)
	}
	r, ok := state.Bounds(paths, Margin+widest/2)
	if !ok {
		return state.Rect{Width: emptyWidth, Height: emptyHeight}
	}
	return r
}

// frame maps canvas coordinates onto the exported page.
type frame struct {
	bounds        state.Rect
	scale         float32
	width, height int
}

// fit sizes the page for paths, shrinking it uniformly when its longest side
// exceeds MaxSide.
func fit(paths []state.Path) (frame, error) {
	b := page(paths)
	for _, v := range []float32{b.X, b.Y, b.Width, b.Height} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return frame{}, ErrNotFinite
		}
	}
	scale := float32(1)
	if longest := max(b.Width, b.Height); longest > MaxSide {
		scale = MaxSide / longest
	}
	side := func(v float32) int {
		return min(MaxSide, max(1, int(math.Ceil(float64(v*scale)))))
	}
	return frame{bounds: b, scale: scale, width: side(b.Width), height: side(b.Height)}, nil
}

// at returns p in page coordinates.
func (f frame) at(p state.Point) (x, y float64) {
	return float64((p.X - f.bounds.X) * f.scale), float64((p.Y - f.bounds.Y) * f.scale)
}

// stroke returns the page line width for a path of width w.
func (f frame) stroke(w float32) float64 { return float64(w * f.scale) }

func rgb8(c color.Color) (r, g, b int) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, _ := color.NRGBAModel.Convert(c).RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}

// Write encodes paths to w in the given format ("pdf", "svg" or "png").
func Write(w io.Writer, format string, paths []state.Path) error {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "pdf":
		return PDF(w, paths)
	case "svg":
		return SVG(w, paths)
	case "png":
		return PNG(w, paths)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
