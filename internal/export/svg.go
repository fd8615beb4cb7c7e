package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"TalkDraw/internal/state"
)

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func hex(p state.Path) string {
	if p.Color == nil {
		return "#000000"
	}
	c, _ := colorful.MakeColor(p.Color)
	return c.Hex()
}

// SVG writes the drawing as polylines on a white background.
func SVG(w io.Writer, paths []state.Path) error {
	f, err := fit(paths)
	if err != nil {
		return err
	}
	ew := &errWriter{w: w}
	width, height := f.width, f.height

	s := svg.New(ew)
	s.Start(width, height)
	s.Rect(0, 0, width, height, "fill:#ffffff")
	for _, p := range paths {
		if len(p.Points) < 2 {
			continue
		}
		xs := make([]int, len(p.Points))
		ys := make([]int, len(p.Points))
		for i, pt := range p.Points {
			x, y := f.at(pt)
			xs[i], ys[i] = int(math.Round(x)), int(math.Round(y))
		}
		s.Polyline(xs, ys, fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round",
			hex(p), f.stroke(p.Width)))
	}
	s.End()
	return ew.err
}
