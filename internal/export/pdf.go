package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"TalkDraw/internal/state"
)

// PDF writes a single-page PDF sized to the drawing. One canvas pixel maps
// to one point; drawings wider than MaxSide are scaled down.
func PDF(w io.Writer, paths []state.Path) error {
	f, err := fit(paths)
	if err != nil {
		return err
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(f.width), Ht: float64(f.height)},
	})
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.AddPage()

	for _, path := range paths {
		if len(path.Points) < 2 {
			continue
		}
		p.SetDrawColor(rgb8(path.Color))
		p.SetLineWidth(f.stroke(path.Width))
		for i, pt := range path.Points {
			x, y := f.at(pt)
			if i == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
		p.DrawPath("D")
	}
	return p.Output(w)
}
