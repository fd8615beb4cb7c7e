package export

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"TalkDraw/internal/state"
)

// PNG rasterizes the drawing at one pixel per canvas unit, or smaller when
// the drawing is wider than MaxSide.
func PNG(w io.Writer, paths []state.Path) error {
	f, err := fit(paths)
	if err != nil {
		return err
	}
	width, height := f.width, f.height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	stroker := rasterx.NewStroker(width, height, scanner)
	for _, p := range paths {
		lw := f.stroke(p.Width)
		if len(p.Points) < 2 || lw <= 0 {
			continue
		}
		stroker.Clear()
		stroker.SetStroke(fixed.Int26_6(lw*64), 4<<6, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
		for i, pt := range p.Points {
			at := rasterx.ToFixedP(f.at(pt))
			if i == 0 {
				stroker.Start(at)
			} else {
				stroker.Line(at)
			}
		}
		stroker.Stop(false)
		if p.Color != nil {
			scanner.SetColor(p.Color)
		} else {
			scanner.SetColor(image.Black)
		}
		stroker.Draw()
	}
	return png.Encode(w, img)
}
