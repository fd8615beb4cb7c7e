package state

// Rect is an axis-aligned area of the canvas.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Union returns the smallest Rect covering r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// boundsOf returns the bounding box of points, or false when there are none.
func boundsOf(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Bounds returns the box covering every point of paths, grown by padding on
// each side. It reports false when the paths hold no points.
func Bounds(paths []Path, padding float32) (Rect, bool) {
	var (
		out   Rect
		found bool
	)
	for _, p := range paths {
		r, ok := boundsOf(p.Points)
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	if !found {
		return Rect{}, false
	}
	out.X -= padding
	out.Y -= padding
	out.Width += 2 * padding
	out.Height += 2 * padding
	return out, true
}
