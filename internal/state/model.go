package state

import (
	"image/color"
	"time"
)

// Point is a position in canvas-local space.
type Point struct{ X, Y float32 }

// Stroke is one continuous freehand line. Point order defines the segments.
type Stroke struct {
	ID     string
	Points []Point
	Time   time.Time // commit time, zero for the in-progress stroke
}

func (s Stroke) clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	s.Points = pts
	return s
}

// Path is one entry of a render pass: a connected polyline drawn with the
// canvas-wide style.
type Path struct {
	Points []Point
	Color  color.Color
	Width  float32
}

// Segment is a single line from A to B.
type Segment struct{ A, B Point }

// Segments returns the line segments of the path. Paths with fewer than two
// points have none.
func (p Path) Segments() []Segment {
	if len(p.Points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		segs = append(segs, Segment{A: p.Points[i-1], B: p.Points[i]})
	}
	return segs
}

type OpType string

const (
	OpExtend       OpType = "extend"
	OpCommit       OpType = "commit"
	OpClearCurrent OpType = "clear_current"
	OpEraseAll     OpType = "erase_all"
	OpStyle        OpType = "style"
)

// Op describes a completed mutation of a Canvas.
type Op struct {
	Type    OpType
	Stroke  *Stroke // committed stroke, set for OpCommit only
	Seq     uint64
	Session string
}
