package state

import (
	"image/color"
	"log"
	"time"

	"github.com/google/uuid"
)

// Canvas is the in-memory state of one drawing session: the committed
// strokes, the stroke being drawn and the style applied to all of them.
//
// A Canvas is driven from the UI event loop and is not safe for concurrent use.
type Canvas struct {
	session string
	current Stroke
	history []Stroke
	color   color.Color
	width   float32

	seq     uint64
	subs    []subscriber
	nextSub uint64
}

// NewCanvas returns an empty canvas drawing with the given style.
func NewCanvas(c color.Color, width float32) *Canvas {
	if c == nil {
		c = color.Black
	}
	cv := &Canvas{
		session: uuid.NewString(),
		history: make([]Stroke, 0),
		color:   c,
		width:   width,
	}
	log.Printf("[CANVAS] Session %s opened", cv.session)
	return cv
}

// Session returns the ID stamped on every Op of this canvas.
func (c *Canvas) Session() string { return c.session }

// Extend appends p to the stroke in progress, starting one if needed.
func (c *Canvas) Extend(p Point) {
	c.current.Points = append(c.current.Points, p)
	c.emit(Op{Type: OpExtend})
}

// EndStroke commits the stroke in progress to the history and resets it.
// Single-point strokes are committed too. It reports whether anything was
// committed; an empty stroke is ignored.
func (c *Canvas) EndStroke() bool {
	if len(c.current.Points) == 0 {
		return false
	}
	st := c.current.clone()
	st.ID = uuid.NewString()
	st.Time = time.Now()
	c.history = append(c.history, st)
	c.current = Stroke{}
	log.Printf("[CANVAS] Stroke %s committed at %s (%d points)", st.ID, st.Time.Format(time.RFC3339), len(st.Points))
	committed := st.clone()
	c.emit(Op{Type: OpCommit, Stroke: &committed})
	return true
}

// ClearCurrent drops the stroke in progress without committing it.
func (c *Canvas) ClearCurrent() {
	c.current = Stroke{}
	c.emit(Op{Type: OpClearCurrent})
}

// EraseAll drops every committed stroke. The stroke in progress survives.
func (c *Canvas) EraseAll() {
	c.history = make([]Stroke, 0)
	c.emit(Op{Type: OpEraseAll})
}

// SetColor changes the color of every stroke, past and future.
func (c *Canvas) SetColor(col color.Color) {
	if col == nil {
		return
	}
	c.color = col
	c.emit(Op{Type: OpStyle})
}

// SetWidth changes the line width of every stroke, past and future.
func (c *Canvas) SetWidth(w float32) {
	c.width = w
	c.emit(Op{Type: OpStyle})
}

func (c *Canvas) Color() color.Color { return c.color }
func (c *Canvas) Width() float32     { return c.width }

// Current returns a copy of the stroke in progress.
func (c *Canvas) Current() Stroke { return c.current.clone() }

// History returns a copy of the committed strokes in commit order.
func (c *Canvas) History() []Stroke {
	out := make([]Stroke, len(c.history))
	for i, st := range c.history {
		out[i] = st.clone()
	}
	return out
}

// Render returns one Path per committed stroke followed by one for the stroke
// in progress, all using the current color and width.
func (c *Canvas) Render() []Path {
	paths := make([]Path, 0, len(c.history)+1)
	for _, st := range c.history {
		paths = append(paths, c.pathOf(st))
	}
	return append(paths, c.pathOf(c.current))
}

func (c *Canvas) pathOf(st Stroke) Path {
	return Path{
		Points: st.clone().Points,
		Color:  c.color,
		Width:  c.width,
	}
}
