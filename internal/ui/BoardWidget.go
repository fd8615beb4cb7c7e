package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"TalkDraw/internal/state"
)

// BoardWidget turns pointer drags into strokes on a state.Canvas and draws
// every stroke the canvas renders.
type BoardWidget struct {
	widget.BaseWidget
	canvas      *state.Canvas
	unsubscribe func()

	pressed  bool          // primary button is down
	pressAt  fyne.Position // where it went down
	dragging bool          // a drag gesture is feeding the current stroke
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Canvas) *BoardWidget {
	b := &BoardWidget{canvas: c}
	b.ExtendBaseWidget(b)
	b.unsubscribe = c.Subscribe(func(state.Op) { b.Refresh() })
	return b
}

// Detach stops the board from following its canvas.
func (b *BoardWidget) Detach() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

func toPoint(p fyne.Position) state.Point { return state.Point{X: p.X, Y: p.Y} }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pressed = true
		b.pressAt = e.Position
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pressed = false
	}
}

// Dragged extends the stroke to the pointer. The first event of a gesture
// also records where the gesture began: the press position on desktop, or
// the position before this event's movement elsewhere.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.dragging {
		b.dragging = true
		start := e.Position.Subtract(e.Dragged)
		if b.pressed {
			start = b.pressAt
		}
		b.canvas.Extend(toPoint(start))
	}
	b.canvas.Extend(toPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.dragging = false
	b.pressed = false
	b.canvas.EndStroke()
}

// Tapped records a tap as a one-point stroke.
func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.canvas.Extend(toPoint(e.Position))
	b.canvas.EndStroke()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	for _, p := range r.board.canvas.Render() {
		for _, seg := range p.Segments() {
			line := canvas.NewLine(p.Color)
			line.StrokeWidth = p.Width
			line.Position1 = fyne.NewPos(seg.A.X, seg.A.Y)
			line.Position2 = fyne.NewPos(seg.B.X, seg.B.Y)
			objects = append(objects, line)
		}
	}
	r.objects = objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
