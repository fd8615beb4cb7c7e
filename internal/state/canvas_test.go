package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blue = color.NRGBA{B: 255, A: 255}
	red  = color.NRGBA{R: 255, A: 255}
)

func points(s []Stroke) [][]Point {
	out := make([][]Point, len(s))
	for i, st := range s {
		out[i] = st.Points
	}
	return out
}

func TestCanvas_ExtendThenEndCommitsOneStroke(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.Extend(Point{0, 0})
	c.Extend(Point{10, 0})
	require.True(t, c.EndStroke())

	assert.Equal(t, [][]Point{{{0, 0}, {10, 0}}}, points(c.History()))
	assert.Empty(t, c.Current().Points)
	assert.NotEmpty(t, c.History()[0].ID)
	assert.False(t, c.History()[0].Time.IsZero())
}

func TestCanvas_HistoryGrowsByOnePerGesture(t *testing.T) {
	c := NewCanvas(blue, 5)
	for n := 1; n <= 5; n++ {
		var want []Point
		for i := 0; i < n; i++ {
			p := Point{float32(i), float32(n)}
			want = append(want, p)
			c.Extend(p)
		}
		c.EndStroke()
		h := c.History()
		require.Len(t, h, n)
		assert.Equal(t, want, h[n-1].Points)
		assert.Empty(t, c.Current().Points)
	}
}

func TestCanvas_EndStrokeOnEmptyIsNoop(t *testing.T) {
	c := NewCanvas(blue, 5)
	var ops []Op
	c.Subscribe(func(op Op) { ops = append(ops, op) })

	assert.False(t, c.EndStroke())
	assert.Empty(t, c.History())
	assert.Empty(t, ops)
}

func TestCanvas_SinglePointTapIsCommitted(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.Extend(Point{3, 4})
	require.True(t, c.EndStroke())
	assert.Equal(t, [][]Point{{{3, 4}}}, points(c.History()))

	paths := c.Render()
	require.Len(t, paths, 2)
	assert.Empty(t, paths[0].Segments())
}

func TestCanvas_ClearCurrentKeepsHistory(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.Extend(Point{1, 1})
	c.Extend(Point{2, 2})
	c.EndStroke()
	c.Extend(Point{5, 5})

	c.ClearCurrent()
	assert.Len(t, c.History(), 1)
	assert.Empty(t, c.Current().Points)

	c.ClearCurrent()
	assert.Len(t, c.History(), 1)
}

func TestCanvas_EraseAll(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.EraseAll()
	assert.Empty(t, c.History())

	c.Extend(Point{1, 1})
	c.EndStroke()
	c.Extend(Point{2, 2})
	c.EndStroke()
	c.Extend(Point{9, 9})

	c.EraseAll()
	assert.Empty(t, c.History())
	assert.Equal(t, []Point{{9, 9}}, c.Current().Points)
}

func TestCanvas_StyleIsRetroactive(t *testing.T) {
	c := NewCanvas(blue, 5)
	for i := 0; i < 2; i++ {
		c.Extend(Point{0, float32(i)})
		c.Extend(Point{10, float32(i)})
		c.EndStroke()
	}
	c.SetColor(red)
	c.SetWidth(12)

	paths := c.Render()
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.Equal(t, red, p.Color)
		assert.Equal(t, float32(12), p.Width)
	}
}

func TestCanvas_SetColorNilIgnored(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.SetColor(nil)
	assert.Equal(t, blue, c.Color())
}

func TestCanvas_RenderOrderAndIdempotence(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.Extend(Point{0, 0})
	c.Extend(Point{1, 0})
	c.EndStroke()
	c.Extend(Point{5, 5})
	c.Extend(Point{6, 6})
	c.Extend(Point{-100, 1e6})

	first := c.Render()
	second := c.Render()
	assert.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, []Point{{0, 0}, {1, 0}}, first[0].Points)
	assert.Equal(t, []Point{{5, 5}, {6, 6}, {-100, 1e6}}, first[1].Points)
	assert.Equal(t, []Segment{{A: Point{5, 5}, B: Point{6, 6}}, {A: Point{6, 6}, B: Point{-100, 1e6}}}, first[1].Segments())
}

func TestCanvas_RenderDoesNotAlias(t *testing.T) {
	c := NewCanvas(blue, 5)
	c.Extend(Point{0, 0})
	c.Extend(Point{1, 1})
	paths := c.Render()
	paths[0].Points[0] = Point{42, 42}
	assert.Equal(t, Point{0, 0}, c.Current().Points[0])

	h := c.History()
	c.EndStroke()
	assert.Empty(t, h)
}

func TestCanvas_SubscribeNotifiesEveryMutation(t *testing.T) {
	c := NewCanvas(blue, 5)
	var got []OpType
	var last Op
	cancel := c.Subscribe(func(op Op) {
		got = append(got, op.Type)
		last = op
	})

	c.Extend(Point{0, 0})
	c.EndStroke()
	require.NotNil(t, last.Stroke)
	assert.Equal(t, []Point{{0, 0}}, last.Stroke.Points)

	c.ClearCurrent()
	c.EraseAll()
	c.SetColor(red)
	c.SetWidth(3)
	assert.Equal(t, []OpType{OpExtend, OpCommit, OpClearCurrent, OpEraseAll, OpStyle, OpStyle}, got)
	assert.Equal(t, uint64(6), last.Seq)
	assert.Equal(t, c.Session(), last.Session)

	cancel()
	c.Extend(Point{1, 1})
	assert.Len(t, got, 6)
}

func TestCanvas_StateVisibleToSubscriber(t *testing.T) {
	c := NewCanvas(blue, 5)
	var historyAtCommit int
	c.Subscribe(func(op Op) {
		if op.Type == OpCommit {
			historyAtCommit = len(c.History())
			assert.Empty(t, c.Current().Points)
		}
	})
	c.Extend(Point{0, 0})
	c.EndStroke()
	assert.Equal(t, 1, historyAtCommit)
}
