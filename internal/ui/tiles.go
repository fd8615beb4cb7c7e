package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Tile is a large tappable menu entry with an icon and a title.
type Tile struct {
	widget.BaseWidget
	Title    string
	Subtitle string
	Icon     fyne.Resource
	Color    fyne.ThemeColorName
	OnTapped func()
}

var _ fyne.Tappable = (*Tile)(nil)

func NewTile(title string, icon fyne.Resource, c fyne.ThemeColorName, tapped func()) *Tile {
	t := &Tile{Title: title, Icon: icon, Color: c, OnTapped: tapped}
	t.ExtendBaseWidget(t)
	return t
}

// SetSubtitle changes the small status line under the title.
func (t *Tile) SetSubtitle(s string) {
	t.Subtitle = s
	t.Refresh()
}

func (t *Tile) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

func (t *Tile) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	bg.CornerRadius = 15
	bg.StrokeColor = color.Gray{Y: 210}
	bg.StrokeWidth = 1

	icon := widget.NewIcon(theme.NewColoredResource(t.Icon, t.Color))
	title := canvas.NewText(t.Title, color.Black)
	title.TextSize = 28
	title.TextStyle = fyne.TextStyle{Bold: true}
	subtitle := widget.NewLabel(t.Subtitle)
	if t.Subtitle == "" {
		subtitle.Hide()
	}

	r := &tileRenderer{tile: t, icon: icon, title: title, subtitle: subtitle}
	r.content = container.NewStack(bg, container.NewPadded(container.NewHBox(
		container.NewGridWrap(fyne.NewSize(50, 50), icon),
		container.NewVBox(title, subtitle),
	)))
	return r
}

type tileRenderer struct {
	tile     *Tile
	icon     *widget.Icon
	title    *canvas.Text
	subtitle *widget.Label
	content  *fyne.Container
}

func (r *tileRenderer) Layout(size fyne.Size)        { r.content.Resize(size) }
func (r *tileRenderer) MinSize() fyne.Size           { return r.content.MinSize() }
func (r *tileRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.content} }
func (r *tileRenderer) Destroy()                     {}

func (r *tileRenderer) Refresh() {
	r.icon.SetResource(theme.NewColoredResource(r.tile.Icon, r.tile.Color))
	r.title.Text = r.tile.Title
	r.title.Refresh()
	r.subtitle.SetText(r.tile.Subtitle)
	if r.tile.Subtitle == "" {
		r.subtitle.Hide()
	} else {
		r.subtitle.Show()
	}
}
