package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TalkDraw/internal/config"
	"TalkDraw/internal/state"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 165, A: 255}, // Orange
	color.NRGBA{R: 128, B: 128, A: 255}, // Purple
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))
	rect.CornerRadius = 4

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	border.CornerRadius = 4

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the drawing controls laid over the board.
type Toolbar struct {
	canvas *state.Canvas
	win    fyne.Window

	colorButton *widget.Button
	widthSlider *widget.Slider
	eraseAll    *widget.Button
	clearLine   *widget.Button
	export      *widget.Button
	status      *widget.Label
}

// NewToolbar builds the controls for c. Width is limited to the range in cfg.
func NewToolbar(c *state.Canvas, cfg config.Config, win fyne.Window) *Toolbar {
	t := &Toolbar{canvas: c, win: win, status: widget.NewLabel("")}

	t.colorButton = widget.NewButtonWithIcon("Line Color", theme.ColorPaletteIcon(), t.pickColor)

	t.widthSlider = widget.NewSlider(float64(cfg.MinWidth), float64(cfg.MaxWidth))
	t.widthSlider.Step = 1
	t.widthSlider.SetValue(float64(cfg.ClampWidth(c.Width())))
	t.widthSlider.OnChanged = func(v float64) {
		c.SetWidth(float32(v))
	}

	t.eraseAll = widget.NewButton("Erase All", c.EraseAll)
	t.eraseAll.Importance = widget.DangerImportance

	t.clearLine = widget.NewButton("Clear Line", c.ClearCurrent)
	t.clearLine.Importance = widget.WarningImportance

	t.export = widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		showExportDialog(t.win, t.canvas, t.status)
	})
	return t
}

func (t *Toolbar) pickColor() {
	picker := dialog.NewColorPicker("Line Color", "Pick a color for every line", func(col color.Color) {
		t.canvas.SetColor(col)
	}, t.win)
	picker.Advanced = true
	picker.SetColor(t.canvas.Color())
	picker.Show()
}

// Content lays the toolbar out in two rows.
func (t *Toolbar) Content() fyne.CanvasObject {
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.canvas.SetColor))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.widthSlider)

	return container.NewVBox(
		container.NewHBox(
			t.colorButton,
			swatches,
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			sliderContainer,
		),
		container.NewHBox(
			t.eraseAll,
			t.clearLine,
			t.export,
			layout.NewSpacer(),
			t.status,
		),
	)
}
