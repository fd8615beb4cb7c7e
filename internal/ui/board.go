package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"TalkDraw/internal/config"
	"TalkDraw/internal/state"
)

// drawingBoard is an open drawing window. Its canvas lives exactly as long
// as the window.
type drawingBoard struct {
	win     fyne.Window
	board   *BoardWidget
	toolbar *Toolbar
}

func newDrawingBoard(a fyne.App, cfg config.Config, onClosed func()) *drawingBoard {
	win := a.NewWindow("Draw")
	win.Resize(fyne.NewSize(1024, 768))

	cv := state.NewCanvas(cfg.LineColor, cfg.ClampWidth(cfg.LineWidth))
	d := &drawingBoard{
		win:     win,
		board:   NewBoardWidget(cv),
		toolbar: NewToolbar(cv, cfg, win),
	}
	win.SetContent(container.NewBorder(d.toolbar.Content(), nil, nil, nil, d.board))
	win.SetOnClosed(func() {
		d.board.Detach()
		log.Printf("[CANVAS] Session %s closed with %d strokes", cv.Session(), len(cv.History()))
		if onClosed != nil {
			onClosed()
		}
	})
	return d
}

func (d *drawingBoard) Show()  { d.win.Show() }
func (d *drawingBoard) Close() { d.win.Close() }
