package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TalkDraw/internal/audio"
	"TalkDraw/internal/config"
	"TalkDraw/internal/session"
)

// App is the main window: the sign-in screen, or the tile menu once signed in.
type App struct {
	app  fyne.App
	win  fyne.Window
	cfg  config.Config
	gate *session.Gate
	talk *audio.Controller

	talkTile *Tile
	drawing  *drawingBoard
}

// NewApp wires the screens of a. Recordings go to the app storage root.
func NewApp(a fyne.App, cfg config.Config, rec audio.Recorder) *App {
	x := &App{
		app:  a,
		win:  a.NewWindow("TalkDraw"),
		cfg:  cfg,
		gate: &session.Gate{},
	}
	x.win.Resize(fyne.NewSize(480, 720))
	x.win.SetMaster()

	path := audio.RecordingPath(a.Storage().RootURI().Path())
	x.talk = audio.NewController(rec, path, cfg.Audio)

	x.talkTile = NewTile("Talk", theme.MediaRecordIcon(), theme.ColorNamePrimary, x.toggleTalk)
	x.talk.OnChange = func(on bool) {
		if on {
			x.talkTile.SetSubtitle("Recording, tap to stop")
		} else {
			x.talkTile.SetSubtitle("")
		}
	}
	x.gate.OnChange = func(bool) { x.showCurrent() }
	x.showCurrent()
	return x
}

func (x *App) showCurrent() {
	if x.gate.SignedIn() {
		x.win.SetContent(x.menu())
		return
	}
	x.win.SetContent(newSignInScreen(x.gate).Content())
}

func (x *App) menu() fyne.CanvasObject {
	draw := NewTile("Draw", theme.DocumentCreateIcon(), theme.ColorNameWarning, x.openDrawing)
	settings := NewTile("Settings", theme.SettingsIcon(), theme.ColorNameSuccess, func() {
		showSettings(x.win, x.cfg, x.saveSettings)
	})

	logout := widget.NewButton("Logout", x.logout)
	logout.Importance = widget.DangerImportance

	return container.NewVScroll(container.NewPadded(container.NewVBox(
		x.talkTile,
		draw,
		settings,
		logout,
	)))
}

func (x *App) toggleTalk() {
	if err := x.talk.Toggle(); err != nil {
		dialog.ShowError(err, x.win)
	}
}

func (x *App) openDrawing() {
	if x.drawing != nil {
		x.drawing.win.RequestFocus()
		return
	}
	x.drawing = newDrawingBoard(x.app, x.cfg, func() { x.drawing = nil })
	x.drawing.Show()
}

func (x *App) saveSettings(cfg config.Config) {
	x.cfg = cfg
	cfg.Save(x.app.Preferences())
	x.talk.SetConfig(cfg.Audio)
	log.Printf("[CONFIG] Settings saved")
}

func (x *App) logout() {
	if x.drawing != nil {
		x.drawing.Close()
		x.drawing = nil
	}
	x.gate.SignOut()
}

// Close stops any recording still running.
func (x *App) Close() {
	if err := x.talk.Close(); err != nil {
		log.Printf("[AUDIO] %v", err)
	}
}

// RunApp shows the main window and blocks until the app quits.
func RunApp(a fyne.App, cfg config.Config, rec audio.Recorder) {
	x := NewApp(a, cfg, rec)
	defer x.Close()
	x.win.ShowAndRun()
}
