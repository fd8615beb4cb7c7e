package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"TalkDraw/internal/session"
)

type signInScreen struct {
	gate   *session.Gate
	entry  *widget.Entry
	button *widget.Button
}

func newSignInScreen(gate *session.Gate) *signInScreen {
	s := &signInScreen{gate: gate}
	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder("Enter Username or Email")
	s.entry.SetText(gate.Username())
	s.button = widget.NewButton("Sign In", s.submit)
	s.button.Importance = widget.SuccessImportance

	s.entry.OnChanged = func(string) { s.sync() }
	s.entry.OnSubmitted = func(string) { s.submit() }
	s.sync()
	return s
}

func (s *signInScreen) sync() {
	if session.CanSignIn(s.entry.Text) {
		s.button.Enable()
	} else {
		s.button.Disable()
	}
}

func (s *signInScreen) submit() {
	s.gate.SignIn(s.entry.Text)
}

func (s *signInScreen) Content() fyne.CanvasObject {
	title := canvas.NewText("Welcome", color.NRGBA{R: 128, B: 128, A: 255})
	title.TextSize = 34
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	return container.NewPadded(container.NewVBox(
		layout.NewSpacer(),
		title,
		s.entry,
		s.button,
		layout.NewSpacer(),
	))
}
