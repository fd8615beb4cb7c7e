package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"TalkDraw/internal/config"
)

func TestRecorderBinary(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "ffmpeg", recorderBinary(cfg, ""))
	assert.Equal(t, "/opt/ffmpeg", recorderBinary(cfg, "/opt/ffmpeg"))
}

func TestRecorderBinary_FlagNotSaved(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.Load(a.Preferences())
	assert.Equal(t, "/tmp/ffmpeg", recorderBinary(cfg, "/tmp/ffmpeg"))

	cfg.LineWidth = 9
	cfg.Save(a.Preferences())
	saved := config.Load(a.Preferences())
	assert.Equal(t, "ffmpeg", saved.FFmpeg)
	assert.Equal(t, float32(9), saved.LineWidth)
}
