package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2/app"

	"TalkDraw/internal/audio"
	"TalkDraw/internal/config"
	"TalkDraw/internal/state"
	"TalkDraw/internal/ui"
)

func main() {
	verbose := flag.Bool("v", false, "log every canvas operation")
	ffmpeg := flag.String("ffmpeg", "", "ffmpeg binary used for recording (overrides settings)")
	flag.Parse()

	state.Verbose = *verbose

	a := app.NewWithID(config.AppID)
	cfg := config.Load(a.Preferences())
	bin := recorderBinary(cfg, *ffmpeg)
	log.Printf("Starting TalkDraw (recorder: %s)", bin)
	ui.RunApp(a, cfg, audio.NewFFmpegRecorder(bin))
}

// recorderBinary picks the ffmpeg to run for this launch. The flag applies to
// this run only and never reaches the saved settings.
func recorderBinary(cfg config.Config, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.FFmpeg
}
