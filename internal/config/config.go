package config

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"github.com/lucasb-eyer/go-colorful"

	"TalkDraw/internal/audio"
)

// AppID scopes preferences and storage for the app.
const AppID = "io.talkdraw.app"

// Preference keys.
const (
	keyLineColor    = "line.color"
	keyLineWidth    = "line.width"
	keySampleRate   = "audio.sample_rate"
	keyAudioQuality = "audio.quality"
	keyFFmpeg       = "audio.ffmpeg"
)

// Config holds the user settings for drawing and recording.
type Config struct {
	LineColor color.NRGBA
	LineWidth float32
	MinWidth  float32
	MaxWidth  float32
	Audio     audio.Config
	FFmpeg    string // recorder binary
}

// Default returns the settings a fresh install starts with.
func Default() Config {
	return Config{
		LineColor: color.NRGBA{B: 255, A: 255},
		LineWidth: 5,
		MinWidth:  1,
		MaxWidth:  50,
		Audio:     audio.DefaultConfig,
		FFmpeg:    "ffmpeg",
	}
}

// Load reads settings from p, falling back to Default for anything missing
// or malformed.
func Load(p fyne.Preferences) Config {
	c := Default()
	if s := p.StringWithFallback(keyLineColor, ""); s != "" {
		col, err := ParseColor(s)
		if err != nil {
			log.Printf("[CONFIG] Ignoring %s: %v", keyLineColor, err)
		} else {
			c.LineColor = col
		}
	}
	c.LineWidth = c.ClampWidth(float32(p.FloatWithFallback(keyLineWidth, float64(c.LineWidth))))
	if rate := p.IntWithFallback(keySampleRate, c.Audio.SampleRate); rate > 0 {
		c.Audio.SampleRate = rate
	}
	if s := p.StringWithFallback(keyAudioQuality, ""); s != "" {
		q, err := audio.ParseQuality(s)
		if err != nil {
			log.Printf("[CONFIG] Ignoring %s: %v", keyAudioQuality, err)
		} else {
			c.Audio.Quality = q
		}
	}
	c.FFmpeg = p.StringWithFallback(keyFFmpeg, c.FFmpeg)
	return c
}

// Save writes c to p.
func (c Config) Save(p fyne.Preferences) {
	p.SetString(keyLineColor, FormatColor(c.LineColor))
	p.SetFloat(keyLineWidth, float64(c.LineWidth))
	p.SetInt(keySampleRate, c.Audio.SampleRate)
	p.SetString(keyAudioQuality, c.Audio.Quality.String())
	p.SetString(keyFFmpeg, c.FFmpeg)
}

// ClampWidth limits w to [MinWidth, MaxWidth].
func (c Config) ClampWidth(w float32) float32 {
	return max(c.MinWidth, min(c.MaxWidth, w))
}

// ParseColor parses a "#rrggbb" or "#rgb" string into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor renders c as "#rrggbb". Alpha is dropped.
func FormatColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
