package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"TalkDraw/internal/audio"
	"TalkDraw/internal/config"
)

var qualities = []string{
	audio.QualityMin.String(),
	audio.QualityLow.String(),
	audio.QualityMedium.String(),
	audio.QualityHigh.String(),
	audio.QualityMax.String(),
}

// applySettings returns cfg updated with the values entered in the form.
func applySettings(cfg config.Config, hex string, width float64, quality string) (config.Config, error) {
	col, err := config.ParseColor(hex)
	if err != nil {
		return cfg, err
	}
	q, err := audio.ParseQuality(quality)
	if err != nil {
		return cfg, err
	}
	cfg.LineColor = col
	cfg.LineWidth = cfg.ClampWidth(float32(width))
	cfg.Audio.Quality = q
	return cfg, nil
}

// showSettings edits the defaults used by new drawing sessions and
// recordings. onSave receives the accepted config.
func showSettings(win fyne.Window, cfg config.Config, onSave func(config.Config)) {
	colorEntry := widget.NewEntry()
	colorEntry.SetText(config.FormatColor(cfg.LineColor))
	colorEntry.Validator = func(s string) error {
		_, err := config.ParseColor(s)
		return err
	}

	width := widget.NewSlider(float64(cfg.MinWidth), float64(cfg.MaxWidth))
	width.Step = 1
	width.SetValue(float64(cfg.LineWidth))
	widthLabel := widget.NewLabel(fmt.Sprintf("%.0f", cfg.LineWidth))
	width.OnChanged = func(v float64) { widthLabel.SetText(fmt.Sprintf("%.0f", v)) }

	quality := widget.NewSelect(qualities, nil)
	quality.SetSelected(cfg.Audio.Quality.String())

	items := []*widget.FormItem{
		widget.NewFormItem("Line color", colorEntry),
		widget.NewFormItem("Line width", width),
		widget.NewFormItem("", widthLabel),
		widget.NewFormItem("Audio quality", quality),
	}
	dialog.ShowForm("Settings", "Save", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		updated, err := applySettings(cfg, colorEntry.Text, width.Value, quality.Selected)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		onSave(updated)
	}, win)
}
