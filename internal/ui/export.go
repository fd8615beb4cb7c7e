package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"TalkDraw/internal/export"
	"TalkDraw/internal/state"
)

func showExportDialog(win fyne.Window, c *state.Canvas, status *widget.Label) {
	paths := c.Render()
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return // cancelled
		}
		if err := saveDrawing(w, w.URI().Extension(), paths, status); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName("drawing.pdf")
	d.SetFilter(storage.NewExtensionFileFilter(export.Extensions))
	d.Show()
}

// saveDrawing encodes paths by extension, defaulting to PDF, and closes w.
func saveDrawing(w io.WriteCloser, ext string, paths []state.Path, status *widget.Label) error {
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()
	if ext == "" {
		ext = ".pdf"
	}
	if err := export.Write(w, ext, paths); err != nil {
		log.Printf("[EXPORT] Failed: %v", err)
		status.SetText("Export failed")
		return err
	}
	strokes := 0
	for _, p := range paths {
		if len(p.Points) > 0 {
			strokes++
		}
	}
	status.SetText(fmt.Sprintf("Exported %d strokes", strokes))
	return nil
}
