package ui

import (
	"image"
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// LoadAppIcon loads the window icon from the assets directory
func LoadAppIcon(assetsDir string) (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(filepath.Join(assetsDir, AppIconFile))
}

// newText creates a white canvas text of the given size
func newText(text string, size float32, align fyne.TextAlign) *canvas.Text {
	t := canvas.NewText(text, color.White)
	t.TextSize = size
	t.Alignment = align
	return t
}

// newIcon creates a fixed-size canvas image; img may be nil
func newIcon(img image.Image, size uint) *canvas.Image {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(size), float32(size)))
	return ci
}

// setText returns a UI-thread update replacing the text of t
func setText(t *canvas.Text, text string) func() {
	return func() {
		t.Text = text
		t.Refresh()
	}
}
