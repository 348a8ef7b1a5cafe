package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/smart-mirror/internal/config"
)

// MirrorTheme draws white text on pure black so the panel disappears behind a two-way mirror
type MirrorTheme struct {
	sizes config.TextSizes
}

// NewMirrorTheme creates the theme using the configured text sizes
func NewMirrorTheme(sizes config.TextSizes) fyne.Theme {
	return &MirrorTheme{sizes: sizes}
}

// Color returns theme colors; the variant is ignored, the mirror is always dark
func (t *MirrorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameSeparator, theme.ColorNameShadow:
		return color.Transparent
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *MirrorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MirrorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, mapping text sizes onto the configured ones
func (t *MirrorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.sizes.Small
	case theme.SizeNameSubHeadingText:
		return t.sizes.Medium
	case theme.SizeNameHeadingText:
		return t.sizes.Large
	case theme.SizeNameScrollBar, theme.SizeNameScrollBarSmall:
		return 0
	}
	return theme.DefaultTheme().Size(name)
}
