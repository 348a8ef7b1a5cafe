package ui

// Package ui contains the Fyne-based mirror dashboard: the clock, weather and news
// components, the window composition with its key bindings, the black mirror theme
// and the localized weekday/month names used by the clock.
