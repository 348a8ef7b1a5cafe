package icons

// Package icons maps weather condition keywords to image assets and turns those
// assets into resized RGBA images ready for the canvas.
