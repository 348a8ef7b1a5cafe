package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ytget/smart-mirror/internal/config"
	"github.com/ytget/smart-mirror/internal/icons"
	"github.com/ytget/smart-mirror/internal/model"
)

// runNow replaces fyne.Do so renders happen before Refresh returns
func runNow(fn func()) { fn() }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Location = "Berlin"
	cfg.Intervals.Clock = time.Hour
	cfg.Intervals.Weather = time.Hour
	cfg.Intervals.News = time.Hour
	return cfg
}

func solidPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testResolver(t *testing.T) *icons.Resolver {
	t.Helper()
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	return icons.NewResolver(fstest.MapFS{
		"Sun.png":         {Data: solidPNG(t, white)},
		"PartlySunny.png": {Data: solidPNG(t, white)},
		"Rain.png":        {Data: solidPNG(t, white)},
		"Error.png":       {Data: solidPNG(t, white)},
		"Humidity.png":    {Data: solidPNG(t, white)},
		"Newspaper.png":   {Data: solidPNG(t, white)},
	})
}

// berlinReport has five daily entries; index 2 is today
func berlinReport() *model.WeatherReport {
	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	forecasts := make([]model.DailyForecast, 5)
	for i := range forecasts {
		forecasts[i] = model.DailyForecast{Date: day.AddDate(0, 0, i), Low: 10 + i, High: 20 + i}
	}
	forecasts[2].Low, forecasts[2].High = 15, 25

	return &model.WeatherReport{
		LocationName: "Berlin, Germany",
		Current: model.Conditions{
			Temperature: 20,
			Humidity:    55,
			SkyText:     "Partly cloudy",
			Keyword:     "partly-cloudy-day",
		},
		Forecasts: forecasts,
	}
}
