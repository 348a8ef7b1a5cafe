package weather

import (
	"context"

	"github.com/ytget/smart-mirror/internal/model"
)

// Units selects the unit system a provider reports in
type Units int

const (
	Metric Units = iota
	Imperial
)

// String returns the unit system name
func (u Units) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Glyph returns the temperature sign shown next to the value
func (u Units) Glyph() string {
	if u == Imperial {
		return "℉"
	}
	return "℃"
}

// TodayForecastIndex is the position of the current day in a report's forecast
// window. Client asks for two past days, so the window is [day-2, day-1, today, ...].
const TodayForecastIndex = 2

// Provider looks up weather for a free-text location
type Provider interface {
	Find(ctx context.Context, location string) (*model.WeatherReport, error)
	Close() error
}

// Today returns the forecast entry for the current day
func Today(report *model.WeatherReport) (model.DailyForecast, bool) {
	if report == nil || len(report.Forecasts) <= TodayForecastIndex {
		return model.DailyForecast{}, false
	}
	return report.Forecasts[TodayForecastIndex], true
}

// ConvertKelvinToFahrenheit converts using 273 as the freezing point, so 273 K is exactly 32 ℉
func ConvertKelvinToFahrenheit(kelvin float64) float64 {
	return 1.8*(kelvin-273) + 32
}
