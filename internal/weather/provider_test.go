package weather

import (
	"testing"

	"github.com/ytget/smart-mirror/internal/model"
)

func TestConvertKelvinToFahrenheit(t *testing.T) {
	tests := []struct {
		kelvin   float64
		expected float64
	}{
		{273, 32.0},
		{373, 212.0},
		{263, 14.0},
	}

	for _, test := range tests {
		if result := ConvertKelvinToFahrenheit(test.kelvin); result != test.expected {
			t.Errorf("ConvertKelvinToFahrenheit(%v) = %v, expected %v", test.kelvin, result, test.expected)
		}
	}
}

func TestUnits(t *testing.T) {
	if Metric.Glyph() != "℃" {
		t.Errorf("Expected metric glyph ℃, got %s", Metric.Glyph())
	}
	if Imperial.Glyph() != "℉" {
		t.Errorf("Expected imperial glyph ℉, got %s", Imperial.Glyph())
	}
	if Metric.String() != "metric" || Imperial.String() != "imperial" {
		t.Errorf("Unexpected unit names %s/%s", Metric, Imperial)
	}
}

func TestToday(t *testing.T) {
	if _, ok := Today(nil); ok {
		t.Error("Expected no forecast for nil report")
	}

	short := &model.WeatherReport{Forecasts: make([]model.DailyForecast, TodayForecastIndex)}
	if _, ok := Today(short); ok {
		t.Error("Expected no forecast for a window shorter than the today index")
	}

	report := &model.WeatherReport{Forecasts: []model.DailyForecast{
		{High: 1}, {High: 2}, {High: 3}, {High: 4},
	}}
	today, ok := Today(report)
	if !ok {
		t.Fatal("Expected a forecast for today")
	}
	if today.High != 3 {
		t.Errorf("Expected entry at index %d (High=3), got High=%d", TodayForecastIndex, today.High)
	}
}

func TestDescribeAndKeyword(t *testing.T) {
	tests := []struct {
		code    int
		isDay   bool
		text    string
		keyword string
	}{
		{0, true, "Clear sky", "clear"},
		{0, false, "Clear sky", "clear-night"},
		{2, false, "Partly cloudy", "partly-cloudy-night"},
		{3, true, "Overcast", "cloudy"},
		{45, true, "Fog", "fog"},
		{57, true, "Dense freezing drizzle", "snow-thin"},
		{63, true, "Moderate rain", "rain"},
		{81, true, "Moderate rain showers", "rain"},
		{75, true, "Heavy snow fall", "snow"},
		{95, true, "Thunderstorm", "thunderstorm"},
		{99, true, "Thunderstorm with heavy hail", "hail"},
		{42, true, "Unknown", ""},
	}

	for _, test := range tests {
		if text := Describe(test.code); text != test.text {
			t.Errorf("Describe(%d) = %q, expected %q", test.code, text, test.text)
		}
		if keyword := codeKeyword(test.code, test.isDay); keyword != test.keyword {
			t.Errorf("codeKeyword(%d, %v) = %q, expected %q", test.code, test.isDay, keyword, test.keyword)
		}
	}
}
