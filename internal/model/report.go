package model

import "time"

// Conditions describes the current weather
type Conditions struct {
	Temperature int
	Humidity    int
	SkyText     string // human readable description, e.g. "Partly cloudy"
	Keyword     string // icon lookup key, e.g. "partly-cloudy-day"
}

// DailyForecast is one entry of the provider's daily window
type DailyForecast struct {
	Date    time.Time
	Low     int
	High    int
	SkyText string
	Keyword string
}

// WeatherReport is the provider-neutral result of a weather lookup
type WeatherReport struct {
	LocationName string
	Current      Conditions
	Forecasts    []DailyForecast
}
