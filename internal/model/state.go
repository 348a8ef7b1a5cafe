package model

import (
	"image"
	"time"
)

// ClockState holds the last rendered clock strings
type ClockState struct {
	Time    string // e.g. "01:05 PM" or "13:05"
	Weekday string // e.g. "Monday"
	Date    string // formatted with the configured date pattern
}

// WeatherState holds what the weather block currently displays
type WeatherState struct {
	Temperature string      // rounded current temperature, no unit
	Humidity    string      // relative humidity in percent, no sign
	MinMax      string      // "low-high" for today
	Icon        image.Image // decoded condition icon, nil until the first fetch
	Location    string      // location name as reported by the provider
	UnitSymbol  string      // "℃" or "℉"
	UpdatedAt   time.Time   // when the state was last replaced
}

// HumidityText returns humidity with a percent sign, or an empty string if unknown
func (ws WeatherState) HumidityText() string {
	if ws.Humidity == "" {
		return ""
	}
	return ws.Humidity + "%"
}

// Headline is a single news entry
type Headline struct {
	Title string
}

// HeadlineList is the ordered set of headlines shown by the news block
type HeadlineList struct {
	Titles    []string
	FetchedAt time.Time
}

// Len returns the number of headlines
func (hl HeadlineList) Len() int {
	return len(hl.Titles)
}
