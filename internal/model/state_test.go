package model

import "testing"

func TestWeatherState_HumidityText(t *testing.T) {
	tests := []struct {
		humidity string
		expected string
	}{
		{"", ""},
		{"55", "55%"},
		{"100", "100%"},
	}

	for _, test := range tests {
		state := WeatherState{Humidity: test.humidity}
		if result := state.HumidityText(); result != test.expected {
			t.Errorf("HumidityText() with Humidity=%q = %q, expected %q", test.humidity, result, test.expected)
		}
	}
}

func TestHeadlineList_Len(t *testing.T) {
	var empty HeadlineList
	if empty.Len() != 0 {
		t.Errorf("Expected empty list length 0, got %d", empty.Len())
	}

	list := HeadlineList{Titles: []string{"a", "b", "c"}}
	if list.Len() != 3 {
		t.Errorf("Expected length 3, got %d", list.Len())
	}
}
