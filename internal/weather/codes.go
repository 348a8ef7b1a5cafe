package weather

// WMO weather interpretation codes as returned by Open-Meteo
var wmoDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns the text for a WMO code, or "Unknown"
func Describe(code int) string {
	if text, ok := wmoDescriptions[code]; ok {
		return text
	}
	return "Unknown"
}

// codeKeyword maps a WMO code to an icon keyword
func codeKeyword(code int, isDay bool) string {
	switch {
	case code == 0 || code == 1:
		if isDay {
			return "clear"
		}
		return "clear-night"
	case code == 2:
		if isDay {
			return "partly-cloudy-day"
		}
		return "partly-cloudy-night"
	case code == 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code == 56 || code == 57 || code == 66 || code == 67 || code == 77:
		return "snow-thin"
	case code >= 51 && code <= 65, code >= 80 && code <= 82:
		return "rain"
	case code >= 71 && code <= 75, code == 85 || code == 86:
		return "snow"
	case code == 95:
		return "thunderstorm"
	case code == 96 || code == 99:
		return "hail"
	}
	return ""
}
