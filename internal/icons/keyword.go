package icons

import "strings"

// keywordRules are checked in order; the first rule whose fragment appears in the
// condition text wins. More specific phrases come first.
var keywordRules = []struct {
	fragment string
	keyword  string
}{
	{"tornado", "tornado"},
	{"thunder", "thunderstorm"},
	{"storm", "thunderstorm"},
	{"hail", "hail"},
	{"sleet", "snow-thin"},
	{"freezing", "snow-thin"},
	{"snow", "snow"},
	{"blizzard", "snow"},
	{"drizzle", "rain"},
	{"shower", "rain"},
	{"rain", "rain"},
	{"fog", "fog"},
	{"mist", "fog"},
	{"haze", "fog"},
	{"wind", "wind"},
	{"partly", "partly-cloudy-day"},
	{"mainly clear", "partly-cloudy-day"},
	{"overcast", "cloudy"},
	{"cloud", "cloudy"},
	{"sunny", "clear"},
	{"clear", "clear"},
}

// Keyword classifies free condition text such as "Light rain shower" into a
// mapping keyword. Night turns clear and partly cloudy into their night icons.
// Text that matches nothing yields an empty keyword, which resolves to the fallback.
func Keyword(condition string, night bool) string {
	text := strings.ToLower(condition)
	if _, ok := Mapping[text]; ok {
		return text
	}
	for _, rule := range keywordRules {
		if !strings.Contains(text, rule.fragment) {
			continue
		}
		if night {
			switch rule.keyword {
			case "clear":
				return "clear-night"
			case "partly-cloudy-day":
				return "partly-cloudy-night"
			}
		}
		return rule.keyword
	}
	return ""
}
