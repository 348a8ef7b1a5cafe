package ui

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"golang.org/x/text/language"
)

// Localization manages UI text translations and weekday/month names
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	weekdays        map[string][7]string
	shortWeekdays   map[string][7]string
	months          map[string][12]string
	shortMonths     map[string][12]string
}

// Text keys for localization
const (
	KeyAppTitle  = "app_title"
	KeyNewsTitle = "news_title"
)

// supportedLanguages is ordered; the first entry is the fallback for the matcher
var supportedLanguages = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
	language.Portuguese,
	language.Russian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		weekdays:        make(map[string][7]string),
		shortWeekdays:   make(map[string][7]string),
		months:          make(map[string][12]string),
		shortMonths:     make(map[string][12]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage selects the closest supported language for a locale such as
// "fr", "de-AT" or "pt_BR.UTF-8". Empty or unmatched locales select English.
func (l *Localization) SetLanguage(locale string) {
	l.currentLanguage = matchLanguage(locale)
}

func matchLanguage(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" || strings.EqualFold(locale, "C") || strings.EqualFold(locale, "POSIX") {
		return "en"
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	matched, _, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "en"
	}
	base, _ := matched.Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// Format renders t with a strftime pattern. Weekday and month names (%A %a %B %b)
// come from the current language; everything else is handled by strftime.
func (l *Localization) Format(pattern string, t time.Time) string {
	if l.currentLanguage == "en" {
		return strftime.Format(pattern, t)
	}
	return strftime.Format(l.localizePattern(pattern, t), t)
}

// localizePattern replaces name directives with literal, escaped names
func (l *Localization) localizePattern(pattern string, t time.Time) string {
	lang := l.currentLanguage

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}

		i++
		var name string
		switch pattern[i] {
		case 'A':
			name = l.weekdays[lang][t.Weekday()]
		case 'a':
			name = l.shortWeekdays[lang][t.Weekday()]
		case 'B':
			name = l.months[lang][t.Month()-1]
		case 'b', 'h':
			name = l.shortMonths[lang][t.Month()-1]
		default:
			b.WriteByte('%')
			b.WriteByte(pattern[i])
			continue
		}
		b.WriteString(strings.ReplaceAll(name, "%", "%%"))
	}
	return b.String()
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
		"de": "Deutsch",
		"es": "Español",
		"pt": "Português",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{KeyAppTitle: "Smart Mirror", KeyNewsTitle: "News"}
	l.texts["fr"] = map[string]string{KeyAppTitle: "Miroir", KeyNewsTitle: "Actualités"}
	l.texts["de"] = map[string]string{KeyAppTitle: "Spiegel", KeyNewsTitle: "Nachrichten"}
	l.texts["es"] = map[string]string{KeyAppTitle: "Espejo", KeyNewsTitle: "Noticias"}
	l.texts["pt"] = map[string]string{KeyAppTitle: "Espelho", KeyNewsTitle: "Notícias"}
	l.texts["ru"] = map[string]string{KeyAppTitle: "Зеркало", KeyNewsTitle: "Новости"}

	// Sunday first, matching time.Weekday
	l.weekdays["en"] = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	l.weekdays["fr"] = [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	l.weekdays["de"] = [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	l.weekdays["es"] = [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	l.weekdays["pt"] = [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	l.weekdays["ru"] = [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"}

	// Abbreviations follow each language's own convention, not a fixed length
	l.shortWeekdays["en"] = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	l.shortWeekdays["fr"] = [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."}
	l.shortWeekdays["de"] = [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."}
	l.shortWeekdays["es"] = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	l.shortWeekdays["pt"] = [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}
	l.shortWeekdays["ru"] = [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"}

	l.months["en"] = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	l.months["fr"] = [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}
	l.months["de"] = [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
	l.months["es"] = [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
	l.months["pt"] = [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
	l.months["ru"] = [12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"}

	l.shortMonths["en"] = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	l.shortMonths["fr"] = [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."}
	l.shortMonths["de"] = [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."}
	l.shortMonths["es"] = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}
	l.shortMonths["pt"] = [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."}
	l.shortMonths["ru"] = [12]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."}
}
