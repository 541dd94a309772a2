package forecast

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// supportedLocales pairs each matchable language with the monday locale that
// provides its weekday names. The first entry is the fallback.
var supportedLocales = []struct {
	tag    language.Tag
	locale monday.Locale
}{
	{language.English, monday.LocaleEnUS},
	{language.German, monday.LocaleDeDE},
	{language.Spanish, monday.LocaleEsES},
	{language.French, monday.LocaleFrFR},
	{language.Italian, monday.LocaleItIT},
	{language.Dutch, monday.LocaleNlNL},
	{language.Portuguese, monday.LocalePtPT},
	{language.BrazilianPortuguese, monday.LocalePtBR},
	{language.Russian, monday.LocaleRuRU},
	{language.Finnish, monday.LocaleFiFI},
	{language.Swedish, monday.LocaleSvSE},
	{language.Danish, monday.LocaleDaDK},
	{language.Polish, monday.LocalePlPL},
	{language.Japanese, monday.LocaleJaJP},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// WeekdayNamer names weekdays in one locale. The zero value uses English.
type WeekdayNamer struct {
	locale monday.Locale
}

// NewWeekdayNamer matches a POSIX or BCP 47 locale string ("de_DE.UTF-8", "fr-CA")
// against the supported locales. Unknown locales get English names.
func NewWeekdayNamer(locale string) WeekdayNamer {
	_, index := language.MatchStrings(localeMatcher, normalizeLocale(locale))
	if index < 0 || index >= len(supportedLocales) {
		index = 0
	}
	return WeekdayNamer{locale: supportedLocales[index].locale}
}

// Name returns the weekday name of t
func (w WeekdayNamer) Name(t time.Time) string {
	locale := w.locale
	if locale == "" {
		locale = supportedLocales[0].locale
	}
	return monday.Format(t, "Monday", locale)
}

// HostLocale returns the locale the host uses for dates, following the POSIX
// precedence LC_ALL > LC_TIME > LANG.
func HostLocale(lookup func(string) (string, bool)) string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return ""
}

func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// DayLabel returns "Today", "Tomorrow" or the weekday name of today+offset days
func (w WeekdayNamer) DayLabel(today time.Time, offset int) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return w.Name(today.AddDate(0, 0, offset))
	}
}
