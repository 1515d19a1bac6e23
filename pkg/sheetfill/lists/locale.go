package lists

import (
	"fmt"

	"golang.org/x/text/language"
)

var localeTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(localeTags)

var localeLists = []*ReferenceLists{
	{
		Months: NewNamedList("January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"),
		ShortMonths: NewNamedList("Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"),
		Days:      NewNamedList("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"),
		ShortDays: NewNamedList("Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"),
	},
	{
		Months: NewNamedList("Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"),
		ShortMonths: NewNamedList("Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"),
		Days:      NewNamedList("Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"),
		ShortDays: NewNamedList("Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"),
	},
	{
		Months: NewNamedList("janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"),
		ShortMonths: NewNamedList("janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."),
		Days:      NewNamedList("lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"),
		ShortDays: NewNamedList("lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."),
	},
	{
		Months: NewNamedList("enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"),
		ShortMonths: NewNamedList("ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic"),
		Days:      NewNamedList("lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"),
		ShortDays: NewNamedList("lun", "mar", "mié", "jue", "vie", "sáb", "dom"),
	},
}

// Default returns the English reference lists without a custom list.
func Default() *ReferenceLists {
	return localeLists[0]
}

// ForLocale returns the reference lists best matching a BCP 47 locale such
// as "de-AT". Unsupported languages fall back to English.
func ForLocale(locale string) (*ReferenceLists, error) {
	if locale == "" {
		return Default(), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	_, idx, _ := localeMatcher.Match(tag)
	return localeLists[idx], nil
}

// Locales returns the languages with built-in name tables.
func Locales() []string {
	out := make([]string, len(localeTags))
	for i, t := range localeTags {
		out[i] = t.String()
	}
	return out
}
