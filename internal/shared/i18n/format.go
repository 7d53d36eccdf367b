package i18n

import (
	"fmt"
	"time"
)

var monthNames = map[Language][12]string{
	LanguageES: {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	LanguageEN: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// FormatDate renders a YYYY-MM-DD calendar date as a display string:
// "15 de enero, 2026" for Spanish, "January 15, 2026" for English.
// The date is treated as local midnight so no timezone shift can move it
// across a day boundary. Malformed input is returned unchanged.
func FormatDate(dateString string, lang Language) string {
	date, err := time.ParseInLocation("2006-01-02", dateString, time.Local)
	if err != nil {
		return dateString
	}

	lang = Parse(string(lang))
	month := monthNames[lang][date.Month()-1]

	if lang.IsSpanish() {
		return fmt.Sprintf("%d de %s, %d", date.Day(), month, date.Year())
	}
	return fmt.Sprintf("%s %d, %d", month, date.Day(), date.Year())
}

// FormatTime converts a 24-hour HH:MM string to a zero-padded 12-hour
// display string with an AM/PM suffix, e.g. "15:30" becomes "03:30 PM".
// Hours 0 and 12 both display as "12". Malformed input is returned unchanged.
func FormatTime(timeString string) string {
	parsed, err := time.Parse("15:04", timeString)
	if err != nil {
		return timeString
	}

	hour := parsed.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour, parsed.Minute(), period)
}
