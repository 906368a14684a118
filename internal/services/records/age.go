package records

import (
	"strconv"
	"time"

	"prontuario/internal/model"
)

// AgeUnknown is the display sentinel for a birth date that does not parse
const AgeUnknown = "N/D"

// Age returns the age in full years at today for an ISO birth date. The
// year difference is decremented when today's (month, day) falls before the
// birth date's (month, day).
func Age(birthDate string, today time.Time) (int, error) {
	birth, err := time.Parse(model.DateLayout, birthDate)
	if err != nil {
		return 0, err
	}

	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years, nil
}

// AgeLabel formats the age for display, with AgeUnknown for an unparseable
// birth date
func AgeLabel(birthDate string, today time.Time) string {
	years, err := Age(birthDate, today)
	if err != nil {
		return AgeUnknown
	}
	return strconv.Itoa(years)
}
