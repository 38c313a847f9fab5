package lunar

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// Converter converts between Gregorian and Chinese lunar dates.
// It is stateless and safe for concurrent use.
type Converter struct{}

// NewConverter creates a lunar calendar converter.
func NewConverter() *Converter {
	return &Converter{}
}

// SolarToLunar returns the lunar month and day the Gregorian date falls on.
// Leap months are negative.
func (Converter) SolarToLunar(date time.Time) (month, day int, err error) {
	defer recoverConversion(&err)

	l := calendar.NewSolarFromYmd(date.Year(), int(date.Month()), date.Day()).GetLunar()
	return l.GetMonth(), l.GetDay(), nil
}

// LunarToSolar returns the Gregorian date of the given lunar year/month/day
// at midnight UTC.
func (Converter) LunarToSolar(year, month, day int) (date time.Time, err error) {
	defer recoverConversion(&err)

	s := calendar.NewLunarFromYmd(year, month, day).GetSolar()
	return time.Date(s.GetYear(), time.Month(s.GetMonth()), s.GetDay(), 0, 0, 0, 0, time.UTC), nil
}

// recoverConversion maps the library's panics on impossible dates to
// ErrConversion so callers get an ordinary error to branch on.
func recoverConversion(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrConversion, r)
	}
}
