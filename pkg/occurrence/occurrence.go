package occurrence

import (
	"sort"
	"time"
)

// Calendar identifies the calendar system a recurring date is expressed in.
type Calendar string

const (
	// CalendarSolar marks a date recurring on its Gregorian month and day.
	CalendarSolar Calendar = "solar"
	// CalendarLunar marks a date recurring on its lunar month and day.
	CalendarLunar Calendar = "lunar"
)

// Valid reports whether the calendar is one of the two supported systems.
func (c Calendar) Valid() bool {
	return c == CalendarSolar || c == CalendarLunar
}

// RecurringDate is an anniversary-style date that recurs every year in the
// tagged calendar system. Date is always stored as a Gregorian date; for
// CalendarLunar it is the Gregorian date whose lunar month/day defines the
// recurrence.
type RecurringDate struct {
	Date     time.Time `json:"date"`
	Calendar Calendar  `json:"calendar"`
}

// Occurrence is the next future instant a recurring date recurs, in solar
// terms, plus the whole-day countdown. It is derived and never persisted.
type Occurrence struct {
	NextDate      time.Time `json:"next_date"`
	DaysRemaining int       `json:"days_remaining"`
	Unknown       bool      `json:"unknown,omitempty"`
}

// DueToday reports whether the occurrence falls on the reference day.
// The unavailable sentinel is never due.
func (o Occurrence) DueToday() bool {
	return !o.Unknown && o.DaysRemaining == 0
}

// Unavailable returns the sentinel occurrence used when the next date could
// not be computed. Callers must treat it as "unavailable", not "due today".
func Unavailable() Occurrence {
	return Occurrence{Unknown: true}
}

// SortByCountdown orders items ascending by the countdown of their
// occurrence. Unknown occurrences sort after known ones so unavailable
// entries never masquerade as imminent. The sort is stable: ties keep
// their input order.
func SortByCountdown[T any](items []T, occurrenceOf func(T) Occurrence) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := occurrenceOf(items[i]), occurrenceOf(items[j])
		if a.Unknown != b.Unknown {
			return b.Unknown
		}
		return a.DaysRemaining < b.DaysRemaining
	})
}
