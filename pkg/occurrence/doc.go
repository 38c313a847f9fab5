// Package occurrence computes the next future occurrence of a recurring
// date and the countdown to it in whole days.
//
// A recurring date is tagged with the calendar system it recurs in: solar
// (Gregorian) or lunar. Solar recurrences are computed directly from the
// stored month and day. Lunar recurrences delegate calendar conversion to
// a Converter, so the calculator stays independent of any particular
// lunar-calendar implementation.
//
// All results are expressed in solar terms. Occurrences are derived values:
// they are recomputed on every call relative to the supplied "today" and
// are never persisted.
//
// # Basic Usage
//
//	calc := occurrence.NewCalculator(lunar.NewConverter())
//
//	occ := calc.Next(occurrence.RecurringDate{
//	    Date:     birthDate,
//	    Calendar: occurrence.CalendarLunar,
//	}, time.Now())
//
//	if occ.Unknown {
//	    // conversion was not possible; treat as unavailable, not "due today"
//	}
//
// # Failure Policy
//
// When the lunar conversion fails (for example a leap-month date that does
// not exist in the target year), Next returns a sentinel occurrence with
// Unknown set and DaysRemaining zero instead of propagating the error.
// Callers listing many recurring dates keep working when a single entry is
// unconvertible.
package occurrence
