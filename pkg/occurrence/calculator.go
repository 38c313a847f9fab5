package occurrence

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/remindkit/pkg/logger"
)

// Converter performs conversions between the solar and lunar calendars.
// Implementations must support lookups at least one year in either
// direction from the reference date.
type Converter interface {
	// SolarToLunar returns the lunar month and day a Gregorian date falls on.
	SolarToLunar(date time.Time) (month, day int, err error)

	// LunarToSolar returns the Gregorian date of a lunar month/day in the
	// given lunar year.
	LunarToSolar(year, month, day int) (time.Time, error)
}

// Calculator computes next occurrences for recurring dates.
type Calculator struct {
	converter Converter
	logger    *slog.Logger
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithCalculatorLogger sets the logger used for conversion diagnostics.
func WithCalculatorLogger(l *slog.Logger) CalculatorOption {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCalculator creates a calculator backed by the given calendar converter.
// The converter is only consulted for lunar recurrences; it may be nil when
// every date handled is solar.
func NewCalculator(converter Converter, opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		converter: converter,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Next returns the next future occurrence of the recurring date relative to
// today, in solar terms. A same-day match counts as this year's occurrence
// with a countdown of zero. Lunar conversion failures yield the unavailable
// sentinel rather than an error.
func (c *Calculator) Next(birth RecurringDate, today time.Time) Occurrence {
	day := dateOnly(today)

	if birth.Calendar == CalendarLunar {
		return c.nextLunar(birth.Date, day)
	}
	return nextSolar(birth.Date, day)
}

// nextSolar picks this year's month/day occurrence, or next year's when it
// has already passed.
func nextSolar(birth, today time.Time) Occurrence {
	next := time.Date(today.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}

	return Occurrence{
		NextDate:      next,
		DaysRemaining: daysBetween(today, next),
	}
}

// nextLunar resolves the birth date to its lunar month/day once, then finds
// the first lunar occurrence whose solar conversion is not in the past.
// Lunar years do not map one-to-one onto solar years (leap months shift the
// solar date), so the target-year conversion is delegated entirely to the
// converter.
func (c *Calculator) nextLunar(birth, today time.Time) Occurrence {
	month, day, err := c.converter.SolarToLunar(birth)
	if err != nil {
		c.logConversionFailure(birth, err)
		return Unavailable()
	}

	solar, err := c.converter.LunarToSolar(today.Year(), month, day)
	if err != nil {
		c.logConversionFailure(birth, err)
		return Unavailable()
	}

	next := dateOnly(solar)
	if next.Before(today) {
		solar, err = c.converter.LunarToSolar(today.Year()+1, month, day)
		if err != nil {
			c.logConversionFailure(birth, err)
			return Unavailable()
		}
		next = dateOnly(solar)
	}

	return Occurrence{
		NextDate:      next,
		DaysRemaining: daysBetween(today, next),
	}
}

func (c *Calculator) logConversionFailure(birth time.Time, err error) {
	c.logger.LogAttrs(context.Background(), slog.LevelWarn, "Lunar conversion failed, occurrence unavailable",
		slog.String("birth_date", birth.Format(time.DateOnly)),
		logger.Error(err),
	)
}

// dateOnly normalizes a timestamp to midnight UTC so occurrence arithmetic
// works at day granularity regardless of the caller's location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
