// Package lunar implements the calendar conversions required by
// occurrence.Converter on top of the 6tail/lunar-go calendar tables.
//
// Leap lunar months are reported as negative month numbers, matching the
// underlying library. A leap month does not exist in every lunar year, so
// converting such a month/day into a year that lacks it fails with
// ErrConversion; the occurrence calculator turns that into its unavailable
// sentinel.
package lunar
