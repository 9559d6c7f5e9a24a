// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// The conversion between calendar dates and day counts is essentially copied
// from the standard library. See this comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353
// All calculations happen on an unsigned day count starting at an absolute
// zero year far before MinYear, which avoids special cases for negative
// years. The computations are closed-form and never iterate.

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and dates before it will not compute correctly.
	absoluteZeroYear = -292277022399

	// Days from the absolute zero year to 0001-01-01, and from there to
	// 1970-01-01.
	internalToAbsolute = (1 - absoluteZeroYear) * 365.2425
	internalToEpoch    = 1969*365 + 1969/4 - 1969/100 + 1969/400

	// Days from the absolute zero year to 1970-01-01, epoch day 0.
	epochToAbsolute = internalToAbsolute + internalToEpoch

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// The supported range of years.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// Epoch days of MinLocalDate and MaxLocalDate.
const (
	minEpochDay = -365243219162
	maxEpochDay = 365241780471
)

const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	minutesPerDay    = minutesPerHour * hoursPerDay
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
	secondsPerDay    = secondsPerHour * hoursPerDay
	millisPerDay     = secondsPerDay * 1000
	microsPerDay     = secondsPerDay * 1_000_000
	nanosPerMilli    = 1_000_000
	nanosPerSecond   = 1_000_000_000
	nanosPerMinute   = nanosPerSecond * secondsPerMinute
	nanosPerHour     = nanosPerMinute * minutesPerHour
	nanosPerDay      = nanosPerHour * hoursPerDay
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int64{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn returns the number of days in month m of the given year.
func daysIn(m Month, year int64) int {
	if m == February && IsLeapYear(year) {
		return 29
	}
	return int(daysBefore[m] - daysBefore[m-1])
}

// daysInYear returns 365 or 366.
func daysInYear(year int64) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// absDate computes the year, day of year (starting at 0) and when full=true,
// the month and day in which an absolute date occurs.
func absDate(abs uint64, full bool) (year int64, month Month, day int, yday int) {
	d := abs

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int64(y) + absoluteZeroYear
	yday = int(d)

	if !full {
		return
	}

	day = yday
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			month = February
			day = 29
			return
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = Month(day / 31)
	end := int(daysBefore[month+1])
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = int(daysBefore[month])
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}

// daysSinceAbsolute returns the number of days from the absolute zero year to
// the start of the given year. This is basically (year - zeroYear) * 365, but
// accounting for leap days.
func daysSinceAbsolute(year int64) int64 {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	return d
}

// toEpochDay converts a valid date to its epoch day.
func toEpochDay(year int64, month Month, day int) int64 {
	d := daysSinceAbsolute(year)
	d += daysBefore[month-1]
	if IsLeapYear(year) && month >= March {
		d++
	}
	d += int64(day - 1)
	return d - epochToAbsolute
}

// fromEpochDay converts an epoch day into a date. It does not check the
// supported range, which allows formatting instants beyond the year range of
// LocalDate.
func fromEpochDay(epochDay int64) (year int64, month Month, day int) {
	year, month, day, _ = absDate(uint64(epochDay+epochToAbsolute), true)
	return year, month, day
}

// yearDay returns the year and the day of the year, starting at 1.
func yearDay(epochDay int64) (year int64, yday int) {
	year, _, _, yday = absDate(uint64(epochDay+epochToAbsolute), false)
	return year, yday + 1
}
