// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"math"
	"time"
)

// A Unit is a unit of time, used to add amounts to values and to measure the
// amount between two values. The set of units is closed; each value type
// reports which of them it supports via IsSupportedUnit.
type Unit int

// The units known to this package, ordered by duration.
const (
	Nanos Unit = iota + 1
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever

	unitEnd
)

// Durations of the estimated units use the average Gregorian year of
// 365.2425 days.
const secondsPerYear = 31556952

type unitInfo struct {
	name  string
	secs  int64
	nanos int64
}

var units = [...]unitInfo{
	Nanos:     {"Nanos", 0, 1},
	Micros:    {"Micros", 0, 1000},
	Millis:    {"Millis", 0, 1_000_000},
	Seconds:   {"Seconds", 1, 0},
	Minutes:   {"Minutes", 60, 0},
	Hours:     {"Hours", 3600, 0},
	HalfDays:  {"HalfDays", 43200, 0},
	Days:      {"Days", secondsPerDay, 0},
	Weeks:     {"Weeks", 7 * secondsPerDay, 0},
	Months:    {"Months", secondsPerYear / 12, 0},
	Years:     {"Years", secondsPerYear, 0},
	Decades:   {"Decades", secondsPerYear * 10, 0},
	Centuries: {"Centuries", secondsPerYear * 100, 0},
	Millennia: {"Millennia", secondsPerYear * 1000, 0},
	Eras:      {"Eras", secondsPerYear * 1_000_000_000, 0},
	Forever:   {"Forever", math.MaxInt64, 999_999_999},
}

func (u Unit) valid() bool {
	return u > 0 && u < unitEnd
}

// String returns the name of the unit.
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return units[u].name
}

// ParseUnit returns the unit with the given name, as returned by String.
func ParseUnit(s string) (Unit, error) {
	for u := Nanos; u < unitEnd; u++ {
		if units[u].name == s {
			return u, nil
		}
	}
	return 0, invalidValuef("unknown unit %q", s)
}

// DurationSeconds returns the (estimated) duration of the unit as seconds
// and an additional nanosecond adjustment in [0, 1e9).
func (u Unit) DurationSeconds() (seconds, nanos int64) {
	if !u.valid() {
		return 0, 0
	}
	return units[u].secs, units[u].nanos
}

// IsDurationEstimated reports whether the duration of the unit is an
// estimate. This is the case for all units of a day and larger.
func (u Unit) IsDurationEstimated() bool {
	return u >= Days
}

// IsDateBased reports whether the unit is a date unit. Forever is neither
// date- nor time-based.
func (u Unit) IsDateBased() bool {
	return u >= Days && u <= Eras
}

// IsTimeBased reports whether the unit is a time unit.
func (u Unit) IsTimeBased() bool {
	return u >= Nanos && u < Days
}

// truncationNanos returns the duration of u in nanoseconds, for truncating a
// time of day to it. Only units up to one day that divide a day evenly
// qualify.
func (u Unit) truncationNanos() (int64, error) {
	if !u.valid() {
		return 0, unsupportedUnit(u)
	}
	secs, nanos := u.DurationSeconds()
	if secs > secondsPerDay {
		return 0, errorUnitTooLarge(u)
	}
	return checkTruncation(secs*nanosPerSecond+nanos, u)
}

func checkTruncation(dur int64, u fmt.Stringer) (int64, error) {
	if dur <= 0 {
		return 0, invalidValuef("truncation unit %v must be positive", u)
	}
	if dur > nanosPerDay {
		return 0, errorUnitTooLarge(u)
	}
	if nanosPerDay%dur != 0 {
		return 0, unsupportedf("unit %v must divide into a standard day without remainder", u)
	}
	return dur, nil
}

func durationTruncationNanos(d time.Duration) (int64, error) {
	return checkTruncation(int64(d), d)
}

func errorUnitTooLarge(u fmt.Stringer) error {
	return unsupportedf("unit %v is too large to be used for truncation", u)
}
