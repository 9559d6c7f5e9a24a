// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// A Field is a component of a date or time, such as the month of the year or
// the minute of the hour. The set of fields is closed; each value type
// reports which of them it supports via IsSupported.
type Field int

// The fields known to this package.
const (
	NanoOfSecond Field = iota + 1
	NanoOfDay
	MicroOfSecond
	MicroOfDay
	MilliOfSecond
	MilliOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfAmPm
	ClockHourOfAmPm
	HourOfDay
	ClockHourOfDay
	AmPmOfDay
	DayOfWeek
	AlignedDayOfWeekInMonth
	AlignedDayOfWeekInYear
	DayOfMonth
	DayOfYear
	EpochDay
	AlignedWeekOfMonth
	AlignedWeekOfYear
	MonthOfYear
	ProlepticMonth
	YearOfEra
	Year
	Era
	InstantSeconds
	OffsetSeconds

	fieldEnd
)

type fieldInfo struct {
	name  string
	base  Unit
	rng   Unit
	valid ValueRange
}

var fields = [...]fieldInfo{
	NanoOfSecond:            {"NanoOfSecond", Nanos, Seconds, rangeOf(0, 999_999_999)},
	NanoOfDay:               {"NanoOfDay", Nanos, Days, rangeOf(0, nanosPerDay-1)},
	MicroOfSecond:           {"MicroOfSecond", Micros, Seconds, rangeOf(0, 999_999)},
	MicroOfDay:              {"MicroOfDay", Micros, Days, rangeOf(0, nanosPerDay/1000-1)},
	MilliOfSecond:           {"MilliOfSecond", Millis, Seconds, rangeOf(0, 999)},
	MilliOfDay:              {"MilliOfDay", Millis, Days, rangeOf(0, nanosPerDay/1_000_000-1)},
	SecondOfMinute:          {"SecondOfMinute", Seconds, Minutes, rangeOf(0, 59)},
	SecondOfDay:             {"SecondOfDay", Seconds, Days, rangeOf(0, secondsPerDay-1)},
	MinuteOfHour:            {"MinuteOfHour", Minutes, Hours, rangeOf(0, 59)},
	MinuteOfDay:             {"MinuteOfDay", Minutes, Days, rangeOf(0, 24*60-1)},
	HourOfAmPm:              {"HourOfAmPm", Hours, HalfDays, rangeOf(0, 11)},
	ClockHourOfAmPm:         {"ClockHourOfAmPm", Hours, HalfDays, rangeOf(1, 12)},
	HourOfDay:               {"HourOfDay", Hours, Days, rangeOf(0, 23)},
	ClockHourOfDay:          {"ClockHourOfDay", Hours, Days, rangeOf(1, 24)},
	AmPmOfDay:               {"AmPmOfDay", HalfDays, Days, rangeOf(0, 1)},
	DayOfWeek:               {"DayOfWeek", Days, Weeks, rangeOf(1, 7)},
	AlignedDayOfWeekInMonth: {"AlignedDayOfWeekInMonth", Days, Weeks, rangeOf(1, 7)},
	AlignedDayOfWeekInYear:  {"AlignedDayOfWeekInYear", Days, Weeks, rangeOf(1, 7)},
	DayOfMonth:              {"DayOfMonth", Days, Months, ValueRange{1, 1, 28, 31}},
	DayOfYear:               {"DayOfYear", Days, Years, ValueRange{1, 1, 365, 366}},
	EpochDay:                {"EpochDay", Days, Forever, rangeOf(minEpochDay, maxEpochDay)},
	AlignedWeekOfMonth:      {"AlignedWeekOfMonth", Weeks, Months, ValueRange{1, 1, 4, 5}},
	AlignedWeekOfYear:       {"AlignedWeekOfYear", Weeks, Years, rangeOf(1, 53)},
	MonthOfYear:             {"MonthOfYear", Months, Years, rangeOf(1, 12)},
	ProlepticMonth:          {"ProlepticMonth", Months, Forever, rangeOf(MinYear*12, MaxYear*12+11)},
	YearOfEra:               {"YearOfEra", Years, Eras, ValueRange{1, 1, MaxYear, MaxYear + 1}},
	Year:                    {"Year", Years, Forever, rangeOf(MinYear, MaxYear)},
	Era:                     {"Era", Eras, Forever, rangeOf(0, 1)},
	InstantSeconds:          {"InstantSeconds", Seconds, Forever, rangeOf(math.MinInt64, math.MaxInt64)},
	OffsetSeconds:           {"OffsetSeconds", Seconds, Forever, rangeOf(-maxOffsetSeconds, maxOffsetSeconds)},
}

func (f Field) valid() bool {
	return f > 0 && f < fieldEnd
}

// String returns the name of the field.
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fields[f].name
}

// BaseUnit returns the unit the field is measured in.
func (f Field) BaseUnit() Unit {
	if !f.valid() {
		return 0
	}
	return fields[f].base
}

// RangeUnit returns the unit the field is bound by.
func (f Field) RangeUnit() Unit {
	if !f.valid() {
		return 0
	}
	return fields[f].rng
}

// Range returns the range of valid values of the field, independent of any
// particular date or time. Use the Range method of a value type to get the
// range valid for that value, such as the length of a specific month.
func (f Field) Range() ValueRange {
	if !f.valid() {
		return ValueRange{}
	}
	return fields[f].valid
}

// IsDateBased reports whether the field is a component of a date.
func (f Field) IsDateBased() bool {
	return f >= DayOfWeek && f <= Era
}

// IsTimeBased reports whether the field is a component of a time of day.
func (f Field) IsTimeBased() bool {
	return f >= NanoOfSecond && f <= AmPmOfDay
}

// checkValid returns an ErrInvalidValue if v is outside the field's range.
func (f Field) checkValid(v int64) (int64, error) {
	return f.Range().checkValid(v, f)
}

// A ValueRange is the range of valid values of a field. The minimum and
// maximum may vary between values; for example the day of month has a
// smallest maximum of 28 and a largest maximum of 31.
type ValueRange struct {
	min, largestMin, smallestMax, max int64
}

func rangeOf(min, max int64) ValueRange {
	return ValueRange{min, min, max, max}
}

// NewValueRange returns the range with the given bounds. It panics unless
// min <= largestMin <= smallestMax <= max.
func NewValueRange(min, largestMin, smallestMax, max int64) ValueRange {
	if min > largestMin || largestMin > smallestMax || smallestMax > max {
		panic(errors.AssertionFailedf("invalid value range %d/%d - %d/%d", min, largestMin, smallestMax, max))
	}
	return ValueRange{min, largestMin, smallestMax, max}
}

// Min returns the smallest possible minimum.
func (r ValueRange) Min() int64 { return r.min }

// LargestMin returns the largest possible minimum.
func (r ValueRange) LargestMin() int64 { return r.largestMin }

// SmallestMax returns the smallest possible maximum.
func (r ValueRange) SmallestMax() int64 { return r.smallestMax }

// Max returns the largest possible maximum.
func (r ValueRange) Max() int64 { return r.max }

// IsFixed reports whether the minimum and maximum do not vary.
func (r ValueRange) IsFixed() bool {
	return r.min == r.largestMin && r.smallestMax == r.max
}

// IsIntValue reports whether all values in the range fit into an int32.
func (r ValueRange) IsIntValue() bool {
	return r.min >= math.MinInt32 && r.max <= math.MaxInt32
}

// IsValidValue reports whether v lies within the range.
func (r ValueRange) IsValidValue(v int64) bool {
	return v >= r.min && v <= r.max
}

func (r ValueRange) checkValid(v int64, f Field) (int64, error) {
	if !r.IsValidValue(v) {
		return 0, invalidValuef("invalid value for %s (valid values %v): %d", f, r, v)
	}
	return v, nil
}

// String returns the range in the form "1 - 28/31".
func (r ValueRange) String() string {
	s := fmt.Sprint(r.min)
	if r.min != r.largestMin {
		s += fmt.Sprintf("/%d", r.largestMin)
	}
	s += fmt.Sprintf(" - %d", r.smallestMax)
	if r.smallestMax != r.max {
		s += fmt.Sprintf("/%d", r.max)
	}
	return s
}

// TemporalAccessor is implemented by every value type of this package. It is
// the boundary used to convert between types, for example to compute the
// number of days between a LocalDate and an OffsetDateTime.
type TemporalAccessor interface {
	// IsSupported reports whether the value can answer GetLong for f.
	IsSupported(f Field) bool
	// GetLong returns the value of f. It fails with ErrUnsupported if f is
	// not supported.
	GetLong(f Field) (int64, error)
}

// Temporal is implemented by the value types that support unit-based
// arithmetic. T is the implementing type itself.
type Temporal[T any] interface {
	TemporalAccessor
	IsSupportedUnit(u Unit) bool
	Plus(amount int64, u Unit) (T, error)
	Minus(amount int64, u Unit) (T, error)
	Until(end TemporalAccessor, u Unit) (int64, error)
}

// getInt implements the Get method of the value types in terms of GetLong:
// fields whose range does not fit into an int32 must be accessed with
// GetLong.
func getInt(t TemporalAccessor, f Field) (int, error) {
	if t.IsSupported(f) && !f.Range().IsIntValue() {
		return 0, errors.Mark(errors.Newf("invalid field %s for Get, use GetLong instead", f), ErrUnsupported)
	}
	v, err := t.GetLong(f)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
