// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chrono implements ISO-8601 calendar and timeline arithmetic on
// immutable value types.
//
// The standard library time package models a point in time in a location.
// That is often not what is needed:
//
//   - A calendar date, or a wall-clock time with a fixed offset, is not a point
//     in time in some location. Representing it as a time.Time requires
//     picking an arbitrary clock time or location, with surprising results
//     around daylight savings transitions.
//   - A time.Duration can only represent ~292 years and has no notion of
//     months or years, whose length depends on where they start.
//   - time.Time.AddDate normalizes overflowing days, so adding a month to
//     January 31 yields March 2 or 3, not the end of February.
//
// This package provides the types LocalDate, LocalTime, LocalDateTime,
// Instant, ZoneOffset, OffsetDateTime, OffsetTime, YearMonth, Month and
// Period. All of them use the proleptic Gregorian calendar for years
// -999,999,999 to 999,999,999. Values are never mutated: every operation
// returns a new, validated value or an error. Errors are marked with
// ErrInvalidValue, ErrOutOfRange, ErrOverflow, ErrUnsupported or
// ErrTypeMismatch using github.com/cockroachdb/errors, whose errors.Is
// recognizes the marks. Parse failures are a *ParseError wrapping the mark of
// the validation failure, if any.
//
// No function reads the system clock implicitly. Functions returning the
// current date or time take a Clock.
package chrono

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/mathx"
)

// A LocalDate is a date without a time of day or offset, such as 2007-12-03,
// in the proleptic Gregorian calendar. It is represented as the number of
// days since 1970-01-01, which is also its zero value.
//
// LocalDate values are comparable with ==, which reports whether they denote
// the same date.
type LocalDate struct {
	epochDay int64
}

// The smallest and largest supported LocalDate.
var (
	MinLocalDate = LocalDate{minEpochDay}
	MaxLocalDate = LocalDate{maxEpochDay}
)

// LocalDateOf returns the date with the given year, month and day. Unlike
// time.Date, it does not normalize its arguments: an invalid day of month,
// such as February 29 of a non-leap year, is an error.
func LocalDateOf(year int, month Month, day int) (LocalDate, error) {
	if _, err := Year.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	if _, err := MonthOfYear.checkValid(int64(month)); err != nil {
		return LocalDate{}, err
	}
	if _, err := DayOfMonth.checkValid(int64(day)); err != nil {
		return LocalDate{}, err
	}
	y := int64(year)
	if day > daysIn(month, y) {
		if day == 29 {
			return LocalDate{}, invalidValuef("invalid date 'February 29' as '%d' is not a leap year", year)
		}
		return LocalDate{}, invalidValuef("invalid date '%v %d'", month, day)
	}
	return LocalDate{toEpochDay(y, month, day)}, nil
}

// MustLocalDate is like LocalDateOf, but panics if the date is invalid. It
// simplifies the initialization of global variables and tests.
func MustLocalDate(year int, month Month, day int) LocalDate {
	d, err := LocalDateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// LocalDateOfYearDay returns the date on the given day of the year, starting
// at 1.
func LocalDateOfYearDay(year, dayOfYear int) (LocalDate, error) {
	if _, err := Year.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	if _, err := DayOfYear.checkValid(int64(dayOfYear)); err != nil {
		return LocalDate{}, err
	}
	y := int64(year)
	if dayOfYear == 366 && !IsLeapYear(y) {
		return LocalDate{}, invalidValuef("invalid date 'DayOfYear 366' as '%d' is not a leap year", year)
	}
	return LocalDate{toEpochDay(y, January, 1) + int64(dayOfYear-1)}, nil
}

// LocalDateOfEpochDay returns the date that is the given number of days after
// 1970-01-01.
func LocalDateOfEpochDay(epochDay int64) (LocalDate, error) {
	if _, err := EpochDay.checkValid(epochDay); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{epochDay}, nil
}

// LocalDateOfInstant returns the date of i at the given offset.
func LocalDateOfInstant(i Instant, offset ZoneOffset) (LocalDate, error) {
	local := i.seconds + int64(offset.seconds)
	return dateOfEpochDay(mathx.FloorDiv(local, secondsPerDay))
}

// Today returns the current date of c, at the offset of c.
func Today(c Clock) (LocalDate, error) {
	return LocalDateOfInstant(c.Instant(), c.Offset())
}

// LocalDateFrom extracts the date from t. It fails with ErrTypeMismatch if t
// has no date.
func LocalDateFrom(t TemporalAccessor) (LocalDate, error) {
	switch v := t.(type) {
	case LocalDate:
		return v, nil
	case LocalDateTime:
		return v.date, nil
	case OffsetDateTime:
		return v.dt.date, nil
	}
	if t == nil || !t.IsSupported(EpochDay) {
		return LocalDate{}, typeMismatch("LocalDate", t)
	}
	ed, err := t.GetLong(EpochDay)
	if err != nil {
		return LocalDate{}, errors.Mark(errors.Wrapf(err, "unable to obtain LocalDate from %T", t), ErrTypeMismatch)
	}
	return LocalDateOfEpochDay(ed)
}

// dateOfEpochDay is like LocalDateOfEpochDay, but reports a result outside of
// the supported range as ErrOutOfRange.
func dateOfEpochDay(epochDay int64) (LocalDate, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return LocalDate{}, outOfRangef("epoch day %d is outside of the supported range of dates", epochDay)
	}
	return LocalDate{epochDay}, nil
}

// resolvePreviousValid returns the given date, moving the day back to the end
// of the month if the month is too short.
func resolvePreviousValid(year int64, month Month, day int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, outOfRangef("year %d is outside of the supported range", year)
	}
	day = min(day, daysIn(month, year))
	return LocalDate{toEpochDay(year, month, day)}, nil
}

// ToEpochDay returns the number of days since 1970-01-01.
func (d LocalDate) ToEpochDay() int64 {
	return d.epochDay
}

// abs returns the absolute day of d.
func (d LocalDate) abs() uint64 {
	return uint64(d.epochDay + epochToAbsolute)
}

// Date returns the year, month and day of d.
func (d LocalDate) Date() (year int, month Month, day int) {
	y, month, day, _ := absDate(d.abs(), true)
	return int(y), month, day
}

// Year returns the year of d.
func (d LocalDate) Year() int {
	year, _, _, _ := absDate(d.abs(), false)
	return int(year)
}

// Month returns the month of the year of d.
func (d LocalDate) Month() Month {
	_, month, _ := d.Date()
	return month
}

// Day returns the day of the month of d.
func (d LocalDate) Day() int {
	_, _, day := d.Date()
	return day
}

// YearDay returns the day of the year of d, in the range [1,365] for non-leap
// years, and [1,366] in leap years.
func (d LocalDate) YearDay() int {
	_, _, _, yday := absDate(d.abs(), false)
	return yday + 1
}

// isoWeekday returns the ISO day of the week, from 1 (Monday) to 7 (Sunday).
func (d LocalDate) isoWeekday() int {
	// 1970-01-01 was a Thursday
	return int(mathx.FloorMod(d.epochDay+3, 7)) + 1
}

// Weekday returns the day of the week of d.
func (d LocalDate) Weekday() time.Weekday {
	return time.Weekday(d.isoWeekday() % 7)
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs. Week
// ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to week 52 or
// 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1 of year n+1.
func (d LocalDate) ISOWeek() (year, week int) {
	// The Thursday of the same week determines the year.
	y, yday := yearDay(d.epochDay + int64(4-d.isoWeekday()))
	return int(y), (yday-1)/7 + 1
}

// IsLeapYear reports whether the year of d is a leap year.
func (d LocalDate) IsLeapYear() bool {
	return IsLeapYear(int64(d.Year()))
}

// LengthOfMonth returns the number of days in the month of d.
func (d LocalDate) LengthOfMonth() int {
	year, month, _ := d.Date()
	return daysIn(month, int64(year))
}

// LengthOfYear returns the number of days in the year of d.
func (d LocalDate) LengthOfYear() int {
	return daysInYear(int64(d.Year()))
}

func (d LocalDate) prolepticMonth() int64 {
	year, month, _ := d.Date()
	return int64(year)*12 + int64(month) - 1
}

// IsSupported reports whether f is a date field.
func (d LocalDate) IsSupported(f Field) bool {
	return f.IsDateBased()
}

// IsSupportedUnit reports whether u is a date unit.
func (d LocalDate) IsSupportedUnit(u Unit) bool {
	return u.IsDateBased()
}

// Range returns the range of valid values for f, for the month and year of d.
func (d LocalDate) Range(f Field) (ValueRange, error) {
	if !d.IsSupported(f) {
		return ValueRange{}, unsupportedField(f)
	}
	switch f {
	case DayOfMonth:
		return rangeOf(1, int64(d.LengthOfMonth())), nil
	case DayOfYear:
		return rangeOf(1, int64(d.LengthOfYear())), nil
	case AlignedWeekOfMonth:
		if d.Month() == February && !d.IsLeapYear() {
			return rangeOf(1, 4), nil
		}
		return rangeOf(1, 5), nil
	case YearOfEra:
		if d.Year() <= 0 {
			return rangeOf(1, MaxYear+1), nil
		}
		return rangeOf(1, MaxYear), nil
	}
	return f.Range(), nil
}

// Get returns the value of f as an int. Fields that may not fit into 32 bits
// must be accessed using GetLong.
func (d LocalDate) Get(f Field) (int, error) {
	return getInt(d, f)
}

// GetLong returns the value of f.
func (d LocalDate) GetLong(f Field) (int64, error) {
	year, month, day, yday := absDate(d.abs(), true)
	yday++
	switch f {
	case DayOfWeek:
		return int64(d.isoWeekday()), nil
	case AlignedDayOfWeekInMonth:
		return int64((day-1)%7 + 1), nil
	case AlignedDayOfWeekInYear:
		return int64((yday-1)%7 + 1), nil
	case DayOfMonth:
		return int64(day), nil
	case DayOfYear:
		return int64(yday), nil
	case EpochDay:
		return d.epochDay, nil
	case AlignedWeekOfMonth:
		return int64((day-1)/7 + 1), nil
	case AlignedWeekOfYear:
		return int64((yday-1)/7 + 1), nil
	case MonthOfYear:
		return int64(month), nil
	case ProlepticMonth:
		return year*12 + int64(month) - 1, nil
	case YearOfEra:
		if year >= 1 {
			return year, nil
		}
		return 1 - year, nil
	case Year:
		return year, nil
	case Era:
		if year >= 1 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, unsupportedField(f)
}

// With returns d with the field f set to v. Fields whose range depends on the
// month or year, like DayOfMonth, are validated against d; setting the month
// or year moves the day back to the end of the month if needed.
func (d LocalDate) With(f Field, v int64) (LocalDate, error) {
	if !d.IsSupported(f) {
		return LocalDate{}, unsupportedField(f)
	}
	if _, err := f.checkValid(v); err != nil {
		return LocalDate{}, err
	}
	switch f {
	case DayOfWeek:
		return d.PlusDays(v - int64(d.isoWeekday()))
	case AlignedDayOfWeekInMonth, AlignedDayOfWeekInYear:
		cur, _ := d.GetLong(f)
		return d.PlusDays(v - cur)
	case DayOfMonth:
		return d.WithDay(int(v))
	case DayOfYear:
		return d.WithYearDay(int(v))
	case EpochDay:
		return LocalDate{v}, nil
	case AlignedWeekOfMonth, AlignedWeekOfYear:
		cur, _ := d.GetLong(f)
		return d.PlusWeeks(v - cur)
	case MonthOfYear:
		return d.WithMonth(Month(v))
	case ProlepticMonth:
		return d.PlusMonths(v - d.prolepticMonth())
	case YearOfEra:
		if d.Year() >= 1 {
			return d.WithYear(int(v))
		}
		return d.WithYear(int(1 - v))
	case Year:
		return d.WithYear(int(v))
	case Era:
		if era, _ := d.GetLong(Era); era == v {
			return d, nil
		}
		return d.WithYear(1 - d.Year())
	}
	return LocalDate{}, unsupportedField(f)
}

// WithYear returns d with the year changed. February 29 becomes February 28
// if the new year is not a leap year.
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	if _, err := Year.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	_, month, day := d.Date()
	return resolvePreviousValid(int64(year), month, day)
}

// WithMonth returns d with the month changed. The day is moved back to the
// end of the month if the new month is shorter.
func (d LocalDate) WithMonth(month Month) (LocalDate, error) {
	if _, err := MonthOfYear.checkValid(int64(month)); err != nil {
		return LocalDate{}, err
	}
	year, _, day := d.Date()
	return resolvePreviousValid(int64(year), month, day)
}

// WithDay returns d with the day of the month changed. An invalid day for the
// month of d is an error.
func (d LocalDate) WithDay(day int) (LocalDate, error) {
	year, month, _ := d.Date()
	return LocalDateOf(year, month, day)
}

// WithYearDay returns d with the day of the year changed. An invalid day for
// the year of d is an error.
func (d LocalDate) WithYearDay(dayOfYear int) (LocalDate, error) {
	return LocalDateOfYearDay(d.Year(), dayOfYear)
}

// Plus returns d plus the given amount of u.
func (d LocalDate) Plus(amount int64, u Unit) (LocalDate, error) {
	switch u {
	case Days:
		return d.PlusDays(amount)
	case Weeks:
		return d.PlusWeeks(amount)
	case Months:
		return d.PlusMonths(amount)
	case Years:
		return d.PlusYears(amount)
	case Decades, Centuries, Millennia:
		years, ok := mathx.MulExact(amount, yearsPer(u))
		if !ok {
			return LocalDate{}, overflowf("%d %v overflows the number of years", amount, u)
		}
		return d.PlusYears(years)
	case Eras:
		era, _ := d.GetLong(Era)
		v, ok := mathx.AddExact(era, amount)
		if !ok {
			return LocalDate{}, overflowf("%d %v overflows the era", amount, u)
		}
		return d.With(Era, v)
	}
	return LocalDate{}, unsupportedUnit(u)
}

// Minus returns d minus the given amount of u.
func (d LocalDate) Minus(amount int64, u Unit) (LocalDate, error) {
	return minusAmount(d, amount, func(d LocalDate, n int64) (LocalDate, error) { return d.Plus(n, u) })
}

// yearsPer returns the number of years in one of the multi-year units.
func yearsPer(u Unit) int64 {
	switch u {
	case Decades:
		return 10
	case Centuries:
		return 100
	case Millennia:
		return 1000
	}
	return 1
}

// PlusYears returns d plus the given number of years. February 29 becomes
// February 28 if the resulting year is not a leap year.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	year, month, day := d.Date()
	newYear, ok := mathx.AddExact(int64(year), years)
	if !ok {
		return LocalDate{}, overflowf("%v plus %d years overflows", d, years)
	}
	return resolvePreviousValid(newYear, month, day)
}

// PlusMonths returns d plus the given number of months. The day is moved back
// to the end of the resulting month if that month is too short, so that
// January 31 plus one month is February 28 or 29.
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	_, _, day := d.Date()
	calc, ok := mathx.AddExact(d.prolepticMonth(), months)
	if !ok {
		return LocalDate{}, overflowf("%v plus %d months overflows", d, months)
	}
	return resolvePreviousValid(mathx.FloorDiv(calc, 12), Month(mathx.FloorMod(calc, 12)+1), day)
}

// PlusWeeks returns d plus the given number of weeks.
func (d LocalDate) PlusWeeks(weeks int64) (LocalDate, error) {
	days, ok := mathx.MulExact(weeks, 7)
	if !ok {
		return LocalDate{}, overflowf("%d weeks overflow the number of days", weeks)
	}
	return d.PlusDays(days)
}

// PlusDays returns d plus the given number of days. Unlike months and years,
// days never need adjustment.
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	ed, ok := mathx.AddExact(d.epochDay, days)
	if !ok {
		return LocalDate{}, overflowf("%v plus %d days overflows", d, days)
	}
	return dateOfEpochDay(ed)
}

// MinusYears returns d minus the given number of years.
func (d LocalDate) MinusYears(years int64) (LocalDate, error) {
	return minusAmount(d, years, LocalDate.PlusYears)
}

// MinusMonths returns d minus the given number of months.
func (d LocalDate) MinusMonths(months int64) (LocalDate, error) {
	return minusAmount(d, months, LocalDate.PlusMonths)
}

// MinusWeeks returns d minus the given number of weeks.
func (d LocalDate) MinusWeeks(weeks int64) (LocalDate, error) {
	return minusAmount(d, weeks, LocalDate.PlusWeeks)
}

// MinusDays returns d minus the given number of days.
func (d LocalDate) MinusDays(days int64) (LocalDate, error) {
	return minusAmount(d, days, LocalDate.PlusDays)
}

// PlusPeriod returns d plus p. See AddPeriod.
func (d LocalDate) PlusPeriod(p Period) (LocalDate, error) {
	return AddPeriod(d, p)
}

// MinusPeriod returns d minus p. See SubtractPeriod.
func (d LocalDate) MinusPeriod(p Period) (LocalDate, error) {
	return SubtractPeriod(d, p)
}

// Until returns the number of complete units u from d to the date of end.
// The result is negative if end is before d. Months and larger units only
// count as complete if the day of the month has been reached, so there is
// one month from 2000-01-15 to 2000-02-15, but none to 2000-02-14.
func (d LocalDate) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := LocalDateFrom(end)
	if err != nil {
		return 0, err
	}
	switch u {
	case Days:
		return e.epochDay - d.epochDay, nil
	case Weeks:
		return (e.epochDay - d.epochDay) / 7, nil
	case Months:
		return d.monthsUntil(e), nil
	case Years, Decades, Centuries, Millennia:
		return d.monthsUntil(e) / (12 * yearsPer(u)), nil
	case Eras:
		e1, _ := d.GetLong(Era)
		e2, _ := e.GetLong(Era)
		return e2 - e1, nil
	}
	return 0, unsupportedUnit(u)
}

func (d LocalDate) monthsUntil(end LocalDate) int64 {
	// Pack the month and day so a single truncating division compares both.
	packed1 := d.prolepticMonth()*32 + int64(d.Day())
	packed2 := end.prolepticMonth()*32 + int64(end.Day())
	return (packed2 - packed1) / 32
}

// UntilPeriod returns the period between d and end, as years, months and
// days. The start date is included, the end date is not. The result is
// negative if end is before d; years, months and days then all have the same
// sign.
//
// The whole months are computed first and the remaining days are counted
// from the date that many months after d. Thus from 2012-02-29 to 2014-02-28
// is P1Y11M30D, while from 2012-02-28 to 2014-02-28 is P2Y.
func (d LocalDate) UntilPeriod(end LocalDate) Period {
	totalMonths := end.prolepticMonth() - d.prolepticMonth()
	days := end.Day() - d.Day()
	if totalMonths > 0 && days < 0 {
		totalMonths--
		calc, _ := d.PlusMonths(totalMonths)
		days = int(end.epochDay - calc.epochDay)
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		days -= end.LengthOfMonth()
	}
	return Period{int32(totalMonths / 12), int32(totalMonths % 12), int32(days)}
}

// DatesUntil returns the sequence of dates from d (inclusive) to end
// (exclusive), in steps of one day. It fails if end is before d. The sequence
// is computed lazily and can be iterated any number of times.
func (d LocalDate) DatesUntil(end LocalDate) (iter.Seq[LocalDate], error) {
	if end.epochDay < d.epochDay {
		return nil, invalidValuef("%v < %v", end, d)
	}
	return func(yield func(LocalDate) bool) {
		for ed := d.epochDay; ed < end.epochDay; ed++ {
			if !yield(LocalDate{ed}) {
				return
			}
		}
	}, nil
}

// DatesUntilStep returns the sequence of dates from d (inclusive) to end
// (exclusive), where the n-th date is d plus n times step. The step must not
// be zero, its months and days must not have opposite signs, and its
// direction must lead from d towards end. The sequence is computed lazily and
// can be iterated any number of times.
func (d LocalDate) DatesUntilStep(end LocalDate, step Period) (iter.Seq[LocalDate], error) {
	if step.IsZero() {
		return nil, invalidValuef("step is zero")
	}
	months, days := step.ToTotalMonths(), int64(step.days)
	if (months < 0 && days > 0) || (months > 0 && days < 0) {
		return nil, invalidValuef("period months and days are of opposite sign")
	}
	until := end.epochDay - d.epochDay
	sign := int64(1)
	if months < 0 || days < 0 {
		sign = -1
	}
	if until != 0 && (sign < 0) != (until < 0) {
		if sign < 0 {
			return nil, invalidValuef("%v > %v", end, d)
		}
		return nil, invalidValuef("%v < %v", end, d)
	}
	return func(yield func(LocalDate) bool) {
		for n := int64(0); ; n++ {
			addMonths, ok1 := mathx.MulExact(months, n)
			addDays, ok2 := mathx.MulExact(days, n)
			if !ok1 || !ok2 {
				return
			}
			next, err := d.PlusMonths(addMonths)
			if err == nil {
				next, err = next.PlusDays(addDays)
			}
			if err != nil || next.epochDay*sign >= end.epochDay*sign {
				return
			}
			if !yield(next) {
				return
			}
		}
	}, nil
}

// Compare compares d and o. It returns -1 if d is before o, +1 if it is
// after, and 0 if they are the same date.
func (d LocalDate) Compare(o LocalDate) int {
	return cmp.Compare(d.epochDay, o.epochDay)
}

// IsBefore reports whether d is before o.
func (d LocalDate) IsBefore(o LocalDate) bool {
	return d.epochDay < o.epochDay
}

// IsAfter reports whether d is after o.
func (d LocalDate) IsAfter(o LocalDate) bool {
	return d.epochDay > o.epochDay
}

// Equal reports whether d and o are the same date. It is equivalent to d == o.
func (d LocalDate) Equal(o LocalDate) bool {
	return d == o
}

// AtTime combines d with a time of day.
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{d, t}
}

// AtStartOfDay returns midnight at the start of d.
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{date: d}
}

// AtOffsetTime combines d with a time of day at an offset.
func (d LocalDate) AtOffsetTime(t OffsetTime) OffsetDateTime {
	return OffsetDateTime{LocalDateTime{d, t.time}, t.offset}
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source
// code.
func (d LocalDate) GoString() string {
	year, month, day := d.Date()
	return fmt.Sprintf("chrono.MustLocalDate(%d, %d, %d)", year, month, day)
}

// String returns d in ISO 8601 format, such as 2007-12-03. Years outside of
// 0000-9999 have a sign.
func (d LocalDate) String() string {
	var buf [24]byte
	return string(d.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of d to b.
func (d LocalDate) AppendText(b []byte) []byte {
	year, month, day := fromEpochDay(d.epochDay)
	return appendDate(b, year, month, day)
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format.
func (d LocalDate) MarshalText() ([]byte, error) {
	return d.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format.
func (d *LocalDate) UnmarshalText(b []byte) error {
	v, err := ParseLocalDate(string(b))
	if err == nil {
		*d = v
	}
	return err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] representing the number of days since
// 1970-01-01.
func (d LocalDate) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, d.epochDay)], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *LocalDate) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0:
		return errors.New("encoded date overflows int64")
	case i != len(b):
		return errors.New("extra data after date")
	}
	nd, err := LocalDateOfEpochDay(v)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// minusAmount subtracts amount by adding its negation. math.MinInt64 has no
// negation and is added in two steps.
func minusAmount[T any](t T, amount int64, plus func(T, int64) (T, error)) (T, error) {
	if amount == math.MinInt64 {
		r, err := plus(t, math.MaxInt64)
		if err != nil {
			return r, err
		}
		return plus(r, 1)
	}
	return plus(t, -amount)
}
