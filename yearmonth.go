// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/mathx"
)

// A YearMonth is a month of a specific year, such as 2007-12. It is
// represented as the number of months since 1970-01, which is also its zero
// value.
//
// YearMonth values are comparable with ==.
type YearMonth struct {
	epochMonth int64
}

// 1970-01 as a proleptic month.
const epochMonthOffset = 1970 * 12

// YearMonthOf returns the given month of the given year.
func YearMonthOf(year int, month Month) (YearMonth, error) {
	if _, err := Year.checkValid(int64(year)); err != nil {
		return YearMonth{}, err
	}
	if _, err := MonthOfYear.checkValid(int64(month)); err != nil {
		return YearMonth{}, err
	}
	return yearMonthOf(int64(year)*12 + int64(month) - 1), nil
}

// MustYearMonth is like YearMonthOf, but panics on error.
func MustYearMonth(year int, month Month) YearMonth {
	ym, err := YearMonthOf(year, month)
	if err != nil {
		panic(err)
	}
	return ym
}

func yearMonthOf(prolepticMonth int64) YearMonth {
	return YearMonth{prolepticMonth - epochMonthOffset}
}

// YearMonthNow returns the current month of c, at the offset of c.
func YearMonthNow(c Clock) (YearMonth, error) {
	d, err := Today(c)
	if err != nil {
		return YearMonth{}, err
	}
	return d.YearMonth(), nil
}

// YearMonthFrom extracts the year and month from t.
func YearMonthFrom(t TemporalAccessor) (YearMonth, error) {
	if ym, ok := t.(YearMonth); ok {
		return ym, nil
	}
	if t == nil || !t.IsSupported(ProlepticMonth) {
		return YearMonth{}, typeMismatch("YearMonth", t)
	}
	pm, err := t.GetLong(ProlepticMonth)
	if err != nil {
		return YearMonth{}, errors.Mark(errors.Wrapf(err, "unable to obtain YearMonth from %T", t), ErrTypeMismatch)
	}
	if _, err := ProlepticMonth.checkValid(pm); err != nil {
		return YearMonth{}, err
	}
	return yearMonthOf(pm), nil
}

// YearMonth returns the month of d.
func (d LocalDate) YearMonth() YearMonth {
	return yearMonthOf(d.prolepticMonth())
}

func (ym YearMonth) prolepticMonth() int64 {
	return ym.epochMonth + epochMonthOffset
}

// Year returns the year of ym.
func (ym YearMonth) Year() int {
	return int(mathx.FloorDiv(ym.prolepticMonth(), 12))
}

// Month returns the month of the year of ym.
func (ym YearMonth) Month() Month {
	return Month(mathx.FloorMod(ym.prolepticMonth(), 12) + 1)
}

// IsLeapYear reports whether the year of ym is a leap year.
func (ym YearMonth) IsLeapYear() bool {
	return IsLeapYear(int64(ym.Year()))
}

// LengthOfMonth returns the number of days in ym.
func (ym YearMonth) LengthOfMonth() int {
	return daysIn(ym.Month(), int64(ym.Year()))
}

// LengthOfYear returns the number of days in the year of ym.
func (ym YearMonth) LengthOfYear() int {
	return daysInYear(int64(ym.Year()))
}

// IsValidDay reports whether day is a valid day of ym.
func (ym YearMonth) IsValidDay(day int) bool {
	return day >= 1 && day <= ym.LengthOfMonth()
}

// AtDay returns the given day of ym.
func (ym YearMonth) AtDay(day int) (LocalDate, error) {
	return LocalDateOf(ym.Year(), ym.Month(), day)
}

// AtEndOfMonth returns the last day of ym.
func (ym YearMonth) AtEndOfMonth() LocalDate {
	year, month := int64(ym.Year()), ym.Month()
	return LocalDate{toEpochDay(year, month, daysIn(month, year))}
}

// IsSupported reports whether f is MonthOfYear, ProlepticMonth, YearOfEra,
// Year or Era.
func (ym YearMonth) IsSupported(f Field) bool {
	switch f {
	case MonthOfYear, ProlepticMonth, YearOfEra, Year, Era:
		return true
	}
	return false
}

// IsSupportedUnit reports whether u is Months or a larger date unit.
func (ym YearMonth) IsSupportedUnit(u Unit) bool {
	return u >= Months && u <= Eras
}

// Range returns the range of valid values for f.
func (ym YearMonth) Range(f Field) (ValueRange, error) {
	if !ym.IsSupported(f) {
		return ValueRange{}, unsupportedField(f)
	}
	if f == YearOfEra {
		if ym.Year() <= 0 {
			return rangeOf(1, MaxYear+1), nil
		}
		return rangeOf(1, MaxYear), nil
	}
	return f.Range(), nil
}

// Get returns the value of f as an int.
func (ym YearMonth) Get(f Field) (int, error) {
	return getInt(ym, f)
}

// GetLong returns the value of f.
func (ym YearMonth) GetLong(f Field) (int64, error) {
	year := int64(ym.Year())
	switch f {
	case MonthOfYear:
		return int64(ym.Month()), nil
	case ProlepticMonth:
		return ym.prolepticMonth(), nil
	case YearOfEra:
		if year < 1 {
			return 1 - year, nil
		}
		return year, nil
	case Year:
		return year, nil
	case Era:
		if year < 1 {
			return 0, nil
		}
		return 1, nil
	}
	return 0, unsupportedField(f)
}

// With returns ym with the field f set to v.
func (ym YearMonth) With(f Field, v int64) (YearMonth, error) {
	if !ym.IsSupported(f) {
		return YearMonth{}, unsupportedField(f)
	}
	if _, err := f.checkValid(v); err != nil {
		return YearMonth{}, err
	}
	switch f {
	case MonthOfYear:
		return ym.WithMonth(Month(v))
	case ProlepticMonth:
		return yearMonthOf(v), nil
	case YearOfEra:
		if ym.Year() < 1 {
			v = 1 - v
		}
		return ym.WithYear(int(v))
	case Year:
		return ym.WithYear(int(v))
	case Era:
		if era, _ := ym.GetLong(Era); era == v {
			return ym, nil
		}
		return ym.WithYear(1 - ym.Year())
	}
	return YearMonth{}, unsupportedField(f)
}

// WithYear returns ym with the year changed.
func (ym YearMonth) WithYear(year int) (YearMonth, error) {
	return YearMonthOf(year, ym.Month())
}

// WithMonth returns ym with the month changed.
func (ym YearMonth) WithMonth(month Month) (YearMonth, error) {
	return YearMonthOf(ym.Year(), month)
}

// Plus returns ym plus the given amount of u.
func (ym YearMonth) Plus(amount int64, u Unit) (YearMonth, error) {
	switch u {
	case Months:
		return ym.PlusMonths(amount)
	case Years:
		return ym.PlusYears(amount)
	case Decades, Centuries, Millennia:
		years, ok := mathx.MulExact(amount, yearsPer(u))
		if !ok {
			return YearMonth{}, overflowf("%d %v overflows the number of years", amount, u)
		}
		return ym.PlusYears(years)
	case Eras:
		era, _ := ym.GetLong(Era)
		v, ok := mathx.AddExact(era, amount)
		if !ok {
			return YearMonth{}, overflowf("%d %v overflows the era", amount, u)
		}
		return ym.With(Era, v)
	}
	return YearMonth{}, unsupportedUnit(u)
}

// Minus returns ym minus the given amount of u.
func (ym YearMonth) Minus(amount int64, u Unit) (YearMonth, error) {
	return minusAmount(ym, amount, func(ym YearMonth, n int64) (YearMonth, error) { return ym.Plus(n, u) })
}

// PlusYears returns ym plus the given number of years.
func (ym YearMonth) PlusYears(years int64) (YearMonth, error) {
	months, ok := mathx.MulExact(years, 12)
	if !ok {
		return YearMonth{}, overflowf("%v plus %d years overflows", ym, years)
	}
	return ym.PlusMonths(months)
}

// PlusMonths returns ym plus the given number of months.
func (ym YearMonth) PlusMonths(months int64) (YearMonth, error) {
	if months == 0 {
		return ym, nil
	}
	pm, ok := mathx.AddExact(ym.prolepticMonth(), months)
	if !ok {
		return YearMonth{}, overflowf("%v plus %d months overflows", ym, months)
	}
	if !ProlepticMonth.Range().IsValidValue(pm) {
		return YearMonth{}, outOfRangef("%v plus %d months is outside of the supported range", ym, months)
	}
	return yearMonthOf(pm), nil
}

// MinusYears returns ym minus the given number of years.
func (ym YearMonth) MinusYears(years int64) (YearMonth, error) {
	return minusAmount(ym, years, YearMonth.PlusYears)
}

// MinusMonths returns ym minus the given number of months.
func (ym YearMonth) MinusMonths(months int64) (YearMonth, error) {
	return minusAmount(ym, months, YearMonth.PlusMonths)
}

// PlusPeriod returns ym plus p. The days of p must be zero.
func (ym YearMonth) PlusPeriod(p Period) (YearMonth, error) {
	return AddPeriod(ym, p)
}

// Until returns the number of complete units u from ym to end.
func (ym YearMonth) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := YearMonthFrom(end)
	if err != nil {
		return 0, err
	}
	months := e.epochMonth - ym.epochMonth
	switch u {
	case Months:
		return months, nil
	case Years, Decades, Centuries, Millennia:
		return months / (12 * yearsPer(u)), nil
	case Eras:
		e1, _ := ym.GetLong(Era)
		e2, _ := e.GetLong(Era)
		return e2 - e1, nil
	}
	return 0, unsupportedUnit(u)
}

// Compare compares ym and o.
func (ym YearMonth) Compare(o YearMonth) int {
	return cmp.Compare(ym.epochMonth, o.epochMonth)
}

// IsBefore reports whether ym is before o.
func (ym YearMonth) IsBefore(o YearMonth) bool {
	return ym.epochMonth < o.epochMonth
}

// IsAfter reports whether ym is after o.
func (ym YearMonth) IsAfter(o YearMonth) bool {
	return ym.epochMonth > o.epochMonth
}

// Equal reports whether ym == o.
func (ym YearMonth) Equal(o YearMonth) bool {
	return ym == o
}

// GoString implements fmt.GoStringer.
func (ym YearMonth) GoString() string {
	return fmt.Sprintf("chrono.MustYearMonth(%d, %d)", ym.Year(), ym.Month())
}

// String returns ym in ISO 8601 format, such as 2007-12.
func (ym YearMonth) String() string {
	var buf [16]byte
	return string(ym.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of ym to b.
func (ym YearMonth) AppendText(b []byte) []byte {
	b = appendYear(b, int64(ym.Year()))
	b = append(b, '-')
	return append2(b, int(ym.Month()))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return ym.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (ym *YearMonth) UnmarshalText(b []byte) error {
	v, err := ParseYearMonth(string(b))
	if err == nil {
		*ym = v
	}
	return err
}
