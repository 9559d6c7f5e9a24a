// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestYearMonthOf(t *testing.T) {
	tests := []struct {
		year   int
		month  Month
		str    string
		length int
	}{
		{1970, January, "1970-01", 31},
		{2024, February, "2024-02", 29},
		{1900, February, "1900-02", 28},
		{0, December, "0000-12", 31},
		{-44, March, "-0044-03", 31},
		{MaxYear, December, "+999999999-12", 31},
		{MinYear, January, "-999999999-01", 31},
	}
	for _, tc := range tests {
		ym, err := YearMonthOf(tc.year, tc.month)
		if err != nil {
			t.Fatalf("YearMonthOf(%d, %v) = _, %v", tc.year, tc.month, err)
		}
		if ym.Year() != tc.year || ym.Month() != tc.month {
			t.Errorf("YearMonthOf(%d, %v) = %d, %v", tc.year, tc.month, ym.Year(), ym.Month())
		}
		if s := ym.String(); s != tc.str {
			t.Errorf("YearMonthOf(%d, %v).String() = %q, want %q", tc.year, tc.month, s, tc.str)
		}
		if l := ym.LengthOfMonth(); l != tc.length {
			t.Errorf("%v.LengthOfMonth() = %d, want %d", ym, l, tc.length)
		}
		if d := ym.AtEndOfMonth(); d.Day() != tc.length || d.YearMonth() != ym {
			t.Errorf("%v.AtEndOfMonth() = %v", ym, d)
		}
	}
	for _, tc := range []struct {
		year  int
		month Month
	}{{MaxYear + 1, January}, {MinYear - 1, December}, {2000, 0}, {2000, 13}} {
		if _, err := YearMonthOf(tc.year, tc.month); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("YearMonthOf(%d, %d) = _, %v, want ErrInvalidValue", tc.year, tc.month, err)
		}
	}
	if ym := MustYearMonth(1970, January); ym != (YearMonth{}) {
		t.Errorf("MustYearMonth(1970, January) = %#v, want the zero value", ym)
	}
}

func TestYearMonthAtDay(t *testing.T) {
	ym := MustYearMonth(2023, February)
	if ym.IsLeapYear() || ym.LengthOfYear() != 365 {
		t.Errorf("%v: IsLeapYear = %v, LengthOfYear = %d", ym, ym.IsLeapYear(), ym.LengthOfYear())
	}
	if !ym.IsValidDay(28) || ym.IsValidDay(29) || ym.IsValidDay(0) {
		t.Errorf("%v.IsValidDay reports wrong results", ym)
	}
	if d, err := ym.AtDay(28); err != nil || d != MustLocalDate(2023, February, 28) {
		t.Errorf("%v.AtDay(28) = %v, %v", ym, d, err)
	}
	if _, err := ym.AtDay(29); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("%v.AtDay(29) = _, %v, want ErrInvalidValue", ym, err)
	}
}

func TestYearMonthPlus(t *testing.T) {
	ym := MustYearMonth(2023, November)
	tests := []struct {
		amount int64
		unit   Unit
		want   YearMonth
	}{
		{2, Months, MustYearMonth(2024, January)},
		{-11, Months, MustYearMonth(2022, December)},
		{1, Years, MustYearMonth(2024, November)},
		{-3, Decades, MustYearMonth(1993, November)},
		{1, Millennia, MustYearMonth(3023, November)},
	}
	for _, tc := range tests {
		got, err := ym.Plus(tc.amount, tc.unit)
		if err != nil || got != tc.want {
			t.Errorf("%v.Plus(%d, %v) = %v, %v, want %v, <nil>", ym, tc.amount, tc.unit, got, err, tc.want)
		}
	}
	if got, err := ym.Plus(-1, Eras); err != nil || got != MustYearMonth(-2022, November) {
		t.Errorf("%v.Plus(-1, Eras) = %v, %v, want -2022-11, <nil>", ym, got, err)
	}

	errs := []struct {
		ym     YearMonth
		amount int64
		unit   Unit
		want   error
	}{
		{MustYearMonth(MaxYear, December), 1, Months, ErrOutOfRange},
		{MustYearMonth(MinYear, January), -1, Months, ErrOutOfRange},
		{ym, math.MaxInt64, Months, ErrOverflow},
		{ym, math.MaxInt64, Years, ErrOverflow},
		{ym, 1, Days, ErrUnsupported},
		{ym, 1, Hours, ErrUnsupported},
		{ym, 1, Eras, ErrInvalidValue},
	}
	for _, tc := range errs {
		if _, err := tc.ym.Plus(tc.amount, tc.unit); !errors.Is(err, tc.want) {
			t.Errorf("%v.Plus(%d, %v) = _, %v, want %v", tc.ym, tc.amount, tc.unit, err, tc.want)
		}
	}
	if got, err := ym.Minus(math.MinInt64, Months); !errors.Is(err, ErrOverflow) {
		t.Errorf("%v.Minus(MinInt64, Months) = %v, %v, want ErrOverflow", ym, got, err)
	}
}

func TestYearMonthUntil(t *testing.T) {
	start := MustYearMonth(2020, June)
	tests := []struct {
		end  TemporalAccessor
		unit Unit
		want int64
	}{
		{MustYearMonth(2021, May), Months, 11},
		{MustYearMonth(2021, May), Years, 0},
		{MustYearMonth(2021, June), Years, 1},
		{MustYearMonth(2019, July), Years, 0},
		{MustYearMonth(1990, June), Decades, -3},
		{MustLocalDate(2020, August, 1), Months, 2},
		{MustLocalDateTime(2030, June, 30, 0, 0, 0, 0), Decades, 1},
		{MustYearMonth(-1, January), Eras, -1},
	}
	for _, tc := range tests {
		got, err := start.Until(tc.end, tc.unit)
		if err != nil || got != tc.want {
			t.Errorf("%v.Until(%v, %v) = %d, %v, want %d, <nil>", start, tc.end, tc.unit, got, err, tc.want)
		}
	}
	if _, err := start.Until(start, Days); !errors.Is(err, ErrUnsupported) {
		t.Errorf("%v.Until(_, Days) = _, %v, want ErrUnsupported", start, err)
	}
	if _, err := start.Until(Noon, Months); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("%v.Until(%v, Months) = _, %v, want ErrTypeMismatch", start, Noon, err)
	}
}

func TestYearMonthFields(t *testing.T) {
	ym := MustYearMonth(-5, April)
	tests := []struct {
		f    Field
		want int64
	}{
		{MonthOfYear, 4},
		{ProlepticMonth, -5*12 + 3},
		{Year, -5},
		{YearOfEra, 6},
		{Era, 0},
	}
	for _, tc := range tests {
		got, err := ym.GetLong(tc.f)
		if err != nil || got != tc.want {
			t.Errorf("%v.GetLong(%v) = %d, %v, want %d, <nil>", ym, tc.f, got, err, tc.want)
		}
	}
	if _, err := ym.GetLong(DayOfMonth); !errors.Is(err, ErrUnsupported) {
		t.Errorf("%v.GetLong(DayOfMonth) = _, %v, want ErrUnsupported", ym, err)
	}

	with := []struct {
		f    Field
		v    int64
		want YearMonth
	}{
		{MonthOfYear, 12, MustYearMonth(-5, December)},
		{Year, 2000, MustYearMonth(2000, April)},
		{YearOfEra, 10, MustYearMonth(-9, April)},
		{Era, 1, MustYearMonth(6, April)},
		{Era, 0, ym},
		{ProlepticMonth, 0, MustYearMonth(0, January)},
	}
	for _, tc := range with {
		got, err := ym.With(tc.f, tc.v)
		if err != nil || got != tc.want {
			t.Errorf("%v.With(%v, %d) = %v, %v, want %v, <nil>", ym, tc.f, tc.v, got, err, tc.want)
		}
	}
	if r, err := ym.Range(YearOfEra); err != nil || r.Max() != MaxYear+1 {
		t.Errorf("%v.Range(YearOfEra) = %v, %v, want maximum %d", ym, r, err, MaxYear+1)
	}
}

func TestYearMonthFrom(t *testing.T) {
	d := MustLocalDate(2024, February, 29)
	if got, err := YearMonthFrom(d); err != nil || got != MustYearMonth(2024, February) {
		t.Errorf("YearMonthFrom(%v) = %v, %v", d, got, err)
	}
	now, err := YearMonthNow(FixedClock(InstantOfEpochMilli(1_700_000_000_000), MustZoneOffset("+02:00")))
	if err != nil || now != MustYearMonth(2023, November) {
		t.Errorf("YearMonthNow = %v, %v, want 2023-11, <nil>", now, err)
	}
	for _, v := range []TemporalAccessor{Epoch, Noon, nil} {
		if _, err := YearMonthFrom(v); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("YearMonthFrom(%v) = _, %v, want ErrTypeMismatch", v, err)
		}
	}
}

func TestYearMonthCompare(t *testing.T) {
	a, b := MustYearMonth(-1, December), MustYearMonth(0, January)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || !a.IsBefore(b) || !b.IsAfter(a) || a.Equal(b) {
		t.Errorf("ordering of %v and %v is inconsistent", a, b)
	}
}
