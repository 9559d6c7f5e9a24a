// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestPeriodString(t *testing.T) {
	tests := []struct {
		p    Period
		want string
	}{
		{Period{}, "P0D"},
		{PeriodOfYears(1), "P1Y"},
		{PeriodOfMonths(-3), "P-3M"},
		{PeriodOfDays(10), "P10D"},
		{PeriodOf(1, 2, 3), "P1Y2M3D"},
		{PeriodOf(-1, 0, 3), "P-1Y3D"},
		{PeriodOf(math.MinInt32, math.MaxInt32, 0), "P-2147483648Y2147483647M"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestPeriodAccessors(t *testing.T) {
	p := PeriodOf(1, -2, 3)
	if p.Years() != 1 || p.Months() != -2 || p.Days() != 3 {
		t.Errorf("%v components = %d, %d, %d", p, p.Years(), p.Months(), p.Days())
	}
	if !p.IsNegative() || p.IsZero() {
		t.Errorf("%v: IsNegative = %v, IsZero = %v", p, p.IsNegative(), p.IsZero())
	}
	if !slices.Equal(p.Units(), []Unit{Years, Months, Days}) {
		t.Errorf("%v.Units() = %v", p, p.Units())
	}
	for _, u := range p.Units() {
		if _, err := p.Get(u); err != nil {
			t.Errorf("%v.Get(%v) = _, %v", p, u, err)
		}
	}
	if _, err := p.Get(Weeks); !errors.Is(err, ErrUnsupported) {
		t.Errorf("%v.Get(Weeks) = _, %v, want ErrUnsupported", p, err)
	}
	if got := p.WithYears(0).WithMonths(0).WithDays(0); !got.IsZero() {
		t.Errorf("zeroing every component of %v = %v", p, got)
	}
	if got := p.ToTotalMonths(); got != 10 {
		t.Errorf("%v.ToTotalMonths() = %d, want 10", p, got)
	}
}

func TestPeriodOfWeeks(t *testing.T) {
	if got, err := PeriodOfWeeks(-2); err != nil || got != PeriodOfDays(-14) {
		t.Errorf("PeriodOfWeeks(-2) = %v, %v, want P-14D, <nil>", got, err)
	}
	if _, err := PeriodOfWeeks(306783379); !errors.Is(err, ErrOverflow) {
		t.Errorf("PeriodOfWeeks(306783379) = _, %v, want ErrOverflow", err)
	}
}

func TestPeriodNormalized(t *testing.T) {
	tests := []struct {
		in, want Period
	}{
		{PeriodOf(1, 15, 40), PeriodOf(2, 3, 40)},
		{PeriodOf(1, -25, 0), PeriodOf(-1, -1, 0)},
		{PeriodOf(-1, 15, 0), PeriodOf(0, 3, 0)},
		{PeriodOf(0, -12, 0), PeriodOf(-1, 0, 0)},
		{PeriodOf(0, 11, -5), PeriodOf(0, 11, -5)},
	}
	for _, tc := range tests {
		got, err := tc.in.Normalized()
		if err != nil || got != tc.want {
			t.Errorf("%v.Normalized() = %v, %v, want %v, <nil>", tc.in, got, err, tc.want)
		}
	}
	if _, err := PeriodOf(math.MaxInt32, 12, 0).Normalized(); !errors.Is(err, ErrOverflow) {
		t.Errorf("Normalized with overflowing years = _, %v, want ErrOverflow", err)
	}
}

func TestPeriodArithmetic(t *testing.T) {
	p := PeriodOf(1, 2, 3)
	tests := []struct {
		name string
		got  func() (Period, error)
		want Period
	}{
		{"Plus", func() (Period, error) { return p.Plus(PeriodOf(-1, 2, -3)) }, PeriodOf(0, 4, 0)},
		{"Minus", func() (Period, error) { return p.Minus(p) }, Period{}},
		{"PlusYears", func() (Period, error) { return p.PlusYears(-3) }, PeriodOf(-2, 2, 3)},
		{"PlusMonths", func() (Period, error) { return p.PlusMonths(10) }, PeriodOf(1, 12, 3)},
		{"PlusDays", func() (Period, error) { return p.PlusDays(27) }, PeriodOf(1, 2, 30)},
		{"MinusDays", func() (Period, error) { return p.MinusDays(3) }, PeriodOf(1, 2, 0)},
		{"MultipliedBy", func() (Period, error) { return p.MultipliedBy(3) }, PeriodOf(3, 6, 9)},
		{"MultipliedByZero", func() (Period, error) { return p.MultipliedBy(0) }, Period{}},
		{"Negated", p.Negated, PeriodOf(-1, -2, -3)},
	}
	for _, tc := range tests {
		got, err := tc.got()
		if err != nil || got != tc.want {
			t.Errorf("%s = %v, %v, want %v, <nil>", tc.name, got, err, tc.want)
		}
	}

	overflows := []struct {
		name string
		f    func() (Period, error)
	}{
		{"PlusYears", func() (Period, error) { return PeriodOfYears(math.MaxInt32).PlusYears(1) }},
		{"PlusDays", func() (Period, error) { return p.PlusDays(math.MaxInt64) }},
		{"MinusMonths", func() (Period, error) { return p.MinusMonths(math.MinInt64) }},
		{"Minus", func() (Period, error) { return p.Minus(PeriodOfDays(math.MinInt32)) }},
		{"MultipliedBy", func() (Period, error) { return PeriodOfDays(math.MaxInt32).MultipliedBy(2) }},
		{"Negated", func() (Period, error) { return PeriodOfMonths(math.MinInt32).Negated() }},
	}
	for _, tc := range overflows {
		if _, err := tc.f(); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s = _, %v, want ErrOverflow", tc.name, err)
		}
	}
}

func TestAddPeriod(t *testing.T) {
	tests := []struct {
		start LocalDate
		p     Period
		want  LocalDate
	}{
		{MustLocalDate(2024, January, 31), PeriodOfMonths(1), MustLocalDate(2024, February, 29)},
		{MustLocalDate(2024, February, 29), PeriodOfYears(1), MustLocalDate(2025, February, 28)},
		{MustLocalDate(2024, February, 29), PeriodOf(4, 0, 1), MustLocalDate(2028, March, 1)},
		{MustLocalDate(2023, January, 31), PeriodOf(1, 1, 0), MustLocalDate(2024, February, 29)},
		{MustLocalDate(2023, March, 31), PeriodOf(0, -1, -1), MustLocalDate(2023, February, 27)},
		{MustLocalDate(2023, March, 31), PeriodOf(1, -12, 5), MustLocalDate(2023, April, 5)},
	}
	for _, tc := range tests {
		got, err := AddPeriod(tc.start, tc.p)
		if err != nil || got != tc.want {
			t.Errorf("AddPeriod(%v, %v) = %v, %v, want %v, <nil>", tc.start, tc.p, got, err, tc.want)
		}
		if m, err := tc.start.PlusPeriod(tc.p); err != nil || m != got {
			t.Errorf("%v.PlusPeriod(%v) = %v, %v, want %v, <nil>", tc.start, tc.p, m, err, got)
		}
	}

	d := MustLocalDate(2024, March, 31)
	if got, err := SubtractPeriod(d, PeriodOf(0, 1, 1)); err != nil || got != MustLocalDate(2024, February, 28) {
		t.Errorf("SubtractPeriod(%v, P1M1D) = %v, %v, want 2024-02-28, <nil>", d, got, err)
	}

	ym := MustYearMonth(2023, November)
	if got, err := AddPeriod(ym, PeriodOf(1, 2, 0)); err != nil || got != MustYearMonth(2025, January) {
		t.Errorf("AddPeriod(%v, P1Y2M) = %v, %v, want 2025-01, <nil>", ym, got, err)
	}
	if _, err := AddPeriod(ym, PeriodOfDays(1)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("AddPeriod(%v, P1D) = _, %v, want ErrUnsupported", ym, err)
	}

	dt := MustLocalDateTime(2023, December, 31, 12, 0, 0, 0)
	if got, err := AddPeriod(dt, PeriodOf(0, 2, 1)); err != nil || got.String() != "2024-03-01T12:00" {
		t.Errorf("AddPeriod(%v, P2M1D) = %v, %v, want 2024-03-01T12:00, <nil>", dt, got, err)
	}

	last := MustLocalDate(MaxYear, December, 1)
	if _, err := AddPeriod(last, PeriodOfMonths(1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddPeriod(%v, P1M) = _, %v, want ErrOutOfRange", last, err)
	}
}

func TestPeriodBetweenRoundTrip(t *testing.T) {
	dates := []LocalDate{
		MustLocalDate(2012, February, 28),
		MustLocalDate(2012, February, 29),
		MustLocalDate(2013, January, 31),
		MustLocalDate(2013, March, 1),
		MustLocalDate(2014, February, 28),
		MustLocalDate(-4, December, 31),
	}
	for _, a := range dates {
		for _, b := range dates {
			if b.IsBefore(a) {
				continue
			}
			p := PeriodBetween(a, b)
			if got, err := AddPeriod(a, p); err != nil || got != b {
				t.Errorf("AddPeriod(%v, PeriodBetween(%v, %v) = %v) = %v, %v, want %v", a, a, b, p, got, err, b)
			}
		}
	}
}

func TestPeriodText(t *testing.T) {
	var p Period
	if err := p.UnmarshalText([]byte("P1Y2W")); err != nil || p != PeriodOf(1, 0, 14) {
		t.Errorf("UnmarshalText(P1Y2W) = %v, got %v", err, p)
	}
	if b, err := p.MarshalText(); err != nil || string(b) != "P1Y14D" {
		t.Errorf("%v.MarshalText() = %q, %v, want P1Y14D, <nil>", p, b, err)
	}
	if err := p.UnmarshalText([]byte("P")); err == nil {
		t.Errorf("UnmarshalText(P) = <nil>, want error")
	}
	if p != PeriodOf(1, 0, 14) {
		t.Errorf("failed UnmarshalText modified the period to %v", p)
	}
}

func TestParsePeriodWeeks(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"P306783378W", PeriodOfDays(2147483646)},
		{"P306783378W1D", PeriodOfDays(math.MaxInt32)},
		{"P-306783378W-2D", PeriodOfDays(math.MinInt32)},
		{"P1Y2W-14D", PeriodOfYears(1)},
	}
	for _, tc := range tests {
		got, err := ParsePeriod(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v, <nil>", tc.in, got, err, tc.want)
		}
	}

	// The weeks must fit into the days on their own, even if the days
	// component would bring the sum back into range.
	for _, in := range []string{"P400000000W-800000000D", "P306783379W", "-P306783379W", "P306783378W2D"} {
		_, err := ParsePeriod(in)
		var pe *ParseError
		if !errors.As(err, &pe) || !errors.Is(err, ErrOverflow) {
			t.Errorf("ParsePeriod(%q) = _, %v, want *ParseError marked ErrOverflow", in, err)
		}
	}
}
