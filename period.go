// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"math"
	"strconv"
	"strings"

	"gonih.org/chrono/internal/mathx"
)

// A Period is an amount of time in years, months and days, such as "2 years,
// 3 months and 4 days". Unlike a time.Duration, the length of a Period
// depends on the date it is added to. The three components are independent
// and may have different signs; a Period is only normalized on request.
//
// The zero value is a zero period. Period values are comparable with ==,
// which compares each component, so one year is not equal to twelve months.
type Period struct {
	years, months, days int32
}

// PeriodOf returns the period with the given years, months and days.
func PeriodOf(years, months, days int32) Period {
	return Period{years, months, days}
}

// PeriodOfYears returns a period of the given number of years.
func PeriodOfYears(years int32) Period {
	return Period{years: years}
}

// PeriodOfMonths returns a period of the given number of months.
func PeriodOfMonths(months int32) Period {
	return Period{months: months}
}

// PeriodOfWeeks returns a period of seven times the given number of days.
func PeriodOfWeeks(weeks int32) (Period, error) {
	days, err := toInt32(int64(weeks)*7, "days")
	if err != nil {
		return Period{}, err
	}
	return Period{days: days}, nil
}

// PeriodOfDays returns a period of the given number of days.
func PeriodOfDays(days int32) Period {
	return Period{days: days}
}

// PeriodBetween returns the period from start (inclusive) to end (exclusive).
// See LocalDate.UntilPeriod.
func PeriodBetween(start, end LocalDate) Period {
	return start.UntilPeriod(end)
}

func toInt32(v int64, what string) (int32, error) {
	r, ok := mathx.ToInt32(v)
	if !ok {
		return 0, overflowf("number of %s %d overflows int32", what, v)
	}
	return r, nil
}

// Years returns the years component of p.
func (p Period) Years() int { return int(p.years) }

// Months returns the months component of p.
func (p Period) Months() int { return int(p.months) }

// Days returns the days component of p.
func (p Period) Days() int { return int(p.days) }

// Units returns the units of the components of p: Years, Months and Days.
func (p Period) Units() []Unit {
	return []Unit{Years, Months, Days}
}

// Get returns the component of p measured in u.
func (p Period) Get(u Unit) (int64, error) {
	switch u {
	case Years:
		return int64(p.years), nil
	case Months:
		return int64(p.months), nil
	case Days:
		return int64(p.days), nil
	}
	return 0, unsupportedUnit(u)
}

// IsZero reports whether all components of p are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// IsNegative reports whether any component of p is negative.
func (p Period) IsNegative() bool {
	return p.years < 0 || p.months < 0 || p.days < 0
}

// WithYears returns p with the years component replaced.
func (p Period) WithYears(years int32) Period {
	p.years = years
	return p
}

// WithMonths returns p with the months component replaced.
func (p Period) WithMonths(months int32) Period {
	p.months = months
	return p
}

// WithDays returns p with the days component replaced.
func (p Period) WithDays(days int32) Period {
	p.days = days
	return p
}

// Plus returns the component-wise sum of p and o.
func (p Period) Plus(o Period) (Period, error) {
	return p.add(int64(o.years), int64(o.months), int64(o.days))
}

// Minus returns the component-wise difference of p and o.
func (p Period) Minus(o Period) (Period, error) {
	return p.add(-int64(o.years), -int64(o.months), -int64(o.days))
}

// PlusYears returns p with years added to the years component.
func (p Period) PlusYears(years int64) (Period, error) {
	return p.add(years, 0, 0)
}

// PlusMonths returns p with months added to the months component.
func (p Period) PlusMonths(months int64) (Period, error) {
	return p.add(0, months, 0)
}

// PlusDays returns p with days added to the days component.
func (p Period) PlusDays(days int64) (Period, error) {
	return p.add(0, 0, days)
}

// MinusYears returns p with years subtracted from the years component.
func (p Period) MinusYears(years int64) (Period, error) {
	return minusAmount(p, years, Period.PlusYears)
}

// MinusMonths returns p with months subtracted from the months component.
func (p Period) MinusMonths(months int64) (Period, error) {
	return minusAmount(p, months, Period.PlusMonths)
}

// MinusDays returns p with days subtracted from the days component.
func (p Period) MinusDays(days int64) (Period, error) {
	return minusAmount(p, days, Period.PlusDays)
}

func (p Period) add(years, months, days int64) (Period, error) {
	var (
		r   Period
		err error
	)
	if r.years, err = addInt32(p.years, years, "years"); err != nil {
		return Period{}, err
	}
	if r.months, err = addInt32(p.months, months, "months"); err != nil {
		return Period{}, err
	}
	if r.days, err = addInt32(p.days, days, "days"); err != nil {
		return Period{}, err
	}
	return r, nil
}

func addInt32(a int32, b int64, what string) (int32, error) {
	sum, ok := mathx.AddExact(int64(a), b)
	if !ok {
		return 0, overflowf("number of %s overflows", what)
	}
	return toInt32(sum, what)
}

// MultipliedBy returns p with each component multiplied by scalar.
func (p Period) MultipliedBy(scalar int32) (Period, error) {
	if p.IsZero() || scalar == 1 {
		return p, nil
	}
	var (
		r   Period
		err error
	)
	s := int64(scalar)
	if r.years, err = toInt32(int64(p.years)*s, "years"); err != nil {
		return Period{}, err
	}
	if r.months, err = toInt32(int64(p.months)*s, "months"); err != nil {
		return Period{}, err
	}
	if r.days, err = toInt32(int64(p.days)*s, "days"); err != nil {
		return Period{}, err
	}
	return r, nil
}

// Negated returns p with each component negated. It fails only if a
// component is math.MinInt32.
func (p Period) Negated() (Period, error) {
	return p.MultipliedBy(-1)
}

// ToTotalMonths returns the total number of months in the years and months of
// p. Days are ignored.
func (p Period) ToTotalMonths() int64 {
	return int64(p.years)*12 + int64(p.months)
}

// Normalized returns p with the months folded into years, so that the months
// component is in the range (-12, 12) and has the sign of the years
// component. Days are not touched, as their relation to months varies.
func (p Period) Normalized() (Period, error) {
	total := p.ToTotalMonths()
	years, err := toInt32(total/12, "years")
	if err != nil {
		return Period{}, err
	}
	return Period{years, int32(total % 12), p.days}, nil
}

// Equal reports whether p == o.
func (p Period) Equal(o Period) bool {
	return p == o
}

// String returns p in ISO 8601 format, such as P6Y3M1D. The zero period is
// P0D.
func (p Period) String() string {
	var buf [40]byte
	return string(p.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of p to b.
func (p Period) AppendText(b []byte) []byte {
	if p.IsZero() {
		return append(b, "P0D"...)
	}
	b = append(b, 'P')
	if p.years != 0 {
		b = append(strconv.AppendInt(b, int64(p.years), 10), 'Y')
	}
	if p.months != 0 {
		b = append(strconv.AppendInt(b, int64(p.months), 10), 'M')
	}
	if p.days != 0 {
		b = append(strconv.AppendInt(b, int64(p.days), 10), 'D')
	}
	return b
}

// MarshalText implements the encoding.TextMarshaler interface.
func (p Period) MarshalText() ([]byte, error) {
	return p.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Period) UnmarshalText(b []byte) error {
	v, err := ParsePeriod(string(b))
	if err == nil {
		*p = v
	}
	return err
}

// ParsePeriod parses a period in the ISO 8601 format PnYnMnWnD. Letters are
// case-insensitive, at least one component must be present and each number
// may have a sign. A leading sign negates the whole period, so "-P1Y-2M" is
// the period P-1Y2M. Weeks are converted to days.
func ParsePeriod(s string) (Period, error) {
	p := newParser("period", s)
	negate := p.sign(false) < 0
	if !p.acceptFold('P') {
		p.fail("expected 'P'")
		return Period{}, p.err()
	}
	const designators = "YMWD"
	var vals [len(designators)]int64
	last := -1
	for p.value != "" && !p.hasErr {
		start := p.pos()
		n := p.signedInt()
		if p.hasErr {
			break
		}
		i := strings.IndexByte(designators, upper(p.peek()))
		if i < 0 {
			p.fail("expected one of Y, M, W or D")
			break
		}
		if i <= last {
			p.failAt(start, "components out of order")
			break
		}
		p.value = p.value[1:]
		vals[i], last = n, i
	}
	if !p.hasErr && last < 0 {
		p.fail("expected at least one component")
	}
	if p.hasErr {
		return Period{}, p.err()
	}
	r, err := periodOfComponents(vals, negate)
	if err != nil {
		p.invalid(err)
		return Period{}, p.err()
	}
	return r, nil
}

func periodOfComponents(vals [4]int64, negate bool) (Period, error) {
	if negate {
		for i := range vals {
			vals[i] = -vals[i]
		}
	}
	var (
		r   Period
		err error
	)
	weeks, ok := mathx.MulExact(vals[2], 7)
	if !ok {
		return Period{}, overflowf("number of weeks %d overflows", vals[2])
	}
	weekDays, err := toInt32(weeks, "days")
	if err != nil {
		return Period{}, err
	}
	if r.years, err = toInt32(vals[0], "years"); err != nil {
		return Period{}, err
	}
	if r.months, err = toInt32(vals[1], "months"); err != nil {
		return Period{}, err
	}
	if r.days, err = addInt32(weekDays, vals[3], "days"); err != nil {
		return Period{}, err
	}
	return r, nil
}

// signedInt parses an optionally signed decimal integer that must fit into
// an int32.
func (p *parser) signedInt() int64 {
	sign := int64(p.sign(false))
	var n int64
	i := 0
	for ; isDigit(p.value, i); i++ {
		n = n*10 + int64(p.value[i]-'0')
		if n > math.MaxInt32+1 {
			p.invalid(overflowf("number %s... overflows int32", p.value[:i+1]))
			return 0
		}
	}
	if i == 0 {
		p.fail("expected digit")
		return 0
	}
	p.value = p.value[i:]
	n *= sign
	if n > math.MaxInt32 {
		p.invalid(overflowf("number %d overflows int32", n))
		return 0
	}
	return n
}

// AddPeriod returns t plus p. The years and months of p are added first,
// as a total number of months if the months are non-zero and as years
// otherwise, followed by the days. Each step uses the Plus method of t, so a
// day of month is clamped to the end of a shorter month. For dates a and b
// with b not before a, AddPeriod(a, PeriodBetween(a, b)) == b.
func AddPeriod[T Temporal[T]](t T, p Period) (T, error) {
	var err error
	if p.months == 0 {
		if p.years != 0 {
			if t, err = t.Plus(int64(p.years), Years); err != nil {
				return t, err
			}
		}
	} else if total := p.ToTotalMonths(); total != 0 {
		if t, err = t.Plus(total, Months); err != nil {
			return t, err
		}
	}
	if p.days != 0 {
		return t.Plus(int64(p.days), Days)
	}
	return t, nil
}

// SubtractPeriod returns t minus p, in the same order of steps as AddPeriod.
func SubtractPeriod[T Temporal[T]](t T, p Period) (T, error) {
	var err error
	if p.months == 0 {
		if p.years != 0 {
			if t, err = t.Minus(int64(p.years), Years); err != nil {
				return t, err
			}
		}
	} else if total := p.ToTotalMonths(); total != 0 {
		if t, err = t.Minus(total, Months); err != nil {
			return t, err
		}
	}
	if p.days != 0 {
		return t.Minus(int64(p.days), Days)
	}
	return t, nil
}
