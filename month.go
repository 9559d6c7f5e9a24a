// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// A Month specifies a month of the year (January = 1, ...).
type Month int

// The months of the year.
const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	January:   "January",
	February:  "February",
	March:     "March",
	April:     "April",
	May:       "May",
	June:      "June",
	July:      "July",
	August:    "August",
	September: "September",
	October:   "October",
	November:  "November",
	December:  "December",
}

// MonthOf returns the month with the given number, from 1 (January) to 12
// (December).
func MonthOf(month int) (Month, error) {
	if month < 1 || month > 12 {
		return 0, invalidValuef("invalid value for MonthOfYear: %d", month)
	}
	return Month(month), nil
}

// MonthFromTime converts a time.Month.
func MonthFromTime(m time.Month) Month {
	return Month(m)
}

// MonthFrom extracts the month of the year from t.
func MonthFrom(t TemporalAccessor) (Month, error) {
	if m, ok := t.(Month); ok {
		return m, nil
	}
	if t == nil || !t.IsSupported(MonthOfYear) {
		return 0, typeMismatch("Month", t)
	}
	v, err := t.GetLong(MonthOfYear)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "unable to obtain Month from %T", t), ErrTypeMismatch)
	}
	return MonthOf(int(v))
}

// String returns the English name of the month ("January", "February", ...).
func (m Month) String() string {
	if January <= m && m <= December {
		return monthNames[m]
	}
	return fmt.Sprintf("%%!Month(%d)", int(m))
}

// Time converts m into a time.Month.
func (m Month) Time() time.Month {
	return time.Month(m)
}

// Plus returns the month that is n months after m, wrapping around at the end
// of the year. n may be negative.
func (m Month) Plus(n int64) Month {
	amount := int(n % 12)
	return Month((int(m)+(amount+12)-1)%12 + 1)
}

// Minus returns the month that is n months before m, wrapping around at the
// start of the year.
func (m Month) Minus(n int64) Month {
	return m.Plus(-(n % 12))
}

// Length returns the number of days in the month, depending on whether the
// year is a leap year. It returns 0 if m is not a valid month.
func (m Month) Length(leapYear bool) int {
	if m < January || m > December {
		return 0
	}
	if m == February && leapYear {
		return 29
	}
	return int(daysBefore[m] - daysBefore[m-1])
}

// MinLength returns the number of days in the month in a non-leap year.
func (m Month) MinLength() int {
	return m.Length(false)
}

// MaxLength returns the number of days in the month in a leap year.
func (m Month) MaxLength() int {
	return m.Length(true)
}

// FirstDayOfYear returns the day of the year of the first day of the month,
// or 0 if m is not a valid month.
func (m Month) FirstDayOfYear(leapYear bool) int {
	if m < January || m > December {
		return 0
	}
	d := int(daysBefore[m-1]) + 1
	if leapYear && m > February {
		d++
	}
	return d
}

// FirstMonthOfQuarter returns the first month of the quarter m is in.
func (m Month) FirstMonthOfQuarter() Month {
	return Month(((int(m)-1)/3)*3 + 1)
}

// IsSupported reports whether f is MonthOfYear, the only field of a Month.
func (m Month) IsSupported(f Field) bool {
	return f == MonthOfYear
}

// Range returns the range of valid values for f.
func (m Month) Range(f Field) (ValueRange, error) {
	if !m.IsSupported(f) {
		return ValueRange{}, unsupportedField(f)
	}
	return f.Range(), nil
}

// Get returns the value of f as an int.
func (m Month) Get(f Field) (int, error) {
	return getInt(m, f)
}

// GetLong returns the value of f.
func (m Month) GetLong(f Field) (int64, error) {
	if !m.IsSupported(f) {
		return 0, unsupportedField(f)
	}
	return int64(m), nil
}
