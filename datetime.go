// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/mathx"
)

// A LocalDateTime is a date and time of day without an offset, such as
// 2007-12-03T10:15:30. Its zero value is 1970-01-01T00:00.
//
// LocalDateTime values are comparable with ==.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// The smallest and largest supported LocalDateTime.
var (
	MinLocalDateTime = LocalDateTime{MinLocalDate, MinLocalTime}
	MaxLocalDateTime = LocalDateTime{MaxLocalDate, MaxLocalTime}
)

// LocalDateTimeOf returns the date-time with the given fields. See
// LocalDateOf and LocalTimeOf.
func LocalDateTimeOf(year int, month Month, day, hour, minute, second, nano int) (LocalDateTime, error) {
	d, err := LocalDateOf(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := LocalTimeOf(hour, minute, second, nano)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{d, t}, nil
}

// MustLocalDateTime is like LocalDateTimeOf, but panics on error.
func MustLocalDateTime(year int, month Month, day, hour, minute, second, nano int) LocalDateTime {
	dt, err := LocalDateTimeOf(year, month, day, hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return dt
}

// LocalDateTimeOfEpochSecond returns the local date-time at the given offset
// of the instant that is epochSecond seconds and nano nanoseconds after
// 1970-01-01T00:00Z.
func LocalDateTimeOfEpochSecond(epochSecond int64, nano int, offset ZoneOffset) (LocalDateTime, error) {
	if _, err := NanoOfSecond.checkValid(int64(nano)); err != nil {
		return LocalDateTime{}, err
	}
	local, ok := mathx.AddExact(epochSecond, int64(offset.seconds))
	if !ok {
		return LocalDateTime{}, overflowf("epoch second %d at offset %v overflows", epochSecond, offset)
	}
	d, err := dateOfEpochDay(mathx.FloorDiv(local, secondsPerDay))
	if err != nil {
		return LocalDateTime{}, err
	}
	sod := mathx.FloorMod(local, secondsPerDay)
	return LocalDateTime{d, LocalTime{sod*nanosPerSecond + int64(nano)}}, nil
}

// LocalDateTimeOfInstant returns the local date-time of i at the given offset.
func LocalDateTimeOfInstant(i Instant, offset ZoneOffset) (LocalDateTime, error) {
	return LocalDateTimeOfEpochSecond(i.seconds, int(i.nanos), offset)
}

// LocalDateTimeNow returns the current date-time of c, at the offset of c.
func LocalDateTimeNow(c Clock) (LocalDateTime, error) {
	return LocalDateTimeOfInstant(c.Instant(), c.Offset())
}

// LocalDateTimeFrom extracts the date and time from t. It fails with
// ErrTypeMismatch unless t has both.
func LocalDateTimeFrom(t TemporalAccessor) (LocalDateTime, error) {
	switch v := t.(type) {
	case LocalDateTime:
		return v, nil
	case OffsetDateTime:
		return v.dt, nil
	}
	d, err := LocalDateFrom(t)
	if err != nil {
		return LocalDateTime{}, errors.Mark(errors.Wrapf(err, "unable to obtain LocalDateTime from %T", t), ErrTypeMismatch)
	}
	tm, err := LocalTimeFrom(t)
	if err != nil {
		return LocalDateTime{}, errors.Mark(errors.Wrapf(err, "unable to obtain LocalDateTime from %T", t), ErrTypeMismatch)
	}
	return LocalDateTime{d, tm}, nil
}

// Date returns the date part of dt.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time of day of dt.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// Year returns the year of dt.
func (dt LocalDateTime) Year() int { return dt.date.Year() }

// Month returns the month of the year of dt.
func (dt LocalDateTime) Month() Month { return dt.date.Month() }

// Day returns the day of the month of dt.
func (dt LocalDateTime) Day() int { return dt.date.Day() }

// Hour returns the hour of the day of dt.
func (dt LocalDateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of the hour of dt.
func (dt LocalDateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of the minute of dt.
func (dt LocalDateTime) Second() int { return dt.time.Second() }

// Nano returns the nanosecond of the second of dt.
func (dt LocalDateTime) Nano() int { return dt.time.Nano() }

// Weekday returns the day of the week of dt.
func (dt LocalDateTime) Weekday() time.Weekday { return dt.date.Weekday() }

// IsSupported reports whether f is a date or time field.
func (dt LocalDateTime) IsSupported(f Field) bool {
	return f.IsDateBased() || f.IsTimeBased()
}

// IsSupportedUnit reports whether u is a date or time unit.
func (dt LocalDateTime) IsSupportedUnit(u Unit) bool {
	return u.IsDateBased() || u.IsTimeBased()
}

// Range returns the range of valid values for f.
func (dt LocalDateTime) Range(f Field) (ValueRange, error) {
	if f.IsTimeBased() {
		return dt.time.Range(f)
	}
	return dt.date.Range(f)
}

// Get returns the value of f as an int.
func (dt LocalDateTime) Get(f Field) (int, error) {
	return getInt(dt, f)
}

// GetLong returns the value of f.
func (dt LocalDateTime) GetLong(f Field) (int64, error) {
	if f.IsTimeBased() {
		return dt.time.GetLong(f)
	}
	return dt.date.GetLong(f)
}

// With returns dt with the field f set to v. Time fields never change the
// date.
func (dt LocalDateTime) With(f Field, v int64) (LocalDateTime, error) {
	if f.IsTimeBased() {
		t, err := dt.time.With(f, v)
		if err != nil {
			return LocalDateTime{}, err
		}
		return LocalDateTime{dt.date, t}, nil
	}
	d, err := dt.date.With(f, v)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{d, dt.time}, nil
}

// WithDate returns dt with the date replaced.
func (dt LocalDateTime) WithDate(d LocalDate) LocalDateTime {
	return LocalDateTime{d, dt.time}
}

// WithTime returns dt with the time of day replaced.
func (dt LocalDateTime) WithTime(t LocalTime) LocalDateTime {
	return LocalDateTime{dt.date, t}
}

// Plus returns dt plus the given amount of u. Time units carry over into the
// date.
func (dt LocalDateTime) Plus(amount int64, u Unit) (LocalDateTime, error) {
	switch u {
	case Nanos:
		return dt.PlusNanos(amount)
	case Micros:
		r, err := dt.PlusDays(amount / microsPerDay)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.PlusNanos((amount % microsPerDay) * 1000)
	case Millis:
		r, err := dt.PlusDays(amount / millisPerDay)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.PlusNanos((amount % millisPerDay) * nanosPerMilli)
	case Seconds:
		return dt.PlusSeconds(amount)
	case Minutes:
		return dt.PlusMinutes(amount)
	case Hours:
		return dt.PlusHours(amount)
	case HalfDays:
		r, err := dt.PlusDays(amount / 2)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.PlusHours((amount % 2) * 12)
	}
	d, err := dt.date.Plus(amount, u)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{d, dt.time}, nil
}

// Minus returns dt minus the given amount of u.
func (dt LocalDateTime) Minus(amount int64, u Unit) (LocalDateTime, error) {
	return minusAmount(dt, amount, func(dt LocalDateTime, n int64) (LocalDateTime, error) { return dt.Plus(n, u) })
}

// PlusYears returns dt plus the given number of years. See
// LocalDate.PlusYears.
func (dt LocalDateTime) PlusYears(years int64) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusYears(years))
}

// PlusMonths returns dt plus the given number of months. See
// LocalDate.PlusMonths.
func (dt LocalDateTime) PlusMonths(months int64) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusMonths(months))
}

// PlusWeeks returns dt plus the given number of weeks.
func (dt LocalDateTime) PlusWeeks(weeks int64) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusWeeks(weeks))
}

// PlusDays returns dt plus the given number of days.
func (dt LocalDateTime) PlusDays(days int64) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusDays(days))
}

// PlusHours returns dt plus the given number of hours.
func (dt LocalDateTime) PlusHours(hours int64) (LocalDateTime, error) {
	return dt.plusTime(hours, 0, 0, 0, 1)
}

// PlusMinutes returns dt plus the given number of minutes.
func (dt LocalDateTime) PlusMinutes(minutes int64) (LocalDateTime, error) {
	return dt.plusTime(0, minutes, 0, 0, 1)
}

// PlusSeconds returns dt plus the given number of seconds.
func (dt LocalDateTime) PlusSeconds(seconds int64) (LocalDateTime, error) {
	return dt.plusTime(0, 0, seconds, 0, 1)
}

// PlusNanos returns dt plus the given number of nanoseconds.
func (dt LocalDateTime) PlusNanos(nanos int64) (LocalDateTime, error) {
	return dt.plusTime(0, 0, 0, nanos, 1)
}

// MinusHours returns dt minus the given number of hours.
func (dt LocalDateTime) MinusHours(hours int64) (LocalDateTime, error) {
	return dt.plusTime(hours, 0, 0, 0, -1)
}

// MinusMinutes returns dt minus the given number of minutes.
func (dt LocalDateTime) MinusMinutes(minutes int64) (LocalDateTime, error) {
	return dt.plusTime(0, minutes, 0, 0, -1)
}

// MinusSeconds returns dt minus the given number of seconds.
func (dt LocalDateTime) MinusSeconds(seconds int64) (LocalDateTime, error) {
	return dt.plusTime(0, 0, seconds, 0, -1)
}

// MinusNanos returns dt minus the given number of nanoseconds.
func (dt LocalDateTime) MinusNanos(nanos int64) (LocalDateTime, error) {
	return dt.plusTime(0, 0, 0, nanos, -1)
}

// MinusDays returns dt minus the given number of days.
func (dt LocalDateTime) MinusDays(days int64) (LocalDateTime, error) {
	return dt.withDate(dt.date.MinusDays(days))
}

// PlusPeriod returns dt plus p. See AddPeriod.
func (dt LocalDateTime) PlusPeriod(p Period) (LocalDateTime, error) {
	return AddPeriod(dt, p)
}

// MinusPeriod returns dt minus p. See SubtractPeriod.
func (dt LocalDateTime) MinusPeriod(p Period) (LocalDateTime, error) {
	return SubtractPeriod(dt, p)
}

func (dt LocalDateTime) withDate(d LocalDate, err error) (LocalDateTime, error) {
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{d, dt.time}, nil
}

// plusTime adds sign times the given amounts, carrying whole days into the
// date. Each amount is split into days and a remainder first, so no
// intermediate value overflows for any input.
func (dt LocalDateTime) plusTime(hours, minutes, seconds, nanos int64, sign int64) (LocalDateTime, error) {
	if hours|minutes|seconds|nanos == 0 {
		return dt, nil
	}
	days := nanos/nanosPerDay + seconds/secondsPerDay + minutes/minutesPerDay + hours/hoursPerDay
	days *= sign
	total := nanos%nanosPerDay +
		(seconds%secondsPerDay)*nanosPerSecond +
		(minutes%minutesPerDay)*nanosPerMinute +
		(hours%hoursPerDay)*nanosPerHour
	total = total*sign + dt.time.nanoOfDay
	days += mathx.FloorDiv(total, nanosPerDay)
	d, err := dt.date.PlusDays(days)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{d, LocalTime{mathx.FloorMod(total, nanosPerDay)}}, nil
}

// TruncatedTo returns dt with the time of day truncated to u. See
// LocalTime.TruncatedTo.
func (dt LocalDateTime) TruncatedTo(u Unit) (LocalDateTime, error) {
	t, err := dt.time.TruncatedTo(u)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{dt.date, t}, nil
}

// Until returns the number of complete units u from dt to end. end is
// converted to a LocalDateTime first.
func (dt LocalDateTime) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := LocalDateTimeFrom(end)
	if err != nil {
		return 0, err
	}
	if u.IsTimeBased() {
		return dt.timeUntil(e, u)
	}
	if !u.IsDateBased() {
		return 0, unsupportedUnit(u)
	}
	// The end date only counts as reached once its time of day is, too.
	ed := e.date
	if ed.IsAfter(dt.date) && e.time.IsBefore(dt.time) {
		ed = LocalDate{ed.epochDay - 1}
	} else if ed.IsBefore(dt.date) && e.time.IsAfter(dt.time) {
		ed = LocalDate{ed.epochDay + 1}
	}
	return dt.date.Until(ed, u)
}

func (dt LocalDateTime) timeUntil(e LocalDateTime, u Unit) (int64, error) {
	days := e.date.epochDay - dt.date.epochDay
	if days == 0 {
		return dt.time.Until(e.time, u)
	}
	part := e.time.nanoOfDay - dt.time.nanoOfDay
	if days > 0 {
		days--
		part += nanosPerDay
	} else {
		days++
		part -= nanosPerDay
	}
	n := unitNanos(u)
	amount, ok := mathx.MulExact(days, nanosPerDay/n)
	if !ok {
		return 0, overflowf("number of %v between %v and %v overflows", u, dt, e)
	}
	amount, ok = mathx.AddExact(amount, part/n)
	if !ok {
		return 0, overflowf("number of %v between %v and %v overflows", u, dt, e)
	}
	return amount, nil
}

// ToEpochSecond returns the number of seconds from 1970-01-01T00:00Z to dt
// at the given offset.
func (dt LocalDateTime) ToEpochSecond(offset ZoneOffset) int64 {
	return dt.date.epochDay*secondsPerDay + dt.time.ToSecondOfDay() - int64(offset.seconds)
}

// ToInstant returns the instant of dt at the given offset.
func (dt LocalDateTime) ToInstant(offset ZoneOffset) Instant {
	return Instant{dt.ToEpochSecond(offset), int32(dt.time.Nano())}
}

// AtOffset combines dt with an offset.
func (dt LocalDateTime) AtOffset(offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{dt, offset}
}

// Compare compares dt and o on the local time-line.
func (dt LocalDateTime) Compare(o LocalDateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

// IsBefore reports whether dt is before o.
func (dt LocalDateTime) IsBefore(o LocalDateTime) bool {
	return dt.Compare(o) < 0
}

// IsAfter reports whether dt is after o.
func (dt LocalDateTime) IsAfter(o LocalDateTime) bool {
	return dt.Compare(o) > 0
}

// Equal reports whether dt == o.
func (dt LocalDateTime) Equal(o LocalDateTime) bool {
	return dt == o
}

// GoString implements fmt.GoStringer.
func (dt LocalDateTime) GoString() string {
	year, month, day := dt.date.Date()
	return fmt.Sprintf("chrono.MustLocalDateTime(%d, %d, %d, %d, %d, %d, %d)", year, month, day, dt.Hour(), dt.Minute(), dt.Second(), dt.Nano())
}

// String returns dt in ISO 8601 format, such as 2007-12-03T10:15:30.
func (dt LocalDateTime) String() string {
	var buf [48]byte
	return string(dt.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of dt to b.
func (dt LocalDateTime) AppendText(b []byte) []byte {
	b = dt.date.AppendText(b)
	b = append(b, 'T')
	return dt.time.AppendText(b)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (dt LocalDateTime) MarshalText() ([]byte, error) {
	return dt.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (dt *LocalDateTime) UnmarshalText(b []byte) error {
	v, err := ParseLocalDateTime(string(b))
	if err == nil {
		*dt = v
	}
	return err
}
