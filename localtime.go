// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/mathx"
)

// A LocalTime is a time of day without a date or offset, such as 10:15:30,
// with nanosecond precision. It is represented as the number of nanoseconds
// since midnight; the zero value is midnight.
//
// LocalTime values are comparable with ==.
type LocalTime struct {
	nanoOfDay int64
}

// Special times of day.
var (
	Midnight     = LocalTime{}
	Noon         = LocalTime{12 * nanosPerHour}
	MinLocalTime = LocalTime{}
	MaxLocalTime = LocalTime{nanosPerDay - 1}
)

// LocalTimeOf returns the time of day with the given hour, minute, second
// and nanosecond. Each value must be within its usual range.
func LocalTimeOf(hour, minute, second, nano int) (LocalTime, error) {
	for _, c := range [...]struct {
		f Field
		v int
	}{{HourOfDay, hour}, {MinuteOfHour, minute}, {SecondOfMinute, second}, {NanoOfSecond, nano}} {
		if _, err := c.f.checkValid(int64(c.v)); err != nil {
			return LocalTime{}, err
		}
	}
	return LocalTime{int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute + int64(second)*nanosPerSecond + int64(nano)}, nil
}

// MustLocalTime is like LocalTimeOf, but panics if the time is invalid.
func MustLocalTime(hour, minute, second, nano int) LocalTime {
	t, err := LocalTimeOf(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalTimeOfSecondOfDay returns the time of day that is the given number of
// seconds after midnight.
func LocalTimeOfSecondOfDay(secondOfDay int64) (LocalTime, error) {
	if _, err := SecondOfDay.checkValid(secondOfDay); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{secondOfDay * nanosPerSecond}, nil
}

// LocalTimeOfNanoOfDay returns the time of day that is the given number of
// nanoseconds after midnight.
func LocalTimeOfNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if _, err := NanoOfDay.checkValid(nanoOfDay); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{nanoOfDay}, nil
}

// LocalTimeOfInstant returns the time of day of i at the given offset.
func LocalTimeOfInstant(i Instant, offset ZoneOffset) LocalTime {
	local := i.seconds + int64(offset.seconds)
	return LocalTime{mathx.FloorMod(local, secondsPerDay)*nanosPerSecond + int64(i.nanos)}
}

// LocalTimeNow returns the current time of day of c, at the offset of c.
func LocalTimeNow(c Clock) LocalTime {
	return LocalTimeOfInstant(c.Instant(), c.Offset())
}

// LocalTimeFrom extracts the time of day from t. It fails with
// ErrTypeMismatch if t has no time of day.
func LocalTimeFrom(t TemporalAccessor) (LocalTime, error) {
	switch v := t.(type) {
	case LocalTime:
		return v, nil
	case LocalDateTime:
		return v.time, nil
	case OffsetDateTime:
		return v.dt.time, nil
	case OffsetTime:
		return v.time, nil
	}
	if t == nil || !t.IsSupported(NanoOfDay) {
		return LocalTime{}, typeMismatch("LocalTime", t)
	}
	nod, err := t.GetLong(NanoOfDay)
	if err != nil {
		return LocalTime{}, errors.Mark(errors.Wrapf(err, "unable to obtain LocalTime from %T", t), ErrTypeMismatch)
	}
	return LocalTimeOfNanoOfDay(nod)
}

// Hour returns the hour of the day, in the range [0, 23].
func (t LocalTime) Hour() int {
	return int(t.nanoOfDay / nanosPerHour)
}

// Minute returns the minute of the hour, in the range [0, 59].
func (t LocalTime) Minute() int {
	return int(t.nanoOfDay / nanosPerMinute % minutesPerHour)
}

// Second returns the second of the minute, in the range [0, 59].
func (t LocalTime) Second() int {
	return int(t.nanoOfDay / nanosPerSecond % secondsPerMinute)
}

// Nano returns the nanosecond of the second, in the range [0, 999999999].
func (t LocalTime) Nano() int {
	return int(t.nanoOfDay % nanosPerSecond)
}

// Clock returns the hour, minute and second of t.
func (t LocalTime) Clock() (hour, minute, second int) {
	return t.Hour(), t.Minute(), t.Second()
}

// ToSecondOfDay returns the number of whole seconds since midnight.
func (t LocalTime) ToSecondOfDay() int64 {
	return t.nanoOfDay / nanosPerSecond
}

// ToNanoOfDay returns the number of nanoseconds since midnight.
func (t LocalTime) ToNanoOfDay() int64 {
	return t.nanoOfDay
}

// IsSupported reports whether f is a time field.
func (t LocalTime) IsSupported(f Field) bool {
	return f.IsTimeBased()
}

// IsSupportedUnit reports whether u is a time unit.
func (t LocalTime) IsSupportedUnit(u Unit) bool {
	return u.IsTimeBased()
}

// Range returns the range of valid values for f.
func (t LocalTime) Range(f Field) (ValueRange, error) {
	if !t.IsSupported(f) {
		return ValueRange{}, unsupportedField(f)
	}
	return f.Range(), nil
}

// Get returns the value of f as an int. NanoOfDay and MicroOfDay must be
// accessed using GetLong.
func (t LocalTime) Get(f Field) (int, error) {
	return getInt(t, f)
}

// GetLong returns the value of f.
func (t LocalTime) GetLong(f Field) (int64, error) {
	hour := int64(t.Hour())
	switch f {
	case NanoOfSecond:
		return int64(t.Nano()), nil
	case NanoOfDay:
		return t.nanoOfDay, nil
	case MicroOfSecond:
		return int64(t.Nano()) / 1000, nil
	case MicroOfDay:
		return t.nanoOfDay / 1000, nil
	case MilliOfSecond:
		return int64(t.Nano()) / nanosPerMilli, nil
	case MilliOfDay:
		return t.nanoOfDay / nanosPerMilli, nil
	case SecondOfMinute:
		return int64(t.Second()), nil
	case SecondOfDay:
		return t.ToSecondOfDay(), nil
	case MinuteOfHour:
		return int64(t.Minute()), nil
	case MinuteOfDay:
		return t.nanoOfDay / nanosPerMinute, nil
	case HourOfAmPm:
		return hour % 12, nil
	case ClockHourOfAmPm:
		if hour%12 == 0 {
			return 12, nil
		}
		return hour % 12, nil
	case HourOfDay:
		return hour, nil
	case ClockHourOfDay:
		if hour == 0 {
			return 24, nil
		}
		return hour, nil
	case AmPmOfDay:
		return hour / 12, nil
	}
	return 0, unsupportedField(f)
}

// With returns t with the field f set to v. Setting a field of the day, such
// as SecondOfDay, may change all other fields.
func (t LocalTime) With(f Field, v int64) (LocalTime, error) {
	if !t.IsSupported(f) {
		return LocalTime{}, unsupportedField(f)
	}
	if _, err := f.checkValid(v); err != nil {
		return LocalTime{}, err
	}
	hour := int64(t.Hour())
	switch f {
	case NanoOfSecond:
		return t.withNano(v), nil
	case NanoOfDay:
		return LocalTime{v}, nil
	case MicroOfSecond:
		return t.withNano(v * 1000), nil
	case MicroOfDay:
		return LocalTime{v * 1000}, nil
	case MilliOfSecond:
		return t.withNano(v * nanosPerMilli), nil
	case MilliOfDay:
		return LocalTime{v * nanosPerMilli}, nil
	case SecondOfMinute:
		return t.PlusSeconds(v - int64(t.Second())), nil
	case SecondOfDay:
		return t.PlusSeconds(v - t.ToSecondOfDay()), nil
	case MinuteOfHour:
		return t.PlusMinutes(v - int64(t.Minute())), nil
	case MinuteOfDay:
		return t.PlusMinutes(v - t.nanoOfDay/nanosPerMinute), nil
	case HourOfAmPm:
		return t.PlusHours(v - hour%12), nil
	case ClockHourOfAmPm:
		if v == 12 {
			v = 0
		}
		return t.PlusHours(v - hour%12), nil
	case HourOfDay:
		return t.PlusHours(v - hour), nil
	case ClockHourOfDay:
		if v == 24 {
			v = 0
		}
		return t.PlusHours(v - hour), nil
	case AmPmOfDay:
		return t.PlusHours((v - hour/12) * 12), nil
	}
	return LocalTime{}, unsupportedField(f)
}

func (t LocalTime) withNano(nano int64) LocalTime {
	return LocalTime{t.nanoOfDay - int64(t.Nano()) + nano}
}

// WithHour returns t with the hour of the day changed.
func (t LocalTime) WithHour(hour int) (LocalTime, error) {
	return t.With(HourOfDay, int64(hour))
}

// WithMinute returns t with the minute of the hour changed.
func (t LocalTime) WithMinute(minute int) (LocalTime, error) {
	return t.With(MinuteOfHour, int64(minute))
}

// WithSecond returns t with the second of the minute changed.
func (t LocalTime) WithSecond(second int) (LocalTime, error) {
	return t.With(SecondOfMinute, int64(second))
}

// WithNano returns t with the nanosecond of the second changed.
func (t LocalTime) WithNano(nano int) (LocalTime, error) {
	return t.With(NanoOfSecond, int64(nano))
}

// Plus returns t plus the given amount of u, wrapping around midnight.
func (t LocalTime) Plus(amount int64, u Unit) (LocalTime, error) {
	switch u {
	case Nanos:
		return t.PlusNanos(amount), nil
	case Micros:
		return t.PlusNanos((amount % microsPerDay) * 1000), nil
	case Millis:
		return t.PlusNanos((amount % millisPerDay) * nanosPerMilli), nil
	case Seconds:
		return t.PlusSeconds(amount), nil
	case Minutes:
		return t.PlusMinutes(amount), nil
	case Hours:
		return t.PlusHours(amount), nil
	case HalfDays:
		return t.PlusHours((amount % 2) * 12), nil
	}
	return LocalTime{}, unsupportedUnit(u)
}

// Minus returns t minus the given amount of u, wrapping around midnight.
func (t LocalTime) Minus(amount int64, u Unit) (LocalTime, error) {
	if !t.IsSupportedUnit(u) {
		return LocalTime{}, unsupportedUnit(u)
	}
	return minusAmount(t, amount, func(t LocalTime, n int64) (LocalTime, error) { return t.Plus(n, u) })
}

func (t LocalTime) plusWrapped(nanos int64) LocalTime {
	return LocalTime{mathx.FloorMod(t.nanoOfDay+nanos, nanosPerDay)}
}

// PlusHours returns t plus the given number of hours, wrapping around
// midnight.
func (t LocalTime) PlusHours(hours int64) LocalTime {
	return t.plusWrapped((hours % hoursPerDay) * nanosPerHour)
}

// PlusMinutes returns t plus the given number of minutes, wrapping around
// midnight.
func (t LocalTime) PlusMinutes(minutes int64) LocalTime {
	return t.plusWrapped((minutes % minutesPerDay) * nanosPerMinute)
}

// PlusSeconds returns t plus the given number of seconds, wrapping around
// midnight.
func (t LocalTime) PlusSeconds(seconds int64) LocalTime {
	return t.plusWrapped((seconds % secondsPerDay) * nanosPerSecond)
}

// PlusNanos returns t plus the given number of nanoseconds, wrapping around
// midnight.
func (t LocalTime) PlusNanos(nanos int64) LocalTime {
	return t.plusWrapped(nanos % nanosPerDay)
}

// MinusHours returns t minus the given number of hours.
func (t LocalTime) MinusHours(hours int64) LocalTime {
	return t.PlusHours(-(hours % hoursPerDay))
}

// MinusMinutes returns t minus the given number of minutes.
func (t LocalTime) MinusMinutes(minutes int64) LocalTime {
	return t.PlusMinutes(-(minutes % minutesPerDay))
}

// MinusSeconds returns t minus the given number of seconds.
func (t LocalTime) MinusSeconds(seconds int64) LocalTime {
	return t.PlusSeconds(-(seconds % secondsPerDay))
}

// MinusNanos returns t minus the given number of nanoseconds.
func (t LocalTime) MinusNanos(nanos int64) LocalTime {
	return t.PlusNanos(-(nanos % nanosPerDay))
}

// TruncatedTo returns t with all fields smaller than u set to zero. u must
// divide a day without remainder; Days truncates to midnight.
func (t LocalTime) TruncatedTo(u Unit) (LocalTime, error) {
	if u == Nanos {
		return t, nil
	}
	dur, err := u.truncationNanos()
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{t.nanoOfDay / dur * dur}, nil
}

// TruncatedToDuration is like TruncatedTo, for an arbitrary duration that
// divides a day without remainder, such as 90 minutes.
func (t LocalTime) TruncatedToDuration(d time.Duration) (LocalTime, error) {
	dur, err := durationTruncationNanos(d)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{t.nanoOfDay / dur * dur}, nil
}

// Until returns the number of complete units u from t to the time of day of
// end. The result is negative if end is earlier in the day.
func (t LocalTime) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := LocalTimeFrom(end)
	if err != nil {
		return 0, err
	}
	if !u.IsTimeBased() {
		return 0, unsupportedUnit(u)
	}
	return (e.nanoOfDay - t.nanoOfDay) / unitNanos(u), nil
}

// unitNanos returns the length of a time unit in nanoseconds.
func unitNanos(u Unit) int64 {
	secs, nanos := u.DurationSeconds()
	return secs*nanosPerSecond + nanos
}

// Compare compares t and o. It returns -1 if t is earlier in the day than o,
// +1 if it is later, and 0 if they are equal.
func (t LocalTime) Compare(o LocalTime) int {
	return cmp.Compare(t.nanoOfDay, o.nanoOfDay)
}

// IsBefore reports whether t is earlier in the day than o.
func (t LocalTime) IsBefore(o LocalTime) bool {
	return t.nanoOfDay < o.nanoOfDay
}

// IsAfter reports whether t is later in the day than o.
func (t LocalTime) IsAfter(o LocalTime) bool {
	return t.nanoOfDay > o.nanoOfDay
}

// Equal reports whether t == o.
func (t LocalTime) Equal(o LocalTime) bool {
	return t == o
}

// AtDate combines t with a date.
func (t LocalTime) AtDate(d LocalDate) LocalDateTime {
	return LocalDateTime{d, t}
}

// AtOffset combines t with an offset.
func (t LocalTime) AtOffset(offset ZoneOffset) OffsetTime {
	return OffsetTime{t, offset}
}

// GoString implements fmt.GoStringer.
func (t LocalTime) GoString() string {
	return fmt.Sprintf("chrono.MustLocalTime(%d, %d, %d, %d)", t.Hour(), t.Minute(), t.Second(), t.Nano())
}

// String returns t in ISO 8601 format. The shortest of HH:mm, HH:mm:ss,
// HH:mm:ss.SSS, HH:mm:ss.SSSSSS and HH:mm:ss.SSSSSSSSS is used that does not
// lose information.
func (t LocalTime) String() string {
	var buf [24]byte
	return string(t.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of t to b.
func (t LocalTime) AppendText(b []byte) []byte {
	return appendClock(b, t.nanoOfDay, false)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t LocalTime) MarshalText() ([]byte, error) {
	return t.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *LocalTime) UnmarshalText(b []byte) error {
	v, err := ParseLocalTime(string(b))
	if err == nil {
		*t = v
	}
	return err
}

// appendClock appends the time of day in ISO 8601 format. Seconds are omitted
// if they and the fraction are zero, unless seconds is true.
func appendClock(b []byte, nanoOfDay int64, seconds bool) []byte {
	t := LocalTime{nanoOfDay}
	b = append2(b, t.Hour())
	b = append(b, ':')
	b = append2(b, t.Minute())
	nano := t.Nano()
	if !seconds && t.Second() == 0 && nano == 0 {
		return b
	}
	b = append(b, ':')
	b = append2(b, t.Second())
	if nano == 0 {
		return b
	}
	b = append(b, '.')
	switch {
	case nano%1_000_000 == 0:
		return appendPadded(b, int64(nano/1_000_000), 3)
	case nano%1000 == 0:
		return appendPadded(b, int64(nano/1000), 6)
	}
	return appendPadded(b, int64(nano), 9)
}

// append2 appends v as two decimal digits.
func append2(b []byte, v int) []byte {
	return append(b, byte('0'+v/10), byte('0'+v%10))
}

// appendPadded appends the non-negative v with at least width digits.
func appendPadded(b []byte, v int64, width int) []byte {
	var buf [20]byte
	s := strconv.AppendInt(buf[:0], v, 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
