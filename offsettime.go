// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// An OffsetTime is a time of day with a fixed offset from UTC, such as
// 10:15:30+01:00.
//
// OffsetTime values can be compared with ==, which requires the same time
// and offset.
type OffsetTime struct {
	time   LocalTime
	offset ZoneOffset
}

// OffsetTimeOf returns the time of day with the given fields and offset.
func OffsetTimeOf(hour, minute, second, nano int, offset ZoneOffset) (OffsetTime, error) {
	t, err := LocalTimeOf(hour, minute, second, nano)
	if err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{t, offset}, nil
}

// MustOffsetTime is like OffsetTimeOf, but panics on error.
func MustOffsetTime(hour, minute, second, nano int, offset ZoneOffset) OffsetTime {
	t, err := OffsetTimeOf(hour, minute, second, nano, offset)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetTimeOfInstant returns the time of day of i at the given offset.
func OffsetTimeOfInstant(i Instant, offset ZoneOffset) OffsetTime {
	return OffsetTime{LocalTimeOfInstant(i, offset), offset}
}

// OffsetTimeNow returns the current time of day of c, at the offset of c.
func OffsetTimeNow(c Clock) OffsetTime {
	return OffsetTimeOfInstant(c.Instant(), c.Offset())
}

// OffsetTimeFrom extracts the time of day and offset from t.
func OffsetTimeFrom(t TemporalAccessor) (OffsetTime, error) {
	switch v := t.(type) {
	case OffsetTime:
		return v, nil
	case OffsetDateTime:
		return v.ToOffsetTime(), nil
	}
	lt, err := LocalTimeFrom(t)
	if err != nil {
		return OffsetTime{}, errors.Mark(errors.Wrapf(err, "unable to obtain OffsetTime from %T", t), ErrTypeMismatch)
	}
	offset, err := ZoneOffsetFrom(t)
	if err != nil {
		return OffsetTime{}, errors.Mark(errors.Wrapf(err, "unable to obtain OffsetTime from %T", t), ErrTypeMismatch)
	}
	return OffsetTime{lt, offset}, nil
}

// LocalTime returns the time of day of t, without the offset.
func (t OffsetTime) LocalTime() LocalTime { return t.time }

// Offset returns the offset of t.
func (t OffsetTime) Offset() ZoneOffset { return t.offset }

// Hour returns the hour of the day.
func (t OffsetTime) Hour() int { return t.time.Hour() }

// Minute returns the minute of the hour.
func (t OffsetTime) Minute() int { return t.time.Minute() }

// Second returns the second of the minute.
func (t OffsetTime) Second() int { return t.time.Second() }

// Nano returns the nanosecond of the second.
func (t OffsetTime) Nano() int { return t.time.Nano() }

// epochNano returns the nanosecond of the day, converted to UTC. The result
// may lie outside of a single day.
func (t OffsetTime) epochNano() int64 {
	return t.time.nanoOfDay - int64(t.offset.seconds)*nanosPerSecond
}

// WithOffsetSameLocal returns t with the offset replaced and the time of day
// unchanged.
func (t OffsetTime) WithOffsetSameLocal(offset ZoneOffset) OffsetTime {
	return OffsetTime{t.time, offset}
}

// WithOffsetSameInstant returns the time of day at the given offset that
// denotes the same instant as t, wrapping around midnight.
func (t OffsetTime) WithOffsetSameInstant(offset ZoneOffset) OffsetTime {
	diff := int64(offset.seconds) - int64(t.offset.seconds)
	return OffsetTime{t.time.PlusSeconds(diff), offset}
}

// IsSupported reports whether f is a time field or OffsetSeconds.
func (t OffsetTime) IsSupported(f Field) bool {
	return f == OffsetSeconds || f.IsTimeBased()
}

// IsSupportedUnit reports whether u is a time unit.
func (t OffsetTime) IsSupportedUnit(u Unit) bool {
	return u.IsTimeBased()
}

// Range returns the range of valid values for f.
func (t OffsetTime) Range(f Field) (ValueRange, error) {
	if f == OffsetSeconds {
		return f.Range(), nil
	}
	return t.time.Range(f)
}

// Get returns the value of f as an int.
func (t OffsetTime) Get(f Field) (int, error) {
	return getInt(t, f)
}

// GetLong returns the value of f.
func (t OffsetTime) GetLong(f Field) (int64, error) {
	if f == OffsetSeconds {
		return int64(t.offset.seconds), nil
	}
	return t.time.GetLong(f)
}

// With returns t with the field f set to v. Setting OffsetSeconds keeps the
// time of day.
func (t OffsetTime) With(f Field, v int64) (OffsetTime, error) {
	if f == OffsetSeconds {
		if _, err := f.checkValid(v); err != nil {
			return OffsetTime{}, err
		}
		return OffsetTime{t.time, ZoneOffset{int32(v)}}, nil
	}
	lt, err := t.time.With(f, v)
	if err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{lt, t.offset}, nil
}

// Plus returns t plus the given amount of u, wrapping around midnight.
func (t OffsetTime) Plus(amount int64, u Unit) (OffsetTime, error) {
	lt, err := t.time.Plus(amount, u)
	if err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{lt, t.offset}, nil
}

// Minus returns t minus the given amount of u, wrapping around midnight.
func (t OffsetTime) Minus(amount int64, u Unit) (OffsetTime, error) {
	lt, err := t.time.Minus(amount, u)
	if err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{lt, t.offset}, nil
}

// PlusHours returns t plus the given number of hours.
func (t OffsetTime) PlusHours(hours int64) OffsetTime {
	return OffsetTime{t.time.PlusHours(hours), t.offset}
}

// PlusMinutes returns t plus the given number of minutes.
func (t OffsetTime) PlusMinutes(minutes int64) OffsetTime {
	return OffsetTime{t.time.PlusMinutes(minutes), t.offset}
}

// PlusSeconds returns t plus the given number of seconds.
func (t OffsetTime) PlusSeconds(seconds int64) OffsetTime {
	return OffsetTime{t.time.PlusSeconds(seconds), t.offset}
}

// PlusNanos returns t plus the given number of nanoseconds.
func (t OffsetTime) PlusNanos(nanos int64) OffsetTime {
	return OffsetTime{t.time.PlusNanos(nanos), t.offset}
}

// TruncatedTo returns t with the time of day truncated to u.
func (t OffsetTime) TruncatedTo(u Unit) (OffsetTime, error) {
	lt, err := t.time.TruncatedTo(u)
	if err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{lt, t.offset}, nil
}

// Until returns the number of complete units u from t to end, after
// adjusting both for their offsets. The result lies within about two days in
// either direction.
func (t OffsetTime) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := OffsetTimeFrom(end)
	if err != nil {
		return 0, err
	}
	if !u.IsTimeBased() {
		return 0, unsupportedUnit(u)
	}
	return (e.epochNano() - t.epochNano()) / unitNanos(u), nil
}

// AtDate combines t with a date.
func (t OffsetTime) AtDate(d LocalDate) OffsetDateTime {
	return OffsetDateTime{LocalDateTime{d, t.time}, t.offset}
}

// Compare compares t and o by their time of day converted to UTC and then by
// the local time of day.
func (t OffsetTime) Compare(o OffsetTime) int {
	if t.offset == o.offset {
		return t.time.Compare(o.time)
	}
	if c := cmp.Compare(t.epochNano(), o.epochNano()); c != 0 {
		return c
	}
	return t.time.Compare(o.time)
}

// IsEqual reports whether t and o denote the same instant on any date.
func (t OffsetTime) IsEqual(o OffsetTime) bool {
	return t.epochNano() == o.epochNano()
}

// IsBefore reports whether t denotes an instant before o, on the same date.
func (t OffsetTime) IsBefore(o OffsetTime) bool {
	return t.epochNano() < o.epochNano()
}

// IsAfter reports whether t denotes an instant after o, on the same date.
func (t OffsetTime) IsAfter(o OffsetTime) bool {
	return t.epochNano() > o.epochNano()
}

// Equal reports whether t == o.
func (t OffsetTime) Equal(o OffsetTime) bool {
	return t == o
}

// String returns t in ISO 8601 format, such as 10:15:30+01:00.
func (t OffsetTime) String() string {
	var buf [32]byte
	return string(t.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of t to b.
func (t OffsetTime) AppendText(b []byte) []byte {
	return t.offset.appendID(t.time.AppendText(b))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t OffsetTime) MarshalText() ([]byte, error) {
	return t.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *OffsetTime) UnmarshalText(b []byte) error {
	v, err := ParseOffsetTime(string(b))
	if err == nil {
		*t = v
	}
	return err
}
