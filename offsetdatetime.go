// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"time"
)

// An OffsetDateTime is a date and time of day with a fixed offset from UTC,
// such as 2007-12-03T10:15:30+01:00. It denotes a point on the time-line,
// but the offset is kept as given: it is never derived from time-zone rules.
//
// OffsetDateTime values can be compared with ==, which requires the same
// local date-time and the same offset. Use IsEqual to compare points on the
// time-line.
type OffsetDateTime struct {
	dt     LocalDateTime
	offset ZoneOffset
}

// The smallest and largest supported OffsetDateTime.
var (
	MinOffsetDateTime = OffsetDateTime{MinLocalDateTime, MaxOffset}
	MaxOffsetDateTime = OffsetDateTime{MaxLocalDateTime, MinOffset}
)

// OffsetDateTimeOf returns the date-time with the given fields and offset.
func OffsetDateTimeOf(year int, month Month, day, hour, minute, second, nano int, offset ZoneOffset) (OffsetDateTime, error) {
	dt, err := LocalDateTimeOf(year, month, day, hour, minute, second, nano)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt, offset}, nil
}

// MustOffsetDateTime is like OffsetDateTimeOf, but panics on error.
func MustOffsetDateTime(year int, month Month, day, hour, minute, second, nano int, offset ZoneOffset) OffsetDateTime {
	odt, err := OffsetDateTimeOf(year, month, day, hour, minute, second, nano, offset)
	if err != nil {
		panic(err)
	}
	return odt
}

// OffsetDateTimeOfInstant returns the date-time of i at the given offset.
func OffsetDateTimeOfInstant(i Instant, offset ZoneOffset) (OffsetDateTime, error) {
	dt, err := LocalDateTimeOfInstant(i, offset)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt, offset}, nil
}

// OffsetDateTimeOfTime converts a time.Time, keeping its offset.
func OffsetDateTimeOfTime(t time.Time) (OffsetDateTime, error) {
	_, secs := t.Zone()
	offset, err := ZoneOffsetOfTotalSeconds(secs)
	if err != nil {
		return OffsetDateTime{}, err
	}
	i, err := InstantOfTime(t)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTimeOfInstant(i, offset)
}

// OffsetDateTimeNow returns the current date-time of c, at the offset of c.
func OffsetDateTimeNow(c Clock) (OffsetDateTime, error) {
	return OffsetDateTimeOfInstant(c.Instant(), c.Offset())
}

// OffsetDateTimeFrom converts t. t must have an offset and either a date and
// time of day or a point on the time-line.
func OffsetDateTimeFrom(t TemporalAccessor) (OffsetDateTime, error) {
	if odt, ok := t.(OffsetDateTime); ok {
		return odt, nil
	}
	offset, err := ZoneOffsetFrom(t)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if dt, err := LocalDateTimeFrom(t); err == nil {
		return OffsetDateTime{dt, offset}, nil
	}
	i, err := InstantFrom(t)
	if err != nil {
		return OffsetDateTime{}, typeMismatch("OffsetDateTime", t)
	}
	return OffsetDateTimeOfInstant(i, offset)
}

// LocalDateTime returns the local date-time of odt, without the offset.
func (odt OffsetDateTime) LocalDateTime() LocalDateTime { return odt.dt }

// LocalDate returns the local date of odt.
func (odt OffsetDateTime) LocalDate() LocalDate { return odt.dt.date }

// LocalTime returns the local time of day of odt.
func (odt OffsetDateTime) LocalTime() LocalTime { return odt.dt.time }

// Offset returns the offset of odt.
func (odt OffsetDateTime) Offset() ZoneOffset { return odt.offset }

// Year returns the year of odt.
func (odt OffsetDateTime) Year() int { return odt.dt.Year() }

// Month returns the month of the year of odt.
func (odt OffsetDateTime) Month() Month { return odt.dt.Month() }

// Day returns the day of the month of odt.
func (odt OffsetDateTime) Day() int { return odt.dt.Day() }

// Hour returns the hour of the day of odt.
func (odt OffsetDateTime) Hour() int { return odt.dt.Hour() }

// Minute returns the minute of the hour of odt.
func (odt OffsetDateTime) Minute() int { return odt.dt.Minute() }

// Second returns the second of the minute of odt.
func (odt OffsetDateTime) Second() int { return odt.dt.Second() }

// Nano returns the nanosecond of the second of odt.
func (odt OffsetDateTime) Nano() int { return odt.dt.Nano() }

// Weekday returns the day of the week of odt.
func (odt OffsetDateTime) Weekday() time.Weekday { return odt.dt.Weekday() }

// ToEpochSecond returns the number of seconds since 1970-01-01T00:00Z.
func (odt OffsetDateTime) ToEpochSecond() int64 {
	return odt.dt.ToEpochSecond(odt.offset)
}

// ToInstant returns the point on the time-line denoted by odt.
func (odt OffsetDateTime) ToInstant() Instant {
	return odt.dt.ToInstant(odt.offset)
}

// ToOffsetTime returns the time of day and offset of odt.
func (odt OffsetDateTime) ToOffsetTime() OffsetTime {
	return OffsetTime{odt.dt.time, odt.offset}
}

// Time converts odt to a time.Time with a fixed location.
func (odt OffsetDateTime) Time() time.Time {
	return odt.ToInstant().Time().In(odt.offset.Location())
}

// WithOffsetSameLocal returns odt with the offset replaced and the local
// date-time unchanged. The result denotes a different instant, unless the
// offsets are equal.
func (odt OffsetDateTime) WithOffsetSameLocal(offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{odt.dt, offset}
}

// WithOffsetSameInstant returns the date-time at the given offset that
// denotes the same instant as odt. The local date may change.
func (odt OffsetDateTime) WithOffsetSameInstant(offset ZoneOffset) (OffsetDateTime, error) {
	if offset == odt.offset {
		return odt, nil
	}
	dt, err := odt.dt.PlusSeconds(int64(offset.seconds) - int64(odt.offset.seconds))
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt, offset}, nil
}

// IsSupported reports whether f is a date or time field, InstantSeconds or
// OffsetSeconds.
func (odt OffsetDateTime) IsSupported(f Field) bool {
	return f == InstantSeconds || f == OffsetSeconds || odt.dt.IsSupported(f)
}

// IsSupportedUnit reports whether u is a date or time unit.
func (odt OffsetDateTime) IsSupportedUnit(u Unit) bool {
	return odt.dt.IsSupportedUnit(u)
}

// Range returns the range of valid values for f.
func (odt OffsetDateTime) Range(f Field) (ValueRange, error) {
	if f == InstantSeconds || f == OffsetSeconds {
		return f.Range(), nil
	}
	return odt.dt.Range(f)
}

// Get returns the value of f as an int. InstantSeconds must be accessed
// using GetLong.
func (odt OffsetDateTime) Get(f Field) (int, error) {
	return getInt(odt, f)
}

// GetLong returns the value of f.
func (odt OffsetDateTime) GetLong(f Field) (int64, error) {
	switch f {
	case InstantSeconds:
		return odt.ToEpochSecond(), nil
	case OffsetSeconds:
		return int64(odt.offset.seconds), nil
	}
	return odt.dt.GetLong(f)
}

// With returns odt with the field f set to v. Setting InstantSeconds keeps
// the offset and the nanosecond; setting OffsetSeconds keeps the local
// date-time.
func (odt OffsetDateTime) With(f Field, v int64) (OffsetDateTime, error) {
	switch f {
	case InstantSeconds:
		i, err := InstantOfEpochSecond(v, int64(odt.Nano()))
		if err != nil {
			return OffsetDateTime{}, err
		}
		return OffsetDateTimeOfInstant(i, odt.offset)
	case OffsetSeconds:
		if _, err := f.checkValid(v); err != nil {
			return OffsetDateTime{}, err
		}
		return OffsetDateTime{odt.dt, ZoneOffset{int32(v)}}, nil
	}
	return odt.withDateTime(odt.dt.With(f, v))
}

func (odt OffsetDateTime) withDateTime(dt LocalDateTime, err error) (OffsetDateTime, error) {
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt, odt.offset}, nil
}

// Plus returns odt plus the given amount of u, keeping the offset.
func (odt OffsetDateTime) Plus(amount int64, u Unit) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.Plus(amount, u))
}

// Minus returns odt minus the given amount of u, keeping the offset.
func (odt OffsetDateTime) Minus(amount int64, u Unit) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.Minus(amount, u))
}

// PlusYears returns odt plus the given number of years.
func (odt OffsetDateTime) PlusYears(years int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusYears(years))
}

// PlusMonths returns odt plus the given number of months.
func (odt OffsetDateTime) PlusMonths(months int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusMonths(months))
}

// PlusWeeks returns odt plus the given number of weeks.
func (odt OffsetDateTime) PlusWeeks(weeks int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusWeeks(weeks))
}

// PlusDays returns odt plus the given number of days.
func (odt OffsetDateTime) PlusDays(days int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusDays(days))
}

// PlusHours returns odt plus the given number of hours.
func (odt OffsetDateTime) PlusHours(hours int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusHours(hours))
}

// PlusMinutes returns odt plus the given number of minutes.
func (odt OffsetDateTime) PlusMinutes(minutes int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusMinutes(minutes))
}

// PlusSeconds returns odt plus the given number of seconds.
func (odt OffsetDateTime) PlusSeconds(seconds int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusSeconds(seconds))
}

// PlusNanos returns odt plus the given number of nanoseconds.
func (odt OffsetDateTime) PlusNanos(nanos int64) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.PlusNanos(nanos))
}

// PlusPeriod returns odt plus p. See AddPeriod.
func (odt OffsetDateTime) PlusPeriod(p Period) (OffsetDateTime, error) {
	return AddPeriod(odt, p)
}

// MinusPeriod returns odt minus p. See SubtractPeriod.
func (odt OffsetDateTime) MinusPeriod(p Period) (OffsetDateTime, error) {
	return SubtractPeriod(odt, p)
}

// TruncatedTo returns odt with the local time of day truncated to u.
func (odt OffsetDateTime) TruncatedTo(u Unit) (OffsetDateTime, error) {
	return odt.withDateTime(odt.dt.TruncatedTo(u))
}

// Until returns the number of complete units u from odt to end. end is
// converted to the offset of odt first, so the result is independent of the
// offset of end.
func (odt OffsetDateTime) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := OffsetDateTimeFrom(end)
	if err != nil {
		return 0, err
	}
	e, err = e.WithOffsetSameInstant(odt.offset)
	if err != nil {
		return 0, err
	}
	return odt.dt.Until(e.dt, u)
}

// Compare compares odt and o by instant and then by local date-time. It
// returns 0 only if odt == o, so two values denoting the same instant at
// different offsets are not equal under Compare.
func (odt OffsetDateTime) Compare(o OffsetDateTime) int {
	if c := TimelineOrder(odt, o); c != 0 {
		return c
	}
	return odt.dt.Compare(o.dt)
}

// TimelineOrder compares a and b by the instant they denote only. It can be
// used with slices.SortFunc.
func TimelineOrder(a, b OffsetDateTime) int {
	if a.offset == b.offset {
		return a.dt.Compare(b.dt)
	}
	if c := cmp.Compare(a.ToEpochSecond(), b.ToEpochSecond()); c != 0 {
		return c
	}
	return cmp.Compare(a.Nano(), b.Nano())
}

// IsEqual reports whether odt and o denote the same instant.
func (odt OffsetDateTime) IsEqual(o OffsetDateTime) bool {
	return TimelineOrder(odt, o) == 0
}

// IsBefore reports whether odt denotes an instant before o.
func (odt OffsetDateTime) IsBefore(o OffsetDateTime) bool {
	return TimelineOrder(odt, o) < 0
}

// IsAfter reports whether odt denotes an instant after o.
func (odt OffsetDateTime) IsAfter(o OffsetDateTime) bool {
	return TimelineOrder(odt, o) > 0
}

// Equal reports whether odt == o.
func (odt OffsetDateTime) Equal(o OffsetDateTime) bool {
	return odt == o
}

// String returns odt in ISO 8601 format, such as
// 2007-12-03T10:15:30+01:00.
func (odt OffsetDateTime) String() string {
	var buf [64]byte
	return string(odt.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of odt to b.
func (odt OffsetDateTime) AppendText(b []byte) []byte {
	return odt.offset.appendID(odt.dt.AppendText(b))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (odt OffsetDateTime) MarshalText() ([]byte, error) {
	return odt.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (odt *OffsetDateTime) UnmarshalText(b []byte) error {
	v, err := ParseOffsetDateTime(string(b))
	if err == nil {
		*odt = v
	}
	return err
}
