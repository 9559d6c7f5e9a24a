// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/cache"
)

// A ZoneOffset is a fixed offset from UTC, such as +02:00, in the range
// -18:00 to +18:00. It carries no time-zone rules. The zero value is UTC.
//
// ZoneOffset values are comparable with ==.
type ZoneOffset struct {
	seconds int32
}

const maxOffsetSeconds = 18 * secondsPerHour

// Well-known offsets.
var (
	UTC       = ZoneOffset{}
	MinOffset = ZoneOffset{-maxOffsetSeconds}
	MaxOffset = ZoneOffset{maxOffsetSeconds}
)

// ZoneOffsetOfTotalSeconds returns the offset of the given number of seconds
// east of UTC.
func ZoneOffsetOfTotalSeconds(seconds int) (ZoneOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return ZoneOffset{}, invalidValuef("zone offset not in valid range: -18:00 to +18:00: %d seconds", seconds)
	}
	return ZoneOffset{int32(seconds)}, nil
}

// ZoneOffsetOfHours returns the offset of the given number of hours.
func ZoneOffsetOfHours(hours int) (ZoneOffset, error) {
	return ZoneOffsetOfHoursMinutesSeconds(hours, 0, 0)
}

// ZoneOffsetOfHoursMinutes returns the offset of the given hours and
// minutes, which must have the same sign.
func ZoneOffsetOfHoursMinutes(hours, minutes int) (ZoneOffset, error) {
	return ZoneOffsetOfHoursMinutesSeconds(hours, minutes, 0)
}

// ZoneOffsetOfHoursMinutesSeconds returns the offset of the given hours,
// minutes and seconds. The components must not have opposite signs, so
// -01:30 is (-1, -30, 0).
func ZoneOffsetOfHoursMinutesSeconds(hours, minutes, seconds int) (ZoneOffset, error) {
	if hours < -18 || hours > 18 {
		return ZoneOffset{}, invalidValuef("zone offset hours not in valid range: value %d is not in the range -18 to 18", hours)
	}
	switch {
	case hours > 0:
		if minutes < 0 || seconds < 0 {
			return ZoneOffset{}, invalidValuef("zone offset minutes and seconds must be positive because hours is positive")
		}
	case hours < 0:
		if minutes > 0 || seconds > 0 {
			return ZoneOffset{}, invalidValuef("zone offset minutes and seconds must be negative because hours is negative")
		}
	case (minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0):
		return ZoneOffset{}, invalidValuef("zone offset minutes and seconds must have the same sign")
	}
	if minutes < -59 || minutes > 59 {
		return ZoneOffset{}, invalidValuef("zone offset minutes not in valid range: value %d is not in the range -59 to 59", minutes)
	}
	if seconds < -59 || seconds > 59 {
		return ZoneOffset{}, invalidValuef("zone offset seconds not in valid range: value %d is not in the range -59 to 59", seconds)
	}
	if (hours == 18 || hours == -18) && (minutes|seconds) != 0 {
		return ZoneOffset{}, invalidValuef("zone offset not in valid range: -18:00 to +18:00")
	}
	return ZoneOffset{int32(hours*secondsPerHour + minutes*secondsPerMinute + seconds)}, nil
}

// memoize parsed offset identifiers.
var offsets cache.Memo[string, ZoneOffset]

// ParseZoneOffset parses an offset identifier. Accepted forms are Z, ±h,
// ±hh, ±hh:mm, ±hhmm, ±hh:mm:ss and ±hhmmss.
func ParseZoneOffset(id string) (ZoneOffset, error) {
	return offsets.Get(id, parseOffsetID)
}

func parseOffsetID(id string) (ZoneOffset, error) {
	if id == "Z" {
		return UTC, nil
	}
	p := newParser("offset", id)
	sign := p.sign(true)
	var h, m, s int
	switch len(id) {
	case 2:
		h = p.getnumN(1, true)
	case 3:
		h = p.getnumN(2, true)
	case 5:
		h, m = p.getnumN(2, true), p.getnumN(2, true)
	case 6:
		h = p.getnumN(2, true)
		p.accept(":")
		m = p.getnumN(2, true)
	case 7:
		h, m, s = p.getnumN(2, true), p.getnumN(2, true), p.getnumN(2, true)
	case 9:
		h = p.getnumN(2, true)
		p.accept(":")
		m = p.getnumN(2, true)
		p.accept(":")
		s = p.getnumN(2, true)
	default:
		p.fail("invalid offset format")
	}
	p.end()
	if p.hasErr {
		return ZoneOffset{}, p.err()
	}
	z, err := ZoneOffsetOfHoursMinutesSeconds(sign*h, sign*m, sign*s)
	if err != nil {
		p.invalid(err)
		return ZoneOffset{}, p.err()
	}
	return z, nil
}

// ZoneOffsetFrom extracts the offset from t. It fails with ErrTypeMismatch if
// t has no offset.
func ZoneOffsetFrom(t TemporalAccessor) (ZoneOffset, error) {
	switch v := t.(type) {
	case ZoneOffset:
		return v, nil
	case OffsetDateTime:
		return v.offset, nil
	case OffsetTime:
		return v.offset, nil
	}
	if t == nil || !t.IsSupported(OffsetSeconds) {
		return ZoneOffset{}, typeMismatch("ZoneOffset", t)
	}
	secs, err := t.GetLong(OffsetSeconds)
	if err != nil {
		return ZoneOffset{}, errors.Mark(errors.Wrapf(err, "unable to obtain ZoneOffset from %T", t), ErrTypeMismatch)
	}
	return ZoneOffsetOfTotalSeconds(int(secs))
}

// TotalSeconds returns the offset in seconds east of UTC.
func (z ZoneOffset) TotalSeconds() int {
	return int(z.seconds)
}

// Location returns a fixed time.Location for z.
func (z ZoneOffset) Location() *time.Location {
	if z.seconds == 0 {
		return time.UTC
	}
	return time.FixedZone(z.ID(), int(z.seconds))
}

// ID returns the normalized identifier of z: Z for UTC, otherwise ±hh:mm or
// ±hh:mm:ss.
func (z ZoneOffset) ID() string {
	if z.seconds == 0 {
		return "Z"
	}
	var buf [9]byte
	return string(z.appendID(buf[:0]))
}

func (z ZoneOffset) appendID(b []byte) []byte {
	if z.seconds == 0 {
		return append(b, 'Z')
	}
	abs := int(z.seconds)
	if abs < 0 {
		b = append(b, '-')
		abs = -abs
	} else {
		b = append(b, '+')
	}
	b = append2(b, abs/secondsPerHour)
	b = append(b, ':')
	b = append2(b, abs/secondsPerMinute%minutesPerHour)
	if s := abs % secondsPerMinute; s != 0 {
		b = append(b, ':')
		b = append2(b, s)
	}
	return b
}

// String returns the identifier of z.
func (z ZoneOffset) String() string {
	return z.ID()
}

// GoString implements fmt.GoStringer.
func (z ZoneOffset) GoString() string {
	return fmt.Sprintf("chrono.MustZoneOffset(%q)", z.ID())
}

// MustZoneOffset is like ParseZoneOffset, but panics on error.
func MustZoneOffset(id string) ZoneOffset {
	z, err := ParseZoneOffset(id)
	if err != nil {
		panic(err)
	}
	return z
}

// Compare orders offsets in descending order of their total seconds, so that
// offsets east of Greenwich come first. This matches the order of the local
// time of the same instant at these offsets.
func (z ZoneOffset) Compare(o ZoneOffset) int {
	return cmp.Compare(o.seconds, z.seconds)
}

// IsSupported reports whether f is OffsetSeconds.
func (z ZoneOffset) IsSupported(f Field) bool {
	return f == OffsetSeconds
}

// Range returns the range of valid values for f.
func (z ZoneOffset) Range(f Field) (ValueRange, error) {
	if !z.IsSupported(f) {
		return ValueRange{}, unsupportedField(f)
	}
	return f.Range(), nil
}

// Get returns the value of f as an int.
func (z ZoneOffset) Get(f Field) (int, error) {
	return getInt(z, f)
}

// GetLong returns the value of f.
func (z ZoneOffset) GetLong(f Field) (int64, error) {
	if !z.IsSupported(f) {
		return 0, unsupportedField(f)
	}
	return int64(z.seconds), nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (z ZoneOffset) MarshalText() ([]byte, error) {
	return z.appendID(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *ZoneOffset) UnmarshalText(b []byte) error {
	v, err := ParseZoneOffset(string(b))
	if err == nil {
		*z = v
	}
	return err
}
