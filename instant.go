// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"encoding/binary"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/mathx"
)

// An Instant is a point on the time-line, with nanosecond precision. It is
// represented as the number of seconds since 1970-01-01T00:00Z and a
// nanosecond of the second, which is never negative: one nanosecond before
// the epoch is -1 seconds plus 999,999,999 nanoseconds.
//
// The supported range is from -1000000000-01-01T00:00Z to
// 1000000000-12-31T23:59:59.999999999Z, so that every OffsetDateTime
// has an Instant. The zero value is the epoch.
//
// Instant values are comparable with ==.
type Instant struct {
	seconds int64
	nanos   int32
}

const (
	minSecond = -31557014167219200
	maxSecond = 31556889864403199
)

// Special instants.
var (
	Epoch      = Instant{}
	MinInstant = Instant{minSecond, 0}
	MaxInstant = Instant{maxSecond, 999_999_999}
)

// InstantOfEpochSecond returns the instant that is epochSecond seconds plus
// nanoAdjustment nanoseconds after the epoch. The adjustment may have any
// value and carries into the seconds; InstantOfEpochSecond(2, -1) is one
// nanosecond before the second 2.
func InstantOfEpochSecond(epochSecond, nanoAdjustment int64) (Instant, error) {
	secs, ok := mathx.AddExact(epochSecond, mathx.FloorDiv(nanoAdjustment, nanosPerSecond))
	if !ok {
		return Instant{}, overflowf("epoch second %d plus %d nanoseconds overflows", epochSecond, nanoAdjustment)
	}
	return newInstant(secs, mathx.FloorMod(nanoAdjustment, nanosPerSecond))
}

// InstantOfEpochMilli returns the instant that is the given number of
// milliseconds after the epoch. Every int64 is in range.
func InstantOfEpochMilli(epochMilli int64) Instant {
	return Instant{
		mathx.FloorDiv(epochMilli, 1000),
		int32(mathx.FloorMod(epochMilli, 1000) * nanosPerMilli),
	}
}

// InstantOfTime converts a time.Time.
func InstantOfTime(t time.Time) (Instant, error) {
	return newInstant(t.Unix(), int64(t.Nanosecond()))
}

// InstantNow returns the current instant of c.
func InstantNow(c Clock) Instant {
	return c.Instant()
}

// InstantFrom extracts the instant from t. It fails with ErrTypeMismatch if
// t does not denote a point on the time-line.
func InstantFrom(t TemporalAccessor) (Instant, error) {
	switch v := t.(type) {
	case Instant:
		return v, nil
	case OffsetDateTime:
		return v.ToInstant(), nil
	}
	if t == nil || !t.IsSupported(InstantSeconds) || !t.IsSupported(NanoOfSecond) {
		return Instant{}, typeMismatch("Instant", t)
	}
	secs, err := t.GetLong(InstantSeconds)
	if err != nil {
		return Instant{}, errors.Mark(errors.Wrapf(err, "unable to obtain Instant from %T", t), ErrTypeMismatch)
	}
	nanos, err := t.GetLong(NanoOfSecond)
	if err != nil {
		return Instant{}, errors.Mark(errors.Wrapf(err, "unable to obtain Instant from %T", t), ErrTypeMismatch)
	}
	return InstantOfEpochSecond(secs, nanos)
}

func newInstant(seconds, nanos int64) (Instant, error) {
	if seconds < minSecond || seconds > maxSecond {
		return Instant{}, outOfRangef("instant exceeds minimum or maximum instant: epoch second %d", seconds)
	}
	return Instant{seconds, int32(nanos)}, nil
}

// EpochSecond returns the number of seconds since the epoch. Together with
// Nano it describes i.
func (i Instant) EpochSecond() int64 {
	return i.seconds
}

// Nano returns the nanosecond of the second, in the range [0, 999999999].
func (i Instant) Nano() int {
	return int(i.nanos)
}

// ToEpochMilli returns the number of milliseconds since the epoch, discarding
// sub-millisecond precision towards negative infinity.
func (i Instant) ToEpochMilli() (int64, error) {
	secs, frac := i.seconds, int64(i.nanos)/nanosPerMilli
	if secs < 0 && i.nanos > 0 {
		secs++
		frac -= 1000
	}
	millis, ok := mathx.MulExact(secs, 1000)
	if ok {
		millis, ok = mathx.AddExact(millis, frac)
	}
	if !ok {
		return 0, overflowf("%v overflows the number of milliseconds", i)
	}
	return millis, nil
}

// Time converts i to a time.Time in UTC. The result is only meaningful if i
// is within the range of time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(i.seconds, int64(i.nanos)).UTC()
}

// IsSupported reports whether f is NanoOfSecond, MicroOfSecond,
// MilliOfSecond or InstantSeconds.
func (i Instant) IsSupported(f Field) bool {
	switch f {
	case NanoOfSecond, MicroOfSecond, MilliOfSecond, InstantSeconds:
		return true
	}
	return false
}

// IsSupportedUnit reports whether u is a time unit or Days.
func (i Instant) IsSupportedUnit(u Unit) bool {
	return u.IsTimeBased() || u == Days
}

// Range returns the range of valid values for f.
func (i Instant) Range(f Field) (ValueRange, error) {
	if !i.IsSupported(f) {
		return ValueRange{}, unsupportedField(f)
	}
	return f.Range(), nil
}

// Get returns the value of f as an int. InstantSeconds must be accessed using
// GetLong.
func (i Instant) Get(f Field) (int, error) {
	return getInt(i, f)
}

// GetLong returns the value of f.
func (i Instant) GetLong(f Field) (int64, error) {
	switch f {
	case NanoOfSecond:
		return int64(i.nanos), nil
	case MicroOfSecond:
		return int64(i.nanos) / 1000, nil
	case MilliOfSecond:
		return int64(i.nanos) / nanosPerMilli, nil
	case InstantSeconds:
		return i.seconds, nil
	}
	return 0, unsupportedField(f)
}

// With returns i with the field f set to v. Setting a sub-second field
// replaces the whole fraction of the second.
func (i Instant) With(f Field, v int64) (Instant, error) {
	if !i.IsSupported(f) {
		return Instant{}, unsupportedField(f)
	}
	if _, err := f.checkValid(v); err != nil {
		return Instant{}, err
	}
	switch f {
	case MilliOfSecond:
		return Instant{i.seconds, int32(v * nanosPerMilli)}, nil
	case MicroOfSecond:
		return Instant{i.seconds, int32(v * 1000)}, nil
	case NanoOfSecond:
		return Instant{i.seconds, int32(v)}, nil
	}
	return newInstant(v, int64(i.nanos))
}

// Plus returns i plus the given amount of u. Days are exactly 86400 seconds.
func (i Instant) Plus(amount int64, u Unit) (Instant, error) {
	switch u {
	case Nanos:
		return i.PlusNanos(amount)
	case Micros:
		return i.plus(amount/1_000_000, (amount%1_000_000)*1000)
	case Millis:
		return i.PlusMillis(amount)
	case Seconds:
		return i.PlusSeconds(amount)
	case Minutes, Hours, HalfDays, Days:
		secs, _ := u.DurationSeconds()
		n, ok := mathx.MulExact(amount, secs)
		if !ok {
			return Instant{}, overflowf("%d %v overflow the number of seconds", amount, u)
		}
		return i.PlusSeconds(n)
	}
	return Instant{}, unsupportedUnit(u)
}

// Minus returns i minus the given amount of u.
func (i Instant) Minus(amount int64, u Unit) (Instant, error) {
	if !i.IsSupportedUnit(u) {
		return Instant{}, unsupportedUnit(u)
	}
	return minusAmount(i, amount, func(i Instant, n int64) (Instant, error) { return i.Plus(n, u) })
}

// PlusSeconds returns i plus the given number of seconds.
func (i Instant) PlusSeconds(seconds int64) (Instant, error) {
	return i.plus(seconds, 0)
}

// PlusMillis returns i plus the given number of milliseconds.
func (i Instant) PlusMillis(millis int64) (Instant, error) {
	return i.plus(millis/1000, (millis%1000)*nanosPerMilli)
}

// PlusNanos returns i plus the given number of nanoseconds.
func (i Instant) PlusNanos(nanos int64) (Instant, error) {
	return i.plus(0, nanos)
}

// MinusSeconds returns i minus the given number of seconds.
func (i Instant) MinusSeconds(seconds int64) (Instant, error) {
	return minusAmount(i, seconds, Instant.PlusSeconds)
}

// MinusMillis returns i minus the given number of milliseconds.
func (i Instant) MinusMillis(millis int64) (Instant, error) {
	return minusAmount(i, millis, Instant.PlusMillis)
}

// MinusNanos returns i minus the given number of nanoseconds.
func (i Instant) MinusNanos(nanos int64) (Instant, error) {
	return minusAmount(i, nanos, Instant.PlusNanos)
}

// Add returns i+d.
func (i Instant) Add(d time.Duration) (Instant, error) {
	return i.PlusNanos(int64(d))
}

func (i Instant) plus(seconds, nanos int64) (Instant, error) {
	if seconds|nanos == 0 {
		return i, nil
	}
	secs, ok := mathx.AddExact(i.seconds, seconds)
	if ok {
		secs, ok = mathx.AddExact(secs, nanos/nanosPerSecond)
	}
	if !ok {
		return Instant{}, overflowf("%v plus %ds %dns overflows", i, seconds, nanos)
	}
	return InstantOfEpochSecond(secs, int64(i.nanos)+nanos%nanosPerSecond)
}

// TruncatedTo returns i with all fields smaller than u set to zero, counting
// days in UTC. u must divide a day without remainder.
func (i Instant) TruncatedTo(u Unit) (Instant, error) {
	if u == Nanos {
		return i, nil
	}
	dur, err := u.truncationNanos()
	if err != nil {
		return Instant{}, err
	}
	return i.truncate(dur)
}

// TruncatedToDuration is like TruncatedTo, for an arbitrary duration that
// divides a day without remainder: 90 minutes is accepted, 95 minutes is
// not.
func (i Instant) TruncatedToDuration(d time.Duration) (Instant, error) {
	dur, err := durationTruncationNanos(d)
	if err != nil {
		return Instant{}, err
	}
	return i.truncate(dur)
}

func (i Instant) truncate(dur int64) (Instant, error) {
	nod := (i.seconds%secondsPerDay)*nanosPerSecond + int64(i.nanos)
	return i.PlusNanos(mathx.FloorDiv(nod, dur)*dur - nod)
}

var bigNanosPerSecond = big.NewInt(nanosPerSecond)

// Until returns the number of complete units u from i to end. Sub-second
// units are computed without intermediate overflow; a result that does not
// fit into an int64 is an ErrOverflow.
func (i Instant) Until(end TemporalAccessor, u Unit) (int64, error) {
	e, err := InstantFrom(end)
	if err != nil {
		return 0, err
	}
	switch u {
	case Nanos, Micros, Millis:
		n := new(big.Int).Mul(big.NewInt(e.seconds-i.seconds), bigNanosPerSecond)
		n.Add(n, big.NewInt(int64(e.nanos-i.nanos)))
		n.Quo(n, big.NewInt(unitNanos(u)))
		if !n.IsInt64() {
			return 0, overflowf("number of %v between %v and %v overflows", u, i, e)
		}
		return n.Int64(), nil
	case Seconds, Minutes, Hours, HalfDays, Days:
		secs, _ := u.DurationSeconds()
		return i.secondsUntil(e) / secs, nil
	}
	return 0, unsupportedUnit(u)
}

// secondsUntil returns the number of whole seconds from i to end, truncated
// towards zero.
func (i Instant) secondsUntil(end Instant) int64 {
	secs := end.seconds - i.seconds
	nanos := end.nanos - i.nanos
	if secs > 0 && nanos < 0 {
		secs--
	} else if secs < 0 && nanos > 0 {
		secs++
	}
	return secs
}

// AtOffset returns the OffsetDateTime of i at the given offset. It fails if
// the local date-time is outside of the supported range of dates.
func (i Instant) AtOffset(offset ZoneOffset) (OffsetDateTime, error) {
	return OffsetDateTimeOfInstant(i, offset)
}

// Compare compares i and o on the time-line.
func (i Instant) Compare(o Instant) int {
	if c := cmp.Compare(i.seconds, o.seconds); c != 0 {
		return c
	}
	return cmp.Compare(i.nanos, o.nanos)
}

// IsBefore reports whether i is before o.
func (i Instant) IsBefore(o Instant) bool {
	return i.Compare(o) < 0
}

// IsAfter reports whether i is after o.
func (i Instant) IsAfter(o Instant) bool {
	return i.Compare(o) > 0
}

// Equal reports whether i == o.
func (i Instant) Equal(o Instant) bool {
	return i == o
}

// String returns i in ISO 8601 format in UTC, such as
// 2007-12-03T10:15:30.120Z. The seconds are always present and the fraction
// is printed in groups of three digits, as long as needed.
func (i Instant) String() string {
	var buf [48]byte
	return string(i.AppendText(buf[:0]))
}

// AppendText appends the ISO 8601 representation of i to b.
func (i Instant) AppendText(b []byte) []byte {
	year, month, day := fromEpochDay(mathx.FloorDiv(i.seconds, secondsPerDay))
	b = appendDate(b, year, month, day)
	b = append(b, 'T')
	b = appendClock(b, mathx.FloorMod(i.seconds, secondsPerDay)*nanosPerSecond+int64(i.nanos), true)
	return append(b, 'Z')
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i Instant) MarshalText() ([]byte, error) {
	return i.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (i *Instant) UnmarshalText(b []byte) error {
	v, err := ParseInstant(string(b))
	if err == nil {
		*i = v
	}
	return err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// instant is encoded as a [binary.Varint] of the epoch second followed by a
// [binary.Uvarint] of the nanosecond.
func (i Instant) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, binary.MaxVarintLen64+binary.MaxVarintLen32)
	b = binary.AppendVarint(b, i.seconds)
	return binary.AppendUvarint(b, uint64(i.nanos)), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (i *Instant) UnmarshalBinary(b []byte) error {
	secs, n := binary.Varint(b)
	if n <= 0 {
		return errors.New("encoded instant seconds invalid")
	}
	nanos, m := binary.Uvarint(b[n:])
	switch {
	case m <= 0:
		return errors.New("encoded instant nanoseconds invalid")
	case n+m != len(b):
		return errors.New("extra data after instant")
	case nanos >= nanosPerSecond:
		return invalidValuef("invalid value for NanoOfSecond: %d", nanos)
	}
	v, err := newInstant(secs, int64(nanos))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
