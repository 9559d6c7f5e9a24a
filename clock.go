// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"time"
)

// A Clock provides the current instant and the offset at which it should be
// observed. All functions in this package returning the current date or time
// take a Clock; none of them reads the system time directly.
type Clock interface {
	Instant() Instant
	Offset() ZoneOffset
}

type systemClock struct {
	offset ZoneOffset
}

// SystemClock returns a Clock reading the system time, observed at the given
// offset.
func SystemClock(offset ZoneOffset) Clock {
	return systemClock{offset}
}

// SystemClockUTC returns a Clock reading the system time in UTC.
func SystemClockUTC() Clock {
	return systemClock{UTC}
}

func (c systemClock) Instant() Instant {
	now := time.Now()
	return Instant{now.Unix(), int32(now.Nanosecond())}
}

func (c systemClock) Offset() ZoneOffset { return c.offset }

func (c systemClock) String() string {
	return "SystemClock[" + c.offset.ID() + "]"
}

type fixedClock struct {
	instant Instant
	offset  ZoneOffset
}

// FixedClock returns a Clock that always returns the same instant. It is
// meant for tests.
func FixedClock(i Instant, offset ZoneOffset) Clock {
	return fixedClock{i, offset}
}

func (c fixedClock) Instant() Instant { return c.instant }

func (c fixedClock) Offset() ZoneOffset { return c.offset }

func (c fixedClock) String() string {
	return "FixedClock[" + c.instant.String() + "," + c.offset.ID() + "]"
}

type offsetClock struct {
	base Clock
	d    time.Duration
}

// OffsetClock returns a Clock that is d ahead of base.
//
// Unlike the arithmetic of Instant, the clock does not report overflow: if
// the base instant plus d lies outside the supported range, Instant returns
// MinInstant or MaxInstant instead.
func OffsetClock(base Clock, d time.Duration) Clock {
	if d == 0 {
		return base
	}
	return offsetClock{base, d}
}

func (c offsetClock) Instant() Instant {
	i, err := c.base.Instant().Add(c.d)
	if err == nil {
		return i
	}
	if c.d < 0 {
		return MinInstant
	}
	return MaxInstant
}

func (c offsetClock) Offset() ZoneOffset { return c.base.Offset() }

// ClockFunc adapts a function to a Clock observed in UTC.
type ClockFunc func() Instant

// Instant calls f.
func (f ClockFunc) Instant() Instant { return f() }

// Offset returns UTC.
func (f ClockFunc) Offset() ZoneOffset { return UTC }

type atOffset struct {
	Clock
	offset ZoneOffset
}

// ClockAt returns a Clock with the instants of c, observed at the given
// offset.
func ClockAt(c Clock, offset ZoneOffset) Clock {
	return atOffset{c, offset}
}

func (c atOffset) Offset() ZoneOffset { return c.offset }
