// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"slices"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

func TestOffsetDateTimeCompare(t *testing.T) {
	plusOne := MustZoneOffset("+01:00")
	a := MustOffsetDateTime(2008, December, 3, 11, 0, 0, 0, plusOne)
	b := MustOffsetDateTime(2008, December, 3, 10, 0, 0, 0, UTC)
	c := MustOffsetDateTime(2008, December, 3, 10, 30, 0, 0, plusOne)

	if !a.IsEqual(b) || a.Equal(b) || a == b {
		t.Errorf("%v and %v: IsEqual = %v, Equal = %v, want true, false", a, b, a.IsEqual(b), a.Equal(b))
	}
	if got := TimelineOrder(a, b); got != 0 {
		t.Errorf("TimelineOrder(%v, %v) = %d, want 0", a, b, got)
	}
	if got := a.Compare(b); got != 1 {
		t.Errorf("%v.Compare(%v) = %d, want 1", a, b, got)
	}
	if got := b.Compare(a); got != -1 {
		t.Errorf("%v.Compare(%v) = %d, want -1", b, a, got)
	}
	if !c.IsBefore(b) || !b.IsAfter(c) {
		t.Errorf("%v should be before %v", c, b)
	}
	if got := c.Compare(b); got != -1 {
		t.Errorf("%v.Compare(%v) = %d, want -1", c, b, got)
	}

	s := []OffsetDateTime{a, c, b}
	slices.SortFunc(s, OffsetDateTime.Compare)
	if want := []OffsetDateTime{c, b, a}; !slices.Equal(s, want) {
		t.Errorf("sorted = %v, want %v", s, want)
	}
	if MinOffsetDateTime.Compare(MaxOffsetDateTime) != -1 {
		t.Errorf("MinOffsetDateTime.Compare(MaxOffsetDateTime) != -1")
	}
}

func TestWithOffsetSameInstant(t *testing.T) {
	odt := MustOffsetDateTime(2023, January, 1, 1, 30, 0, 0, MustZoneOffset("+02:00"))
	tests := []struct {
		offset ZoneOffset
		want   string
	}{
		{MustZoneOffset("+02:00"), "2023-01-01T01:30+02:00"},
		{UTC, "2022-12-31T23:30Z"},
		{MustZoneOffset("-10:00"), "2022-12-31T13:30-10:00"},
		{MustZoneOffset("+18:00"), "2023-01-01T17:30+18:00"},
	}
	for _, tc := range tests {
		got, err := odt.WithOffsetSameInstant(tc.offset)
		if err != nil || got.String() != tc.want {
			t.Errorf("%v.WithOffsetSameInstant(%v) = %v, %v, want %v, <nil>", odt, tc.offset, got, err, tc.want)
		}
		if got.ToInstant() != odt.ToInstant() {
			t.Errorf("%v.WithOffsetSameInstant(%v) changed the instant", odt, tc.offset)
		}
	}
	if got := odt.WithOffsetSameLocal(UTC); got.String() != "2023-01-01T01:30Z" {
		t.Errorf("%v.WithOffsetSameLocal(Z) = %v, want 2023-01-01T01:30Z", odt, got)
	}
	if _, err := MaxOffsetDateTime.WithOffsetSameInstant(UTC); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("MaxOffsetDateTime.WithOffsetSameInstant(Z) = _, %v, want ErrOutOfRange", err)
	}
}

func TestOffsetDateTimeUntil(t *testing.T) {
	start := MustOffsetDateTime(2023, March, 1, 12, 0, 0, 0, UTC)
	tests := []struct {
		end  TemporalAccessor
		unit Unit
		want int64
	}{
		{MustOffsetDateTime(2023, March, 1, 14, 0, 0, 0, MustZoneOffset("+01:00")), Minutes, 60},
		{MustOffsetDateTime(2023, March, 2, 11, 0, 0, 0, UTC), Days, 0},
		{MustOffsetDateTime(2023, March, 2, 13, 0, 0, 0, MustZoneOffset("+01:00")), Days, 1},
		{MustOffsetDateTime(2023, March, 1, 8, 0, 0, 0, MustZoneOffset("-05:00")), Hours, 1},
		{MustOffsetDateTime(2024, March, 1, 12, 0, 0, 0, UTC), Years, 1},
	}
	for _, tc := range tests {
		got, err := start.Until(tc.end, tc.unit)
		if err != nil || got != tc.want {
			t.Errorf("%v.Until(%v, %v) = %d, %v, want %d, <nil>", start, tc.end, tc.unit, got, err, tc.want)
		}
	}
	for _, end := range []TemporalAccessor{MustLocalDateTime(2023, March, 2, 0, 0, 0, 0), MustLocalDate(2023, March, 2), Instant{1_677_672_000, 0}} {
		if _, err := start.Until(end, Days); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("%v.Until(%v, Days) = _, %v, want ErrTypeMismatch", start, end, err)
		}
	}
}

func TestOffsetDateTimeFrom(t *testing.T) {
	odt := MustOffsetDateTime(2023, March, 1, 12, 0, 0, 0, MustZoneOffset("+05:30"))
	got, err := OffsetDateTimeFrom(odt)
	if err != nil || got != odt {
		t.Errorf("OffsetDateTimeFrom(%v) = %v, %v, want %v, <nil>", odt, got, err, odt)
	}
	for _, v := range []TemporalAccessor{Epoch, odt.LocalDateTime(), odt.ToOffsetTime(), nil} {
		if _, err := OffsetDateTimeFrom(v); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("OffsetDateTimeFrom(%v) = _, %v, want ErrTypeMismatch", v, err)
		}
	}
}

func TestOffsetDateTimeOfTime(t *testing.T) {
	loc := time.FixedZone("test", -(3*3600 + 30*60))
	tt := time.Date(2020, time.February, 29, 21, 45, 10, 123, loc)
	odt, err := OffsetDateTimeOfTime(tt)
	if err != nil {
		t.Fatalf("OffsetDateTimeOfTime(%v) = _, %v", tt, err)
	}
	if got, want := odt.String(), "2020-02-29T21:45:10.000000123-03:30"; got != want {
		t.Errorf("OffsetDateTimeOfTime(%v) = %v, want %v", tt, got, want)
	}
	if back := odt.Time(); !back.Equal(tt) {
		t.Errorf("%v.Time() = %v, want %v", odt, back, tt)
	}
	if _, off := odt.Time().Zone(); off != -(3*3600 + 30*60) {
		t.Errorf("%v.Time() has offset %d", odt, off)
	}
}

func TestOffsetDateTimeFields(t *testing.T) {
	odt := MustOffsetDateTime(1970, January, 2, 0, 0, 0, 0, MustZoneOffset("+01:00"))
	tests := []struct {
		f    Field
		want int64
	}{
		{InstantSeconds, 82800},
		{OffsetSeconds, 3600},
		{EpochDay, 1},
		{HourOfDay, 0},
	}
	for _, tc := range tests {
		got, err := odt.GetLong(tc.f)
		if err != nil || got != tc.want {
			t.Errorf("%v.GetLong(%v) = %d, %v, want %d, <nil>", odt, tc.f, got, err, tc.want)
		}
	}
	if got, err := odt.With(InstantSeconds, 0); err != nil || got.String() != "1970-01-01T01:00+01:00" {
		t.Errorf("%v.With(InstantSeconds, 0) = %v, %v, want 1970-01-01T01:00+01:00, <nil>", odt, got, err)
	}
	if got, err := odt.With(OffsetSeconds, -3600); err != nil || got.String() != "1970-01-02T00:00-01:00" {
		t.Errorf("%v.With(OffsetSeconds, -3600) = %v, %v, want 1970-01-02T00:00-01:00, <nil>", odt, got, err)
	}
	if _, err := odt.With(OffsetSeconds, 64801); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("%v.With(OffsetSeconds, 64801) = _, %v, want ErrInvalidValue", odt, err)
	}
}

func TestOffsetDateTimeArithmetic(t *testing.T) {
	odt := MustOffsetDateTime(2024, January, 31, 22, 0, 0, 0, MustZoneOffset("-08:00"))
	got, err := odt.PlusMonths(1)
	if err != nil || got.String() != "2024-02-29T22:00-08:00" {
		t.Errorf("%v.PlusMonths(1) = %v, %v, want 2024-02-29T22:00-08:00, <nil>", odt, got, err)
	}
	got, err = odt.PlusHours(3)
	if err != nil || got.String() != "2024-02-01T01:00-08:00" {
		t.Errorf("%v.PlusHours(3) = %v, %v, want 2024-02-01T01:00-08:00, <nil>", odt, got, err)
	}
	got, err = odt.PlusPeriod(PeriodOf(0, 1, 1))
	if err != nil || got.String() != "2024-03-01T22:00-08:00" {
		t.Errorf("%v.PlusPeriod(P1M1D) = %v, %v, want 2024-03-01T22:00-08:00, <nil>", odt, got, err)
	}
	got, err = odt.TruncatedTo(Days)
	if err != nil || got.String() != "2024-01-31T00:00-08:00" {
		t.Errorf("%v.TruncatedTo(Days) = %v, %v, want 2024-01-31T00:00-08:00, <nil>", odt, got, err)
	}
}

func TestOffsetDateTimeText(t *testing.T) {
	in := []string{
		"2007-12-03T10:15:30+01:00",
		"2007-12-03T10:15Z",
		"-0001-01-01T00:00:00.000000001-18:00",
		"+10000-01-01T00:00+05:30:15",
	}
	var got []string
	for _, s := range in {
		var odt OffsetDateTime
		if err := odt.UnmarshalText([]byte(s)); err != nil {
			t.Fatalf("UnmarshalText(%q) = %v", s, err)
		}
		b, err := odt.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() = _, %v", odt, err)
		}
		got = append(got, string(b))
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("text round trip (-want +got):\n%s", diff)
	}
}
