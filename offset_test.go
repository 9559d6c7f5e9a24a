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
)

func TestParseZoneOffset(t *testing.T) {
	tests := []struct {
		in      string
		seconds int
		id      string
	}{
		{"Z", 0, "Z"},
		{"+0", 0, "Z"},
		{"-00", 0, "Z"},
		{"+5", 5 * 3600, "+05:00"},
		{"-05", -5 * 3600, "-05:00"},
		{"+0530", 5*3600 + 30*60, "+05:30"},
		{"-05:30", -5*3600 - 30*60, "-05:30"},
		{"-00:30", -30 * 60, "-00:30"},
		{"+013045", 3600 + 30*60 + 45, "+01:30:45"},
		{"-01:30:45", -3600 - 30*60 - 45, "-01:30:45"},
		{"+18:00", 18 * 3600, "+18:00"},
		{"-18", -18 * 3600, "-18:00"},
	}
	for _, tc := range tests {
		got, err := ParseZoneOffset(tc.in)
		if err != nil || got.TotalSeconds() != tc.seconds {
			t.Errorf("ParseZoneOffset(%q) = %d, %v, want %d, <nil>", tc.in, got.TotalSeconds(), err, tc.seconds)
		}
		if id := got.ID(); id != tc.id {
			t.Errorf("ParseZoneOffset(%q).ID() = %q, want %q", tc.in, id, tc.id)
		}
		if back, err := ParseZoneOffset(tc.id); err != nil || back != got {
			t.Errorf("ParseZoneOffset(%q) = %v, %v, want %v, <nil>", tc.id, back, err, got)
		}
	}
}

func TestParseZoneOffsetErrors(t *testing.T) {
	tests := []struct {
		in      string
		invalid bool
	}{
		{"", false},
		{"z", false},
		{"UTC", false},
		{"05:00", false},
		{"+5:00", false},
		{"+05:0", false},
		{"+05-00", false},
		{"+0500:00", false},
		{"+05:00:00:00", false},
		{"+19", true},
		{"+18:01", true},
		{"-18:00:01", true},
		{"+05:60", true},
		{"+0000:60", false},
	}
	for _, tc := range tests {
		_, err := ParseZoneOffset(tc.in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseZoneOffset(%q) = _, %v, want *ParseError", tc.in, err)
			continue
		}
		if got := errors.Is(err, ErrInvalidValue); got != tc.invalid {
			t.Errorf("ParseZoneOffset(%q) = _, %v, invalid value: %v, want %v", tc.in, err, got, tc.invalid)
		}
	}
}

func TestParseZoneOffsetMemo(t *testing.T) {
	const id = "+07:15:01"
	offsets.Forget(id)
	n := offsets.Len()
	if _, err := ParseZoneOffset("+99"); err == nil {
		t.Fatal("ParseZoneOffset(+99) succeeded")
	}
	if got := offsets.Len(); got != n {
		t.Errorf("failed parse changed memo size from %d to %d", n, got)
	}
	z := MustZoneOffset(id)
	if got := offsets.Len(); got != n+1 {
		t.Errorf("memo size after parsing %q = %d, want %d", id, got, n+1)
	}
	if again := MustZoneOffset(id); again != z {
		t.Errorf("MustZoneOffset(%q) = %v, then %v", id, z, again)
	}
}

func TestZoneOffsetOf(t *testing.T) {
	tests := []struct {
		h, m, s int
		want    int
		wantErr bool
	}{
		{0, 0, 0, 0, false},
		{1, 30, 0, 5400, false},
		{-1, -30, 0, -5400, false},
		{0, -30, -15, -1815, false},
		{0, 30, 15, 1815, false},
		{18, 0, 0, 64800, false},
		{-18, 0, 0, -64800, false},
		{1, -30, 0, 0, true},
		{-1, 30, 0, 0, true},
		{0, 30, -15, 0, true},
		{0, -30, 15, 0, true},
		{18, 0, 1, 0, true},
		{-18, -1, 0, 0, true},
		{19, 0, 0, 0, true},
		{0, 60, 0, 0, true},
		{0, 0, -60, 0, true},
	}
	for _, tc := range tests {
		got, err := ZoneOffsetOfHoursMinutesSeconds(tc.h, tc.m, tc.s)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("ZoneOffsetOfHoursMinutesSeconds(%d, %d, %d) = %v, %v, want ErrInvalidValue", tc.h, tc.m, tc.s, got, err)
			}
			continue
		}
		if err != nil || got.TotalSeconds() != tc.want {
			t.Errorf("ZoneOffsetOfHoursMinutesSeconds(%d, %d, %d) = %d, %v, want %d, <nil>", tc.h, tc.m, tc.s, got.TotalSeconds(), err, tc.want)
		}
		if byTotal, err := ZoneOffsetOfTotalSeconds(tc.want); err != nil || byTotal != got {
			t.Errorf("ZoneOffsetOfTotalSeconds(%d) = %v, %v, want %v, <nil>", tc.want, byTotal, err, got)
		}
	}
	for _, secs := range []int{64801, -64801} {
		if _, err := ZoneOffsetOfTotalSeconds(secs); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ZoneOffsetOfTotalSeconds(%d) = _, %v, want ErrInvalidValue", secs, err)
		}
	}
}

func TestZoneOffsetCompare(t *testing.T) {
	offs := []ZoneOffset{MustZoneOffset("-05:00"), UTC, MustZoneOffset("+09:00"), MustZoneOffset("+01:00")}
	slices.SortFunc(offs, ZoneOffset.Compare)
	var ids []string
	for _, z := range offs {
		ids = append(ids, z.ID())
	}
	if want := []string{"+09:00", "+01:00", "Z", "-05:00"}; !slices.Equal(ids, want) {
		t.Errorf("sorted offsets = %v, want %v", ids, want)
	}
}

func TestZoneOffsetLocation(t *testing.T) {
	z := MustZoneOffset("-05:30")
	name, offset := time.Unix(0, 0).In(z.Location()).Zone()
	if name != "-05:30" || offset != -19800 {
		t.Errorf("%v.Location() has zone %q, %d, want %q, %d", z, name, offset, "-05:30", -19800)
	}
	if UTC.Location() != time.UTC {
		t.Errorf("UTC.Location() = %v, want time.UTC", UTC.Location())
	}
}

func TestZoneOffsetFrom(t *testing.T) {
	z := MustZoneOffset("+02:00")
	for _, v := range []TemporalAccessor{z, MustOffsetTime(1, 0, 0, 0, z), MustOffsetDateTime(2000, January, 1, 0, 0, 0, 0, z)} {
		got, err := ZoneOffsetFrom(v)
		if err != nil || got != z {
			t.Errorf("ZoneOffsetFrom(%v) = %v, %v, want %v, <nil>", v, got, err, z)
		}
	}
	for _, v := range []TemporalAccessor{Noon, Epoch, MustLocalDateTime(2000, January, 1, 0, 0, 0, 0), nil} {
		if _, err := ZoneOffsetFrom(v); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("ZoneOffsetFrom(%v) = _, %v, want ErrTypeMismatch", v, err)
		}
	}
	if got, err := z.GetLong(OffsetSeconds); err != nil || got != 7200 {
		t.Errorf("%v.GetLong(OffsetSeconds) = %d, %v, want 7200, <nil>", z, got, err)
	}
}
