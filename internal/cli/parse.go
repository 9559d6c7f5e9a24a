// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono"
)

// measurable is a parsed argument that the amount to another value of the
// same kind can be measured from.
type measurable interface {
	chrono.TemporalAccessor
	Until(end chrono.TemporalAccessor, u chrono.Unit) (int64, error)
}

type kind struct {
	name  string
	match func(s string) bool
	parse func(s string) (measurable, error)
}

func parser[T measurable](f func(string) (T, error)) func(string) (measurable, error) {
	return func(s string) (measurable, error) {
		v, err := f(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func always(string) bool { return true }

func utc(s string) bool {
	return strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z")
}

// kinds are tried in order, the first successful parse decides the kind of
// an argument.
var kinds = []kind{
	{"instant", utc, parser(chrono.ParseInstant)},
	{"offset date-time", always, parser(chrono.ParseOffsetDateTime)},
	{"date-time", always, parser(chrono.ParseLocalDateTime)},
	{"date", always, parser(chrono.ParseLocalDate)},
	{"year-month", always, parser(chrono.ParseYearMonth)},
	{"offset time", always, parser(chrono.ParseOffsetTime)},
	{"time", always, parser(chrono.ParseLocalTime)},
}

// inferKind parses s with the first kind accepting it. If no kind accepts
// s, the error of the date parser is returned, as that is the most likely
// intent.
func inferKind(s string) (kind, measurable, error) {
	var dateErr error
	for _, k := range kinds {
		if !k.match(s) {
			continue
		}
		v, err := k.parse(s)
		if err == nil {
			return k, v, nil
		}
		if k.name == "date" {
			dateErr = err
		}
	}
	return kind{}, nil, dateErr
}

// parseUnit looks up a unit by name, ignoring case.
func parseUnit(s string) (chrono.Unit, error) {
	if u, err := chrono.ParseUnit(s); err == nil {
		return u, nil
	}
	for u := chrono.Nanos; u <= chrono.Forever; u++ {
		if strings.EqualFold(u.String(), s) {
			return u, nil
		}
	}
	return 0, errors.Mark(errors.Newf("unknown unit %q", s), chrono.ErrInvalidValue)
}
