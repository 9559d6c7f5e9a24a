// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"strconv"
	"strings"
)

// The parsers in this file accept the extended ISO 8601 formats written by
// the String methods of the value types:
//
//	date         yyyy-MM-dd
//	year-month   yyyy-MM
//	time         HH:mm[:ss[.fffffffff]]
//	date-time    date 'T' time
//	offset       'Z' | ±HH:mm[:ss]
//
// A year has exactly four digits, unless it has a sign: years beyond 9999
// must be written with a leading '+' and up to ten digits, and negative years
// with a leading '-' and at least four digits. The fraction of a second has
// one to nine digits and must be separated by a period. The letters T and Z
// may also be lower case.

// ParseLocalDate parses a date such as 2007-12-03.
func ParseLocalDate(s string) (LocalDate, error) {
	return parse("date", s, (*parser).date)
}

// ParseYearMonth parses a year and month such as 2007-12.
func ParseYearMonth(s string) (YearMonth, error) {
	return parse("year-month", s, (*parser).yearMonth)
}

// ParseLocalTime parses a time of day such as 10:15 or 10:15:30.123.
func ParseLocalTime(s string) (LocalTime, error) {
	return parse("time", s, func(p *parser) LocalTime { return p.clock(false) })
}

// ParseLocalDateTime parses a date-time such as 2007-12-03T10:15:30.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	return parse("date-time", s, (*parser).dateTime)
}

// ParseOffsetDateTime parses a date-time with an offset, such as
// 2007-12-03T10:15:30+01:00 or 2007-12-03T09:15:30Z.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	return parse("offset date-time", s, func(p *parser) OffsetDateTime {
		dt := p.dateTime()
		return OffsetDateTime{dt, p.zone()}
	})
}

// ParseOffsetTime parses a time of day with an offset, such as
// 10:15:30+01:00.
func ParseOffsetTime(s string) (OffsetTime, error) {
	return parse("offset time", s, func(p *parser) OffsetTime {
		t := p.clock(false)
		return OffsetTime{t, p.zone()}
	})
}

// ParseInstant parses an instant such as 2007-12-03T10:15:30.00Z. The seconds
// are required. An offset other than Z is accepted and converted to UTC.
func ParseInstant(s string) (Instant, error) {
	return parse("instant", s, func(p *parser) Instant {
		d := p.date()
		p.acceptT()
		t := p.clock(true)
		z := p.zone()
		return LocalDateTime{d, t}.ToInstant(z)
	})
}

func parse[T any](kind, s string, f func(*parser) T) (T, error) {
	p := newParser(kind, s)
	v := f(p)
	p.end()
	if p.hasErr {
		var zero T
		return zero, p.err()
	}
	return v, nil
}

type parser struct {
	kind   string
	input  string
	value  string
	hasErr bool
	errOff int
	errMsg string
	cause  error
}

func newParser(kind, value string) *parser {
	return &parser{
		kind:  kind,
		input: value,
		value: value,
	}
}

// pos returns the offset of the remaining input.
func (p *parser) pos() int {
	return len(p.input) - len(p.value)
}

// fail signals that the input is malformed at the current position. Only the
// first failure is recorded.
func (p *parser) fail(msg string) {
	p.failAt(p.pos(), msg)
}

func (p *parser) failAt(offset int, msg string) {
	if p.hasErr {
		return
	}
	p.hasErr = true
	p.errOff = offset
	p.errMsg = msg
}

// invalid signals that the input is well-formed, but describes an invalid
// value. err describes the validation failure.
func (p *parser) invalid(err error) {
	if p.hasErr {
		return
	}
	p.hasErr = true
	p.errOff = p.pos()
	p.cause = err
}

func (p *parser) err() error {
	// Cloning keeps the input from escaping in the happy path, at the cost
	// of an extra allocation when parsing fails.
	return &ParseError{
		Kind:    p.kind,
		Value:   strings.Clone(p.input),
		Offset:  p.errOff,
		Message: p.errMsg,
		Err:     p.cause,
	}
}

// end fails if there is unparsed input.
func (p *parser) end() {
	if !p.hasErr && p.value != "" {
		p.fail("extra text: " + strconv.Quote(p.value))
	}
}

// peek returns the next byte of input, or 0 at the end.
func (p *parser) peek() byte {
	if p.value == "" {
		return 0
	}
	return p.value[0]
}

// accept a literal string.
func (p *parser) accept(lit string) {
	if p.hasErr {
		return
	}
	v, ok := strings.CutPrefix(p.value, lit)
	if !ok {
		p.fail("expected " + strconv.Quote(lit))
		return
	}
	p.value = v
}

// acceptFold accepts the upper case letter b or its lower case form.
func (p *parser) acceptFold(b byte) bool {
	if p.hasErr || upper(p.peek()) != b {
		return false
	}
	p.value = p.value[1:]
	return true
}

func (p *parser) acceptT() {
	if !p.acceptFold('T') {
		p.fail("expected 'T'")
	}
}

// sign accepts a '+' or '-' and returns +1 or -1. Without a sign, it returns
// +1, or fails if required is true.
func (p *parser) sign(required bool) int {
	if p.hasErr {
		return 1
	}
	switch p.peek() {
	case '+':
		p.value = p.value[1:]
		return 1
	case '-':
		p.value = p.value[1:]
		return -1
	}
	if required {
		p.fail("expected '+' or '-'")
	}
	return 1
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	if p.hasErr {
		return 0
	}
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.fail("expected " + strconv.Itoa(N) + " digits")
		return 0
	}
	p.value = p.value[i:]
	return n
}

// year parses a year with the sign rules of ISO 8601 expanded years.
func (p *parser) year() int64 {
	if p.hasErr {
		return 0
	}
	start := p.pos()
	sign := 0
	switch p.peek() {
	case '+':
		sign = 1
	case '-':
		sign = -1
	}
	if sign != 0 {
		p.value = p.value[1:]
	}
	var (
		n int64
		i int
	)
	for ; i < 10 && isDigit(p.value, i); i++ {
		n = n*10 + int64(p.value[i]-'0')
	}
	switch {
	case i < 4:
		p.fail("expected at least 4 digits of year")
	case sign == 0 && i > 4:
		p.failAt(start, "year with more than 4 digits must have a sign")
	case sign > 0 && i == 4:
		p.failAt(start, "year with 4 digits must not have a '+' sign")
	case sign < 0 && n == 0:
		p.failAt(start, "year must not be -0000")
	}
	if p.hasErr {
		return 0
	}
	p.value = p.value[i:]
	if sign < 0 {
		n = -n
	}
	if _, err := Year.checkValid(n); err != nil {
		p.invalid(err)
		return 0
	}
	return n
}

func (p *parser) date() LocalDate {
	year := p.year()
	p.accept("-")
	month := p.getnumN(2, true)
	p.accept("-")
	day := p.getnumN(2, true)
	if p.hasErr {
		return LocalDate{}
	}
	d, err := LocalDateOf(int(year), Month(month), day)
	if err != nil {
		p.invalid(err)
	}
	return d
}

func (p *parser) yearMonth() YearMonth {
	year := p.year()
	p.accept("-")
	month := p.getnumN(2, true)
	if p.hasErr {
		return YearMonth{}
	}
	ym, err := YearMonthOf(int(year), Month(month))
	if err != nil {
		p.invalid(err)
	}
	return ym
}

// clock parses a time of day. The seconds are optional, unless seconds is
// true.
func (p *parser) clock(seconds bool) LocalTime {
	hour := p.getnumN(2, true)
	p.accept(":")
	minute := p.getnumN(2, true)
	var sec, nano int
	if seconds || p.peek() == ':' {
		p.accept(":")
		sec = p.getnumN(2, true)
		if p.peek() == '.' {
			p.value = p.value[1:]
			nano = p.fraction()
		}
	}
	if p.hasErr {
		return LocalTime{}
	}
	t, err := LocalTimeOf(hour, minute, sec, nano)
	if err != nil {
		p.invalid(err)
	}
	return t
}

// fraction parses one to nine digits of a fraction of a second and returns
// it as nanoseconds.
func (p *parser) fraction() int {
	if p.hasErr {
		return 0
	}
	var n, i int
	for ; i < 9 && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 {
		p.fail("expected digits of fraction")
		return 0
	}
	p.value = p.value[i:]
	for ; i < 9; i++ {
		n *= 10
	}
	return n
}

func (p *parser) dateTime() LocalDateTime {
	d := p.date()
	p.acceptT()
	t := p.clock(false)
	return LocalDateTime{d, t}
}

// zone parses the offset of a date-time: Z or ±HH:mm[:ss].
func (p *parser) zone() ZoneOffset {
	if p.acceptFold('Z') {
		return UTC
	}
	sign := p.sign(true)
	h := p.getnumN(2, true)
	p.accept(":")
	m := p.getnumN(2, true)
	var s int
	if p.peek() == ':' {
		p.accept(":")
		s = p.getnumN(2, true)
	}
	if p.hasErr {
		return ZoneOffset{}
	}
	z, err := ZoneOffsetOfHoursMinutesSeconds(sign*h, sign*m, sign*s)
	if err != nil {
		p.invalid(err)
	}
	return z
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

// upper maps an ASCII lower case letter to upper case.
func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// appendYear appends a year with at least four digits. Negative years and
// years beyond 9999 have a sign.
func appendYear(b []byte, year int64) []byte {
	switch {
	case year < 0:
		b = append(b, '-')
		year = -year
	case year > 9999:
		b = append(b, '+')
	}
	return appendPadded(b, year, 4)
}

func appendDate(b []byte, year int64, month Month, day int) []byte {
	b = appendYear(b, year)
	b = append(b, '-')
	b = append2(b, int(month))
	b = append(b, '-')
	return append2(b, day)
}
