package lexer

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDecDigit(s[i]) {
			return false
		}
	}
	return true
}

func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// ParseDatetime attempts to interpret tok as one of the four RFC 3339
// profile forms TOML recognizes (§3, §4.A): full date, full date-time
// (with or without offset), or a bare local time. Ported from capyflow's
// parseLocalDateTimeVariants, generalized to also recognize an offset
// suffix and a date without a time component.
//
// The second return reports whether tok is shaped like a date/time at
// all; the value parser falls back to number parsing when it is false.
// A shaped-but-invalid token (bad component range, malformed offset)
// still returns an error rather than false, per §4.B's "attempt date/time
// first, fall back to number" dispatch: once the shape is recognized as
// date-like, disambiguation is over.
func ParseDatetime(tok string) (value.Datetime, bool, *perr.Error) {
	if len(tok) >= 10 && isAllDigits(tok[0:4]) && tok[4] == '-' &&
		isAllDigits(tok[5:7]) && tok[7] == '-' && isAllDigits(tok[8:10]) {
		date := value.Date{
			Year:  atoiDigits(tok[0:4]),
			Month: atoiDigits(tok[5:7]),
			Day:   atoiDigits(tok[8:10]),
		}
		if !value.ValidateDate(date) {
			return value.Datetime{}, true, perr.New(perr.KindDatetime, 0, "date component out of range")
		}
		rest := tok[10:]
		if rest == "" {
			return value.Datetime{Date: &date}, true, nil
		}
		sep := rest[0]
		if sep != 'T' && sep != 't' && sep != ' ' {
			return value.Datetime{}, true, perr.New(perr.KindDatetime, 0, "malformed date-time separator")
		}
		t, offset, remainder, err := parseTimeAndOffset(rest[1:])
		if err != nil {
			return value.Datetime{}, true, err
		}
		if remainder != "" {
			return value.Datetime{}, true, perr.New(perr.KindDatetime, 0, "trailing characters after date-time")
		}
		return value.Datetime{Date: &date, Time: &t, Offset: offset}, true, nil
	}

	if len(tok) >= 8 && isAllDigits(tok[0:2]) && tok[2] == ':' {
		t, offset, remainder, err := parseTimeAndOffset(tok)
		if err != nil {
			return value.Datetime{}, true, err
		}
		if remainder != "" {
			return value.Datetime{}, true, perr.New(perr.KindDatetime, 0, "trailing characters after time")
		}
		if offset != nil {
			return value.Datetime{}, true, perr.New(perr.KindDatetime, 0, "local time cannot carry an offset")
		}
		return value.Datetime{Time: &t}, true, nil
	}

	return value.Datetime{}, false, nil
}

// parseTimeAndOffset parses an "HH:MM:SS[.fraction][offset]" prefix of s
// and returns the unconsumed remainder.
func parseTimeAndOffset(s string) (value.Time, *value.Offset, string, *perr.Error) {
	if len(s) < 8 || !isAllDigits(s[0:2]) || s[2] != ':' ||
		!isAllDigits(s[3:5]) || s[5] != ':' || !isAllDigits(s[6:8]) {
		return value.Time{}, nil, s, perr.New(perr.KindDatetime, 0, "malformed time")
	}
	t := value.Time{
		Hour:   atoiDigits(s[0:2]),
		Minute: atoiDigits(s[3:5]),
		Second: atoiDigits(s[6:8]),
	}
	rest := s[8:]
	if len(rest) > 0 && rest[0] == '.' {
		j := 1
		for j < len(rest) && isDecDigit(rest[j]) {
			j++
		}
		if j == 1 {
			return t, nil, rest, perr.New(perr.KindDatetime, 0, "expected fractional digits")
		}
		t.Nanosecond = fracToNanos(rest[1:j])
		rest = rest[j:]
	}
	if !value.ValidateTime(t) {
		return t, nil, rest, perr.New(perr.KindDatetime, 0, "time component out of range")
	}
	if rest == "" {
		return t, nil, rest, nil
	}
	if rest[0] == 'Z' || rest[0] == 'z' {
		return t, &value.Offset{Minutes: 0}, rest[1:], nil
	}
	if rest[0] == '+' || rest[0] == '-' {
		if len(rest) < 6 || !isAllDigits(rest[1:3]) || rest[3] != ':' || !isAllDigits(rest[4:6]) {
			return t, nil, rest, perr.New(perr.KindDatetime, 0, "malformed offset")
		}
		oh, om := atoiDigits(rest[1:3]), atoiDigits(rest[4:6])
		if oh > 23 || om > 59 {
			return t, nil, rest, perr.New(perr.KindDatetime, 0, "offset out of range")
		}
		minutes := oh*60 + om
		if rest[0] == '-' {
			minutes = -minutes
		}
		return t, &value.Offset{Minutes: minutes}, rest[6:], nil
	}
	return t, nil, rest, nil
}

// fracToNanos truncates or zero-pads frac (all-digit) to 9 digits (§3
// invariant 6).
func fracToNanos(frac string) int {
	if len(frac) > 9 {
		frac = frac[:9]
	}
	for len(frac) < 9 {
		frac += "0"
	}
	return atoiDigits(frac)
}
