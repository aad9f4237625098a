package lexer

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeenix/tomling/internal/perr"
)

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDecDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }
func isBinDigit(b byte) bool { return b == '0' || b == '1' }

// ParseInteger parses tok as a TOML integer literal: decimal (optionally
// signed), or an unsigned `0x`/`0o`/`0b` literal (§4.A). Ported from
// capyflow's parseIntToken, tightened to original_source's numbers.rs
// underscore and leading-zero rules, which the distilled spec's invariant
// 5 restates.
func ParseInteger(tok string) (int64, *perr.Error) {
	switch {
	case strings.HasPrefix(tok, "0x"):
		return parseBasedInt(tok, 2, 16, isHexDigit)
	case strings.HasPrefix(tok, "0o"):
		return parseBasedInt(tok, 2, 8, isOctDigit)
	case strings.HasPrefix(tok, "0b"):
		return parseBasedInt(tok, 2, 2, isBinDigit)
	default:
		return parseDecInt(tok)
	}
}

func parseBasedInt(tok string, prefixLen, base int, isDigit func(byte) bool) (int64, *perr.Error) {
	digits := tok[prefixLen:]
	if err := validateUnderscoredDigits(digits, isDigit, false); err != nil {
		return 0, err
	}
	cleaned := strings.ReplaceAll(digits, "_", "")
	v, err := strconv.ParseInt(cleaned, base, 64)
	if err != nil {
		return 0, perr.New(perr.KindNumber, 0, "integer out of range")
	}
	return v, nil
}

func parseDecInt(tok string) (int64, *perr.Error) {
	body := tok
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if body == "" {
		return 0, perr.New(perr.KindNumber, 0, "missing digits")
	}
	if body[0] == '0' {
		if len(body) != 1 {
			return 0, perr.New(perr.KindNumber, 0, "leading zero in decimal integer")
		}
	} else if !isDecDigit(body[0]) {
		return 0, perr.New(perr.KindNumber, 0, "expected digit")
	} else if err := validateUnderscoredDigits(body, isDecDigit, false); err != nil {
		return 0, err
	}
	cleaned := strings.ReplaceAll(tok, "_", "")
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, perr.New(perr.KindNumber, 0, "integer out of range")
	}
	return v, nil
}

// validateUnderscoredDigits checks digits is a run of isDigit bytes with
// underscores permitted only strictly between two digits (no leading,
// trailing, or doubled underscore). The trailing bool parameter is ignored;
// the decimal leading-zero check is done by parseDecInt before this runs.
func validateUnderscoredDigits(digits string, isDigit func(byte) bool, _ bool) *perr.Error {
	if len(digits) == 0 || !isDigit(digits[0]) {
		return perr.New(perr.KindNumber, 0, "expected digit")
	}
	prevUnderscore := false
	for i := 1; i < len(digits); i++ {
		b := digits[i]
		if b == '_' {
			if prevUnderscore {
				return perr.New(perr.KindNumber, 0, "consecutive underscores")
			}
			prevUnderscore = true
			continue
		}
		if !isDigit(b) {
			return perr.New(perr.KindNumber, 0, "invalid digit")
		}
		prevUnderscore = false
	}
	if prevUnderscore {
		return perr.New(perr.KindNumber, 0, "trailing underscore")
	}
	return nil
}

// LooksLikeFloat reports whether tok is shaped like a float literal rather
// than an integer, driving the float/integer choice the value parser makes
// once a token has been found not to be a date/time (§4.B).
func LooksLikeFloat(tok string) bool {
	switch tok {
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return true
	}
	if strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0o") || strings.HasPrefix(tok, "0b") {
		return false
	}
	return strings.ContainsAny(tok, ".eE")
}

// ParseFloat parses tok as a TOML float literal: `inf`/`nan` (signed
// variants) or a decimal literal with a fractional part and/or exponent
// (§4.A). Ported from capyflow's parseFloatToken, restricted to
// original_source's leading-zero and underscore rules.
func ParseFloat(tok string) (float64, *perr.Error) {
	switch tok {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	if err := validateFloatSyntax(tok); err != nil {
		return 0, err
	}
	cleaned := strings.ReplaceAll(tok, "_", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, perr.New(perr.KindNumber, 0, "malformed float")
	}
	return v, nil
}

func validateFloatSyntax(tok string) *perr.Error {
	i, n := 0, len(tok)
	if i < n && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	if i >= n {
		return perr.New(perr.KindNumber, 0, "missing digits")
	}
	if tok[i] == '0' {
		i++
		if i < n && isDecDigit(tok[i]) {
			return perr.New(perr.KindNumber, 0, "leading zero in float")
		}
	} else if isDecDigit(tok[i]) {
		var err *perr.Error
		i, err = scanUnderscoredRun(tok, i)
		if err != nil {
			return err
		}
	} else {
		return perr.New(perr.KindNumber, 0, "expected digit")
	}

	hasFracOrExp := false
	if i < n && tok[i] == '.' {
		hasFracOrExp = true
		i++
		if i >= n || !isDecDigit(tok[i]) {
			return perr.New(perr.KindNumber, 0, "expected digit after decimal point")
		}
		var err *perr.Error
		i, err = scanUnderscoredRun(tok, i)
		if err != nil {
			return err
		}
	}
	if i < n && (tok[i] == 'e' || tok[i] == 'E') {
		hasFracOrExp = true
		i++
		if i < n && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		if i >= n || !isDecDigit(tok[i]) {
			return perr.New(perr.KindNumber, 0, "expected digit in exponent")
		}
		var err *perr.Error
		i, err = scanUnderscoredRun(tok, i)
		if err != nil {
			return err
		}
	}
	if !hasFracOrExp {
		return perr.New(perr.KindNumber, 0, "float requires fractional part or exponent")
	}
	if i != n {
		return perr.New(perr.KindNumber, 0, "trailing characters")
	}
	return nil
}

// scanUnderscoredRun advances past a run of decimal digits and single
// non-adjacent underscores starting at tok[start], where tok[start] is
// already known to be a digit.
func scanUnderscoredRun(tok string, start int) (int, *perr.Error) {
	i := start + 1
	prevUnderscore := false
	for i < len(tok) {
		b := tok[i]
		if b == '_' {
			if prevUnderscore {
				return 0, perr.New(perr.KindNumber, 0, "consecutive underscores")
			}
			prevUnderscore = true
			i++
			continue
		}
		if !isDecDigit(b) {
			break
		}
		prevUnderscore = false
		i++
	}
	if prevUnderscore {
		return 0, perr.New(perr.KindNumber, 0, "trailing underscore")
	}
	return i, nil
}
