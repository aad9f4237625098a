package value

import "fmt"

// Datetime models the four TOML date/time forms as three independently
// optional components, per spec §3 and §9's design note ("model as four
// distinct cases rather than one partially-populated struct") and
// original_source's datetime.rs, which the same table is ported from:
//
//	Date    Time    Offset   TOML type
//	set     set     set      Offset Date-Time
//	set     set     unset    Local Date-Time
//	set     unset   unset    Local Date
//	unset   set     unset    Local Time
//
// No timezone conversion or arithmetic is performed (spec §3, §9).
type Datetime struct {
	Date   *Date
	Time   *Time
	Offset *Offset
}

// Date is a calendar date: year, month (1-12), day (1-31).
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a time of day with nanosecond precision. Second may be 60 to
// accommodate a leap second (spec §3 invariant 6).
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Offset is a UTC offset in minutes east of UTC. Z (UTC) is represented
// as Minutes == 0.
type Offset struct {
	Minutes int
}

// Variant identifies which of the four TOML datetime forms dt represents.
type Variant uint8

const (
	VariantOffsetDateTime Variant = iota
	VariantLocalDateTime
	VariantLocalDate
	VariantLocalTime
)

// Variant reports which of the four TOML datetime forms dt represents.
// The zero Datetime (no component set) reports VariantLocalTime, but
// the parser never stores one in a document.
func (dt Datetime) Variant() Variant {
	switch {
	case dt.Date != nil && dt.Time != nil && dt.Offset != nil:
		return VariantOffsetDateTime
	case dt.Date != nil && dt.Time != nil:
		return VariantLocalDateTime
	case dt.Date != nil:
		return VariantLocalDate
	default:
		return VariantLocalTime
	}
}

// String renders dt back into its RFC 3339-profile TOML textual form.
// This is a display convenience, not the emitter this spec explicitly
// excludes (no round-trip/formatting preservation is claimed).
func (dt Datetime) String() string {
	var s string
	if dt.Date != nil {
		s += fmt.Sprintf("%04d-%02d-%02d", dt.Date.Year, dt.Date.Month, dt.Date.Day)
		if dt.Time != nil {
			s += "T"
		}
	}
	if dt.Time != nil {
		s += fmt.Sprintf("%02d:%02d:%02d", dt.Time.Hour, dt.Time.Minute, dt.Time.Second)
		if dt.Time.Nanosecond != 0 {
			s += fmt.Sprintf(".%09d", dt.Time.Nanosecond)
		}
	}
	if dt.Offset != nil {
		if dt.Offset.Minutes == 0 {
			s += "Z"
		} else {
			sign := "+"
			m := dt.Offset.Minutes
			if m < 0 {
				sign = "-"
				m = -m
			}
			s += fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
		}
	}
	return s
}

// daysInMonth returns the number of days in the given month of the given
// year, accounting for leap years (spec §3 invariant 6).
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ValidateDate range-checks a Date per spec §3 invariant 6.
func ValidateDate(d Date) bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > daysInMonth(d.Year, d.Month) {
		return false
	}
	return true
}

// ValidateTime range-checks a Time per spec §3 invariant 6. Second 60 is
// accepted to allow for leap seconds.
func ValidateTime(t Time) bool {
	if t.Hour < 0 || t.Hour > 23 {
		return false
	}
	if t.Minute < 0 || t.Minute > 59 {
		return false
	}
	if t.Second < 0 || t.Second > 60 {
		return false
	}
	if t.Nanosecond < 0 || t.Nanosecond > 999999999 {
		return false
	}
	return true
}
