package domain

import (
	"strconv"
	"strings"
	"time"
)

// The provider mixes at least three date encodings across endpoints and
// fields: bare dd/mm/yy dates, dd/mm/yyyy with a time of day, and ISO-like
// timestamps. Parsing is centralized here so a format drift cannot silently
// corrupt event ordering.

// lenientLayouts are the native layouts tried before falling back to the
// slash-token parser. time.Parse tolerates fractional seconds on all of them.
var lenientLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a day/month/year token ("05/03/24", "05/03/2024",
// optionally followed by "HH:MM" or "HH:MM:SS") into a UTC instant. Two-digit
// years map to the 2000s; years outside [2000, 2100] are rejected. Any
// malformed component yields ok == false, never a panic or error.
func ParseDate(raw string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 || len(fields) > 2 {
		return time.Time{}, false
	}

	day, month, year, ok := parseDateToken(fields[0])
	if !ok {
		return time.Time{}, false
	}

	var hour, min, sec int
	if len(fields) == 2 {
		hour, min, sec, ok = parseTimeToken(fields[1])
		if !ok {
			return time.Time{}, false
		}
	}

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), true
}

// ParseDateLenient is used for provider timestamps that are usually already
// ISO-like: it attempts the native layouts first, then the slash-token parser,
// and finally returns the supplied fallback so every event always carries an
// orderable timestamp.
func ParseDateLenient(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range lenientLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	if t, ok := ParseDate(raw); ok {
		return t
	}
	return fallback
}

func parseDateToken(token string) (day, month, year int, ok bool) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	day, ok = parseDigits(parts[0])
	if !ok || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	month, ok = parseDigits(parts[1])
	if !ok || month < 1 || month > 12 {
		return 0, 0, 0, false
	}

	switch len(parts[2]) {
	case 2:
		year, ok = parseDigits(parts[2])
		year += 2000
	case 4:
		year, ok = parseDigits(parts[2])
	default:
		return 0, 0, 0, false
	}
	if !ok || year < 2000 || year > 2100 {
		return 0, 0, 0, false
	}

	return day, month, year, true
}

func parseTimeToken(token string) (hour, min, sec int, ok bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, false
	}

	hour, ok = parseDigits(parts[0])
	if !ok || hour > 23 {
		return 0, 0, 0, false
	}
	min, ok = parseDigits(parts[1])
	if !ok || min > 59 {
		return 0, 0, 0, false
	}
	if len(parts) == 3 {
		sec, ok = parseDigits(parts[2])
		if !ok || sec > 59 {
			return 0, 0, 0, false
		}
	}

	return hour, min, sec, true
}

// parseDigits is a strict strconv.Atoi: signs, spaces and empty strings are
// all rejected.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
