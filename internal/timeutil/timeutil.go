// Package timeutil converts between the zone-less display times used at the
// API boundary and the absolute instants used for storage and comparison.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the ISO-8601 local date-time layout, without offset.
const Layout = "2006-01-02T15:04:05"

// Precision is the finest unit kept by storage (PostgreSQL timestamptz).
const Precision = time.Microsecond

// LocalDateTime is a wall-clock date and time with no zone attached.
// The zone is supplied when converting to an instant.
type LocalDateTime struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
	nanos  int
}

// NewLocalDateTime builds a display time from its wall-clock fields.
func NewLocalDateTime(year int, month time.Month, day, hour, minute, second, nanos int) LocalDateTime {
	return LocalDateTime{year: year, month: month, day: day, hour: hour, minute: minute, second: second, nanos: nanos}
}

// ParseLocalDateTime parses "2006-01-02T15:04:05" with optional fractional seconds.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05.999999999", strings.TrimSpace(s))
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("invalid local date-time %q: %w", s, err)
	}
	return wallClock(t), nil
}

// IsZero reports whether the value was never set.
func (l LocalDateTime) IsZero() bool {
	return l == LocalDateTime{}
}

// In interprets the wall-clock fields in loc.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.year, l.month, l.day, l.hour, l.minute, l.second, l.nanos, loc)
}

func (l LocalDateTime) String() string {
	t := l.In(time.UTC)
	if l.nanos == 0 {
		return t.Format(Layout)
	}
	return t.Format("2006-01-02T15:04:05.999999999")
}

// MarshalJSON renders the value as an ISO local date-time string.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON accepts an ISO local date-time string or null.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*l = LocalDateTime{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("local date-time must be a JSON string, got %s", s)
	}
	parsed, err := ParseLocalDateTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Converter translates between display times and instants for one zone.
type Converter struct {
	loc *time.Location
}

// NewConverter returns a converter for loc; nil means time.Local.
func NewConverter(loc *time.Location) Converter {
	if loc == nil {
		loc = time.Local
	}
	return Converter{loc: loc}
}

// LoadConverter resolves an IANA zone name ("Local" and "" mean the host zone).
func LoadConverter(zone string) (Converter, error) {
	if zone == "" || strings.EqualFold(zone, "local") {
		return NewConverter(time.Local), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Converter{}, fmt.Errorf("failed to load time zone %q: %w", zone, err)
	}
	return NewConverter(loc), nil
}

// Location returns the display zone.
func (c Converter) Location() *time.Location {
	return c.loc
}

// ToInstant converts a display time to a UTC instant, truncated to Precision.
func (c Converter) ToInstant(l LocalDateTime) time.Time {
	return l.In(c.loc).UTC().Truncate(Precision)
}

// ToLocal converts an instant to its display time, truncated to Precision.
func (c Converter) ToLocal(instant time.Time) LocalDateTime {
	return wallClock(instant.Truncate(Precision).In(c.loc))
}

// ToLocalPtr is ToLocal for optional instants.
func (c Converter) ToLocalPtr(instant *time.Time) *LocalDateTime {
	if instant == nil {
		return nil
	}
	l := c.ToLocal(*instant)
	return &l
}

func wallClock(t time.Time) LocalDateTime {
	return LocalDateTime{
		year:   t.Year(),
		month:  t.Month(),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		nanos:  t.Nanosecond(),
	}
}
