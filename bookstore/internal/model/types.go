package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = time.DateOnly
	ClockLayout = time.TimeOnly
)

// Date is a calendar day without time zone, stored as DATE.
type Date struct {
	time.Time
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// At combines the day with a clock time into a single instant.
func (d Date) At(c Clock) time.Time {
	return d.Time.Add(c.Duration())
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	return d.UnmarshalText([]byte(s))
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Clock is a time of day with second precision, stored as TIME.
type Clock int

func NewClock(h, m, s int) Clock {
	return Clock(h*3600 + m*60 + s)
}

var clockLayouts = []string{ClockLayout, "15:04", "15:04:05.999999999"}

func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewClock(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("parse time %q: expected HH:MM or HH:MM:SS", s)
}

func (c Clock) Duration() time.Duration {
	return time.Duration(c) * time.Second
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)%3600/60, int(c)%60)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	return c.UnmarshalText([]byte(s))
}

func (c *Clock) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*c = NewClock(v.Hour(), v.Minute(), v.Second())
		return nil
	case string:
		return c.UnmarshalText([]byte(v))
	case []byte:
		return c.UnmarshalText(v)
	case int64:
		// microseconds since midnight
		*c = Clock(v / int64(time.Second/time.Microsecond))
		return nil
	}
	return fmt.Errorf("cannot scan %T into Clock", src)
}

func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}
