// Package simtime provides the timestamp type used by the simulation and its
// text parsing. It is the calendar collaborator of the register: the register
// stores and dispatches simtime.Time values but delegates all interpretation
// of date text to this package.
package simtime

import (
	"fmt"
	"time"
)

// Time is a point in simulated time.
type Time struct {
	time.Time
}

// layouts are the accepted textual forms, tried in order.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// Date constructs a Time at midnight UTC on the given day.
func Date(year int, month time.Month, day int) Time {
	return Time{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse interprets s against the accepted layouts, in order.
func Parse(s string) (Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{t}, nil
		}
	}
	return Time{}, fmt.Errorf("unrecognised date/time %q", s)
}

// Equal reports whether two times denote the same instant.
func (t Time) Equal(other Time) bool {
	return t.Time.Equal(other.Time)
}

func (t Time) String() string {
	return t.Format("2006-01-02 15:04:05")
}
