// Package biztime provides business timezone and calendar date helpers.
//
// Calendar dates (plan start, deposit date) carry no time of day. They are
// represented as time.Time at 00:00 UTC so that day arithmetic never crosses
// a DST or offset boundary. Timestamps are stored in UTC; the business
// timezone only decides what "today" is.
package biztime

import (
	"fmt"
	"sync"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Dubai"

	monthKeyLayout = "2006-01"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing the default on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current business calendar date.
func Today() time.Time {
	return DateOf(time.Now().In(Location()))
}

// DateOf strips the time of day, keeping the wall-clock calendar date of t.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a DD-MM-YYYY calendar date. Leading zeros are optional.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(constants.DateParseLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD-MM-YYYY: %w", value, err)
	}
	return t, nil
}

// FormatDate renders a calendar date as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// MonthKey returns the YYYY-MM calendar month a date falls in.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// AddDays moves a calendar date by n whole days.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}
