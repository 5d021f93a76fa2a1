// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"time"
)

// baseYear is the year represented by Year 0 with the century bit clear.
const baseYear = 2000

// ToTime converts a date and time read from the device to a time.Time in UTC.
// The century bit selects between 2000-2099 and 2100-2199.
func ToTime(d Date, t Time) time.Time {
	hour := t.Hours.Hour
	if t.Hours.Format == H12 {
		hour %= 12
		if t.Hours.AMPM == PM {
			hour += 12
		}
	}
	year := baseYear + 100*d.Century + d.Year
	return time.Date(year, time.Month(d.Month), d.Date, hour, t.Minutes, t.Seconds, 0, time.UTC)
}

// FromTime splits tm into the device representation using the hour format f.
// The wall clock of tm is used as is, whatever its location. Years outside
// 2000-2199 return a *RangeError.
func FromTime(tm time.Time, f HourFormat) (Date, Time, error) {
	y := tm.Year() - baseYear
	if err := checkRange("year", tm.Year(), baseYear, baseYear+199); err != nil {
		return Date{}, Time{}, err
	}
	d := Date{
		DayOfWeek: Weekday((int(tm.Weekday()) + 6) % 7),
		Date:      tm.Day(),
		Month:     int(tm.Month()),
		Year:      y % 100,
		Century:   y / 100,
	}
	h := Hours{Hour: tm.Hour(), AMPM: AM, Format: f}
	switch f {
	case H12:
		if h.Hour >= 12 {
			h.AMPM = PM
		}
		h.Hour %= 12
		if h.Hour == 0 {
			h.Hour = 12
		}
	case H24:
	default:
		return Date{}, Time{}, h.validate()
	}
	t := Time{Seconds: tm.Second(), Minutes: tm.Minute(), Hours: h}
	return d, t, nil
}

// Now reads the date then the time and returns them as a time.Time in UTC.
//
// Like ReadTime, it is not atomic; see ReadConsistent.
func (d *Dev) Now() (time.Time, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	date, err := d.readFullDate()
	if err != nil {
		return time.Time{}, err
	}
	t, err := d.readTime()
	if err != nil {
		return time.Time{}, err
	}
	return ToTime(date, t), nil
}

// Set writes tm to the device, the time first then the date, using the hour
// format f.
func (d *Dev) Set(tm time.Time, f HourFormat) error {
	date, t, err := FromTime(tm, f)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeTime(t); err != nil {
		return err
	}
	return d.writeFullDate(date)
}

// ReadConsistent reads the date and time repeatedly until two consecutive
// snapshots are identical, so a rollover between two register reads is not
// reported. It gives up with ErrUnstable after maxAttempts reads; values
// below 2 are raised to 2.
func (d *Dev) ReadConsistent(maxAttempts int) (Date, Time, error) {
	if maxAttempts < 2 {
		maxAttempts = 2
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var prevDate Date
	var prevTime Time
	for i := 0; i < maxAttempts; i++ {
		date, err := d.readFullDate()
		if err != nil {
			return Date{}, Time{}, err
		}
		t, err := d.readTime()
		if err != nil {
			return Date{}, Time{}, err
		}
		if i > 0 && date == prevDate && t == prevTime {
			return date, t, nil
		}
		prevDate, prevTime = date, t
	}
	return Date{}, Time{}, ErrUnstable
}
