// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import "fmt"

// HourFormat selects how the hours register is laid out. The values match the
// 12/24 bit of the register.
type HourFormat uint8

const (
	H24 HourFormat = 0
	H12 HourFormat = 1
)

func (f HourFormat) String() string {
	switch f {
	case H24:
		return "24h"
	case H12:
		return "12h"
	default:
		return fmt.Sprintf("HourFormat(%d)", uint8(f))
	}
}

// Meridiem is the AM/PM half of a 12-hour clock. The values match the AM/PM
// bit of the register.
type Meridiem uint8

const (
	AM Meridiem = 0
	PM Meridiem = 1
)

func (m Meridiem) String() string {
	switch m {
	case AM:
		return "AM"
	case PM:
		return "PM"
	default:
		return fmt.Sprintf("Meridiem(%d)", uint8(m))
	}
}

// Hours is the content of the hours register.
//
// In H12 format Hour is 1-12 and AMPM is meaningful. In H24 format Hour is
// 0-23; AMPM is ignored when writing and always AM when read back since the
// device does not store it in that mode.
type Hours struct {
	Hour   int
	AMPM   Meridiem
	Format HourFormat
}

func (h Hours) String() string {
	if h.Format == H12 {
		return fmt.Sprintf("%d %s", h.Hour, h.AMPM)
	}
	return fmt.Sprintf("%02d", h.Hour)
}

// Time is the time of day kept by the device.
type Time struct {
	Seconds int // 0-59
	Minutes int // 0-59
	Hours   Hours
}

func (t Time) String() string {
	if t.Hours.Format == H12 {
		return fmt.Sprintf("%02d:%02d:%02d %s", t.Hours.Hour, t.Minutes, t.Seconds, t.Hours.AMPM)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours.Hour, t.Minutes, t.Seconds)
}

// Weekday is the day of the week register. The device only counts from 0 to
// 6; this package numbers the week from Monday.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	if int(d) < len(dayNames) {
		return dayNames[d]
	}
	return fmt.Sprintf("Weekday(%d)", uint8(d))
}

// Date is the calendar date kept by the device.
//
// Century is a single bit the device toggles when Year overflows from 99 to
// 0. It is not derived from Year and must be managed by the caller.
type Date struct {
	DayOfWeek Weekday
	Date      int // 1-31
	Month     int // 1-12
	Year      int // 0-99
	Century   int // 0-1
}

func (d Date) String() string {
	return fmt.Sprintf("%s %d%02d-%02d-%02d", d.DayOfWeek, 20+d.Century, d.Year, d.Month, d.Date)
}
