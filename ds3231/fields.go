// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"github.com/GermanBionicSystems/rtc/common"
)

// tensShift is the position of the tens digit in every BCD register.
const tensShift = 4

const (
	centuryBit   byte = 1 << 7
	centuryShift      = 7
)

// field describes one BCD register. Hours are handled separately since their
// layout depends on the format bit.
type field struct {
	name string
	reg  Register
	low  byte
	high byte
	min  int
	max  int
}

var (
	fieldSeconds = field{name: "seconds", reg: RegSeconds, low: 0x0f, high: 0x70, min: 0, max: 59}
	fieldMinutes = field{name: "minutes", reg: RegMinutes, low: 0x0f, high: 0x70, min: 0, max: 59}
	fieldDay     = field{name: "day", reg: RegDay, low: 0x07, high: 0x00, min: 0, max: 6}
	fieldDate    = field{name: "date", reg: RegDate, low: 0x0f, high: 0x30, min: 1, max: 31}
	fieldMonth   = field{name: "month", reg: RegCenturyMonth, low: 0x0f, high: 0x10, min: 1, max: 12}
	fieldYear    = field{name: "year", reg: RegYear, low: 0x0f, high: 0xf0, min: 0, max: 99}
)

func (f *field) decode(b byte) int {
	return int(common.FromBCD(b, f.low, f.high, tensShift))
}

func (f *field) encode(v int) (byte, error) {
	if err := f.check(v); err != nil {
		return 0, err
	}
	return common.ToBCD(uint8(v), tensShift), nil
}

func (f *field) check(v int) error {
	return checkRange(f.name, v, f.min, f.max)
}

func decodeCentury(b byte) int {
	return int((b & centuryBit) >> centuryShift)
}

func encodeCentury(c int) (byte, error) {
	if err := checkRange("century", c, 0, 1); err != nil {
		return 0, err
	}
	return byte(c) << centuryShift, nil
}

// validate checks every field of t without touching the bus.
func (t *Time) validate() error {
	if err := fieldSeconds.check(t.Seconds); err != nil {
		return err
	}
	if err := fieldMinutes.check(t.Minutes); err != nil {
		return err
	}
	return t.Hours.validate()
}

// validate checks every field of d without touching the bus.
func (d *Date) validate() error {
	if err := fieldDay.check(int(d.DayOfWeek)); err != nil {
		return err
	}
	if err := fieldDate.check(d.Date); err != nil {
		return err
	}
	if err := fieldMonth.check(d.Month); err != nil {
		return err
	}
	if err := fieldYear.check(d.Year); err != nil {
		return err
	}
	return checkRange("century", d.Century, 0, 1)
}
