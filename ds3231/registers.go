// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import "fmt"

// DefaultAddress is the fixed 7-bit I²C address of the DS3231.
const DefaultAddress uint16 = 0x68

// Register is the address of one byte wide register of the device.
type Register byte

const (
	RegSeconds      Register = 0x00
	RegMinutes      Register = 0x01
	RegHours        Register = 0x02
	RegDay          Register = 0x03
	RegDate         Register = 0x04
	RegCenturyMonth Register = 0x05
	RegYear         Register = 0x06

	// Alarm registers. Reserved, not driven by this package.
	RegAlarm1Seconds Register = 0x07
	RegAlarm1Minutes Register = 0x08
	RegAlarm1Hours   Register = 0x09
	RegAlarm1DayDate Register = 0x0a
	RegAlarm2Minutes Register = 0x0b
	RegAlarm2Hours   Register = 0x0c
	RegAlarm2DayDate Register = 0x0d

	RegControl     Register = 0x0e
	RegStatus      Register = 0x0f
	RegAgingOffset Register = 0x10
	RegTempMSB     Register = 0x11
	RegTempLSB     Register = 0x12
)

var registerNames = [...]string{
	"Seconds",
	"Minutes",
	"Hours",
	"Day",
	"Date",
	"CenturyMonth",
	"Year",
	"Alarm1Seconds",
	"Alarm1Minutes",
	"Alarm1Hours",
	"Alarm1DayDate",
	"Alarm2Minutes",
	"Alarm2Hours",
	"Alarm2DayDate",
	"Control",
	"Status",
	"AgingOffset",
	"TempMSB",
	"TempLSB",
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(0x%02x)", byte(r))
}
