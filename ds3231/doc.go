// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds3231 controls the time keeping registers of a Maxim DS3231
// real-time clock over I²C.
//
// The device stores every time and date field as packed binary-coded decimal.
// This package converts those registers to and from plain integers, including
// the hours register whose bit 5 is either the AM/PM flag or the 20 hours digit
// depending on the 12/24-hour format bit.
//
// Every field is read or written in its own bus transaction. Composite
// operations such as ReadTime are therefore not atomic with respect to the
// device: a seconds rollover between two transactions yields a torn snapshot.
// Use ReadConsistent when that matters.
//
// Alarm, control, status, aging offset and temperature registers are named in
// the Register constants but are not driven by this package.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://www.analog.com/media/en/technical-documentation/data-sheets/DS3231.pdf
package ds3231
