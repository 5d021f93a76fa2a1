// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rtc is a container for the DS3231 real-time clock driver and the
// tools built on it.
//
// The driver itself lives in package ds3231; clockface and secondsbar present
// its time, and cmd/ds3231 drives a device from the command line.
package rtc
