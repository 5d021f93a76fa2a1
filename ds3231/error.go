// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"errors"
	"fmt"
)

// ErrUnstable is returned by ReadConsistent when the clock did not produce two
// identical consecutive snapshots within the allowed number of attempts.
var ErrUnstable = errors.New("ds3231: clock did not settle")

// TransportError is returned when a register access failed on the bus. The
// value of a failed read is never returned.
type TransportError struct {
	// Op is "read" or "write".
	Op  string
	Reg Register
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ds3231: %s of register %s failed: %v", e.Op, e.Reg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RangeError is returned by write operations when a value does not fit its
// register field. Nothing is sent to the device in that case.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ds3231: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
