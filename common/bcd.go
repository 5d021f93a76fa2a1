// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the packed BCD digits of clock registers.
package common

// ToBCD packs v (0-99) into a byte: the units digit in the low nibble and the
// tens digit shifted left by shift. The caller is responsible for checking
// that the tens digit fits in the register field.
func ToBCD(v uint8, shift uint) byte {
	return (v/10)<<shift | v%10
}

// FromBCD is the inverse of ToBCD for a register field whose units digit is
// selected by low and whose tens digit is selected by high.
func FromBCD(b, low, high byte, shift uint) uint8 {
	return b&low + ((b&high)>>shift)*10
}
