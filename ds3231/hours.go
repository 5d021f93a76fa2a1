// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

// Hours register layout.
const (
	hoursUnitsMask byte = 0x0f
	hours10Bit     byte = 1 << 4
	// AM/PM in 12-hour format, 20 hours digit in 24-hour format.
	hours20AMPMBit byte = 1 << 5
	hours12Bit     byte = 1 << 6
)

// EncodeHours packs h into the hours register layout. It returns a
// *RangeError when h is not a valid value for its format.
func EncodeHours(h Hours) (byte, error) {
	if err := h.validate(); err != nil {
		return 0, err
	}
	hour := h.Hour
	var b byte
	if h.Format == H12 {
		b |= hours12Bit
		if h.AMPM == PM {
			b |= hours20AMPMBit
		}
		if hour >= 10 {
			b |= hours10Bit
			hour -= 10
		}
	} else {
		// The 20s digit must be checked first; 20-23 never sets the 10s bit.
		switch {
		case hour >= 20:
			b |= hours20AMPMBit
			hour -= 20
		case hour >= 10:
			b |= hours10Bit
			hour -= 10
		}
	}
	return b | byte(hour), nil
}

// DecodeHours unpacks the hours register. Bit 5 is interpreted only after the
// format bit is known.
func DecodeHours(b byte) Hours {
	h := Hours{Hour: int(b & hoursUnitsMask), AMPM: AM, Format: H24}
	if b&hours10Bit != 0 {
		h.Hour += 10
	}
	if b&hours12Bit != 0 {
		h.Format = H12
		if b&hours20AMPMBit != 0 {
			h.AMPM = PM
		}
	} else if b&hours20AMPMBit != 0 {
		h.Hour += 20
	}
	return h
}

func (h Hours) validate() error {
	switch h.Format {
	case H12:
		if err := checkRange("hour", h.Hour, 1, 12); err != nil {
			return err
		}
		return checkRange("meridiem", int(h.AMPM), int(AM), int(PM))
	case H24:
		return checkRange("hour", h.Hour, 0, 23)
	default:
		return checkRange("hour format", int(h.Format), int(H24), int(H12))
	}
}
