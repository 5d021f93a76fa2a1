// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"errors"
	"testing"
)

func TestEncodeHours(t *testing.T) {
	for _, test := range []struct {
		name string
		h    Hours
		want byte
	}{
		{name: "24h 0", h: Hours{Hour: 0, Format: H24}, want: 0x00},
		{name: "24h 9", h: Hours{Hour: 9, Format: H24}, want: 0x09},
		{name: "24h 10", h: Hours{Hour: 10, Format: H24}, want: 0x10},
		{name: "24h 19", h: Hours{Hour: 19, Format: H24}, want: 0x19},
		{name: "24h 20", h: Hours{Hour: 20, Format: H24}, want: 0x20},
		{name: "24h 23", h: Hours{Hour: 23, Format: H24}, want: 0x23},
		{name: "24h ignores PM", h: Hours{Hour: 7, AMPM: PM, Format: H24}, want: 0x07},
		{name: "12h 9 AM", h: Hours{Hour: 9, AMPM: AM, Format: H12}, want: 0x49},
		{name: "12h 10 AM", h: Hours{Hour: 10, AMPM: AM, Format: H12}, want: 0x50},
		{name: "12h 12 PM", h: Hours{Hour: 12, AMPM: PM, Format: H12}, want: 0x72},
		{name: "12h 1 PM", h: Hours{Hour: 1, AMPM: PM, Format: H12}, want: 0x61},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := EncodeHours(test.h)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("EncodeHours(%+v)=0x%02x expected 0x%02x", test.h, got, test.want)
			}
		})
	}
}

func TestEncodeHoursNeverSetsBothTensBits(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		b, err := EncodeHours(Hours{Hour: hour, Format: H24})
		if err != nil {
			t.Fatal(err)
		}
		if b&hours10Bit != 0 && b&hours20AMPMBit != 0 {
			t.Errorf("hour %d encoded as 0x%02x", hour, b)
		}
		if b&hours12Bit != 0 {
			t.Errorf("hour %d encoded with the 12h bit: 0x%02x", hour, b)
		}
	}
}

func TestEncodeHoursRange(t *testing.T) {
	for _, h := range []Hours{
		{Hour: 24, Format: H24},
		{Hour: -1, Format: H24},
		{Hour: 0, Format: H12},
		{Hour: 13, Format: H12},
		{Hour: 5, AMPM: 2, Format: H12},
		{Hour: 5, Format: 2},
	} {
		_, err := EncodeHours(h)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("EncodeHours(%+v) returned %v, expected a RangeError", h, err)
		}
	}
}

func TestDecodeHours(t *testing.T) {
	for _, test := range []struct {
		b    byte
		want Hours
	}{
		{b: 0x00, want: Hours{Hour: 0, AMPM: AM, Format: H24}},
		{b: 0x23, want: Hours{Hour: 23, AMPM: AM, Format: H24}},
		{b: 0x20, want: Hours{Hour: 20, AMPM: AM, Format: H24}},
		{b: 0x15, want: Hours{Hour: 15, AMPM: AM, Format: H24}},
		{b: 0x72, want: Hours{Hour: 12, AMPM: PM, Format: H12}},
		{b: 0x52, want: Hours{Hour: 12, AMPM: AM, Format: H12}},
		{b: 0x61, want: Hours{Hour: 1, AMPM: PM, Format: H12}},
	} {
		if got := DecodeHours(test.b); got != test.want {
			t.Errorf("DecodeHours(0x%02x)=%+v expected %+v", test.b, got, test.want)
		}
	}
}

func TestHoursRoundTrip(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		for _, m := range []Meridiem{AM, PM} {
			h := Hours{Hour: hour, AMPM: m, Format: H12}
			b, err := EncodeHours(h)
			if err != nil {
				t.Fatal(err)
			}
			if got := DecodeHours(b); got != h {
				t.Errorf("12h round trip %+v returned %+v", h, got)
			}
		}
	}
	for hour := 0; hour < 24; hour++ {
		h := Hours{Hour: hour, AMPM: PM, Format: H24}
		b, err := EncodeHours(h)
		if err != nil {
			t.Fatal(err)
		}
		got := DecodeHours(b)
		if got.Hour != hour || got.Format != H24 || got.AMPM != AM {
			t.Errorf("24h round trip %+v returned %+v", h, got)
		}
	}
}
