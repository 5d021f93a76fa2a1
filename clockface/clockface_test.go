// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/GermanBionicSystems/rtc/ds3231"
)

var (
	testDate = ds3231.Date{DayOfWeek: ds3231.Sunday, Date: 18, Month: 10, Year: 26}
	testTime = ds3231.Time{Seconds: 30, Minutes: 15, Hours: ds3231.Hours{Hour: 3, AMPM: ds3231.PM, Format: ds3231.H12}}
)

func TestHandAngles(t *testing.T) {
	for _, test := range []struct {
		t       ds3231.Time
		h, m, s float64
	}{
		{t: ds3231.Time{}, h: 0, m: 0, s: 0},
		{t: testTime, h: 97.5, m: 93, s: 180},
		{t: ds3231.Time{Minutes: 30, Hours: ds3231.Hours{Hour: 18, Format: ds3231.H24}}, h: 195, m: 180, s: 0},
		{t: ds3231.Time{Hours: ds3231.Hours{Hour: 12, Format: ds3231.H12}}, h: 0, m: 0, s: 0},
	} {
		h, m, s := handAngles(test.t)
		if h != test.h || m != test.m || s != test.s {
			t.Errorf("handAngles(%v)=%v,%v,%v expected %v,%v,%v", test.t, h, m, s, test.h, test.m, test.s)
		}
	}
}

func TestRender(t *testing.T) {
	for _, opts := range []*Opts{nil, {Size: 64, Basic: true}, {Size: 200, Foreground: color.White, Background: color.Black}} {
		img, err := Render(testDate, testTime, opts)
		if err != nil {
			t.Fatal(err)
		}
		want := DefaultOpts.Size
		if opts != nil {
			want = opts.Size
		}
		if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
			t.Fatalf("bounds %v expected %dx%d", b, want, want)
		}
		// The hub of the hands covers the center of the face.
		hub := color.RGBAModel.Convert(img.At(want/2, want*4/10))
		corner := color.RGBAModel.Convert(img.At(1, 1))
		if hub == corner {
			t.Errorf("nothing drawn at the center: %v", hub)
		}
	}
}

// fakeDisplay is a display.Drawer keeping the last image drawn.
type fakeDisplay struct {
	img *image.RGBA
}

func (f *fakeDisplay) String() string          { return "fake" }
func (f *fakeDisplay) Halt() error             { return nil }
func (f *fakeDisplay) ColorModel() color.Model { return color.RGBAModel }
func (f *fakeDisplay) Bounds() image.Rectangle { return f.img.Bounds() }
func (f *fakeDisplay) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(f.img, r, src, sp, draw.Src)
	return nil
}

func TestDraw(t *testing.T) {
	f := &fakeDisplay{img: image.NewRGBA(image.Rect(0, 0, 128, 64))}
	if err := Draw(f, testDate, testTime, &Opts{Basic: true}); err != nil {
		t.Fatal(err)
	}
	// Background is white by default.
	if c := f.img.RGBAAt(1, 1); c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("unexpected background %v", c)
	}
	if err := Draw(&fakeDisplay{img: image.NewRGBA(image.Rectangle{})}, testDate, testTime, nil); err == nil {
		t.Error("expected error on an empty display")
	}
}
