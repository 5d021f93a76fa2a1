// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clockface renders the time and date kept by a DS3231 as an analog
// clock face with a digital caption.
//
// The result is a plain image.Image so it can be saved, or sent to any
// display.Drawer with Draw.
package clockface

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/rtc/ds3231"
)

// Opts holds the rendering options.
type Opts struct {
	// Size is the side of the square image, in pixels. Default is 128.
	Size int
	// Face overrides the caption font.
	Face font.Face
	// Basic selects the 7x13 bitmap font instead of Go Regular. It is more
	// legible on small monochrome panels.
	Basic bool
	// Foreground and Background default to black on white.
	Foreground color.Color
	Background color.Color
}

// DefaultOpts holds the default rendering options.
var DefaultOpts = Opts{
	Size:       128,
	Foreground: color.Black,
	Background: color.White,
}

// Render draws date and t.
func Render(date ds3231.Date, t ds3231.Time, opts *Opts) (image.Image, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Size <= 0 {
		o.Size = DefaultOpts.Size
	}
	if o.Foreground == nil {
		o.Foreground = DefaultOpts.Foreground
	}
	if o.Background == nil {
		o.Background = DefaultOpts.Background
	}
	face, err := o.face()
	if err != nil {
		return nil, err
	}

	size := float64(o.Size)
	lw := math.Max(1, size/64)
	cx, cy, r := size/2, size*0.4, size*0.34

	dc := gg.NewContext(o.Size, o.Size)
	dc.SetColor(o.Background)
	dc.Clear()
	dc.SetColor(o.Foreground)

	dc.SetLineWidth(lw)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()
	for i := 0; i < 12; i++ {
		a := gg.Radians(float64(i)*30 - 90)
		inner := 0.85 * r
		if i%3 == 0 {
			inner = 0.75 * r
		}
		dc.DrawLine(cx+inner*math.Cos(a), cy+inner*math.Sin(a), cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	dc.Stroke()

	h, m, s := handAngles(t)
	dc.SetLineCapRound()
	drawHand(dc, cx, cy, h, 0.5*r, 2*lw)
	drawHand(dc, cx, cy, m, 0.8*r, 1.5*lw)
	drawHand(dc, cx, cy, s, 0.9*r, math.Max(1, lw/2))
	dc.DrawCircle(cx, cy, 1.5*lw)
	dc.Fill()

	dc.SetFontFace(face)
	dc.DrawStringAnchored(t.String(), cx, size*0.83, 0.5, 0.5)
	dc.DrawStringAnchored(date.String(), cx, size*0.94, 0.5, 0.5)
	return dc.Image(), nil
}

// Draw renders date and t at the size of dst and displays it. The image is
// square; the smallest side of dst is used.
func Draw(dst display.Drawer, date ds3231.Date, t ds3231.Time, opts *Opts) error {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	r := dst.Bounds()
	o.Size = r.Dx()
	if r.Dy() < o.Size {
		o.Size = r.Dy()
	}
	if o.Size <= 0 {
		return errors.New("clockface: empty display")
	}
	img, err := Render(date, t, &o)
	if err != nil {
		return err
	}
	return dst.Draw(r, img, image.Point{})
}

func (o *Opts) face() (font.Face, error) {
	if o.Face != nil {
		return o.Face, nil
	}
	if o.Basic {
		return basicfont.Face7x13, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: math.Max(6, float64(o.Size)/11)}), nil
}

// handAngles returns the angle of each hand, in degrees clockwise from 12.
func handAngles(t ds3231.Time) (hour, minute, second float64) {
	second = float64(t.Seconds) * 6
	minute = (float64(t.Minutes) + float64(t.Seconds)/60) * 6
	hour = (float64(t.Hours.Hour%12) + float64(t.Minutes)/60) * 30
	return
}

func drawHand(dc *gg.Context, cx, cy, deg, length, width float64) {
	a := gg.Radians(deg - 90)
	dc.SetLineWidth(width)
	dc.DrawLine(cx, cy, cx+length*math.Cos(a), cy+length*math.Sin(a))
	dc.Stroke()
}
