// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package secondsbar shows the seconds of a DS3231 time as a 60 cells strip
// on a terminal, using ANSI 256 color codes.
//
// Useful to eyeball that the clock ticks while watching it from a shell.
package secondsbar

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"

	"github.com/GermanBionicSystems/rtc/ds3231"
)

// Cells is the length of the strip, one cell per second.
const Cells = 60

// Opts represents the options available for the strip.
type Opts struct {
	// W defaults to stdout, with ANSI codes translated on Windows.
	W       io.Writer
	Palette *ansi256.Palette
	// On colors elapsed seconds, Mark every quarter not yet elapsed and Off
	// the rest.
	On   color.NRGBA
	Mark color.NRGBA
	Off  color.NRGBA

	_ struct{}
}

// Dev is a seconds strip drawn on a terminal.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	on      string
	mark    string
	off     string

	buf bytes.Buffer
}

// New returns a Dev. The Opts can be nil.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{w: w, palette: *p}
	d.on = d.palette.Block(orDefault(opts.On, color.NRGBA{0x00, 0xd0, 0x40, 0xff}))
	d.mark = d.palette.Block(orDefault(opts.Mark, color.NRGBA{0x70, 0x70, 0x70, 0xff}))
	d.off = d.palette.Block(orDefault(opts.Off, color.NRGBA{0x20, 0x20, 0x20, 0xff}))
	return d
}

func (d *Dev) String() string {
	return "SecondsBar"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes and moves to the next line.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Render redraws the strip in place for t, followed by t itself.
func (d *Dev) Render(t ds3231.Time) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < Cells; i++ {
		switch {
		case i <= t.Seconds:
			_, _ = d.buf.WriteString(d.on)
		case i%15 == 0:
			_, _ = d.buf.WriteString(d.mark)
		default:
			_, _ = d.buf.WriteString(d.off)
		}
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, _ = fmt.Fprint(&d.buf, t)
	_, err := d.buf.WriteTo(d.w)
	return err
}

func orDefault(c, def color.NRGBA) color.NRGBA {
	if c == (color.NRGBA{}) {
		return def
	}
	return c
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
