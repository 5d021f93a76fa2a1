// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ds3231 reads, sets and watches a DS3231 real-time clock.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fogleman/gg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/rtc/clockface"
	"github.com/GermanBionicSystems/rtc/ds3231"
	"github.com/GermanBionicSystems/rtc/ds3231/ds3231test"
	"github.com/GermanBionicSystems/rtc/secondsbar"
)

func mainImpl() error {
	addr := i2c.Addr(ds3231.DefaultAddress)
	busName := flag.String("b", "", "I²C bus to use")
	flag.Var(&addr, "a", "I²C address of the device")
	set := flag.Bool("set", false, "write the host UTC time to the clock")
	h12 := flag.Bool("12h", false, "with -set, store the hours in 12-hour format")
	watch := flag.Duration("watch", 0, "keep reading the clock at this interval")
	pngPath := flag.String("png", "", "render the clock face to this PNG file")
	bar := flag.Bool("bar", false, "with -watch, show a seconds bar instead of lines")
	sim := flag.Bool("sim", false, "use an in-memory device instead of the I²C bus")
	verbose := flag.Bool("v", false, "trace register accesses")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	var bus i2c.Bus
	if *sim {
		bus = ds3231test.New()
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			return err
		}
		defer b.Close()
		bus = b
	}

	opts := ds3231.Opts{Addr: uint16(addr), Debug: log.Printf}
	dev, err := ds3231.NewI2C(bus, &opts)
	if err != nil {
		return err
	}
	log.Printf("using %s", dev)

	// The in-memory device starts zeroed, which is not a valid date.
	if *set || *sim {
		f := ds3231.H24
		if *h12 {
			f = ds3231.H12
		}
		if err := dev.Set(time.Now().UTC(), f); err != nil {
			return err
		}
	}

	date, t, err := dev.ReadConsistent(3)
	if err != nil {
		return err
	}
	if *pngPath != "" {
		img, err := clockface.Render(date, t, nil)
		if err != nil {
			return err
		}
		if err := gg.SavePNG(*pngPath, img); err != nil {
			return err
		}
	}
	if *watch == 0 {
		fmt.Printf("%s %s\n", date, t)
		return nil
	}
	return watchClock(dev, *watch, *bar)
}

func watchClock(dev *ds3231.Dev, interval time.Duration, bar bool) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	var sb *secondsbar.Dev
	if bar {
		sb = secondsbar.New(nil)
		defer sb.Halt()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		date, t, err := dev.ReadConsistent(3)
		if err != nil {
			return err
		}
		if sb != nil {
			if err := sb.Render(t); err != nil {
				return err
			}
		} else {
			fmt.Printf("%s %s\n", date, t)
		}
		select {
		case <-c:
			return nil
		case <-ticker.C:
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ds3231: %s.\n", err)
		os.Exit(1)
	}
}
