// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds3231test implements an in-memory DS3231 register file that can
// be used as an i2c.Bus.
//
// Unlike i2ctest.Playback it keeps state, so a value written can be read back,
// and it can inject bus failures or mutate registers between transactions.
package ds3231test

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Address is the I²C address the simulated device answers to.
const Address uint16 = 0x68

// NumRegisters is the size of the register file, 0x00 to 0x12.
const NumRegisters = 0x13

// ErrNack is returned when a transaction targets another address.
var ErrNack = errors.New("ds3231test: address not acknowledged")

// Bus is a simulated I²C bus with a single DS3231 on it.
//
// The register pointer auto-increments and wraps from the last register to
// 0x00, as on the device.
type Bus struct {
	mu   sync.Mutex
	regs [NumRegisters]byte
	ptr  byte
	// Count is the number of successful transactions.
	Count int

	// Err, when set, is returned by every transaction starting with the one
	// numbered FailAt (0 based).
	Err    error
	FailAt int
	// AfterTx, when set, is called after every successful transaction with the
	// transaction number and the register file. It can be used to simulate the
	// clock ticking.
	AfterTx func(n int, regs *[NumRegisters]byte)
}

// New returns a Bus with all registers cleared.
func New() *Bus {
	return &Bus{}
}

// Registers returns a copy of the register file.
func (b *Bus) Registers() [NumRegisters]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.regs
}

// SetRegisters overwrites the register file starting at register 0.
func (b *Bus) SetRegisters(v ...byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.regs[:], v)
}

func (b *Bus) String() string {
	return "ds3231test"
}

// Tx implements i2c.Bus.
//
// The first byte of w sets the register pointer, the following bytes are
// stored. r is then filled from the register pointer.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil && b.Count >= b.FailAt {
		return b.Err
	}
	if addr != Address {
		return ErrNack
	}
	if len(w) != 0 {
		if int(w[0]) >= NumRegisters {
			return fmt.Errorf("ds3231test: invalid register 0x%02x", w[0])
		}
		b.ptr = w[0]
		for _, v := range w[1:] {
			b.regs[b.ptr] = v
			b.advance()
		}
	}
	for i := range r {
		r[i] = b.regs[b.ptr]
		b.advance()
	}
	n := b.Count
	b.Count++
	if b.AfterTx != nil {
		b.AfterTx(n, &b.regs)
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	if f > 400*physic.KiloHertz {
		return fmt.Errorf("ds3231test: invalid speed %s", f)
	}
	return nil
}

func (b *Bus) advance() {
	b.ptr++
	if int(b.ptr) >= NumRegisters {
		b.ptr = 0
	}
}

var _ i2c.Bus = &Bus{}
