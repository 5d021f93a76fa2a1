// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"periph.io/x/conn/v3/i2c"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// RegisterTransport issues single byte register accesses to the device.
//
// Every call is one bus transaction; nothing is cached. Implementations do
// not need to be safe for concurrent use.
type RegisterTransport interface {
	// ReadRegister returns the content of reg. It returns an error, and never a
	// placeholder value, when the device did not deliver the byte.
	ReadRegister(reg Register) (byte, error)
	// WriteRegister stores value into reg.
	WriteRegister(reg Register, value byte) error
}

// I2CTransport is a RegisterTransport over an I²C bus.
//
// A read writes the register address then reads back one byte using a
// repeated start. A write sends the register address followed by the value.
type I2CTransport struct {
	d     *i2c.Dev
	debug DebugF
}

// NewI2CTransport returns a transport talking to the device at addr on b.
func NewI2CTransport(b i2c.Bus, addr uint16) *I2CTransport {
	return &I2CTransport{d: &i2c.Dev{Bus: b, Addr: addr}, debug: noop}
}

// EnableDebug traces every register access through f.
func (t *I2CTransport) EnableDebug(f DebugF) {
	if f == nil {
		f = noop
	}
	t.debug = f
}

// ReadRegister implements RegisterTransport.
func (t *I2CTransport) ReadRegister(reg Register) (byte, error) {
	t.debug("read register %s", reg)
	var r [1]byte
	if err := t.d.Tx([]byte{byte(reg)}, r[:]); err != nil {
		return 0, &TransportError{Op: "read", Reg: reg, Err: err}
	}
	t.debug("register %s content %#02x", reg, r[0])
	return r[0], nil
}

// WriteRegister implements RegisterTransport.
func (t *I2CTransport) WriteRegister(reg Register, value byte) error {
	t.debug("write register %s value %#02x", reg, value)
	if err := t.d.Tx([]byte{byte(reg), value}, nil); err != nil {
		return &TransportError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

func (t *I2CTransport) String() string {
	return t.d.String()
}

func noop(string, ...interface{}) {}

var _ RegisterTransport = &I2CTransport{}
