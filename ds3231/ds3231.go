// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr is the I²C address of the device. Leave 0 to use DefaultAddress.
	Addr uint16
	// Debug, when set, receives a trace of every register access.
	Debug DebugF
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Addr: DefaultAddress,
}

// Dev is a handle to a DS3231 real-time clock.
//
// Calls on one Dev are serialized. Other users of the same bus must be
// serialized by the caller.
type Dev struct {
	mu sync.Mutex
	t  RegisterTransport
}

// NewI2C returns a Dev that communicates over I²C. The Opts can be nil.
//
// No bus traffic happens until the first operation.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddress
	}
	if addr > 0x7f {
		return nil, fmt.Errorf("ds3231: invalid I²C address %#x", addr)
	}
	t := NewI2CTransport(b, addr)
	if opts.Debug != nil {
		t.EnableDebug(opts.Debug)
	}
	return New(t), nil
}

// New returns a Dev driving the device through t.
func New(t RegisterTransport) *Dev {
	return &Dev{t: t}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ds3231: %v", d.t)
}

// Halt implements conn.Resource. It is a no-op: the clock keeps running from
// its backup supply.
func (d *Dev) Halt() error {
	return nil
}

// ReadSeconds returns the seconds, 0-59.
func (d *Dev) ReadSeconds() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readField(&fieldSeconds)
}

// ReadMinutes returns the minutes, 0-59.
func (d *Dev) ReadMinutes() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readField(&fieldMinutes)
}

// ReadHours returns the hours register with its format.
func (d *Dev) ReadHours() (Hours, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readHours()
}

// ReadTime reads seconds, minutes and hours, in that order.
func (d *Dev) ReadTime() (Time, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readTime()
}

// WriteSeconds sets the seconds, 0-59.
func (d *Dev) WriteSeconds(s int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeField(&fieldSeconds, s)
}

// WriteMinutes sets the minutes, 0-59.
func (d *Dev) WriteMinutes(m int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeField(&fieldMinutes, m)
}

// WriteHours sets the hours and the 12/24-hour format.
func (d *Dev) WriteHours(h Hours) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeHours(h)
}

// WriteTime writes seconds, minutes and hours, in that order. All fields are
// validated before anything is written.
func (d *Dev) WriteTime(t Time) error {
	if err := t.validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeTime(t)
}

// ReadDay returns the day of the week.
func (d *Dev) ReadDay() (Weekday, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readField(&fieldDay)
	return Weekday(v), err
}

// ReadDate returns the day of the month, 1-31.
func (d *Dev) ReadDate() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readField(&fieldDate)
}

// ReadMonth returns the month, 1-12. The century bit is masked out.
func (d *Dev) ReadMonth() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readField(&fieldMonth)
}

// ReadYear returns the year within the century, 0-99.
func (d *Dev) ReadYear() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readField(&fieldYear)
}

// ReadCentury returns the century bit, 0 or 1.
func (d *Dev) ReadCentury() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.read(RegCenturyMonth)
	if err != nil {
		return 0, err
	}
	return decodeCentury(b), nil
}

// ReadFullDate reads day, date, century/month and year, in that order.
func (d *Dev) ReadFullDate() (Date, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readFullDate()
}

// WriteDay sets the day of the week.
func (d *Dev) WriteDay(day Weekday) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeField(&fieldDay, int(day))
}

// WriteDate sets the day of the month, 1-31.
func (d *Dev) WriteDate(date int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeField(&fieldDate, date)
}

// WriteMonth sets the month, 1-12. The register is read first so the century
// bit sharing it is preserved.
func (d *Dev) WriteMonth(month int) error {
	v, err := fieldMonth.encode(month)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeMasked(RegCenturyMonth, fieldMonth.low|fieldMonth.high, v)
}

// WriteYear sets the year within the century, 0-99.
func (d *Dev) WriteYear(year int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeField(&fieldYear, year)
}

// WriteCentury sets the century bit. The register is read first so the month
// sharing it is preserved.
func (d *Dev) WriteCentury(century int) error {
	v, err := encodeCentury(century)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeMasked(RegCenturyMonth, centuryBit, v)
}

// WriteFullDate writes day, date, century/month and year, in that order. The
// month and century bit go out in a single write. All fields are validated
// before anything is written.
func (d *Dev) WriteFullDate(date Date) error {
	if err := date.validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeFullDate(date)
}

//

func (d *Dev) readField(f *field) (int, error) {
	b, err := d.read(f.reg)
	if err != nil {
		return 0, err
	}
	return f.decode(b), nil
}

func (d *Dev) writeField(f *field, v int) error {
	b, err := f.encode(v)
	if err != nil {
		return err
	}
	return d.write(f.reg, b)
}

// writeMasked replaces the bits selected by mask in reg with value.
func (d *Dev) writeMasked(reg Register, mask, value byte) error {
	cur, err := d.read(reg)
	if err != nil {
		return err
	}
	return d.write(reg, cur&^mask|value&mask)
}

func (d *Dev) readHours() (Hours, error) {
	b, err := d.read(RegHours)
	if err != nil {
		return Hours{}, err
	}
	return DecodeHours(b), nil
}

func (d *Dev) writeHours(h Hours) error {
	b, err := EncodeHours(h)
	if err != nil {
		return err
	}
	return d.write(RegHours, b)
}

func (d *Dev) readTime() (Time, error) {
	var t Time
	var err error
	if t.Seconds, err = d.readField(&fieldSeconds); err != nil {
		return Time{}, err
	}
	if t.Minutes, err = d.readField(&fieldMinutes); err != nil {
		return Time{}, err
	}
	if t.Hours, err = d.readHours(); err != nil {
		return Time{}, err
	}
	return t, nil
}

func (d *Dev) writeTime(t Time) error {
	if err := d.writeField(&fieldSeconds, t.Seconds); err != nil {
		return err
	}
	if err := d.writeField(&fieldMinutes, t.Minutes); err != nil {
		return err
	}
	return d.writeHours(t.Hours)
}

func (d *Dev) readFullDate() (Date, error) {
	var date Date
	day, err := d.readField(&fieldDay)
	if err != nil {
		return Date{}, err
	}
	date.DayOfWeek = Weekday(day)
	if date.Date, err = d.readField(&fieldDate); err != nil {
		return Date{}, err
	}
	cm, err := d.read(RegCenturyMonth)
	if err != nil {
		return Date{}, err
	}
	date.Month = fieldMonth.decode(cm)
	date.Century = decodeCentury(cm)
	if date.Year, err = d.readField(&fieldYear); err != nil {
		return Date{}, err
	}
	return date, nil
}

func (d *Dev) writeFullDate(date Date) error {
	if err := d.writeField(&fieldDay, int(date.DayOfWeek)); err != nil {
		return err
	}
	if err := d.writeField(&fieldDate, date.Date); err != nil {
		return err
	}
	month, err := fieldMonth.encode(date.Month)
	if err != nil {
		return err
	}
	century, err := encodeCentury(date.Century)
	if err != nil {
		return err
	}
	if err := d.write(RegCenturyMonth, century|month); err != nil {
		return err
	}
	return d.writeField(&fieldYear, date.Year)
}

// read and write make sure every failure coming from the transport surfaces
// as a *TransportError, whatever the RegisterTransport implementation.
func (d *Dev) read(reg Register) (byte, error) {
	b, err := d.t.ReadRegister(reg)
	if err != nil {
		return 0, asTransportError("read", reg, err)
	}
	return b, nil
}

func (d *Dev) write(reg Register, value byte) error {
	if err := d.t.WriteRegister(reg, value); err != nil {
		return asTransportError("write", reg, err)
	}
	return nil
}

func asTransportError(op string, reg Register, err error) error {
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, Reg: reg, Err: err}
}

var _ conn.Resource = &Dev{}
