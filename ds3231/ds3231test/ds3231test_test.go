// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231test

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestTxWriteThenRead(t *testing.T) {
	b := New()
	if err := b.Tx(Address, []byte{0x04, 0x31, 0x12, 0x25}, nil); err != nil {
		t.Fatal(err)
	}
	r := make([]byte, 3)
	if err := b.Tx(Address, []byte{0x04}, r); err != nil {
		t.Fatal(err)
	}
	if r[0] != 0x31 || r[1] != 0x12 || r[2] != 0x25 {
		t.Fatalf("read back %#v", r)
	}
	if b.Count != 2 {
		t.Fatalf("Count=%d expected 2", b.Count)
	}
}

func TestTxWraps(t *testing.T) {
	b := New()
	if err := b.Tx(Address, []byte{NumRegisters - 1, 0xaa, 0xbb}, nil); err != nil {
		t.Fatal(err)
	}
	regs := b.Registers()
	if regs[NumRegisters-1] != 0xaa || regs[0] != 0xbb {
		t.Fatalf("unexpected registers %#v", regs)
	}
}

func TestTxErrors(t *testing.T) {
	b := New()
	if err := b.Tx(0x50, []byte{0}, nil); !errors.Is(err, ErrNack) {
		t.Fatalf("expected ErrNack, got %v", err)
	}
	if err := b.Tx(Address, []byte{NumRegisters}, nil); err == nil {
		t.Fatal("expected error on invalid register")
	}
	boom := errors.New("boom")
	b.Err = boom
	b.FailAt = 1
	if err := b.Tx(Address, []byte{0}, make([]byte, 1)); err != nil {
		t.Fatal(err)
	}
	if err := b.Tx(Address, []byte{0}, make([]byte, 1)); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
}

func TestAfterTx(t *testing.T) {
	b := New()
	b.AfterTx = func(n int, regs *[NumRegisters]byte) {
		regs[0] = byte(n + 1)
	}
	r := make([]byte, 1)
	for i := 0; i < 3; i++ {
		if err := b.Tx(Address, []byte{0}, r); err != nil {
			t.Fatal(err)
		}
		if r[0] != byte(i) {
			t.Fatalf("transaction %d read %d", i, r[0])
		}
	}
}

func TestSetSpeed(t *testing.T) {
	b := New()
	if err := b.SetSpeed(100 * physic.KiloHertz); err != nil {
		t.Fatal(err)
	}
	if err := b.SetSpeed(physic.MegaHertz); err == nil {
		t.Fatal("expected error")
	}
}
