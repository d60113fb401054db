package mmu

/*
 * kumu - Page-table entry encoding tests
 *
 * Copyright 2026, kumu contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

import "testing"

// Check the never-touched byte is 0x00 and is distinguishable from a
// swapped entry at slot 0 - the whole point of the asymmetric shift.
func TestPTENeverTouchedVsSwappedSlotZero(t *testing.T) {
	var never PTE
	if !never.NeverTouched() {
		t.Errorf("zero PTE NeverTouched() got: false expected: true")
	}

	swappedZero := swappedPTE(0)
	if swappedZero.NeverTouched() {
		t.Errorf("swappedPTE(0) NeverTouched() got: true expected: false")
	}
	if swappedZero.Present() {
		t.Errorf("swappedPTE(0) Present() got: true expected: false")
	}
	if r := swappedZero.SwapSlot(); r != 0 {
		t.Errorf("swappedPTE(0) SwapSlot() got: %d expected: %d", r, 0)
	}
}

// Check present encode/decode round-trips for every representable pfn.
func TestPTEPresentRoundTrip(t *testing.T) {
	for f := range uint8(64) {
		e := presentPTE(f)
		if !e.Present() {
			t.Errorf("presentPTE(%d) Present() got: false expected: true", f)
		}
		if e.NeverTouched() && f == 0 {
			// pfn 0 present still encodes present bit set, never 0x00.
			t.Errorf("presentPTE(0) NeverTouched() got: true expected: false")
		}
		if r := e.PFN(); r != f {
			t.Errorf("presentPTE(%d).PFN() got: %d expected: %d", f, r, f)
		}
	}
}

// Check swapped encode/decode round-trips for every representable slot.
func TestPTESwappedRoundTrip(t *testing.T) {
	for s := range uint8(64) {
		e := swappedPTE(s)
		if e.Present() {
			t.Errorf("swappedPTE(%d) Present() got: true expected: false", s)
		}
		if r := e.SwapSlot(); r != s {
			t.Errorf("swappedPTE(%d).SwapSlot() got: %d expected: %d", s, r, s)
		}
	}
}

// Check the exact byte values spelled out in the bit-layout table.
func TestPTEByteValues(t *testing.T) {
	if r := byte(presentPTE(5)); r != 0x15 {
		t.Errorf("presentPTE(5) byte got: 0x%02x expected: 0x%02x", r, 0x15)
	}
	if r := byte(swappedPTE(3)); r != 0x06 {
		t.Errorf("swappedPTE(3) byte got: 0x%02x expected: 0x%02x", r, 0x06)
	}
	if r := byte(PTE(0)); r != 0x00 {
		t.Errorf("never-touched byte got: 0x%02x expected: 0x%02x", r, 0x00)
	}
}
