/*
 * kumu - Physical and swap page storage
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

// Package mmu models a user-space three-level demand-paged virtual
// memory manager: an 8-bit virtual address space, three 2-bit-indexed
// levels of translation, one-byte page-table entries, and FIFO
// eviction to a swap pool. The entry points are New, RunProc and
// PageFault.
package mmu

const (
	// PageSize is the size in bytes of a physical frame, a swap slot,
	// and a page-table page (all three are the same shape).
	PageSize = 4

	// AddrBits is the width of a virtual address.
	AddrBits = 8

	// LevelBits is the index width of each of the three translation
	// levels; the two low bits of an address (AddrBits - 3*LevelBits)
	// are the intra-page offset and are not modelled here.
	LevelBits = 2
)

// Page is the fixed four-byte unit backing physical memory, swap
// memory, and page tables alike: a page is interpreted as raw data,
// as four page-table entries, or as a PCB record depending on what
// currently owns the frame.
type Page [PageSize]byte

// pcbSentinel marks a frame as holding a PCB: byte 0 equal to this
// value (the bit pattern of int8(-1)) means bytes 1 and 2 carry a pid
// and its pdbr rather than page-table entries.
const pcbSentinel = 0xFF
