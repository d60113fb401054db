/*
 * kumu - Page-table walker
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

// entryKind tags what a decoded PTE means: no dynamic dispatch is
// needed here, just a small closed set of states the walker and fault
// handler both switch over.
type entryKind int

const (
	// kindNeverTouched marks an entry that has always read as 0x00:
	// a fault against it allocates and zero-initialises fresh storage.
	kindNeverTouched entryKind = iota
	// kindPresent marks an entry whose PFN field names a resident
	// next-level table (or, at the leaf, resident data).
	kindPresent
	// kindSwapped marks an entry that is absent but was previously
	// resident: its slot field names where it now lives in swap.
	kindSwapped
)

// entryState is the walker's report for one level: a tagged union of
// "never touched" / "present, here's the pfn" / "swapped, here's the
// slot".
type entryState struct {
	kind entryKind
	pfn  uint8 // valid when kind == kindPresent
	slot uint8 // valid when kind == kindSwapped
}

// decodeEntry classifies a raw PTE byte into an entryState.
func decodeEntry(e PTE) entryState {
	switch {
	case e.NeverTouched():
		return entryState{kind: kindNeverTouched}
	case e.Present():
		return entryState{kind: kindPresent, pfn: e.PFN()}
	default:
		return entryState{kind: kindSwapped, slot: e.SwapSlot()}
	}
}

// walkResult is everything the fault handler needs from one walk: the
// three decoded entries plus the frame numbers of the tables that were
// present, so a present middle/leaf level doesn't need re-reading.
type walkResult struct {
	pdIdx, pmdIdx, ptIdx uint8

	dir entryState
	// pmdbr is dir.pfn, kept alongside for readability at call sites.
	pmdbr uint8

	mid entryState
	// ptbr is mid.pfn, kept alongside for readability at call sites.
	ptbr uint8

	leaf entryState
}

// walk reads the three levels starting at pdbr, stopping as soon as it
// hits a level that is not present. It never allocates or mutates
// anything; it only classifies what is already there.
func (m *MMU) walk(pdbr, pdIdx, pmdIdx, ptIdx uint8) walkResult {
	res := walkResult{pdIdx: pdIdx, pmdIdx: pmdIdx, ptIdx: ptIdx}

	res.dir = decodeEntry(PTE(m.phys[pdbr][pdIdx]))
	if res.dir.kind != kindPresent {
		return res
	}
	res.pmdbr = res.dir.pfn

	res.mid = decodeEntry(PTE(m.phys[res.pmdbr][pmdIdx]))
	if res.mid.kind != kindPresent {
		return res
	}
	res.ptbr = res.mid.pfn

	res.leaf = decodeEntry(PTE(m.phys[res.ptbr][ptIdx]))
	return res
}
