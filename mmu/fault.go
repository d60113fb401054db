/*
 * kumu - Fault handler
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

// swapMargin is the number of spare physical frames the fault handler
// keeps in reserve, over the minimum it needs for this fault, so that
// incidental metadata allocations later in the same call (a first-touch
// PCB, say) don't immediately force another swap-out. Do not remove
// this: it is why a fault can still fail with a small, cold memory even
// though the exact number of frames it asked for would have fit.
const swapMargin = 2

// ensureFree guarantees at least need+1 physical frames are free,
// swapping out resident leaves if necessary. need is the number of
// frames this fault is about to allocate (1, 2, or 3 depending on how
// far up the table the walk had to stop); the extra +1 in the
// threshold and +swapMargin in the swap-out count are the reserve
// described above.
func (m *MMU) ensureFree(need int) error {
	threshold := need + 1
	if m.physFree.Len() >= threshold {
		return nil
	}
	return m.swapOut((need - m.physFree.Len()) + swapMargin)
}

// PageFault is the orchestrator invoked when the harness reports an
// unmapped access by pid at virtual address va. It walks the three
// levels, replenishes the free pool via swapOut if the walk came up
// short, allocates whatever levels were missing, writes the three
// entries back top-down, and records the new leaf in the resident
// FIFO. Allocation always happens before any entry is written, so a
// mid-allocation failure (swap exhausted) leaves every table unchanged.
func (m *MMU) PageFault(pid int8, va uint8) error {
	pdbr, err := m.pdbrOf(pid)
	if err != nil {
		return err
	}

	pdIdx, pmdIdx, ptIdx := DecodeAddress(va)
	w := m.walk(pdbr, pdIdx, pmdIdx, ptIdx)

	var pmdbr, ptbr, dataPFN uint8

	switch {
	case w.dir.kind == kindPresent && w.mid.kind == kindPresent && w.leaf.kind == kindPresent:
		// Already mapped. The harness is not supposed to report a
		// fault here; treated as an idempotent no-op success rather
		// than an error, so a redundant fault never corrupts state.
		return nil

	case w.dir.kind == kindPresent && w.mid.kind == kindPresent:
		pmdbr, ptbr = w.pmdbr, w.ptbr
		if err := m.ensureFree(1); err != nil {
			return err
		}
		if w.leaf.kind == kindSwapped {
			dataPFN, err = m.swapIn(w.leaf.slot)
			if err != nil {
				return err
			}
		} else {
			dataPFN = m.physFree.Dequeue()
		}

	case w.dir.kind == kindPresent:
		pmdbr = w.pmdbr
		if err := m.ensureFree(2); err != nil {
			return err
		}
		ptbr = m.physFree.Dequeue()
		dataPFN = m.physFree.Dequeue()

	default:
		if err := m.ensureFree(3); err != nil {
			return err
		}
		pmdbr = m.physFree.Dequeue()
		ptbr = m.physFree.Dequeue()
		dataPFN = m.physFree.Dequeue()
	}

	m.phys[pdbr][pdIdx] = byte(presentPTE(pmdbr))
	m.phys[pmdbr][pmdIdx] = byte(presentPTE(ptbr))
	m.phys[ptbr][ptIdx] = byte(presentPTE(dataPFN))

	m.resident.Enqueue(residency{pid: pid, pfn: dataPFN, ptbr: ptbr, idx: ptIdx})

	m.log.Info("page fault resolved", "pid", pid, "va", va, "pdbr", pdbr, "pmdbr", pmdbr, "ptbr", ptbr, "pfn", dataPFN)

	return nil
}
