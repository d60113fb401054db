/*
 * kumu - Swap-in / swap-out engines
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

import "fmt"

// residency is one entry in the resident FIFO: it names the leaf frame
// and the exact pte that points at it, so eviction can rewrite that
// pte without re-walking the tables.
type residency struct {
	pid  int8
	pfn  uint8
	ptbr uint8
	idx  uint8
}

// swapOut evicts count resident leaf frames, oldest first, to make
// room in the physical free pool. It fails without evicting anything
// if the swap pool or the resident FIFO can't supply count entries.
// The fault handler is the only caller; it does not check the resident
// FIFO's length first, so on a cold, small memory the resident check
// is the one that fails.
func (m *MMU) swapOut(count int) error {
	if m.swapFree.Len() < count {
		return fmt.Errorf("kumu: swap pool exhausted: need %d free slots, have %d", count, m.swapFree.Len())
	}
	if m.resident.Len() < count {
		return fmt.Errorf("kumu: not enough resident leaves to evict: need %d, have %d", count, m.resident.Len())
	}

	for range count {
		victim := m.resident.Dequeue()
		slot := m.swapFree.Dequeue()

		m.swap[slot] = m.phys[victim.pfn]
		m.phys[victim.pfn] = Page{}
		m.physFree.Enqueue(victim.pfn)
		m.phys[victim.ptbr][victim.idx] = byte(swappedPTE(slot))

		m.log.Debug("swap out", "pid", victim.pid, "pfn", victim.pfn, "slot", slot)
	}
	return nil
}

// swapIn pulls swap slot s back into a free physical frame and returns
// the frame it used. It also releases the vacated swap slot back to
// swapFree: without that release the swap pool would fill
// monotonically and the system would deadlock once it ran out.
func (m *MMU) swapIn(s uint8) (uint8, error) {
	if m.physFree.Empty() {
		return 0, fmt.Errorf("kumu: no free physical frame to swap slot %d into", s)
	}

	f := m.physFree.Dequeue()
	m.phys[f] = m.swap[s]
	m.swapFree.Enqueue(s)

	m.log.Debug("swap in", "slot", s, "pfn", f)

	return f, nil
}
