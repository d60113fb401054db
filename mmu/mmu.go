/*
 * kumu - Public surface
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

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kumu-sim/kumu/internal/kulog"
	"github.com/kumu-sim/kumu/internal/queue"
)

// MMU owns a process's worth of simulated physical memory and swap,
// and the three queues (physical free, swap free, resident FIFO) that
// drive replacement. It is not safe for concurrent use: one harness
// goroutine calls RunProc/PageFault to completion before the next
// call, exactly as a single-threaded MMU would be driven by one CPU.
type MMU struct {
	phys []Page
	swap []Page

	physFree *queue.Queue[uint8]
	swapFree *queue.Queue[uint8]
	resident *queue.Queue[residency]

	log *slog.Logger
}

// Option configures an MMU at construction time.
type Option func(*MMU)

// WithLogWriter directs the MMU's trace of faults, swap-outs, and
// swap-ins to w (in addition to whatever kulog's default stderr
// echoing already does). Passing nil keeps the default.
func WithLogWriter(w io.Writer, debug bool) Option {
	return func(m *MMU) {
		m.log = kulog.New("mmu", w, debug)
	}
}

// New allocates physical memory of size 2^memBits pages and swap
// memory of size 2^swapBits pages, zeroes both, and seeds both free
// lists with every index in ascending order. It fails if memBits is
// zero, mirroring the one configuration error this simulator
// recognises.
func New(memBits, swapBits uint8, opts ...Option) (*MMU, error) {
	if memBits == 0 {
		return nil, fmt.Errorf("kumu: mem_bits must be greater than zero")
	}

	p := 1 << memBits
	s := 1 << swapBits

	m := &MMU{
		phys:     make([]Page, p),
		swap:     make([]Page, s),
		physFree: queue.New[uint8](),
		swapFree: queue.New[uint8](),
		resident: queue.New[residency](),
		log:      kulog.New("mmu", nil, false),
	}

	for _, opt := range opts {
		opt(m)
	}

	for i := range p {
		m.physFree.Enqueue(uint8(i))
	}
	for i := range s {
		m.swapFree.Enqueue(uint8(i))
	}

	m.log.Info("initialized", "phys_frames", p, "swap_slots", s)

	return m, nil
}

// CR3 is the handle RunProc hands back: a pointer into physical memory
// at a process's root directory, plus the frame number it names, so
// callers that only need the pfn don't have to re-derive it from the
// pointer.
type CR3 struct {
	Root *Page
	PDBR uint8
}

// RunProc looks up (creating on first reference) pid's root directory
// and returns a CR3 naming it. It fails only if the computed root
// falls outside the physical array, which cannot happen through
// ordinary use of this package but is checked to honor the external
// contract.
func (m *MMU) RunProc(pid int8) (CR3, error) {
	pdbr, err := m.pdbrOf(pid)
	if err != nil {
		return CR3{}, err
	}
	if int(pdbr) >= len(m.phys) {
		return CR3{}, fmt.Errorf("kumu: pdbr %d out of range for %d physical frames", pdbr, len(m.phys))
	}
	return CR3{Root: &m.phys[pdbr], PDBR: pdbr}, nil
}

// PhysFreeLen, SwapFreeLen, and ResidentLen expose queue depths for
// diagnostics (the console's "dump" command) without exposing the
// queues themselves.
func (m *MMU) PhysFreeLen() int { return m.physFree.Len() }
func (m *MMU) SwapFreeLen() int { return m.swapFree.Len() }
func (m *MMU) ResidentLen() int { return m.resident.Len() }

// Frame returns a copy of physical frame pfn's four bytes, for
// read-only inspection by diagnostics.
func (m *MMU) Frame(pfn uint8) Page {
	return m.phys[pfn]
}

// PhysFrames reports how many physical frames this MMU manages.
func (m *MMU) PhysFrames() int { return len(m.phys) }

// Resident is a read-only view of one resident-FIFO record.
type Resident struct {
	PID  int8
	PFN  uint8
	PTBR uint8
	Idx  uint8
}

// ResidentSnapshot returns the resident FIFO in arrival order, oldest
// (next eviction victim) first, without mutating it.
func (m *MMU) ResidentSnapshot() []Resident {
	out := make([]Resident, 0, m.resident.Len())
	m.resident.ForEach(func(r residency) {
		out = append(out, Resident{PID: r.pid, PFN: r.pfn, PTBR: r.ptbr, Idx: r.idx})
	})
	return out
}
