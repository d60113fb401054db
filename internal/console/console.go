/*
 * kumu - Console execution core
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

// Package console drives a *mmu.MMU from harness-level directives: an
// abbreviation-matching interactive command line (this package) and a
// batch workload script (internal/workload) both call down to the same
// handful of operations, so "schedule 1" at the prompt and "schedule 1"
// in a script file behave identically.
package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kumu-sim/kumu/internal/hexfmt"
	"github.com/kumu-sim/kumu/internal/kulog"
	"github.com/kumu-sim/kumu/mmu"
)

// Console holds the one MMU instance a session operates on, created
// lazily by the "init" command/statement, plus where diagnostic output
// goes. It is not safe for concurrent use, matching the MMU it drives.
type Console struct {
	m   *mmu.MMU
	out io.Writer
	log *slog.Logger

	logWriter io.Writer
	debug     bool
}

// New returns a Console with no MMU yet; Init must run before any other
// operation. logWriter and debug are kept and forwarded to the MMU
// Init constructs, so the simulator's own fault/swap trace lands in
// the same place and at the same verbosity as the console's.
func New(out io.Writer, logWriter io.Writer, debug bool) *Console {
	return &Console{out: out, log: kulog.New("console", logWriter, debug), logWriter: logWriter, debug: debug}
}

// Init constructs the MMU for this session. Calling it again replaces
// the previous MMU outright: there is no migration of in-flight state,
// matching how a fresh "init" in the original tooling starts over.
func (c *Console) Init(memBits, swapBits uint8) error {
	m, err := mmu.New(memBits, swapBits, mmu.WithLogWriter(c.logWriter, c.debug))
	if err != nil {
		return err
	}
	c.m = m
	c.log.Info("session initialized", "mem_bits", memBits, "swap_bits", swapBits)
	return nil
}

// requireInit is the guard every operation but Init shares.
func (c *Console) requireInit() error {
	if c.m == nil {
		return fmt.Errorf("kumu: no session initialized, run init first")
	}
	return nil
}

// Schedule runs RunProc(pid) and reports the resulting pdbr.
func (c *Console) Schedule(pid int8) error {
	if err := c.requireInit(); err != nil {
		return err
	}
	cr3, err := c.m.RunProc(pid)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "pid %d scheduled, pdbr=%s\n", pid, hexfmt.FormatByte(cr3.PDBR))
	return nil
}

// Fault runs PageFault(pid, va) and reports success or the failure.
func (c *Console) Fault(pid int8, va uint8) error {
	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.m.PageFault(pid, va); err != nil {
		fmt.Fprintf(c.out, "fault pid=%d va=%s failed: %v\n", pid, hexfmt.FormatByte(va), err)
		return err
	}
	fmt.Fprintf(c.out, "fault pid=%d va=%s resolved\n", pid, hexfmt.FormatByte(va))
	return nil
}

// Show walks all 64 virtual addresses reachable from pid's pdbr and
// prints, for every one whose leaf is not never-touched, its mapping
// state. It is read-only: no allocation, no swap, no change to MMU
// state, just repeated application of the same decode+walk logic the
// fault handler uses internally.
func (c *Console) Show(pid int8) error {
	if err := c.requireInit(); err != nil {
		return err
	}

	pdbr, ok := c.m.LookupPDBR(pid)
	if !ok {
		return fmt.Errorf("kumu: pid %d has not been scheduled", pid)
	}

	fmt.Fprintf(c.out, "pid %d pdbr=%s\n", pid, hexfmt.FormatByte(pdbr))
	for va := range 256 {
		pd, pmd, pt := mmu.DecodeAddress(uint8(va))
		// Only print the first address reaching each (pd,pmd,pt) index
		// triple, since the two low offset bits this model doesn't use
		// would otherwise repeat the same translation four times.
		if uint8(va)&0x3 != 0 {
			continue
		}
		dirPTE := mmu.PTE(c.m.Frame(pdbr)[pd])
		if dirPTE.NeverTouched() {
			continue
		}
		if !dirPTE.Present() {
			fmt.Fprintf(c.out, "  va=%s dir swapped slot=%d\n", hexfmt.FormatByte(uint8(va)), dirPTE.SwapSlot())
			continue
		}
		midPTE := mmu.PTE(c.m.Frame(dirPTE.PFN())[pmd])
		if midPTE.NeverTouched() {
			continue
		}
		if !midPTE.Present() {
			fmt.Fprintf(c.out, "  va=%s mid swapped slot=%d\n", hexfmt.FormatByte(uint8(va)), midPTE.SwapSlot())
			continue
		}
		leafPTE := mmu.PTE(c.m.Frame(midPTE.PFN())[pt])
		switch {
		case leafPTE.NeverTouched():
			continue
		case leafPTE.Present():
			data := c.m.Frame(leafPTE.PFN())
			fmt.Fprintf(c.out, "  va=%s present pfn=%d data=%s\n", hexfmt.FormatByte(uint8(va)), leafPTE.PFN(), hexfmt.FormatBytes(data[:]))
		default:
			fmt.Fprintf(c.out, "  va=%s swapped slot=%d\n", hexfmt.FormatByte(uint8(va)), leafPTE.SwapSlot())
		}
	}
	return nil
}

// Dump prints the three queue depths: physical free, swap free, and
// resident.
func (c *Console) Dump() error {
	if err := c.requireInit(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "phys_free=%d swap_free=%d resident=%d phys_frames=%d\n",
		c.m.PhysFreeLen(), c.m.SwapFreeLen(), c.m.ResidentLen(), c.m.PhysFrames())
	return nil
}
