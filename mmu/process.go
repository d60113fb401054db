/*
 * kumu - Process directory
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

// pdbrOf scans physical memory for the pid's PCB frame and returns its
// pdbr, creating the PCB (and a fresh root directory) on first
// reference. The scan is linear rather than a pid->pdbr map: physical
// memory is itself the directory, so a second index would just be a
// cache of something this small doesn't need.
func (m *MMU) pdbrOf(pid int8) (uint8, error) {
	for i := range m.phys {
		if m.phys[i][0] == pcbSentinel && int8(m.phys[i][1]) == pid {
			return m.phys[i][2], nil
		}
	}

	if m.physFree.Len() < 2 {
		return 0, fmt.Errorf("kumu: no PCB yet for pid %d and physical free pool has fewer than 2 frames", pid)
	}

	pdbr := m.physFree.Dequeue()
	pcb := m.physFree.Dequeue()

	m.phys[pcb][0] = pcbSentinel
	m.phys[pcb][1] = byte(pid)
	m.phys[pcb][2] = pdbr
	m.phys[pcb][3] = 0

	m.log.Debug("created process directory entry", "pid", pid, "pcb_frame", pcb, "pdbr", pdbr)

	return pdbr, nil
}

// LookupPDBR reports pid's pdbr without creating a process directory
// entry if one doesn't already exist. Unlike RunProc, a miss is not an
// error: it just means the harness hasn't scheduled this pid yet. Used
// by read-only diagnostics that must not allocate.
func (m *MMU) LookupPDBR(pid int8) (pdbr uint8, ok bool) {
	for i := range m.phys {
		if m.phys[i][0] == pcbSentinel && int8(m.phys[i][1]) == pid {
			return m.phys[i][2], true
		}
	}
	return 0, false
}
