package console

/*
 * kumu - Command dispatch tests
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

import (
	"bytes"
	"strings"
	"testing"
)

func newTestConsole() (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out, nil, false), &out
}

// Check a command run before init is rejected, and that init itself
// accepts both decimal and 0x-prefixed hex operands.
func TestProcessCommandRequiresInit(t *testing.T) {
	c, _ := newTestConsole()

	if _, err := c.ProcessCommand("schedule 1"); err == nil {
		t.Errorf("schedule before init err got: nil expected: non-nil")
	}

	if _, err := c.ProcessCommand("init 0x4 4"); err != nil {
		t.Fatalf("init err got: %v expected: nil", err)
	}
	if c.m.PhysFrames() != 16 {
		t.Errorf("PhysFrames() got: %d expected: %d", c.m.PhysFrames(), 16)
	}
}

// Check abbreviation matching: "sch" resolves to schedule, a bare "s"
// is shorter than the two-byte minimum of both schedule and show and
// is rejected.
func TestProcessCommandAbbreviation(t *testing.T) {
	c, out := newTestConsole()
	if _, err := c.ProcessCommand("init 4 4"); err != nil {
		t.Fatalf("init err got: %v expected: nil", err)
	}

	if _, err := c.ProcessCommand("sch 1"); err != nil {
		t.Fatalf("sch 1 err got: %v expected: nil", err)
	}
	if !strings.Contains(out.String(), "scheduled") {
		t.Errorf("output after sch 1 got: %q expected substring: %q", out.String(), "scheduled")
	}

	if _, err := c.ProcessCommand("s 1"); err == nil {
		t.Errorf("too-short 's' err got: nil expected: non-nil")
	}
}

// Check blank lines and comment lines are silent no-ops.
func TestProcessCommandBlankAndComment(t *testing.T) {
	c, _ := newTestConsole()
	if quit, err := c.ProcessCommand(""); err != nil || quit {
		t.Errorf("blank line got: (%v,%v) expected: (false,nil)", quit, err)
	}
	if quit, err := c.ProcessCommand("   # a note"); err != nil || quit {
		t.Errorf("comment line got: (%v,%v) expected: (false,nil)", quit, err)
	}
}

// Check quit reports the quit signal and nothing else runs after it
// would matter.
func TestProcessCommandQuit(t *testing.T) {
	c, _ := newTestConsole()
	quit, err := c.ProcessCommand("quit")
	if err != nil || !quit {
		t.Errorf("quit got: (%v,%v) expected: (true,nil)", quit, err)
	}
}

// Check an unknown command name is rejected.
func TestProcessCommandUnknown(t *testing.T) {
	c, _ := newTestConsole()
	if _, err := c.ProcessCommand("frobnicate"); err == nil {
		t.Errorf("unknown command err got: nil expected: non-nil")
	}
}

// Check a full fault/show/dump sequence runs end to end through the
// dispatcher, not just through the Console methods directly.
func TestProcessCommandFaultShowDump(t *testing.T) {
	c, out := newTestConsole()
	for _, line := range []string{"init 4 4", "schedule 1", "fault 1 0x00", "show 1", "dump"} {
		if _, err := c.ProcessCommand(line); err != nil {
			t.Fatalf("ProcessCommand(%q) err got: %v expected: nil", line, err)
		}
	}
	got := out.String()
	if !strings.Contains(got, "present pfn=4") {
		t.Errorf("show output got: %q expected substring: %q", got, "present pfn=4")
	}
	if !strings.Contains(got, "phys_free=") {
		t.Errorf("dump output got: %q expected substring: %q", got, "phys_free=")
	}
}
