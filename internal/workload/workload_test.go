package workload

/*
 * kumu - Workload script tests
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

	"github.com/kumu-sim/kumu/internal/console"
)

const script = `
# set up a small session
init 4 4
schedule 1
fault 1 0x00
fault 1 0x04
show 1
dump
quit
fault 1 0x08
`

// Check the script above parses into exactly the statements named,
// that comments/blank lines are skipped, and that execution stops at
// quit without reaching the trailing fault line.
func TestParseAndRun(t *testing.T) {
	stmts, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse err got: %v expected: nil", err)
	}
	if len(stmts) != 8 {
		t.Fatalf("len(stmts) got: %d expected: %d", len(stmts), 8)
	}

	wantOps := []Op{OpInit, OpSchedule, OpFault, OpFault, OpShow, OpDump, OpQuit, OpFault}
	for i, op := range wantOps {
		if stmts[i].Op != op {
			t.Errorf("stmts[%d].Op got: %v expected: %v", i, stmts[i].Op, op)
		}
	}
	if stmts[0].A != 4 || stmts[0].B != 4 {
		t.Errorf("init operands got: (%d,%d) expected: (4,4)", stmts[0].A, stmts[0].B)
	}
	if stmts[3].A != 1 || stmts[3].B != 4 {
		t.Errorf("second fault operands got: (%d,%d) expected: (1,4)", stmts[3].A, stmts[3].B)
	}

	var out bytes.Buffer
	c := console.New(&out, nil, false)
	if err := Run(stmts, c); err != nil {
		t.Fatalf("Run err got: %v expected: nil", err)
	}
	if !strings.Contains(out.String(), "present pfn=4") {
		t.Errorf("Run output got: %q expected substring: %q", out.String(), "present pfn=4")
	}
}

// Check hex operands parse alongside decimal ones.
func TestParseHexOperands(t *testing.T) {
	stmts, err := Parse(strings.NewReader("fault 0x1 0xC0\n"))
	if err != nil {
		t.Fatalf("Parse err got: %v expected: nil", err)
	}
	if len(stmts) != 1 || stmts[0].A != 1 || stmts[0].B != 0xC0 {
		t.Fatalf("got: %+v expected A=1,B=0xC0", stmts)
	}
}

// Check an unknown directive fails with its 1-based line number.
func TestParseUnknownDirective(t *testing.T) {
	_, err := Parse(strings.NewReader("init 4 4\nbogus 1\n"))
	if err == nil {
		t.Fatalf("err got: nil expected: non-nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err got: %v expected to mention line 2", err)
	}
}

// Check a malformed operand (missing number) is also rejected.
func TestParseMissingOperand(t *testing.T) {
	_, err := Parse(strings.NewReader("schedule\n"))
	if err == nil {
		t.Fatalf("err got: nil expected: non-nil")
	}
}

// Check a script whose init margin fails propagates the MMU's error,
// annotated with the failing statement's line number.
func TestRunPropagatesMMUError(t *testing.T) {
	stmts, err := Parse(strings.NewReader("init 2 2\nschedule 1\nfault 1 0x00\n"))
	if err != nil {
		t.Fatalf("Parse err got: %v expected: nil", err)
	}
	var out bytes.Buffer
	c := console.New(&out, nil, false)
	err = Run(stmts, c)
	if err == nil {
		t.Fatalf("Run err got: nil expected: non-nil")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("err got: %v expected to mention line 3", err)
	}
}
