/*
 * kumu - Workload script loader
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

// Package workload parses and runs a batch script of harness
// directives against a console.Console, so a demand-paging scenario
// can be replayed from a file instead of typed in interactively.
package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/kumu-sim/kumu/internal/console"
)

// Op names one of the six script directives.
type Op int

const (
	OpInit Op = iota
	OpSchedule
	OpFault
	OpShow
	OpDump
	OpQuit
)

// Statement is one parsed line. A and B hold whatever operands Op
// needs (both for init/fault, A only for schedule/show, neither for
// dump/quit); Line is the 1-based source line number, kept for error
// messages raised while running the script.
type Statement struct {
	Op   Op
	Line int
	A, B uint64
}

// optionLine is a cursor over a single script line: a string plus a
// byte position, advanced a token at a time rather than split or
// tokenized up front.
type optionLine struct {
	text string
	pos  int
}

func (l *optionLine) skipSpace() {
	for l.pos < len(l.text) && unicode.IsSpace(rune(l.text[l.pos])) {
		l.pos++
	}
}

func (l *optionLine) isEOL() bool {
	return l.pos >= len(l.text) || l.text[l.pos] == '#'
}

func (l *optionLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.text) && !unicode.IsSpace(rune(l.text[l.pos])) && l.text[l.pos] != '#' {
		l.pos++
	}
	return strings.ToLower(l.text[start:l.pos])
}

func (l *optionLine) getNumber() (uint64, error) {
	word := l.getWord()
	if word == "" {
		return 0, errors.New("expected a number")
	}
	base := 10
	if strings.HasPrefix(word, "0x") {
		base = 16
		word = word[2:]
	}
	return strconv.ParseUint(word, base, 16)
}

// Parse reads r line by line and returns the sequence of statements it
// names. Blank lines and lines whose first non-space character is '#'
// produce no statement. A malformed line aborts with an error naming
// its 1-based line number.
func Parse(r io.Reader) ([]Statement, error) {
	var out []Statement
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := &optionLine{text: scanner.Text()}
		line.skipSpace()
		if line.isEOL() {
			continue
		}

		word := line.getWord()
		stmt := Statement{Line: lineNo}

		var err error
		switch word {
		case "init":
			stmt.Op = OpInit
			if stmt.A, err = line.getNumber(); err == nil {
				stmt.B, err = line.getNumber()
			}
		case "schedule", "sched":
			stmt.Op = OpSchedule
			stmt.A, err = line.getNumber()
		case "fault":
			stmt.Op = OpFault
			if stmt.A, err = line.getNumber(); err == nil {
				stmt.B, err = line.getNumber()
			}
		case "show":
			stmt.Op = OpShow
			stmt.A, err = line.getNumber()
		case "dump":
			stmt.Op = OpDump
		case "quit":
			stmt.Op = OpQuit
		default:
			err = fmt.Errorf("unknown directive %q", word)
		}
		if err != nil {
			return nil, fmt.Errorf("workload line %d: %w", lineNo, err)
		}

		out = append(out, stmt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Run executes stmts in order against c, stopping early (without
// error) on a quit statement or a nil slice. It stops and returns the
// first error any statement produces, annotated with its source line.
func Run(stmts []Statement, c *console.Console) error {
	for _, s := range stmts {
		var err error
		switch s.Op {
		case OpInit:
			err = c.Init(uint8(s.A), uint8(s.B))
		case OpSchedule:
			err = c.Schedule(int8(s.A))
		case OpFault:
			err = c.Fault(int8(s.A), uint8(s.B))
		case OpShow:
			err = c.Show(int8(s.A))
		case OpDump:
			err = c.Dump()
		case OpQuit:
			return nil
		}
		if err != nil {
			return fmt.Errorf("workload line %d: %w", s.Line, err)
		}
	}
	return nil
}
