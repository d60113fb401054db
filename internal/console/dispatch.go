/*
 * kumu - Interactive command dispatch
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

package console

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// cmd describes one dispatchable command: a canonical name, the
// shortest unambiguous prefix length a user may type, and the handler
// that consumes the rest of the line.
type cmd struct {
	name    string
	min     int
	process func(*cmdLine, *Console) (bool, error)
}

var cmdList = []cmd{
	{name: "init", min: 1, process: doInit},
	{name: "schedule", min: 2, process: doSchedule},
	{name: "fault", min: 1, process: doFault},
	{name: "show", min: 2, process: doShow},
	{name: "dump", min: 2, process: doDump},
	{name: "quit", min: 1, process: doQuit},
}

// cmdLine is a cursor over one line of input: a string plus a byte
// offset, advanced by the parsing helpers below rather than
// split/tokenized up front.
type cmdLine struct {
	line string
	pos  int
}

// ProcessCommand parses and runs one line against c. The returned bool
// is true only for "quit". Blank lines and lines starting with '#' are
// silently accepted as no-ops, mirroring the workload script grammar.
func (c *Console) ProcessCommand(commandLine string) (bool, error) {
	line := cmdLine{line: commandLine}
	line.skipSpace()
	if line.isEOL() {
		return false, nil
	}

	name := line.getWord()
	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}

	return match[0].process(&line, c)
}

// matchCommand reports whether command is a prefix of match.name at
// least match.min bytes long.
func matchCommand(match cmd, command string) bool {
	if len(command) < match.min || len(command) > len(match.name) {
		return false
	}
	return match.name[:len(command)] == command
}

// matchList returns every command command is an unambiguous-or-not
// prefix of; the caller decides what to do with more than one match.
func matchList(command string) []cmd {
	if command == "" {
		return nil
	}
	var out []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			out = append(out, m)
		}
	}
	return out
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// isEOL reports end of line, or a '#' starting a trailing comment.
func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line) || l.line[l.pos] == '#'
}

// getWord consumes one run of non-space bytes, lower-cased.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) && l.line[l.pos] != '#' {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

// getNumber consumes one decimal or 0x-prefixed hex integer.
func (l *cmdLine) getNumber() (uint64, error) {
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

func doInit(l *cmdLine, c *Console) (bool, error) {
	memBits, err := l.getNumber()
	if err != nil {
		return false, errors.New("init: " + err.Error())
	}
	swapBits, err := l.getNumber()
	if err != nil {
		return false, errors.New("init: " + err.Error())
	}
	return false, c.Init(uint8(memBits), uint8(swapBits))
}

func doSchedule(l *cmdLine, c *Console) (bool, error) {
	pid, err := l.getNumber()
	if err != nil {
		return false, errors.New("schedule: " + err.Error())
	}
	return false, c.Schedule(int8(pid))
}

func doFault(l *cmdLine, c *Console) (bool, error) {
	pid, err := l.getNumber()
	if err != nil {
		return false, errors.New("fault: " + err.Error())
	}
	va, err := l.getNumber()
	if err != nil {
		return false, errors.New("fault: " + err.Error())
	}
	return false, c.Fault(int8(pid), uint8(va))
}

func doShow(l *cmdLine, c *Console) (bool, error) {
	pid, err := l.getNumber()
	if err != nil {
		return false, errors.New("show: " + err.Error())
	}
	return false, c.Show(int8(pid))
}

func doDump(_ *cmdLine, c *Console) (bool, error) {
	return false, c.Dump()
}

func doQuit(_ *cmdLine, _ *Console) (bool, error) {
	return true, nil
}
