/*
 * kumu - Interactive console reader
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
	"fmt"

	"github.com/peterh/liner"
)

// Run drives an interactive prompt loop against c until the user
// quits, hits ctrl-D, or aborts with ctrl-C.
func Run(c *Console) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		return complete(in)
	})

	for {
		command, err := line.Prompt("kumu> ")
		if err == nil {
			line.AppendHistory(command)
			quit, procErr := c.ProcessCommand(command)
			if procErr != nil {
				fmt.Fprintln(c.out, "error: "+procErr.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		c.log.Error("error reading line", "err", err.Error())
		return
	}
}

// complete lists every command name that in is an unambiguous-or-not
// prefix of, for liner's tab completion.
func complete(in string) []string {
	match := matchList(in)
	names := make([]string, len(match))
	for i, m := range match {
		names[i] = m.name
	}
	return names
}
