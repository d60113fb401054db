/*
 * kumu - Command-line entry point
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

package main

import (
	"log/slog"
	"os"
	"strconv"

	getopt "github.com/pborman/getopt/v2"

	"github.com/kumu-sim/kumu/internal/console"
	"github.com/kumu-sim/kumu/internal/workload"
)

func main() {
	optMemBits := getopt.StringLong("memory", 'm', "", "Physical memory size, as a power of two pages")
	optSwapBits := getopt.StringLong("swap", 's', "", "Swap size, as a power of two slots")
	optWorkload := getopt.StringLong("workload", 'w', "", "Workload script to run before the interactive prompt")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optInteractive := getopt.BoolLong("interactive", 'i', "Drop to an interactive prompt after the workload script runs")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile *os.File
	if *optLogFile != "" {
		var err error
		logFile, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("can't create log file", "path", *optLogFile, "err", err)
			os.Exit(1)
		}
	}

	c := console.New(os.Stdout, logFile, false)

	interactive := *optInteractive || *optWorkload == ""

	if *optMemBits != "" || *optSwapBits != "" {
		memBits, err := strconv.ParseUint(*optMemBits, 10, 8)
		if err != nil {
			slog.Error("invalid -memory value", "value", *optMemBits, "err", err)
			os.Exit(1)
		}
		swapBits, err := strconv.ParseUint(*optSwapBits, 10, 8)
		if err != nil {
			slog.Error("invalid -swap value", "value", *optSwapBits, "err", err)
			os.Exit(1)
		}
		if err := c.Init(uint8(memBits), uint8(swapBits)); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	}

	if *optWorkload != "" {
		f, err := os.Open(*optWorkload)
		if err != nil {
			slog.Error("can't open workload script", "path", *optWorkload, "err", err)
			os.Exit(1)
		}
		stmts, err := workload.Parse(f)
		f.Close()
		if err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
		if err := workload.Run(stmts, c); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	}

	if interactive {
		console.Run(c)
	}
}
