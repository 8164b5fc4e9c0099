/*
 * synacore - Main process.
 *
 * Copyright 2026, The Synacore Authors
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/jrcarver/synacore/emu/cpu"
	"github.com/jrcarver/synacore/emu/loader"
	"github.com/jrcarver/synacore/emu/memory"
	"github.com/jrcarver/synacore/emu/vmerr"
	"github.com/jrcarver/synacore/util/console"
	"github.com/jrcarver/synacore/util/logger"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run parses argv (argv[0] is the program name, as in os.Args) and executes
// one VM program image to completion. It returns the process exit code: 0
// on a clean halt, on --help, or on a missing image argument (spec.md §6);
// 1 on a bad flag, an image I/O failure, or a VM fault.
//
// Pulled out of main so the CLI's externally visible contract can be
// exercised directly with golden images, without touching the real
// process's stdin/stdout or calling os.Exit.
func run(argv []string, stdin *os.File, stdout, stderr io.Writer) int {
	set := getopt.New()
	optLogFile := set.StringLong("log", 'l', "", "Log file")
	optTrace := set.BoolLong("trace", 't', "Trace every instruction executed")
	optMaxSteps := set.Uint64Long("max-steps", 'm', 0, "Abort after this many instructions (0 = unbounded)")
	optHelp := set.BoolLong("help", 'h', "Help")

	if err := set.Getopt(argv, nil); err != nil {
		fmt.Fprintln(stderr, err)
		set.PrintUsage(stderr)
		return 1
	}

	if *optHelp {
		set.PrintUsage(stdout)
		return 0
	}

	args := set.Args()
	if len(args) != 1 {
		set.PrintUsage(stdout)
		return 0
	}

	var logOut *os.File
	if *optLogFile != "" {
		var err error
		logOut, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(stderr, "creating log file:", err)
			return 1
		}
		defer logOut.Close()
	}
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	if *optTrace {
		level.Set(slog.LevelDebug)
	}
	log := slog.New(logger.New(logOut, &slog.HandlerOptions{Level: level}))

	image, err := os.Open(args[0])
	if err != nil {
		log.Error("opening program image", "error", err)
		return 1
	}
	defer image.Close()

	mem := memory.New()
	if err := loader.Load(bufio.NewReader(image), mem); err != nil {
		log.Error("loading program image", "error", err)
		return 1
	}

	in, closeIn := console.ByteSource(stdin, "")
	defer closeIn()

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	eng := cpu.New(mem, in, out, log, *optMaxSteps)

	if err := eng.Run(); err != nil {
		out.Flush()
		var fault *vmerr.Fault
		if errors.As(err, &fault) {
			log.Error("program fault", "error", fault)
		} else {
			log.Error("program aborted", "error", err)
		}
		return 1
	}
	return 0
}
