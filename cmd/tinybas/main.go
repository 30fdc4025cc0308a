// This file is part of tinybas - https://github.com/db47h/tinybas
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tinybas runs the tiny BASIC interpreter behind a line oriented
// console. Programs are saved to and loaded from the working directory; an
// optional EEPROM image file emulates the on-chip persistent store,
// including autorun.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/tinybas/basic"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
)

var debug bool

func atExit(err error) {
	if err == nil || errors.Cause(err) == io.EOF {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	}
	os.Exit(1)
}

func main() {
	var err error

	memSize := flag.Int("mem", env.Int("TINYBAS_MEM", 46000), "arena size in bytes")
	romFile := flag.String("eeprom", env.Str("TINYBAS_EEPROM"), "EEPROM image `filename`, empty for none")
	romSize := flag.Int("eepromsize", 4096, "EEPROM size in bytes when creating a new image")
	dir := flag.String("dir", env.Str("TINYBAS_DIR", "."), "`directory` used by SAVE, LOAD and CATALOG")
	rawIO := flag.Bool("raw", false, "switch the terminal to raw mode")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		stdout.Flush()
		atExit(err)
	}()

	opts := []basic.Option{
		basic.MemSize(*memSize),
		basic.Input(os.Stdin),
		basic.Output(stdout),
		basic.FS(dirFS(*dir)),
		basic.Host(newHostPins()),
	}

	var rom *fileEeprom
	if *romFile != "" {
		rom, err = loadEeprom(*romFile, *romSize)
		if err != nil {
			return
		}
		defer func() {
			if e := rom.flush(); err == nil {
				err = e
			}
		}()
		opts = append(opts, basic.EEPROM(rom))
	}

	if *rawIO {
		tearDown, e := setRawIO()
		if e != nil {
			err = e
			return
		}
		defer tearDown()
		// with the terminal in raw mode we have to echo input ourselves
		opts = append(opts, basic.Echo(true))
	}

	i, e := basic.New(opts...)
	if e != nil {
		err = e
		return
	}
	err = i.Run()
}
