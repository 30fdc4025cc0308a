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

// Package basic implements a tiny BASIC interpreter.
//
// The dialect is derived from the Palo Alto and Apple 1 language sets,
// extended with simple string handling, arrays, FOR/NEXT loops, GOSUB,
// memory dump/peek/poke, EEPROM and file persistence and a few host I/O
// statements. The interpreter was designed to fit machines with a few
// kilobytes of RAM: the tokenized program and the variable heap share a
// single byte arena, the program grows from the bottom and the heap grows
// down from the top.
//
// An Interpreter instance owns all state. It is built with functional
// options in the manner of:
//
//	i, err := basic.New(
//		basic.MemSize(32768),
//		basic.Input(os.Stdin),
//		basic.Output(os.Stdout),
//	)
//	if err != nil {
//		// ...
//	}
//	err = i.Run()
//
// Run enters the interactive read-eval loop: lines starting with a number
// are stored in the program, anything else executes immediately. Run
// returns io.EOF (wrapped) when the input stream is exhausted, which is the
// normal exit condition when the input is a file or a pipe.
//
// Host facilities - the filesystem used by SAVE/LOAD/CATALOG, the EEPROM
// block device, display hardware and digital/analog pins - are abstracted
// behind small interfaces (Filesystem, BlockDevice, DisplayDriver, Pins)
// and are absent by default. The interpreter core never touches the host
// directly.
package basic
