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

package basic

import (
	"io"

	"github.com/pkg/errors"
)

// Run prints the greeting and enters the interactive loop: read one line,
// store it when it starts with a number, execute it otherwise. When the
// EEPROM device holds an autorun image the stored program runs first,
// straight from the block device.
//
// Run returns a wrapped io.EOF when the input stream is exhausted - the
// normal exit condition - or the first output error encountered.
func (i *Interpreter) Run() (err error) {
	defer func() {
		if e := i.out.Flush(); err == nil && e != nil {
			err = e
		}
	}()

	i.printMessage(mGreet)
	i.outSpc()
	i.printMessage(int(errOutOfMemory))
	i.outSpc()
	i.outNumber(Number(i.memsize) + 1)
	i.outSpc()
	i.outNumber(Number(i.romLength()))
	i.outCR()

	i.xNew()

	// autorun from the EEPROM
	if i.romLength() > 0 && i.eRead(0) == 1 {
		i.top = i.eLoadAddr(1)
		i.st = sERun
	}

	for {
		if i.st == sERun {
			i.xRun()
			// the autorun top is the EEPROM image size, not ours
			i.top = 0
			i.st = sInt
			continue
		}

		i.ioDefaults()
		i.printMessage(mPrompt)
		if e := i.out.Flush(); e != nil {
			return e
		}
		if e := i.readLine(i.ibuf[:]); e != nil {
			if errors.Cause(e) == io.EOF {
				return errors.Wrap(io.EOF, "input closed")
			}
			return errors.Wrap(e, "read failed")
		}

		i.bi = 0
		i.nextToken()
		if i.tok == tNumber {
			i.storeLine()
		} else {
			i.st = sInt
			i.statement()
			i.st = sInt
		}

		// at last, all errors need to be caught here
		if i.er != errNone {
			i.resetError()
		}
		if i.out.Err != nil {
			return i.out.Err
		}
	}
}

// xUsr exposes interpreter internals to programs: build constants, live
// state, device state and a handful of heap and buffer primitives. Unused
// selectors return 0.
func (i *Interpreter) xUsr() {
	arg := i.pop()
	fn := i.pop()
	switch fn {
	case 0: // the internal constants
		switch arg {
		case 0:
			i.push(numSize)
		case 1:
			i.push(maxNum)
		case 2:
			i.push(addrSize)
		case 3:
			i.push(Number(maxAddr))
		case 4:
			i.push(strIndexSize)
		case 5:
			i.push(Number(i.memsize) + 1)
		case 6:
			i.push(Number(i.romLength()))
		case 7:
			i.push(gosubDepth)
		case 8:
			i.push(forDepth)
		case 9:
			i.push(stackSize)
		case 10:
			i.push(bufSize)
		case 11:
			i.push(sbufSize)
		case 12:
			i.push(serialBaudrate)
		case 13:
			i.push(printerBaudrate)
		case 14:
			if i.dsp != nil {
				i.push(Number(i.dsp.rows))
			} else {
				i.push(0)
			}
		case 15:
			if i.dsp != nil {
				i.push(Number(i.dsp.cols))
			} else {
				i.push(0)
			}
		default:
			i.push(0)
		}
	case 1: // live interpreter state
		switch arg {
		case 0:
			i.push(Number(i.top))
		case 1:
			i.push(Number(i.here))
		case 2:
			i.push(Number(i.himem))
		case 3:
			i.push(Number(i.nvars))
		case 7:
			i.push(Number(i.gsp))
		case 8:
			i.push(Number(i.fnc))
		case 9:
			i.push(Number(i.sp))
		default:
			i.push(0)
		}
	case 2: // device state, somewhat redundant to the @ variables
		switch arg {
		case 0:
			i.push(Number(i.id))
		case 1:
			i.push(Number(i.idd))
		case 2:
			i.push(Number(i.od))
		case 3:
			i.push(Number(i.odd))
		default:
			i.push(0)
		}
	case 3: // find an object from type and name in the input buffer
		r := i.find(int8(i.ibuf[1]), i.ibuf[2], i.ibuf[3])
		i.push(Number(r.addr))
	case 4: // allocate an arbitrary object on the heap
		i.push(Number(i.alloc(int8(i.ibuf[1]), i.ibuf[2], i.ibuf[3], Addr(arg))))
	case 5: // the length of an object on the heap
		i.push(Number(i.lengthOf(int8(i.ibuf[1]), i.ibuf[2], i.ibuf[3])))
	case 6: // parse a number in the input buffer
		n, _ := parseNumber(i.ibuf[1:])
		i.push(n)
	case 7: // write a number to the input buffer
		b := formatNumber(i.ibuf[1:1], arg)
		i.ibuf[0] = byte(len(b))
		i.push(Number(len(b)))
	case 8: // store the input buffer as a program line
		i.x = arg
		st := i.st
		i.st = sInt
		here := i.here
		i.bi = 1
		i.ibuf[i.ibuf[0]+1] = 0
		i.storeLine()
		i.here = here
		i.st = st
		i.push(0)
	default:
		i.push(0)
	}
}
