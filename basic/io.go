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

import "io"

// Character I/O. Output is routed by od to the serial stream, the printer,
// the open output file or the display; input is routed by id. The byte
// streams are the only traffic with the host.

func (i *Interpreter) outChar(c byte) {
	switch i.od {
	case oSerial:
		i.cbuf[0] = c
		i.out.Write(i.cbuf[:])
	case oPrinter:
		i.cbuf[0] = c
		i.prt.Write(i.cbuf[:])
	case oFile:
		i.fileWrite(c)
	case oDisplay:
		i.dspWrite(c)
	}
}

func (i *Interpreter) outCR() {
	i.outChar('\n')
}

func (i *Interpreter) outSpc() {
	i.outChar(' ')
}

// outS outputs a counted byte string, BASIC style.
func (i *Interpreter) outS(b []byte) {
	for _, c := range b {
		i.outChar(c)
	}
}

// outSC outputs a Go string.
func (i *Interpreter) outSC(s string) {
	for j := 0; j < len(s); j++ {
		i.outChar(s[j])
	}
}

// outNumber prints a number, left padded with spaces to the active PRINT
// width.
func (i *Interpreter) outNumber(n Number) {
	b := formatNumber(i.sbuf[:0], n)
	for w := i.form - Number(len(b)); w > 0; w-- {
		i.outSpc()
	}
	for _, c := range b {
		i.outChar(c)
	}
}

// inChar reads one character from the current input device, waiting for
// it. File input does not error out here: a failed read sets the trappable
// error code instead.
func (i *Interpreter) inChar() (byte, error) {
	switch i.id {
	case iSerial:
		if i.in == nil {
			return 0, io.EOF
		}
		return i.in.ReadByte()
	case iKeyboard:
		if i.kbd == nil {
			return 0, io.EOF
		}
		return i.kbd.ReadByte()
	case iFile:
		return i.fileRead(), nil
	}
	return 0, nil
}

// checkCh checks for a pending character without blocking; 0 means none.
func (i *Interpreter) checkCh() byte {
	var r interface {
		Buffered() int
		Peek(int) ([]byte, error)
	}
	switch i.id {
	case iSerial:
		if i.in == nil {
			return 0
		}
		r = i.in
	case iKeyboard:
		if i.kbd == nil {
			return 0
		}
		r = i.kbd
	case iFile:
		// an open file always has a byte pending; reading past the end
		// sets the trappable error instead
		if i.ifr != nil {
			return 1
		}
		return 0
	default:
		return 0
	}
	if r.Buffered() == 0 {
		return 0
	}
	b, err := r.Peek(1)
	if err != nil || len(b) == 0 {
		return 0
	}
	return b[0]
}

// readLine reads one input line into b: the length at b[0], the bytes from
// b[1] on, zero terminated. Backspace edits, CR and LF both end the line.
// The returned error is non-nil only when the stream ended before any
// character was read.
func (i *Interpreter) readLine(b []byte) error {
	n := 1
	for n < len(b)-1 {
		c, err := i.inChar()
		if err != nil || (c == 0 && i.id == iFile) {
			if n > 1 {
				break
			}
			if err == nil {
				err = io.EOF
			}
			return err
		}
		if i.echo {
			i.outChar(c)
		}
		if c == '\n' || c == '\r' {
			break
		}
		if c == 127 || c == 8 {
			if n > 1 {
				n--
			}
			continue
		}
		b[n] = c
		n++
	}
	b[0] = byte(n - 1)
	b[n] = 0
	return nil
}

// inNumber reads one number from the current input device for INPUT,
// re-prompting on junk. It returns the break character when the user
// aborted the input.
func (i *Interpreter) inNumber() (Number, byte) {
	var lbuf [sbufSize]byte
	for {
		if err := i.readLine(lbuf[:]); err != nil {
			return 0, breakChar
		}
		j := 1
		s := Number(1)
		for j < len(lbuf) {
			switch {
			case lbuf[j] == ' ' || lbuf[j] == '\t':
				j++
				continue
			case lbuf[j] == breakChar:
				return 0, breakChar
			case lbuf[j] == 0:
				return 0, 1
			case lbuf[j] == '-':
				s = -1
				j++
				continue
			}
			if lbuf[j] >= '0' && lbuf[j] <= '9' {
				r, _ := parseNumber(lbuf[j:])
				return r * s, 0
			}
			// not a number, complain and start over
			i.printMessage(int(errNumber))
			i.outSpc()
			i.printMessage(int(errGeneral))
			i.outCR()
			break
		}
	}
}

// open file wrappers. A failed file operation sets the trappable error
// code and returns; nothing is retried.

func (i *Interpreter) fileWrite(c byte) {
	if i.ofile == nil {
		i.ert = 1
		return
	}
	i.cbuf[0] = c
	if _, err := i.ofile.Write(i.cbuf[:]); err != nil {
		i.ert = 1
	}
}

func (i *Interpreter) fileRead() byte {
	if i.ifr == nil {
		i.ert = 1
		return 0
	}
	c, err := i.ifr.ReadByte()
	if err != nil {
		i.ert = -1
		return 0
	}
	return c
}

func (i *Interpreter) closeInFile() {
	if i.ifile != nil {
		i.ifile.Close()
		i.ifile = nil
		i.ifr = nil
	}
}

func (i *Interpreter) closeOutFile() {
	if i.ofile != nil {
		i.ofile.Close()
		i.ofile = nil
	}
}
