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
	"bufio"
	"io"

	"github.com/db47h/tinybas/internal/tbi"
	"github.com/pkg/errors"
)

// Addr indexes the memory arena. 16 bits are sufficient for the machines
// this interpreter targets.
type Addr = uint16

const (
	addrSize     = 2
	strIndexSize = 2
	eHeaderSize  = addrSize + 1
	maxAddr      = 1<<16 - 1
)

// Interpreter limits, sized after the original Palo Alto dimensions.
const (
	bufSize    = 92
	sbufSize   = 32
	varSize    = 26
	stackSize  = 15
	gosubDepth = 4
	forDepth   = 4
)

const defaultMemSize = 46000

// breakChar aborts a running program when seen at a statement boundary.
const breakChar = '#'

// interpreter run states.
const (
	sInt  = iota // interactive
	sRun         // running the tokenized program in memory
	sERun        // running the tokenized program from the EEPROM device
)

// output device codes, values visible to programs through @O.
const (
	oSerial  = 1
	oDisplay = 2
	oPrinter = 4
	oFile    = 16
)

// input device codes, visible through @I.
const (
	iSerial   = 1
	iKeyboard = 2
	iFile     = 16
)

// reported through USR(0,12) and USR(0,13). A hosted build has no UART.
const (
	serialBaudrate  = 0
	printerBaudrate = 0
)

// BlockDevice is the EEPROM collaborator: a byte addressed persistent
// store used by the @E array, negative PEEK/POKE addresses, SAVE "!" and
// program autorun.
type BlockDevice interface {
	Length() Addr
	Read(i Addr) byte
	Update(i Addr, b byte)
}

// Filesystem is the mass storage collaborator behind SAVE, LOAD, CATALOG,
// DELETE, OPEN and CLOSE.
type Filesystem interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	Remove(name string) error
	List() ([]string, error)
}

// Pins is the host I/O collaborator behind PINM, DWRITE, AWRITE, DREAD,
// AREAD, DELAY, ATONE, PULSEIN and MILLIS.
type Pins interface {
	PinMode(pin, mode Number)
	DigitalWrite(pin, v Number)
	DigitalRead(pin Number) Number
	AnalogWrite(pin, v Number)
	AnalogRead(pin Number) Number
	Delay(ms Number)
	Tone(pin, freq, dur Number)
	PulseIn(pin, v, timeout Number) Number
	Millis(scale Number) Number
}

// noPins is the default Pins collaborator: writes are dropped, reads
// return zero.
type noPins struct{}

func (noPins) PinMode(_, _ Number)           {}
func (noPins) DigitalWrite(_, _ Number)      {}
func (noPins) DigitalRead(_ Number) Number   { return 0 }
func (noPins) AnalogWrite(_, _ Number)       {}
func (noPins) AnalogRead(_ Number) Number    { return 0 }
func (noPins) Delay(_ Number)                {}
func (noPins) Tone(_, _, _ Number)           {}
func (noPins) PulseIn(_, _, _ Number) Number { return 0 }
func (noPins) Millis(_ Number) Number        { return 0 }

// forFrame is one FOR loop activation: the loop variable name, the
// position to loop back to, the limit and the step.
type forFrame struct {
	xc, yc byte
	here   Addr
	to     Number
	step   Number
}

// Option configures an Interpreter instance.
type Option func(*Interpreter) error

// MemSize sets the arena size in bytes. The arena holds both the tokenized
// program and the variable heap.
func MemSize(n int) Option {
	return func(i *Interpreter) error {
		if n < 256 || n > maxAddr+1 {
			return errors.Errorf("unsupported memory size %d", n)
		}
		i.mem = make([]byte, n)
		return nil
	}
}

// Input sets the serial input stream.
func Input(r io.Reader) Option {
	return func(i *Interpreter) error { i.in = bufio.NewReader(r); return nil }
}

// Output sets the serial output stream.
func Output(w io.Writer) Option {
	return func(i *Interpreter) error { i.out = tbi.NewErrWriter(w); return nil }
}

// Printer sets the printer output stream (device 4).
func Printer(w io.Writer) Option {
	return func(i *Interpreter) error { i.prt = tbi.NewErrWriter(w); return nil }
}

// Keyboard sets the keyboard input stream (device 2).
func Keyboard(r io.Reader) Option {
	return func(i *Interpreter) error { i.kbd = bufio.NewReader(r); return nil }
}

// FS sets the filesystem collaborator.
func FS(fs Filesystem) Option {
	return func(i *Interpreter) error { i.fs = fs; return nil }
}

// EEPROM sets the EEPROM block device.
func EEPROM(d BlockDevice) Option {
	return func(i *Interpreter) error { i.rom = d; return nil }
}

// Host sets the pin I/O collaborator.
func Host(p Pins) Option {
	return func(i *Interpreter) error { i.pins = p; return nil }
}

// Display attaches a display of the given geometry. The interpreter keeps
// a scroll buffer and drives the hardware through drv.
func Display(drv DisplayDriver, cols, rows int) Option {
	return func(i *Interpreter) error {
		if cols < 1 || rows < 1 {
			return errors.Errorf("bad display geometry %dx%d", cols, rows)
		}
		i.dsp = newDisplay(drv, cols, rows)
		return nil
	}
}

// Echo makes the line reader echo input characters back to the current
// output device. Used with a raw mode terminal.
func Echo(on bool) Option {
	return func(i *Interpreter) error { i.echo = on; return nil }
}

// Interpreter is a tiny BASIC interpreter instance. All interpreter state -
// the arena, the variable heap, the control stacks, device routing and the
// error unit - lives here; instances are independent of each other.
type Interpreter struct {
	mem     []byte
	memsize Addr // index of the last arena byte
	top     Addr // first free byte above the program
	himem   Addr // highest free byte; the heap occupies (himem, memsize]
	here    Addr // token cursor in run mode

	vars  [varSize]Number // static scalars A..Z
	nvars int             // object count on the heap

	ibuf [bufSize]byte // input line buffer, ibuf[0] holds the length
	bi   int           // token cursor in interactive mode

	// current token and its payloads
	tok    int8
	x      Number
	xc, yc byte
	ir     []byte
	ir2    []byte

	stack [stackSize]Number
	sp    int

	gosubStack [gosubDepth]Addr
	gsp        int

	forStack [forDepth]forFrame
	fsp      int
	fnc      int // FOR nesting seen while skipping to a matching NEXT

	st  int
	er  errCode
	ert Number // trappable error, @S

	rd   uint16 // random generator state
	form Number // minimum numeric print width

	id, od   int // current input/output device
	idd, odd int // defaults restored by ioDefaults

	echo bool

	out *tbi.ErrWriter
	prt *tbi.ErrWriter
	in  *bufio.Reader
	kbd *bufio.Reader

	ifile io.Closer     // open input file
	ifr   *bufio.Reader // reader over ifile
	ofile io.WriteCloser

	fs   Filesystem
	rom  BlockDevice
	pins Pins
	dsp  *display

	sbuf [sbufSize]byte // scratch buffer for number formatting
	cbuf [1]byte
}

// New creates a new interpreter instance.
func New(opts ...Option) (*Interpreter, error) {
	i := &Interpreter{
		idd:  iSerial,
		odd:  oSerial,
		pins: noPins{},
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.mem == nil {
		i.mem = make([]byte, defaultMemSize)
	}
	if i.out == nil {
		i.out = tbi.NewErrWriter(io.Discard)
	}
	if i.prt == nil {
		i.prt = tbi.NewErrWriter(io.Discard)
	}
	i.memsize = Addr(len(i.mem) - 1)
	i.himem = i.memsize
	i.ioDefaults()
	return i, nil
}

// Size returns the free arena space, as reported by the SIZE function.
func (i *Interpreter) Size() int {
	return int(i.himem - i.top)
}

func (i *Interpreter) ioDefaults() {
	i.od = i.odd
	i.id = i.idd
}

// operand stack

func (i *Interpreter) push(v Number) {
	if i.sp == stackSize {
		i.error(errStack)
		return
	}
	i.stack[i.sp] = v
	i.sp++
}

func (i *Interpreter) pop() Number {
	if i.sp == 0 {
		i.error(errStack)
		return 0
	}
	i.sp--
	return i.stack[i.sp]
}

// GOSUB stack

func (i *Interpreter) pushGosub() {
	if i.gsp == gosubDepth {
		i.error(errGosub)
		return
	}
	i.gosubStack[i.gsp] = i.here
	i.gsp++
}

func (i *Interpreter) popGosub() {
	if i.gsp == 0 {
		i.error(errReturn)
		return
	}
	i.gsp--
	i.here = i.gosubStack[i.gsp]
}

func (i *Interpreter) clrGosubStack() {
	i.gsp = 0
}

// FOR stack

func (i *Interpreter) pushFor(f forFrame) {
	if i.fsp == forDepth {
		i.error(errFor)
		return
	}
	i.forStack[i.fsp] = f
	i.fsp++
}

func (i *Interpreter) popFor() (forFrame, bool) {
	if i.fsp == 0 {
		i.error(errFor)
		return forFrame{}, false
	}
	i.fsp--
	return i.forStack[i.fsp], true
}

func (i *Interpreter) dropFor() {
	if i.fsp == 0 {
		i.error(errFor)
		return
	}
	i.fsp--
}

func (i *Interpreter) clrForStack() {
	i.fsp = 0
	i.fnc = 0
}
