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

// DisplayDriver is the hardware side of the display: it draws one
// character cell and clears the screen. The interpreter owns the scroll
// buffer and the cursor and emulates a dumb VT52 terminal on top of it.
type DisplayDriver interface {
	PrintChar(c byte, col, row int)
	Clear()
}

type display struct {
	drv        DisplayDriver
	cols, rows int
	buf        []byte // rows*cols cells, 0 = empty
	col, row   int
	scrollMode int // 1 enables waitOnScroll pagination
	scrollRows int
	esc        int  // escape state: 0 off, 1 seen ESC, 2 cursor row pending
	vt52       byte // pending multi character VT52 command
}

func newDisplay(drv DisplayDriver, cols, rows int) *display {
	return &display{
		drv:        drv,
		cols:       cols,
		rows:       rows,
		buf:        make([]byte, cols*rows),
		scrollMode: 1,
		scrollRows: 1,
	}
}

func (d *display) bufferClear() {
	for j := range d.buf {
		d.buf[j] = 0
	}
	d.col = 0
	d.row = 0
}

func (d *display) clear() {
	d.bufferClear()
	d.drv.Clear()
}

// scroll shifts the buffer up by scrollRows, redrawing only the cells that
// changed.
func (d *display) scroll() {
	for r := 0; r < d.rows-d.scrollRows; r++ {
		for c := 0; c < d.cols; c++ {
			a := d.buf[r*d.cols+c]
			b := d.buf[(r+d.scrollRows)*d.cols+c]
			if a != b {
				if b >= 32 {
					d.drv.PrintChar(b, c, r)
				} else {
					d.drv.PrintChar(' ', c, r)
				}
			}
			d.buf[r*d.cols+c] = b
		}
	}
	for r := d.rows - d.scrollRows; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			if d.buf[r*d.cols+c] > 32 {
				d.drv.PrintChar(' ', c, r)
			}
			d.buf[r*d.cols+c] = 0
		}
	}
	d.col = 0
	d.row = d.rows - d.scrollRows
}

// dspVT52 runs the VT52 state machine for one character. It returns 0 when
// the character was consumed by the escape sequence.
func (d *display) dspVT52(c byte) byte {
	if d.vt52 == 'Y' {
		switch d.esc {
		case 2:
			d.row = int(c-31) % d.rows
			d.esc = 1
			return 0
		case 1:
			d.col = int(c-31) % d.cols
			c = 0
		}
		d.vt52 = 0
	}
	switch c {
	case 'A': // cursor up
		if d.row > 0 {
			d.row--
		}
	case 'B': // cursor down
		d.row = (d.row + 1) % d.rows
	case 'C': // cursor right
		d.col = (d.col + 1) % d.cols
	case 'D': // cursor left
		if d.col > 0 {
			d.col--
		}
	case 'E': // clear screen
		d.clear()
	case 'H': // cursor home
		d.row = 0
		d.col = 0
	case 'Y': // set cursor position
		d.vt52 = 'Y'
		d.esc = 2
		return 0
	}
	d.esc = 0
	return 0
}

// write puts one character on the display, handling the control set and
// scrolling.
func (d *display) write(c byte) {
	if d.esc != 0 {
		c = d.dspVT52(c)
		if c == 0 {
			return
		}
	}
	switch c {
	case 10: // LF, Unix style, doing also a CR
		d.row++
		if d.row >= d.rows {
			d.scroll()
		}
		d.col = 0
		return
	case 12: // form feed is clear screen
		d.clear()
		return
	case 13:
		d.col = 0
		return
	case 27:
		d.esc = 1
		return
	case 127: // delete
		if d.col > 0 {
			d.col--
			d.buf[d.row*d.cols+d.col] = 0
			d.drv.PrintChar(' ', d.col, d.row)
		}
		return
	}
	if c < 32 {
		return
	}
	d.drv.PrintChar(c, d.col, d.row)
	d.buf[d.row*d.cols+d.col] = c
	d.col++
	if d.col == d.cols {
		d.col = 0
		d.row++
		if d.row >= d.rows {
			d.scroll()
		}
	}
}

// get reads cell idx (1 based) of the display buffer, the @D array.
func (d *display) get(idx int) Number {
	if idx < 1 || idx > d.cols*d.rows {
		return 0
	}
	return Number(d.buf[idx-1])
}

// set writes cell idx of the display buffer and updates the hardware.
func (d *display) set(idx int, v Number) {
	if idx < 1 || idx > d.cols*d.rows {
		return
	}
	idx--
	c := idx % d.cols
	r := idx / d.cols
	b := byte(v)
	if b == 0 {
		d.drv.PrintChar(' ', c, r)
	} else {
		d.drv.PrintChar(b, c, r)
	}
	if b == 32 {
		d.buf[idx] = 0
	} else {
		d.buf[idx] = b
	}
}

// dspWrite routes a character to the display when one is attached.
func (i *Interpreter) dspWrite(c byte) {
	if i.dsp != nil {
		i.dsp.write(c)
	}
}

func (i *Interpreter) dspActive() bool {
	return i.dsp != nil && i.od&oDisplay != 0
}

// dspWaitOnScroll pauses output when the cursor reaches the last row, so
// LIST and CATALOG can be paged on small screens. Space continues with a
// cleared screen, any other key with a scroll; the returned key lets the
// caller abort on ESC.
func (i *Interpreter) dspWaitOnScroll() byte {
	d := i.dsp
	if d == nil || d.scrollMode != 1 {
		return 0
	}
	if d.row == d.rows-1 {
		c, _ := i.inChar()
		if c == ' ' {
			i.outChar(12)
		}
		return c
	}
	return 0
}
