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

import "testing"

// fakeDriver records the character cells drawn by the display.
type fakeDriver struct {
	cols, rows int
	cells      []byte
	clears     int
}

func newFakeDriver(cols, rows int) *fakeDriver {
	return &fakeDriver{cols: cols, rows: rows, cells: make([]byte, cols*rows)}
}

func (f *fakeDriver) PrintChar(c byte, col, row int) {
	f.cells[row*f.cols+col] = c
}

func (f *fakeDriver) Clear() {
	f.clears++
	for i := range f.cells {
		f.cells[i] = 0
	}
}

func (f *fakeDriver) row(r int) string {
	b := make([]byte, f.cols)
	for c := range b {
		if ch := f.cells[r*f.cols+c]; ch >= 32 {
			b[c] = ch
		} else {
			b[c] = ' '
		}
	}
	return string(b)
}

func TestDisplayOutput(t *testing.T) {
	drv := newFakeDriver(10, 4)
	i, _ := runScript(t, "10 SET 2, 1\n20 PRINT \"HI\"\nRUN\n", Display(drv, 10, 4))
	if got := drv.row(0); got != "HI        " {
		t.Errorf("row 0: %q", got)
	}
	// PRINT's newline moved the cursor down
	if i.dsp.row != 1 || i.dsp.col != 0 {
		t.Errorf("cursor at %d,%d", i.dsp.col, i.dsp.row)
	}
}

func TestDisplayScroll(t *testing.T) {
	drv := newFakeDriver(10, 3)
	runScript(t,
		"5 SET 2, 1\n10 PUT &2, 65, 10, 66, 10, 67, 10, 68\nRUN\n",
		Display(drv, 10, 3))
	// A B C D over 3 rows scrolled once: B, C, D visible
	if drv.row(0) != "B         " || drv.row(1) != "C         " || drv.row(2) != "D         " {
		t.Errorf("rows %q %q %q", drv.row(0), drv.row(1), drv.row(2))
	}
}

func TestDisplayBufferArray(t *testing.T) {
	drv := newFakeDriver(10, 4)
	_, out := runScript(t,
		"10 @D(1)=88\n20 PRINT @D(1)\nRUN\n", Display(drv, 10, 4))
	if got := progOutput(out); got != "88\n" {
		t.Errorf("@D readback: %q", got)
	}
	if drv.cells[0] != 'X' {
		t.Errorf("cell 0 = %q", drv.cells[0])
	}
}

func TestDisplayCursorVars(t *testing.T) {
	drv := newFakeDriver(10, 4)
	i, _ := runScript(t, "10 @X=3\n20 @Y=2\nRUN\n", Display(drv, 10, 4))
	if i.dsp.col != 3 || i.dsp.row != 2 {
		t.Errorf("cursor at %d,%d, want 3,2", i.dsp.col, i.dsp.row)
	}
}

func TestDisplayVT52CursorAddress(t *testing.T) {
	// ESC Y row col addresses the cursor; the wrap math uses the
	// incremented value
	drv := newFakeDriver(10, 4)
	d := newDisplay(drv, 10, 4)
	for _, c := range []byte{27, 'Y', 31 + 2, 31 + 5} {
		d.write(c)
	}
	if d.row != 2 || d.col != 5 {
		t.Errorf("cursor at %d,%d, want 5,2", d.col, d.row)
	}
	// cursor down wraps
	d.row = 3
	d.write(27)
	d.write('B')
	if d.row != 0 {
		t.Errorf("cursor down wrap: row %d, want 0", d.row)
	}
}

func TestDisplayFormFeedClears(t *testing.T) {
	drv := newFakeDriver(10, 4)
	d := newDisplay(drv, 10, 4)
	d.write('A')
	d.write(12)
	if drv.clears != 1 || d.col != 0 || d.row != 0 {
		t.Errorf("form feed: clears=%d cursor %d,%d", drv.clears, d.col, d.row)
	}
}
