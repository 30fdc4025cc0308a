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

func TestHeapAllocFind(t *testing.T) {
	i := newTest(t)

	a := i.alloc(tVariable, 'A', '1', 0)
	if i.er != errNone || a == 0 {
		t.Fatalf("alloc: addr %d error %d", a, i.er)
	}
	b := i.alloc(tArrayvar, 'B', 0, 5)
	if i.er != errNone || b == 0 {
		t.Fatalf("alloc: addr %d error %d", b, i.er)
	}
	s := i.alloc(tStringvar, 'S', 0, 10+strIndexSize)
	if i.er != errNone || s == 0 {
		t.Fatalf("alloc: addr %d error %d", s, i.er)
	}
	if i.nvars != 3 {
		t.Errorf("nvars=%d, want 3", i.nvars)
	}

	if r := i.find(tVariable, 'A', '1'); r.addr != a || r.length != numSize {
		t.Errorf("find A1: %+v", r)
	}
	if r := i.find(tArrayvar, 'B', 0); r.addr != b || r.length != 5*numSize {
		t.Errorf("find B(): %+v", r)
	}
	if r := i.find(tStringvar, 'S', 0); r.addr != s || r.length != 10+strIndexSize {
		t.Errorf("find S$: %+v", r)
	}
	if r := i.find(tVariable, 'Z', 'Z'); r.addr != 0 {
		t.Errorf("find Z Z: %+v, want absent", r)
	}
	// same name, different type is a different object
	if r := i.find(tVariable, 'B', 0); r.addr != 0 {
		t.Errorf("find scalar B: %+v, want absent", r)
	}

	if n := countObjects(i); n != i.nvars {
		t.Errorf("trailer walk found %d objects, nvars=%d", n, i.nvars)
	}
}

func TestHeapAllocDuplicate(t *testing.T) {
	i := newTest(t)
	i.alloc(tArrayvar, 'A', 0, 3)
	i.alloc(tArrayvar, 'A', 0, 3)
	if i.er != errVariable {
		t.Errorf("duplicate alloc: error %d, want Variable", i.er)
	}
}

func TestHeapOutOfMemory(t *testing.T) {
	i := newTest(t)
	i.alloc(tArrayvar, 'A', 0, 2000)
	if i.er != errOutOfMemory {
		t.Errorf("alloc past himem: error %d, want Memory", i.er)
	}
	if i.nvars != 0 {
		t.Errorf("nvars=%d after failed alloc", i.nvars)
	}
}

func TestHeapTrailerLayout(t *testing.T) {
	// the trailer is payload, length, tag, name2, name1 packed against
	// himem; the layout is part of the EEPROM image format
	i := newTest(t)
	i.alloc(tStringvar, 'S', '1', 8)
	m := i.memsize
	if i.mem[m] != 'S' || i.mem[m-1] != '1' || int8(i.mem[m-2]) != tStringvar {
		t.Fatalf("bad trailer % x", i.mem[m-2:m+1])
	}
	if l := loadAddr(i.mem[m-2-addrSize:]); l != 8 {
		t.Errorf("length field %d, want 8", l)
	}
}

func TestStaticVars(t *testing.T) {
	i := newTest(t)
	i.setVar('A', 0, 42)
	if i.nvars != 0 {
		t.Errorf("static scalar went to the heap")
	}
	if v := i.getVar('A', 0); v != 42 {
		t.Errorf("A=%v, want 42", v)
	}
	// two character names go to the heap
	i.setVar('A', '1', 7)
	if i.nvars != 1 {
		t.Errorf("nvars=%d, want 1", i.nvars)
	}
	if v := i.getVar('A', '1'); v != 7 {
		t.Errorf("A1=%v, want 7", v)
	}
}

func TestClearVars(t *testing.T) {
	i := newTest(t)
	i.setVar('A', 0, 1)
	i.setVar('B', '2', 2)
	i.createArray('C', 0, 4)
	i.clearVars()
	if i.nvars != 0 || i.himem != i.memsize {
		t.Errorf("clearVars: nvars=%d himem=%d", i.nvars, i.himem)
	}
	if v := i.getVar('A', 0); v != 0 {
		t.Errorf("A=%v after CLR", v)
	}
}

func TestStringLengthPrefix(t *testing.T) {
	i := newTest(t)
	i.createString('S', 0, 10)
	if n := i.stringDim('S', 0); n != 10 {
		t.Fatalf("stringDim=%v, want 10", n)
	}
	if n := i.lenString('S', 0); n != 0 {
		t.Fatalf("fresh string length %v", n)
	}
	s := i.getString('S', 0, 1)
	copy(s, "ABCDE")
	i.setStringLength('S', 0, 5)
	if n := i.lenString('S', 0); n != 5 {
		t.Errorf("length %v, want 5", n)
	}
	i.setStringLength('S', 0, 100)
	if i.er != errRange {
		t.Errorf("oversized length: error %d, want Range", i.er)
	}
}

func TestFreeMemoryArray(t *testing.T) {
	// the @ array aliases the free region below himem
	i := newTest(t)
	i.setArray('@', 0, 1, 123456)
	if i.er != errNone {
		t.Fatalf("set @(1): error %d", i.er)
	}
	if v := i.getArray('@', 0, 1); v != 123456 {
		t.Errorf("@(1)=%v, want 123456", v)
	}
	h := (i.himem - i.top) / numSize
	i.getArray('@', 0, h+1)
	if i.er != errRange {
		t.Errorf("@(%d): error %d, want Range", h+1, i.er)
	}
}
