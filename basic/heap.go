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

// The variable heap. Objects are packed downward from himem; each object
// is payload bytes, then for arrays and strings an addrSize length field
// giving the payload length in bytes, then a 3 byte trailer: the type tag
// and the two name bytes. Scalars named by a single uppercase letter
// bypass the heap through the static table.
//
// String payloads begin with a strIndexSize current-length prefix followed
// by capacity bytes.

// objRef locates a heap object: the low address of its payload and the
// payload length in bytes. A zero addr means not found.
type objRef struct {
	addr   Addr
	length Addr
}

// alloc reserves a new object on the heap and returns the low address of
// its payload. For arrays l is the number of elements, for strings the
// payload length in bytes.
func (i *Interpreter) alloc(t int8, c, d byte, l Addr) Addr {
	if r := i.find(t, c, d); r.addr != 0 {
		i.error(errVariable)
		return 0
	}
	var vsize Addr
	switch t {
	case tVariable:
		vsize = numSize + 3
	case tArrayvar:
		vsize = numSize*l + addrSize + 3
	default:
		vsize = l + addrSize + 3
	}
	if i.himem-i.top < vsize {
		i.error(errOutOfMemory)
		return 0
	}
	b := i.himem
	i.mem[b] = c
	b--
	i.mem[b] = d
	b--
	i.mem[b] = byte(t)
	b--
	if t == tArrayvar || t == tStringvar {
		// store the payload length below the trailer
		b -= addrSize - 1
		storeAddr(i.mem[b:], vsize-(addrSize+3))
	}
	i.himem -= vsize
	i.nvars++
	return i.himem + 1
}

// find walks the trailers from the top of the arena (memsize) downward
// looking for (t, c, d).
func (i *Interpreter) find(t int8, c, d byte) objRef {
	b := i.memsize
	for n := 0; n < i.nvars; n++ {
		c1 := i.mem[b]
		b--
		d1 := i.mem[b]
		b--
		t1 := int8(i.mem[b])
		b--
		var l Addr
		if t1 == tVariable {
			l = numSize
		} else {
			b -= addrSize - 1
			l = loadAddr(i.mem[b:])
			b--
		}
		b -= l
		if c1 == c && d1 == d && t1 == t {
			return objRef{addr: b + 1, length: l}
		}
	}
	return objRef{}
}

// lengthOf returns the payload length of an object, 0 when absent.
func (i *Interpreter) lengthOf(t int8, c, d byte) Addr {
	return i.find(t, c, d).length
}

// clearVars drops all variables: the static table, the heap and the object
// count.
func (i *Interpreter) clearVars() {
	for j := range i.vars {
		i.vars[j] = 0
	}
	i.nvars = 0
	i.himem = i.memsize
}

// getVar reads a scalar, creating heap scalars on first reference.
// Two character names starting with @ are the interpreter's special
// variables.
func (i *Interpreter) getVar(c, d byte) Number {
	if c >= 'A' && c <= 'Z' && d == 0 {
		return i.vars[c-'A']
	}
	if c == '@' {
		switch d {
		case 'S':
			return i.ert
		case 'I':
			return Number(i.id)
		case 'O':
			return Number(i.od)
		case 'C':
			if i.checkCh() != 0 {
				b, _ := i.inChar()
				return Number(b)
			}
			return 0
		case 'R':
			return Number(i.rd)
		case 'X':
			if i.dsp != nil {
				return Number(i.dsp.col)
			}
		case 'Y':
			if i.dsp != nil {
				return Number(i.dsp.row)
			}
		}
	}
	r := i.find(tVariable, c, d)
	if r.addr == 0 {
		a := i.alloc(tVariable, c, d, 0)
		if i.er != errNone {
			return 0
		}
		return loadNum(i.mem[a:])
	}
	return loadNum(i.mem[r.addr:])
}

// setVar writes a scalar, creating heap scalars on first set.
func (i *Interpreter) setVar(c, d byte, v Number) {
	if c >= 'A' && c <= 'Z' && d == 0 {
		i.vars[c-'A'] = v
		return
	}
	if c == '@' {
		switch d {
		case 'S':
			i.ert = v
			return
		case 'I':
			i.id = int(v)
			return
		case 'O':
			i.od = int(v)
			return
		case 'C':
			i.outChar(byte(v))
			return
		case 'R':
			i.rd = uint16(v)
			return
		case 'X':
			if i.dsp != nil {
				i.dsp.col = int(v) % i.dsp.cols
			}
			return
		case 'Y':
			if i.dsp != nil {
				i.dsp.row = int(v) % i.dsp.rows
			}
			return
		}
	}
	r := i.find(tVariable, c, d)
	a := r.addr
	if a == 0 {
		a = i.alloc(tVariable, c, d, 0)
		if i.er != errNone {
			return
		}
	}
	storeNum(i.mem[a:], v)
}

func (i *Interpreter) createArray(c, d byte, n Addr) {
	i.alloc(tArrayvar, c, d, n)
}

// getArray reads element idx (1 based) of an array. @ aliases the free
// memory between top and himem, @E the EEPROM and @D the display buffer.
func (i *Interpreter) getArray(c, d byte, idx Addr) Number {
	if c == '@' {
		switch d {
		case 'E':
			h := i.romLength() / numSize
			if idx < 1 || idx > h {
				i.error(errRange)
				return 0
			}
			return i.eLoadNum(i.romLength() - numSize*idx)
		case 'D':
			if i.dsp == nil {
				return 0
			}
			return i.dsp.get(int(idx))
		case 0:
			h := (i.himem - i.top) / numSize
			if idx < 1 || idx > h {
				i.error(errRange)
				return 0
			}
			return loadNum(i.mem[i.himem-numSize*idx+1:])
		}
	}
	r := i.find(tArrayvar, c, d)
	if r.addr == 0 {
		i.error(errVariable)
		return 0
	}
	if idx < 1 || idx > r.length/numSize {
		i.error(errRange)
		return 0
	}
	return loadNum(i.mem[r.addr+(idx-1)*numSize:])
}

// setArray writes element idx (1 based) of an array.
func (i *Interpreter) setArray(c, d byte, idx Addr, v Number) {
	if c == '@' {
		switch d {
		case 'E':
			h := i.romLength() / numSize
			if idx < 1 || idx > h {
				i.error(errRange)
				return
			}
			i.eStoreNum(i.romLength()-numSize*idx, v)
			return
		case 'D':
			if i.dsp != nil {
				i.dsp.set(int(idx), v)
			}
			return
		case 0:
			h := (i.himem - i.top) / numSize
			if idx < 1 || idx > h {
				i.error(errRange)
				return
			}
			storeNum(i.mem[i.himem-numSize*idx+1:], v)
			return
		}
	}
	r := i.find(tArrayvar, c, d)
	if r.addr == 0 {
		i.error(errVariable)
		return
	}
	if idx < 1 || idx > r.length/numSize {
		i.error(errRange)
		return
	}
	storeNum(i.mem[r.addr+(idx-1)*numSize:], v)
}

func (i *Interpreter) createString(c, d byte, n Addr) {
	i.alloc(tStringvar, c, d, n+strIndexSize)
}

// getString returns the string payload starting at the 1 based byte index
// b, extending to the string's capacity. The input line buffer is
// addressable as the string @.
func (i *Interpreter) getString(c, d byte, b Addr) []byte {
	if c == '@' {
		if int(b) >= len(i.ibuf) {
			i.error(errRange)
			return nil
		}
		return i.ibuf[b:]
	}
	r := i.find(tStringvar, c, d)
	if r.addr == 0 {
		i.error(errVariable)
		return nil
	}
	if b < 1 || b > r.length-strIndexSize {
		i.error(errRange)
		return nil
	}
	a := r.addr + b - 1 + strIndexSize
	return i.mem[a : r.addr+r.length]
}

// stringDim returns the capacity of a string in bytes.
func (i *Interpreter) stringDim(c, d byte) Number {
	if c == '@' {
		return bufSize - 1
	}
	return Number(i.lengthOf(tStringvar, c, d)) - strIndexSize
}

// lenString returns the current length of a string.
func (i *Interpreter) lenString(c, d byte) Number {
	if c == '@' {
		return Number(i.ibuf[0])
	}
	r := i.find(tStringvar, c, d)
	if r.addr == 0 {
		return 0
	}
	return Number(loadAddr(i.mem[r.addr:]))
}

// setStringLength updates the current-length prefix of a string; the new
// length is checked against the capacity.
func (i *Interpreter) setStringLength(c, d byte, l Addr) {
	if c == '@' {
		i.ibuf[0] = byte(l)
		return
	}
	r := i.find(tStringvar, c, d)
	if r.addr == 0 {
		i.error(errVariable)
		return
	}
	if l <= r.length-strIndexSize {
		storeAddr(i.mem[r.addr:], l)
	} else {
		i.error(errRange)
	}
}
