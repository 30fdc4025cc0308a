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

import "encoding/binary"

// arena layout: [0,top) tokenized program, (himem,memsize] packed heap,
// [top,himem] free. All multi byte values are stored low byte first.

func storeAddr(b []byte, v Addr) {
	binary.LittleEndian.PutUint16(b, v)
}

func loadAddr(b []byte) Addr {
	return binary.LittleEndian.Uint16(b)
}

// nomemory reports whether b more bytes would make the program collide
// with the heap.
func (i *Interpreter) nomemory(b Addr) bool {
	return i.top >= i.himem-b
}

// memRead reads one program byte. During an EEPROM autorun the program is
// not in the arena and reads go through the block device instead.
func (i *Interpreter) memRead(a Addr) byte {
	if i.st != sERun {
		return i.mem[a]
	}
	return i.rom.Read(a + eHeaderSize)
}

// storeToken appends the current token at top, checking free memory before
// changing anything.
func (i *Interpreter) storeToken() {
	switch i.tok {
	case tLinenumber:
		if i.nomemory(addrSize + 1) {
			break
		}
		i.mem[i.top] = byte(i.tok)
		i.top++
		storeAddr(i.mem[i.top:], Addr(i.x))
		i.top += addrSize
		return
	case tNumber:
		if i.nomemory(numSize + 1) {
			break
		}
		i.mem[i.top] = byte(i.tok)
		i.top++
		storeNum(i.mem[i.top:], i.x)
		i.top += numSize
		return
	case tArrayvar, tVariable, tStringvar:
		if i.nomemory(3) {
			break
		}
		i.mem[i.top] = byte(i.tok)
		i.mem[i.top+1] = i.xc
		i.mem[i.top+2] = i.yc
		i.top += 3
		return
	case tString:
		n := Addr(i.x)
		if i.nomemory(n + 2) {
			break
		}
		i.mem[i.top] = byte(i.tok)
		i.mem[i.top+1] = byte(n)
		i.top += 2
		copy(i.mem[i.top:], i.ir[:n])
		i.top += n
		return
	default:
		if i.nomemory(1) {
			break
		}
		i.mem[i.top] = byte(i.tok)
		i.top++
		return
	}
	i.error(errOutOfMemory)
}

// getToken decodes the token at here and advances the cursor. Past the end
// of the program it keeps returning EOL; the program does not need a
// trailing EOL byte.
func (i *Interpreter) getToken() {
	if i.here >= i.top {
		i.tok = tEOL
		return
	}
	i.tok = int8(i.memRead(i.here))
	i.here++
	switch i.tok {
	case tLinenumber:
		if i.st != sERun {
			i.x = Number(loadAddr(i.mem[i.here:]))
		} else {
			i.x = Number(i.eLoadAddr(i.here + eHeaderSize))
		}
		i.here += addrSize
	case tNumber:
		if i.st != sERun {
			i.x = loadNum(i.mem[i.here:])
		} else {
			i.x = i.eLoadNum(i.here + eHeaderSize)
		}
		i.here += numSize
	case tArrayvar, tVariable, tStringvar:
		i.xc = i.memRead(i.here)
		i.yc = i.memRead(i.here + 1)
		i.here += 2
	case tString:
		n := Addr(i.memRead(i.here))
		i.here++
		i.x = Number(n)
		if i.st != sERun {
			i.ir = i.mem[i.here : i.here+n]
		} else {
			// running from the block device, the bytes cannot be
			// sliced; copy them out
			b := make([]byte, n)
			for j := Addr(0); j < n; j++ {
				b[j] = i.memRead(i.here + j)
			}
			i.ir = b
		}
		i.here += n
	}
}

// moveBlock moves the l bytes beginning at b to destination d.
func (i *Interpreter) moveBlock(b, l, d Addr) {
	if d+l > i.himem {
		i.error(errOutOfMemory)
		return
	}
	if l < 1 {
		return
	}
	if b < d {
		for j := l; j > 0; j-- {
			i.mem[d+j-1] = i.mem[b+j-1]
		}
	} else {
		for j := Addr(0); j < l; j++ {
			i.mem[d+j] = i.mem[b+j]
		}
	}
}

func (i *Interpreter) zeroBlock(b, l Addr) {
	if b+l > i.himem {
		i.error(errOutOfMemory)
		return
	}
	for j := Addr(0); j <= l; j++ {
		i.mem[b+j] = 0
	}
}
