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

// EEPROM image format: byte 0 is a status byte (0 program stored,
// 1 autorun, 255 clear), bytes 1..addrSize hold the program length, the
// tokenized program follows. SAVE "!" and LOAD "!" use this image; on
// startup a status byte of 1 runs the stored program straight from the
// block device.

func (i *Interpreter) romLength() Addr {
	if i.rom == nil {
		return 0
	}
	return i.rom.Length()
}

func (i *Interpreter) eRead(a Addr) byte {
	if i.rom == nil {
		return 0
	}
	return i.rom.Read(a)
}

func (i *Interpreter) eUpdate(a Addr, b byte) {
	if i.rom == nil {
		return
	}
	i.rom.Update(a, b)
}

func (i *Interpreter) eLoadAddr(a Addr) Addr {
	return Addr(i.eRead(a)) | Addr(i.eRead(a+1))<<8
}

func (i *Interpreter) eStoreAddr(a, v Addr) {
	i.eUpdate(a, byte(v))
	i.eUpdate(a+1, byte(v>>8))
}

func (i *Interpreter) eLoadNum(a Addr) Number {
	var b [numSize]byte
	for j := Addr(0); j < numSize; j++ {
		b[j] = i.eRead(a + j)
	}
	return loadNum(b[:])
}

func (i *Interpreter) eStoreNum(a Addr, v Number) {
	var b [numSize]byte
	storeNum(b[:], v)
	for j := Addr(0); j < numSize; j++ {
		i.eUpdate(a+j, b[j])
	}
}

// eSave writes the tokenized program to the block device.
func (i *Interpreter) eSave() {
	if i.romLength() == 0 {
		i.error(errEeprom)
		return
	}
	if i.top+eHeaderSize >= i.romLength() {
		i.error(errOutOfMemory)
		i.er = errNone // the statement is recoverable
		return
	}
	i.eUpdate(0, 0) // a blank device reads 255, 0 marks a stored program
	i.eStoreAddr(1, i.top)
	for a := Addr(0); a < i.top; a++ {
		i.eUpdate(a+eHeaderSize, i.mem[a])
	}
	i.eUpdate(i.top+eHeaderSize, 0)
}

// eLoad replaces the program with the image stored on the block device.
func (i *Interpreter) eLoad() {
	if i.romLength() == 0 {
		i.error(errEeprom)
		return
	}
	s := i.eRead(0)
	if s != 0 && s != 1 {
		// no valid program data is stored
		i.error(errEeprom)
		return
	}
	i.top = i.eLoadAddr(1)
	for a := Addr(0); a < i.top; a++ {
		i.mem[a] = i.eRead(a + eHeaderSize)
	}
}
