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
	"strings"
	"testing"
)

func TestUsrConstants(t *testing.T) {
	check(t, "PRINT USR(0,0); USR(0,2); USR(0,4)\n", "422\n")
	check(t, "PRINT USR(0,7); USR(0,8); USR(0,9)\n", "4415\n")
	// memsize+1
	check(t, "PRINT USR(0,5)\n", "8192\n")
	// unused selectors return 0
	check(t, "PRINT USR(0,100); USR(9,9)\n", "00\n")
}

func TestUsrLiveState(t *testing.T) {
	// one stored line: line number record, variable, '=', number
	i, _ := runScript(t, "10 A=1\n")
	want := Addr(lnLength + 3 + 1 + 1 + numSize)
	if i.top != want {
		t.Fatalf("top=%d, want %d", i.top, want)
	}
	check(t, "10 A=1\nPRINT USR(1,0)\n", "12\n")
	check(t, "PRINT USR(1,3)\n", "0\n")
}

func TestUsrDeviceState(t *testing.T) {
	check(t, "PRINT USR(2,0); USR(2,2)\n", "11\n")
}

func TestUsrStoreLine(t *testing.T) {
	// the store-line primitive behind USR(8, n): the input buffer becomes
	// program line n
	i := newTest(t)
	setLine(i, "PRINT 99")
	i.x = 10
	i.bi = 1
	i.ibuf[i.ibuf[0]+1] = 0
	i.storeLine()
	if i.er != errNone {
		t.Fatalf("store error %d", i.er)
	}
	checkSorted(t, i, 10)
}

func TestUsrHeapAccess(t *testing.T) {
	// USR(3..5) look up heap objects named in the input buffer
	i := newTest(t)
	i.createString('S', 0, 10)
	tv := tStringvar
	i.ibuf[1] = byte(tv)
	i.ibuf[2] = 'S'
	i.ibuf[3] = 0
	i.push(5) // fn: object length
	i.push(0) // arg
	i.xUsr()
	if got := i.pop(); got != 10+strIndexSize {
		t.Errorf("USR(5) length=%v, want %v", got, 10+strIndexSize)
	}
}

func TestDumpSmoke(t *testing.T) {
	_, out := runScript(t, "10 A=1\nDUMP 0, 16\n")
	got := progOutput(out)
	if !strings.Contains(got, "top:") || !strings.Contains(got, "himem:") {
		t.Errorf("DUMP output %q", got)
	}
}
