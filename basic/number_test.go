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

//go:build !float

package basic

import "testing"

// behaviors specific to the integer build

func TestIntegerDivision(t *testing.T) {
	check(t, "PRINT 7/2; 7%2\n", "31\n")
}

func TestIntegerSqrApprox(t *testing.T) {
	check(t, "PRINT SQR(10)\n", "3\n")
}

func TestNumberPacking(t *testing.T) {
	var b [numSize]byte
	for _, v := range []Number{0, 1, -1, 123456, -123456, maxNum} {
		storeNum(b[:], v)
		if got := loadNum(b[:]); got != v {
			t.Errorf("pack %d: got %d", v, got)
		}
	}
	// little endian, low byte first
	storeNum(b[:], 0x0102)
	if b[0] != 2 || b[1] != 1 {
		t.Errorf("not little endian: % x", b)
	}
}

func TestParseNumber(t *testing.T) {
	n, nd := parseNumber([]byte("123X"))
	if n != 123 || nd != 3 {
		t.Errorf("got %d, %d", n, nd)
	}
	n, nd = parseNumber([]byte("X"))
	if n != 0 || nd != 0 {
		t.Errorf("got %d, %d", n, nd)
	}
}
