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

import (
	"encoding/binary"
	"strconv"
)

// Number is the numeric type of the interpreter: a fixed width integer by
// default, a float when built with the float tag.
type Number int32

const (
	numSize = 4
	maxNum  = Number(1<<31 - 1)
)

// storeNum packs v into b, low byte first.
func storeNum(b []byte, v Number) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func loadNum(b []byte) Number {
	return Number(int32(binary.LittleEndian.Uint32(b)))
}

// parseNumber reads an unsigned decimal literal from b and returns its
// value and the number of bytes consumed.
func parseNumber(b []byte) (Number, int) {
	var n Number
	var nd int
	for nd < len(b) && b[nd] >= '0' && b[nd] <= '9' {
		n = n*10 + Number(b[nd]-'0')
		nd++
		if nd == sbufSize {
			break
		}
	}
	return n, nd
}

func formatNumber(dst []byte, v Number) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

func numMod(x, y Number) Number {
	return x % y
}

// numSqrt approximates the integer square root with a few Newton rounds
// seeded from the bit length.
func numSqrt(r Number) Number {
	if r <= 0 {
		return 0
	}
	var l Number
	for t := r; t > 0; t >>= 1 {
		l++
	}
	t := Number(1) << uint(l/2)
	for {
		l = t
		t = (t + r/t) / 2
		d := t - l
		if d < 0 {
			d = -d
		}
		if d <= 1 {
			break
		}
	}
	return t
}
