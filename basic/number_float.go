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

//go:build float

package basic

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Number is the numeric type of the interpreter. The float build trades
// range for fractions; integers are exact up to 2^24.
type Number float32

const (
	numSize = 4
	maxNum  = Number(16777216)
)

func storeNum(b []byte, v Number) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
}

func loadNum(b []byte) Number {
	return Number(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

// parseNumber reads a decimal literal with an optional fraction and
// exponent from b and returns its value and the number of bytes consumed.
func parseNumber(b []byte) (Number, int) {
	var nd int
	for nd < len(b) {
		c := b[nd]
		if (c >= '0' && c <= '9') || c == '.' {
			nd++
			continue
		}
		if (c == 'E' || c == 'e') && nd > 0 {
			j := nd + 1
			if j < len(b) && (b[j] == '-' || b[j] == '+') {
				j++
			}
			if j < len(b) && b[j] >= '0' && b[j] <= '9' {
				for j < len(b) && b[j] >= '0' && b[j] <= '9' {
					j++
				}
				nd = j
			}
		}
		break
	}
	if nd == 0 {
		return 0, 0
	}
	v, err := strconv.ParseFloat(string(b[:nd]), 32)
	if err != nil {
		// malformed literal: take the leading digit run so the scanner
		// still makes progress
		var n Number
		j := 0
		for j < nd && b[j] >= '0' && b[j] <= '9' {
			n = n*10 + Number(b[j]-'0')
			j++
		}
		if j == 0 {
			j = 1
		}
		return n, j
	}
	return Number(v), nd
}

func formatNumber(dst []byte, v Number) []byte {
	// integer valued floats print as integers
	f := Number(math.Floor(float64(v)))
	if f == v && v > -maxNum && v < maxNum {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}

func numMod(x, y Number) Number {
	return Number(int64(x) % int64(y))
}

func numSqrt(r Number) Number {
	return Number(math.Sqrt(float64(r)))
}
