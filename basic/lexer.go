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

// The tokenizer. nextToken delivers tokens into tok with payloads in x,
// xc/yc and ir. In interactive mode it scans the input line buffer at bi;
// in run mode it decodes the tokenized program at here. The tokenized
// program is both the stored form and the runtime instruction stream, so
// the same token tags come out of both paths.

func (i *Interpreter) whitespaces() {
	for i.ibuf[i.bi] == ' ' || i.ibuf[i.bi] == '\t' {
		i.bi++
	}
}

func (i *Interpreter) nextToken() {
	if i.st == sRun || i.st == sERun {
		i.getToken()
		return
	}

	// the first buffer byte holds the line length
	if i.bi == 0 {
		i.bi = 1
	}
	i.whitespaces()

	c := i.ibuf[i.bi]

	if c == 0 {
		i.tok = tEOL
		return
	}

	// unsigned numbers, value delivered in x
	if c >= '0' && c <= '9' {
		n, nd := parseNumber(i.ibuf[i.bi:])
		i.bi += nd
		i.x = n
		i.tok = tNumber
		return
	}

	// strings between double quotes; a missing closing quote is tolerated
	// at the end of the line
	if c == '"' {
		i.bi++
		start := i.bi
		for i.ibuf[i.bi] != '"' && i.ibuf[i.bi] != 0 {
			i.bi++
		}
		i.ir = i.ibuf[start:i.bi]
		i.x = Number(i.bi - start)
		if i.ibuf[i.bi] == '"' {
			i.bi++
		}
		i.tok = tString
		return
	}

	// single character operators are their own token
	switch c {
	case '+', '-', '*', '/', '%', '\\', ':', ',', '(', ')':
		i.tok = int8(c)
		i.bi++
		return
	}

	// relations; >=, <=, =>, =< and <> combine into one token
	switch c {
	case '=':
		i.bi++
		i.whitespaces()
		switch i.ibuf[i.bi] {
		case '>':
			i.tok = tGE
			i.bi++
		case '<':
			i.tok = tLE
			i.bi++
		default:
			i.tok = '='
		}
		return
	case '>':
		i.bi++
		i.whitespaces()
		if i.ibuf[i.bi] == '=' {
			i.tok = tGE
			i.bi++
		} else {
			i.tok = '>'
		}
		return
	case '<':
		i.bi++
		i.whitespaces()
		switch i.ibuf[i.bi] {
		case '=':
			i.tok = tLE
			i.bi++
		case '>':
			i.tok = tNE
			i.bi++
		default:
			i.tok = '<'
		}
		return
	}

	// isolate a word, uppercasing on the fly. @ counts as a letter to make
	// the special @ names possible.
	n := 0
	for {
		c = i.ibuf[i.bi+n]
		if c >= 'a' && c <= 'z' {
			i.ibuf[i.bi+n] = c - 32
			n++
		} else if c >= '@' && c <= 'Z' {
			n++
		} else {
			break
		}
	}

	if n > 0 {
		// greedy match against the keyword table, in token value order
		if i.matchKeyword() {
			return
		}
		// a variable name is a single letter, optionally followed by a
		// digit or $, or @ plus one more character
		if n == 1 || (n == 2 && i.ibuf[i.bi] == '@') {
			i.tok = tVariable
			i.xc = i.ibuf[i.bi]
			i.yc = 0
			i.bi++
			if i.ibuf[i.bi] >= '0' && i.ibuf[i.bi] <= '9' {
				i.yc = i.ibuf[i.bi]
				i.bi++
			}
			if i.xc == '@' && n == 2 {
				i.yc = i.ibuf[i.bi]
				i.bi++
			}
			if i.ibuf[i.bi] == '$' {
				i.tok = tStringvar
				i.bi++
			}
			i.whitespaces()
			if i.tok == tVariable && i.ibuf[i.bi] == '(' {
				i.tok = tArrayvar
			}
			return
		}
	}

	// anything else is passed through as a single character
	i.tok = int8(i.ibuf[i.bi])
	i.bi++
}

// matchKeyword tries the keyword table at the current buffer position. On
// a match the buffer advances past the keyword. A keyword immediately
// followed by another letter is not an identifier in this language - it
// scans as Unknown.
func (i *Interpreter) matchKeyword() bool {
	for t := baseKeyword; ; t++ {
		n := int(t) - int(baseKeyword)
		if n >= len(keywords) {
			return false
		}
		kw := keywords[n]
		j := 0
		for j < len(kw) && kw[j] == i.ibuf[i.bi+j] {
			j++
		}
		if j < len(kw) {
			continue
		}
		c := i.ibuf[i.bi+j]
		i.bi += j
		if c >= 'A' && c <= 'Z' {
			i.tok = tUnknown
		} else {
			i.tok = t
		}
		return true
	}
}
