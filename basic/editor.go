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

// The program editor. A stored line is a line number record followed by
// the tokenized body; lines are kept sorted by strictly increasing line
// number. Editing is done in place with block moves inside the arena.

const lnLength = addrSize + 1

// firstLine positions the cursor on the first program line.
func (i *Interpreter) firstLine() {
	if i.top == 0 {
		i.x = 0
		return
	}
	i.here = 0
	i.getToken()
}

// nextLine advances to the next line number record. At the end of the
// program x is set to 0.
func (i *Interpreter) nextLine() {
	for i.here < i.top {
		i.getToken()
		if i.tok == tLinenumber {
			return
		}
		if i.here >= i.top {
			i.here = i.top
			i.x = 0
			return
		}
	}
}

// findLine positions the cursor right after the line number record of line
// l, raising Line when no such line exists.
func (i *Interpreter) findLine(l Addr) {
	i.here = 0
	for i.here < i.top {
		i.getToken()
		if i.tok == tLinenumber && Addr(i.x) == l {
			return
		}
	}
	i.error(errLine)
}

// lineOf returns the BASIC line number containing the arena offset h.
func (i *Interpreter) lineOf(h Addr) Addr {
	var l, l1 Addr

	here := i.here
	i.here = 0
	i.getToken()
	for i.here < i.top {
		if i.tok == tLinenumber {
			l1 = l
			l = Addr(i.x)
		}
		if i.here >= h {
			break
		}
		i.getToken()
	}
	i.here = here
	if i.tok == tLinenumber {
		return l1
	}
	return l
}

// storeLine stores the line whose number is in x and whose body follows in
// the token stream: the line is first appended at top, then an existing
// line with the same number is replaced (or deleted, when the new body is
// empty), or the line is block-moved to its sorted position.
func (i *Interpreter) storeLine() {
	// zero is an illegal line number
	if i.x == 0 {
		i.error(errLine)
		return
	}
	n := Addr(i.x)

	// stage 1: append the new line at the end of the program
	start := i.top
	i.tok = tLinenumber
	for {
		i.storeToken()
		if i.er != errNone {
			i.top = start
			i.here = 0
			return
		}
		i.nextToken()
		if i.tok == tEOL {
			break
		}
	}
	linelength := i.top - start

	// stage 2: a bare line number deletes the line
	if linelength == lnLength {
		i.top -= lnLength
		i.findLine(n)
		if i.er != errNone {
			return
		}
		at := i.here - lnLength
		i.nextLine()
		if i.x != 0 {
			next := i.here - lnLength
			i.moveBlock(next, i.top-next, at)
			i.top -= next - at
		} else {
			i.top = at
		}
		return
	}

	// stage 3: find the line to replace or the insertion point among the
	// lines stored before the append
	var at, olen Addr
	found, insert := false, false
	i.here = 0
	for i.here < start {
		ls := i.here
		i.getToken() // a line number record
		ln := Addr(i.x)
		if ln == n || ln > n {
			at = ls
			if ln == n {
				found = true
			} else {
				insert = true
			}
			break
		}
		i.skipLine(start)
	}

	switch {
	case found:
		// measure the old line
		i.skipLine(start)
		olen = i.here - at
		switch {
		case olen == linelength:
			i.moveBlock(start, linelength, at)
			i.top -= linelength
		case linelength > olen:
			// grow: shift everything after the old line (the appended
			// line included) right, then drop the new line in place
			diff := linelength - olen
			i.moveBlock(at+olen, i.top-(at+olen), at+olen+diff)
			if i.er != errNone {
				return
			}
			i.top += diff
			i.moveBlock(i.top-linelength, linelength, at)
			i.top -= linelength
		default:
			// shrink: drop the new line in place, then close the gap
			i.moveBlock(i.top-linelength, linelength, at)
			i.top -= linelength
			i.moveBlock(at+olen, i.top-(at+olen), at+linelength)
			i.top -= olen - linelength
		}
	case insert:
		// shift the tail (appended line included) right and move the new
		// line down into the hole
		i.moveBlock(at, i.top-at, at+linelength)
		if i.er != errNone {
			return
		}
		i.moveBlock(i.top, linelength, at)
	}
	// neither found nor insert: the new line sorts last and already sits
	// in place
}

// skipLine advances the cursor to the start of the next line, stopping at
// limit.
func (i *Interpreter) skipLine(limit Addr) {
	for i.here < limit {
		save := i.here
		i.getToken()
		if i.tok == tLinenumber {
			i.here = save
			return
		}
	}
	i.here = limit
}
