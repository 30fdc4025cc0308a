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

// statement processes tokens until the end of the line. A statement
// function must either leave a fresh token in tok to feed the loop, or
// return to drop the rest of the line. Between statements the interpreter
// polls the input device for the break character; this is the only
// preemption point.
func (i *Interpreter) statement() {
	for i.tok != tEOL {
		switch i.tok {
		case tLinenumber:
			i.nextToken()

		// Palo Alto BASIC language set plus BREAK
		case tPrint:
			i.xPrint()
		case tLet:
			i.nextToken()
			if i.tok != tArrayvar && i.tok != tStringvar && i.tok != tVariable {
				i.error(errUnknown)
				break
			}
			i.assignment()
		case tStringvar, tArrayvar, tVariable:
			i.assignment()
		case tInput:
			i.xInput()
		case tReturn:
			i.xReturn()
		case tGosub, tGoto:
			i.xGoto()
		case tIf:
			i.xIf()
		case tFor:
			i.xFor()
		case tNext:
			i.xNext()
		case tBreak:
			i.xBreak()
		case tStop, tEnd:
			// new input is needed
			i.ibuf[0] = 0
			i.st = sInt
			return
		case tList:
			i.xList()
		case tNew:
			i.xNew()
			return
		case tCont, tRun:
			i.xRun()
			return
		case tRem:
			i.xRem()

		// Apple 1 language set
		case tDim:
			i.xDim()
		case tClr:
			i.xClr()
		case tTab:
			i.xTab()
		case tPoke:
			i.xPoke()

		// interpreter extensions
		case tDump:
			i.xDump()
		case tSave:
			i.xSave()
		case tLoad:
			// load replaces the input buffer contents, the rest of the
			// line cannot be trusted
			i.xLoad()
			return
		case tGet:
			i.xGet()
		case tPut:
			i.xPut()
		case tSet:
			i.xSet()
		case tCls:
			i.outChar(12)
			i.nextToken()

		// host I/O
		case tDwrite:
			i.xDwrite()
		case tAwrite:
			i.xAwrite()
		case tPinm:
			i.xPinm()
		case tDelay:
			i.xDelay()
		case tTone:
			i.xTone()

		// filesystem
		case tCatalog:
			i.xCatalog()
		case tDelete:
			i.xDelete()
		case tOpen:
			i.xOpen()
		case tClose:
			i.xClose()

		// low level
		case tCall:
			i.xCall()

		case tUnknown:
			i.error(errUnknown)
			return
		case ':':
			i.nextToken()
		default:
			// tolerant: stray tokens are skipped
			i.nextToken()
		}
		// the break character aborts into interactive state
		if i.checkCh() == breakChar {
			i.inChar()
			i.st = sInt
			return
		}
		if i.er != errNone {
			return
		}
	}
}

// xPrint prints a comma or semicolon separated list of string and numeric
// expressions. # sets the numeric field width, & routes the output to
// another device until the end of the statement, a trailing ; suppresses
// the newline.
func (i *Interpreter) xPrint() {
	semicolon := false
	oldod := i.od
	modifier := int8(0)

	i.form = 0
	i.nextToken()
	for {
		if i.termSymbol() {
			if !semicolon {
				i.outCR()
			}
			i.nextToken()
			i.od = oldod
			return
		}
		semicolon = false

		if i.stringValue() {
			i.outS(i.ir2[:i.pop()])
			i.nextToken()
		} else if i.er != errNone {
			return
		} else if i.tok == '#' || i.tok == '&' {
			modifier = i.tok
			i.nextToken()
			i.expression()
			if i.er != errNone {
				return
			}
			switch modifier {
			case '#':
				i.form = i.pop()
			case '&':
				i.od = int(i.pop())
			}
			continue
		} else if i.tok != ',' && i.tok != ';' {
			i.expression()
			if i.er != errNone {
				return
			}
			i.outNumber(i.pop())
		}

		if i.tok == ',' {
			// a comma emits a space unless a width or device modifier was
			// just consumed
			if modifier == 0 {
				i.outSpc()
			}
			i.nextToken()
		}
		if i.tok == ';' {
			semicolon = true
			i.nextToken()
		}
		modifier = 0
	}
}

// leftHandSide parses an assignment target: a scalar, an array element or
// a string position. For strings, pure reports a subscriptless target
// whose assignment resets the string length.
func (i *Interpreter) leftHandSide() (idx Addr, pure bool) {
	idx, pure = 1, true
	switch i.tok {
	case tVariable:
		i.nextToken()
	case tArrayvar:
		i.nextToken()
		args := i.parseSubscripts()
		i.nextToken()
		if i.er != errNone {
			return
		}
		if args != 1 {
			i.error(errArgs)
			return
		}
		idx = Addr(i.pop())
	case tStringvar:
		i.nextToken()
		args := i.parseSubscripts()
		if i.er != errNone {
			return
		}
		switch args {
		case 0:
			idx, pure = 1, true
		case 1:
			pure = false
			i.nextToken()
			idx = Addr(i.pop())
		default:
			i.error(errArgs)
			return
		}
	default:
		i.error(errUnknown)
	}
	return idx, pure
}

// assignNumber stores the number on top of the stack into the left hand
// side parsed by leftHandSide. A number assigned into a string sets one
// byte and adjusts the length.
func (i *Interpreter) assignNumber(t int8, c, d byte, idx Addr, pure bool) {
	switch t {
	case tVariable:
		i.setVar(c, d, i.pop())
	case tArrayvar:
		i.setArray(c, d, idx, i.pop())
	case tStringvar:
		s := i.getString(c, d, idx)
		if i.er != errNone {
			return
		}
		s[0] = byte(i.pop())
		if pure {
			i.setStringLength(c, d, 1)
		} else if i.lenString(c, d) < Number(idx) && Number(idx) <= i.stringDim(c, d) {
			i.setStringLength(c, d, idx)
		}
	}
}

// assignment implements LET. For a string left hand side the right hand
// side is first tried as a string value and copied into the target with an
// overlap safe direction; otherwise it is evaluated as a number.
func (i *Interpreter) assignment() {
	t := i.tok
	c, d := i.xc, i.yc

	idx, pure := i.leftHandSide()
	if i.er != errNone {
		return
	}
	if i.tok != '=' {
		i.error(errUnknown)
		return
	}
	i.nextToken()

	switch t {
	case tVariable, tArrayvar:
		i.expression()
		if i.er != errNone {
			return
		}
		i.assignNumber(t, c, d, idx, pure)
	case tStringvar:
		s := i.stringValue()
		if i.er != errNone {
			return
		}
		if !s {
			i.expression()
			if i.er != errNone {
				return
			}
			i.assignNumber(t, c, d, idx, pure)
			break
		}
		lensource := i.pop()
		dst := i.getString(c, d, idx)
		if i.er != errNone {
			return
		}
		lendest := i.lenString(c, d)

		// does the source fit into the destination
		if Number(idx)+lensource-1 > i.stringDim(c, d) {
			i.error(errRange)
			return
		}

		// source and destination may overlap inside the same string; copy
		// forward or backward so bytes are never clobbered before read
		if i.x > Number(idx) {
			for j := Number(0); j < lensource; j++ {
				dst[j] = i.ir2[j]
			}
		} else {
			for j := lensource - 1; j >= 0; j-- {
				dst[j] = i.ir2[j]
			}
		}

		newlength := Number(idx) + lensource - 1
		if !pure && newlength < lendest {
			newlength = lendest
		}
		i.setStringLength(c, d, Addr(newlength))
	}
	i.nextToken()
}

// xInput reads one value per target from the current input device,
// prompting with "? ". The break character aborts into interactive state.
func (i *Interpreter) xInput() {
	oldid := -1

	i.nextToken()
	if i.tok == '&' {
		i.nextToken()
		i.expression()
		if i.er != errNone {
			return
		}
		oldid = i.id
		i.id = int(i.pop())
		if i.tok != ',' {
			i.error(errUnknown)
			return
		}
		i.nextToken()
	}

	for {
		// an optional prompt string
		if i.tok == tString && i.id != iFile {
			i.outS(i.ir[:i.x])
			i.nextToken()
			if i.tok != ',' && i.tok != ';' {
				i.error(errUnknown)
				return
			}
			i.nextToken()
		}

		switch i.tok {
		case tVariable:
			c, d := i.xc, i.yc
			if i.id != iFile {
				i.outSC("? ")
			}
			n, brk := i.inNumber()
			if brk == breakChar {
				i.setVar(c, d, 0)
				i.st = sInt
				i.nextToken()
				if oldid != -1 {
					i.id = oldid
				}
				return
			}
			i.setVar(c, d, n)
		case tArrayvar:
			c, d := i.xc, i.yc
			i.nextToken()
			args := i.parseSubscripts()
			if i.er != errNone {
				return
			}
			if args != 1 {
				i.error(errArgs)
				return
			}
			idx := Addr(i.pop())
			if i.id != iFile {
				i.outSC("? ")
			}
			n, brk := i.inNumber()
			if brk == breakChar {
				i.setArray(c, d, idx, 0)
				i.st = sInt
				i.nextToken()
				if oldid != -1 {
					i.id = oldid
				}
				return
			}
			i.setArray(c, d, idx, n)
		case tStringvar:
			c, d := i.xc, i.yc
			s := i.getString(c, d, 1)
			if i.er != errNone {
				return
			}
			if i.id != iFile {
				i.outSC("? ")
			}
			var lbuf [bufSize]byte
			i.readLine(lbuf[:])
			n := int(lbuf[0])
			if max := int(i.stringDim(c, d)); n > max {
				n = max
			}
			copy(s, lbuf[1:1+n])
			i.setStringLength(c, d, Addr(n))
		}

		i.nextToken()
		if i.tok != ',' && i.tok != ';' {
			break
		}
		i.nextToken()
	}

	if oldid != -1 {
		i.id = oldid
	}
}

// xGoto implements both GOTO and GOSUB: the target line is an expression.
func (i *Interpreter) xGoto() {
	t := i.tok

	i.nextToken()
	i.expression()
	if i.er != errNone {
		return
	}
	if t == tGosub {
		i.pushGosub()
	}
	if i.er != errNone {
		return
	}
	i.findLine(Addr(i.pop()))
	if i.er != errNone {
		return
	}
	if i.st == sInt {
		i.st = sRun
	}
	i.nextToken()
}

func (i *Interpreter) xReturn() {
	i.popGosub()
	if i.er != errNone {
		return
	}
	i.nextToken()
}

// xIf skips to the end of the line on a false condition. THEN is optional;
// THEN followed by a number is a GOTO.
func (i *Interpreter) xIf() {
	i.nextToken()
	i.expression()
	if i.er != errNone {
		return
	}
	if i.pop() == 0 {
		for i.tok != tLinenumber && i.tok != tEOL && i.here <= i.top {
			i.nextToken()
		}
	}
	if i.tok == tThen {
		i.nextToken()
		if i.tok == tNumber {
			i.findLine(Addr(i.x))
			if i.er != errNone {
				return
			}
		}
	}
}

// findNext skips forward to the NEXT matching the innermost FOR, counting
// nested FOR tokens on the way.
func (i *Interpreter) findNext() {
	for {
		if i.tok == tNext {
			if i.fnc == 0 {
				return
			}
			i.fnc--
		}
		if i.tok == tFor {
			i.fnc++
		}
		if i.here >= i.top {
			i.error(errFor)
			return
		}
		i.nextToken()
	}
}

// xFor stores the loop variable, limit and step on the FOR stack. When the
// condition fails from the start the body is skipped to the matching NEXT.
// STEP 0 is legal and loops forever.
func (i *Interpreter) xFor() {
	i.nextToken()
	if i.tok != tVariable {
		i.error(errUnknown)
		return
	}
	c, d := i.xc, i.yc

	i.nextToken()
	if i.tok != '=' {
		i.error(errUnknown)
		return
	}
	i.nextToken()
	i.expression()
	if i.er != errNone {
		return
	}
	i.setVar(c, d, i.pop())

	if i.tok != tTo {
		i.error(errUnknown)
		return
	}
	i.nextToken()
	i.expression()
	if i.er != errNone {
		return
	}

	step := Number(1)
	if i.tok == tStep {
		i.nextToken()
		i.expression()
		if i.er != errNone {
			return
		}
		step = i.pop()
	}
	if !i.termSymbol() {
		i.error(errUnknown)
		return
	}
	to := i.pop()

	if i.st == sInt {
		i.here = Addr(i.bi)
	}
	i.pushFor(forFrame{xc: c, yc: d, here: i.here, to: to, step: step})
	if i.er != errNone {
		return
	}

	// the initial condition may already fail
	if (step > 0 && i.getVar(c, d) > to) || (step < 0 && i.getVar(c, d) < to) {
		i.dropFor()
		i.findNext()
		i.nextToken()
	}
}

// xBreak drops the innermost loop and resumes after its NEXT.
func (i *Interpreter) xBreak() {
	i.dropFor()
	if i.er != errNone {
		return
	}
	i.findNext()
	i.nextToken()
}

// xNext pops the loop frame, steps the variable and either loops back or
// falls through. A variable after NEXT must match the innermost frame.
func (i *Interpreter) xNext() {
	var c, d byte

	i.nextToken()
	if !i.termSymbol() && i.tok == tVariable {
		c, d = i.xc, i.yc
		i.nextToken()
		if !i.termSymbol() {
			i.error(errUnknown)
			return
		}
	}

	h := i.here
	f, ok := i.popFor()
	if !ok {
		return
	}
	if c != 0 && (c != f.xc || d != f.yc) {
		i.error(errFor)
		return
	}

	again := f.step == 0
	if !again {
		t := i.getVar(f.xc, f.yc) + f.step
		i.setVar(f.xc, f.yc, t)
		again = (f.step > 0 && t <= f.to) || (f.step < 0 && t >= f.to)
	}
	if !again {
		// loop done, continue after NEXT
		i.here = h
		i.nextToken()
		return
	}
	i.pushFor(f)
	i.here = f.here
	if i.st == sInt {
		i.bi = int(f.here)
	}
	i.nextToken()
}

// outputToken detokenizes the current token for LIST and SAVE.
func (i *Interpreter) outputToken() {
	switch i.tok {
	case tNumber:
		i.outNumber(i.x)
	case tLinenumber:
		i.outNumber(i.x)
		i.outSpc()
	case tArrayvar, tStringvar, tVariable:
		i.outChar(i.xc)
		if i.yc != 0 {
			i.outChar(i.yc)
		}
		if i.tok == tStringvar {
			i.outChar('$')
		}
	case tString:
		i.outChar('"')
		i.outS(i.ir[:i.x])
		i.outChar('"')
	default:
		if i.tok < -3 {
			if i.tok == tThen || i.tok == tTo || i.tok == tStep {
				i.outSpc()
			}
			i.outSC(i.getKeyword(i.tok))
			if i.tok != tGE && i.tok != tNE && i.tok != tLE {
				i.outSpc()
			}
			return
		}
		if i.tok >= 32 {
			i.outChar(byte(i.tok))
		}
	}
}

// xList prints the stored program, a single line or a line range,
// honoring display pagination.
func (i *Interpreter) xList() {
	var b, e Number

	i.nextToken()
	switch i.parseArguments() {
	case 0:
		b, e = 0, 32767
	case 1:
		b = i.pop()
		e = b
	case 2:
		e = i.pop()
		b = i.pop()
	default:
		if i.er == errNone {
			i.error(errArgs)
		}
		return
	}
	if i.er != errNone {
		return
	}

	if i.top == 0 {
		i.nextToken()
		return
	}

	oflag := false
	i.here = 0
	i.getToken()
	for i.here < i.top {
		if i.tok == tLinenumber && i.x >= b {
			oflag = true
		}
		if i.tok == tLinenumber && i.x > e {
			oflag = false
		}
		if oflag {
			i.outputToken()
		}
		i.getToken()
		if i.tok == tLinenumber && oflag {
			i.outCR()
			if i.dspActive() && i.dspWaitOnScroll() == 27 {
				break
			}
		}
	}
	if i.here == i.top && oflag {
		i.outputToken()
	}
	if e == 32767 || b != e {
		// suppress the newline in "LIST 50"
		i.outCR()
	}

	i.nextToken()
}

// xRun implements RUN and CONT: clear variables (RUN only), position the
// cursor and drive the statement loop until the program ends or errors.
func (i *Interpreter) xRun() {
	if i.tok == tCont {
		i.st = sRun
		i.nextToken()
	} else {
		i.nextToken()
		switch i.parseArguments() {
		case 0:
			i.here = 0
		case 1:
			i.findLine(Addr(i.pop()))
		default:
			if i.er == errNone {
				i.error(errArgs)
			}
			return
		}
		if i.er != errNone {
			return
		}
		if i.st == sInt {
			i.st = sRun
		}
		i.xClr()
	}

	for i.here < i.top && (i.st == sRun || i.st == sERun) && i.er == errNone {
		i.statement()
	}
	i.st = sInt
}

// xNew clears the program, the variables, the stacks and the error state.
func (i *Interpreter) xNew() {
	i.sp = 0
	i.clearVars()
	i.top = 0
	i.zeroBlock(i.top, i.himem)
	i.resetError()
	i.clrGosubStack()
	i.clrForStack()
}

func (i *Interpreter) xRem() {
	for i.tok != tLinenumber && i.tok != tEOL && i.here <= i.top {
		i.nextToken()
	}
}

// xClr clears variables and the control stacks but keeps the program.
func (i *Interpreter) xClr() {
	i.clearVars()
	i.clrGosubStack()
	i.clrForStack()
	i.nextToken()
}

// xDim creates arrays and strings.
func (i *Interpreter) xDim() {
	i.nextToken()
	for {
		if i.tok != tArrayvar && i.tok != tStringvar {
			i.error(errUnknown)
			return
		}
		t := i.tok
		c, d := i.xc, i.yc

		i.nextToken()
		args := i.parseSubscripts()
		if i.er != errNone {
			return
		}
		if args != 1 {
			i.error(errArgs)
			return
		}
		n := i.pop()
		if n <= 0 {
			i.error(errRange)
			return
		}
		if t == tStringvar {
			if n > 255 && strIndexSize == 1 {
				i.error(errRange)
				return
			}
			i.createString(c, d, Addr(n))
		} else {
			i.createArray(c, d, Addr(n))
		}
		if i.er != errNone {
			return
		}
		i.nextToken()
		if i.tok != ',' {
			break
		}
		i.nextToken()
	}
	i.nextToken()
}

// xPoke writes one byte to the arena, or to the EEPROM for negative
// addresses. Like PEEK it clips against the smaller of memsize and maxNum.
func (i *Interpreter) xPoke() {
	var amax Number
	if int64(i.memsize) > int64(maxNum) {
		amax = maxNum
	} else {
		amax = Number(i.memsize)
	}

	i.nextToken()
	i.parseNArguments(2)
	if i.er != errNone {
		return
	}
	v := i.pop()
	a := i.pop()
	switch {
	case a >= 0 && a < amax:
		i.mem[Addr(a)] = byte(v)
	case a < 0 && -a <= Number(i.romLength()):
		i.eUpdate(Addr(-a-1), byte(v))
	default:
		i.error(errRange)
	}
}

// xTab pads the output with spaces.
func (i *Interpreter) xTab() {
	i.nextToken()
	i.parseNArguments(1)
	if i.er != errNone {
		return
	}
	for n := i.pop(); n > 0; n-- {
		i.outSpc()
	}
}

// xDump prints a raw memory listing of the arena and the EEPROM, followed
// by the interpreter housekeeping pointers.
func (i *Interpreter) xDump() {
	var b Number
	var rows Addr

	i.nextToken()
	switch i.parseArguments() {
	case 0:
		b = 0
		rows = i.memsize
	case 1:
		b = i.pop()
		rows = i.memsize
	case 2:
		rows = Addr(i.pop())
		b = i.pop()
	default:
		if i.er == errNone {
			i.error(errArgs)
		}
		return
	}
	if i.er != errNone {
		return
	}

	i.form = 6
	i.dumpMem(rows/8+1, Addr(b))
	i.form = 0
	i.nextToken()
}

func (i *Interpreter) dumpMem(rows, b Addr) {
	k := b
	for r := rows; r > 0; r-- {
		i.outNumber(Number(k))
		i.outSpc()
		for j := 0; j < 8; j++ {
			i.outNumber(Number(int8(i.mem[k])))
			i.outSpc()
			k++
			if k > i.memsize {
				break
			}
		}
		i.outCR()
		if k > i.memsize {
			break
		}
	}
	if n := i.romLength(); n > 0 {
		i.printMessage(int(errEeprom))
		i.outCR()
		k = 0
		for r := rows; r > 0; r-- {
			i.outNumber(Number(k))
			i.outSpc()
			for j := 0; j < 8; j++ {
				i.outNumber(Number(int8(i.eRead(k))))
				i.outSpc()
				k++
				if k >= n {
					break
				}
			}
			i.outCR()
			if k >= n {
				break
			}
		}
	}
	i.outSC("top: ")
	i.outNumber(Number(i.top))
	i.outCR()
	i.outSC("himem: ")
	i.outNumber(Number(i.himem))
	i.outCR()
}

// xGet reads one character from the input device if one is pending, 0
// otherwise, and assigns it like a number.
func (i *Interpreter) xGet() {
	oid := i.id

	i.nextToken()
	if i.tok == '&' {
		i.nextToken()
		i.expression()
		if i.er != errNone {
			return
		}
		i.id = int(i.pop())
		if i.tok != ',' {
			i.error(errUnknown)
			return
		}
		i.nextToken()
	}

	t := i.tok
	c, d := i.xc, i.yc
	idx, pure := i.leftHandSide()
	if i.er != errNone {
		return
	}

	if i.checkCh() != 0 {
		b, _ := i.inChar()
		i.push(Number(b))
	} else {
		i.push(0)
	}
	i.assignNumber(t, c, d, idx, pure)

	i.id = oid
}

// xPut writes the evaluated expressions as raw characters.
func (i *Interpreter) xPut() {
	ood := i.od

	i.nextToken()
	if i.tok == '&' {
		i.nextToken()
		i.expression()
		if i.er != errNone {
			return
		}
		i.od = int(i.pop())
		if i.tok != ',' {
			i.error(errUnknown)
			return
		}
		i.nextToken()
	}

	args := i.parseArguments()
	if i.er != errNone {
		return
	}
	var b [stackSize]byte
	for j := args - 1; j >= 0; j-- {
		b[j] = byte(i.pop())
	}
	for j := 0; j < args; j++ {
		i.outChar(b[j])
	}

	i.od = ood
}

// xSet adjusts low level interpreter properties: the EEPROM status byte
// and the current and default I/O devices.
func (i *Interpreter) xSet() {
	i.nextToken()
	i.parseNArguments(2)
	if i.er != errNone {
		return
	}
	arg := i.pop()
	fn := i.pop()
	switch fn {
	case 1: // autorun flag of the EEPROM: 255 clear, 0 program, 1 autorun
		i.eUpdate(0, byte(arg))
	case 2: // output device
		switch arg {
		case 0:
			i.od = oSerial
		case 1:
			i.od = oDisplay
		}
	case 3: // default output device
		switch arg {
		case 0:
			i.odd = oSerial
			i.od = oSerial
		case 1:
			i.odd = oDisplay
			i.od = oDisplay
		}
	case 4: // input device
		switch arg {
		case 0:
			i.id = iSerial
		case 1:
			i.id = iKeyboard
		}
	case 5: // default input device
		switch arg {
		case 0:
			i.idd = iSerial
			i.id = iSerial
		case 1:
			i.idd = iKeyboard
			i.id = iKeyboard
		}
	}
}

// host I/O statements, delegating to the Pins collaborator

func (i *Interpreter) xDwrite() {
	i.nextToken()
	i.parseNArguments(2)
	if i.er != errNone {
		return
	}
	v := i.pop()
	p := i.pop()
	i.pins.DigitalWrite(p, v)
}

func (i *Interpreter) xAwrite() {
	i.nextToken()
	i.parseNArguments(2)
	if i.er != errNone {
		return
	}
	v := i.pop()
	p := i.pop()
	i.pins.AnalogWrite(p, v)
}

func (i *Interpreter) xPinm() {
	i.nextToken()
	i.parseNArguments(2)
	if i.er != errNone {
		return
	}
	m := i.pop()
	p := i.pop()
	i.pins.PinMode(p, m)
}

func (i *Interpreter) xDelay() {
	i.nextToken()
	i.parseNArguments(1)
	if i.er != errNone {
		return
	}
	i.pins.Delay(i.pop())
}

func (i *Interpreter) xTone() {
	i.nextToken()
	args := i.parseArguments()
	if i.er != errNone {
		return
	}
	if args < 2 || args > 3 {
		i.error(errArgs)
		return
	}
	d := Number(0)
	if args == 3 {
		d = i.pop()
	}
	f := i.pop()
	p := i.pop()
	i.pins.Tone(p, f, d)
}

// host I/O functions used by the evaluator

func (i *Interpreter) aRead() {
	i.push(i.pins.AnalogRead(i.pop()))
}

func (i *Interpreter) dRead() {
	i.push(i.pins.DigitalRead(i.pop()))
}

func (i *Interpreter) bMillis() {
	i.push(i.pins.Millis(i.pop()))
}

func (i *Interpreter) bPulseIn() {
	t := i.pop()
	v := i.pop()
	p := i.pop()
	i.push(i.pins.PulseIn(p, v, t))
}

func (i *Interpreter) xCall() {
	i.nextToken()
}
