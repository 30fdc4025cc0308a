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

// The expression evaluator: a recursive descent parser over the token
// stream pushing intermediate values on the operand stack.
//
//	expression ::= and_expr { OR and_expr }
//	and_expr   ::= not_expr { AND not_expr }
//	not_expr   ::= [ NOT ] comp_expr
//	comp_expr  ::= add_expr [ ( = | <> | < | > | <= | >= ) add_expr ]
//	add_expr   ::= [ + | - ] term { (+ | -) term }
//	term       ::= factor { (* | / | %) factor }

func bton(b bool) Number {
	if b {
		return 1
	}
	return 0
}

func (i *Interpreter) termSymbol() bool {
	return i.tok == tLinenumber || i.tok == ':' || i.tok == tEOL
}

// parseArguments parses a comma separated expression list and returns the
// number of expressions pushed.
func (i *Interpreter) parseArguments() int {
	args := 0
	if i.termSymbol() {
		return args
	}
	for {
		i.expression()
		if i.er != errNone {
			return 0
		}
		args++
		if i.tok != ',' {
			return args
		}
		i.nextToken()
	}
}

func (i *Interpreter) parseNArguments(n int) {
	if i.parseArguments() != n && i.er == errNone {
		i.error(errArgs)
	}
}

// parseSubscripts counts the expressions between brackets; without an
// opening bracket there are none.
func (i *Interpreter) parseSubscripts() int {
	if i.tok != '(' {
		return 0
	}
	i.nextToken()
	args := i.parseArguments()
	if i.er != errNone {
		return 0
	}
	if i.tok != ')' {
		i.error(errArgs)
		return 0
	}
	return args
}

// parseSubstring evaluates the subscripts of a string expression, pushing
// the start and end index. S$(a) runs to the end of the string; a bare S$
// is S$(1, LEN(S$)) and rewinds the lookahead token.
func (i *Interpreter) parseSubstring() {
	c, d := i.xc, i.yc
	bi1 := i.bi
	h1 := i.here
	i.nextToken()
	args := i.parseSubscripts()
	if i.er != errNone {
		return
	}
	switch args {
	case 2:
	case 1:
		i.push(i.lenString(c, d))
	case 0:
		// rewind the peeked token
		if i.st == sInt {
			i.bi = bi1
		} else {
			i.here = h1
		}
		i.push(1)
		i.push(i.lenString(c, d))
	}
}

// parseFunction parses the argument list of a builtin expecting ae
// expressions, then runs it.
func (i *Interpreter) parseFunction(f func(), ae int) {
	i.nextToken()
	args := i.parseSubscripts()
	if i.er != errNone {
		return
	}
	if args != ae {
		i.error(errArgs)
		return
	}
	f()
}

// builtins, all operating on the operand stack

func (i *Interpreter) xAbs() {
	if x := i.pop(); x < 0 {
		i.push(-x)
	} else {
		i.push(x)
	}
}

func (i *Interpreter) xSgn() {
	n := i.pop()
	if n > 0 {
		n = 1
	}
	if n < 0 {
		n = -1
	}
	i.push(n)
}

// peek reads an arena byte, or an EEPROM cell for negative addresses. The
// upper bound is the smaller of memsize and maxNum - a quirk kept so that
// EEPROM images round-trip when the number type is narrower than the
// address type.
func (i *Interpreter) peek() {
	var amax Number
	if int64(i.memsize) > int64(maxNum) {
		amax = maxNum
	} else {
		amax = Number(i.memsize)
	}
	a := i.pop()
	switch {
	case a >= 0 && a < amax:
		i.push(Number(int8(i.mem[Addr(a)])))
	case a < 0 && -a < Number(i.romLength()):
		i.push(Number(int8(i.eRead(Addr(-a - 1)))))
	default:
		i.error(errRange)
	}
}

func (i *Interpreter) xFre() {
	if i.pop() >= 0 {
		i.push(Number(i.himem - i.top))
	} else {
		i.push(Number(i.romLength()))
	}
}

// rnd is a fixed linear congruential generator so that programs relying on
// the sequence are portable. A negative argument n gives state*n/2^16 + 1,
// the quotient truncated toward zero, so the result is never above 1.
func (i *Interpreter) rnd() {
	r := i.pop()
	i.rd = 31421*i.rd + 6927
	if r >= 0 {
		i.push(Number(int64(i.rd) * int64(r) / 0x10000))
	} else {
		i.push(Number(int64(i.rd)*int64(r)/0x10000 + 1))
	}
}

func (i *Interpreter) sqr() {
	i.push(numSqrt(i.pop()))
}

// stringValue evaluates a string valued token: a literal or a string
// variable with optional subscripts. It leaves the bytes in ir2, pushes
// the length and reports whether there was a string value at all.
func (i *Interpreter) stringValue() bool {
	switch i.tok {
	case tString:
		i.ir2 = i.ir
		i.push(i.x)
	case tStringvar:
		c, d := i.xc, i.yc
		i.parseSubstring()
		if i.er != errNone {
			return false
		}
		y := i.pop()
		x := i.pop()
		i.ir2 = i.getString(c, d, Addr(x))
		if i.er != errNone {
			return false
		}
		n := y - x + 1
		if n < 0 {
			n = 0
		}
		if n > Number(len(i.ir2)) {
			i.error(errRange)
			return false
		}
		// keep the substring start for the overlap direction check in
		// string assignment
		i.x = x
		i.push(n)
		i.xc, i.yc = c, d
	default:
		return false
	}
	return true
}

// strEval evaluates a string comparison, or the numeric value of a string
// where a number is expected (its first byte, 0 when empty).
func (i *Interpreter) strEval() {
	if !i.stringValue() {
		i.error(errUnknown)
		return
	}
	if i.er != errNone {
		return
	}
	irl := i.ir2
	xl := i.pop()

	// peek at the next token, rewinding when it is not a comparison
	bi1 := i.bi
	h1 := i.here
	t := i.tok
	i.nextToken()
	if i.tok != '=' && i.tok != tNE {
		if i.st == sInt {
			i.bi = bi1
		} else {
			i.here = h1
		}
		i.tok = t
		// a zero length string evaluates to 0
		if xl == 0 {
			i.push(0)
		} else {
			i.push(Number(irl[0]))
		}
		return
	}
	t = i.tok

	i.nextToken()
	if !i.stringValue() {
		i.error(errUnknown)
		return
	}
	xr := i.pop()
	if i.er != errNone {
		return
	}

	eq := xr == xl
	if eq {
		for j := Number(0); j < xl; j++ {
			if irl[j] != i.ir2[j] {
				eq = false
				break
			}
		}
	}
	if t == '=' {
		i.push(bton(eq))
	} else {
		i.push(bton(!eq))
	}
}

// factor does not consume the token following the factor - the lookahead
// is handled by the callers.
func (i *Interpreter) factor() {
	switch i.tok {
	case tNumber:
		i.push(i.x)
	case tVariable:
		i.push(i.getVar(i.xc, i.yc))
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
		i.push(i.getArray(c, d, Addr(i.pop())))
	case '(':
		i.nextToken()
		i.expression()
		if i.er != errNone {
			return
		}
		if i.tok != ')' {
			i.error(errArgs)
			return
		}

	// Palo Alto BASIC functions
	case tAbs:
		i.parseFunction(i.xAbs, 1)
	case tRnd:
		i.parseFunction(i.rnd, 1)
	case tSize:
		i.push(Number(i.himem - i.top))

	// Apple 1 BASIC functions
	case tSgn:
		i.parseFunction(i.xSgn, 1)
	case tPeek:
		i.parseFunction(i.peek, 1)
	case tLen:
		i.nextToken()
		if i.tok != '(' {
			i.error(errArgs)
			return
		}
		i.nextToken()
		if !i.stringValue() {
			i.error(errUnknown)
			return
		}
		if i.er != errNone {
			return
		}
		i.nextToken()
		if i.tok != ')' {
			i.error(errArgs)
			return
		}
	case tLomem:
		i.push(0)
	case tHimem:
		i.push(Number(i.himem))

	// Apple 1 string compare code
	case tString, tStringvar:
		i.strEval()

	// interpreter extensions
	case tSqr:
		i.parseFunction(i.sqr, 1)
	case tFre:
		i.parseFunction(i.xFre, 1)
	case tUsr:
		i.parseFunction(i.xUsr, 2)

	// host I/O
	case tAread:
		i.parseFunction(i.aRead, 1)
	case tDread:
		i.parseFunction(i.dRead, 1)
	case tMillis:
		i.parseFunction(i.bMillis, 1)
	case tPulsein:
		i.parseFunction(i.bPulseIn, 3)
	case tAzero:
		i.push(0)

	default:
		i.error(errUnknown)
	}
}

func (i *Interpreter) term() {
	i.factor()
	if i.er != errNone {
		return
	}
	i.nextToken()
	for {
		switch i.tok {
		case '*':
			i.nextToken()
			i.factor()
			if i.er != errNone {
				return
			}
			y := i.pop()
			x := i.pop()
			i.push(x * y)
		case '/':
			i.nextToken()
			i.factor()
			if i.er != errNone {
				return
			}
			y := i.pop()
			x := i.pop()
			if y == 0 {
				i.error(errDivide)
				return
			}
			i.push(x / y)
		case '%':
			i.nextToken()
			i.factor()
			if i.er != errNone {
				return
			}
			y := i.pop()
			x := i.pop()
			if y == 0 {
				i.error(errDivide)
				return
			}
			i.push(numMod(x, y))
		default:
			return
		}
		i.nextToken()
	}
}

func (i *Interpreter) addExpr() {
	if i.tok != '+' && i.tok != '-' {
		i.term()
		if i.er != errNone {
			return
		}
	} else {
		// unary sign
		i.push(0)
	}
	for {
		switch i.tok {
		case '+':
			i.nextToken()
			i.term()
			if i.er != errNone {
				return
			}
			y := i.pop()
			x := i.pop()
			i.push(x + y)
		case '-':
			i.nextToken()
			i.term()
			if i.er != errNone {
				return
			}
			y := i.pop()
			x := i.pop()
			i.push(x - y)
		default:
			return
		}
	}
}

func (i *Interpreter) compExpr() {
	i.addExpr()
	if i.er != errNone {
		return
	}
	var op int8
	switch i.tok {
	case '=', '>', '<', tNE, tLE, tGE:
		op = i.tok
	default:
		return
	}
	i.nextToken()
	i.compExpr()
	if i.er != errNone {
		return
	}
	y := i.pop()
	x := i.pop()
	switch op {
	case '=':
		i.push(bton(x == y))
	case tNE:
		i.push(bton(x != y))
	case '>':
		i.push(bton(x > y))
	case '<':
		i.push(bton(x < y))
	case tLE:
		i.push(bton(x <= y))
	case tGE:
		i.push(bton(x >= y))
	}
}

func (i *Interpreter) notExpr() {
	if i.tok == tNot {
		i.nextToken()
		i.compExpr()
		if i.er != errNone {
			return
		}
		i.push(bton(i.pop() == 0))
		return
	}
	i.compExpr()
}

func (i *Interpreter) andExpr() {
	i.notExpr()
	if i.er != errNone {
		return
	}
	if i.tok == tAnd {
		i.nextToken()
		i.andExpr()
		if i.er != errNone {
			return
		}
		y := i.pop()
		x := i.pop()
		i.push(bton(x != 0 && y != 0))
	}
}

func (i *Interpreter) expression() {
	i.andExpr()
	if i.er != errNone {
		return
	}
	if i.tok == tOr {
		i.nextToken()
		i.expression()
		if i.er != errNone {
			return
		}
		y := i.pop()
		x := i.pop()
		i.push(bton(x != 0 || y != 0))
	}
}
