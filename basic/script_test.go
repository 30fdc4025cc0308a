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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// runScript feeds src to a fresh interpreter REPL and returns the
// interpreter and everything it wrote.
func runScript(t *testing.T, src string, opts ...Option) (*Interpreter, string) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{MemSize(8192), Input(strings.NewReader(src)), Output(&buf)}, opts...)
	i, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); errors.Cause(err) != io.EOF {
		t.Fatalf("Run: %v", err)
	}
	return i, buf.String()
}

// progOutput strips the greeting line and the prompts, leaving what the
// program itself printed.
func progOutput(s string) string {
	if n := strings.IndexByte(s, '\n'); n >= 0 {
		s = s[n+1:]
	}
	return strings.ReplaceAll(s, "> ", "")
}

func check(t *testing.T, src, want string) {
	t.Helper()
	i, out := runScript(t, src)
	if got := progOutput(out); got != want {
		t.Errorf("output: got %q, want %q", got, want)
	}
	if i.sp != 0 {
		t.Errorf("operand stack not balanced: sp=%d", i.sp)
	}
}

func TestForNext(t *testing.T) {
	check(t, "10 FOR I=1 TO 3\n20 PRINT I\n30 NEXT I\nRUN\n", "1\n2\n3\n")
}

func TestGosubReturn(t *testing.T) {
	check(t,
		"10 A=5\n20 GOSUB 100\n30 PRINT A\n40 END\n100 A=A*2\n110 RETURN\nRUN\n",
		"10\n")
}

func TestDimArray(t *testing.T) {
	check(t,
		"10 DIM A(5)\n20 FOR I=1 TO 5\n30 A(I)=I*I\n40 NEXT I\n50 PRINT A(3)\nRUN\n",
		"9\n")
}

func TestStringAssign(t *testing.T) {
	check(t,
		"10 DIM S$(20)\n20 S$=\"HELLO\"\n30 S$(6)=\" WORLD\"\n40 PRINT S$\nRUN\n",
		"HELLO WORLD\n")
}

func TestIfThenLine(t *testing.T) {
	check(t,
		"10 IF 3>2 THEN 40\n20 PRINT \"NO\"\n30 END\n40 PRINT \"YES\"\nRUN\n",
		"YES\n")
}

func TestIfThenLoop(t *testing.T) {
	check(t, "10 A=0\n20 A=A+1\n30 IF A<3 THEN 20\n40 PRINT A\nRUN\n", "3\n")
}

func TestForStep(t *testing.T) {
	check(t, "10 FOR I=10 TO 1 STEP -3\n20 PRINT I\n30 NEXT\nRUN\n", "10\n7\n4\n1\n")
}

func TestForInitialConditionFails(t *testing.T) {
	check(t, "10 FOR I=5 TO 1\n20 PRINT I\n30 NEXT\n40 PRINT \"X\"\nRUN\n", "X\n")
}

func TestNestedFor(t *testing.T) {
	check(t,
		"10 FOR I=1 TO 2\n20 FOR J=1 TO 2\n30 PRINT I*10+J\n40 NEXT J\n50 NEXT I\nRUN\n",
		"11\n12\n21\n22\n")
}

func TestBreakStatement(t *testing.T) {
	check(t,
		"10 FOR I=1 TO 100\n20 PRINT I\n30 IF I=2 THEN BREAK\n40 NEXT\n50 PRINT \"D\"\nRUN\n",
		"1\n2\nD\n")
}

func TestPrintList(t *testing.T) {
	check(t, "PRINT 1,2;3\n", "1 23\n")
}

func TestPrintWidth(t *testing.T) {
	check(t, "PRINT #5, 42\n", "   42\n")
}

func TestPrintDeviceRouting(t *testing.T) {
	// &4 routes one PRINT statement to the printer
	var prt bytes.Buffer
	_, out := runScript(t, "PRINT &4, 7\nPRINT 8\n", Printer(&prt))
	if prt.String() != "7\n" {
		t.Errorf("printer got %q", prt.String())
	}
	if got := progOutput(out); got != "8\n" {
		t.Errorf("serial got %q", got)
	}
}

func TestPrintSemicolonSuppressesNewline(t *testing.T) {
	check(t, "10 PRINT \"A\";\n20 PRINT \"B\"\nRUN\n", "AB\n")
}

func TestImmediateStatement(t *testing.T) {
	check(t, "PRINT 2+3*4\n", "14\n")
}

func TestUnaryMinus(t *testing.T) {
	check(t, "PRINT -5+2\n", "-3\n")
}

func TestParens(t *testing.T) {
	check(t, "PRINT (2+3)*4\n", "20\n")
}

func TestComparisonsAndLogic(t *testing.T) {
	check(t, "PRINT 1=1; 1<>1; 2>=3; NOT 0; 1 AND 1; 0 OR 1\n", "100111\n")
}

func TestStringCompare(t *testing.T) {
	check(t,
		"10 DIM S$(10)\n20 S$=\"ABC\"\n30 IF S$=\"ABC\" THEN PRINT 1\n40 IF S$<>\"ABD\" THEN PRINT 2\nRUN\n",
		"1\n2\n")
}

func TestStringAsNumber(t *testing.T) {
	// a bare string where a number is expected evaluates to its first byte
	check(t, "10 A=\"A\"\n20 PRINT A\nRUN\n", "65\n")
}

func TestLenSubstring(t *testing.T) {
	check(t,
		"10 DIM S$(20)\n20 S$=\"HELLO\"\n30 PRINT LEN(S$)\n40 PRINT S$(2,4)\n50 PRINT S$(4)\nRUN\n",
		"5\nELL\nLO\n")
}

func TestStringOverlapCopy(t *testing.T) {
	// overlapping copy within the same string must behave like a byte by
	// byte copy in the overlap safe direction
	check(t,
		"10 DIM S$(20)\n20 S$=\"ABCDEF\"\n30 S$(2)=S$(1,3)\n40 PRINT S$\nRUN\n",
		"AABCEF\n")
	check(t,
		"10 DIM S$(20)\n20 S$=\"ABCDEF\"\n30 S$(1)=S$(2,4)\n40 PRINT S$\nRUN\n",
		"BCDDEF\n")
}

func TestRnd(t *testing.T) {
	// the generator is a fixed LCG, the sequence is part of the contract
	check(t, "PRINT RND(100)\nPRINT RND(100)\n", "10\n23\n")
}

func TestAbsSgn(t *testing.T) {
	check(t, "PRINT ABS(-5); SGN(-9); SGN(9); SGN(0)\n", "5-110\n")
}

func TestSqrExact(t *testing.T) {
	check(t, "PRINT SQR(16)\n", "4\n")
}

func TestPeekPoke(t *testing.T) {
	check(t, "10 POKE 1000, 65\n20 PRINT PEEK(1000)\nRUN\n", "65\n")
}

func TestFreSize(t *testing.T) {
	i, _ := runScript(t, "")
	if i.Size() != int(i.himem-i.top) {
		t.Errorf("Size: got %d, want %d", i.Size(), i.himem-i.top)
	}
}

func TestTab(t *testing.T) {
	check(t, "10 TAB 3\n20 PRINT \"X\"\nRUN\n", "   X\n")
}

func TestRem(t *testing.T) {
	check(t, "10 REM THIS IS A COMMENT\n20 PRINT 1\nRUN\n", "1\n")
}

func TestGotoInteractive(t *testing.T) {
	check(t, "10 PRINT 7\n20 END\nGOTO 10\n", "7\n")
}

func TestStopCont(t *testing.T) {
	check(t, "10 PRINT 1\n20 STOP\n30 PRINT 2\nRUN\nCONT\n", "1\n2\n")
}

func TestInput(t *testing.T) {
	check(t, "10 INPUT A\n20 PRINT A*2\nRUN\n21\n", "? 42\n")
}

func TestInputPrompt(t *testing.T) {
	check(t, "10 INPUT \"N\", A\n20 PRINT A\nRUN\n5\n", "N? 5\n")
}

func TestInputReprompt(t *testing.T) {
	// junk input reports Number and asks again
	_, out := runScript(t, "10 INPUT A\n20 PRINT A\nRUN\nX\n7\n")
	got := progOutput(out)
	if !strings.Contains(got, "Number") || !strings.Contains(got, "7\n") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestBreakCharacter(t *testing.T) {
	// '#' at a statement boundary aborts the endless loop
	i, _ := runScript(t, "10 GOTO 10\nRUN\n#\n")
	if i.st != sInt {
		t.Errorf("interpreter not back to interactive state")
	}
}

func TestAtVars(t *testing.T) {
	check(t, "10 @O=1\n20 PRINT @I; @O\nRUN\n", "11\n")
}

func TestErrTrappable(t *testing.T) {
	// @S reads and clears the trappable error code
	check(t, "10 @S=7\n20 PRINT @S\n30 @S=0\n40 PRINT @S\nRUN\n", "7\n0\n")
}

// boundary errors

func errOutput(t *testing.T, src string) string {
	t.Helper()
	_, out := runScript(t, src)
	return progOutput(out)
}

func TestErrDimTooBig(t *testing.T) {
	if out := errOutput(t, "DIM A(5000)\n"); !strings.Contains(out, "Memory Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrRangeIndex(t *testing.T) {
	if out := errOutput(t, "10 DIM A(5)\n20 A(0)=1\nRUN\n"); !strings.Contains(out, "Range Error") {
		t.Errorf("got %q", out)
	}
	if out := errOutput(t, "10 DIM A(5)\n20 A(6)=1\nRUN\n"); !strings.Contains(out, "Range Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrReturnUnderflow(t *testing.T) {
	if out := errOutput(t, "10 RETURN\nRUN\n"); !strings.Contains(out, "Return Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrNextUnderflow(t *testing.T) {
	if out := errOutput(t, "10 NEXT\nRUN\n"); !strings.Contains(out, "FOR Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrGosubOverflow(t *testing.T) {
	if out := errOutput(t, "10 GOSUB 10\nRUN\n"); !strings.Contains(out, "GOSUB Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrDivideByZero(t *testing.T) {
	if out := errOutput(t, "PRINT 1/0\n"); !strings.Contains(out, "Div by 0 Error") {
		t.Errorf("got %q", out)
	}
	if out := errOutput(t, "PRINT 1%0\n"); !strings.Contains(out, "Div by 0 Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrMissingLine(t *testing.T) {
	out := errOutput(t, "10 GOTO 99\nRUN\n")
	if !strings.Contains(out, "Unknown Line Error") {
		t.Errorf("got %q", out)
	}
	// in run mode the report is prefixed with the line number
	if !strings.Contains(out, "10:") {
		t.Errorf("missing line number prefix in %q", out)
	}
}

func TestErrStringCapacity(t *testing.T) {
	if out := errOutput(t, "10 DIM S$(5)\n20 S$=\"TOOLONG\"\nRUN\n"); !strings.Contains(out, "Range Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrNextMismatch(t *testing.T) {
	if out := errOutput(t, "10 FOR I=1 TO 2\n20 NEXT J\nRUN\n"); !strings.Contains(out, "FOR Error") {
		t.Errorf("got %q", out)
	}
}

func TestErrorRecovers(t *testing.T) {
	// the REPL keeps going after an error
	check(t, "PRINT 1/0\nPRINT 5\n", "Div by 0 Error\n5\n")
}

// universal properties

func TestNewIdempotent(t *testing.T) {
	i, _ := runScript(t, "10 A=1\n20 DIM B(3)\nRUN\nNEW\n")
	snap := func() [6]int {
		return [6]int{int(i.top), int(i.himem), i.nvars, i.sp, i.gsp, i.fsp}
	}
	s1 := snap()
	setLine(i, "NEW")
	i.nextToken()
	i.statement()
	if s2 := snap(); s1 != s2 {
		t.Errorf("NEW not idempotent: %v != %v", s1, s2)
	}
}

func TestAssignmentIdempotent(t *testing.T) {
	check(t,
		"10 A=42\n20 A=A\n30 PRINT A\n40 DIM S$(10)\n50 S$=\"AB\"\n60 S$=S$\n70 PRINT S$\nRUN\n",
		"42\nAB\n")
}

// countObjects walks the heap trailers independently of nvars.
func countObjects(i *Interpreter) int {
	b := i.memsize
	n := 0
	for b > i.himem {
		b -= 2 // the two name bytes
		t := int8(i.mem[b])
		b--
		var l Addr
		if t == tVariable {
			l = numSize
		} else {
			b -= addrSize - 1
			l = loadAddr(i.mem[b:])
			b--
		}
		b -= l
		n++
	}
	return n
}

func TestMemoryConservation(t *testing.T) {
	i, _ := runScript(t,
		"10 DIM A(3), S$(10)\n20 A1=1\n30 B2=2\n40 S$=\"HI\"\nRUN\n")
	if i.top > i.himem {
		t.Errorf("top %d > himem %d", i.top, i.himem)
	}
	if n := countObjects(i); n != i.nvars {
		t.Errorf("trailer walk found %d objects, nvars=%d", n, i.nvars)
	}
}

func TestOperandStackBalance(t *testing.T) {
	scripts := []string{
		"PRINT 1+2\n",
		"10 FOR I=1 TO 3\n20 NEXT\nRUN\n",
		"10 DIM S$(10)\n20 S$=\"A\"\nRUN\n",
		"PRINT 1/0\n",
		"10 GOSUB 20\n15 END\n20 RETURN\nRUN\n",
	}
	for _, s := range scripts {
		if i, _ := runScript(t, s); i.sp != 0 {
			t.Errorf("%q: sp=%d after run", s, i.sp)
		}
	}
}
