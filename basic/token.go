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

// Token tags. Values 1..127 are the characters themselves; keywords and
// payload carrying tokens use the reserved negative range. The tag byte is
// also the on-disk encoding of the tokenized program, so the values are
// part of the EEPROM image format and must not change.
const (
	tEOL int8 = 0

	tNumber     int8 = -127
	tLinenumber int8 = -126
	tString     int8 = -125
	tVariable   int8 = -124
	tStringvar  int8 = -123
	tArrayvar   int8 = -122

	// relational digraphs
	tGE int8 = -121
	tLE int8 = -120
	tNE int8 = -119

	// Palo Alto language set
	tPrint  int8 = -118
	tLet    int8 = -117
	tInput  int8 = -116
	tGoto   int8 = -115
	tGosub  int8 = -114
	tReturn int8 = -113
	tIf     int8 = -112
	tFor    int8 = -111
	tTo     int8 = -110
	tStep   int8 = -109
	tNext   int8 = -108
	tStop   int8 = -107
	tList   int8 = -106
	tNew    int8 = -105
	tRun    int8 = -104
	tAbs    int8 = -103
	tRnd    int8 = -102
	tSize   int8 = -101
	tRem    int8 = -100

	// Apple 1 additions
	tNot   int8 = -99
	tAnd   int8 = -98
	tOr    int8 = -97
	tLen   int8 = -96
	tSgn   int8 = -95
	tPeek  int8 = -94
	tDim   int8 = -93
	tClr   int8 = -92
	tLomem int8 = -91
	tHimem int8 = -90
	tTab   int8 = -89
	tThen  int8 = -88
	tEnd   int8 = -87
	tPoke  int8 = -86

	// interpreter extensions
	tCont  int8 = -85
	tSqr   int8 = -84
	tFre   int8 = -83
	tDump  int8 = -82
	tBreak int8 = -81
	tSave  int8 = -80
	tLoad  int8 = -79
	tGet   int8 = -78
	tPut   int8 = -77
	tSet   int8 = -76
	tCls   int8 = -75

	// host I/O
	tPinm    int8 = -74
	tDwrite  int8 = -73
	tDread   int8 = -72
	tAwrite  int8 = -71
	tAread   int8 = -70
	tDelay   int8 = -69
	tMillis  int8 = -68
	tTone    int8 = -67
	tPulsein int8 = -66
	tAzero   int8 = -65

	// filesystem
	tCatalog int8 = -64
	tDelete  int8 = -63
	tOpen    int8 = -62
	tClose   int8 = -61

	// low level access
	tUsr  int8 = -60
	tCall int8 = -59

	tUnknown int8 = -2
)

const baseKeyword = tGE

// keywords, indexed by token - baseKeyword. Matched greedily in token
// value order by the tokenizer, printed back by LIST.
var keywords = [...]string{
	"=>", "<=", "<>",
	// Palo Alto BASIC
	"PRINT", "LET", "INPUT", "GOTO", "GOSUB", "RETURN", "IF", "FOR", "TO",
	"STEP", "NEXT", "STOP", "LIST", "NEW", "RUN", "ABS", "RND", "SIZE",
	"REM",
	// Apple 1 BASIC additions
	"NOT", "AND", "OR", "LEN", "SGN", "PEEK", "DIM", "CLR", "LOMEM",
	"HIMEM", "TAB", "THEN", "END", "POKE",
	// interpreter extensions
	"CONT", "SQR", "FRE", "DUMP", "BREAK", "SAVE", "LOAD", "GET", "PUT",
	"SET", "CLS",
	// host I/O
	"PINM", "DWRITE", "DREAD", "AWRITE", "AREAD", "DELAY", "MILLIS",
	"ATONE", "PULSEIN", "AZERO",
	// filesystem
	"CATALOG", "DELETE", "OPEN", "CLOSE",
	// low level access
	"USR", "CALL",
}

// getKeyword returns the keyword text for a token, raising Unknown for out
// of range tags.
func (i *Interpreter) getKeyword(t int8) string {
	n := int(t) - int(baseKeyword)
	if n < 0 || n >= len(keywords) {
		i.error(errUnknown)
		return ""
	}
	return keywords[n]
}

// errCode is the non-trappable error status. The values double as indexes
// into the message catalogue.
type errCode int8

const (
	errNone errCode = 0

	mFile   = 0
	mPrompt = 1
	mGreet  = 2

	errGeneral     errCode = 3
	errUnknown     errCode = 4
	errNumber      errCode = 5
	errDivide      errCode = 6
	errLine        errCode = 7
	errReturn      errCode = 8
	errNext        errCode = 9
	errGosub       errCode = 10
	errFor         errCode = 11
	errOutOfMemory errCode = 12
	errStack       errCode = 13
	errDim         errCode = 14
	errRange       errCode = 15
	errString      errCode = 16
	errVariable    errCode = 17
	errFile        errCode = 18
	errFun         errCode = 19
	errArgs        errCode = 20
	errEeprom      errCode = 21
	errSdCard      errCode = 22
)

// the message catalogue. Entries 3 and up line up with the errCode values.
var messages = [...]string{
	"file.bas",
	"> ",
	"TinyBAS 1.2",
	"Error",
	"Syntax",
	"Number",
	"Div by 0",
	"Unknown Line",
	"Return",
	"Next",
	"GOSUB",
	"FOR",
	"Memory",
	"Stack",
	"DIM",
	"Range",
	"String",
	"Variable",
	"File",
	"Function",
	"Args",
	"EEPROM",
	"SD card",
}

func (i *Interpreter) printMessage(n int) {
	if n < 0 || n >= len(messages) {
		return
	}
	i.outSC(messages[n])
}

// error records the non-trappable error e, reports it on the current
// output and clears the evaluation and control stacks. Every layer checks
// er after calls that can fail and returns without further side effects;
// the statement driver stops the program when it sees the code set.
func (i *Interpreter) error(e errCode) {
	i.er = e
	// set input and output device back to default
	i.od = i.odd
	i.id = i.idd
	if i.st != sInt {
		i.outNumber(Number(i.lineOf(i.here)))
		i.outChar(':')
		i.outSpc()
	}
	i.printMessage(int(e))
	i.outSpc()
	i.printMessage(int(errGeneral))
	i.outCR()
	i.sp = 0
	i.clrForStack()
	i.clrGosubStack()
	i.ioDefaults()
}

func (i *Interpreter) resetError() {
	i.er = errNone
	i.here = 0
	i.st = sInt
}
