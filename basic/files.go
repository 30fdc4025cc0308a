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
	"bufio"
	"strings"
)

// SAVE, LOAD and the mass storage statements. Program files are plain
// newline separated source text; LOAD pushes each line through the same
// tokenizer as the prompt. The special name "!" addresses the EEPROM
// image instead of the filesystem.

// getFilename parses an optional string argument; def selects the default
// program name when the argument is missing.
func (i *Interpreter) getFilename(def bool) string {
	i.nextToken()
	if i.stringValue() {
		if i.er != errNone {
			return ""
		}
		n := i.pop()
		if n > sbufSize-1 {
			n = sbufSize - 1
		}
		return string(i.ir2[:n])
	}
	if i.er != errNone {
		return ""
	}
	if i.termSymbol() {
		if def {
			return messages[mFile]
		}
		return ""
	}
	i.error(errUnknown)
	return ""
}

// xSave lists the program into a file.
func (i *Interpreter) xSave() {
	name := i.getFilename(true)
	if i.er != errNone {
		return
	}

	if name == "!" {
		i.eSave()
		i.nextToken()
		return
	}

	if i.fs == nil {
		i.error(errFile)
		i.nextToken()
		return
	}
	f, err := i.fs.Create(name)
	if err != nil {
		i.error(errFile)
		i.nextToken()
		return
	}

	// the core list loop, detokenizing into the file
	oldod := i.od
	i.od = oFile
	i.ofile, f = f, i.ofile
	here := i.here
	i.here = 0
	i.getToken()
	for i.here < i.top {
		i.outputToken()
		i.getToken()
		if i.tok == tLinenumber {
			i.outCR()
		}
	}
	if i.here == i.top {
		i.outputToken()
	}
	i.outCR()
	i.here = here

	i.ofile.Close()
	i.ofile = f
	i.od = oldod

	i.nextToken()
}

// xLoad reads and tokenizes a program file. During a run LOAD chains: the
// program is replaced, the variables survive and execution restarts from
// the first line.
func (i *Interpreter) xLoad() {
	name := i.getFilename(true)
	if i.er != errNone {
		return
	}

	if name == "!" {
		i.eLoad()
		i.nextToken()
		return
	}

	chain := false
	if i.st == sRun {
		chain = true
		i.st = sInt
		i.top = 0
		i.clrGosubStack()
		i.clrForStack()
	}

	if i.fs == nil {
		i.error(errFile)
		i.nextToken()
		return
	}
	f, err := i.fs.Open(name)
	if err != nil {
		i.error(errFile)
		i.nextToken()
		return
	}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) == 0 && err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		n := copy(i.ibuf[1:len(i.ibuf)-1], line)
		i.ibuf[0] = byte(n)
		i.ibuf[n+1] = 0
		i.bi = 0
		i.nextToken()
		if i.tok == tNumber {
			i.storeLine()
		}
		if i.er != errNone {
			break
		}
		if err != nil {
			break
		}
	}
	f.Close()

	if chain {
		i.st = sRun
		i.here = 0
	}
	i.nextToken()
}

// xCatalog lists the files whose name starts with the optional argument.
func (i *Interpreter) xCatalog() {
	pat := i.getFilename(false)
	if i.er != errNone {
		return
	}
	if i.fs == nil {
		i.ert = 1
		i.nextToken()
		return
	}
	names, err := i.fs.List()
	if err != nil {
		i.ert = 1
		i.nextToken()
		return
	}
	for _, n := range names {
		if !strings.HasPrefix(n, pat) {
			continue
		}
		i.outSC(n)
		i.outCR()
		if i.dspActive() && i.dspWaitOnScroll() == 27 {
			break
		}
	}
	i.nextToken()
}

func (i *Interpreter) xDelete() {
	name := i.getFilename(false)
	if i.er != errNone {
		return
	}
	if i.fs == nil || i.fs.Remove(name) != nil {
		i.ert = 1
	}
	i.nextToken()
}

// xOpen opens the input (mode 0) or output (mode 1) file used by device
// 16. Failures set the trappable error code only.
func (i *Interpreter) xOpen() {
	name := i.getFilename(false)
	if i.er != errNone {
		return
	}

	mode := Number(0)
	i.nextToken()
	if i.tok == ',' {
		i.nextToken()
		switch i.parseArguments() {
		case 0:
		case 1:
			mode = i.pop()
		default:
			if i.er == errNone {
				i.error(errArgs)
			}
			return
		}
		if i.er != errNone {
			return
		}
	}

	if i.fs == nil {
		i.ert = 1
		return
	}
	switch mode {
	case 1:
		i.closeOutFile()
		f, err := i.fs.Create(name)
		if err != nil {
			i.ert = 1
			return
		}
		i.ofile = f
		i.ert = 0
	case 0:
		i.closeInFile()
		f, err := i.fs.Open(name)
		if err != nil {
			i.ert = 1
			return
		}
		i.ifile = f
		i.ifr = bufio.NewReader(f)
		i.ert = 0
	}
	i.nextToken()
}

func (i *Interpreter) xClose() {
	i.nextToken()
	i.parseNArguments(1)
	if i.er != errNone {
		return
	}
	switch i.pop() {
	case 1:
		i.closeOutFile()
	case 0:
		i.closeInFile()
	}
	i.nextToken()
}
