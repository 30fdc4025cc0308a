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

package main

import (
	"os"

	"github.com/db47h/tinybas/basic"
	"github.com/pkg/errors"
)

// fileEeprom emulates the EEPROM block device with a flat image file. The
// image is held in memory and written back on exit when dirty. A missing
// file reads as a blank device (all cells 255).
type fileEeprom struct {
	name  string
	cells []byte
	dirty bool
}

func loadEeprom(name string, size int) (*fileEeprom, error) {
	if size < 16 || size > 1<<16 {
		return nil, errors.Errorf("unsupported EEPROM size %d", size)
	}
	e := &fileEeprom{name: name, cells: make([]byte, size)}
	for i := range e.cells {
		e.cells[i] = 255
	}
	b, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return e, nil
		}
		return nil, errors.Wrap(err, "EEPROM image read failed")
	}
	if len(b) >= 16 && len(b) <= 1<<16 {
		// an existing image keeps its own size
		e.cells = b
		return e, nil
	}
	copy(e.cells, b)
	return e, nil
}

func (e *fileEeprom) flush() error {
	if !e.dirty {
		return nil
	}
	return errors.Wrap(os.WriteFile(e.name, e.cells, 0666), "EEPROM image write failed")
}

func (e *fileEeprom) Length() basic.Addr {
	return basic.Addr(len(e.cells))
}

func (e *fileEeprom) Read(i basic.Addr) byte {
	if int(i) >= len(e.cells) {
		return 255
	}
	return e.cells[i]
}

func (e *fileEeprom) Update(i basic.Addr, b byte) {
	if int(i) >= len(e.cells) || e.cells[i] == b {
		return
	}
	e.cells[i] = b
	e.dirty = true
}
