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
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// dirFS implements basic.Filesystem over a host directory. File names are
// kept flat: no path separators, nothing outside the directory.
type dirFS string

func (d dirFS) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", errors.Errorf("bad file name %q", name)
	}
	return filepath.Join(string(d), name), nil
}

func (d dirFS) Open(name string) (io.ReadCloser, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	return f, errors.Wrap(err, "open failed")
}

func (d dirFS) Create(name string) (io.WriteCloser, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(p)
	return f, errors.Wrap(err, "create failed")
}

func (d dirFS) Remove(name string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	return errors.Wrap(os.Remove(p), "remove failed")
}

func (d dirFS) List() ([]string, error) {
	ents, err := os.ReadDir(string(d))
	if err != nil {
		return nil, errors.Wrap(err, "readdir failed")
	}
	var names []string
	for _, e := range ents {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
