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
	"time"

	"github.com/db47h/tinybas/basic"
)

// hostPins is the Pins collaborator for a hosted build: there is no
// hardware, so pin writes are dropped and reads return zero, but DELAY and
// MILLIS work against the wall clock.
type hostPins struct {
	start time.Time
}

func newHostPins() *hostPins {
	return &hostPins{start: time.Now()}
}

func (p *hostPins) PinMode(_, _ basic.Number)      {}
func (p *hostPins) DigitalWrite(_, _ basic.Number) {}

func (p *hostPins) DigitalRead(_ basic.Number) basic.Number {
	return 0
}

func (p *hostPins) AnalogWrite(_, _ basic.Number) {}

func (p *hostPins) AnalogRead(_ basic.Number) basic.Number {
	return 0
}

func (p *hostPins) Delay(ms basic.Number) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (p *hostPins) Tone(_, _, _ basic.Number) {}

func (p *hostPins) PulseIn(_, _, _ basic.Number) basic.Number {
	return 0
}

// Millis returns the time since startup in milliseconds, divided by scale.
func (p *hostPins) Millis(scale basic.Number) basic.Number {
	if scale == 0 {
		scale = 1
	}
	ms := time.Since(p.start).Milliseconds()
	return basic.Number(ms / int64(scale))
}
