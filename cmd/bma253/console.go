// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/GermanBionicSystems/accel/bma253"
)

// Console prints published values to a terminal, one line per value, led
// by a colored block.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
}

// NewConsole returns a Console writing to stdout. A nil palette selects
// ansi256.Default.
func NewConsole(p *ansi256.Palette) *Console {
	return newConsole(colorable.NewColorableStdout(), p)
}

func newConsole(w io.Writer, p *ansi256.Palette) *Console {
	if p == nil {
		p = ansi256.Default
	}
	return &Console{w: w, palette: *p}
}

// orientationColors is indexed by bma253.Orientation.
var orientationColors = [...]color.NRGBA{
	{0x00, 0xc0, 0x00, 0xff},
	{0xc0, 0x00, 0x00, 0xff},
	{0x00, 0x60, 0xff, 0xff},
	{0xff, 0xc0, 0x00, 0xff},
}

// Acceleration returns a sink for an acceleration channel. The block goes
// from blue at -fullScale to red at +fullScale.
func (c *Console) Acceleration(name string, decimals int, fullScale float32) bma253.Sink {
	return bma253.SinkFunc(func(v float32) {
		c.print(accelerationColor(v, fullScale), "%s: %.*f m/s²", name, decimals, v)
	})
}

// Orientation returns a sink for the planar orientation channel.
func (c *Console) Orientation(name string) bma253.Sink {
	return bma253.SinkFunc(func(v float32) {
		o := bma253.Orientation(v)
		col := color.NRGBA{0x80, 0x80, 0x80, 0xff}
		if int(o) < len(orientationColors) {
			col = orientationColors[o]
		}
		c.print(col, "%s: %d (%s)", name, o, o)
	})
}

// Facing returns a sink for the face up/down channel.
func (c *Console) Facing(name string) bma253.Sink {
	return bma253.SinkFunc(func(v float32) {
		f := bma253.Facing(v)
		col := color.NRGBA{0xff, 0xff, 0xff, 0xff}
		if f == bma253.FaceDown {
			col = color.NRGBA{0x40, 0x40, 0x40, 0xff}
		}
		c.print(col, "%s: %d (%s)", name, f, f)
	})
}

func (c *Console) print(col color.NRGBA, format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Reuse one buffer so each line is a single write.
	c.buf.Reset()
	_, _ = c.buf.WriteString("\033[0m")
	_, _ = c.buf.WriteString(c.palette.Block(col))
	_, _ = c.buf.WriteString("\033[0m ")
	_, _ = fmt.Fprintf(&c.buf, format, args...)
	_ = c.buf.WriteByte('\n')
	_, _ = c.buf.WriteTo(c.w)
}

func accelerationColor(v, fullScale float32) color.NRGBA {
	if fullScale <= 0 {
		return color.NRGBA{0x80, 0x80, 0x80, 0xff}
	}
	t := (v/fullScale + 1) / 2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.NRGBA{byte(255 * t), 0, byte(255 * (1 - t)), 0xff}
}
