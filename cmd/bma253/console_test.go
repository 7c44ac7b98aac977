// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/accel/bma253"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := newConsole(&buf, nil)
	c.Acceleration("Acceleration Z", 2, 2*bma253.GravityEarth).Publish(9.80665)
	c.Orientation("Orientation").Publish(float32(bma253.LandscapeLeft))
	c.Facing("Facing").Publish(float32(bma253.FaceDown))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	for i, want := range []string{
		"Acceleration Z: 9.81 m/s²",
		"Orientation: 2 (landscape left)",
		"Facing: 1 (down)",
	} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d=%q expected suffix %q", i, lines[i], want)
		}
		if !strings.HasPrefix(lines[i], "\033[0m") {
			t.Errorf("line %d=%q doesn't reset attributes", i, lines[i])
		}
	}
}

func TestAccelerationColor(t *testing.T) {
	if c := accelerationColor(-20, 19.6133); c.R != 0 || c.B != 255 {
		t.Errorf("negative full scale=%v", c)
	}
	if c := accelerationColor(20, 19.6133); c.R != 255 || c.B != 0 {
		t.Errorf("positive full scale=%v", c)
	}
	if c := accelerationColor(1, 0); c.R != 0x80 {
		t.Errorf("no scale=%v", c)
	}
}
