// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/accel/bma253"
)

const sample = `
bma253:
  address: 0x19
  update_interval: 250ms
  range: 4G
  bandwidth: 62.5Hz
  acceleration_x:
    name: Tilt X
    accuracy_decimals: 3
  acceleration_z: {}
  orientation: {}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bma253.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	Normalize(cfg)

	three, two, zero := 3, 2, 0
	want := DeviceConfig{
		Address:        bma253.AlternateAddress,
		UpdateInterval: "250ms",
		Range:          "4g",
		Bandwidth:      "62.5hz",
		AccelerationX:  &SensorConfig{Name: "Tilt X", AccuracyDecimals: &three},
		AccelerationZ:  &SensorConfig{Name: "Acceleration Z", AccuracyDecimals: &two},
		Orientation:    &SensorConfig{Name: "Orientation", AccuracyDecimals: &zero},
	}
	if diff := cmp.Diff(want, cfg.BMA253); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if i := cfg.BMA253.Interval(); i != 250*time.Millisecond {
		t.Errorf("Interval()=%s", i)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error")
	}
	if _, err := Parse([]byte("bma253: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg, err := Parse([]byte("bma253: {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	Normalize(cfg)
	d := cfg.BMA253
	if d.Address != bma253.DefaultAddress || d.Interval() != time.Minute || d.Range != "2g" || d.Bandwidth != "7.81hz" {
		t.Errorf("unexpected defaults %#v", d)
	}
	Normalize(nil)
}

func TestValidate(t *testing.T) {
	neg := -1
	for _, tc := range []struct {
		name string
		d    DeviceConfig
		err  string
	}{
		{"address", DeviceConfig{Address: 0x53}, "address"},
		{"interval", DeviceConfig{UpdateInterval: "soon"}, "update_interval"},
		{"interval zero", DeviceConfig{UpdateInterval: "0s"}, "update_interval"},
		{"range", DeviceConfig{Range: "3g"}, "range"},
		{"bandwidth", DeviceConfig{Bandwidth: "8hz"}, "bandwidth"},
		{"decimals", DeviceConfig{AccelerationY: &SensorConfig{AccuracyDecimals: &neg}}, "acceleration_y"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&Config{BMA253: tc.d})
			if err == nil || !strings.Contains(err.Error(), tc.err) {
				t.Errorf("Validate()=%v expected an error about %s", err, tc.err)
			}
		})
	}
}

func TestOpts(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	Normalize(cfg)
	var buf bytes.Buffer
	opts := cfg.BMA253.Opts(newConsole(&buf, nil))
	if opts.Range != bma253.Range4G || opts.Bandwidth != bma253.BW62_5Hz {
		t.Errorf("range=%s bandwidth=%s", opts.Range, opts.Bandwidth)
	}
	if opts.AccelerationX == nil || opts.AccelerationY != nil || opts.AccelerationZ == nil || opts.Orientation == nil || opts.Facing != nil {
		t.Errorf("unexpected sinks %#v", opts)
	}
	opts.AccelerationX.Publish(1.23456)
	if !strings.Contains(buf.String(), "Tilt X: 1.235 m/s²") {
		t.Errorf("output %q", buf.String())
	}
}
