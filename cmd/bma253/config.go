// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GermanBionicSystems/accel/bma253"
)

const (
	defaultUpdateInterval = "60s"
	defaultRange          = "2g"
	defaultBandwidth      = "7.81hz"
	defaultDecimals       = 2
)

// Config is the top level of the configuration file.
type Config struct {
	BMA253 DeviceConfig `yaml:"bma253"`
}

// DeviceConfig describes one BMA253 and the channels it publishes.
type DeviceConfig struct {
	Bus            string `yaml:"bus"` // i2creg name, empty for the first bus
	Address        uint16 `yaml:"address"`
	UpdateInterval string `yaml:"update_interval"`
	Range          string `yaml:"range"`
	Bandwidth      string `yaml:"bandwidth"`

	// Channels, each optional.
	AccelerationX *SensorConfig `yaml:"acceleration_x"`
	AccelerationY *SensorConfig `yaml:"acceleration_y"`
	AccelerationZ *SensorConfig `yaml:"acceleration_z"`
	Orientation   *SensorConfig `yaml:"orientation"`
	Facing        *SensorConfig `yaml:"facing"`
}

// SensorConfig names a published channel.
type SensorConfig struct {
	Name             string `yaml:"name"`
	AccuracyDecimals *int   `yaml:"accuracy_decimals"`
}

var ranges = map[string]bma253.Range{
	"2g":  bma253.Range2G,
	"4g":  bma253.Range4G,
	"8g":  bma253.Range8G,
	"16g": bma253.Range16G,
}

var bandwidths = map[string]bma253.Bandwidth{
	"7.81hz":  bma253.BW7_81Hz,
	"15.63hz": bma253.BW15_63Hz,
	"31.25hz": bma253.BW31_25Hz,
	"62.5hz":  bma253.BW62_5Hz,
	"125hz":   bma253.BW125Hz,
	"250hz":   bma253.BW250Hz,
	"500hz":   bma253.BW500Hz,
	"1000hz":  bma253.BW1000Hz,
}

// Load reads and decodes a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a YAML configuration.
func Parse(b []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness. Empty fields are accepted and
// filled by Normalize. It does not mutate cfg.
func Validate(cfg *Config) error {
	d := &cfg.BMA253
	if d.Address != 0 && d.Address != bma253.DefaultAddress && d.Address != bma253.AlternateAddress {
		return fmt.Errorf("bma253: address %#x is not %#x or %#x", d.Address, bma253.DefaultAddress, bma253.AlternateAddress)
	}
	if d.UpdateInterval != "" {
		i, err := time.ParseDuration(d.UpdateInterval)
		if err != nil {
			return fmt.Errorf("bma253: update_interval: %w", err)
		}
		if i <= 0 {
			return fmt.Errorf("bma253: update_interval must be > 0, got %s", i)
		}
	}
	if d.Range != "" {
		if _, ok := ranges[strings.ToLower(d.Range)]; !ok {
			return fmt.Errorf("bma253: unknown range %q", d.Range)
		}
	}
	if d.Bandwidth != "" {
		if _, ok := bandwidths[strings.ToLower(d.Bandwidth)]; !ok {
			return fmt.Errorf("bma253: unknown bandwidth %q", d.Bandwidth)
		}
	}
	for _, s := range d.channels() {
		if s.cfg != nil && s.cfg.AccuracyDecimals != nil && (*s.cfg.AccuracyDecimals < 0 || *s.cfg.AccuracyDecimals > 6) {
			return fmt.Errorf("bma253: %s: accuracy_decimals must be within 0..6", s.key)
		}
	}
	return nil
}

// Normalize fills defaults. It must be called after Validate.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	d := &cfg.BMA253
	if d.Address == 0 {
		d.Address = bma253.DefaultAddress
	}
	if d.UpdateInterval == "" {
		d.UpdateInterval = defaultUpdateInterval
	}
	if d.Range == "" {
		d.Range = defaultRange
	}
	d.Range = strings.ToLower(d.Range)
	if d.Bandwidth == "" {
		d.Bandwidth = defaultBandwidth
	}
	d.Bandwidth = strings.ToLower(d.Bandwidth)
	for _, s := range d.channels() {
		if s.cfg == nil {
			continue
		}
		if s.cfg.Name == "" {
			s.cfg.Name = s.title
		}
		if s.cfg.AccuracyDecimals == nil {
			n := defaultDecimals
			if s.key == "orientation" || s.key == "facing" {
				n = 0
			}
			s.cfg.AccuracyDecimals = &n
		}
	}
}

type channelConfig struct {
	key   string
	title string
	cfg   *SensorConfig
}

func (d *DeviceConfig) channels() []channelConfig {
	return []channelConfig{
		{"acceleration_x", "Acceleration X", d.AccelerationX},
		{"acceleration_y", "Acceleration Y", d.AccelerationY},
		{"acceleration_z", "Acceleration Z", d.AccelerationZ},
		{"orientation", "Orientation", d.Orientation},
		{"facing", "Facing", d.Facing},
	}
}

// Interval returns the parsed update interval of a normalized config.
func (d *DeviceConfig) Interval() time.Duration {
	i, _ := time.ParseDuration(d.UpdateInterval)
	return i
}

// Opts builds the driver options of a normalized config, publishing the
// enabled channels to c.
func (d *DeviceConfig) Opts(c *Console) *bma253.Opts {
	opts := bma253.DefaultOpts
	opts.Range = ranges[d.Range]
	opts.Bandwidth = bandwidths[d.Bandwidth]
	fullScale := opts.Range.G() * bma253.GravityEarth
	if s := d.AccelerationX; s != nil {
		opts.AccelerationX = c.Acceleration(s.Name, *s.AccuracyDecimals, fullScale)
	}
	if s := d.AccelerationY; s != nil {
		opts.AccelerationY = c.Acceleration(s.Name, *s.AccuracyDecimals, fullScale)
	}
	if s := d.AccelerationZ; s != nil {
		opts.AccelerationZ = c.Acceleration(s.Name, *s.AccuracyDecimals, fullScale)
	}
	if s := d.Orientation; s != nil {
		opts.Orientation = c.Orientation(s.Name)
	}
	if s := d.Facing; s != nil {
		opts.Facing = c.Facing(s.Name)
	}
	return &opts
}
