// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// bma253 polls a BMA253 accelerometer and prints its readings.
//
// Usage:
//
//	bma253 [-v] <config.yaml>
//
// Example configuration:
//
//	bma253:
//	  bus: ""
//	  address: 0x18
//	  update_interval: 1s
//	  range: 2g
//	  bandwidth: 7.81hz
//	  acceleration_x:
//	    name: Acceleration X
//	  acceleration_y: {}
//	  acceleration_z: {}
//	  orientation: {}
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/accel/bma253"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "bma253: %s.\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	verbose := flag.Bool("v", false, "log every register read")
	flag.Parse()
	if flag.NArg() != 1 {
		return fmt.Errorf("usage: bma253 [-v] <config.yaml>")
	}

	cfg, err := Load(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	Normalize(cfg)

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(cfg.BMA253.Bus)
	if err != nil {
		return err
	}
	defer b.Close()

	opts := cfg.BMA253.Opts(NewConsole(nil))
	if *verbose {
		opts.Logf = log.Printf
	}
	dev, err := bma253.NewI2C(b, cfg.BMA253.Address, opts)
	if dev == nil {
		return err
	}
	if err != nil {
		log.Printf("%v", err)
	}
	dumpConfig(os.Stderr, dev, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	poll(ctx, dev, cfg.BMA253.Interval())
	if dev.Failed() {
		return bma253.ErrFailed
	}
	return nil
}

// dumpConfig prints the device configuration and its channels.
func dumpConfig(w io.Writer, dev *bma253.Dev, cfg *Config) {
	d := &cfg.BMA253
	fmt.Fprintf(w, "BMA253:\n")
	fmt.Fprintf(w, "  Address: %#02x\n", d.Address)
	if dev.Failed() {
		fmt.Fprintf(w, "  Communication with BMA253 failed!\n")
	}
	fmt.Fprintf(w, "  Update Interval: %s\n", d.Interval())
	fmt.Fprintf(w, "  Range: %s\n", d.Range)
	fmt.Fprintf(w, "  Bandwidth: %s\n", d.Bandwidth)
	for _, c := range d.channels() {
		if c.cfg != nil {
			fmt.Fprintf(w, "  %s: '%s'\n", c.title, c.cfg.Name)
		}
	}
}
