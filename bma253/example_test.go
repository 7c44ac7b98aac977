//go:build examples
// +build examples

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bma253_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/accel/bma253"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := bma253.NewI2C(b, bma253.DefaultAddress, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)

	var s bma253.Sample
	if err := d.Sense(&s); err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
}

func ExampleDev_SenseContinuous() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := bma253.NewI2C(b, bma253.DefaultAddress, &bma253.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}

	ch, err := d.SenseContinuous(100 * time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}
	// stop after 3 seconds
	time.AfterFunc(3*time.Second, func() { _ = d.Halt() })
	for s := range ch {
		fmt.Println(s)
	}
}

func ExampleDev_Update() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	opts := bma253.DefaultOpts
	opts.Orientation = bma253.SinkFunc(func(v float32) {
		fmt.Println("orientation:", bma253.Orientation(v))
	})
	opts.Logf = log.Printf
	d, err := bma253.NewI2C(b, bma253.DefaultAddress, &opts)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		d.Update()
		time.Sleep(time.Second)
	}
}
