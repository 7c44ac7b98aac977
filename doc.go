// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel is a container for accelerometer drivers.
//
// bma253 drives a Bosch BMA253 over I²C. cmd/bma253 polls one from a YAML
// configuration and prints its readings.
package accel
