// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bma253 controls a Bosch BMA253 3-axis accelerometer over I²C.
//
// The driver verifies the chip ID, configures power mode, filter bandwidth,
// range and the orientation interrupt, then decodes acceleration in m/s² and
// the planar orientation reported by the chip's orientation engine.
//
// Readings can be pulled with Sense and SenseContinuous, or pushed to
// per-channel sinks by calling Update from a polling loop.
//
// # Datasheet
//
// https://www.bosch-sensortec.com/media/boschsensortec/downloads/datasheets/bst-bma253-ds000.pdf
package bma253
