// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bma253

import (
	"errors"
	"fmt"
)

// ErrFailed is returned by operations on a device whose setup failed.
var ErrFailed = errors.New("bma253: device failed setup")

// ChipIDError is returned when the chip ID register can't be read or doesn't
// hold ChipID.
type ChipIDError struct {
	Got byte
	Err error
}

func (e *ChipIDError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bma253: reading chip ID: %v", e.Err)
	}
	return fmt.Sprintf("bma253: wrong chip ID %#x, expected %#x", e.Got, ChipID)
}

func (e *ChipIDError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when a configuration register write fails during
// setup.
type ConfigError struct {
	Register byte
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bma253: writing register %#02x: %v", e.Register, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
