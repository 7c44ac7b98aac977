// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bma253

import (
	"fmt"
	"time"
)

// PowerMode selects the main power mode, bits 7..5 of PMU_LPW.
type PowerMode byte

// SleepDuration is the sleep phase length used in low-power and suspend
// cycling, bits 4..1 of PMU_LPW.
type SleepDuration byte

// LowPowerMode selects between the two low-power sampling schemes.
type LowPowerMode byte

// Bandwidth is the cutoff frequency of the on-chip low-pass filter.
type Bandwidth byte

// Range is the full-scale measurement range.
type Range byte

const (
	// DefaultAddress is the I²C address with SDO pulled low.
	DefaultAddress uint16 = 0x18
	// AlternateAddress is the I²C address with SDO pulled high.
	AlternateAddress uint16 = 0x19

	// ChipID is the value of the chip ID register on a BMA253.
	ChipID byte = 0b11111010

	// GravityEarth is standard gravity in m/s².
	GravityEarth float32 = 9.80665
)

// Register map.
const (
	regChipID      byte = 0x00
	regXLSB        byte = 0x02
	regXMSB        byte = 0x03
	regYLSB        byte = 0x04
	regYMSB        byte = 0x05
	regZLSB        byte = 0x06
	regZMSB        byte = 0x07
	regIntStatus3  byte = 0x0C
	regPMURange    byte = 0x0F
	regPMUBW       byte = 0x10
	regPMULPW      byte = 0x11
	regPMULowPower byte = 0x12
	regIntEn0      byte = 0x16
)

const (
	// INT_EN_0 bit 6 enables the orientation change interrupt.
	intEnOrient byte = 0b01000000

	sleepDurationShift = 1

	// INT_STATUS_3: 0b0ZXY0000.
	orientXYShift      = 4
	orientXYMask  byte = 0x03
	orientZShift       = 6
	orientZMask   byte = 0x01
)

const (
	PowerNormal      PowerMode = 0b00000000
	PowerDeepSuspend PowerMode = 0b00100000
	PowerLowPower    PowerMode = 0b01000000
	PowerSuspend     PowerMode = 0b10000000
)

const (
	Sleep500us SleepDuration = 0b0000
	Sleep1ms   SleepDuration = 0b0110
	Sleep2ms   SleepDuration = 0b0111
	Sleep4ms   SleepDuration = 0b1000
	Sleep6ms   SleepDuration = 0b1001
	Sleep10ms  SleepDuration = 0b1010
	Sleep25ms  SleepDuration = 0b1011
	Sleep50ms  SleepDuration = 0b1100
	Sleep100ms SleepDuration = 0b1101
	Sleep500ms SleepDuration = 0b1110
	Sleep1s    SleepDuration = 0b1111
)

const (
	LowPower1 LowPowerMode = 0b00000000
	LowPower2 LowPowerMode = 0b01000000
)

const (
	BW7_81Hz  Bandwidth = 0b1000
	BW15_63Hz Bandwidth = 0b1001
	BW31_25Hz Bandwidth = 0b1010
	BW62_5Hz  Bandwidth = 0b1011
	BW125Hz   Bandwidth = 0b1100
	BW250Hz   Bandwidth = 0b1101
	BW500Hz   Bandwidth = 0b1110
	BW1000Hz  Bandwidth = 0b1111
)

const (
	Range2G  Range = 0b0011
	Range4G  Range = 0b0101
	Range8G  Range = 0b1000
	Range16G Range = 0b1100
)

func (p PowerMode) valid() bool {
	switch p {
	case PowerNormal, PowerDeepSuspend, PowerLowPower, PowerSuspend:
		return true
	}
	return false
}

func (p PowerMode) String() string {
	switch p {
	case PowerNormal:
		return "normal"
	case PowerDeepSuspend:
		return "deep suspend"
	case PowerLowPower:
		return "low power"
	case PowerSuspend:
		return "suspend"
	}
	return fmt.Sprintf("PowerMode(%#x)", byte(p))
}

func (s SleepDuration) valid() bool {
	return s == Sleep500us || (s >= Sleep1ms && s <= Sleep1s)
}

// Duration returns the sleep phase length.
func (s SleepDuration) Duration() time.Duration {
	switch s {
	case Sleep1ms:
		return time.Millisecond
	case Sleep2ms:
		return 2 * time.Millisecond
	case Sleep4ms:
		return 4 * time.Millisecond
	case Sleep6ms:
		return 6 * time.Millisecond
	case Sleep10ms:
		return 10 * time.Millisecond
	case Sleep25ms:
		return 25 * time.Millisecond
	case Sleep50ms:
		return 50 * time.Millisecond
	case Sleep100ms:
		return 100 * time.Millisecond
	case Sleep500ms:
		return 500 * time.Millisecond
	case Sleep1s:
		return time.Second
	}
	return 500 * time.Microsecond
}

func (l LowPowerMode) valid() bool {
	return l == LowPower1 || l == LowPower2
}

func (b Bandwidth) valid() bool {
	return b >= BW7_81Hz && b <= BW1000Hz
}

// UpdateTime returns the interval between two new samples at this bandwidth.
func (b Bandwidth) UpdateTime() time.Duration {
	if !b.valid() {
		return 0
	}
	// 7.81Hz updates every 64ms, each step halves it.
	return (64 * time.Millisecond) >> (b - BW7_81Hz)
}

func (b Bandwidth) String() string {
	switch b {
	case BW7_81Hz:
		return "7.81Hz"
	case BW15_63Hz:
		return "15.63Hz"
	case BW31_25Hz:
		return "31.25Hz"
	case BW62_5Hz:
		return "62.5Hz"
	case BW125Hz:
		return "125Hz"
	case BW250Hz:
		return "250Hz"
	case BW500Hz:
		return "500Hz"
	case BW1000Hz:
		return "1000Hz"
	}
	return fmt.Sprintf("Bandwidth(%#x)", byte(b))
}

// G returns the full scale of the range as a multiple of earth gravity, or 0
// for an unknown range.
func (r Range) G() float32 {
	switch r {
	case Range2G:
		return 2
	case Range4G:
		return 4
	case Range8G:
		return 8
	case Range16G:
		return 16
	}
	return 0
}

func (r Range) String() string {
	if g := r.G(); g != 0 {
		return fmt.Sprintf("±%gg", g)
	}
	return fmt.Sprintf("Range(%#x)", byte(r))
}
