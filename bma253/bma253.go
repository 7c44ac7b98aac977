// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bma253

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

// Orientation is the planar orientation code from the orientation engine.
type Orientation uint8

// Facing tells whether the chip's z axis points up or down.
type Facing uint8

const (
	PortraitUp Orientation = iota
	PortraitDown
	LandscapeLeft
	LandscapeRight
)

const (
	FaceUp Facing = iota
	FaceDown
)

func (o Orientation) String() string {
	switch o {
	case PortraitUp:
		return "portrait up"
	case PortraitDown:
		return "portrait down"
	case LandscapeLeft:
		return "landscape left"
	case LandscapeRight:
		return "landscape right"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

func (f Facing) String() string {
	if f == FaceDown {
		return "down"
	}
	return "up"
}

// Acceleration is the acceleration on the three axes, in m/s².
type Acceleration struct {
	X float32
	Y float32
	Z float32
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%.3fm/s² Y:%.3fm/s² Z:%.3fm/s²", a.X, a.Y, a.Z)
}

// Sample is one complete reading.
type Sample struct {
	Raw          [3]int16 // X, Y, Z counts as read from the chip
	Acceleration Acceleration
	Orientation  Orientation
	Facing       Facing
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %s face %s", s.Acceleration, s.Orientation, s.Facing)
}

// Sink receives values published by Update.
type Sink interface {
	Publish(v float32)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(v float32)

// Publish calls f(v).
func (f SinkFunc) Publish(v float32) {
	f(v)
}

// Opts holds the configuration written at setup and the sinks Update
// publishes to. A nil sink is skipped.
type Opts struct {
	PowerMode     PowerMode
	SleepDuration SleepDuration
	LowPowerMode  LowPowerMode // Only written when PowerMode is PowerLowPower.
	Bandwidth     Bandwidth
	Range         Range

	AccelerationX Sink
	AccelerationY Sink
	AccelerationZ Sink
	Orientation   Sink
	Facing        Sink // 0 for face up, 1 for face down.

	// Logf receives diagnostics. May be nil.
	Logf func(format string, args ...interface{})
}

// DefaultOpts is normal power mode, 7.81Hz bandwidth and ±2g range.
var DefaultOpts = Opts{
	PowerMode:     PowerNormal,
	SleepDuration: Sleep500us,
	LowPowerMode:  LowPower1,
	Bandwidth:     BW7_81Hz,
	Range:         Range2G,
}

func (o *Opts) validate() error {
	if !o.PowerMode.valid() {
		return fmt.Errorf("bma253: invalid power mode %#x", byte(o.PowerMode))
	}
	if !o.SleepDuration.valid() {
		return fmt.Errorf("bma253: invalid sleep duration %#x", byte(o.SleepDuration))
	}
	if !o.LowPowerMode.valid() {
		return fmt.Errorf("bma253: invalid low power mode %#x", byte(o.LowPowerMode))
	}
	if !o.Bandwidth.valid() {
		return fmt.Errorf("bma253: invalid bandwidth %#x", byte(o.Bandwidth))
	}
	if o.Range.G() == 0 {
		return fmt.Errorf("bma253: invalid range %#x", byte(o.Range))
	}
	return nil
}

// Dev is a handle to a BMA253.
type Dev struct {
	c    mmr.Dev8
	opts Opts

	mu   sync.Mutex
	stop chan struct{}

	failed  atomic.Bool
	warning atomic.Bool
}

// NewI2C returns a BMA253 on the given bus and address, and configures it.
// If opts is nil, DefaultOpts is used.
//
// When the chip ID doesn't match or a configuration write fails, both the
// Dev and the error are returned; the Dev then reports Failed and stays
// inert. Invalid opts return a nil Dev.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	d := &Dev{
		c: mmr.Dev8{
			Conn:  &i2c.Dev{Bus: b, Addr: addr},
			Order: binary.LittleEndian,
		},
		opts: *opts,
	}
	return d, d.setup()
}

type regWrite struct {
	reg byte
	val byte
}

func (d *Dev) setup() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, err := d.c.ReadUint8(regChipID)
	if err != nil || id != ChipID {
		d.logf("bma253: wrong chip ID %#x (err=%v)", id, err)
		d.failed.Store(true)
		return &ChipIDError{Got: id, Err: err}
	}

	writes := []regWrite{
		{regPMULPW, byte(d.opts.PowerMode) | byte(d.opts.SleepDuration)<<sleepDurationShift},
	}
	if d.opts.PowerMode == PowerLowPower {
		writes = append(writes, regWrite{regPMULowPower, byte(d.opts.LowPowerMode)})
	}
	writes = append(writes,
		regWrite{regPMUBW, byte(d.opts.Bandwidth)},
		regWrite{regPMURange, byte(d.opts.Range)},
		regWrite{regIntEn0, intEnOrient},
	)
	for _, w := range writes {
		if err := d.c.WriteUint8(w.reg, w.val); err != nil {
			d.logf("bma253: configuration write to %#02x failed: %v", w.reg, err)
			d.failed.Store(true)
			return &ConfigError{Register: w.reg, Err: err}
		}
	}
	return nil
}

// Failed reports whether setup failed. It never resets.
func (d *Dev) Failed() bool {
	return d.failed.Load()
}

// Warning reports whether the last Update failed to read the device.
func (d *Dev) Warning() bool {
	return d.warning.Load()
}

// Update reads the device once and publishes the results to the configured
// sinks. It is meant to be called periodically by a polling loop.
//
// If the acceleration read fails nothing is published. If the status read
// fails the accelerations are still published but the orientation is not.
// Either failure sets Warning until the next complete Update. Update does
// nothing on a failed device.
//
// Sinks are called with the device lock held and must not call back into
// the Dev, except for Failed and Warning.
func (d *Dev) Update() {
	if d.failed.Load() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, err := d.readRaw()
	if err != nil {
		d.logf("bma253: reading acceleration: %v", err)
		d.warning.Store(true)
		return
	}
	a := d.toAcceleration(raw)
	d.logf("bma253: Accel={x=%#x, y=%#x, z=%#x}", uint16(raw[0]), uint16(raw[1]), uint16(raw[2]))
	d.logf("bma253: Accel={x=%.3f m/s², y=%.3f m/s², z=%.3f m/s²}", a.X, a.Y, a.Z)
	publish(d.opts.AccelerationX, a.X)
	publish(d.opts.AccelerationY, a.Y)
	publish(d.opts.AccelerationZ, a.Z)

	status, err := d.c.ReadUint8(regIntStatus3)
	if err != nil {
		d.logf("bma253: reading int_status_3: %v", err)
		d.warning.Store(true)
		return
	}
	o, f := decodeOrientation(status)
	d.logf("bma253: z_orient: %d", f)
	d.logf("bma253: xy_orient: %d", o)
	publish(d.opts.Orientation, float32(o))
	publish(d.opts.Facing, float32(f))

	d.warning.Store(false)
}

// Sense reads acceleration and orientation into s.
func (d *Dev) Sense(s *Sample) error {
	if d.failed.Load() {
		return ErrFailed
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	raw, err := d.readRaw()
	if err != nil {
		return fmt.Errorf("bma253: reading acceleration: %w", err)
	}
	status, err := d.c.ReadUint8(regIntStatus3)
	if err != nil {
		return fmt.Errorf("bma253: reading orientation: %w", err)
	}
	s.Raw = raw
	s.Acceleration = d.toAcceleration(raw)
	s.Orientation, s.Facing = decodeOrientation(status)
	return nil
}

// SenseContinuous reads the device every interval and sends the samples on
// the returned channel. Samples are dropped while the channel is full and
// failed reads are skipped. Call Halt to stop; the channel is then closed.
//
// The interval can't be shorter than the update time of the configured
// bandwidth.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan Sample, error) {
	if d.failed.Load() {
		return nil, ErrFailed
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("bma253: SenseContinuous already running")
	}
	if ut := d.opts.Bandwidth.UpdateTime(); interval < ut {
		return nil, fmt.Errorf("bma253: interval %s is shorter than the %s update time", interval, ut)
	}
	d.stop = make(chan struct{})
	ch := make(chan Sample, 16)
	go d.senseContinuous(interval, ch, d.stop)
	return ch, nil
}

func (d *Dev) senseContinuous(interval time.Duration, ch chan<- Sample, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	defer close(ch)
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			var s Sample
			if err := d.Sense(&s); err != nil {
				d.logf("%v", err)
				continue
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}

// Halt stops a running SenseContinuous. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	return nil
}

// Range returns the configured full-scale range.
func (d *Dev) Range() Range {
	return d.opts.Range
}

// Precision returns the acceleration represented by one count at the
// configured range.
func (d *Dev) Precision(a *Acceleration) {
	lsb := countToAcceleration(1, d.opts.Range.G())
	a.X, a.Y, a.Z = lsb, lsb, lsb
}

func (d *Dev) String() string {
	return fmt.Sprintf("bma253{%s, %s, %s}", d.c.Conn, d.opts.Range, d.opts.Bandwidth)
}

// readRaw reads the three little-endian axis counts starting at X LSB.
func (d *Dev) readRaw() ([3]int16, error) {
	var raw [3]int16
	err := d.c.ReadStruct(regXLSB, &raw)
	return raw, err
}

func (d *Dev) toAcceleration(raw [3]int16) Acceleration {
	g := d.opts.Range.G()
	return Acceleration{
		X: countToAcceleration(raw[0], g),
		Y: countToAcceleration(raw[1], g),
		Z: countToAcceleration(raw[2], g),
	}
}

func (d *Dev) logf(format string, args ...interface{}) {
	if d.opts.Logf != nil {
		d.opts.Logf(format, args...)
	}
}

// countToAcceleration converts a raw count to m/s² for a range of ±g. The
// operations are done in float32 in this order so ±2g matches
// count / 32767 * 2 * 9.80665 exactly.
func countToAcceleration(count int16, g float32) float32 {
	return float32(count) / math.MaxInt16 * g * GravityEarth
}

// decodeOrientation extracts the planar orientation (bits 5..4) and the z
// orientation (bit 6) from INT_STATUS_3.
func decodeOrientation(status byte) (Orientation, Facing) {
	return Orientation((status >> orientXYShift) & orientXYMask), Facing((status >> orientZShift) & orientZMask)
}

func publish(s Sink, v float32) {
	if s != nil {
		s.Publish(v)
	}
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
