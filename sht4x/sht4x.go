// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirhcel/sht4x/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Address is one of the two I²C addresses used by the family.
type Address uint16

const (
	Address0x44 Address = 0x44
	// Used by the SHT40-BD1B.
	Address0x45 Address = 0x45

	DefaultAddress = Address0x44
)

const minSampleDuration = 10 * time.Millisecond

// Opts holds the configuration options for the device.
type Opts struct {
	// Address of the device. 0 selects DefaultAddress.
	Address Address
	// Delay waits for commands to complete. nil selects SleepDelay.
	Delay Delayer
	// ReadRetries is the number of extra read attempts made when the device
	// doesn't acknowledge the read after the command's execution time. 0
	// reads exactly once.
	ReadRetries int
	// RetryInterval is the wait between read attempts. Default is 1ms.
	RetryInterval time.Duration
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Address:       DefaultAddress,
	Delay:         SleepDelay{},
	RetryInterval: time.Millisecond,
}

// Dev represents a SHT-4X series temperature/humidity sensor
type Dev struct {
	d    *i2c.Dev
	opts Opts
	// mu serializes transactions on this device.
	mu sync.Mutex

	// haltMu guards the current SenseContinuous run. done is closed when
	// that run's goroutine has returned.
	haltMu   sync.Mutex
	shutdown chan struct{}
	done     chan struct{}
}

// New returns a driver for the sensor on bus. The device is not touched. The
// Opts can be nil.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Address == 0 {
		o.Address = DefaultAddress
	}
	if o.Address != Address0x44 && o.Address != Address0x45 {
		return nil, fmt.Errorf("sht4x: %w 0x%02x", ErrInvalidAddress, uint16(o.Address))
	}
	if o.Delay == nil {
		o.Delay = SleepDelay{}
	}
	if o.ReadRetries < 0 {
		o.ReadRetries = 0
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = time.Millisecond
	}
	return &Dev{d: &i2c.Dev{Bus: bus, Addr: uint16(o.Address)}, opts: o}, nil
}

// Destroy stops continuous sensing and returns the bus. Every later call on
// dev returns ErrDestroyed.
func (dev *Dev) Destroy() i2c.Bus {
	_ = dev.Halt()
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.d == nil {
		return nil
	}
	bus := dev.d.Bus
	dev.d = nil
	return bus
}

// Measure performs a measurement at the requested precision.
func (dev *Dev) Measure(ctx context.Context, p Precision) (Measurement, error) {
	raw, err := dev.MeasureRaw(ctx, p)
	if err != nil {
		return Measurement{}, err
	}
	return NewMeasurement(raw), nil
}

// MeasureRaw performs a measurement and returns the raw sensor counts.
func (dev *Dev) MeasureRaw(ctx context.Context, p Precision) (SensorData, error) {
	cmd, err := measureCommand(p)
	if err != nil {
		return SensorData{}, err
	}
	r, err := dev.query(ctx, cmd)
	if err != nil {
		return SensorData{}, fmt.Errorf("sht4x: error measuring: %w", err)
	}
	return sensorDataFromResponse(r), nil
}

// HeatAndMeasure turns the heater on at power for duration, then returns
// the measurement taken at the end of the heating period. The heater turns
// itself off. Refer to section 4.9 of the datasheet.
func (dev *Dev) HeatAndMeasure(ctx context.Context, power HeaterPower, duration HeaterDuration) (Measurement, error) {
	raw, err := dev.HeatAndMeasureRaw(ctx, power, duration)
	if err != nil {
		return Measurement{}, err
	}
	return NewMeasurement(raw), nil
}

// HeatAndMeasureRaw is HeatAndMeasure returning raw sensor counts.
func (dev *Dev) HeatAndMeasureRaw(ctx context.Context, power HeaterPower, duration HeaterDuration) (SensorData, error) {
	cmd, err := heaterCommand(power, duration)
	if err != nil {
		return SensorData{}, err
	}
	r, err := dev.query(ctx, cmd)
	if err != nil {
		return SensorData{}, fmt.Errorf("sht4x: error setting heater: %w", err)
	}
	return sensorDataFromResponse(r), nil
}

// SerialNumber returns the device serial number set at the factory.
func (dev *Dev) SerialNumber(ctx context.Context) (uint32, error) {
	r, err := dev.query(ctx, cmdReadSerialNumber)
	if err != nil {
		return 0, fmt.Errorf("sht4x: error reading serial number: %w", err)
	}
	return serialNumberFromResponse(r), nil
}

// SoftReset issues a soft-reset to the device.
func (dev *Dev) SoftReset(ctx context.Context) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.execute(ctx, cmdSoftReset, nil); err != nil {
		return fmt.Errorf("sht4x: error resetting: %w", err)
	}
	return nil
}

// Sense reads temperature and humidity at high precision. Implements
// physic.SenseEnv. e is left untouched on error.
func (dev *Dev) Sense(e *physic.Env) error {
	m, err := dev.Measure(context.Background(), PrecisionHigh)
	if err != nil {
		return err
	}
	env := m.Env()
	e.Temperature = env.Temperature
	e.Humidity = env.Humidity
	e.Pressure = 0
	return nil
}

// SenseContinuous continuously reads from the device and sends the output
// to the returned channel. To terminate the read, call Dev.Halt()
//
// Failed reads are skipped without notice, so a device that keeps failing
// looks like one that is slow. Use Measure directly when the errors matter.
func (dev *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSampleDuration {
		return nil, errors.New("sht4x: sample interval is < device sample rate")
	}
	dev.haltMu.Lock()
	defer dev.haltMu.Unlock()
	if dev.shutdown != nil {
		return nil, errors.New("sht4x: SenseContinuous already running")
	}
	shutdown := make(chan struct{})
	done := make(chan struct{})
	dev.shutdown = shutdown
	dev.done = done
	ch := make(chan physic.Env, 16)
	go func() {
		defer close(done)
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				env := physic.Env{}
				if err := dev.Sense(&env); err != nil {
					continue
				}
				select {
				case ch <- env:
				case <-shutdown:
					return
				}
			}
		}
	}()
	return ch, nil
}

// Precision returns the smallest change in readings the device can produce.
// Implements physic.SenseEnv.
func (dev *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / 100
	e.Humidity = physic.PercentRH / 100
	e.Pressure = 0
}

// Halt terminates a SenseContinuous command if running and waits for it to
// return. Implements conn.Resource
func (dev *Dev) Halt() error {
	dev.haltMu.Lock()
	shutdown, done := dev.shutdown, dev.done
	dev.shutdown, dev.done = nil, nil
	dev.haltMu.Unlock()
	if shutdown == nil {
		return nil
	}
	close(shutdown)
	<-done
	return nil
}

// String returns a string representation of the device.
func (dev *Dev) String() string {
	return fmt.Sprintf("sht4x(%#x)", uint16(dev.opts.Address))
}

func (dev *Dev) query(ctx context.Context, cmd command) (*[responseLen]byte, error) {
	r := new([responseLen]byte)
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.execute(ctx, cmd, r); err != nil {
		return nil, err
	}
	return r, nil
}

// execute runs one command cycle: write the command byte, wait for it to
// complete, and read the response into r if r isn't nil. dev.mu must be
// held.
//
// If you try to read immediately after a write with this device, you'll get
// an io error.
func (dev *Dev) execute(ctx context.Context, cmd command, r *[responseLen]byte) error {
	if dev.d == nil {
		return ErrDestroyed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := dev.d.Tx([]byte{cmd.code}, nil); err != nil {
		return fmt.Errorf("error transmitting 0x%02x: %w", cmd.code, err)
	}
	if err := dev.opts.Delay.Delay(ctx, cmd.duration); err != nil {
		return fmt.Errorf("interrupted waiting for 0x%02x: %w", cmd.code, err)
	}
	if r == nil {
		return nil
	}
	return dev.readResponse(ctx, r)
}

// readResponse reads one response and verifies both of its words. Every
// response has the same format: 2 bytes of data, a CRC, 2 bytes of data, and
// a CRC.
func (dev *Dev) readResponse(ctx context.Context, r *[responseLen]byte) error {
	err := dev.d.Tx(nil, r[:])
	attempts := 1
	for ; err != nil && attempts <= dev.opts.ReadRetries; attempts++ {
		if derr := dev.opts.Delay.Delay(ctx, dev.opts.RetryInterval); derr != nil {
			return fmt.Errorf("interrupted waiting to retry read: %w", derr)
		}
		err = dev.d.Tx(nil, r[:])
	}
	if err != nil {
		if dev.opts.ReadRetries > 0 {
			return fmt.Errorf("%w after %d attempts: %w", ErrNoResponse, attempts, err)
		}
		return fmt.Errorf("error reading: %w", err)
	}
	if w := common.CheckWords(r[:]); w >= 0 {
		return fmt.Errorf("%w in word %d", ErrChecksum, w)
	}
	return nil
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
