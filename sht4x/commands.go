// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"fmt"
	"time"
)

// Precision selects the repeatability of a measurement. Higher precision
// measurements take longer.
type Precision int

const (
	PrecisionLow Precision = iota
	PrecisionMedium
	PrecisionHigh
)

func (p Precision) String() string {
	switch p {
	case PrecisionLow:
		return "low"
	case PrecisionMedium:
		return "medium"
	case PrecisionHigh:
		return "high"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// HeaterPower represents a type for the heater power setting.
type HeaterPower int

const (
	// Power settings for the heater element.
	Power20mW HeaterPower = iota
	Power110mW
	Power200mW
)

func (p HeaterPower) String() string {
	switch p {
	case Power20mW:
		return "20mW"
	case Power110mW:
		return "110mW"
	case Power200mW:
		return "200mW"
	}
	return fmt.Sprintf("HeaterPower(%d)", int(p))
}

// HeaterDuration represents a duration for turning the heater on.
type HeaterDuration time.Duration

const (
	// Durations that you can turn the heater on for.
	Duration100ms HeaterDuration = HeaterDuration(100 * time.Millisecond)
	Duration1s    HeaterDuration = HeaterDuration(time.Second)
)

func (d HeaterDuration) String() string {
	return time.Duration(d).String()
}

// command is one entry of the device command table.
type command struct {
	code byte
	// Maximum execution time, rounded up from the datasheet's system timing
	// table.
	duration time.Duration
}

var (
	cmdMeasureHigh   = command{code: 0xfd, duration: 9 * time.Millisecond}
	cmdMeasureMedium = command{code: 0xf6, duration: 5 * time.Millisecond}
	cmdMeasureLow    = command{code: 0xe0, duration: 2 * time.Millisecond}

	cmdHeater200mW1s    = command{code: 0x39, duration: 1100 * time.Millisecond}
	cmdHeater200mW100ms = command{code: 0x32, duration: 110 * time.Millisecond}
	cmdHeater110mW1s    = command{code: 0x2f, duration: 1100 * time.Millisecond}
	cmdHeater110mW100ms = command{code: 0x24, duration: 110 * time.Millisecond}
	cmdHeater20mW1s     = command{code: 0x1e, duration: 1100 * time.Millisecond}
	cmdHeater20mW100ms  = command{code: 0x15, duration: 110 * time.Millisecond}

	// The datasheet gives no timing for the serial number, but reading it
	// immediately is NACKed.
	cmdReadSerialNumber = command{code: 0x89, duration: time.Millisecond}
	cmdSoftReset        = command{code: 0x94, duration: time.Millisecond}
)

func measureCommand(p Precision) (command, error) {
	switch p {
	case PrecisionLow:
		return cmdMeasureLow, nil
	case PrecisionMedium:
		return cmdMeasureMedium, nil
	case PrecisionHigh:
		return cmdMeasureHigh, nil
	}
	return command{}, fmt.Errorf("sht4x: %w %d", ErrInvalidPrecision, int(p))
}

func heaterCommand(power HeaterPower, duration HeaterDuration) (command, error) {
	switch duration {
	case Duration100ms:
		switch power {
		case Power20mW:
			return cmdHeater20mW100ms, nil
		case Power110mW:
			return cmdHeater110mW100ms, nil
		case Power200mW:
			return cmdHeater200mW100ms, nil
		}
	case Duration1s:
		switch power {
		case Power20mW:
			return cmdHeater20mW1s, nil
		case Power110mW:
			return cmdHeater110mW1s, nil
		case Power200mW:
			return cmdHeater200mW1s, nil
		}
	default:
		return command{}, fmt.Errorf("sht4x: %w duration %s", ErrInvalidHeater, duration)
	}
	return command{}, fmt.Errorf("sht4x: %w power %s", ErrInvalidHeater, power)
}
