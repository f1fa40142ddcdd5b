// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import "errors"

// Errors returned by the driver. Transport errors from the bus are wrapped,
// so errors.Is and errors.As reach them as well.
var (
	// ErrChecksum is returned when a response word fails its CRC8 check. The
	// whole response is discarded.
	ErrChecksum = errors.New("crc error")
	// ErrNoResponse is returned when the read retry budget is exhausted.
	ErrNoResponse = errors.New("no response")
	// ErrOverflow is returned when a fixed-point value can't be expressed in
	// milli units within 32 bits.
	ErrOverflow = errors.New("milli-unit overflow")

	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidHeater    = errors.New("invalid heater setting")
	ErrDestroyed        = errors.New("device destroyed")
)
