// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"math"
	"strconv"
)

// Fixed is a signed fixed-point number with 16 integer and 16 fractional
// bits.
type Fixed int32

const fracBits = 16

const (
	// MinFixed and MaxFixed are the extremes of the representation. They are
	// never produced from device data.
	MinFixed Fixed = math.MinInt32
	MaxFixed Fixed = math.MaxInt32
)

// FixedFromInt returns i as a Fixed.
func FixedFromInt(i int16) Fixed {
	return Fixed(int32(i) << fracBits)
}

// Float64 returns f as a float64. The conversion is exact.
func (f Fixed) Float64() float64 {
	return float64(f) / (1 << fracBits)
}

// Milli returns f*1000 rounded towards negative infinity.
//
// The value is pre-scaled to 14 fractional bits so the multiplication fits
// in 32 bits, as it would on a microcontroller. Magnitudes above ~131 can't be
// represented that way and return ErrOverflow.
func (f Fixed) Milli() (int32, error) {
	v := int64(int32(f) >> 2)
	p := v * 1000
	if p > math.MaxInt32 || p < math.MinInt32 {
		return 0, ErrOverflow
	}
	return int32(p) >> 14, nil
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// mustMilli panics when f is outside the range reachable from device data.
// That only happens when a caller builds a Measurement by hand.
func mustMilli(f Fixed) int32 {
	m, err := f.Milli()
	if err != nil {
		panic("sht4x: " + f.String() + ": " + err.Error())
	}
	return m
}
