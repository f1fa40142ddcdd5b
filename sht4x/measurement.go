// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Calibration of the transfer function, fixed by the device.
//
//	T  = -45 + 175 * count/65535
//	RH =  -6 + 125 * count/65535
const (
	temperatureOffset = -45
	temperatureSpan   = 175
	humidityOffset    = -6
	humiditySpan      = 125

	countDivisor = 65535
)

// SensorData is a measurement as raw sensor counts.
type SensorData struct {
	Temperature uint16
	Humidity    uint16
}

// Celsius converts the raw temperature count with floating point math.
func (s SensorData) Celsius() float64 {
	return temperatureOffset + temperatureSpan*(float64(s.Temperature)/countDivisor)
}

// PercentRH converts the raw humidity count with floating point math. The
// result is not clamped to 0…100.
func (s SensorData) PercentRH() float64 {
	return humidityOffset + humiditySpan*(float64(s.Humidity)/countDivisor)
}

// Measurement is a measurement in degrees Celsius and percent relative
// humidity.
type Measurement struct {
	Temperature Fixed
	Humidity    Fixed
}

// NewMeasurement converts raw sensor data. It is deterministic: the same
// counts always give the same bit pattern.
func NewMeasurement(raw SensorData) Measurement {
	return Measurement{
		Temperature: convert(raw.Temperature, temperatureOffset, temperatureSpan),
		Humidity:    convert(raw.Humidity, humidityOffset, humiditySpan),
	}
}

// convert computes offset + span*count/65535. The quotient is taken as an
// unsigned 16.16 value first, so a full scale count maps to exactly 1.
func convert(count uint16, offset, span int16) Fixed {
	q := (uint32(count) << fracBits) / countDivisor
	return FixedFromInt(offset) + Fixed(int32(span)*int32(q))
}

// TemperatureMilliCelsius returns the temperature in thousandths of a degree
// Celsius. It panics if the value is outside the range the device can
// report.
func (m Measurement) TemperatureMilliCelsius() int32 {
	return mustMilli(m.Temperature)
}

// HumidityMilliPercent returns the relative humidity in thousandths of a
// percent. It panics if the value is outside the range the device can
// report.
func (m Measurement) HumidityMilliPercent() int32 {
	return mustMilli(m.Humidity)
}

// Env returns the measurement in periph units. Pressure is left at 0.
func (m Measurement) Env() physic.Env {
	return physic.Env{
		Temperature: physic.Temperature(int64(m.Temperature)*int64(physic.Kelvin)>>fracBits) + physic.ZeroCelsius,
		Humidity:    physic.RelativeHumidity(int64(m.Humidity) * int64(physic.PercentRH) >> fracBits),
	}
}

func (m Measurement) String() string {
	return fmt.Sprintf("%s°C %s%%RH", m.Temperature, m.Humidity)
}
