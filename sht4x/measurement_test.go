// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"errors"
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

var (
	dataZeroZero = SensorData{Temperature: 0, Humidity: 0}
	dataMaxMax   = SensorData{Temperature: math.MaxUint16, Humidity: math.MaxUint16}

	measurementMinMin = Measurement{Temperature: MinFixed, Humidity: MinFixed}
	measurementMaxMax = Measurement{Temperature: MaxFixed, Humidity: MaxFixed}
)

func TestFromMinData(t *testing.T) {
	m := NewMeasurement(dataZeroZero)
	if m.Temperature != FixedFromInt(-45) {
		t.Errorf("temperature %s expected -45", m.Temperature)
	}
	if m.Humidity != FixedFromInt(-6) {
		t.Errorf("humidity %s expected -6", m.Humidity)
	}
}

func TestFromMaxData(t *testing.T) {
	m := NewMeasurement(dataMaxMax)
	if m.Temperature != FixedFromInt(-45+175) {
		t.Errorf("temperature %s expected 130", m.Temperature)
	}
	if m.Humidity != FixedFromInt(-6+125) {
		t.Errorf("humidity %s expected 119", m.Humidity)
	}
}

func TestMillis(t *testing.T) {
	var tests = []struct {
		name        string
		m           Measurement
		temperature int32
		humidity    int32
	}{
		{"min data", NewMeasurement(dataZeroZero), -45000, -6000},
		{"max data", NewMeasurement(dataMaxMax), -45000 + 175000, -6000 + 125000},
		{"zero", Measurement{}, 0, 0},
		{"midscale", NewMeasurement(SensorData{Temperature: 0x8000, Humidity: 0x8000}), 42500, 56500},
		{"below zero", NewMeasurement(SensorData{Temperature: 0x3e80, Humidity: 0x3e80}), -2276, 24517},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.m.TemperatureMilliCelsius(); got != test.temperature {
				t.Errorf("TemperatureMilliCelsius()=%d expected %d", got, test.temperature)
			}
			if got := test.m.HumidityMilliPercent(); got != test.humidity {
				t.Errorf("HumidityMilliPercent()=%d expected %d", got, test.humidity)
			}
		})
	}
}

func mustPanic(t *testing.T, name string, f func() int32) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	v := f()
	t.Errorf("%s returned %d", name, v)
}

func TestMillisOverflow(t *testing.T) {
	mustPanic(t, "min TemperatureMilliCelsius", measurementMinMin.TemperatureMilliCelsius)
	mustPanic(t, "min HumidityMilliPercent", measurementMinMin.HumidityMilliPercent)
	mustPanic(t, "max TemperatureMilliCelsius", measurementMaxMax.TemperatureMilliCelsius)
	mustPanic(t, "max HumidityMilliPercent", measurementMaxMax.HumidityMilliPercent)
}

// Every count the device can return converts without overflow, and the fixed
// and float paths agree to within the fixed-point resolution.
func TestConversionRange(t *testing.T) {
	const tolerance = 175.0 / (1 << fracBits)
	for count := 0; count <= math.MaxUint16; count++ {
		raw := SensorData{Temperature: uint16(count), Humidity: uint16(count)}
		m := NewMeasurement(raw)
		if _, err := m.Temperature.Milli(); err != nil {
			t.Fatalf("count %d: %v", count, err)
		}
		if _, err := m.Humidity.Milli(); err != nil {
			t.Fatalf("count %d: %v", count, err)
		}
		if d := math.Abs(m.Temperature.Float64() - raw.Celsius()); d > tolerance {
			t.Fatalf("count %d: fixed %s float %f", count, m.Temperature, raw.Celsius())
		}
		if d := math.Abs(m.Humidity.Float64() - raw.PercentRH()); d > tolerance {
			t.Fatalf("count %d: fixed %s float %f", count, m.Humidity, raw.PercentRH())
		}
		if m != NewMeasurement(raw) {
			t.Fatalf("count %d: conversion isn't deterministic", count)
		}
	}
}

func TestFloat(t *testing.T) {
	if v := dataZeroZero.Celsius(); v != -45 {
		t.Errorf("Celsius()=%f expected -45", v)
	}
	if v := dataZeroZero.PercentRH(); v != -6 {
		t.Errorf("PercentRH()=%f expected -6", v)
	}
	if v := dataMaxMax.Celsius(); v != 130 {
		t.Errorf("Celsius()=%f expected 130", v)
	}
	// Humidity isn't clamped.
	if v := dataMaxMax.PercentRH(); v != 119 {
		t.Errorf("PercentRH()=%f expected 119", v)
	}
}

func TestEnv(t *testing.T) {
	env := NewMeasurement(dataZeroZero).Env()
	if env.Temperature != physic.ZeroCelsius-45*physic.Kelvin {
		t.Errorf("temperature %s expected -45°C", env.Temperature)
	}
	if env.Humidity != -6*physic.PercentRH {
		t.Errorf("humidity %s expected -6%%rH", env.Humidity)
	}
	env = NewMeasurement(dataMaxMax).Env()
	if env.Temperature != physic.ZeroCelsius+130*physic.Kelvin {
		t.Errorf("temperature %s expected 130°C", env.Temperature)
	}
	if env.Humidity != 119*physic.PercentRH {
		t.Errorf("humidity %s expected 119%%rH", env.Humidity)
	}
}

func TestMeasurementString(t *testing.T) {
	m := NewMeasurement(SensorData{Temperature: 0x8000, Humidity: 0x8000})
	if s := m.String(); s != "42.5°C 56.5%RH" {
		t.Errorf("String()=%q", s)
	}
}

func TestFixedMilli(t *testing.T) {
	if _, err := MaxFixed.Milli(); !errors.Is(err, ErrOverflow) {
		t.Errorf("MaxFixed.Milli() returned %v", err)
	}
	if _, err := MinFixed.Milli(); !errors.Is(err, ErrOverflow) {
		t.Errorf("MinFixed.Milli() returned %v", err)
	}
	// Largest magnitude that still fits.
	if v, err := FixedFromInt(131).Milli(); err != nil || v != 131000 {
		t.Errorf("131.Milli()=%d, %v", v, err)
	}
	if _, err := FixedFromInt(132).Milli(); !errors.Is(err, ErrOverflow) {
		t.Errorf("132.Milli() returned %v", err)
	}
	// Rounds towards negative infinity.
	if v, _ := Fixed(-1).Milli(); v != -1 {
		t.Errorf("Fixed(-1).Milli()=%d expected -1", v)
	}
	if v, _ := Fixed(1).Milli(); v != 0 {
		t.Errorf("Fixed(1).Milli()=%d expected 0", v)
	}
}

func TestFixedFloat(t *testing.T) {
	if v := FixedFromInt(-45).Float64(); v != -45 {
		t.Errorf("Float64()=%f", v)
	}
	if v := Fixed(1 << 15).Float64(); v != 0.5 {
		t.Errorf("Float64()=%f", v)
	}
	if s := FixedFromInt(-6).String(); s != "-6" {
		t.Errorf("String()=%q", s)
	}
}
