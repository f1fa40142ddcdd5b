// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/sirhcel/sht4x/sht4x"
)

func TestParseAddress(t *testing.T) {
	var tests = []struct {
		in   string
		want sht4x.Address
		ok   bool
	}{
		{"0x44", sht4x.Address0x44, true},
		{"0x45", sht4x.Address0x45, true},
		{"69", sht4x.Address0x45, true},
		{" 0x44 ", sht4x.Address0x44, true},
		{"0x40", 0, false},
		{"foo", 0, false},
	}
	for _, test := range tests {
		got, err := parseAddress(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("parseAddress(%q)=%#x, %v", test.in, got, err)
		}
	}
}

func TestParsePrecision(t *testing.T) {
	var tests = []struct {
		in   string
		want sht4x.Precision
		ok   bool
	}{
		{"low", sht4x.PrecisionLow, true},
		{"Medium", sht4x.PrecisionMedium, true},
		{"HIGH", sht4x.PrecisionHigh, true},
		{"max", 0, false},
	}
	for _, test := range tests {
		got, err := parsePrecision(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("parsePrecision(%q)=%s, %v", test.in, got, err)
		}
	}
}

func TestParsePower(t *testing.T) {
	var tests = []struct {
		in   int
		want sht4x.HeaterPower
		ok   bool
	}{
		{20, sht4x.Power20mW, true},
		{110, sht4x.Power110mW, true},
		{200, sht4x.Power200mW, true},
		{50, 0, false},
	}
	for _, test := range tests {
		got, err := parsePower(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("parsePower(%d)=%s, %v", test.in, got, err)
		}
	}
}
