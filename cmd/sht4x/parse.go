// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirhcel/sht4x/sht4x"
)

func parseAddress(s string) (sht4x.Address, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "address %q", s)
	}
	switch a := sht4x.Address(v); a {
	case sht4x.Address0x44, sht4x.Address0x45:
		return a, nil
	}
	return 0, errors.Errorf("address %q: must be 0x44 or 0x45", s)
}

func parsePrecision(s string) (sht4x.Precision, error) {
	for _, p := range []sht4x.Precision{sht4x.PrecisionLow, sht4x.PrecisionMedium, sht4x.PrecisionHigh} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, errors.Errorf("precision %q: must be low, medium or high", s)
}

func parsePower(mW int) (sht4x.HeaterPower, error) {
	switch mW {
	case 20:
		return sht4x.Power20mW, nil
	case 110:
		return sht4x.Power110mW, nil
	case 200:
		return sht4x.Power200mW, nil
	}
	return 0, errors.Errorf("heater power %dmW: must be 20, 110 or 200", mW)
}
