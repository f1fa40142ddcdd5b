// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the Sensirion SHT4x driver.
//
// The driver lives in sht4x, the CRC8 framing it shares with other
// Sensirion sensors in common, and a command line tool in cmd/sht4x.
package devices
