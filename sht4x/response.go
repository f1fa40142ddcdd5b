// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import "encoding/binary"

// responseLen is the size of every response: two words of
// [MSB, LSB, CRC].
const responseLen = 6

// payload strips the CRC bytes. The response must already have been
// validated.
func payload(r *[responseLen]byte) [4]byte {
	return [4]byte{r[0], r[1], r[3], r[4]}
}

func sensorDataFromResponse(r *[responseLen]byte) SensorData {
	p := payload(r)
	return SensorData{
		Temperature: binary.BigEndian.Uint16(p[0:2]),
		Humidity:    binary.BigEndian.Uint16(p[2:4]),
	}
}

// The serial number is framed as two words, high half first.
func serialNumberFromResponse(r *[responseLen]byte) uint32 {
	p := payload(r)
	return binary.BigEndian.Uint32(p[:])
}
