// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation and the word framing used by Sensirion sensors.
package common

// WordLen is the size of one framed data word: 2 data bytes followed by
// their CRC8.
const WordLen = 3

// CRC8 calculates the 8-bit CRC of the byte slice parameter and returns the
// calculated value. CRC bytes are used in sensors from TI and Sensirion.
func CRC8(bytes []byte) byte {
	var crc byte = 0xff
	for _, val := range bytes {
		crc ^= val
		for range 8 {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (byte)((crc << 1) ^ 0x31)
			}
		}
	}
	return crc
}

// CheckWords verifies every [MSB, LSB, CRC] group in data. It returns the
// index of the first group whose CRC doesn't match, or -1 if all of them are
// valid. A trailing partial group is reported as invalid.
func CheckWords(data []byte) int {
	for i := 0; i < len(data); i += WordLen {
		if i+WordLen > len(data) {
			return i / WordLen
		}
		if CRC8(data[i:i+2]) != data[i+2] {
			return i / WordLen
		}
	}
	return -1
}

// AppendWord appends w in big-endian order followed by its CRC8.
func AppendWord(dst []byte, w uint16) []byte {
	b := [2]byte{byte(w >> 8), byte(w)}
	return append(dst, b[0], b[1], CRC8(b[:]))
}
