// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sht4x controls the Sensirion SHT-40, SHT-41, and SHT-45
// temperature/humidity sensors over I²C.
//
// Every operation is a single transaction: a one byte command is written,
// the driver waits for the command's maximum execution time, then reads a
// 6 byte response made of two CRC protected words. Raw counts are converted
// to degrees Celsius and percent relative humidity with 16.16 fixed-point
// arithmetic, so results are bit-for-bit reproducible on hosts without an
// FPU. Float and periph physic conversions are provided on top of that.
//
// Dev implements physic.SenseEnv so it can be used wherever the other
// periph environmental sensors are.
//
// # Datasheet
//
// https://sensirion.com/media/documents/33FD6951/67EB9032/HT_DS_Datasheet_SHT4x_5.pdf
//
// # Addresses
//
// Most parts answer on 0x44. The SHT40-BD1B uses 0x45.
//
// # Temperature Accuracy
//
// SHT-40 & SHT-41
//
//	Typical accuracy: ±0.2 °C
//
// SHT-45
//
//	Typical accuracy: ±0.1 °C
//
// All devices have a resolution of 0.01 °C and specified range –40…+125 °C.
// The conversion formula itself spans -45…+130 °C and the driver does not
// clamp to the specified range.
//
// # Humidity Accuracy
//
// SHT-40: ±1.8 %RH typical. SHT-41: ±1.8 %RH typical. SHT-45: ±1.0 %RH
// typical.
//
// The conversion formula spans -6…+119 %RH. Values outside 0…100 are passed
// through unmodified; clamping is left to the caller.
//
// # Heater
//
// The heater is meant for condensation recovery and plausibility checks, and
// should not be run for more than 10% of the sensor's lifetime. See section
// 4.9 of the datasheet.
//
// # Aborted transactions
//
// If a context is cancelled while the driver is waiting for a command to
// complete, the device state is unknown. Call SoftReset before reusing it.
package sht4x
