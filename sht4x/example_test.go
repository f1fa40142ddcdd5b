// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x_test

import (
	"context"
	"log"
	"time"

	"github.com/sirhcel/sht4x/sht4x"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Example shows creating an SHT-4X sensor and reading from it.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal("Error calling host.init()")
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := sht4x.New(bus, nil)
	if err != nil {
		log.Fatal(err)
	}

	env := &physic.Env{}

	for range 10 {
		err = dev.Sense(env)
		if err != nil {
			log.Println(err)
		} else {
			log.Printf("Temperature: %s   Humidity: %s\n", env.Temperature, env.Humidity)
		}
		time.Sleep(time.Second)
	}
}

// ExampleDev_Measure reads the sensor on the alternate address with a
// context bound wait, and prints the values in milli units.
func ExampleDev_Measure() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := sht4x.New(bus, &sht4x.Opts{Address: sht4x.Address0x45, Delay: sht4x.TimerDelay{}})
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Destroy()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m, err := dev.Measure(ctx, sht4x.PrecisionMedium)
	if err != nil {
		// The device may be mid-command.
		_ = dev.SoftReset(context.Background())
		log.Fatal(err)
	}
	log.Printf("%d m°C %d m%%RH", m.TemperatureMilliCelsius(), m.HumidityMilliPercent())
}
