// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// sht4x reads a Sensirion SHT4x sensor on a host I²C bus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/sirhcel/sht4x/sht4x"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	app := cli.NewApp()

	app.Name = "sht4x"
	app.Usage = "read a Sensirion SHT4x temperature/humidity sensor"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "bus, b",
			Usage:  "I²C bus `NAME`, empty for the first one",
			EnvVar: "SHT4X_BUS",
		},
		cli.StringFlag{
			Name:   "address, a",
			Value:  "0x44",
			Usage:  "device address, 0x44 or 0x45",
			EnvVar: "SHT4X_ADDRESS",
		},
		cli.IntFlag{
			Name:  "retries",
			Usage: "extra read attempts when the device doesn't acknowledge",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		log.SetFormatter(&log.TextFormatter{DisableColors: true})
		if c.GlobalBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:  "measure",
			Usage: "perform a single measurement",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "precision, p", Value: "high", Usage: "low, medium or high"},
				cli.BoolFlag{Name: "raw", Usage: "print raw sensor counts"},
			},
			Action: withDevice(measure),
		},
		{
			Name:  "heat",
			Usage: "run the heater, then measure",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "power", Value: 20, Usage: "heater power in mW: 20, 110 or 200"},
				cli.DurationFlag{Name: "duration", Value: 100 * time.Millisecond, Usage: "heater duration: 100ms or 1s"},
			},
			Action: withDevice(heat),
		},
		{
			Name:   "serial",
			Usage:  "print the factory serial number",
			Action: withDevice(serial),
		},
		{
			Name:   "reset",
			Usage:  "issue a soft reset",
			Action: withDevice(reset),
		},
		{
			Name:  "watch",
			Usage: "measure continuously",
			Flags: []cli.Flag{
				cli.DurationFlag{Name: "interval, i", Value: time.Second, Usage: "sample interval"},
				cli.IntFlag{Name: "count, n", Usage: "stop after `N` samples, 0 runs until interrupted"},
			},
			Action: withDevice(watch),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

type action func(ctx context.Context, c *cli.Context, dev *sht4x.Dev) error

// withDevice opens the bus, builds the driver and runs a with it. The bus
// is closed once a returns.
func withDevice(a action) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		addr, err := parseAddress(c.GlobalString("address"))
		if err != nil {
			return err
		}
		if _, err := host.Init(); err != nil {
			return errors.Wrap(err, "host init")
		}
		bus, err := i2creg.Open(c.GlobalString("bus"))
		if err != nil {
			return errors.Wrapf(err, "open bus %q", c.GlobalString("bus"))
		}
		defer bus.Close()

		dev, err := sht4x.New(bus, &sht4x.Opts{
			Address:     addr,
			Delay:       sht4x.TimerDelay{},
			ReadRetries: c.GlobalInt("retries"),
		})
		if err != nil {
			return errors.WithStack(err)
		}
		log.WithFields(log.Fields{"bus": bus.String(), "device": dev.String()}).Debug("opened")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = a(ctx, c, dev)
		if err != nil && ctx.Err() != nil {
			log.Warn("interrupted mid-command, resetting device")
			if rerr := dev.SoftReset(context.Background()); rerr != nil {
				log.WithError(rerr).Error("soft reset failed")
			}
		}
		dev.Destroy()
		log.WithField("device", dev.String()).Debug("released bus")
		return err
	}
}

func measure(ctx context.Context, c *cli.Context, dev *sht4x.Dev) error {
	p, err := parsePrecision(c.String("precision"))
	if err != nil {
		return err
	}
	start := time.Now()
	raw, err := dev.MeasureRaw(ctx, p)
	if err != nil {
		return errors.Wrap(err, "measure")
	}
	log.WithFields(log.Fields{"precision": p, "elapsed": time.Since(start)}).Debug("measured")
	if c.Bool("raw") {
		fmt.Printf("temperature=0x%04x humidity=0x%04x\n", raw.Temperature, raw.Humidity)
		return nil
	}
	printMeasurement(sht4x.NewMeasurement(raw))
	return nil
}

func heat(ctx context.Context, c *cli.Context, dev *sht4x.Dev) error {
	power, err := parsePower(c.Int("power"))
	if err != nil {
		return err
	}
	duration := sht4x.HeaterDuration(c.Duration("duration"))
	log.WithFields(log.Fields{"power": power, "duration": duration}).Info("heater on")
	m, err := dev.HeatAndMeasure(ctx, power, duration)
	if err != nil {
		return errors.Wrap(err, "heat")
	}
	printMeasurement(m)
	return nil
}

func serial(ctx context.Context, c *cli.Context, dev *sht4x.Dev) error {
	sn, err := dev.SerialNumber(ctx)
	if err != nil {
		return errors.Wrap(err, "serial number")
	}
	fmt.Printf("0x%08x\n", sn)
	return nil
}

func reset(ctx context.Context, c *cli.Context, dev *sht4x.Dev) error {
	if err := dev.SoftReset(ctx); err != nil {
		return errors.Wrap(err, "reset")
	}
	log.WithField("device", dev.String()).Info("reset")
	return nil
}

func watch(ctx context.Context, c *cli.Context, dev *sht4x.Dev) error {
	ch, err := dev.SenseContinuous(c.Duration("interval"))
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	defer dev.Halt()
	count := c.Int("count")
	for n := 0; count == 0 || n < count; n++ {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			fmt.Printf("%s\t%s\t%s\n", time.Now().Format(time.RFC3339), e.Temperature, e.Humidity)
		}
	}
	return nil
}

func printMeasurement(m sht4x.Measurement) {
	fmt.Printf("temperature=%.3f°C humidity=%.3f%%RH\n", m.Temperature.Float64(), m.Humidity.Float64())
}
