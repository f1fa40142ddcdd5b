// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"context"
	"time"
)

// Delayer waits for a command to finish executing on the device.
//
// The same transaction code runs on top of either implementation, so the
// choice only changes how the calling goroutine waits.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration) error
}

// SleepDelay blocks the calling goroutine with time.Sleep. The context is
// ignored; a started wait always runs to completion.
type SleepDelay struct{}

func (SleepDelay) Delay(_ context.Context, d time.Duration) error {
	time.Sleep(d)
	return nil
}

// TimerDelay parks the calling goroutine on a timer and gives up early when
// the context is done. The device is left mid-command in that case.
type TimerDelay struct{}

func (TimerDelay) Delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var (
	_ Delayer = SleepDelay{}
	_ Delayer = TimerDelay{}
)
