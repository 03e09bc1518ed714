// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/matt-FFFFFF/styled/internal/ctxlog"
)

func quietCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.New(context.Background(), logger)
}

func TestWatchFirstSignalNoCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(quietCtx())
	defer cancel()

	sigCh := make(chan os.Signal, 1)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt
	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled after a single signal")
	default:
	}

	close(sigCh)
	wg.Wait()
}

func TestWatchSecondSignalCancels(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(quietCtx())
	defer cancel()

	sigCh := make(chan os.Signal, 2)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	wg.Wait()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("context should be cancelled after the second signal")
	}

	_, open := <-sigCh
	assert.False(t, open, "signal channel should be closed after the second signal")
}

func TestWatchDifferentSignalsNoCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(quietCtx())
	defer cancel()

	sigCh := make(chan os.Signal, 2)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt
	sigCh <- os.Kill
	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled for different signal types")
	default:
	}

	close(sigCh)
	wg.Wait()
}

func TestNewDefaultsToTermSignals(t *testing.T) {
	ch := New(quietCtx())
	assert.NotNil(t, ch)
	assert.Equal(t, 1, cap(ch))
}
