// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type mockCleaner struct {
	calls   atomic.Int32
	removed int
}

func (m *mockCleaner) CleanupCache() (int, int) {
	m.calls.Add(1)
	return m.removed, 7
}

// syncBuffer guards a bytes.Buffer written by the janitor goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCacheJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheJanitorService)(nil)
	var _ CacheCleaner = (*mockCleaner)(nil)
}

func TestNewCacheJanitorService_DefaultInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{"zero", 0, defaultJanitorInterval},
		{"negative", -time.Second, defaultJanitorInterval},
		{"explicit", time.Minute, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCacheJanitorService(&mockCleaner{}, tt.interval, zerolog.Nop())
			if svc.interval != tt.want {
				t.Errorf("interval = %v, want %v", svc.interval, tt.want)
			}
		})
	}
}

func TestCacheJanitorService_Serve(t *testing.T) {
	cleaner := &mockCleaner{removed: 3}
	var out syncBuffer
	logger := zerolog.New(&out).Level(zerolog.DebugLevel)
	svc := NewCacheJanitorService(cleaner, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for cleaner.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("CleanupCache called %d times, want at least 2", cleaner.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if !strings.Contains(out.String(), `"removed":3`) {
		t.Errorf("log output missing eviction count: %s", out.String())
	}
}

func TestCacheJanitorService_QuietWhenNothingExpired(t *testing.T) {
	cleaner := &mockCleaner{}
	var out syncBuffer
	svc := NewCacheJanitorService(cleaner, time.Hour, zerolog.New(&out).Level(zerolog.DebugLevel))

	svc.sweep()

	if cleaner.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", cleaner.calls.Load())
	}
	if strings.Contains(out.String(), "evicted") {
		t.Errorf("unexpected eviction log: %s", out.String())
	}
}

func TestCacheJanitorService_String(t *testing.T) {
	svc := NewCacheJanitorService(&mockCleaner{}, time.Minute, zerolog.Nop())
	if svc.String() != "cache-janitor" {
		t.Errorf("String() = %q, want cache-janitor", svc.String())
	}
}
