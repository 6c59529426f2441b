package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessTicks(t *testing.T) {
	var steps int
	newApp := func(h HAL) (func() error, error) {
		if h.Display().Framebuffer().Width() != 8 {
			t.Errorf("framebuffer width = %d, want 8", h.Display().Framebuffer().Width())
		}
		return func() error { steps++; return nil }, nil
	}
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Width: 8, Height: 4, Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	var steps int
	newApp := func(HAL) (func() error, error) {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}, nil
	}
	if err := RunHeadless(context.Background(), newApp, HeadlessConfig{Width: 2, Height: 2, Hz: 1000}); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	newApp := func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Width: 2, Height: 2, Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless err = %v, want boom", err)
	}
}

func TestRunHeadlessNewAppError(t *testing.T) {
	boom := errors.New("bad framebuffer")
	newApp := func(HAL) (func() error, error) { return nil, boom }
	if err := RunHeadless(context.Background(), newApp, HeadlessConfig{Width: 2, Height: 2}); !errors.Is(err, boom) {
		t.Fatalf("RunHeadless err = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	newApp := func(HAL) (func() error, error) { return func() error { return nil }, nil }
	err := RunHeadless(ctx, newApp, HeadlessConfig{Width: 2, Height: 2, Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless err = %v, want DeadlineExceeded", err)
	}
}
