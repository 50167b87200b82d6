// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jllopis/hermes/pkg/errors"
)

// pinClock freezes the package clock for the duration of one test.
func pinClock(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

func TestGreeting_HourBands(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		formal bool
		want   string
	}{
		{"morning informal", 8, false, "Good morning, Ana!"},
		{"morning formal", 11, true, "Good morning, Ana. I wish you a productive day."},
		{"afternoon informal", 12, false, "Good afternoon, Ana!"},
		{"afternoon formal", 17, true, "Good afternoon, Ana. I hope your day is going well."},
		{"evening informal", 18, false, "Good evening, Ana!"},
		{"evening formal", 23, true, "Good evening, Ana. I wish you a pleasant rest of the day."},
	}

	op, err := Greeting()
	if err != nil {
		t.Fatalf("Greeting error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinClock(t, time.Date(2026, time.March, 3, tt.hour, 0, 0, 0, time.UTC))
			result, err := op.Invoke(context.Background(), map[string]interface{}{
				"name":   "Ana",
				"formal": tt.formal,
			})
			if err != nil {
				t.Fatalf("Invoke error: %v", err)
			}
			if result.Text() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, result.Text())
			}
		})
	}
}

func TestGreeting_ReadsClockEveryCall(t *testing.T) {
	op, err := Greeting()
	if err != nil {
		t.Fatalf("Greeting error: %v", err)
	}

	pinClock(t, time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC))
	morning, err := op.Invoke(context.Background(), map[string]interface{}{"name": "Ana"})
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}

	now = func() time.Time { return time.Date(2026, time.March, 3, 20, 0, 0, 0, time.UTC) }
	evening, err := op.Invoke(context.Background(), map[string]interface{}{"name": "Ana"})
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}

	if !strings.Contains(morning.Text(), "morning") || !strings.Contains(evening.Text(), "evening") {
		t.Errorf("expected the band to track the clock, got %q then %q", morning.Text(), evening.Text())
	}
}

func TestGreeting_FormalDefaultsAndCoercion(t *testing.T) {
	op, err := Greeting()
	if err != nil {
		t.Fatalf("Greeting error: %v", err)
	}

	args, err := op.Validate(map[string]interface{}{"name": "Ana"})
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if args.Bool("formal") != false {
		t.Errorf("expected formal default false, got %v", args["formal"])
	}

	args, err = op.Validate(map[string]interface{}{"name": "Ana", "formal": "TRUE"})
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if args.Bool("formal") != true {
		t.Errorf("expected coerced formal true, got %v", args["formal"])
	}
}

func TestGreeting_NameConstraints(t *testing.T) {
	op, err := Greeting()
	if err != nil {
		t.Fatalf("Greeting error: %v", err)
	}

	_, err = op.Invoke(context.Background(), map[string]interface{}{})
	if errors.Code(err) != errors.CodeInvalidArguments || !strings.Contains(err.Error(), "name") {
		t.Errorf("expected InvalidArguments naming the name field, got %v", err)
	}

	_, err = op.Invoke(context.Background(), map[string]interface{}{
		"name": strings.Repeat("a", 101),
	})
	if errors.Code(err) != errors.CodeInvalidArguments || !strings.Contains(err.Error(), "100") {
		t.Errorf("expected length constraint violation, got %v", err)
	}
}
