// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

// Package tools provides the built-in Hermes operations: greeting,
// calculate, and datetime. Handlers are pure computations over validated
// arguments; all schema and failure mechanics live in pkg/schema and
// pkg/dispatch.
package tools

import (
	"time"

	"github.com/jllopis/hermes/pkg/dispatch"
)

// now is the wall-clock hook. Tests pin it to exercise hour bands and
// timezone rendering deterministically.
var now = time.Now

// DatetimeDefaults configures the datetime operation's declared defaults.
// Zero values fall back to the canonical ones.
type DatetimeDefaults struct {
	Timezone string
	Format   string
}

// All builds the three canonical operations in their canonical
// registration order: greeting, calculate, datetime.
func All(dt DatetimeDefaults) ([]*dispatch.Operation, error) {
	greeting, err := Greeting()
	if err != nil {
		return nil, err
	}
	calculate, err := Calculate()
	if err != nil {
		return nil, err
	}
	datetime, err := Datetime(dt)
	if err != nil {
		return nil, err
	}
	return []*dispatch.Operation{greeting, calculate, datetime}, nil
}
