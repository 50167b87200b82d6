// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/jllopis/hermes/pkg/dispatch"
	"github.com/jllopis/hermes/pkg/schema"
)

const (
	defaultTimezone = "Europe/Madrid"
	defaultFormat   = "long"
)

// Datetime builds the datetime operation: render the current instant in
// one of five textual shapes for a given IANA timezone.
func Datetime(defaults DatetimeDefaults) (*dispatch.Operation, error) {
	tz := defaults.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	format := defaults.Format
	if format == "" {
		format = defaultFormat
	}

	desc := schema.Descriptor{
		Name:        "datetime",
		Description: "Render the current date and time in a configurable format and timezone",
		Fields: []schema.FieldSpec{
			{
				Name:        "format",
				Type:        schema.KindString,
				Description: "Output shape for the rendered instant",
				Enum:        []string{"short", "long", "time", "full", "iso"},
				Default:     format,
				Examples:    []interface{}{"short", "iso"},
			},
			{
				Name:        "timezone",
				Type:        schema.KindString,
				Description: "IANA timezone identifier",
				Default:     tz,
				Examples:    []interface{}{"Europe/Madrid", "America/New_York"},
			},
		},
	}
	return dispatch.NewOperation(desc, datetimeHandler)
}

func datetimeHandler(_ context.Context, args schema.Arguments) (*dispatch.Result, error) {
	tz := args.String("timezone")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		// Surfaces as an execution error at the adapter boundary; a bad
		// zone name must never take the process down.
		return nil, fmt.Errorf("cannot format time: invalid timezone %q: %w", tz, err)
	}

	t := now().In(loc)
	var rendered string
	switch args.String("format") {
	case "short":
		rendered = t.Format("2006-01-02")
	case "time":
		rendered = t.Format("15:04:05")
	case "full":
		rendered = t.Format("Monday, January 2, 2006 at 15:04:05")
	case "iso":
		rendered = t.Format(time.RFC3339)
	default: // long
		rendered = t.Format("Monday, January 2, 2006")
	}

	return dispatch.NewTextResult(rendered), nil
}
