// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"

	"github.com/jllopis/hermes/pkg/dispatch"
	"github.com/jllopis/hermes/pkg/schema"
)

// Greeting builds the greeting operation: a time-of-day-sensitive
// salutation with a formal and an informal phrasing per hour band.
func Greeting() (*dispatch.Operation, error) {
	desc := schema.Descriptor{
		Name:        "greeting",
		Description: "Generate a personalized salutation that adapts to the time of day",
		Fields: []schema.FieldSpec{
			{
				Name:        "name",
				Type:        schema.KindString,
				Description: "Name of the person to greet",
				Required:    true,
				MinLen:      1,
				MaxLen:      100,
				Examples:    []interface{}{"Ana", "Marco"},
			},
			{
				Name:        "formal",
				Type:        schema.KindBoolean,
				Description: "Use the formal phrasing",
				Default:     false,
				Coerce:      schema.CoerceLenientBool,
			},
		},
	}
	return dispatch.NewOperation(desc, greetingHandler)
}

// greetingHandler reads the wall clock on every call: the hour band can
// change between two invocations in the same process.
func greetingHandler(_ context.Context, args schema.Arguments) (*dispatch.Result, error) {
	name := args.String("name")
	formal := args.Bool("formal")

	var informal, courteous string
	switch hour := now().Hour(); {
	case hour < 12:
		informal = fmt.Sprintf("Good morning, %s!", name)
		courteous = fmt.Sprintf("Good morning, %s. I wish you a productive day.", name)
	case hour < 18:
		informal = fmt.Sprintf("Good afternoon, %s!", name)
		courteous = fmt.Sprintf("Good afternoon, %s. I hope your day is going well.", name)
	default:
		informal = fmt.Sprintf("Good evening, %s!", name)
		courteous = fmt.Sprintf("Good evening, %s. I wish you a pleasant rest of the day.", name)
	}

	if formal {
		return dispatch.NewTextResult(courteous), nil
	}
	return dispatch.NewTextResult(informal), nil
}
