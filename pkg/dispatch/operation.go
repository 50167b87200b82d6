// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/jllopis/hermes/pkg/errors"
	"github.com/jllopis/hermes/pkg/schema"
)

// Handler is the pure business computation of one operation. It receives
// arguments that already passed every schema constraint and must never see
// raw input. Errors it returns are classified by the Operation; handlers
// do not construct typed failures themselves.
type Handler func(ctx context.Context, args schema.Arguments) (*Result, error)

// Operation binds one schema descriptor to one handler and exposes the
// uniform describe/validate/invoke contract. One Operation value serves
// all invocations; it holds no per-call state.
type Operation struct {
	desc    schema.Descriptor
	handler Handler
}

// NewOperation builds an Operation, rejecting malformed descriptors and
// nil handlers at construction time.
func NewOperation(desc schema.Descriptor, handler Handler) (*Operation, error) {
	if err := desc.Check(); err != nil {
		return nil, err
	}
	if handler == nil {
		return nil, fmt.Errorf("operation %q: handler is required", desc.Name)
	}
	return &Operation{desc: desc, handler: handler}, nil
}

// WithDescription returns a copy of the operation advertising a different
// description. Toolset manifests use this to re-describe built-ins.
func (o *Operation) WithDescription(description string) *Operation {
	clone := *o
	clone.desc.Description = description
	return &clone
}

// Name returns the operation's dispatch key.
func (o *Operation) Name() string {
	return o.desc.Name
}

// Describe returns the operation's descriptor. Pure, no failure mode.
func (o *Operation) Describe() schema.Descriptor {
	return o.desc
}

// Validate checks raw input against the operation's schema without
// executing anything. On failure it returns an InvalidArguments error
// whose message names the operation and enumerates every violation.
func (o *Operation) Validate(raw map[string]interface{}) (schema.Arguments, error) {
	args, violations := o.desc.Validate(raw)
	if len(violations) > 0 {
		msgs := make([]string, len(violations))
		for i, v := range violations {
			msgs[i] = v.String()
		}
		return nil, errors.New(
			errors.CodeInvalidArguments,
			fmt.Sprintf("invalid arguments for operation %q: %s", o.desc.Name, strings.Join(msgs, "; ")),
			nil,
		).WithContext("operation", o.desc.Name).WithContext("violations", msgs)
	}
	return args, nil
}

// Invoke validates raw input and, only on success, runs the handler.
// Typed failures pass through unchanged; any other handler error is
// wrapped into an ExecutionError naming the operation and the cause.
func (o *Operation) Invoke(ctx context.Context, raw map[string]interface{}) (*Result, error) {
	args, err := o.Validate(raw)
	if err != nil {
		return nil, err
	}

	result, err := o.handler(ctx, args)
	if err != nil {
		if he, ok := err.(*errors.HermesError); ok {
			return nil, he
		}
		return nil, errors.New(
			errors.CodeExecutionError,
			fmt.Sprintf("operation %q failed", o.desc.Name),
			err,
		).WithContext("operation", o.desc.Name)
	}
	if result == nil || len(result.Content) == 0 {
		return nil, errors.New(
			errors.CodeExecutionError,
			fmt.Sprintf("operation %q produced no content", o.desc.Name),
			nil,
		)
	}
	return result, nil
}
