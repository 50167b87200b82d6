// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jllopis/hermes/pkg/errors"
	"github.com/jllopis/hermes/pkg/schema"
	"github.com/jllopis/hermes/pkg/telemetry"
)

// Registry is the process-wide operation dispatcher. It is built once at
// startup and read-only thereafter, so concurrent invocations need no
// locking. Registration order is preserved for discovery.
type Registry struct {
	logger  *slog.Logger
	metrics *telemetry.InvocationMetrics
	order   []string
	ops     map[string]*Operation
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for invocation records.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the invocation metrics tracker. A nil tracker disables
// metric recording.
func WithMetrics(metrics *telemetry.InvocationMetrics) Option {
	return func(r *Registry) {
		r.metrics = metrics
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger: slog.Default(),
		ops:    make(map[string]*Operation),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an operation to the registry. Names are unique; a second
// registration under the same name is rejected. Register is part of the
// single-initialization lifecycle and must not race with Invoke.
func (r *Registry) Register(op *Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}
	name := op.Name()
	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("operation %q is already registered", name)
	}
	r.ops[name] = op
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered operation names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// List returns all descriptors in registration order. The order is stable
// across calls, which discovery clients and tests rely on.
func (r *Registry) List() []schema.Descriptor {
	out := make([]schema.Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name].Describe())
	}
	return out
}

// Lookup returns the descriptor for one operation. This is a lookup
// helper, not an invocation: a miss is reported through ok, not as a
// failure.
func (r *Registry) Lookup(name string) (schema.Descriptor, bool) {
	op, ok := r.ops[name]
	if !ok {
		return schema.Descriptor{}, false
	}
	return op.Describe(), true
}

// Invoke routes one invocation to the named operation. An unregistered
// name yields an UnknownOperation failure whose message enumerates every
// registered name so the caller can self-correct.
func (r *Registry) Invoke(ctx context.Context, name string, raw map[string]interface{}) (*Result, error) {
	start := time.Now()
	log := r.logger.With(
		slog.String("invocation_id", uuid.NewString()),
		slog.String("operation", name),
	)

	op, ok := r.ops[name]
	if !ok {
		err := errors.New(
			errors.CodeUnknownOperation,
			fmt.Sprintf("unknown operation %q: registered operations are %s", name, strings.Join(r.order, ", ")),
			nil,
		)
		r.metrics.RecordInvocation(ctx, name, err, time.Since(start))
		log.WarnContext(ctx, "unknown operation requested")
		return nil, err
	}

	result, err := op.Invoke(ctx, raw)
	elapsed := time.Since(start)
	r.metrics.RecordInvocation(ctx, name, err, elapsed)

	if err != nil {
		log.WarnContext(ctx, "invocation failed",
			slog.String("error_code", string(errors.Code(err))),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
		)
		return nil, err
	}

	log.DebugContext(ctx, "invocation completed",
		slog.Int("content_items", len(result.Content)),
		slog.Duration("elapsed", elapsed),
	)
	return result, nil
}
