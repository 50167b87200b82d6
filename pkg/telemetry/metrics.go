// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jllopis/hermes/pkg/errors"
)

// InvocationMetrics tracks operation invocation counts, outcomes, and
// latency for production monitoring.
type InvocationMetrics struct {
	// invocationCounter tracks total invocations by operation and outcome
	invocationCounter metric.Int64Counter

	// failureCounter tracks failures by operation and error code
	failureCounter metric.Int64Counter

	// durationHistogram tracks invocation latency by operation
	durationHistogram metric.Float64Histogram
}

// NewInvocationMetrics creates an invocation metrics tracker with OTel meters.
func NewInvocationMetrics() (*InvocationMetrics, error) {
	meter := otel.Meter("hermes/dispatch")

	invocationCounter, err := meter.Int64Counter(
		"hermes.invocations.total",
		metric.WithDescription("Total operation invocations by operation and outcome"),
	)
	if err != nil {
		return nil, err
	}

	failureCounter, err := meter.Int64Counter(
		"hermes.invocations.failures",
		metric.WithDescription("Failed invocations by operation and error code"),
	)
	if err != nil {
		return nil, err
	}

	durationHistogram, err := meter.Float64Histogram(
		"hermes.invocations.duration",
		metric.WithDescription("Invocation latency by operation"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &InvocationMetrics{
		invocationCounter: invocationCounter,
		failureCounter:    failureCounter,
		durationHistogram: durationHistogram,
	}, nil
}

// RecordInvocation records one completed invocation. A nil err means success;
// a non-nil err is classified by its Hermes error code.
func (im *InvocationMetrics) RecordInvocation(ctx context.Context, operation string, err error, elapsed time.Duration) {
	if im == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	im.invocationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		),
	)
	im.durationHistogram.Record(ctx, float64(elapsed)/float64(time.Millisecond),
		metric.WithAttributes(
			attribute.String("operation", operation),
		),
	)
	if err != nil {
		im.failureCounter.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("operation", operation),
				attribute.String("error.code", string(errors.Code(err))),
			),
		)
	}
}
