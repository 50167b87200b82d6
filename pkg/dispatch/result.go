// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

// Package dispatch binds operation schemas to handlers and routes
// invocations through a process-wide registry. It owns the uniform
// failure envelope: callers always receive a typed error, never a raw
// handler fault.
package dispatch

import "strings"

// ContentKind tags one item of a result payload.
type ContentKind string

// ContentKindText is the only kind the built-in operations produce.
const ContentKindText ContentKind = "text"

// Content is one item of an operation result.
type Content struct {
	Kind ContentKind
	Text string
}

// Result is the payload of a successful invocation. Every handler yields
// at least one content item.
type Result struct {
	Content []Content
}

// NewTextResult builds a single-item text result.
func NewTextResult(text string) *Result {
	return &Result{Content: []Content{{Kind: ContentKindText, Text: text}}}
}

// Text joins all text content items, one per line. Convenience for logs
// and tests.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, len(r.Content))
	for _, c := range r.Content {
		if c.Kind == ContentKindText {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n")
}
