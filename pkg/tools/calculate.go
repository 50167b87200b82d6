// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jllopis/hermes/pkg/dispatch"
	"github.com/jllopis/hermes/pkg/schema"
)

// Calculate builds the arithmetic operation over two finite operands.
// The zero-divisor case is rejected by a cross-field rule before the
// handler runs; the handler keeps its own guard for callers that bypass
// validation with stale arguments.
func Calculate() (*dispatch.Operation, error) {
	desc := schema.Descriptor{
		Name:        "calculate",
		Description: "Perform a basic arithmetic operation on two numbers",
		Fields: []schema.FieldSpec{
			{
				Name:        "operation",
				Type:        schema.KindString,
				Description: "Arithmetic operation to perform",
				Required:    true,
				Enum:        []string{"add", "subtract", "multiply", "divide"},
				Examples:    []interface{}{"add"},
			},
			{
				Name:        "a",
				Type:        schema.KindNumber,
				Description: "First operand",
				Required:    true,
				Examples:    []interface{}{15},
			},
			{
				Name:        "b",
				Type:        schema.KindNumber,
				Description: "Second operand",
				Required:    true,
				Examples:    []interface{}{25},
			},
		},
		Rules: []schema.CrossFieldRule{
			{
				Description: "divide requires a non-zero divisor",
				Fields:      []string{"operation", "b"},
				Check: func(args schema.Arguments) *schema.Violation {
					if args.String("operation") == "divide" && args.Number("b") == 0 {
						return &schema.Violation{Field: "b", Message: "must not be zero when operation is divide"}
					}
					return nil
				},
			},
		},
	}
	return dispatch.NewOperation(desc, calculateHandler)
}

func calculateHandler(_ context.Context, args schema.Arguments) (*dispatch.Result, error) {
	operation := args.String("operation")
	a := args.Number("a")
	b := args.Number("b")

	var result float64
	var symbol string
	switch operation {
	case "add":
		result, symbol = a+b, "+"
	case "subtract":
		result, symbol = a-b, "-"
	case "multiply":
		result, symbol = a*b, "*"
	case "divide":
		if b == 0 {
			return nil, errors.New("division by zero")
		}
		result, symbol = a/b, "/"
	default:
		return nil, fmt.Errorf("unsupported operation %q", operation)
	}

	text := fmt.Sprintf("%s %s %s = %s",
		formatNumber(a), symbol, formatNumber(b), formatNumber(result))
	return dispatch.NewTextResult(text), nil
}

// formatNumber renders integral values without a decimal part and the rest
// with six decimal places, trailing zeros stripped.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
