// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"fmt"
	"io"

	"github.com/recsum/recsum/pkg/combine"
	"github.com/recsum/recsum/pkg/logging"
	"github.com/recsum/recsum/pkg/record"
)

var log = logging.GetLogger("recsum", "driver")

const (
	DefaultLeft  uint = 3
	DefaultRight uint = 2
)

// Defaults returns the records combined when no inputs are given
func Defaults() (record.Record, record.Record) {
	return record.New(DefaultLeft), record.New(DefaultRight)
}

// Result holds the outcome of both combine calls
type Result struct {
	First  uint `json:"first" yaml:"first"`
	Second uint `json:"second" yaml:"second"`
}

// WriteText writes the result as "<first> <second>\n"
func (r Result) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d\n", r.First, r.Second)
	return err
}

// Evaluate combines x and y twice: once through clones and once with the
// originals, which are consumed by the second call.
func Evaluate(x, y record.Record, opts ...combine.Option) (Result, error) {
	log.Debugf("Combining %s and %s", x, y)
	first, err := combine.Sum(x.Clone(), y.Clone(), opts...)
	if err != nil {
		return Result{}, err
	}
	second, err := combine.Sum(x, y, opts...)
	if err != nil {
		return Result{}, err
	}
	log.Debugf("Combined %d and %d", first, second)
	return Result{First: first, Second: second}, nil
}

// Run evaluates x and y and writes the text result to w
func Run(w io.Writer, x, y record.Record, opts ...combine.Option) error {
	result, err := Evaluate(x, y, opts...)
	if err != nil {
		return err
	}
	return result.WriteText(w)
}
