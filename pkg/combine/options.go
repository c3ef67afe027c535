// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package combine

import (
	"strings"

	"github.com/recsum/recsum/pkg/errors"
)

// Policy determines how Sum handles a result that does not fit in a uint
type Policy int

const (
	// Checked fails with an Overflow error
	Checked Policy = iota
	// Wrapping returns the sum modulo 2^bits.UintSize
	Wrapping
	// Saturating clamps the sum to math.MaxUint
	Saturating
)

func (p Policy) String() string {
	switch p {
	case Checked:
		return "checked"
	case Wrapping:
		return "wrapping"
	case Saturating:
		return "saturating"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "checked":
		return Checked, nil
	case "wrapping", "wrap":
		return Wrapping, nil
	case "saturating", "saturate":
		return Saturating, nil
	default:
		return Checked, errors.NewInvalid("unknown overflow policy '%s'", name)
	}
}

// Option is a combine option
type Option interface {
	apply(options *Options)
}

// Options is combine options
type Options struct {
	Policy Policy
}

func (o *Options) apply(opts ...Option) {
	for _, opt := range opts {
		opt.apply(o)
	}
}

func newFuncOption(f func(*Options)) Option {
	return funcOption{f}
}

type funcOption struct {
	f func(*Options)
}

func (o funcOption) apply(options *Options) {
	o.f(options)
}

// WithPolicy sets the overflow policy
func WithPolicy(policy Policy) Option {
	return newFuncOption(func(options *Options) {
		options.Policy = policy
	})
}
