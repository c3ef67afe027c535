// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Type is an error type
type Type int

const (
	Unknown Type = iota
	Invalid
	Overflow
)

func (t Type) String() string {
	switch t {
	case Invalid:
		return "Invalid"
	case Overflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// TypedError is an error with a type
type TypedError struct {
	Type    Type
	Message string
}

func (e *TypedError) Error() string {
	return e.Message
}

// New creates a new typed error
func New(t Type, msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &TypedError{
		Type:    t,
		Message: msg,
	}
}

// NewInvalid returns a new Invalid error
func NewInvalid(msg string, args ...any) error {
	return New(Invalid, msg, args...)
}

// NewOverflow returns a new Overflow error
func NewOverflow(msg string, args ...any) error {
	return New(Overflow, msg, args...)
}

// TypeOf returns the type of the given error, or Unknown if it is not typed
func TypeOf(err error) Type {
	var typed *TypedError
	if errors.As(err, &typed) {
		return typed.Type
	}
	return Unknown
}

// IsType checks whether the given error is of the given type
func IsType(err error, t Type) bool {
	return err != nil && TypeOf(err) == t
}

// IsInvalid checks whether the given error is an Invalid error
func IsInvalid(err error) bool {
	return IsType(err, Invalid)
}

// IsOverflow checks whether the given error is an Overflow error
func IsOverflow(err error) bool {
	return IsType(err, Overflow)
}
