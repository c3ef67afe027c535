// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors(t *testing.T) {
	err := NewOverflow("%d + %d overflows", 1, 2)
	assert.Equal(t, "1 + 2 overflows", err.Error())
	assert.True(t, IsOverflow(err))
	assert.False(t, IsInvalid(err))
	assert.Equal(t, Overflow, TypeOf(err))

	err = NewInvalid("bad policy")
	assert.Equal(t, "bad policy", err.Error())
	assert.True(t, IsInvalid(err))
	assert.False(t, IsOverflow(err))
}

func TestWrappedErrors(t *testing.T) {
	err := fmt.Errorf("sum failed: %w", NewOverflow("overflow"))
	assert.True(t, IsOverflow(err))
	assert.Equal(t, Overflow, TypeOf(err))
	assert.Equal(t, Unknown, TypeOf(fmt.Errorf("plain")))
	assert.False(t, IsOverflow(nil))
	assert.Equal(t, "Overflow", Overflow.String())
	assert.Equal(t, "Unknown", Unknown.String())
}
