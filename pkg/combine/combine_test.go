// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package combine

import (
	"math"
	"testing"

	"github.com/recsum/recsum/pkg/errors"
	"github.com/recsum/recsum/pkg/record"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	cases := []struct {
		x, y uint
	}{
		{0, 0},
		{3, 2},
		{1, 0},
		{math.MaxUint - 1, 1},
		{math.MaxUint / 2, math.MaxUint / 2},
		{0, math.MaxUint},
	}
	for _, c := range cases {
		sum, err := Sum(record.New(c.x), record.New(c.y))
		assert.NoError(t, err)
		assert.Equal(t, c.x+c.y, sum)
	}
}

func TestSumClones(t *testing.T) {
	a := record.New(3)
	b := record.New(2)

	first, err := Sum(a.Clone(), b.Clone())
	assert.NoError(t, err)
	second, err := Sum(a, b)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), first)
	assert.Equal(t, first, second)
}

func TestSumOverflow(t *testing.T) {
	top := record.New(math.MaxUint)
	one := record.New(1)

	sum, err := Sum(top.Clone(), one.Clone())
	assert.Error(t, err)
	assert.True(t, errors.IsOverflow(err))
	assert.Equal(t, uint(0), sum)

	sum, err = Sum(top.Clone(), one.Clone(), WithPolicy(Checked))
	assert.True(t, errors.IsOverflow(err))
	assert.Equal(t, uint(0), sum)

	sum, err = Sum(top.Clone(), one.Clone(), WithPolicy(Wrapping))
	assert.NoError(t, err)
	assert.Equal(t, uint(0), sum)

	sum, err = Sum(top.Clone(), top.Clone(), WithPolicy(Wrapping))
	assert.NoError(t, err)
	assert.Equal(t, uint(math.MaxUint-1), sum)

	sum, err = Sum(top, one, WithPolicy(Saturating))
	assert.NoError(t, err)
	assert.Equal(t, uint(math.MaxUint), sum)
}

func TestParsePolicy(t *testing.T) {
	for _, policy := range []Policy{Checked, Wrapping, Saturating} {
		parsed, err := ParsePolicy(policy.String())
		assert.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}

	policy, err := ParsePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, Checked, policy)

	policy, err = ParsePolicy("Saturate")
	assert.NoError(t, err)
	assert.Equal(t, Saturating, policy)

	_, err = ParsePolicy("panic")
	assert.True(t, errors.IsInvalid(err))
	assert.Equal(t, "unknown", Policy(42).String())
}
