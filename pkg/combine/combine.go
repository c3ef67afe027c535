// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package combine

import (
	"math"
	"math/bits"

	"github.com/recsum/recsum/pkg/errors"
	"github.com/recsum/recsum/pkg/logging"
	"github.com/recsum/recsum/pkg/record"
)

var log = logging.GetLogger("recsum", "combine")

// Sum returns the sum of the quantities held by a and b.
// Both records are consumed; callers that need them again must Clone first.
// A sum that overflows uint is handled according to the configured Policy,
// which defaults to Checked.
func Sum(a, b record.Record, opts ...Option) (uint, error) {
	options := Options{
		Policy: Checked,
	}
	options.apply(opts...)

	sum, carry := bits.Add(a.Num(), b.Num(), 0)
	if carry == 0 {
		return sum, nil
	}

	log.Debugf("Sum of %d and %d overflows (policy %s)", a.Num(), b.Num(), options.Policy)
	switch options.Policy {
	case Wrapping:
		return sum, nil
	case Saturating:
		return math.MaxUint, nil
	default:
		return 0, errors.NewOverflow("sum of %d and %d overflows uint%d", a.Num(), b.Num(), bits.UintSize)
	}
}
