// SPDX-License-Identifier: MIT

package infogain

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// InformationGain returns the entropy reduction achieved by splitting ds on
// attribute attr, rounded to Precision decimal places (default 4):
//
//	IG(A) = H(S) − I(A)
//
// The result is not clamped: floating-point noise below zero is returned as
// is after rounding, which normally yields 0.
//
// Errors: ErrOptionViolation, ErrNilDataset, ErrInvalidAttribute.
func InformationGain(ds *Dataset, attr int, opts ...Option) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, opErrorf(opInfoGain, err)
	}
	if err = ds.checkAttribute(attr); err != nil {
		return 0, opErrorf(opInfoGain, err)
	}

	h, err := labelEntropy(ds.Labels(), o.Epsilon)
	if err != nil {
		return 0, opErrorf(opInfoGain, err)
	}
	g, err := roundGain(h-averageInformation(ds, attr, o.Epsilon), o)
	if err != nil {
		return 0, opErrorf(opInfoGain, err)
	}

	return g, nil
}

// roundGain applies the configured rounding mode.
//
//	RoundHalfEven         → decimal RoundBank (shortest decimal repr, ties to even)
//	RoundHalfAwayFromZero → stats.Round
func roundGain(x float64, o Options) (float64, error) {
	switch o.Rounding {
	case RoundHalfEven:
		f, _ := decimal.NewFromFloat(x).RoundBank(int32(o.Precision)).Float64()
		return f, nil
	case RoundHalfAwayFromZero:
		f, err := stats.Round(x, o.Precision)
		if err != nil {
			return 0, opErrorf(opRound, err)
		}
		return f, nil
	default:
		return 0, opErrorf(opRound, fmt.Errorf("%w: unknown rounding mode %v", ErrOptionViolation, o.Rounding))
	}
}
