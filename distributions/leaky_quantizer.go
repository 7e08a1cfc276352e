/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package distributions

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// LeakyQuantizer discretizes a continuous distribution over the
// bounded integer alphabet [min, max] such that every symbol in range
// gets probability >= 1 ("leaky": encoding any in-range symbol is
// always possible, no matter how far it sits in the tail of the
// underlying density).
type LeakyQuantizer[S constraints.Signed] struct {
	min, max S
	span     int64
}

// NewLeakyQuantizer validates min <= max and span = max-min+1 <=
// TotalMass, returning ErrInvalidDistribution otherwise.
func NewLeakyQuantizer[S constraints.Signed](min, max S) (LeakyQuantizer[S], error) {
	if min > max {
		return LeakyQuantizer[S]{}, errors.Wrapf(ErrInvalidDistribution, "min %v > max %v", min, max)
	}

	span := int64(max) - int64(min) + 1

	if span > TotalMass {
		return LeakyQuantizer[S]{}, errors.Wrapf(ErrInvalidDistribution, "span %d exceeds total mass %d", span, TotalMass)
	}

	return LeakyQuantizer[S]{min: min, max: max, span: span}, nil
}

// leakyDistribution is the value returned by Quantize. It keeps a
// reference to the source continuous distribution and recomputes its
// forward/inverse lookups on demand rather than precomputing a table,
// since a quantized distribution is typically built fresh per symbol
// (each Gaussian batch symbol has its own mean/std) and a table over
// TotalMass entries would dwarf the cost of the lookups below: an O(1)
// forward evaluation, and an inverse that walks from a guess.
type leakyDistribution[S constraints.Signed] struct {
	min, max S
	freeMass int64
	cdf      func(x float64) float64
	quantile func(p float64) float64
}

// Quantize builds a discrete distribution from the continuous
// distribution d, following the construction in the coder's design:
// one unit of mass is reserved per supported symbol, and the remaining
// TotalMass-span units are distributed proportionally to d's CDF
// differences.
func (q LeakyQuantizer[S]) Quantize(d ContinuousDistribution) DiscreteDistribution[S] {
	return leakyDistribution[S]{
		min:      q.min,
		max:      q.max,
		freeMass: TotalMass - q.span,
		cdf:      d.CDF,
		quantile: d.Quantile,
	}
}

// boundary returns the left_cumulative value of symbol s, which is
// both the lo of s and the hi of s-1: one non-decreasing step function
// over [min, max+1], 0 at min and TotalMass at max+1.
func (d leakyDistribution[S]) boundary(s int64) uint32 {
	if s <= int64(d.min) {
		return 0
	}

	if s > int64(d.max) {
		return TotalMass
	}

	v := int64(math.Floor(d.cdf(float64(s)-0.5)*float64(d.freeMass))) + (s - int64(d.min))
	return uint32(v)
}

func (d leakyDistribution[S]) LeftCumulativeAndProbability(symbol S) (c, p uint32, err error) {
	s := int64(symbol)

	if s < int64(d.min) || s > int64(d.max) {
		return 0, 0, errors.Wrapf(ErrUnsupportedSymbol, "symbol %v outside [%v, %v]", symbol, d.min, d.max)
	}

	lo := d.boundary(s)
	hi := d.boundary(s + 1)
	return lo, hi - lo, nil
}

// QuantileFunction finds the unique s in [min, max] whose [lo, hi)
// interval contains q. It starts from a continuous-distribution guess
// and performs local monotone correction, falling back to a full scan
// only for pathological inputs where the guess lands far from the true
// interval (the forward evaluation is O(1), so this still terminates
// quickly in the worst case since the alphabet span is bounded by
// TotalMass).
func (d leakyDistribution[S]) QuantileFunction(q uint32) (symbol S, c, p uint32) {
	guess := int64(math.Round(d.quantile((float64(q) + 0.5) / float64(TotalMass))))

	if guess < int64(d.min) {
		guess = int64(d.min)
	} else if guess > int64(d.max) {
		guess = int64(d.max)
	}

	lo := d.boundary(guess)
	hi := d.boundary(guess + 1)

	for q < lo && guess > int64(d.min) {
		guess--
		hi = lo
		lo = d.boundary(guess)
	}

	for q >= hi && guess < int64(d.max) {
		guess++
		lo = hi
		hi = d.boundary(guess + 1)
	}

	return S(guess), lo, hi - lo
}
