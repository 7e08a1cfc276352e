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

// Package distributions provides discrete-distribution adapters for
// the rans coder: LeakyQuantizer, which discretizes a continuous
// density over a bounded integer alphabet such that every symbol in
// range gets non-zero probability, and Categorical, which builds the
// same kind of "no zero bucket" integer PMF directly from an arbitrary
// vector of non-negative weights.
//
// Both are independent data types implementing the same two-operation
// capability set (DiscreteDistribution), not members of a type
// hierarchy: the rans coder is generic over that capability and never
// references LeakyQuantizer or Categorical by name except inside its
// own batch helpers.
package distributions

import "github.com/cockroachdb/errors"

// Total probability mass every distribution must sum to, and the
// number of fractional bits it takes to represent it. Mirrors
// rans.FrequencyBits / rans.TotalMass; duplicated here (rather than
// imported) so this package has no dependency on the coder package,
// which itself depends on this one for its batch helpers.
const (
	FrequencyBits = 24
	TotalMass     = 1 << FrequencyBits
)

// ErrUnsupportedSymbol is returned by LeftCumulativeAndProbability when
// the symbol lies outside the distribution's declared support.
var ErrUnsupportedSymbol = errors.New("distributions: symbol not in distribution support")

// ErrInvalidDistribution is returned by LeakyQuantizer/Categorical
// constructors whose arguments violate their preconditions.
var ErrInvalidDistribution = errors.New("distributions: invalid distribution construction arguments")

// DiscreteDistribution is the capability the rans coder needs from a
// distribution: a forward lookup from symbol to its cumulative
// interval, and the inverse lookup from a quantile back to the unique
// symbol whose interval contains it. Every concrete realization must
// keep the two mutually consistent to the bit and sum to exactly
// TotalMass over its declared support.
type DiscreteDistribution[S any] interface {
	// LeftCumulativeAndProbability returns (c, p) with c in
	// [0, TotalMass-1], p in [1, TotalMass], c+p <= TotalMass. It
	// returns ErrUnsupportedSymbol if symbol is outside the support.
	LeftCumulativeAndProbability(symbol S) (c, p uint32, err error)

	// QuantileFunction is total on [0, TotalMass): it returns the
	// unique (symbol, c, p) with c <= q < c+p.
	QuantileFunction(q uint32) (symbol S, c, p uint32)
}

// ContinuousDistribution is the interface LeakyQuantizer.Quantize
// consumes. gonum.org/v1/gonum/stat/distuv.Normal satisfies it
// directly: its CDF and Quantile methods already have this exact
// signature, so no adapter struct is needed to plug a Gaussian model
// into the quantizer.
type ContinuousDistribution interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}
