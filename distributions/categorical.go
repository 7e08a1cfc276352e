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
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Categorical builds an integer PMF over [minSupported, maxSupported]
// from an arbitrary vector of non-negative weights, with the same
// "no zero bucket" guarantee as LeakyQuantizer: every symbol in the
// declared support gets probability >= 1 even if its weight is zero or
// it was never covered by the weights vector.
type Categorical[S constraints.Signed] struct {
	min  S
	cum  []uint32 // length span+1; cum[span] == TotalMass
	prob []uint32 // length span
}

// NewCategorical builds a Categorical over [minSupported,
// maxSupported]. weights is aligned starting at minProvided: symbol s
// is assigned weights[s-minProvided] when that index falls inside
// weights, and 0 otherwise. If every aligned weight is zero, symbols
// are treated as uniform.
//
// The remainder left after reserving one unit of mass per symbol and
// distributing floor(scaled weight) to each is assigned by largest
// fractional remainder, smaller symbol first — the same scheme the
// teacher's entropy.NormalizeFrequencies uses to round ANS header
// frequencies to an exact power-of-two sum.
func NewCategorical[S constraints.Signed](minSupported, maxSupported, minProvided S, weights []float64) (Categorical[S], error) {
	if minSupported > maxSupported {
		return Categorical[S]{}, errors.Wrapf(ErrInvalidDistribution, "minSupported %v > maxSupported %v", minSupported, maxSupported)
	}

	span := int64(maxSupported) - int64(minSupported) + 1

	if span > TotalMass {
		return Categorical[S]{}, errors.Wrapf(ErrInvalidDistribution, "span %d exceeds total mass %d", span, TotalMass)
	}

	w := make([]float64, span)
	var sum float64

	for i := range w {
		s := int64(minSupported) + int64(i)
		idx := s - int64(minProvided)

		if idx >= 0 && idx < int64(len(weights)) && weights[idx] > 0 {
			w[i] = weights[idx]
			sum += w[i]
		}
	}

	if sum == 0 {
		for i := range w {
			w[i] = 1
		}
		sum = float64(len(w))
	}

	freeMass := float64(TotalMass - span)
	prob := make([]uint32, span)
	frac := make([]float64, span)
	var assigned int64

	for i, wi := range w {
		scaled := wi * freeMass / sum
		floor := math.Floor(scaled)
		prob[i] = uint32(1 + floor)
		frac[i] = scaled - floor
		assigned += int64(prob[i])
	}

	distributeRemainder(prob, frac, int(TotalMass-assigned))

	cum := make([]uint32, span+1)

	for i, p := range prob {
		cum[i+1] = cum[i] + p
	}

	return Categorical[S]{min: minSupported, cum: cum, prob: prob}, nil
}

func (d Categorical[S]) LeftCumulativeAndProbability(symbol S) (c, p uint32, err error) {
	idx := int64(symbol) - int64(d.min)

	if idx < 0 || idx >= int64(len(d.prob)) {
		return 0, 0, errors.Wrapf(ErrUnsupportedSymbol, "symbol %v outside support", symbol)
	}

	return d.cum[idx], d.prob[idx], nil
}

// QuantileFunction binary-searches the cumulative table for the
// greatest index idx with cum[idx] <= q.
func (d Categorical[S]) QuantileFunction(q uint32) (symbol S, c, p uint32) {
	idx := sort.Search(len(d.prob), func(i int) bool {
		return d.cum[i+1] > q
	})

	return S(int64(d.min) + int64(idx)), d.cum[idx], d.prob[idx]
}

// Entropy returns the distribution's discrete (Shannon) entropy in
// bits, used by callers as a compression-efficiency sanity check
// against num_bits().
func (d Categorical[S]) Entropy() float64 {
	var h float64

	for _, p := range d.prob {
		if p == 0 {
			continue
		}

		prob := float64(p) / TotalMass
		h -= prob * math.Log2(prob)
	}

	return h
}
