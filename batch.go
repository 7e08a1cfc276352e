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

package rans

import (
	"github.com/cockroachdb/errors"
	"github.com/quantiled/rans/distributions"
	"gonum.org/v1/gonum/stat/distuv"
)

// gaussianSymbolMin/Max bound the alphabet push_gaussian_symbols /
// pop_gaussian_symbols quantize over: [1-2^15, 2^15].
const (
	gaussianSymbolMin = int32(1 - (1 << 15))
	gaussianSymbolMax = int32(1 << 15)
)

// PushSymbols pushes symbols[i] against distributions[i] for every i
// in increasing order. It is the generic primitive behind
// PushGaussianSymbols: a pipeline where every symbol genuinely carries
// its own distribution (not an i.i.d. sequence sharing one model)
// builds its per-symbol distributions once and calls this directly.
func PushSymbols[S any](c *Coder, symbols []S, dists []distributions.DiscreteDistribution[S]) error {
	if len(symbols) != len(dists) {
		return errors.Newf("rans: %d symbols but %d distributions", len(symbols), len(dists))
	}

	for i := range symbols {
		if err := PushSymbol(c, symbols[i], dists[i]); err != nil {
			return err
		}
	}

	return nil
}

// PopSymbols pops len(dists) symbols against dists in reverse index
// order and returns them in forward order, so that popping the
// distributions built for a PushSymbols call reconstructs its input
// vector element-wise. The decoded vector is written index-by-index
// into a pre-sized slice rather than built with push-then-reverse,
// since the final index is known up front.
func PopSymbols[S any](c *Coder, dists []distributions.DiscreteDistribution[S]) ([]S, error) {
	out := make([]S, len(dists))

	for i := len(dists) - 1; i >= 0; i-- {
		symbol, err := PopSymbol(c, dists[i])

		if err != nil {
			return nil, err
		}

		out[i] = symbol
	}

	return out, nil
}

// gaussianDistributions builds one LeakyQuantizer-wrapped Normal per
// (mean, std) pair, the shared setup behind both PushGaussianSymbols
// and PopGaussianSymbols.
func gaussianDistributions(means, stds []float64) ([]distributions.DiscreteDistribution[int32], error) {
	quantizer, err := distributions.NewLeakyQuantizer[int32](gaussianSymbolMin, gaussianSymbolMax)

	if err != nil {
		return nil, err
	}

	dists := make([]distributions.DiscreteDistribution[int32], len(means))

	for i := range means {
		dists[i] = quantizer.Quantize(distuv.Normal{Mu: means[i], Sigma: stds[i]})
	}

	return dists, nil
}

// PushGaussianSymbols quantizes Normal(means[i], stds[i]) with a
// LeakyQuantizer over [1-2^15, 2^15] for each symbol and pushes
// symbols in index order 0..N, via PushSymbols: every symbol here
// genuinely carries its own per-index distribution, which is exactly
// the non-IID case PushSymbols is the reusable primitive for.
func PushGaussianSymbols(c *Coder, symbols []int32, means, stds []float64) error {
	if len(symbols) != len(means) || len(symbols) != len(stds) {
		return errors.Newf("rans: push_gaussian_symbols length mismatch (symbols %d, means %d, stds %d)",
			len(symbols), len(means), len(stds))
	}

	dists, err := gaussianDistributions(means, stds)

	if err != nil {
		return err
	}

	return PushSymbols(c, symbols, dists)
}

// PopGaussianSymbols pops len(means) symbols in reverse index order
// N-1..0 and returns them in forward order, via PopSymbols.
func PopGaussianSymbols(c *Coder, means, stds []float64) ([]int32, error) {
	if len(means) != len(stds) {
		return nil, errors.Newf("rans: pop_gaussian_symbols length mismatch (means %d, stds %d)", len(means), len(stds))
	}

	if len(means) == 0 {
		return []int32{}, nil
	}

	dists, err := gaussianDistributions(means, stds)

	if err != nil {
		return nil, err
	}

	return PopSymbols(c, dists)
}

// PushIIDCategoricalSymbols builds one Categorical from
// (minSupported, maxSupported, minProvided, weights) and pushes every
// symbol in symbols against it, in order.
func PushIIDCategoricalSymbols(c *Coder, symbols []int32, minSupported, maxSupported, minProvided int32, weights []float64) error {
	dist, err := distributions.NewCategorical(minSupported, maxSupported, minProvided, weights)

	if err != nil {
		return err
	}

	for _, symbol := range symbols {
		if err := PushSymbol(c, symbol, dist); err != nil {
			return err
		}
	}

	return nil
}

// PopIIDCategoricalSymbols reconstructs the same Categorical used by
// PushIIDCategoricalSymbols and pops amt symbols in reverse, returning
// them in forward order.
func PopIIDCategoricalSymbols(c *Coder, amt int, minSupported, maxSupported, minProvided int32, weights []float64) ([]int32, error) {
	if amt == 0 {
		return []int32{}, nil
	}

	dist, err := distributions.NewCategorical(minSupported, maxSupported, minProvided, weights)

	if err != nil {
		return nil, err
	}

	symbols := make([]int32, amt)

	for i := amt - 1; i >= 0; i-- {
		symbol, err := PopSymbol(c, dist)

		if err != nil {
			return nil, err
		}

		symbols[i] = symbol
	}

	return symbols, nil
}
