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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCategoricalRoundTrip is invariant 1 applied to Categorical:
// QuantileFunction must invert LeftCumulativeAndProbability exactly
// across every q in a symbol's interval.
func TestCategoricalRoundTrip(t *testing.T) {
	weights := []float64{5, 0, 100, 3, 0, 0, 1}
	dist, err := NewCategorical[int32](-3, 3, -3, weights)
	require.NoError(t, err)

	for s := int32(-3); s <= 3; s++ {
		left, p, err := dist.LeftCumulativeAndProbability(s)
		require.NoError(t, err)
		require.Greater(t, p, uint32(0), "every supported symbol must have probability >= 1, even a zero-weight one")

		for q := left; q < left+p; q++ {
			gotSymbol, gotLeft, gotP := dist.QuantileFunction(q)
			assert.Equal(t, s, gotSymbol, "q=%d", q)
			assert.Equal(t, left, gotLeft)
			assert.Equal(t, p, gotP)
		}
	}
}

// TestCategoricalSumsToTotalMass is invariant 2.
func TestCategoricalSumsToTotalMass(t *testing.T) {
	weights := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	dist, err := NewCategorical[int32](0, 9, 0, weights)
	require.NoError(t, err)

	var total uint32

	for s := int32(0); s <= 9; s++ {
		_, p, err := dist.LeftCumulativeAndProbability(s)
		require.NoError(t, err)
		total += p
	}

	assert.EqualValues(t, TotalMass, total)
}

// TestCategoricalUniformFallback confirms an all-zero weights vector
// is treated as uniform rather than degenerating to all-zero
// probabilities.
func TestCategoricalUniformFallback(t *testing.T) {
	dist, err := NewCategorical[int32](0, 3, 0, []float64{0, 0, 0, 0})
	require.NoError(t, err)

	var probs []uint32

	for s := int32(0); s <= 3; s++ {
		_, p, err := dist.LeftCumulativeAndProbability(s)
		require.NoError(t, err)
		probs = append(probs, p)
	}

	for _, p := range probs {
		assert.InDelta(t, probs[0], p, 1, "uniform fallback should spread mass near-evenly")
	}
}

func TestCategoricalWeightsAlignedAtMinProvided(t *testing.T) {
	// weights[0] corresponds to symbol 10 (minProvided), not symbol 0.
	weights := []float64{1000, 1, 1}
	dist, err := NewCategorical[int32](8, 12, 10, weights)
	require.NoError(t, err)

	_, pHeavy, err := dist.LeftCumulativeAndProbability(10)
	require.NoError(t, err)

	_, pLight, err := dist.LeftCumulativeAndProbability(8)
	require.NoError(t, err)

	assert.Greater(t, pHeavy, pLight)
}

func TestCategoricalRejectsUnsupportedSymbol(t *testing.T) {
	dist, err := NewCategorical[int32](0, 3, 0, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	_, _, err = dist.LeftCumulativeAndProbability(4)
	assert.ErrorIs(t, err, ErrUnsupportedSymbol)
}

func TestNewCategoricalRejectsInvertedRange(t *testing.T) {
	_, err := NewCategorical[int32](3, 0, 0, []float64{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrInvalidDistribution)
}

func TestCategoricalEntropyOfUniformIsLog2OfSpan(t *testing.T) {
	dist, err := NewCategorical[int32](0, 3, 0, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, dist.Entropy(), 0.01)
}
