package rans

import (
	"math"
	"testing"

	"github.com/quantiled/rans/distributions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitmix64 is a small, deterministic PRNG used to seed the batch
// tests reproducibly without pulling in math/rand's global state.
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (s *splitmix64) float64() float64 {
	return float64(s.next()>>11) / (1 << 53)
}

// gaussianFixture deterministically generates AMT (mean, std, symbol)
// triples the way the original source's compress_many test does: draw
// a mean and std, then invert a uniform quantile through Normal's own
// quantile function to obtain a plausible in-range symbol.
func gaussianFixture(amt int, seed uint64) (symbols []int32, means, stds []float64) {
	rng := &splitmix64{state: seed}
	symbols = make([]int32, amt)
	means = make([]float64, amt)
	stds = make([]float64, amt)

	quantizer, err := distributions.NewLeakyQuantizer[int32](gaussianSymbolMin, gaussianSymbolMax)
	if err != nil {
		panic(err)
	}

	for i := 0; i < amt; i++ {
		mean := 200*rng.float64() - 100
		std := 10*rng.float64() + 0.001
		q := rng.float64()

		dist := quantizer.Quantize(gaussianCDFQuantile{mean: mean, std: std})
		symbol, _, _ := dist.QuantileFunction(uint32(q * (TotalMass - 1)))

		symbols[i] = symbol
		means[i] = mean
		stds[i] = std
	}

	return symbols, means, stds
}

// gaussianCDFQuantile is a tiny local stand-in for distuv.Normal used
// only to generate the fixture above without depending on gonum's
// exact quantile numerics for test-data generation (the coder itself,
// in production code paths, always goes through distuv.Normal).
type gaussianCDFQuantile struct{ mean, std float64 }

func (g gaussianCDFQuantile) CDF(x float64) float64 {
	return 0.5 * (1 + math.Erf((x-g.mean)/(g.std*math.Sqrt2)))
}

func (g gaussianCDFQuantile) Quantile(p float64) float64 {
	// Monotone bisection inverse of CDF; exact numerics don't matter
	// here, only that it is a valid quantile function paired with CDF.
	lo, hi := g.mean-50*g.std, g.mean+50*g.std

	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2

		if g.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

var categoricalHistogram = []float64{
	1, 186545, 237403, 295700, 361445, 433686, 509456, 586943, 663946, 737772, 1657269,
	896675, 922197, 930672, 916665, 0, 0, 0, 0, 0, 723031, 650522, 572300, 494702, 418703,
	347600, 1, 283500, 226158, 178194, 136301, 103158, 76823, 55540, 39258, 27988, 54269,
}

// TestPushPopSymbolsHeterogeneousDistributions directly exercises the
// generic PushSymbols/PopSymbols primitive with a distinct Categorical
// per index, the non-IID case it exists for (PushGaussianSymbols is
// just one caller built on top of it).
func TestPushPopSymbolsHeterogeneousDistributions(t *testing.T) {
	symbols := []int32{0, 1, 2, 0, 1}
	dists := make([]distributions.DiscreteDistribution[int32], len(symbols))

	for i := range symbols {
		// Each index gets its own skewed-differently Categorical so a
		// bug that reused dists[0] for every index would corrupt the
		// round trip.
		weights := []float64{1, 1, 1}
		weights[i%3] = 1000
		dist, err := distributions.NewCategorical[int32](0, 2, 0, weights)
		require.NoError(t, err)
		dists[i] = dist
	}

	c := New()
	require.NoError(t, PushSymbols(c, symbols, dists))

	got, err := PopSymbols(c, dists)
	require.NoError(t, err)
	assert.Equal(t, symbols, got)
	assert.NoError(t, c.FinishDecoding())
}

func TestPushSymbolsLengthMismatch(t *testing.T) {
	c := New()
	err := PushSymbols(c, []int32{1, 2}, []distributions.DiscreteDistribution[int32]{nil})
	assert.Error(t, err)
}

// TestGaussianBatchRoundTrip is scenario S3.
func TestGaussianBatchRoundTrip(t *testing.T) {
	const amt = 1000
	symbols, means, stds := gaussianFixture(amt, 1234)

	c := New()
	require.NoError(t, PushGaussianSymbols(c, symbols, means, stds))

	got, err := PopGaussianSymbols(c, means, stds)
	require.NoError(t, err)
	assert.Equal(t, symbols, got)
	assert.NoError(t, c.FinishDecoding())
}

// TestMixedBatchRoundTrip is scenario S4: a categorical batch pushed
// after a Gaussian batch must decode back in the reverse order of
// pushing — categorical first, then Gaussian — with both vectors
// recovered element-wise.
func TestMixedBatchRoundTrip(t *testing.T) {
	const amt = 1000
	gaussianSymbols, means, stds := gaussianFixture(amt, 1234)

	categorical, err := distributions.NewCategorical[int32](-127, 127, -10, categoricalHistogram)
	require.NoError(t, err)

	rng := &splitmix64{state: 99}
	categoricalSymbols := make([]int32, amt)

	for i := range categoricalSymbols {
		q := uint32(rng.float64() * (TotalMass - 1))
		s, _, _ := categorical.QuantileFunction(q)
		categoricalSymbols[i] = s
	}

	c := New()
	require.NoError(t, PushGaussianSymbols(c, gaussianSymbols, means, stds))
	require.NoError(t, PushIIDCategoricalSymbols(c, categoricalSymbols, -127, 127, -10, categoricalHistogram))

	gotCategorical, err := PopIIDCategoricalSymbols(c, amt, -127, 127, -10, categoricalHistogram)
	require.NoError(t, err)
	assert.Equal(t, categoricalSymbols, gotCategorical)

	gotGaussian, err := PopGaussianSymbols(c, means, stds)
	require.NoError(t, err)
	assert.Equal(t, gaussianSymbols, gotGaussian)

	assert.NoError(t, c.FinishDecoding())
}

// TestCompressionEfficiencySanity is scenario S7: num_bits() after
// encoding a large categorical batch should be within a small constant
// multiple of amt*entropy(distribution) — a smoke test, not a tight
// bound.
func TestCompressionEfficiencySanity(t *testing.T) {
	const amt = 1000

	categorical, err := distributions.NewCategorical[int32](-127, 127, -10, categoricalHistogram)
	require.NoError(t, err)

	rng := &splitmix64{state: 7}
	symbols := make([]int32, amt)

	for i := range symbols {
		q := uint32(rng.float64() * (TotalMass - 1))
		s, _, _ := categorical.QuantileFunction(q)
		symbols[i] = s
	}

	c := New()
	require.NoError(t, PushIIDCategoricalSymbols(c, symbols, -127, 127, -10, categoricalHistogram))

	bits := float64(c.NumBits())
	expected := float64(amt) * categorical.Entropy()

	assert.Less(t, bits, 3*expected+256, "encoded size should stay within a small constant multiple of the empirical entropy bound")
}
