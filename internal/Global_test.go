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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeByteHistogramSumsToLength(t *testing.T) {
	block := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps again")
	freqs := make([]int, 256)
	ComputeByteHistogram(block, freqs)

	sum := 0

	for _, f := range freqs {
		sum += f
	}

	assert.Equal(t, len(block), sum)
}

func TestLog2NoCheckMatchesKnownPowers(t *testing.T) {
	assert.Equal(t, uint32(0), Log2NoCheck(1))
	assert.Equal(t, uint32(1), Log2NoCheck(2))
	assert.Equal(t, uint32(10), Log2NoCheck(1024))
	assert.Equal(t, uint32(20), Log2NoCheck(1<<20))
}

func TestLog2RejectsZero(t *testing.T) {
	_, err := Log2(0)
	assert.Error(t, err)
}

func TestComputeJobsPerTaskDistributesRemainder(t *testing.T) {
	jobs, err := ComputeJobsPerTask(make([]uint, 3), 10, 3)
	require.NoError(t, err)

	var sum uint

	for _, j := range jobs {
		sum += j
	}

	assert.EqualValues(t, 10, sum)
	assert.Equal(t, []uint{4, 3, 3}, jobs)
}
