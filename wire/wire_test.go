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

package wire

import (
	"testing"

	rans "github.com/quantiled/rans"
	"github.com/quantiled/rans/distributions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestRoundTrip confirms an uncorrupted stream decodes to the
// identical word slice it was built from.
func TestRoundTrip(t *testing.T) {
	words := []uint32{0x00000001, 0xDEADBEEF, 0x12345678, 0xFFFFFFFF}

	encoded := Encode(words)
	decoded, err := Decode(encoded)

	require.NoError(t, err)
	assert.Equal(t, words, decoded)
}

func TestEmptyWordStream(t *testing.T) {
	encoded := Encode(nil)
	decoded, err := Decode(encoded)

	require.NoError(t, err)
	assert.Empty(t, decoded)
}

// TestCorruptedByteDetected is scenario S8: flipping a single payload
// byte must surface as ErrCorruptStream rather than silently decoding
// a different word stream.
func TestCorruptedByteDetected(t *testing.T) {
	words := []uint32{1, 2, 3, 4, 5}
	encoded := Encode(words)

	// Flip a bit squarely inside the first word's payload bytes (after
	// the 4-byte magic header).
	corrupted := append([]byte(nil), encoded...)
	corrupted[4] ^= 0x01

	_, err := Decode(corrupted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptStream)
}

func TestTruncatedStreamRejected(t *testing.T) {
	words := []uint32{1, 2, 3}
	encoded := Encode(words)

	_, err := Decode(encoded[:len(encoded)-3])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptStream)
}

func TestBadMagicRejected(t *testing.T) {
	words := []uint32{1, 2, 3}
	encoded := Encode(words)
	encoded[0] ^= 0xFF

	_, err := Decode(encoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptStream)
}

// TestWireFramedStreamDecodesThroughCoder completes scenario S8's
// third part: encoding through wire.Encode and back through
// wire.Decode must hand rans.NewFromWords/PopSymbol the exact same
// words a direct in-process round trip would, recovering the original
// symbols.
func TestWireFramedStreamDecodesThroughCoder(t *testing.T) {
	quantizer, err := distributions.NewLeakyQuantizer[int32](-127, 127)
	require.NoError(t, err)

	dist := quantizer.Quantize(distuv.Normal{Mu: 0, Sigma: 30})

	symbols := []int32{3, -100, 42, -5, 127, -127}

	c := rans.New()
	for _, s := range symbols {
		require.NoError(t, rans.PushSymbol(c, s, dist))
	}

	words := c.FinishEncoding()

	framed := Encode(words)
	recovered, err := Decode(framed)
	require.NoError(t, err)
	require.Equal(t, words, recovered)

	dec, err := rans.NewFromWords(recovered)
	require.NoError(t, err)

	for i := len(symbols) - 1; i >= 0; i-- {
		got, err := rans.PopSymbol(dec, dist)
		require.NoError(t, err)
		assert.Equal(t, symbols[i], got)
	}

	require.NoError(t, dec.FinishDecoding())
}

// TestWireFramedTruncatedWordStreamUnderflows chains scenario S5's
// truncation-Underflow behavior with wire framing: a word dropped from
// the rANS word stream before it is ever framed must still surface as
// ErrUnderflow once the wire-round-tripped words reach the coder, not
// as a framing error (wire has nothing to detect here — the stream it
// received is internally well-formed, just short one rANS word).
func TestWireFramedTruncatedWordStreamUnderflows(t *testing.T) {
	quantizer, err := distributions.NewLeakyQuantizer[int32](-127, 127)
	require.NoError(t, err)

	dist := quantizer.Quantize(distuv.Normal{Mu: 0, Sigma: 30})

	const n = 64
	symbols := make([]int32, n)
	for i := range symbols {
		symbols[i] = int32(i*7%255 - 127)
	}

	c := rans.New()
	for _, s := range symbols {
		require.NoError(t, rans.PushSymbol(c, s, dist))
	}

	words := c.FinishEncoding()
	require.Greater(t, len(words), 2, "test requires at least one spilled word to truncate")

	truncatedWords := words[:len(words)-1]

	framed := Encode(truncatedWords)
	recovered, err := Decode(framed)
	require.NoError(t, err, "a deliberately-short word stream is still a well-formed wire frame")
	require.Equal(t, truncatedWords, recovered)

	dec, err := rans.NewFromWords(recovered)
	require.NoError(t, err)

	poppedOK := 0
	var popErr error

	for i := 0; i < n; i++ {
		if _, popErr = rans.PopSymbol(dec, dist); popErr != nil {
			break
		}

		poppedOK++
	}

	require.Error(t, popErr)
	assert.ErrorIs(t, popErr, rans.ErrUnderflow)
	assert.Less(t, poppedOK, n)
}
