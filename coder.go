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
)

// Coder is a rANS state machine: a single 64-bit register plus a LIFO
// overflow buffer of 32-bit words. It has no scheduling model of its
// own — every method is a pure, synchronous function of the coder's
// state and its inputs, and a Coder must not be accessed concurrently,
// though it may be handed off between goroutines between calls.
type Coder struct {
	state    uint64
	buf      []uint32
	listener Listener
}

// New returns a coder in the initial state: state == 1<<32, buf empty.
func New() *Coder {
	return &Coder{state: stateMin}
}

// NewWithListener is like New but attaches a Listener that is notified
// of every renormalization and termination step.
func NewWithListener(l Listener) *Coder {
	return &Coder{state: stateMin, listener: l}
}

// NewFromWords reconstructs a decoder-side coder from a word stream
// produced by FinishEncoding: state is preloaded as
// (words[n-1]<<32)|words[n-2], and buf holds the remaining words in
// order. This is the decoder contract from the wire format: the caller
// supplies the exact same word sequence, minus the last two words.
func NewFromWords(words []uint32) (*Coder, error) {
	if len(words) < 2 {
		return nil, errors.Newf("rans: word stream too short to hold a terminal state (%d words)", len(words))
	}

	n := len(words)
	low := uint64(words[n-2])
	high := uint64(words[n-1])
	buf := make([]uint32, n-2)
	copy(buf, words[:n-2])

	return &Coder{state: (high << 32) | low, buf: buf}, nil
}

// PushSymbol encodes symbol against distribution, updating the
// coder's state and occasionally spilling the low 32 bits of state to
// buf. It is a package-level generic function rather than a method
// because Go methods cannot introduce new type parameters beyond their
// receiver's — Coder itself stays non-generic so the same coder can
// push/pop symbols of different types and against different
// distribution implementations across its lifetime (the batch helpers
// in batch.go share one coder between LeakyQuantizer and Categorical).
func PushSymbol[S any](c *Coder, symbol S, distribution distributions.DiscreteDistribution[S]) error {
	left, p, err := distribution.LeftCumulativeAndProbability(symbol)

	if err != nil {
		return errors.Wrapf(err, "rans: push_symbol")
	}

	if c.state >= uint64(p)<<(64-FrequencyBits) {
		c.buf = append(c.buf, uint32(c.state))
		c.state >>= 32
		notify(c.listener, EvtRenormalizeOut, len(c.buf), c.state)
	}

	prefix := c.state / uint64(p)
	suffix := c.state%uint64(p) + uint64(left)
	c.state = (prefix << FrequencyBits) | suffix
	return nil
}

// PopSymbol decodes and returns the most recently pushed symbol not
// yet popped, consulting distribution for the inverse CDF lookup.
// Because rANS is a stack, symbols come back in the reverse of the
// order they were pushed.
func PopSymbol[S any](c *Coder, distribution distributions.DiscreteDistribution[S]) (S, error) {
	prefix := c.state >> FrequencyBits
	suffix := uint32(c.state & (TotalMass - 1))

	symbol, left, p := distribution.QuantileFunction(suffix)
	c.state = uint64(p)*prefix + uint64(suffix-left)

	if c.state < stateMin {
		if len(c.buf) == 0 {
			var zero S
			return zero, errors.Wrapf(ErrUnderflow, "rans: pop_symbol")
		}

		word := c.buf[len(c.buf)-1]
		c.buf = c.buf[:len(c.buf)-1]
		c.state = (c.state << 32) | uint64(word)
		notify(c.listener, EvtRenormalizeIn, len(c.buf), c.state)
	}

	return symbol, nil
}

// FinishEncoding flushes the 64-bit state as two final words (low,
// then high) and returns the full word stream. The coder should not be
// reused for encoding after this call.
func (c *Coder) FinishEncoding() []uint32 {
	c.buf = append(c.buf, uint32(c.state), uint32(c.state>>32))
	notify(c.listener, EvtFinishEncoding, len(c.buf), c.state)
	return c.buf
}

// FinishDecoding succeeds iff buf is empty and state is back to the
// initial 1<<32, confirming every pushed symbol was popped and nothing
// was left over.
func (c *Coder) FinishDecoding() error {
	notify(c.listener, EvtFinishDecoding, len(c.buf), c.state)

	if len(c.buf) != 0 || c.state != stateMin {
		return errors.Wrapf(ErrNotFullyConsumed, "buf len %d, state %#x", len(c.buf), c.state)
	}

	return nil
}

// NumBits returns the number of bits FinishEncoding would serialize if
// called now: 32*len(buf) + 64. It is non-decreasing across
// PushSymbol calls and always at least 64.
func (c *Coder) NumBits() int {
	return 32*len(c.buf) + 64
}
