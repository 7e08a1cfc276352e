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

// Package rans implements a range Asymmetric Numeral System (rANS)
// entropy coder: a stack-like state machine that turns a sequence of
// integer symbols, each drawn from a caller-supplied discrete
// probability distribution, into a compact stream of 32-bit words and
// back.
//
// The coder itself never builds a distribution: concrete distribution
// adapters (a leaky quantizer over a continuous density, and an
// arbitrary-weight categorical) live in the distributions
// subpackage. The coder is generic over the small capability set those
// adapters expose.
package rans

// FrequencyBits is the number of fractional bits in the integer
// probability representation. TotalMass = 1 << FrequencyBits is the
// total probability mass every distribution must sum to exactly.
const (
	FrequencyBits = 24
	TotalMass     = 1 << FrequencyBits
)

// rANS register bounds. The state is normalized to [stateMin, 1<<64)
// between operations; it is exactly stateMin only for a fresh or fully
// decoded coder.
const stateMin = uint64(1) << 32
