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

import "sort"

// remainderSlot is one candidate for the "largest fractional remainder
// wins" bucket in distributeRemainder. This mirrors the teacher's
// freqSortData / sortByFreq pair in entropy.NormalizeFrequencies, which
// solves the same problem (integer frequencies must sum exactly to a
// target after proportional scaling) for ANS header frequencies; here
// it solves it for a Categorical distribution's probability mass.
type remainderSlot struct {
	index int
	frac  float64
}

type byRemainderDesc []remainderSlot

func (s byRemainderDesc) Len() int { return len(s) }

func (s byRemainderDesc) Less(i, j int) bool {
	if s[i].frac != s[j].frac {
		return s[i].frac > s[j].frac
	}
	// Tie-break: smaller index (symbol) first.
	return s[i].index < s[j].index
}

func (s byRemainderDesc) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// distributeRemainder increments p[slot] for the `remaining` slots
// with the largest fractional remainder (ties broken by smaller
// index), so that sum(p) reaches sum(p)+remaining exactly. frac must
// have the same length as p; p and frac are indexed identically
// (index i corresponds to the i-th supported symbol in increasing
// order, not the symbol value itself).
func distributeRemainder(p []uint32, frac []float64, remaining int) {
	if remaining <= 0 {
		return
	}

	queue := make(byRemainderDesc, len(frac))

	for i, f := range frac {
		queue[i] = remainderSlot{index: i, frac: f}
	}

	sort.Sort(queue)

	for i := 0; i < remaining; i++ {
		p[queue[i%len(queue)].index]++
	}
}
