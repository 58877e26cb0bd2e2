package model

import (
	"math"
	"slices"

	"github.com/julienpequegnot/tfclass/internal/frequency"
)

// Quantiles returns nearest-rank quantiles of the document frequencies.
// Each q is clamped to [0, 1]. An empty vocabulary yields zeros.
func (m *Model[T]) Quantiles(qs []float64) []int64 {
	out := make([]int64, len(qs))

	values := make([]int64, 0, m.docFreq.Distinct())
	for _, n := range m.docFreq.All() {
		values = append(values, n)
	}
	if len(values) == 0 {
		return out
	}
	slices.Sort(values)

	for i, q := range qs {
		if math.IsNaN(q) || q < 0 {
			q = 0
		} else if q > 1 {
			q = 1
		}
		idx := int(math.Ceil(q*float64(len(values)))) - 1
		if idx < 0 {
			idx = 0
		}
		out[i] = values[idx]
	}
	return out
}

// KeepFrequencyRange returns a model restricted to tokens whose document
// frequency lies in [lo, hi). Category profiles are trimmed to the same
// vocabulary, so every category token stays known to the corpus.
func (m *Model[T]) KeepFrequencyRange(lo, hi int64) *Model[T] {
	keep := func(token T) bool {
		n := m.docFreq.Frequency(token)
		return n >= lo && n < hi
	}

	docFreq := filter(m.docFreq, keep)
	profiles := make(map[string]*frequency.Profile[T], len(m.categories))
	for _, name := range m.categories {
		profiles[name] = filter(m.profiles[name], keep)
	}
	return New(m.categories, profiles, docFreq, m.samples)
}

func filter[T comparable](p *frequency.Profile[T], keep func(T) bool) *frequency.Profile[T] {
	var tokens []T
	counts := make(map[T]int64)
	for token, n := range p.All() {
		if keep(token) {
			tokens = append(tokens, token)
			counts[token] = n
		}
	}
	return frequency.FromCounts(tokens, counts)
}
