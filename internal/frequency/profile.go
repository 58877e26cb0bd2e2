// Package frequency counts token occurrences.
//
// A Profile is the read-only side: built once from a token sequence and never
// mutated afterwards, so it can be shared between goroutines. A Counter is the
// accumulation side used while training a model.
package frequency

import "iter"

// Profile maps tokens to their occurrence count.
// Iteration follows the order in which tokens were first seen.
type Profile[T comparable] struct {
	order  []T
	counts map[T]int64
	total  int64
}

// New folds tokens into a profile, one increment per occurrence.
func New[T comparable](tokens []T) *Profile[T] {
	p := &Profile[T]{counts: make(map[T]int64, len(tokens))}
	for _, token := range tokens {
		if _, ok := p.counts[token]; !ok {
			p.order = append(p.order, token)
		}
		p.counts[token]++
	}
	p.total = int64(len(tokens))
	return p
}

// FromCounts builds a profile from precomputed counts. Tokens are visited in
// the order of the tokens slice; tokens without a positive count are dropped.
func FromCounts[T comparable](tokens []T, counts map[T]int64) *Profile[T] {
	p := &Profile[T]{counts: make(map[T]int64, len(tokens))}
	for _, token := range tokens {
		n := counts[token]
		if n <= 0 {
			continue
		}
		if _, dup := p.counts[token]; dup {
			continue
		}
		p.order = append(p.order, token)
		p.counts[token] = n
		p.total += n
	}
	return p
}

// Frequency returns the count of token, 0 when absent.
func (p *Profile[T]) Frequency(token T) int64 {
	if p == nil {
		return 0
	}
	return p.counts[token]
}

// TokenCount returns the sum of all occurrence counts.
func (p *Profile[T]) TokenCount() int64 {
	if p == nil {
		return 0
	}
	return p.total
}

// Distinct returns the number of distinct tokens.
func (p *Profile[T]) Distinct() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// All iterates over token/count pairs.
func (p *Profile[T]) All() iter.Seq2[T, int64] {
	return func(yield func(T, int64) bool) {
		if p == nil {
			return
		}
		for _, token := range p.order {
			if !yield(token, p.counts[token]) {
				return
			}
		}
	}
}

// Tokens returns a copy of the distinct tokens in iteration order.
func (p *Profile[T]) Tokens() []T {
	if p == nil {
		return nil
	}
	out := make([]T, len(p.order))
	copy(out, p.order)
	return out
}
