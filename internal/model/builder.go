package model

import (
	"github.com/julienpequegnot/tfclass/internal/frequency"
)

// Builder accumulates labeled documents into a Model.
type Builder[T comparable] struct {
	categories []string
	counters   map[string]*frequency.Counter[T]
	docFreq    *frequency.Counter[T]
	samples    int64
}

func NewBuilder[T comparable]() *Builder[T] {
	return &Builder[T]{
		counters: make(map[string]*frequency.Counter[T]),
		docFreq:  frequency.NewCounter[T](),
	}
}

// Add records one training document of the given category.
func (b *Builder[T]) Add(category string, tokens []T) {
	counter, ok := b.counters[category]
	if !ok {
		counter = frequency.NewCounter[T]()
		b.counters[category] = counter
		b.categories = append(b.categories, category)
	}
	counter.AddAll(tokens)

	seen := make(map[T]struct{}, len(tokens))
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		b.docFreq.Add(token, 1)
	}
	b.samples++
}

func (b *Builder[T]) SampleCount() int64 {
	return b.samples
}

// Build snapshots the accumulated counts. The builder stays usable.
func (b *Builder[T]) Build() *Model[T] {
	profiles := make(map[string]*frequency.Profile[T], len(b.counters))
	for name, counter := range b.counters {
		profiles[name] = counter.Profile()
	}
	return New(b.categories, profiles, b.docFreq.Profile(), b.samples)
}
