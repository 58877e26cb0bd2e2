// Package model holds trained classification models: one frequency profile
// per category, the corpus-wide document frequencies and the number of
// training samples.
package model

import (
	"github.com/julienpequegnot/tfclass/internal/frequency"
)

// Model is read-only once built and may be shared between goroutines.
type Model[T comparable] struct {
	categories []string
	profiles   map[string]*frequency.Profile[T]
	docFreq    *frequency.Profile[T]
	samples    int64
}

// New assembles a model. Categories keep the given order; a category without
// a profile gets an empty one.
func New[T comparable](categories []string, profiles map[string]*frequency.Profile[T], docFreq *frequency.Profile[T], samples int64) *Model[T] {
	m := &Model[T]{
		profiles: make(map[string]*frequency.Profile[T], len(categories)),
		docFreq:  docFreq,
		samples:  samples,
	}
	if m.docFreq == nil {
		m.docFreq = frequency.New[T](nil)
	}
	for _, name := range categories {
		if _, dup := m.profiles[name]; dup {
			continue
		}
		p := profiles[name]
		if p == nil {
			p = frequency.New[T](nil)
		}
		m.categories = append(m.categories, name)
		m.profiles[name] = p
	}
	if m.samples < 0 {
		m.samples = 0
	}
	return m
}

// Categories returns category names in model order.
func (m *Model[T]) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// Profile returns the profile of a category, nil if unknown.
func (m *Model[T]) Profile(category string) *frequency.Profile[T] {
	return m.profiles[category]
}

// DocumentFrequencies maps each token to the number of training documents
// containing it.
func (m *Model[T]) DocumentFrequencies() *frequency.Profile[T] {
	return m.docFreq
}

func (m *Model[T]) SampleCount() int64 {
	return m.samples
}

func (m *Model[T]) VocabularySize() int {
	return m.docFreq.Distinct()
}
