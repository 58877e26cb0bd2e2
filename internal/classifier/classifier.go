// Package classifier ranks the categories of a trained model against a
// document using TF-IDF weighted cosine similarity.
//
// A Classifier never mutates the model it was built from, so a single
// instance can serve concurrent calls without locking.
package classifier

import (
	"math"
	"slices"

	"github.com/julienpequegnot/tfclass/internal/frequency"
	"github.com/julienpequegnot/tfclass/internal/model"
	"github.com/julienpequegnot/tfclass/internal/tfidf"
)

// Result is the score of one category for one document. Scores are only
// comparable between results of the same call.
type Result struct {
	Category string
	Score    float64
}

type Option func(*options)

type options struct {
	compatibleProduct bool
}

// WithCompatibleProduct accumulates the dot product the way earlier releases
// did: each token adds the running squared magnitude of the shorter profile
// times the token weight in the longer one. Scores then depend on token
// order and are not a true cosine, but match previously recorded output.
func WithCompatibleProduct() Option {
	return func(o *options) {
		o.compatibleProduct = true
	}
}

type Classifier[T comparable] struct {
	model   *model.Model[T]
	formula tfidf.Formula
	opts    options
}

// New returns a classifier over m. A nil formula means tfidf.Standard and a
// nil model behaves as one without categories.
func New[T comparable](m *model.Model[T], formula tfidf.Formula, opts ...Option) *Classifier[T] {
	if formula == nil {
		formula = tfidf.Standard
	}
	if m == nil {
		m = model.New[T](nil, nil, nil, 0)
	}
	c := &Classifier[T]{model: m, formula: formula}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Candidates scores every category, in model order.
func (c *Classifier[T]) Candidates(tokens []T) []Result {
	document := frequency.New(tokens)
	categories := c.model.Categories()

	results := make([]Result, len(categories))
	for i, name := range categories {
		results[i] = Result{
			Category: name,
			Score:    c.cosSquare(document, c.model.Profile(name)),
		}
	}
	return results
}

// Rank returns categories by descending score. Equal scores keep model
// order. When limit > 0 only the top limit results are returned.
func (c *Classifier[T]) Rank(tokens []T, limit int) []Result {
	results := c.Candidates(tokens)
	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Best returns the top ranked category. ok is false when the model has no
// categories.
func (c *Classifier[T]) Best(tokens []T) (Result, bool) {
	results := c.Rank(tokens, 1)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

// cosSquare returns the squared cosine similarity of the weighted vectors,
// iterating only over the tokens of the profile with fewer distinct tokens.
// Profiles of equal size are scored in both orientations and the higher
// score wins, so the result never depends on argument order.
func (c *Classifier[T]) cosSquare(document, category *frequency.Profile[T]) float64 {
	switch d, k := document.Distinct(), category.Distinct(); {
	case d < k:
		return c.orientedCosSquare(document, category)
	case d > k:
		return c.orientedCosSquare(category, document)
	}
	return max(c.orientedCosSquare(document, category), c.orientedCosSquare(category, document))
}

func (c *Classifier[T]) orientedCosSquare(shorter, longer *frequency.Profile[T]) float64 {
	docFreq := c.model.DocumentFrequencies()
	docCount := c.model.SampleCount()

	var product, shortModSq, longModSq float64
	for token, n := range shorter.All() {
		df := docFreq.Frequency(token)
		short := c.formula.Weight(n, df, docCount)
		long := c.formula.Weight(longer.Frequency(token), df, docCount)

		shortModSq += short * short
		longModSq += long * long
		if c.opts.compatibleProduct {
			product += shortModSq * long
		} else {
			product += short * long
		}
	}

	if shortModSq == 0 || longModSq == 0 {
		return 0
	}
	score := product * product / (shortModSq * longModSq)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return score
}
