// Package tfidf provides term weighting formulas used by the classifier.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var ErrUnknownFormula = errors.New("unknown tf-idf formula")

// Formula weighs a token given its frequency in a profile, the number of
// training documents containing it, and the number of training documents.
// Implementations must return a finite, non-negative value for any
// non-negative input.
type Formula interface {
	Weight(freq, docFreq, docCount int64) float64
}

// FormulaFunc adapts an ordinary function to Formula.
type FormulaFunc func(freq, docFreq, docCount int64) float64

func (f FormulaFunc) Weight(freq, docFreq, docCount int64) float64 {
	return f(freq, docFreq, docCount)
}

var (
	// Standard is logarithmic term frequency times smoothed inverse document
	// frequency. A token unknown to the corpus (docFreq 0) weighs 0.
	Standard Formula = FormulaFunc(standard)

	// Frequency uses the raw term frequency.
	Frequency Formula = FormulaFunc(rawFrequency)

	// Threshold only records presence.
	Threshold Formula = FormulaFunc(threshold)
)

var formulas = map[string]Formula{
	"standard":  Standard,
	"frequency": Frequency,
	"threshold": Threshold,
}

func standard(freq, docFreq, docCount int64) float64 {
	if freq <= 0 || docFreq <= 0 {
		return 0
	}
	if docCount < 0 {
		docCount = 0
	}
	tf := 1 + math.Log(float64(freq))
	idf := math.Log(1 + float64(docCount)/float64(docFreq))
	return tf * idf
}

func rawFrequency(freq, _, _ int64) float64 {
	if freq <= 0 {
		return 0
	}
	return float64(freq)
}

func threshold(freq, _, _ int64) float64 {
	if freq <= 0 {
		return 0
	}
	return 1
}

// Lookup resolves a formula by name, ignoring case and surrounding spaces.
func Lookup(name string) (Formula, error) {
	f, ok := formulas[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormula, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the built-in formula names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(formulas))
	for name := range formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
