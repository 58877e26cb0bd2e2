// Package tokenizer turns raw text into the normalized tokens that models are
// trained on and documents are classified by.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type Options struct {
	MinLength      int  `yaml:"min_length"`
	StopWords      bool `yaml:"stop_words"`
	Stem           bool `yaml:"stem"`
	FoldDiacritics bool `yaml:"fold_diacritics"`
}

func DefaultOptions() Options {
	return Options{
		MinLength:      2,
		StopWords:      true,
		Stem:           false,
		FoldDiacritics: true,
	}
}

// Tokenizer is safe for concurrent use.
type Tokenizer struct {
	opts Options
}

func New(opts Options) *Tokenizer {
	if opts.MinLength < 1 {
		opts.MinLength = 1
	}
	return &Tokenizer{opts: opts}
}

func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	if t.opts.FoldDiacritics {
		text = removeDiacritics(text)
	}
	text = cases.Fold().String(text)

	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if t.opts.StopWords && stopWords[word] {
			continue
		}
		if t.opts.Stem {
			word = stem(word)
		}
		if len([]rune(word)) < t.opts.MinLength {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// removeDiacritics decomposes and strips nonspacing marks.
func removeDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, norm.NFD.String(s))
}
