package classifier

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/julienpequegnot/tfclass/internal/frequency"
	"github.com/julienpequegnot/tfclass/internal/model"
	"github.com/julienpequegnot/tfclass/internal/tfidf"
)

func profile(pairs ...any) *frequency.Profile[string] {
	var tokens []string
	counts := make(map[string]int64)
	for i := 0; i+1 < len(pairs); i += 2 {
		token := pairs[i].(string)
		tokens = append(tokens, token)
		counts[token] = int64(pairs[i+1].(int))
	}
	return frequency.FromCounts(tokens, counts)
}

// catDogModel: 3 training documents, "cat" seen in 1 of them, "dog" in 2.
func catDogModel() *model.Model[string] {
	return model.New(
		[]string{"felines", "canines"},
		map[string]*frequency.Profile[string]{
			"felines": profile("cat", 2),
			"canines": profile("dog", 7),
		},
		profile("cat", 1, "dog", 2),
		3,
	)
}

func scoreOf(t *testing.T, results []Result, category string) float64 {
	t.Helper()
	for _, r := range results {
		if r.Category == category {
			return r.Score
		}
	}
	t.Fatalf("category %s missing from results %v", category, results)
	return 0
}

func TestStandardRanksSharedRareToken(t *testing.T) {
	c := New(catDogModel(), tfidf.Standard)

	results := c.Rank([]string{"cat", "cat"}, 0)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Category != "felines" {
		t.Errorf("expected felines first, got %v", results)
	}
	felines := scoreOf(t, results, "felines")
	canines := scoreOf(t, results, "canines")
	if felines <= canines {
		t.Errorf("expected felines (%f) > canines (%f)", felines, canines)
	}
	if math.Abs(felines-1) > 1e-12 {
		t.Errorf("expected identical direction to score 1, got %f", felines)
	}
}

func TestEmptyDocumentScoresZero(t *testing.T) {
	for _, f := range []tfidf.Formula{tfidf.Standard, tfidf.Frequency, tfidf.Threshold} {
		c := New(catDogModel(), f)
		results := c.Candidates(nil)
		if len(results) != 2 {
			t.Fatalf("expected one result per category, got %d", len(results))
		}
		for _, r := range results {
			if r.Score != 0 {
				t.Errorf("expected 0 for empty document, got %f for %s", r.Score, r.Category)
			}
		}
	}
}

func TestNoSharedTokensScoresZero(t *testing.T) {
	c := New(catDogModel(), tfidf.Frequency)

	results := c.Candidates([]string{"zebra", "lion"})
	for _, r := range results {
		if r.Score != 0 {
			t.Errorf("expected 0 for disjoint vocabularies, got %f for %s", r.Score, r.Category)
		}
	}
}

func TestEmptyCategoryScoresZero(t *testing.T) {
	m := model.New[string]([]string{"empty"}, nil, profile("cat", 1), 1)
	c := New(m, tfidf.Frequency)

	if got := c.Candidates([]string{"cat"})[0].Score; got != 0 {
		t.Errorf("expected 0 against an empty category, got %f", got)
	}
}

func TestThresholdIgnoresMagnitude(t *testing.T) {
	m := model.New(
		[]string{"only"},
		map[string]*frequency.Profile[string]{"only": profile("x", 1, "y", 3)},
		profile("x", 1, "y", 1),
		2,
	)
	c := New(m, tfidf.Threshold)

	many := c.Candidates([]string{"x", "x", "x", "x", "x"})[0].Score
	once := c.Candidates([]string{"x"})[0].Score

	if many != once {
		t.Errorf("expected presence-only scoring, got %f vs %f", many, once)
	}
	if math.Abs(many-1) > 1e-12 {
		t.Errorf("expected score 1, got %f", many)
	}
}

func TestScoreIndependentOfArgumentOrder(t *testing.T) {
	m := model.New[string](nil, nil, profile("a", 2, "b", 1, "c", 3, "d", 1), 5)
	c := New(m, tfidf.Standard)

	small := profile("a", 3, "b", 1)
	large := profile("a", 1, "b", 4, "c", 2)

	forward := c.cosSquare(small, large)
	backward := c.cosSquare(large, small)

	if forward != backward {
		t.Errorf("expected symmetric score, got %f and %f", forward, backward)
	}
	if forward <= 0 {
		t.Errorf("expected positive score for overlapping profiles, got %f", forward)
	}
}

func TestEqualSizeScoreIndependentOfArgumentOrder(t *testing.T) {
	m := model.New[string](nil, nil, profile("a", 1, "b", 1, "c", 1), 2)

	// Both profiles hold two distinct tokens but weigh them very differently.
	left := profile("a", 1, "b", 5)
	right := profile("a", 1, "c", 1)

	for _, c := range []*Classifier[string]{
		New(m, tfidf.Frequency),
		New(m, tfidf.Frequency, WithCompatibleProduct()),
	} {
		forward := c.cosSquare(left, right)
		backward := c.cosSquare(right, left)
		if forward != backward {
			t.Errorf("compatible=%v: expected symmetric score, got %f and %f",
				c.opts.compatibleProduct, forward, backward)
		}
		if math.Abs(forward-0.5) > 1e-12 {
			t.Errorf("compatible=%v: expected 0.5, got %f", c.opts.compatibleProduct, forward)
		}
	}
}

func TestStandardProductGolden(t *testing.T) {
	m := model.New(
		[]string{"c"},
		map[string]*frequency.Profile[string]{"c": profile("a", 2, "b", 1, "c", 1)},
		profile("a", 1, "b", 1, "c", 1),
		1,
	)

	// document a=1, b=2 is shorter: dot = 1*2 + 2*1 = 4, |s|^2 = 5, |l|^2 = 5
	got := New(m, tfidf.Frequency).Candidates([]string{"a", "b", "b"})[0].Score
	if math.Abs(got-0.64) > 1e-12 {
		t.Errorf("expected 0.64, got %f", got)
	}
}

func TestCompatibleProductGolden(t *testing.T) {
	m := model.New(
		[]string{"c"},
		map[string]*frequency.Profile[string]{"c": profile("a", 2, "b", 1, "c", 1)},
		profile("a", 1, "b", 1, "c", 1),
		1,
	)

	// a: |s|^2 = 1, product += 1*2; b: |s|^2 = 5, product += 5*1 -> 7
	got := New(m, tfidf.Frequency, WithCompatibleProduct()).Candidates([]string{"a", "b", "b"})[0].Score
	if math.Abs(got-49.0/25.0) > 1e-12 {
		t.Errorf("expected 1.96, got %f", got)
	}
}

func TestNonFiniteFormulaScoresZero(t *testing.T) {
	formulas := map[string]tfidf.Formula{
		"nan": tfidf.FormulaFunc(func(freq, _, _ int64) float64 {
			if freq == 0 {
				return 0
			}
			return math.NaN()
		}),
		"inf": tfidf.FormulaFunc(func(freq, _, _ int64) float64 {
			if freq == 0 {
				return 0
			}
			return math.Inf(1)
		}),
	}

	for name, f := range formulas {
		c := New(catDogModel(), f)
		for _, r := range c.Candidates([]string{"cat"}) {
			if r.Score != 0 {
				t.Errorf("%s: expected 0, got %f for %s", name, r.Score, r.Category)
			}
		}
	}
}

func TestRankOrderingAndLimit(t *testing.T) {
	m := model.New(
		[]string{"alpha", "beta", "gamma"},
		map[string]*frequency.Profile[string]{
			"alpha": profile("x", 1),
			"beta":  profile("y", 1),
			"gamma": profile("y", 4),
		},
		profile("x", 1, "y", 2),
		3,
	)
	c := New(m, tfidf.Threshold)

	all := c.Rank([]string{"y"}, 0)
	var names []string
	for _, r := range all {
		names = append(names, r.Category)
	}
	if !slices.Equal(names, []string{"beta", "gamma", "alpha"}) {
		t.Errorf("expected ties in model order, got %v", names)
	}

	top := c.Rank([]string{"y"}, 1)
	if len(top) != 1 || top[0].Category != "beta" {
		t.Errorf("expected [beta], got %v", top)
	}

	if got := c.Rank([]string{"y"}, 10); len(got) != 3 {
		t.Errorf("expected limit above category count to return all, got %d", len(got))
	}

	best, ok := c.Best([]string{"x"})
	if !ok || best.Category != "alpha" {
		t.Errorf("expected alpha, got %v (ok=%v)", best, ok)
	}
}

func TestBestWithoutCategories(t *testing.T) {
	c := New(model.NewBuilder[string]().Build(), nil)
	if _, ok := c.Best([]string{"a"}); ok {
		t.Error("expected no result for a model without categories")
	}
}

func TestNilModelHasNoCategories(t *testing.T) {
	c := New[string](nil, nil)

	if got := c.Candidates([]string{"a"}); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
	if _, ok := c.Best([]string{"a"}); ok {
		t.Error("expected no result for a nil model")
	}
}

func TestTrainedModelRanksOwnCategory(t *testing.T) {
	b := model.NewBuilder[string]()
	b.Add("go", []string{"goroutine", "channel", "interface", "compiler"})
	b.Add("go", []string{"goroutine", "slice", "map", "channel"})
	b.Add("cooking", []string{"pasta", "sauce", "oven", "salt"})
	b.Add("cooking", []string{"pizza", "oven", "cheese", "salt"})
	c := New(b.Build(), tfidf.Standard)

	best, ok := c.Best([]string{"channel", "goroutine", "deadlock"})
	if !ok || best.Category != "go" {
		t.Errorf("expected go, got %v", best)
	}
	best, _ = c.Best([]string{"oven", "cheese", "pizza", "pizza"})
	if best.Category != "cooking" {
		t.Errorf("expected cooking, got %v", best)
	}
}

func TestConcurrentRank(t *testing.T) {
	c := New(catDogModel(), tfidf.Standard)
	doc := []string{"cat", "dog", "cat"}
	want := c.Rank(doc, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := c.Rank(doc, 0)
			if !slices.Equal(got, want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		}()
	}
	wg.Wait()
}
