package frequency

import (
	"testing"
)

func TestProfileFromTokens(t *testing.T) {
	p := New([]string{"a", "b", "a", "c", "a"})

	if got := p.Frequency("a"); got != 3 {
		t.Errorf("expected frequency(a) 3, got %d", got)
	}
	if got := p.Frequency("b"); got != 1 {
		t.Errorf("expected frequency(b) 1, got %d", got)
	}
	if got := p.Frequency("z"); got != 0 {
		t.Errorf("expected frequency(z) 0, got %d", got)
	}
	if got := p.TokenCount(); got != 5 {
		t.Errorf("expected token count 5, got %d", got)
	}
	if got := p.Distinct(); got != 3 {
		t.Errorf("expected 3 distinct tokens, got %d", got)
	}
}

func TestProfileIterationOrder(t *testing.T) {
	p := New([]string{"b", "a", "b", "c"})

	var tokens []string
	var total int64
	for token, n := range p.All() {
		tokens = append(tokens, token)
		total += n
	}

	want := []string{"b", "a", "c"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], tokens[i])
		}
	}
	if total != 4 {
		t.Errorf("expected iterated total 4, got %d", total)
	}
}

func TestEmptyProfile(t *testing.T) {
	p := New[string](nil)
	if p.TokenCount() != 0 || p.Distinct() != 0 {
		t.Errorf("expected empty profile, got %d tokens / %d distinct", p.TokenCount(), p.Distinct())
	}

	var nilProfile *Profile[string]
	if nilProfile.Frequency("a") != 0 {
		t.Error("expected nil profile to report zero frequency")
	}
	for range nilProfile.All() {
		t.Error("expected nil profile to yield nothing")
	}
}

func TestFromCountsDropsNonPositive(t *testing.T) {
	p := FromCounts([]int{1, 2, 3, 2}, map[int]int64{1: 4, 2: 0, 3: -1})

	if p.Distinct() != 1 {
		t.Errorf("expected 1 distinct token, got %d", p.Distinct())
	}
	if p.TokenCount() != 4 {
		t.Errorf("expected token count 4, got %d", p.TokenCount())
	}
}

func TestCounterSnapshot(t *testing.T) {
	c := NewCounter[string]()
	c.AddAll([]string{"x", "y", "x"})
	c.Add("z", 0)

	snap := c.Profile()
	c.Add("x", 10)

	if snap.Frequency("x") != 2 {
		t.Errorf("expected snapshot frequency(x) 2, got %d", snap.Frequency("x"))
	}
	if snap.Frequency("z") != 0 {
		t.Error("expected zero-count token to be ignored")
	}
	if c.Profile().Frequency("x") != 12 {
		t.Errorf("expected counter frequency(x) 12, got %d", c.Profile().Frequency("x"))
	}
}
