package frequency

// Counter accumulates token counts. It is not safe for concurrent use.
type Counter[T comparable] struct {
	order  []T
	counts map[T]int64
}

func NewCounter[T comparable]() *Counter[T] {
	return &Counter[T]{counts: make(map[T]int64)}
}

// Add increases the count of token by n. Non-positive n is ignored.
func (c *Counter[T]) Add(token T, n int64) {
	if n <= 0 {
		return
	}
	if _, ok := c.counts[token]; !ok {
		c.order = append(c.order, token)
	}
	c.counts[token] += n
}

func (c *Counter[T]) AddAll(tokens []T) {
	for _, token := range tokens {
		c.Add(token, 1)
	}
}

func (c *Counter[T]) Len() int {
	return len(c.order)
}

// Profile returns an immutable snapshot of the current counts.
func (c *Counter[T]) Profile() *Profile[T] {
	return FromCounts(c.order, c.counts)
}
