package host

// StaticClient answers every query with the same fixed (age, ok) pair,
// for tests and manual script evaluation that don't need a live chain
// index. A nil age means "unknown" for that query.
type StaticClient struct {
	blockAge uint64
	hasBlock bool
	timeAge  uint64
	hasTime  bool
}

// NewStaticClient builds a StaticClient. A nil pointer means "unknown"
// for that query.
func NewStaticClient(blockAge, timeAge *uint64) *StaticClient {
	c := &StaticClient{}
	if blockAge != nil {
		c.blockAge, c.hasBlock = *blockAge, true
	}
	if timeAge != nil {
		c.timeAge, c.hasTime = *timeAge, true
	}
	return c
}

func (c *StaticClient) BlockAge(Outpoint) (uint64, bool) { return c.blockAge, c.hasBlock }
func (c *StaticClient) TimeAge(Outpoint) (uint64, bool)  { return c.timeAge, c.hasTime }

var _ Client = (*StaticClient)(nil)
