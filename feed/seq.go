package feed

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// SeqGenerator stamps ingest diagnostics with a monotonic sequence
// number. Builds the id with a pooled strings.Builder and
// strconv.FormatUint rather than fmt.Sprintf, since this runs once per
// submitted order on the ingest hot path.
type SeqGenerator struct {
	prefix      string
	counter     uint64
	builderPool sync.Pool
}

// NewSeqGenerator creates a generator whose ids are prefix + an
// increasing counter (e.g. "feed-1", "feed-2", ...).
func NewSeqGenerator(prefix string) *SeqGenerator {
	g := &SeqGenerator{prefix: prefix}
	g.builderPool.New = func() any {
		b := &strings.Builder{}
		b.Grow(24)
		return b
	}
	return g
}

// Next returns the next sequence id.
func (g *SeqGenerator) Next() string {
	n := atomic.AddUint64(&g.counter, 1)

	b := g.builderPool.Get().(*strings.Builder)
	defer func() {
		b.Reset()
		g.builderPool.Put(b)
	}()

	b.WriteString(g.prefix)
	b.WriteString(strconv.FormatUint(n, 10))
	return b.String()
}
