package feed

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"ordercache-service/ordercache"
)

// SecurityCount is one security id's submitted-order count from a feed
// run.
type SecurityCount struct {
	SecurityID string
	Count      int
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Report aggregates orders by security id into a summary ordered by
// security id: a red-black tree keyed by security id gives a
// deterministic, sorted walk of the summary without a separate sort
// step.
func Report(orders []ordercache.Order) []SecurityCount {
	counts := rbt.NewWith[string, int](compareStrings)

	for _, o := range orders {
		n, _ := counts.Get(o.SecurityID)
		counts.Put(o.SecurityID, n+1)
	}

	out := make([]SecurityCount, 0, counts.Size())
	it := counts.Iterator()
	for it.Next() {
		out = append(out, SecurityCount{SecurityID: it.Key(), Count: it.Value()})
	}
	return out
}
