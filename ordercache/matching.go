package ordercache

import "sort"

// companyQty is one company's aggregated quantity on one side of a
// security, the unit the crossing algorithm operates on.
type companyQty struct {
	company string
	qty     uint64
}

// matchingSize computes the matching size for the given orders, which
// must all belong to the same security. It never mutates its input or
// the cache; diag receives a diagnostic when fewer than two sides are
// present.
func matchingSize(orders []Order, diag *diagnostics) uint64 {
	var sells, buys []companyQty

	for _, o := range orders {
		s, ok := canonicalSide(o.Side)
		if !ok {
			// Cannot occur given validation at addOrder time; skipped
			// defensively.
			continue
		}
		switch s {
		case sideSell:
			sells = append(sells, companyQty{o.Company, o.Qty})
		case sideBuy:
			buys = append(buys, companyQty{o.Company, o.Qty})
		}
	}

	if len(sells) == 0 || len(buys) == 0 {
		diag.reject(ReasonEmptySides, "")
		return 0
	}

	sells = collapseByCompany(sells)
	buys = collapseByCompany(buys)

	sortDescending(sells)
	sortDescending(buys)

	return cross(buys, sells)
}

// collapseByCompany sums quantities sharing a company into one entry.
// Entries are processed in reverse insertion order and emitted in order
// of first encounter during that reverse walk - a deterministic
// tie-break that makes the collapsed list's order reproducible across
// runs, independent of map iteration order.
func collapseByCompany(in []companyQty) []companyQty {
	out := make([]companyQty, 0, len(in))
	index := make(map[string]int, len(in))

	for i := len(in) - 1; i >= 0; i-- {
		item := in[i]
		if pos, ok := index[item.company]; ok {
			out[pos].qty += item.qty
			continue
		}
		index[item.company] = len(out)
		out = append(out, item)
	}
	return out
}

// sortDescending orders entries by quantity descending. The tie-break
// between equal quantities is unspecified and does not affect the final
// sum: the crossing algorithm is sum-preserving under any permutation of
// a side, given the same-company exclusion.
func sortDescending(entries []companyQty) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].qty > entries[j].qty
	})
}

// cross sweeps buy entries against sell entries, crossing quantity
// between any pair from different companies and skipping pairs from the
// same company (including two empty-string companies, which compare
// equal and therefore block their own mutual matching).
func cross(buys, sells []companyQty) uint64 {
	var matched uint64

	for bi := range buys {
		b := buys[bi].qty
		if b == 0 {
			continue
		}
		bCompany := buys[bi].company

		for si := range sells {
			if b == 0 {
				break
			}
			s := sells[si].qty
			if s == 0 || sells[si].company == bCompany {
				continue
			}

			m := b
			if s < m {
				m = s
			}
			matched += m
			b -= m
			sells[si].qty -= m
		}
	}

	return matched
}
