package ordercache

// validate reports whether o is acceptable to addOrder. It never
// mutates the cache; rejection is purely a classification.
func validate(o Order) bool {
	if o.OrderID == "" || o.SecurityID == "" || o.User == "" || o.Qty == 0 {
		return false
	}
	_, ok := canonicalSide(o.Side)
	return ok
}
