package ordercache

import (
	"reflect"
	"testing"
)

func order(id, secID, side string, qty uint64, user, company string) Order {
	return Order{OrderID: id, SecurityID: secID, Side: side, Qty: qty, User: user, Company: company}
}

func ids(orders []Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.OrderID
	}
	return out
}

// TestScenarioAddCancelSnapshot adds three orders, cancels one by id,
// and checks that a snapshot reflects only the survivors in insertion
// order.
func TestScenarioAddCancelSnapshot(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "1", "Buy", 200, "David", "Zero"))
	c.AddOrder(order("2", "9", "Sell", 600, "Dede", "Flames"))
	c.AddOrder(order("3", "1337", "Sell", 800, "Dexter", "Point"))

	c.CancelOrder("2")

	got := ids(c.GetAllOrders())
	want := []string{"1", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestScenarioCancelByUser adds four orders, two of them Dexter's, and
// checks that cancelOrdersForUser("Dexter") leaves only the other two.
func TestScenarioCancelByUser(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "1", "Buy", 200, "David", "Zero"))
	c.AddOrder(order("2", "9", "Sell", 600, "Dede", "Flames"))
	c.AddOrder(order("3", "1337", "Sell", 800, "Dexter", "Point"))
	c.AddOrder(order("4", "1337", "Buy", 1800, "Dexter", "Zero"))

	c.CancelOrdersForUser("Dexter")

	got := ids(c.GetAllOrders())
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestScenarioCancelBySecurityMinQtyZero checks the minQty==0 case: the
// fifth add reuses a live order id ("4") and is rejected as a
// duplicate, so cancelOrdersForSecIdWithMinimumQty("1337", 0) only ever
// sees, and clears, the original two "1337" orders.
func TestScenarioCancelBySecurityMinQtyZero(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "1", "Buy", 200, "David", "Zero"))
	c.AddOrder(order("2", "9", "Sell", 600, "Dede", "Flames"))
	c.AddOrder(order("3", "1337", "Sell", 800, "Dexter", "Point"))
	c.AddOrder(order("4", "1337", "Buy", 1800, "Dexter", "Zero"))
	c.AddOrder(order("4", "1337", "Sell", 1300, "Dexter", "Zero")) // duplicate id, rejected

	c.CancelOrdersForSecIdWithMinimumQty("1337", 0)

	got := ids(c.GetAllOrders())
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestScenarioCancelBySecurityMinQty uses the same five adds (the fifth
// rejected as a duplicate id); cancelOrdersForSecIdWithMinimumQty with a
// nonzero threshold only removes the "1337" order whose quantity clears
// it.
func TestScenarioCancelBySecurityMinQty(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "1", "Buy", 200, "David", "Zero"))
	c.AddOrder(order("2", "9", "Sell", 600, "Dede", "Flames"))
	c.AddOrder(order("3", "1337", "Sell", 800, "Dexter", "Point"))
	c.AddOrder(order("4", "1337", "Buy", 1800, "Dexter", "Zero"))
	c.AddOrder(order("4", "1337", "Sell", 1300, "Dexter", "Zero")) // duplicate id, rejected

	c.CancelOrdersForSecIdWithMinimumQty("1337", 1000)

	got := c.GetAllOrders()
	if len(got) != 3 {
		t.Fatalf("got %d orders, want 3: %v", len(got), ids(got))
	}
	if got[0].OrderID != "1" || got[len(got)-1].OrderID != "3" {
		t.Fatalf("got ids %v, want first=1 last=3", ids(got))
	}
}

func TestAddOrderRejectsInvalid(t *testing.T) {
	cases := []Order{
		order("", "s", "buy", 1, "u", ""),
		order("o", "", "buy", 1, "u", ""),
		order("o", "s", "buy", 1, "", ""),
		order("o", "s", "buy", 0, "u", ""),
		order("o", "s", "sideways", 1, "u", ""),
	}
	for i, o := range cases {
		c := NewOrderCache(nil)
		c.AddOrder(o)
		if len(c.GetAllOrders()) != 0 {
			t.Fatalf("case %d: expected reject, got %v", i, c.GetAllOrders())
		}
	}
}

func TestAddOrderSideCaseInsensitive(t *testing.T) {
	for _, side := range []string{"BUY", "buy", "Buy", "SELL", "sell", "Sell"} {
		c := NewOrderCache(nil)
		c.AddOrder(order("1", "s", side, 1, "u", ""))
		if len(c.GetAllOrders()) != 1 {
			t.Fatalf("side %q: expected accept", side)
		}
	}
}

func TestAddOrderDuplicateIDIsNoOp(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 100, "u", "c1"))
	c.AddOrder(order("1", "other", "sell", 999, "other-user", "c2"))

	all := c.GetAllOrders()
	if len(all) != 1 {
		t.Fatalf("expected 1 order, got %d", len(all))
	}
	if all[0].SecurityID != "s" || all[0].Qty != 100 {
		t.Fatalf("duplicate add mutated original order: %+v", all[0])
	}
}

func TestCancelOrderIdempotent(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 100, "u", ""))
	c.CancelOrder("1")
	before := c.GetAllOrders()
	c.CancelOrder("1")
	after := c.GetAllOrders()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("second cancel mutated state: %v -> %v", before, after)
	}
	if len(after) != 0 {
		t.Fatalf("expected empty cache, got %v", after)
	}
}

func TestCancelOrdersForUserIdempotent(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 100, "u", ""))
	c.AddOrder(order("2", "s", "sell", 50, "u", ""))
	c.CancelOrdersForUser("u")
	if len(c.GetAllOrders()) != 0 {
		t.Fatalf("expected empty cache after user cancel")
	}
	c.CancelOrdersForUser("u") // no-op, must not panic or resurrect state
	if len(c.GetAllOrders()) != 0 {
		t.Fatalf("expected empty cache after repeated user cancel")
	}
}

func TestCancelOrdersForSecIdWithMinimumQtyRetainsBelowThreshold(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 50, "u1", ""))
	c.AddOrder(order("2", "s", "sell", 150, "u2", ""))
	c.AddOrder(order("3", "s", "sell", 100, "u3", ""))

	c.CancelOrdersForSecIdWithMinimumQty("s", 100)

	got := ids(c.GetAllOrders())
	want := []string{"1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCancelOrdersForSecIdWithMinimumQtyZeroClearsAll(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 50, "u1", ""))
	c.AddOrder(order("2", "s", "sell", 150, "u2", ""))
	c.AddOrder(order("3", "other", "sell", 10, "u3", ""))

	c.CancelOrdersForSecIdWithMinimumQty("s", 0)

	got := ids(c.GetAllOrders())
	want := []string{"3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnknownKeysAreNoOps(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 1, "u", ""))
	before := c.GetAllOrders()

	c.CancelOrder("missing")
	c.CancelOrdersForUser("missing")
	c.CancelOrdersForSecIdWithMinimumQty("missing", 1)

	after := c.GetAllOrders()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("unknown-key op mutated state: %v -> %v", before, after)
	}
}

func TestAddCancelRoundTrip(t *testing.T) {
	c := NewOrderCache(nil)
	before := c.GetAllOrders()
	c.AddOrder(order("1", "s", "buy", 1, "u", ""))
	c.CancelOrder("1")
	after := c.GetAllOrders()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("round trip did not restore prior state: %v -> %v", before, after)
	}
}

func TestGetAllOrdersDoesNotAliasStore(t *testing.T) {
	c := NewOrderCache(nil)
	c.AddOrder(order("1", "s", "buy", 1, "u", ""))
	snap := c.GetAllOrders()
	snap[0].Qty = 999

	live := c.GetAllOrders()
	if live[0].Qty != 1 {
		t.Fatalf("mutating a snapshot affected the store: %+v", live[0])
	}
}
