// Package feed implements the ingest feeder and batching layer sitting
// in front of the order cache: it parses a JSON document of order
// records and fans them into concurrent ordercache.Cache.AddOrder calls.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"ordercache-service/ordercache"
)

// wireOrder is one element of the ingest document: an array of objects
// each carrying string fields for every order attribute, quantity
// numeric-encoded as a string.
type wireOrder struct {
	OrderID    string `json:"orderId"`
	SecurityID string `json:"securityId"`
	Side       string `json:"side"`
	Qty        string `json:"qty"`
	User       string `json:"user"`
	Company    string `json:"company"`
}

// ParseOrders decodes the JSON array read from r into cache orders. A
// record whose quantity does not parse as a non-negative integer is
// passed through with Qty 0 rather than dropped here: the cache's own
// validator is the single source of truth for rejection, so the feeder
// does not duplicate that policy.
func ParseOrders(r io.Reader) ([]ordercache.Order, error) {
	var wire []wireOrder
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("feed: decode order document: %w", err)
	}

	out := make([]ordercache.Order, 0, len(wire))
	for _, w := range wire {
		qty, err := strconv.ParseUint(w.Qty, 10, 64)
		if err != nil {
			qty = 0
		}
		out = append(out, ordercache.Order{
			OrderID:    w.OrderID,
			SecurityID: w.SecurityID,
			Side:       w.Side,
			Qty:        qty,
			User:       w.User,
			Company:    w.Company,
		})
	}
	return out, nil
}
