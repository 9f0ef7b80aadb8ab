// Command feeder reads a JSON order document and submits every order to a
// fresh cache through the batching layer, then prints a per-security count
// of what was submitted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"ordercache-service/feed"
	"ordercache-service/ordercache"
)

func main() {
	input := flag.String("input", "", "path to a JSON order document")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent AddOrder workers")
	flag.Parse()

	if *input == "" {
		log.Fatal("feeder: -input is required")
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("feeder: open %s: %v", *input, err)
	}
	defer f.Close()

	orders, err := feed.ParseOrders(f)
	if err != nil {
		log.Fatalf("feeder: %v", err)
	}

	cache := ordercache.NewOrderCache(os.Stderr)
	feed.Batch(cache, orders, *workers, os.Stderr)

	fmt.Printf("submitted %d orders (%d accepted)\n", len(orders), len(cache.GetAllOrders()))
	for _, sc := range feed.Report(orders) {
		fmt.Printf("  %-12s %d\n", sc.SecurityID, sc.Count)
	}
}
