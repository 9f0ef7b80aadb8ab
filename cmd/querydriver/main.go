// Command querydriver reads a JSON order document, loads it into a cache,
// then computes the matching size for every distinct security id it saw,
// spreading the queries across a worker pool so the independent,
// read-only GetMatchingSizeForSecurity calls run concurrently.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"ordercache-service/feed"
	"ordercache-service/ordercache"
)

type result struct {
	securityID string
	size       uint64
}

func main() {
	input := flag.String("input", "", "path to a JSON order document")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent query workers")
	flag.Parse()

	if *input == "" {
		log.Fatal("querydriver: -input is required")
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("querydriver: open %s: %v", *input, err)
	}
	defer f.Close()

	orders, err := feed.ParseOrders(f)
	if err != nil {
		log.Fatalf("querydriver: %v", err)
	}

	cache := ordercache.NewOrderCache(os.Stderr)
	feed.Batch(cache, orders, *workers, os.Stderr)

	report := feed.Report(cache.GetAllOrders())
	jobs := make(chan string, len(report))
	for _, sc := range report {
		jobs <- sc.SecurityID
	}
	close(jobs)

	results := make(chan result, len(report))
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for secID := range jobs {
				results <- result{secID, cache.GetMatchingSizeForSecurity(secID)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]result, 0, len(report))
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].securityID < out[j].securityID })

	for _, r := range out {
		fmt.Printf("%-12s matching size: %d\n", r.securityID, r.size)
	}
}
