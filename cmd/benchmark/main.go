// Command benchmark drives ordercache.Cache with sustained concurrent
// synthetic load (AddOrder on every step, CancelOrder on every fifth,
// GetMatchingSizeForSecurity on every 37th) and reports AddOrder
// throughput alongside cancel and query counts. CancelOrdersForUser and
// CancelOrdersForSecIdWithMinimumQty are not exercised; GetAllOrders is
// called once at the end to count live orders.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"ordercache-service/ordercache"
)

func main() {
	duration := flag.Duration("duration", 5*time.Second, "benchmark duration")
	flag.Parse()

	numCPU := runtime.NumCPU()
	numWorkers := numCPU - 2
	if numWorkers < 1 {
		numWorkers = 1
	}

	cache := ordercache.NewOrderCache(os.Stderr)

	var (
		addCount    atomic.Int64
		cancelCount atomic.Int64
		queryCount  atomic.Int64
	)

	fmt.Println("=== ordercache benchmark ===")
	fmt.Printf("CPUs: %d\n", numCPU)
	fmt.Printf("workers: %d (NumCPU - 2)\n", numWorkers)
	fmt.Printf("duration: %v\n\n", *duration)

	startTime := time.Now()
	stopChan := make(chan struct{})

	for w := 0; w < numWorkers; w++ {
		go func(workerID int) {
			orderID := 0
			for {
				select {
				case <-stopChan:
					return
				default:
					secID := "Sec" + strconv.Itoa(orderID%8)
					side := "buy"
					if orderID%2 != 0 {
						side = "sell"
					}
					id := "w" + strconv.Itoa(workerID) + "-" + strconv.Itoa(orderID)
					cache.AddOrder(ordercache.Order{
						OrderID:    id,
						SecurityID: secID,
						Side:       side,
						Qty:        uint64(1 + orderID%50),
						User:       "user-" + strconv.Itoa(workerID),
						Company:    "company-" + strconv.Itoa(workerID%4),
					})
					addCount.Add(1)

					if orderID%5 == 0 {
						cache.CancelOrder(id)
						cancelCount.Add(1)
					}
					if orderID%37 == 0 {
						cache.GetMatchingSizeForSecurity(secID)
						queryCount.Add(1)
					}
					orderID++
				}
			}
		}(w)
	}

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			elapsed := time.Since(startTime)
			adds := addCount.Load()
			fmt.Printf("[%.0fs] adds: %d (%.0f/s) | cancels: %d | queries: %d\n",
				elapsed.Seconds(), adds, float64(adds)/elapsed.Seconds(), cancelCount.Load(), queryCount.Load())
		}
	}()

	time.Sleep(*duration)
	close(stopChan)
	ticker.Stop()

	elapsed := time.Since(startTime)
	totalAdds := addCount.Load()
	totalCancels := cancelCount.Load()
	totalQueries := queryCount.Load()

	fmt.Println("\n=== results ===")
	fmt.Printf("elapsed:        %v\n", elapsed)
	fmt.Printf("total adds:     %d\n", totalAdds)
	fmt.Printf("total cancels:  %d\n", totalCancels)
	fmt.Printf("total queries:  %d\n", totalQueries)
	fmt.Printf("add throughput: %.0f ops/sec\n", float64(totalAdds)/elapsed.Seconds())
	fmt.Printf("orders live:    %d\n", len(cache.GetAllOrders()))
}
