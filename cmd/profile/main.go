// Command profile runs the Add/Cancel part of cmd/benchmark's synthetic
// load (without its GetMatchingSizeForSecurity queries) under CPU
// profiling, to see where time goes under sustained concurrent
// Add/Cancel traffic.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"sync/atomic"
	"time"

	"ordercache-service/ordercache"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "profiling duration")
	out := flag.String("out", "cpu.prof", "CPU profile output path")
	flag.Parse()

	cpuFile, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer cpuFile.Close()

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		panic(err)
	}
	defer pprof.StopCPUProfile()

	fmt.Println("=== ordercache profile ===")
	fmt.Printf("writing CPU profile to %s\n", *out)

	cache := ordercache.NewOrderCache(os.Stderr)

	numCPU := runtime.NumCPU()
	numWorkers := numCPU - 2
	if numWorkers < 1 {
		numWorkers = 1
	}

	var (
		addCount    atomic.Int64
		cancelCount atomic.Int64
	)

	fmt.Printf("CPUs: %d\n", numCPU)
	fmt.Printf("workers: %d\n", numWorkers)
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
					orderID++
				}
			}
		}(w)
	}

	time.Sleep(*duration)
	close(stopChan)

	elapsed := time.Since(startTime)
	totalAdds := addCount.Load()
	totalCancels := cancelCount.Load()

	fmt.Println("\n=== results ===")
	fmt.Printf("total adds:    %d\n", totalAdds)
	fmt.Printf("total cancels: %d\n", totalCancels)
	fmt.Printf("add QPS:       %.0f ops/sec\n", float64(totalAdds)/elapsed.Seconds())

	fmt.Println("\nanalyze with:")
	fmt.Println("  go tool pprof -http=:8080 " + *out)
}
