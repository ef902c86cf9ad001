package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hupe1980/lutgo"
	"github.com/hupe1980/lutgo/search"
)

func main() {
	// Engine torque vs. throttle position.
	throttle := []float64{0, 10, 25, 50, 75, 100}
	torque := []float64{0, 42, 118, 260, 340, 380}

	table, err := lutgo.Table1D[float64]().
		X(throttle).
		Values(torque).
		Binary().
		Clamp().
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Scalar lookup ---")
	for _, q := range []float64{12.5, 60, 110} {
		fmt.Printf("torque(%.1f%%) = %.2f\n", q, table.Lookup(q))
	}

	// Bilinear map: torque over (rpm, throttle).
	rpm := []float64{800, 2000, 4000, 6000}
	grid := [][]float64{
		{10, 20, 45, 70, 85, 90},
		{15, 50, 130, 270, 350, 390},
		{12, 46, 122, 255, 330, 365},
		{8, 35, 95, 200, 260, 290},
	}

	table2d, err := lutgo.New2D(rpm, nil, throttle, nil, grid)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Bilinear lookup ---")
	fmt.Printf("torque(3000rpm, 40%%) = %.2f\n", table2d.Lookup(3000, 40))

	// Batch lookups across goroutines.
	rng := rand.New(rand.NewSource(4711))
	queries := make([]float64, 100_000)
	for i := range queries {
		queries[i] = rng.Float64() * 120
	}

	fmt.Println("--- Parallel batch ---")
	start := time.Now()

	out, err := lutgo.ParallelLookupAll(context.Background(), table, queries, 8)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d lookups in %v\n", len(out), time.Since(start))

	// A cached cell strategy is fast for monotone sweeps but must stay
	// confined to a single goroutine.
	swept, err := lutgo.New1D(throttle, search.NewCachedLinearCell[float64](), torque)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Swept lookup ---")
	sum := 0.0
	for q := 0.0; q <= 100; q += 0.5 {
		sum += swept.Lookup(q)
	}
	fmt.Printf("integrated torque: %.1f\n", sum)
}
