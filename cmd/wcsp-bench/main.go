// The wcsp-bench program times the label-setting engine over randomly
// generated graphs of increasing size and optionally saves the
// measured timings as a benchmark archive.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wcsproute/wcsp/internal/bench"
)

func main() {
	sizes := flag.String("sizes", "10,50,100", "comma-separated list of graph sizes to benchmark")
	peak := flag.Int("peak", 5, "generator out-degree window")
	weightMean := flag.Float64("weight-mean", 5, "mean of the weight distribution")
	weightStdDev := flag.Float64("weight-stddev", 2, "standard deviation of the weight distribution")
	costMean := flag.Float64("cost-mean", 5, "mean of the cost distribution")
	costStdDev := flag.Float64("cost-stddev", 2, "standard deviation of the cost distribution")
	wMax := flag.Int64("wmax", 1000, "weight bound for each timed run")
	theta := flag.Float64("theta", 0.1, "untreated-fraction threshold for switching selection strategy")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "", "directory to save a timestamped benchmark archive into (optional)")
	flag.Parse()

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("wcsp-bench: %v", err)
	}

	params := bench.Params{
		Sizes: sizeList,
		Peak:  *peak,

		WeightMean:   *weightMean,
		WeightStdDev: *weightStdDev,
		CostMean:     *costMean,
		CostStdDev:   *costStdDev,

		WMax:  *wMax,
		Theta: *theta,
		Seed:  *seed,
	}

	res, err := bench.Run(context.Background(), params)
	if err != nil {
		log.Fatalf("wcsp-bench: %v", err)
	}

	for _, n := range sizeList {
		log.Printf("n=%d: %.6fs", n, res.ByNodes[n])
	}

	if *out == "" {
		return
	}
	folder, err := bench.Save(*out, time.Now(), res)
	if err != nil {
		log.Fatalf("wcsp-bench: %v", err)
	}
	log.Printf("saved benchmark archive to %s", folder)
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("wcsp-bench: invalid size %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
