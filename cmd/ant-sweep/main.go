package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"turmite/internal/core"
	_ "turmite/internal/sims/trails"
	_ "turmite/internal/sims/turmite"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return fmt.Errorf("bad value %q", part)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	ticks := flag.Int("ticks", 11000, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed for sims with random placement")
	verify := flag.Bool("verify", true, "run every scenario twice and compare digests")
	simNames := flag.String("sims", strings.Join(core.Names(), ","), "comma separated sims to sweep")
	var sizes, ants intList
	flag.Var(&sizes, "size", "square grid sizes (repeatable or comma separated)")
	flag.Var(&ants, "ants", "agent counts (repeatable or comma separated)")
	flag.Parse()

	if len(sizes) == 0 {
		sizes = intList{64, 100, 128}
	}
	if len(ants) == 0 {
		ants = intList{1, 4, 8}
	}

	var scenarios []scenario
	for _, name := range strings.Split(*simNames, ",") {
		name = strings.TrimSpace(name)
		if _, ok := core.Sims()[name]; !ok {
			log.Fatalf("unknown sim %q (have %v)", name, core.Names())
		}
		for _, size := range sizes {
			for _, n := range ants {
				scenarios = append(scenarios, scenario{sim: name, size: size, ants: n, ticks: *ticks, seed: *seed})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d ticks)\n", len(scenarios), *workers, *ticks)
	start := time.Now()
	results := sweep(scenarios, *workers, *verify)

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	mismatches := 0
	for _, res := range results {
		status := ""
		if *verify && !res.deterministic {
			status = "  NONDETERMINISTIC"
			mismatches++
		}
		fmt.Printf("%s states=%d blank=%.3f digest=%s%s\n", res.scenario, res.states, res.blankShare, res.digest[:12], status)
	}
	if mismatches > 0 {
		log.Fatalf("%d scenarios diverged between runs", mismatches)
	}
}
