package main

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"turmite/internal/core"
)

type scenario struct {
	sim   string
	size  int
	ants  int
	ticks int
	seed  int64
}

func (s scenario) String() string {
	return fmt.Sprintf("%-8s %4dx%-4d ants=%-3d", s.sim, s.size, s.size, s.ants)
}

type censusProvider interface {
	Census() map[string]int
}

type result struct {
	scenario      scenario
	states        int
	blankShare    float64
	digest        string
	deterministic bool
}

// sweep runs every scenario on its own sim instance. Instances never share a
// grid, so scenarios can run in parallel while each sim stays single-threaded.
func sweep(scenarios []scenario, workers int, verify bool) []result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res := runScenario(sc)
				res.deterministic = true
				if verify {
					res.deterministic = runScenario(sc).digest == res.digest
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].scenario.String() < all[j].scenario.String() })
	return all
}

func runScenario(sc scenario) result {
	sim := core.Sims()[sc.sim](map[string]string{
		"w":     strconv.Itoa(sc.size),
		"h":     strconv.Itoa(sc.size),
		"ants":  strconv.Itoa(sc.ants),
		"seed":  strconv.FormatInt(sc.seed, 10),
		"speed": "1",
	})
	for i := 0; i < sc.ticks; i++ {
		sim.Step()
	}

	size := sim.Size()
	buf := make([]byte, 4*size.W*size.H)
	sim.Render(buf)
	sum := sha1.Sum(buf)

	res := result{scenario: sc, digest: hex.EncodeToString(sum[:])}
	if cp, ok := sim.(censusProvider); ok {
		census := cp.Census()
		res.states = len(census)
		total := size.W * size.H
		res.blankShare = float64(census[blankKey(sim.Name())]) / float64(total)
	}
	return res
}

func blankKey(sim string) string {
	if sim == "trails" {
		return "#ffffffff"
	}
	return "0"
}
