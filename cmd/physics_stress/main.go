// Stress test comparing the partition tree broad phase against brute-force SAT
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/physics"
	"cubular/internal/world"
)

func main() {
	seed := flag.Int64("seed", 42, "random seed")
	iterations := flag.Int("iterations", 10, "timed iterations per count")
	flag.Parse()

	// Test various object counts
	testCounts := []int{100, 500, 1000, 2000, 5000}

	failed := false
	for _, count := range testCounts {
		if !testBroadPhase(rand.New(rand.NewSource(*seed)), count, *iterations) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func randomBodies(rng *rand.Rand, count int) []*physics.Body {
	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0
	cube := world.UnitCubeVertices()

	bodies := make([]*physics.Body, count)
	for i := range bodies {
		size := 0.5 + rng.Float32()*1.5
		vertices := make([]float32, len(cube))
		for j, v := range cube {
			vertices[j] = v * size
		}
		bodies[i] = physics.NewBody(fmt.Sprintf("Body_%d", i), rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}, vertices)
	}
	return bodies
}

// testBroadPhase reports false if the tree missed an overlapping pair.
func testBroadPhase(rng *rand.Rand, count, iterations int) bool {
	bodies := randomBodies(rng, count)
	tree := physics.NewTree(physics.DefaultSettings())

	// Time tree: rebuild, candidates, SAT on candidates
	treeStart := time.Now()
	var candidates []physics.Pair
	treeOverlaps := make(map[physics.Pair]bool)
	for iter := 0; iter < iterations; iter++ {
		tree.Rebuild(bodies)
		candidates = tree.CandidatePairs()
		clear(treeOverlaps)
		for _, p := range candidates {
			if physics.Overlap(bodies[p.A].Box, bodies[p.B].Box) {
				treeOverlaps[p] = true
			}
		}
	}
	treeTime := time.Since(treeStart) / time.Duration(iterations)
	depth := tree.Depth()

	// Time brute force (naive O(n²))
	bruteStart := time.Now()
	var brutePairs []physics.Pair
	for iter := 0; iter < iterations; iter++ {
		brutePairs = brutePairs[:0]
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				if physics.Overlap(bodies[i].Box, bodies[j].Box) {
					brutePairs = append(brutePairs, physics.Pair{A: i, B: j})
				}
			}
		}
	}
	bruteTime := time.Since(bruteStart) / time.Duration(iterations)

	missed := 0
	for _, p := range brutePairs {
		if !treeOverlaps[p] {
			missed++
		}
	}

	speedup := float64(bruteTime) / float64(treeTime)
	allPairs := count * (count - 1) / 2

	fmt.Printf("%5d bodies: tree %10v (depth %d, %7d candidates, %.1f%% of all) | brute %10v (%4d overlaps) | %.1fx speedup",
		count, treeTime.Round(time.Microsecond), depth, len(candidates), 100*float64(len(candidates))/float64(allPairs),
		bruteTime.Round(time.Microsecond), len(brutePairs), speedup)
	if missed > 0 {
		fmt.Printf(" | MISSED %d\n", missed)
		return false
	}
	fmt.Println()
	return true
}
