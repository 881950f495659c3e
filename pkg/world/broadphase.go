package world

import (
	"math"
	"sort"

	"github.com/koteyur/impulse2d/pkg/dynamics"
)

// pair holds indices into the body slice with i < j.
type pair struct {
	i, j int
}

type cell struct {
	x, y int
}

// candidatePairs returns every pair of bodies whose bounding boxes overlap,
// skipping pairs where both bodies are immovable. Pairs come out sorted so
// that resolution order does not depend on how they were found.
func candidatePairs(bodies []*dynamics.Body, cellSize float64) []pair {
	if cellSize <= 0 {
		return bruteForcePairs(bodies)
	}
	return gridPairs(bodies, cellSize)
}

func bruteForcePairs(bodies []*dynamics.Body) []pair {
	var pairs []pair
	for i, a := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if overlapping(a, bodies[j]) {
				pairs = append(pairs, pair{i, j})
			}
		}
	}
	return pairs
}

// gridPairs buckets bodies into square cells of cellSize and only tests
// bodies sharing a cell.
func gridPairs(bodies []*dynamics.Body, cellSize float64) []pair {
	grid := make(map[cell][]int)
	for i, b := range bodies {
		minX := int(math.Floor(b.AABB.Min.X / cellSize))
		minY := int(math.Floor(b.AABB.Min.Y / cellSize))
		maxX := int(math.Floor(b.AABB.Max.X / cellSize))
		maxY := int(math.Floor(b.AABB.Max.Y / cellSize))
		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				c := cell{x, y}
				grid[c] = append(grid[c], i)
			}
		}
	}

	seen := make(map[pair]struct{})
	var pairs []pair
	for _, members := range grid {
		for m, i := range members {
			for _, j := range members[m+1:] {
				p := pair{i, j}
				if i > j {
					p = pair{j, i}
				}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				if overlapping(bodies[p.i], bodies[p.j]) {
					pairs = append(pairs, p)
				}
			}
		}
	}

	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].i != pairs[b].i {
			return pairs[a].i < pairs[b].i
		}
		return pairs[a].j < pairs[b].j
	})
	return pairs
}

func overlapping(a, b *dynamics.Body) bool {
	if a.IsStatic() && b.IsStatic() {
		return false
	}
	return a.AABB.Overlaps(b.AABB)
}
