package main

import (
	"fmt"
	"math"
)

// Link connects two routers identified by their ordinal index.
type Link struct {
	A int
	B int
}

func (l Link) String() string {
	return fmt.Sprintf("(%d,%d)", l.A, l.B)
}

// BuildTopology connects numP core routers into a ring and dual-homes each
// of the numPE edge routers to two adjacent core routers.
//
// P routers hold ordinals 0..numP-1 and PE routers numP..numP+numPE-1.
// With a single P router there is no ring and every PE is single-homed.
// The order of the returned links drives interface numbering.
func BuildTopology(numP, numPE int) ([]Link, error) {
	if err := checkCounts(numP, numPE); err != nil {
		return nil, err
	}

	links := make([]Link, 0, LinkCount(numP, numPE))

	// Core ring
	if numP > 1 {
		for i := 0; i < numP; i++ {
			links = append(links, Link{A: i, B: (i + 1) % numP})
		}
	}

	// Edge uplinks
	for i := 0; i < numPE; i++ {
		pe := numP + i
		p1, p2 := i%numP, (i+1)%numP

		links = append(links, Link{A: p1, B: pe})
		if numP > 1 {
			links = append(links, Link{A: p2, B: pe})
		}
	}

	return links, nil
}

// checkCounts rejects router counts no topology can be built from.
func checkCounts(numP, numPE int) error {
	if numP < 0 || numPE < 0 {
		return &TopologyError{NumP: numP, NumPE: numPE, Reason: "router counts must not be negative"}
	}
	if numP == 0 && numPE > 0 {
		return &TopologyError{NumP: numP, NumPE: numPE, Reason: "PE routers need at least one P router"}
	}
	return nil
}

// LinkCount returns the number of links BuildTopology produces.
// The result saturates at math.MaxInt.
func LinkCount(numP, numPE int) int {
	switch {
	case numP <= 0 || numPE < 0:
		return 0
	case numP == 1:
		return numPE
	case numPE > (math.MaxInt-numP)/2:
		return math.MaxInt
	default:
		return numP + 2*numPE
	}
}
