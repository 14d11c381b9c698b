package main

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildTopology(t *testing.T) {
	tests := []struct {
		name  string
		numP  int
		numPE int
		want  []Link
	}{
		{
			name:  "two P one PE",
			numP:  2,
			numPE: 1,
			want:  []Link{{0, 1}, {1, 0}, {0, 2}, {1, 2}},
		},
		{
			name:  "three P two PE",
			numP:  3,
			numPE: 2,
			want:  []Link{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {1, 4}, {2, 4}},
		},
		{
			name:  "single P",
			numP:  1,
			numPE: 3,
			want:  []Link{{0, 1}, {0, 2}, {0, 3}},
		},
		{
			name:  "ring only",
			numP:  3,
			numPE: 0,
			want:  []Link{{0, 1}, {1, 2}, {2, 0}},
		},
		{
			name:  "empty",
			numP:  0,
			numPE: 0,
			want:  []Link{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildTopology(tt.numP, tt.numPE)
			if err != nil {
				t.Fatalf("BuildTopology(%d, %d) failed: %v", tt.numP, tt.numPE, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildTopology(%d, %d) mismatch (-want +got):\n%s", tt.numP, tt.numPE, diff)
			}
		})
	}
}

func TestBuildTopologyWithoutP(t *testing.T) {
	_, err := BuildTopology(0, 2)

	var topoErr *TopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("expected TopologyError, got %v", err)
	}
	if topoErr.NumP != 0 || topoErr.NumPE != 2 {
		t.Errorf("unexpected counts in error: %+v", topoErr)
	}
}

func TestBuildTopologyNegative(t *testing.T) {
	for _, counts := range [][2]int{{-1, 2}, {2, -1}} {
		_, err := BuildTopology(counts[0], counts[1])
		var topoErr *TopologyError
		if !errors.As(err, &topoErr) {
			t.Errorf("BuildTopology(%d, %d): expected TopologyError, got %v", counts[0], counts[1], err)
		}
	}
}

func TestLinkCount(t *testing.T) {
	for numP := 1; numP <= 6; numP++ {
		for numPE := 0; numPE <= 6; numPE++ {
			links, err := BuildTopology(numP, numPE)
			if err != nil {
				t.Fatalf("BuildTopology(%d, %d) failed: %v", numP, numPE, err)
			}

			want := numP + 2*numPE
			if numP == 1 {
				want = numPE
			}
			if len(links) != want {
				t.Errorf("BuildTopology(%d, %d): %d links, want %d", numP, numPE, len(links), want)
			}
			if LinkCount(numP, numPE) != want {
				t.Errorf("LinkCount(%d, %d) = %d, want %d", numP, numPE, LinkCount(numP, numPE), want)
			}
		}
	}
}

func TestLinkCountSaturates(t *testing.T) {
	if got := LinkCount(2, math.MaxInt/2); got != math.MaxInt {
		t.Errorf("LinkCount(2, MaxInt/2) = %d, want MaxInt", got)
	}
	if got := LinkCount(2, 1<<62+1); got != math.MaxInt {
		t.Errorf("LinkCount(2, 1<<62+1) = %d, want MaxInt", got)
	}
	if got := LinkCount(0, 5); got != 0 {
		t.Errorf("LinkCount(0, 5) = %d, want 0", got)
	}
}

func TestLinksConnectKnownRouters(t *testing.T) {
	numP, numPE := 4, 7
	links, err := BuildTopology(numP, numPE)
	if err != nil {
		t.Fatalf("BuildTopology failed: %v", err)
	}

	uplinks := make(map[int]int)
	for _, l := range links {
		if l.A == l.B {
			t.Errorf("self link %s", l)
		}
		if l.A < 0 || l.A >= numP+numPE || l.B < 0 || l.B >= numP+numPE {
			t.Errorf("link %s out of range", l)
		}
		if l.B >= numP {
			if l.A >= numP {
				t.Errorf("link %s connects two PE routers", l)
			}
			uplinks[l.B]++
		}
	}

	for pe := numP; pe < numP+numPE; pe++ {
		if uplinks[pe] != 2 {
			t.Errorf("PE %d has %d uplinks, want 2", pe, uplinks[pe])
		}
	}
}
