package board

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func TestAdjacencyNeighbors(t *testing.T) {
	idx := NewAdjacencyIndex(3, 3, nil)

	tests := []struct {
		name string
		c    core.Coord
		want []core.Coord
	}{
		{"corner", core.C(0, 0), []core.Coord{core.C(1, 0), core.C(0, 1), core.C(1, 1)}},
		{"edge", core.C(1, 0), []core.Coord{core.C(0, 0), core.C(2, 0), core.C(0, 1), core.C(1, 1), core.C(2, 1)}},
		{"center", core.C(1, 1), []core.Coord{
			core.C(0, 0), core.C(1, 0), core.C(2, 0),
			core.C(0, 1), core.C(2, 1),
			core.C(0, 2), core.C(1, 2), core.C(2, 2),
		}},
		{"off board", core.C(3, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Neighbors(tt.c)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Neighbors(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestAdjacencySkipsMaskedCells(t *testing.T) {
	cfg := Config{Height: 3, Width: 3, Mines: 1, Mask: []string{"010", "111", "010"}}
	masked, _, err := cfg.Validate()
	if err != nil {
		t.Fatal(err)
	}
	idx := NewAdjacencyIndex(3, 3, masked)

	got := idx.Neighbors(core.C(1, 1))
	want := []core.Coord{core.C(1, 0), core.C(0, 1), core.C(2, 1), core.C(1, 2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(center) = %v, want %v", got, want)
	}
}

func TestAdjacencyIsLazyAndCached(t *testing.T) {
	idx := NewAdjacencyIndex(4, 4, nil)
	if idx.cached() != 0 {
		t.Fatalf("fresh index has %d cached entries", idx.cached())
	}

	first := idx.indices(5)
	second := idx.indices(5)
	if idx.cached() != 1 {
		t.Errorf("cached() = %d after one distinct lookup, want 1", idx.cached())
	}
	if &first[0] != &second[0] {
		t.Error("second lookup should return the cached slice")
	}
}
