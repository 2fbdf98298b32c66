package meld

import (
	"reflect"
	"testing"
)

func attributedCount(m Meld) int {
	n := 0
	for _, t := range m.Tiles {
		if t.FromOther {
			n++
		}
	}
	return n
}

func TestReconstructPonAttributesExactlyOneTile(t *testing.T) {
	melds := Reconstruct([]Descriptor{{
		Kind:       "pon",
		Tiles:      []string{"5p", "5p", "5p"},
		CalledTile: "5p",
		CalledFrom: "kamicha",
	}})
	if len(melds) != 1 {
		t.Fatalf("expected one meld, got %d", len(melds))
	}
	m := melds[0]
	if m.Kind != KindPon {
		t.Fatalf("kind = %q, want pon", m.Kind)
	}
	if attributedCount(m) != 1 {
		t.Fatalf("expected exactly one attributed tile, got %d", attributedCount(m))
	}
	if !m.Tiles[0].FromOther {
		t.Fatal("the first matching tile must carry the attribution")
	}
}

func TestReconstructChiAttributesMatchingTile(t *testing.T) {
	melds := Reconstruct([]Descriptor{{
		Kind:       "chi",
		Tiles:      []string{"2m", "3m", "4m"},
		CalledTile: "3m",
		CalledFrom: "kamicha",
	}})
	m := melds[0]
	if m.Tiles[0].FromOther || !m.Tiles[1].FromOther || m.Tiles[2].FromOther {
		t.Fatalf("attribution landed on the wrong tile: %+v", m.Tiles)
	}
}

func TestReconstructKanSubtypesCollapse(t *testing.T) {
	for _, kind := range []string{"minkan", "ankan", "kakan", "shouminkan", "KAN"} {
		melds := Reconstruct([]Descriptor{{
			Kind:  kind,
			Tiles: []string{"1s", "1s", "1s", "1s"},
		}})
		if len(melds) != 1 || melds[0].Kind != KindKan {
			t.Fatalf("kind %q should collapse to kan, got %+v", kind, melds)
		}
		if !melds[0].IsKan() {
			t.Fatalf("four-tile kan should report IsKan, got %+v", melds[0])
		}
	}
}

func TestReconstructSkipsUnknownKinds(t *testing.T) {
	melds := Reconstruct([]Descriptor{
		{Kind: "nuki", Tiles: []string{"pe"}},
		{Kind: "pon", Tiles: []string{"to", "to", "to"}},
	})
	if len(melds) != 1 || melds[0].Kind != KindPon {
		t.Fatalf("unknown kind should be skipped, got %+v", melds)
	}
}

// The fallback below is documented policy, not a verified domain rule: when
// a caller is declared but the declared tile does not appear in the meld,
// the first tile is force-attributed so output stays stable on
// inconsistent input.
func TestReconstructFallbackAttributesFirstTile(t *testing.T) {
	melds := Reconstruct([]Descriptor{{
		Kind:       "pon",
		Tiles:      []string{"7s", "7s", "7s"},
		CalledTile: "5s",
		CalledFrom: "toimen",
	}})
	m := melds[0]
	if attributedCount(m) != 1 || !m.Tiles[0].FromOther {
		t.Fatalf("expected fallback attribution on first tile, got %+v", m.Tiles)
	}
}

func TestReconstructWithoutCallerAttributesNothing(t *testing.T) {
	melds := Reconstruct([]Descriptor{{
		Kind:       "pon",
		Tiles:      []string{"7s", "7s", "7s"},
		CalledTile: "7s",
	}})
	if attributedCount(melds[0]) != 0 {
		t.Fatalf("no declared source, expected no attribution: %+v", melds[0].Tiles)
	}
}

func TestReconstructNormalizesAndDropsEmptyTiles(t *testing.T) {
	melds := Reconstruct([]Descriptor{{
		Kind:       "pon",
		Tiles:      []string{"E", "", "E", "E"},
		CalledTile: "E",
		CalledFrom: "shimocha",
	}})
	want := []string{"to", "to", "to"}
	if !reflect.DeepEqual(melds[0].TileValues(), want) {
		t.Fatalf("tiles = %v, want %v", melds[0].TileValues(), want)
	}
	if attributedCount(melds[0]) != 1 {
		t.Fatalf("expected one attributed tile: %+v", melds[0].Tiles)
	}
}
