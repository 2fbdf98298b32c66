// Package meld converts the call descriptors clients send into the uniform
// meld shape the calculation runtime expects, attributing which tile of
// each call was taken from another player.
package meld

import (
	"strings"

	"github.com/tatsujin/kifu-api/internal/tiles"
)

const (
	KindChi = "chi"
	KindPon = "pon"
	KindKan = "kan"
)

// Descriptor is a single call as the client sent it. CalledFrom is empty
// when no call source was declared.
type Descriptor struct {
	Kind       string
	Tiles      []string
	CalledTile string
	CalledFrom string
}

// Tile is one tile of a reconstructed meld.
type Tile struct {
	Tile      string `json:"tile"`
	FromOther bool   `json:"fromOther"`
}

// Meld is a reconstructed call in the runtime's contract.
type Meld struct {
	Kind  string `json:"action_type"`
	Tiles []Tile `json:"target_tiles"`
}

// IsKan reports whether the meld is a quad for kan-count purposes.
func (m Meld) IsKan() bool {
	return m.Kind == KindKan && len(m.Tiles) >= 4
}

// TileValues returns the bare tile list of the meld.
func (m Meld) TileValues() []string {
	out := make([]string, 0, len(m.Tiles))
	for _, t := range m.Tiles {
		out = append(out, t.Tile)
	}
	return out
}

// Reconstruct converts descriptors into runtime melds. Kan subtypes
// collapse to a single kan kind; descriptors with any other kind are
// skipped. Tiles are normalized to internal notation, empty entries
// dropped. When a call source is declared, the first tile equal to the
// declared called tile is marked FromOther; if none matches, the first
// tile of the meld is marked instead, so every meld with a declared
// source carries exactly one attributed tile.
func Reconstruct(descs []Descriptor) []Meld {
	melds := make([]Meld, 0, len(descs))
	for _, d := range descs {
		kind := strings.ToLower(d.Kind)
		switch kind {
		case "minkan", "ankan", "kakan", "shouminkan":
			kind = KindKan
		}
		if kind != KindChi && kind != KindPon && kind != KindKan {
			continue
		}

		calledTile := tiles.ToInternal(d.CalledTile)
		target := make([]Tile, 0, len(d.Tiles))
		attributed := false
		for _, raw := range d.Tiles {
			if raw == "" {
				continue
			}
			t := tiles.ToInternal(raw)
			fromOther := false
			if d.CalledFrom != "" && calledTile != "" && t == calledTile && !attributed {
				fromOther = true
				attributed = true
			}
			target = append(target, Tile{Tile: t, FromOther: fromOther})
		}
		if d.CalledFrom != "" && !attributed && len(target) > 0 {
			target[0].FromOther = true
		}
		melds = append(melds, Meld{Kind: kind, Tiles: target})
	}
	return melds
}
