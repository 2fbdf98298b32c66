// Package hand enforces tile-supply legality on the accumulated hand
// (concealed tiles, winning tile, and every meld tile) before anything is
// sent to the calculation runtime.
package hand

import (
	"fmt"

	"github.com/tatsujin/kifu-api/internal/tiles"
)

// Failure kinds.
const (
	FailUnknown  = "unknown"  // tile outside the 34-kind alphabet
	FailOverflow = "overflow" // more than 4 copies of a base identity
	FailRed      = "red"      // more than one red five per suit
)

// ValidationError is a typed supply violation; Tile is the offending
// value (base identity for overflow failures).
type ValidationError struct {
	Kind  string
	Tile  string
	Count int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case FailOverflow:
		return fmt.Sprintf("tile overflow: %s x%d", e.Tile, e.Count)
	case FailRed:
		return fmt.Sprintf("red overflow: %s x%d", e.Tile, e.Count)
	default:
		return fmt.Sprintf("invalid tile: %s", e.Tile)
	}
}

// Validate scans the whole tile multiset (internal notation) and returns
// the first failure in tile-list order, or nil. Counts are accumulated
// over the entire list before any overflow is reported, so a fifth copy
// appearing late still names the full count.
func Validate(all []string) *ValidationError {
	for _, t := range all {
		if !tiles.Known(t) {
			return &ValidationError{Kind: FailUnknown, Tile: t}
		}
	}

	counts := make(map[string]int)
	redCounts := make(map[string]int)
	var baseOrder, redOrder []string
	for _, t := range all {
		base := tiles.BaseKey(t)
		if counts[base] == 0 {
			baseOrder = append(baseOrder, base)
		}
		counts[base]++
		if tiles.IsRed(t) {
			if redCounts[t] == 0 {
				redOrder = append(redOrder, t)
			}
			redCounts[t]++
		}
	}

	for _, base := range baseOrder {
		if n := counts[base]; n > 4 {
			return &ValidationError{Kind: FailOverflow, Tile: base, Count: n}
		}
	}
	for _, red := range redOrder {
		if n := redCounts[red]; n > 1 {
			return &ValidationError{Kind: FailRed, Tile: red, Count: n}
		}
	}
	return nil
}
