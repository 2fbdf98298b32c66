package analysis

import (
	"context"
	"strconv"
	"strings"

	"github.com/tatsujin/kifu-api/internal/tiles"
)

// tenpaiHandSize is what the wait solver accepts; longer hands are
// silently truncated to the first thirteen tiles.
const tenpaiHandSize = 13

// TenpaiResponse classifies the solver's answer: agari (shanten -1),
// shanten(N), tenpai with waits, or the raw solver message passed through.
type TenpaiResponse struct {
	OK      bool     `json:"ok"`
	Status  string   `json:"status,omitempty"`
	Shanten *int     `json:"shanten,omitempty"`
	Waits   []string `json:"waits"`
	Error   string   `json:"error,omitempty"`
}

// AnalyzeTenpai normalizes the first 13 hand tiles onto their base
// identities (waits are computed rank-blind to red fives) and classifies
// the solver result.
func (a *Analyzer) AnalyzeTenpai(ctx context.Context, handTiles []string) *TenpaiResponse {
	normalized := tiles.ToInternalAll(handTiles)
	for i, t := range normalized {
		normalized[i] = tiles.BaseKey(t)
	}
	if len(normalized) > tenpaiHandSize {
		normalized = normalized[:tenpaiHandSize]
	}

	result, err := a.Solver.Solve(ctx, normalized)
	if err != nil {
		return &TenpaiResponse{OK: false, Error: err.Error(), Waits: []string{}}
	}

	if !result.HasWaits {
		msg := result.Message
		if msg == "agari" {
			return &TenpaiResponse{OK: true, Status: "agari", Shanten: intPtr(-1), Waits: []string{}}
		}
		if strings.Contains(msg, "shanten") {
			fields := strings.Fields(msg)
			if len(fields) > 0 {
				if value, aerr := strconv.Atoi(fields[0]); aerr == nil {
					return &TenpaiResponse{OK: true, Status: "shanten", Shanten: intPtr(value), Waits: []string{}}
				}
			}
			return &TenpaiResponse{OK: true, Status: msg, Waits: []string{}}
		}
		return &TenpaiResponse{OK: true, Status: msg, Waits: []string{}}
	}

	waits := make([]string, 0, len(result.Waits))
	for _, w := range result.Waits {
		waits = append(waits, tiles.ToPublic(w))
	}
	return &TenpaiResponse{OK: true, Status: "tenpai", Shanten: intPtr(0), Waits: waits}
}

func intPtr(v int) *int {
	return &v
}
