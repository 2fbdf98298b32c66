package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/tatsujin/kifu-api/internal/engine"
	"github.com/tatsujin/kifu-api/internal/hand"
	"github.com/tatsujin/kifu-api/internal/meld"
	"github.com/tatsujin/kifu-api/internal/tiles"
)

// Analyzer runs the analysis pipelines against the collaborators.
type Analyzer struct {
	Calc   engine.Calculator
	Solver engine.Solver
}

// HandResult is the client-facing scoring result.
type HandResult struct {
	Han  int          `json:"han"`
	Fu   int          `json:"fu"`
	Cost *engine.Cost `json:"cost"`
	Yaku []string     `json:"yaku"`
}

// HandResponse is the full analyze-hand payload. Debug carries the
// diagnostic trace when the request asked for it.
type HandResponse struct {
	OK     bool        `json:"ok"`
	Result *HandResult `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Debug  []string    `json:"debug,omitempty"`
}

// AnalyzeHand normalizes the request, reconstructs melds, resolves dora,
// validates tile supply and hands the result to the scoring engine. Every
// failure comes back as an ok:false response, never as a fault.
func (a *Analyzer) AnalyzeHand(ctx context.Context, req *HandRequest) *HandResponse {
	var debugLines []string
	trace := func(format string, args ...any) {
		if req.Debug {
			debugLines = append(debugLines, "[analyze_hand] "+fmt.Sprintf(format, args...))
		}
	}
	fail := func(message string) *HandResponse {
		return &HandResponse{OK: false, Error: message, Debug: debugLines}
	}

	handTiles := tiles.ToInternalAll(req.Hand)
	winTile := tiles.ToInternal(req.WinTile)

	allTiles := make([]string, 0, len(handTiles)+1)
	allTiles = append(allTiles, handTiles...)
	if winTile != "" {
		allTiles = append(allTiles, winTile)
	}

	melds := meld.Reconstruct(req.Melds)
	for _, m := range melds {
		allTiles = append(allTiles, m.TileValues()...)
	}
	trace("hand=%v win=%s melds=%d", handTiles, winTile, len(req.Melds))
	trace("melds=%+v", melds)

	if verr := hand.Validate(allTiles); verr != nil {
		return fail(verr.Error())
	}

	indicators := tiles.ToInternalAll(req.DoraIndicators)
	if req.Flags.Riichi {
		// Riichi reveals the hidden indicators as well.
		indicators = append(indicators, tiles.ToInternalAll(req.UraIndicators)...)
	}
	doraTiles := tiles.FromIndicators(indicators)

	kanCount := 0
	var meldTiles []string
	for _, m := range melds {
		if m.IsKan() {
			kanCount++
		}
		meldTiles = append(meldTiles, m.TileValues()...)
	}
	tilesForCalc := make([]string, 0, len(handTiles)+len(meldTiles)+1)
	tilesForCalc = append(tilesForCalc, handTiles...)
	tilesForCalc = append(tilesForCalc, meldTiles...)
	expectedTotal := 14 + kanCount
	if winTile != "" && len(tilesForCalc) < expectedTotal {
		tilesForCalc = append(tilesForCalc, winTile)
	}
	trace("meld_tiles=%d tiles_for_calc=%d expected_total=%d has_aka=%v",
		len(meldTiles), len(tilesForCalc), expectedTotal, tiles.HasRed(allTiles))
	trace("hand_for_calc=%v", handTiles)

	result, err := a.Calc.Calculate(ctx, &engine.CalcRequest{
		Tiles:       tilesForCalc,
		WinTile:     winTile,
		Melds:       melds,
		Doras:       doraTiles,
		HasAka:      tiles.HasRed(allTiles),
		IsTsumo:     req.WinType == "tsumo",
		Situational: req.Flags,
		Paarenchan:  req.Paarenchan,
		PlayerWind:  engine.ParseWind(req.SeatWind),
		RoundWind:   engine.ParseWind(req.RoundWind),
		Kyoutaku:    req.RiichiSticks,
		Tsumibo:     req.Honba,
	})
	if err != nil {
		return fail(err.Error())
	}
	if result.Error != "" {
		return fail(result.Error)
	}

	return &HandResponse{
		OK: true,
		Result: &HandResult{
			Han:  result.Han,
			Fu:   result.Fu,
			Cost: result.Cost,
			Yaku: expandYaku(result.Yaku),
		},
		Debug: debugLines,
	}
}

// expandYaku flattens the yaku list to plain names. Dora-type entries with
// a counted multiplicity above one repeat their name that many times, so
// three dora display as three entries rather than one "Dora x3".
func expandYaku(yaku []engine.Yaku) []string {
	names := make([]string, 0, len(yaku))
	for _, y := range yaku {
		if strings.Contains(y.Name, "Dora") {
			count, counted := 0, false
			if y.HanOpen != nil {
				count, counted = *y.HanOpen, true
			}
			if y.HanClosed != nil {
				count, counted = *y.HanClosed, true
			}
			if counted && count > 1 {
				for i := 0; i < count; i++ {
					names = append(names, y.Name)
				}
				continue
			}
		}
		names = append(names, y.Name)
	}
	return names
}
