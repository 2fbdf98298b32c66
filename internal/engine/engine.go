// Package engine defines the contracts of the two external collaborators
// the analysis layer consumes: the scoring calculator and the 13-tile
// wait solver. Both run in the mahjong runtime sidecar.
package engine

import (
	"context"

	"github.com/tatsujin/kifu-api/internal/meld"
)

// Wind is a wind tile index in the runtime's numbering.
type Wind int

const (
	East  Wind = 27
	South Wind = 28
	West  Wind = 29
	North Wind = 30
)

// ParseWind maps a public wind code onto a runtime wind. Unrecognized
// codes fall back to East.
func ParseWind(code string) Wind {
	switch code {
	case "S":
		return South
	case "W":
		return West
	case "N":
		return North
	default:
		return East
	}
}

// Situational holds every boolean flag the scoring call accepts. All
// default to false; the analysis layer owns the lenient coercion from
// the raw request.
type Situational struct {
	Riichi        bool `json:"is_riichi"`
	Ippatsu       bool `json:"is_ippatsu"`
	Rinshan       bool `json:"is_rinshan"`
	Chankan       bool `json:"is_chankan"`
	Haitei        bool `json:"is_haitei"`
	Houtei        bool `json:"is_houtei"`
	DaburuRiichi  bool `json:"is_daburu_riichi"`
	NagashiMangan bool `json:"is_nagashi_mangan"`
	Tenhou        bool `json:"is_tenhou"`
	Renhou        bool `json:"is_renhou"`
	Chiihou       bool `json:"is_chiihou"`
	OpenRiichi    bool `json:"is_open_riichi"`
}

// CalcRequest is the scoring engine's full call contract: a normalized
// tile list, melds, active dora tiles and every situational input.
type CalcRequest struct {
	Tiles      []string    `json:"tiles"`
	WinTile    string      `json:"win,omitempty"`
	Melds      []meld.Meld `json:"melds"`
	Doras      []string    `json:"doras"`
	HasAka     bool        `json:"has_aka"`
	IsTsumo    bool        `json:"is_tsumo"`
	Situational
	Paarenchan int  `json:"paarenchan"`
	PlayerWind Wind `json:"player_wind"`
	RoundWind  Wind `json:"round_wind"`
	Kyoutaku   int  `json:"kyoutaku_number"`
	Tsumibo    int  `json:"tsumi_number"`
}

// Cost is the point breakdown of a scored hand.
type Cost struct {
	Main       int `json:"main"`
	Additional int `json:"additional,omitempty"`
}

// Yaku is a single scoring element. The dora-type entries carry open and
// closed counts; the counts are optional in the wire format.
type Yaku struct {
	Name      string `json:"name"`
	HanOpen   *int   `json:"han_open,omitempty"`
	HanClosed *int   `json:"han_closed,omitempty"`
}

// CalcResult is the scoring engine's answer. A non-empty Error means the
// hand could not be scored and the message is surfaced verbatim.
type CalcResult struct {
	Error string `json:"error,omitempty"`
	Han   int    `json:"han"`
	Fu    int    `json:"fu"`
	Cost  *Cost  `json:"cost"`
	Yaku  []Yaku `json:"yaku"`
}

// Calculator scores a fully-normalized hand.
type Calculator interface {
	Calculate(ctx context.Context, req *CalcRequest) (*CalcResult, error)
}

// SolveResult is the raw wait-solver answer: either a message string
// ("agari", "2 shanten", ...) or a list of winning tiles in internal
// notation. HasWaits distinguishes an empty wait list from a message.
type SolveResult struct {
	Message  string
	Waits    []string
	HasWaits bool
}

// Solver computes tenpai status for exactly 13 base-identity tiles.
type Solver interface {
	Solve(ctx context.Context, tiles []string) (*SolveResult, error)
}
