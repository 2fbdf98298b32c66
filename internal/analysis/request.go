// Package analysis translates loosely-structured client requests into the
// calculation runtime's contract and the runtime's answers back into the
// response shape, carrying the tile, meld and dora rules in between.
package analysis

import (
	"github.com/tidwall/gjson"

	"github.com/tatsujin/kifu-api/internal/engine"
	"github.com/tatsujin/kifu-api/internal/meld"
)

// HandRequest is a scoring request after lenient decoding: tiles still in
// public notation, every flag resolved through its alias keys into a fixed
// field, counters already coerced to integers.
type HandRequest struct {
	Hand           []string
	WinTile        string
	Melds          []meld.Descriptor
	DoraIndicators []string
	UraIndicators  []string
	SeatWind       string
	RoundWind      string
	WinType        string
	Flags          engine.Situational
	Paarenchan     int
	Honba          int
	RiichiSticks   int
	Debug          bool
}

// ParseHandRequest reads the untyped JSON body. Absent or malformed fields
// degrade to their zero defaults instead of failing: flags default to
// false, counters to 0, the win type to ron. Truthiness is lenient — any
// non-empty, non-zero value counts as true.
func ParseHandRequest(body []byte) *HandRequest {
	root := gjson.ParseBytes(body)

	req := &HandRequest{
		Hand:           stringList(root.Get("hand")),
		WinTile:        root.Get("winTile").String(),
		DoraIndicators: stringList(root.Get("doraIndicators")),
		UraIndicators:  stringList(root.Get("uraDoraIndicators")),
		SeatWind:       root.Get("seatWind").String(),
		RoundWind:      root.Get("roundWind").String(),
		WinType:        "ron",
		Paarenchan:     intValue(root.Get("paarenchan")),
		Honba:          intValue(root.Get("honba")),
		RiichiSticks:   intValue(root.Get("riichiSticks")),
		Debug:          truthy(root.Get("debug")),
	}
	if wt := root.Get("winType"); wt.Exists() {
		req.WinType = wt.String()
	}

	flag := func(keys ...string) bool {
		for _, key := range keys {
			if truthy(root.Get(key)) {
				return true
			}
		}
		return false
	}
	req.Flags = engine.Situational{
		// Double and open riichi imply the riichi state itself.
		Riichi:        flag("riichi", "is_riichi", "is_daburu_riichi", "is_open_riichi"),
		Ippatsu:       flag("ippatsu", "is_ippatsu"),
		Rinshan:       flag("is_rinshan"),
		Chankan:       flag("is_chankan"),
		Haitei:        flag("is_haitei"),
		Houtei:        flag("is_houtei"),
		DaburuRiichi:  flag("is_daburu_riichi"),
		NagashiMangan: flag("is_nagashi_mangan"),
		Tenhou:        flag("is_tenhou"),
		Renhou:        flag("is_renhou"),
		Chiihou:       flag("is_chiihou"),
		OpenRiichi:    flag("is_open_riichi"),
	}

	for _, m := range root.Get("melds").Array() {
		desc := meld.Descriptor{
			Kind:       m.Get("kind").String(),
			Tiles:      stringList(m.Get("tiles")),
			CalledTile: m.Get("calledTile").String(),
		}
		if cf := m.Get("calledFrom"); truthy(cf) {
			desc.CalledFrom = cf.String()
		}
		req.Melds = append(req.Melds, desc)
	}

	return req
}

// ParseTenpaiRequest extracts the hand tile list from a tenpai request body.
func ParseTenpaiRequest(body []byte) []string {
	return stringList(gjson.GetBytes(body, "hand"))
}

// truthy applies lenient boolean coercion: null, false, 0, "" and empty
// collections are false, everything else true.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	case gjson.JSON:
		if v.IsArray() {
			return len(v.Array()) > 0
		}
		return len(v.Map()) > 0
	default:
		return false
	}
}

// intValue coerces a counter field to an int, falling back to 0 on
// anything non-numeric.
func intValue(v gjson.Result) int {
	return int(v.Int())
}

func stringList(v gjson.Result) []string {
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}
