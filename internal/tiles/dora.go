package tiles

// Wind and dragon promotion orders. The last element wraps back to the
// first: a north indicator promotes east, a red dragon promotes white.
var (
	windCycle   = []string{"to", "na", "sh", "pe"}
	dragonCycle = []string{"hk", "ht", "ty"}
)

// FromIndicator returns the tile a dora indicator promotes. Suited tiles
// promote to the next rank (9 wraps to 1, a red five counts as rank 5);
// winds and dragons promote along their cycles. Anything unrecognized is
// returned unchanged. Accepts public or internal notation, returns internal.
func FromIndicator(indicator string) string {
	if indicator == "" {
		return ""
	}
	t := ToInternal(indicator)
	if IsSuited(t) {
		rank := int(t[0] - '0')
		if rank == 0 {
			rank = 5
		}
		next := rank + 1
		if rank == 9 {
			next = 1
		}
		return string([]byte{byte('0' + next), t[1]})
	}
	if next, ok := cyclicNext(windCycle, t); ok {
		return next
	}
	if next, ok := cyclicNext(dragonCycle, t); ok {
		return next
	}
	return t
}

// FromIndicators resolves a list of indicators, dropping empty entries.
func FromIndicators(indicators []string) []string {
	out := make([]string, 0, len(indicators))
	for _, ind := range indicators {
		if ind == "" {
			continue
		}
		out = append(out, FromIndicator(ind))
	}
	return out
}

func cyclicNext(cycle []string, tile string) (string, bool) {
	for i, v := range cycle {
		if v == tile {
			return cycle[(i+1)%len(cycle)], true
		}
	}
	return "", false
}
