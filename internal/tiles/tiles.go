package tiles

// Public notation uses "1m".."9m" (and "0m" for the red five) per suit plus
// two-letter honor codes. The calculation runtime speaks its own honor
// alphabet; suited tiles pass through unchanged in both directions.

var honorToInternal = map[string]string{
	"E": "to",
	"S": "na",
	"W": "sh",
	"N": "pe",
	"P": "hk",
	"F": "ht",
	"C": "ty",
}

var honorToPublic = buildReverse(honorToInternal)

func buildReverse(m map[string]string) map[string]string {
	rev := make(map[string]string, len(m))
	for k, v := range m {
		rev[v] = k
	}
	return rev
}

// alphabet is every tile the calculation runtime accepts, in internal
// notation. Rank 0 is the red five of each suit.
var alphabet = buildAlphabet()

func buildAlphabet() map[string]struct{} {
	set := make(map[string]struct{}, 37)
	for _, suit := range []byte{'m', 'p', 's'} {
		for rank := byte('0'); rank <= '9'; rank++ {
			set[string([]byte{rank, suit})] = struct{}{}
		}
	}
	for _, internal := range honorToInternal {
		set[internal] = struct{}{}
	}
	return set
}

// ToInternal converts a tile from public to internal notation. Unknown or
// empty input passes through unchanged (empty stays empty).
func ToInternal(tile string) string {
	if tile == "" {
		return ""
	}
	if v, ok := honorToInternal[tile]; ok {
		return v
	}
	return tile
}

// ToPublic converts a tile from internal back to public notation.
func ToPublic(tile string) string {
	if tile == "" {
		return ""
	}
	if v, ok := honorToPublic[tile]; ok {
		return v
	}
	return tile
}

// ToInternalAll normalizes a tile list, dropping empty entries.
func ToInternalAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t == "" {
			continue
		}
		out = append(out, ToInternal(t))
	}
	return out
}

// IsSuited reports whether a tile (internal notation) is a numbered tile.
func IsSuited(tile string) bool {
	if len(tile) != 2 {
		return false
	}
	if tile[0] < '0' || tile[0] > '9' {
		return false
	}
	return tile[1] == 'm' || tile[1] == 'p' || tile[1] == 's'
}

// IsRed reports whether a tile is a red-five variant.
func IsRed(tile string) bool {
	return tile == "0m" || tile == "0p" || tile == "0s"
}

// BaseKey returns the supply-counting identity of a tile: a red five
// collapses onto the plain five of its suit, everything else is itself.
func BaseKey(tile string) string {
	if tile == "" {
		return ""
	}
	if IsRed(tile) {
		return "5" + tile[1:]
	}
	return tile
}

// Known reports whether a tile (internal notation) belongs to the
// runtime's alphabet.
func Known(tile string) bool {
	_, ok := alphabet[tile]
	return ok
}

// HasRed reports whether any tile in the list is a red five.
func HasRed(ts []string) bool {
	for _, t := range ts {
		if IsRed(t) {
			return true
		}
	}
	return false
}
