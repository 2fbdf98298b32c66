package tiles

import "strings"

// NormalizeLabel cleans a raw detector class label into public notation.
// Labels may carry a model-name prefix ("yolo - E") or a hyphenated class
// prefix ("tile-5m"); only the final token matters. Empty labels stay empty.
func NormalizeLabel(name string) string {
	text := strings.TrimSpace(name)
	if text == "" {
		return ""
	}
	if strings.Contains(text, " ") {
		fields := strings.Fields(text)
		text = fields[len(fields)-1]
	}
	if strings.Contains(text, "-") && len(text) > 2 {
		parts := strings.Split(text, "-")
		text = strings.TrimSpace(parts[len(parts)-1])
	}
	return ToPublic(text)
}

// NormalizeLabels cleans every label and drops the ones that normalize
// to nothing.
func NormalizeLabels(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if t := NormalizeLabel(name); t != "" {
			out = append(out, t)
		}
	}
	return out
}
