// Package kifu validates game-record documents structurally before they
// reach any analysis: required fields present, values of the right shape,
// errors reported per field.
package kifu

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Document is the kifu schema. Kept in sync with the validator below.
type Document struct {
	GameID string  `json:"gameId"`
	Rounds []Round `json:"rounds"`
}

// Round is one hand of the game.
type Round struct {
	RoundIndex   int              `json:"roundIndex"`
	Wind         string           `json:"wind"`
	Kyoku        int              `json:"kyoku"`
	Honba        int              `json:"honba"`
	RiichiSticks int              `json:"riichiSticks"`
	Dealer       string           `json:"dealer"`
	Steps        []Step           `json:"steps"`
	Errors       []map[string]any `json:"errors"`
	Choices      []map[string]any `json:"choices"`
}

// Step is one recorded action within a round.
type Step struct {
	Index          int                 `json:"index"`
	Actor          string              `json:"actor"`
	Action         string              `json:"action"`
	Tile           *string             `json:"tile,omitempty"`
	Hands          map[string][]string `json:"hands"`
	Points         map[string]int      `json:"points"`
	DoraIndicators []string            `json:"doraIndicators"`
	Note           *string             `json:"note,omitempty"`
}

type fieldCheck struct {
	path string
	kind string // "string" | "int" | "array" | "object"
}

var documentChecks = []fieldCheck{
	{"gameId", "string"},
	{"rounds", "array"},
}

var roundChecks = []fieldCheck{
	{"roundIndex", "int"},
	{"wind", "string"},
	{"kyoku", "int"},
	{"honba", "int"},
	{"riichiSticks", "int"},
	{"dealer", "string"},
	{"steps", "array"},
	{"errors", "array"},
	{"choices", "array"},
}

var stepChecks = []fieldCheck{
	{"index", "int"},
	{"actor", "string"},
	{"action", "string"},
	{"hands", "object"},
	{"points", "object"},
	{"doraIndicators", "array"},
}

// Validate checks a raw document against the schema, collecting every
// per-field problem instead of stopping at the first.
func Validate(data []byte) (bool, []string) {
	if !gjson.ValidBytes(data) {
		return false, []string{"invalid JSON document"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return false, []string{"document must be an object"}
	}

	var errs []string
	errs = append(errs, checkFields(root, "", documentChecks)...)

	for i, round := range root.Get("rounds").Array() {
		prefix := fmt.Sprintf("rounds.%d.", i)
		if !round.IsObject() {
			errs = append(errs, prefix[:len(prefix)-1]+": value is not a valid object")
			continue
		}
		errs = append(errs, checkFields(round, prefix, roundChecks)...)
		for j, step := range round.Get("steps").Array() {
			stepPrefix := fmt.Sprintf("%ssteps.%d.", prefix, j)
			if !step.IsObject() {
				errs = append(errs, stepPrefix[:len(stepPrefix)-1]+": value is not a valid object")
				continue
			}
			errs = append(errs, checkFields(step, stepPrefix, stepChecks)...)
		}
	}

	return len(errs) == 0, errs
}

func checkFields(obj gjson.Result, prefix string, checks []fieldCheck) []string {
	var errs []string
	for _, c := range checks {
		v := obj.Get(c.path)
		if !v.Exists() {
			errs = append(errs, prefix+c.path+": field required")
			continue
		}
		if !matchesKind(v, c.kind) {
			errs = append(errs, fmt.Sprintf("%s%s: value is not a valid %s", prefix, c.path, c.kind))
		}
	}
	return errs
}

func matchesKind(v gjson.Result, kind string) bool {
	switch kind {
	case "string":
		return v.Type == gjson.String
	case "int":
		return v.Type == gjson.Number && v.Num == float64(int64(v.Num))
	case "array":
		return v.IsArray()
	case "object":
		return v.IsObject()
	default:
		return false
	}
}

// Sample loads the bundled sample document from disk, degrading to a
// minimal stub when the file is missing or unreadable.
func Sample(path string) map[string]any {
	fallback := map[string]any{"gameId": "sample", "rounds": []any{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fallback
	}
	return doc
}
