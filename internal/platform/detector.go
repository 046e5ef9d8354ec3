package platform

import (
	"sort"
	"strings"
)

// UnnamedPrefix marks columns the reader synthesized for blank header cells.
// They carry no vendor meaning and are excluded from detection and
// validation.
const UnnamedPrefix = "Unnamed"

// Score is one channel's detection score against a file's column set.
type Score struct {
	Platform Platform `json:"platform"`
	Score    float64  `json:"score"`
	Matched  []string `json:"matched"`
}

// DetectionResult reports which channel a file most likely came from.
// Detected is empty unless every identifying column matched; callers may
// still fall back to the top entry of AllScores with a warning.
type DetectionResult struct {
	Detected       Platform `json:"detected"`
	Confidence     float64  `json:"confidence"`
	MatchedColumns []string `json:"matchedColumns"`
	AllScores      []Score  `json:"allScores"`
}

// Detect scores every configured channel by how many of its identifying
// columns appear in the first row's column set. Only data shape matters;
// cell values are never inspected, so column order is irrelevant.
func Detect(rows []RawRow, configs map[Platform]FieldConfig) DetectionResult {
	if len(rows) == 0 {
		return DetectionResult{Confidence: 0}
	}

	actual := actualColumnSet(rows[0])

	scores := make([]Score, 0, len(Platforms))
	for _, p := range Platforms {
		cfg, ok := configs[p]
		if !ok {
			continue
		}
		matched := make([]string, 0, len(cfg.IdentifyBy))
		for _, col := range cfg.IdentifyBy {
			if actual[col] {
				matched = append(matched, col)
			}
		}
		score := 0.0
		if len(cfg.IdentifyBy) > 0 {
			score = float64(len(matched)) / float64(len(cfg.IdentifyBy)) * 100
		}
		scores = append(scores, Score{Platform: p, Score: score, Matched: matched})
	}

	// Stable sort keeps configuration order on ties.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	result := DetectionResult{AllScores: scores}
	if len(scores) == 0 {
		return result
	}

	best := scores[0]
	result.Confidence = best.Score
	result.MatchedColumns = best.Matched
	if best.Score == 100 {
		result.Detected = best.Platform
	}
	return result
}

func actualColumnSet(row RawRow) map[string]bool {
	set := make(map[string]bool, len(row))
	for col := range row {
		if strings.HasPrefix(col, UnnamedPrefix) {
			continue
		}
		set[col] = true
	}
	return set
}
