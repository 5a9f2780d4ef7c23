// Package pacing computes how long a script naturally wants to run and how
// well a requested target duration fits that structure.
package pacing

import (
	"fmt"
	"math"
	"strings"

	"slate/pkg/schema"
)

// Report is the result of analyzing a script against a target duration.
type Report struct {
	OptimalDuration    int              `json:"optimal_duration"`
	FitScore           int              `json:"fit_score"`
	MinViableDuration  int              `json:"min_viable_duration"`
	MaxComfortDuration int              `json:"max_comfort_duration"`
	Breakdown          []SceneBreakdown `json:"breakdown"`
	Suggestion         string           `json:"suggestion,omitempty"`
}

// SceneBreakdown is the per-scene share of the optimal duration.
type SceneBreakdown struct {
	SceneIndex int `json:"scene_index"`
	Beats      int `json:"beats"`
	Seconds    int `json:"seconds"`
}

const (
	baseBeatSeconds     = 5
	dialogueBeatSeconds = 7

	// fitBand is the relative deviation inside which the fit is perfect.
	fitBand = 0.15
	// fitDecay is the linear score loss per unit of deviation beyond the band.
	fitDecay = 130.0

	suggestionFloor = 70
)

// toneBias adds seconds for tones that conventionally want lingering shots.
// Unrecognized tones contribute nothing.
var toneBias = map[string]int{
	"dramatic":      1,
	"tense":         1,
	"suspenseful":   1,
	"melancholic":   1,
	"somber":        1,
	"contemplative": 2,
	"romantic":      1,
	"mysterious":    1,
}

// Analyze computes the optimal duration implied by the script's beat
// structure and scores the requested target against it. It is pure and
// idempotent: the optimal duration depends only on beat count, dialogue, and
// tone, never on the target.
func Analyze(analysis schema.ScriptAnalysis, targetSeconds int) Report {
	report := Report{Breakdown: []SceneBreakdown{}}
	total := 0
	for i, scene := range analysis.Scenes {
		sceneSeconds := 0
		for _, beat := range scene.Beats {
			sceneSeconds += beatSeconds(beat)
		}
		report.Breakdown = append(report.Breakdown, SceneBreakdown{
			SceneIndex: i,
			Beats:      len(scene.Beats),
			Seconds:    sceneSeconds,
		})
		total += sceneSeconds
	}

	report.OptimalDuration = total
	report.MinViableDuration = int(math.Round(float64(total) * 0.6))
	report.MaxComfortDuration = int(math.Round(float64(total) * 1.4))
	report.FitScore = fitScore(total, targetSeconds)

	if report.FitScore < suggestionFloor {
		report.Suggestion = fmt.Sprintf(
			"A %ds cut would fight the script's structure; this story naturally fits %ds (viable range %d-%ds).",
			targetSeconds, report.OptimalDuration, report.MinViableDuration, report.MaxComfortDuration,
		)
	}
	return report
}

func beatSeconds(beat schema.ScriptBeat) int {
	base := baseBeatSeconds
	if len(beat.Dialogue) > 0 {
		base = dialogueBeatSeconds
	}
	return base + toneBias[strings.ToLower(strings.TrimSpace(beat.EmotionalTone))]
}

// fitScore is 100 inside the ±15% band and decays linearly with relative
// deviation beyond it, clamped to [0,100]. A zero optimal only fits a zero
// target.
func fitScore(optimal, target int) int {
	if optimal == 0 {
		if target == 0 {
			return 100
		}
		return 0
	}
	dev := math.Abs(float64(target)-float64(optimal)) / float64(optimal)
	if dev <= fitBand {
		return 100
	}
	score := int(math.Round(100 - (dev-fitBand)*fitDecay))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
