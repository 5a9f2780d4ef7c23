package pacing

import (
	"encoding/json"
	"strings"
	"testing"

	"slate/pkg/schema"
)

func beats(n int, tone string) []schema.ScriptBeat {
	out := make([]schema.ScriptBeat, n)
	for i := range out {
		out[i] = schema.ScriptBeat{Description: "beat", EmotionalTone: tone}
	}
	return out
}

func TestAnalyzeTwoHopefulBeats(t *testing.T) {
	analysis := schema.ScriptAnalysis{
		Scenes: []schema.ScriptScene{{Beats: beats(2, "hopeful")}},
	}
	report := Analyze(analysis, 10)
	if report.OptimalDuration != 10 {
		t.Errorf("optimal = %d, want 10", report.OptimalDuration)
	}
	if report.FitScore != 100 {
		t.Errorf("fit score = %d, want 100", report.FitScore)
	}
	if report.Suggestion != "" {
		t.Errorf("unexpected suggestion %q", report.Suggestion)
	}
}

func TestAnalyzeTenBeatsShortTarget(t *testing.T) {
	analysis := schema.ScriptAnalysis{
		Scenes: []schema.ScriptScene{
			{Beats: beats(5, "neutral")},
			{Beats: beats(5, "neutral")},
		},
	}
	report := Analyze(analysis, 15)
	if report.OptimalDuration != 50 {
		t.Errorf("optimal = %d, want 50", report.OptimalDuration)
	}
	if report.FitScore >= 50 {
		t.Errorf("fit score = %d, want < 50", report.FitScore)
	}
	if !strings.Contains(report.Suggestion, "naturally fits") {
		t.Errorf("suggestion %q missing natural-fit hint", report.Suggestion)
	}
}

func TestAnalyzeDialogueAndToneBias(t *testing.T) {
	analysis := schema.ScriptAnalysis{
		Scenes: []schema.ScriptScene{{
			Beats: []schema.ScriptBeat{
				{Description: "silent beat", EmotionalTone: "neutral"},
				{Description: "spoken beat", EmotionalTone: "neutral",
					Dialogue: []schema.BeatDialogue{{Character: "Ada", Line: "Go."}}},
				{Description: "lingering beat", EmotionalTone: "contemplative"},
				{Description: "tense spoken beat", EmotionalTone: "Tense",
					Dialogue: []schema.BeatDialogue{{Character: "Ada", Line: "Now."}}},
			},
		}},
	}
	// 5 + 7 + (5+2) + (7+1)
	report := Analyze(analysis, 27)
	if report.OptimalDuration != 27 {
		t.Errorf("optimal = %d, want 27", report.OptimalDuration)
	}
}

func TestAnalyzeRange(t *testing.T) {
	analysis := schema.ScriptAnalysis{
		Scenes: []schema.ScriptScene{{Beats: beats(5, "neutral")}},
	}
	report := Analyze(analysis, 25)
	if report.MinViableDuration != 15 {
		t.Errorf("min viable = %d, want 15", report.MinViableDuration)
	}
	if report.MaxComfortDuration != 35 {
		t.Errorf("max comfort = %d, want 35", report.MaxComfortDuration)
	}
}

func TestAnalyzeBreakdown(t *testing.T) {
	analysis := schema.ScriptAnalysis{
		Scenes: []schema.ScriptScene{
			{Beats: beats(2, "neutral")},
			{Beats: beats(3, "dramatic")},
		},
	}
	report := Analyze(analysis, 0)
	if len(report.Breakdown) != 2 {
		t.Fatalf("breakdown has %d scenes, want 2", len(report.Breakdown))
	}
	if report.Breakdown[0].Seconds != 10 || report.Breakdown[0].Beats != 2 {
		t.Errorf("scene 0 = %+v, want 2 beats / 10s", report.Breakdown[0])
	}
	if report.Breakdown[1].Seconds != 18 || report.Breakdown[1].Beats != 3 {
		t.Errorf("scene 1 = %+v, want 3 beats / 18s", report.Breakdown[1])
	}
	sum := 0
	for _, sc := range report.Breakdown {
		sum += sc.Seconds
	}
	if sum != report.OptimalDuration {
		t.Errorf("breakdown sums to %d, optimal is %d", sum, report.OptimalDuration)
	}
}

func TestAnalyzeEmptyScript(t *testing.T) {
	report := Analyze(schema.ScriptAnalysis{}, 0)
	if report.OptimalDuration != 0 {
		t.Errorf("optimal = %d, want 0", report.OptimalDuration)
	}
	if report.Breakdown == nil || len(report.Breakdown) != 0 {
		t.Errorf("breakdown = %#v, want empty, not nil", report.Breakdown)
	}
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"breakdown":[]`) {
		t.Errorf("breakdown serializes as null: %s", data)
	}
	if report.FitScore != 100 {
		t.Errorf("fit score for zero/zero = %d, want 100", report.FitScore)
	}
	if got := Analyze(schema.ScriptAnalysis{}, 30); got.FitScore != 0 {
		t.Errorf("fit score for zero optimal, nonzero target = %d, want 0", got.FitScore)
	}
}

func TestOptimalIndependentOfTarget(t *testing.T) {
	analysis := schema.ScriptAnalysis{
		Scenes: []schema.ScriptScene{{Beats: beats(4, "mysterious")}},
	}
	for _, target := range []int{0, 10, 24, 60, 300} {
		report := Analyze(analysis, target)
		if report.OptimalDuration != 24 {
			t.Errorf("target %d: optimal = %d, want 24", target, report.OptimalDuration)
		}
	}
}

func TestFitScoreDecay(t *testing.T) {
	cases := []struct {
		optimal, target int
		want            int
	}{
		{60, 60, 100},
		{60, 69, 100},  // inside the band
		{60, 51, 100},  // inside the band, low side
		{100, 130, 81}, // 0.30 deviation
		{100, 200, 0},  // far past the band, clamped
	}
	for _, tc := range cases {
		if got := fitScore(tc.optimal, tc.target); got != tc.want {
			t.Errorf("fitScore(%d, %d) = %d, want %d", tc.optimal, tc.target, got, tc.want)
		}
	}
	// strictly non-increasing as the target drifts from the optimal
	prev := 101
	for target := 60; target <= 180; target += 10 {
		score := fitScore(60, target)
		if score > prev {
			t.Fatalf("fitScore(60, %d) = %d rose above previous %d", target, score, prev)
		}
		prev = score
	}
}
