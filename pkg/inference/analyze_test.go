package inference

import (
	"context"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3"
)

type canned struct {
	out string
	err error
}

func (c canned) Infer(context.Context, *openai.ChatCompletionNewParams, string, string) (string, error) {
	return c.out, c.err
}

func (c canned) Verify(context.Context, string) (bool, error) { return true, nil }

const sampleAnalysis = `{
	"synopsis": "A courier races a storm across the bay.",
	"genre": "action",
	"scenes": [
		{"title": "The Pier", "location": "pier", "time_of_day": "dusk", "beats": [
			{"description": "Jo unties the boat", "emotional_tone": "tense"},
			{"description": "The storm wall closes in", "emotional_tone": "fearful"}
		]}
	],
	"characters": [{"name": "Jo", "description": "a wiry courier in an oilskin coat"}]
}`

func TestAnalyzeScript(t *testing.T) {
	analysis, err := AnalyzeScript(context.Background(), canned{out: sampleAnalysis}, "a courier story", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(analysis.Scenes) != 1 {
		t.Fatalf("got %d scenes", len(analysis.Scenes))
	}
	if analysis.EstimatedShots != 2 {
		t.Errorf("estimated shots = %d, want backfilled beat count", analysis.EstimatedShots)
	}
}

func TestAnalyzeScriptCleansWrappedOutput(t *testing.T) {
	wrapped := "<think>planning the breakdown</think>\n```json\n" + sampleAnalysis + "\n```"
	analysis, err := AnalyzeScript(context.Background(), canned{out: wrapped}, "a courier story", 0)
	if err != nil {
		t.Fatal(err)
	}
	if analysis.Genre != "action" {
		t.Errorf("genre = %q", analysis.Genre)
	}
}

func TestAnalyzeScriptRejectsBadOutput(t *testing.T) {
	cases := []struct {
		name string
		out  string
		want string
	}{
		{"prose", "I cannot help with that.", "malformed"},
		{"missing scenes", `{"synopsis": "x"}`, "scenes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AnalyzeScript(context.Background(), canned{out: tc.out}, "a story", 0)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestAnalyzeScriptEmptyDescription(t *testing.T) {
	if _, err := AnalyzeScript(context.Background(), canned{out: sampleAnalysis}, "   ", 0); err == nil {
		t.Error("empty description should fail before inference")
	}
}
