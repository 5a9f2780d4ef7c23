package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/tidwall/gjson"

	"slate/pkg/schema"
	"slate/pkg/utils"
)

const analyzePrompt = `You are a film development assistant that breaks a movie description down into a production-ready script analysis. Return a single JSON object and nothing else.

The JSON object must contain: 'synopsis', 'genre', 'suggested_duration' (seconds), 'scenes', 'characters', 'style_suggestions', 'estimated_shots', and 'estimated_credits'.

**Scenes**:
- 'scenes' is an ordered array; each scene has 'title', 'location', 'time_of_day', and 'beats'.
- Each beat is one camera setup: 'description' (what happens, naming characters explicitly), 'emotional_tone' (one or two words, e.g. "tense", "hopeful", "melancholic"), and optional 'dialogue' entries of {'character', 'line', 'emotion'}.
- Keep beats small: one visual idea per beat. A beat with dialogue carries at most a few lines, and the first line is the one that will be staged.

**Characters**:
- 'characters' lists every named character with 'name', 'role', and a concrete visual 'description' suitable for a generation prompt (age, build, hair, wardrobe).

**Rules**:
- Use 3 to 6 scenes and 2 to 5 beats per scene for a short film.
- 'estimated_shots' equals the total beat count.
- Tones should come from everyday emotional vocabulary; do not invent compound labels.
- Mention characters by name inside beat descriptions so later stages can match them.
- Output only the JSON object, no commentary or markdown.`

// AnalyzeScript runs the narrative-analysis step: it prompts the model with
// the movie description and parses the structured breakdown. The planning
// engine itself never calls this; it is the adapter for the external stage
// that produces the engine's input.
func AnalyzeScript(ctx context.Context, inf Inferencer, description string, targetSeconds int) (schema.ScriptAnalysis, error) {
	var analysis schema.ScriptAnalysis
	description = strings.TrimSpace(description)
	if description == "" {
		return analysis, errors.New("empty movie description")
	}

	user := description
	if targetSeconds > 0 {
		user = fmt.Sprintf("%s\n\nTarget runtime: about %d seconds.", description, targetSeconds)
	}

	params := &openai.ChatCompletionNewParams{
		ResponseFormat: schema.StructuredOutputsResponseFormat(),
	}
	out, err := inf.Infer(ctx, params, analyzePrompt, user)
	if err != nil {
		return analysis, fmt.Errorf("script analysis inference: %w", err)
	}

	out = utils.CleanJSON(stripReasoning(out))
	if !gjson.Valid(out) {
		return analysis, errors.New("script analysis returned malformed JSON")
	}
	if !gjson.Get(out, "scenes").IsArray() {
		return analysis, errors.New("script analysis missing scenes array")
	}

	if err := json.Unmarshal([]byte(out), &analysis); err != nil {
		return analysis, fmt.Errorf("parsing script analysis: %w", err)
	}
	if analysis.EstimatedShots == 0 {
		for _, scene := range analysis.Scenes {
			analysis.EstimatedShots += len(scene.Beats)
		}
	}
	return analysis, nil
}

// stripReasoning drops a leading <think> block some local models emit.
func stripReasoning(out string) string {
	if strings.Contains(out, "<think>") {
		if idx := strings.LastIndex(out, "</think>"); idx != -1 {
			out = out[idx+len("</think>"):]
		}
	}
	return out
}
