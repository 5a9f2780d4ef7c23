package prompt

import (
	"strings"
	"testing"

	"slate/pkg/schema"
)

func TestValidateOrbitDuration(t *testing.T) {
	shot := schema.Shot{
		CameraMovement:  "orbit-360",
		CameraPrompt:    "camera orbits 360 degrees around the subject",
		DurationSeconds: 6,
	}
	compiled := Assemble(shot, nil, noirStyle(), nil)
	v := Validate(compiled, shot, nil, noirStyle())
	if v.IsValid {
		t.Error("orbit under ten seconds should invalidate the prompt")
	}
	if len(v.Errors) != 1 || !strings.Contains(v.Errors[0], "orbit") {
		t.Errorf("errors = %v, want one orbit duration error", v.Errors)
	}
	if v.EstimatedQuality != schema.QualityLow {
		t.Errorf("quality = %q, want low", v.EstimatedQuality)
	}

	shot.DurationSeconds = 10
	v = Validate(compiled, shot, nil, noirStyle())
	if !v.IsValid || len(v.Errors) != 0 {
		t.Errorf("ten-second orbit flagged: %v", v.Errors)
	}
}

func TestValidateHighQuality(t *testing.T) {
	shot := schema.Shot{
		CameraMovement:  "slow-push-in",
		CameraPrompt:    "slow push in toward the subject",
		Subject:         "Marcus, a weathered detective in a rain-soaked trench coat",
		Action:          "He lights a cigarette and waits",
		Environment:     "rain-slick alley",
		Lighting:        "low-key night lighting",
		DurationSeconds: 6,
	}
	roster := anchorRoster()
	compiled := Assemble(shot, roster, noirStyle(), nil)
	v := Validate(compiled, shot, roster, noirStyle())
	if !v.IsValid {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if len(v.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", v.Warnings)
	}
	if !v.CharacterCoverage {
		t.Error("roster character is referenced; coverage should hold")
	}
	if v.EstimatedQuality != schema.QualityHigh {
		t.Errorf("quality = %q, want high", v.EstimatedQuality)
	}
}

func TestValidateShortPrompt(t *testing.T) {
	shot := schema.Shot{DurationSeconds: 5}
	v := Validate("harbor at dawn", shot, nil, noirStyle())
	if !v.IsValid {
		t.Errorf("short prompt should warn, not error: %v", v.Errors)
	}
	if !hasWarning(v.Warnings, "too short") {
		t.Errorf("warnings = %v, want a too-short warning", v.Warnings)
	}
	if v.EstimatedQuality != schema.QualityMedium {
		t.Errorf("quality = %q, want medium", v.EstimatedQuality)
	}
}

func TestValidateLongDurationWarns(t *testing.T) {
	shot := schema.Shot{CameraPrompt: "static wide shot", DurationSeconds: 9}
	compiled := strings.Repeat("a detailed cinematic description ", 5)
	v := Validate(compiled, shot, nil, noirStyle())
	if !hasWarning(v.Warnings, "artifact risk") {
		t.Errorf("warnings = %v, want an artifact-risk warning", v.Warnings)
	}
	if !v.IsValid {
		t.Error("long duration is advisory, not an error")
	}
}

func TestValidateMissingStyle(t *testing.T) {
	shot := schema.Shot{DurationSeconds: 5}
	compiled := strings.Repeat("a detailed cinematic description ", 5)
	v := Validate(compiled, shot, nil, nil)
	if !hasWarning(v.Warnings, "style bible") {
		t.Errorf("warnings = %v, want a missing-style warning", v.Warnings)
	}
}

func TestValidateCharacterCoverage(t *testing.T) {
	roster := anchorRoster()
	shot := schema.Shot{DurationSeconds: 5}
	compiled := "An empty street at night, sodium lamps reflected in standing water."
	v := Validate(compiled, shot, roster, noirStyle())
	if v.CharacterCoverage {
		t.Error("no roster character appears; coverage should fail")
	}
	if !hasWarning(v.Warnings, "no roster character") {
		t.Errorf("warnings = %v, want an uncovered-roster warning", v.Warnings)
	}

	v = Validate(compiled, shot, nil, noirStyle())
	if !v.CharacterCoverage {
		t.Error("empty roster should count as covered")
	}
}

func TestValidateUntaggedReferenceCharacter(t *testing.T) {
	roster := anchorRoster()
	shot := schema.Shot{DurationSeconds: 5}
	compiled := "Marcus crosses the empty street toward the flickering diner sign."
	v := Validate(compiled, shot, roster, noirStyle())
	if !hasWarning(v.Warnings, "anchor tag") {
		t.Errorf("warnings = %v, want an untagged-anchor warning", v.Warnings)
	}

	tagged := "@element_marcus crosses the empty street toward the flickering diner sign."
	v = Validate(tagged, shot, roster, noirStyle())
	if hasWarning(v.Warnings, "anchor tag") {
		t.Errorf("warnings = %v, anchor warning should clear once tagged", v.Warnings)
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}
