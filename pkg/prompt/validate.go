package prompt

import (
	"fmt"
	"strings"

	"slate/pkg/catalog"
	"slate/pkg/schema"
	"slate/pkg/utils"
)

const (
	minPromptLength = 50
	maxPromptLength = 2000
	artifactRiskSec = 8
	orbitMinimumSec = 10
)

// Validate inspects a compiled prompt against its shot and roster. Errors
// mark the prompt invalid but the caller still receives the string; warnings
// are advisory only.
func Validate(compiled string, shot schema.Shot, characters []schema.CharacterRef, style *schema.StyleBible) schema.PromptValidation {
	v := schema.PromptValidation{
		IsValid:  true,
		Warnings: []string{},
		Errors:   []string{},
	}

	movementText := shot.CameraPrompt + " " + shot.CameraMovement
	if catalog.IsOrbit(movementText) && shot.DurationSeconds < orbitMinimumSec {
		v.Errors = append(v.Errors, fmt.Sprintf(
			"orbit movement requires at least %ds, shot has %ds", orbitMinimumSec, shot.DurationSeconds))
		v.IsValid = false
	}

	if len(compiled) < minPromptLength {
		v.Warnings = append(v.Warnings, "prompt too short to give the generator enough signal")
	}
	if len(compiled) > maxPromptLength {
		v.Warnings = append(v.Warnings, fmt.Sprintf("prompt exceeds %d characters and may be truncated by the provider", maxPromptLength))
	}
	if shot.DurationSeconds > artifactRiskSec {
		v.Warnings = append(v.Warnings, fmt.Sprintf("durations above %ds carry elevated artifact risk", artifactRiskSec))
	}

	styled := style != nil && strings.TrimSpace(style.StyleString) != ""
	if !styled {
		v.Warnings = append(v.Warnings, "no style bible applied; output look will drift between shots")
	}

	referenced := 0
	for _, c := range characters {
		if characterReferenced(compiled, c) {
			referenced++
		}
	}
	if len(characters) > 0 && referenced == 0 {
		v.Warnings = append(v.Warnings, "no roster character is referenced in the prompt")
	}
	for _, c := range characters {
		if c.HasReferenceImages() && !strings.Contains(compiled, AnchorToken(c.Name)) && characterReferenced(compiled, c) {
			v.Warnings = append(v.Warnings, fmt.Sprintf("character %q has reference images but no anchor tag in the prompt", c.Name))
		}
	}

	v.CharacterCoverage = len(characters) == 0 || referenced > 0

	switch {
	case len(v.Errors) > 0:
		v.EstimatedQuality = schema.QualityLow
	case len(compiled) > 100 && len(v.Warnings) == 0 && styled:
		v.EstimatedQuality = schema.QualityHigh
	default:
		v.EstimatedQuality = schema.QualityMedium
	}
	return v
}

func characterReferenced(compiled string, c schema.CharacterRef) bool {
	if strings.Contains(compiled, AnchorToken(c.Name)) {
		return true
	}
	return utils.MentionsName(compiled, c.Name)
}
