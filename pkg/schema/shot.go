package schema

// CharacterRef is a roster entry from the production's character store. A
// character has reference images once prior art has been registered with the
// video provider, in which case KlingElementID carries the provider's element
// binding and prompts reference the character by anchor tag instead of
// re-describing it.
type CharacterRef struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Role              string `json:"role,omitempty"`
	VisualDescription string `json:"visual_description"`
	KlingElementID    string `json:"kling_element_id,omitempty"`
}

// HasReferenceImages reports whether prior art exists for this character.
func (c CharacterRef) HasReferenceImages() bool {
	return c.KlingElementID != ""
}

// StyleBible is the reusable visual-style block applied to every prompt in a
// production. StyleString is appended last to every compiled prompt and by
// convention ends with a resolution marker such as "4K".
type StyleBible struct {
	FilmStock      string   `json:"film_stock,omitempty"`
	ColorPalette   string   `json:"color_palette,omitempty"`
	Textures       []string `json:"textures,omitempty"`
	NegativePrompt string   `json:"negative_prompt,omitempty"`
	StyleString    string   `json:"style_string"`
}

// Shot is a single planned camera setup. Order is globally sequential across
// the whole shot list, forming a dense 0..N-1 sequence in scene traversal
// order. GeneratedPrompt and NegativePrompt are derived views recomputed on
// demand, never authoritative state.
type Shot struct {
	SceneIndex      int           `json:"scene_index"`
	Order           int           `json:"order"`
	ShotType        string        `json:"shot_type"`
	CameraMovement  string        `json:"camera_movement"`
	CameraPrompt    string        `json:"camera_prompt"`
	Subject         string        `json:"subject"`
	Action          string        `json:"action"`
	Environment     string        `json:"environment,omitempty"`
	Lighting        string        `json:"lighting,omitempty"`
	DurationSeconds int           `json:"duration_seconds"`
	Dialogue        *ShotDialogue `json:"dialogue,omitempty"`
	IncludeDialogue *bool         `json:"include_dialogue,omitempty"`
	SceneElementID  string        `json:"scene_element_id,omitempty"`
	GeneratedPrompt string        `json:"generated_prompt,omitempty"`
	NegativePrompt  string        `json:"negative_prompt,omitempty"`
}

// WantsDialogue reports whether the dialogue block should be compiled into the
// prompt. Unset defaults to true.
func (s Shot) WantsDialogue() bool {
	return s.IncludeDialogue == nil || *s.IncludeDialogue
}

// ShotDialogue binds the first spoken line of a beat to a roster character.
// CharacterID is empty when the speaker could not be resolved.
type ShotDialogue struct {
	CharacterID   string `json:"character_id"`
	CharacterName string `json:"character_name"`
	Line          string `json:"line"`
	Emotion       string `json:"emotion,omitempty"`
}

// VoiceProfile enriches a character's dialogue delivery in compiled prompts.
type VoiceProfile struct {
	Tone   string `json:"tone,omitempty"`
	Accent string `json:"accent,omitempty"`
	Pace   string `json:"pace,omitempty"`
}

// Quality levels reported by prompt validation.
const (
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"
)

// PromptValidation is the structured report for one compiled prompt. Errors
// invalidate the prompt but never prevent the string from being returned; the
// caller decides whether to block generation.
type PromptValidation struct {
	IsValid           bool     `json:"is_valid"`
	Warnings          []string `json:"warnings"`
	Errors            []string `json:"errors"`
	CharacterCoverage bool     `json:"character_coverage"`
	EstimatedQuality  string   `json:"estimated_quality"`
}
