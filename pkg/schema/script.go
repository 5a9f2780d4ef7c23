package schema

// ScriptAnalysis is the structured breakdown of a movie description produced
// by the narrative-analysis step. It is read-only input to the planning engine.
type ScriptAnalysis struct {
	Synopsis          string            `json:"synopsis" jsonschema_description:"One-paragraph summary of the story"`
	Genre             string            `json:"genre" jsonschema_description:"Primary genre of the film (e.g., noir, horror, drama)"`
	SuggestedDuration int               `json:"suggested_duration" jsonschema_description:"Suggested total runtime in seconds"`
	Scenes            []ScriptScene     `json:"scenes" jsonschema_description:"Ordered scenes of the script"`
	Characters        []ScriptCharacter `json:"characters" jsonschema_description:"Characters appearing in the script"`
	StyleSuggestions  string            `json:"style_suggestions,omitempty" jsonschema_description:"Suggested visual style direction for the film"`
	EstimatedShots    int               `json:"estimated_shots,omitempty" jsonschema_description:"Estimated number of shots (one per beat)"`
	EstimatedCredits  int               `json:"estimated_credits,omitempty" jsonschema_description:"Estimated generation credits for the whole film"`
}

// ScriptScene is a contiguous block of the story in one location.
type ScriptScene struct {
	Title     string       `json:"title" jsonschema_description:"Short scene title"`
	Location  string       `json:"location" jsonschema_description:"Where the scene takes place"`
	TimeOfDay string       `json:"time_of_day" jsonschema_description:"Time of day (e.g., dawn, night, golden hour)"`
	Beats     []ScriptBeat `json:"beats" jsonschema_description:"Narrative beats; each beat becomes exactly one shot"`
}

// ScriptBeat is the smallest narrative unit. One beat maps to one shot.
type ScriptBeat struct {
	Description   string         `json:"description" jsonschema_description:"What happens in this beat"`
	EmotionalTone string         `json:"emotional_tone" jsonschema_description:"Dominant emotional tone (e.g., tense, hopeful, melancholic)"`
	Dialogue      []BeatDialogue `json:"dialogue,omitempty" jsonschema_description:"Spoken lines in this beat, if any"`
}

// BeatDialogue is one spoken line inside a beat.
type BeatDialogue struct {
	Character string `json:"character" jsonschema_description:"Name of the speaking character"`
	Line      string `json:"line" jsonschema_description:"The spoken line"`
	Emotion   string `json:"emotion,omitempty" jsonschema_description:"Delivery emotion (e.g., whispered, defiant)"`
}

// ScriptCharacter is a character as described by the analysis step, before it
// is resolved against the production roster.
type ScriptCharacter struct {
	Name        string `json:"name" jsonschema_description:"Canonical character name"`
	Role        string `json:"role,omitempty" jsonschema_description:"Narrative role (e.g., protagonist, antagonist)"`
	Description string `json:"description,omitempty" jsonschema_description:"Visual description usable in generation prompts"`
}
