package catalog

import (
	"strings"

	"slate/pkg/schema"
)

const (
	PacingSlow   = "slow"
	PacingMedium = "medium"
	PacingFast   = "fast"
)

// GenrePreset binds a genre to a style-bible template, preferred movements,
// and pacing defaults. CameraPreferences bias the planner's weighted draw
// without replacing the tone and dialogue logic.
type GenrePreset struct {
	ID                string            `json:"id"`
	StyleBible        schema.StyleBible `json:"style_bible"`
	CameraPreferences []string          `json:"camera_preferences"`
	AvgShotDuration   int               `json:"avg_shot_duration"`
	Pacing            string            `json:"pacing"`
}

var genres = []GenrePreset{
	{
		ID: "noir",
		StyleBible: schema.StyleBible{
			FilmStock:      "Kodak Double-X 5222 black and white",
			ColorPalette:   "deep blacks, silver highlights, smoke grey",
			Textures:       []string{"rain-slicked asphalt", "cigarette haze", "venetian blind shadows"},
			NegativePrompt: "bright colors, flat lighting, cheerful atmosphere",
			StyleString:    "1940s film noir, hard single-source lighting, deep shadows, Kodak Double-X black and white film grain, 4K",
		},
		CameraPreferences: []string{"static-close-up", "slow-push-in", "rack-focus-drift", "crane-down-settle"},
		AvgShotDuration:   7,
		Pacing:            PacingSlow,
	},
	{
		ID: "horror",
		StyleBible: schema.StyleBible{
			FilmStock:      "Kodak Vision3 500T pushed two stops",
			ColorPalette:   "sickly greens, bruised purples, near-black shadows",
			Textures:       []string{"peeling wallpaper", "condensation", "flickering fluorescents"},
			NegativePrompt: "daylight cheerfulness, clean surfaces, warm tones",
			StyleString:    "atmospheric horror, heavy grain, underexposed shadows with crushed blacks, sickly color cast, 4K",
		},
		CameraPreferences: []string{"slow-push-in", "handheld-follow", "rack-focus-drift", "static-wide"},
		AvgShotDuration:   6,
		Pacing:            PacingSlow,
	},
	{
		ID: "action",
		StyleBible: schema.StyleBible{
			FilmStock:      "digital, high shutter speed",
			ColorPalette:   "steel blue and amber, high contrast",
			Textures:       []string{"sparks", "dust clouds", "shattered glass"},
			NegativePrompt: "static tableaux, soft focus, muted energy",
			StyleString:    "modern action blockbuster, crisp high-shutter motion, teal and orange grade, dynamic energy, 4K",
		},
		CameraPreferences: []string{"handheld-follow", "tracking-lateral", "crash-zoom", "whip-pan", "low-angle-rise"},
		AvgShotDuration:   4,
		Pacing:            PacingFast,
	},
	{
		ID: "drama",
		StyleBible: schema.StyleBible{
			FilmStock:      "Kodak Vision3 200T",
			ColorPalette:   "warm naturalism, soft earth tones",
			Textures:       []string{"window light", "worn fabric", "steam from coffee"},
			NegativePrompt: "garish color, frantic motion, artificial gloss",
			StyleString:    "intimate character drama, naturalistic soft light, warm Kodak palette, shallow depth of field, 4K",
		},
		CameraPreferences: []string{"static-medium", "slow-push-in", "over-the-shoulder", "static-close-up"},
		AvgShotDuration:   6,
		Pacing:            PacingMedium,
	},
	{
		ID: "scifi",
		StyleBible: schema.StyleBible{
			FilmStock:      "digital anamorphic",
			ColorPalette:   "cold cyans, neon magenta accents, chrome",
			Textures:       []string{"holographic glare", "brushed metal", "volumetric fog"},
			NegativePrompt: "period costume, rustic settings, warm candlelight",
			StyleString:    "cinematic science fiction, anamorphic lens flares, cold volumetric light, immaculate production design, 4K",
		},
		CameraPreferences: []string{"slow-dolly-forward", "aerial-drone", "orbit-360", "pull-back-reveal"},
		AvgShotDuration:   7,
		Pacing:            PacingMedium,
	},
	{
		ID: "romance",
		StyleBible: schema.StyleBible{
			FilmStock:      "Kodak Vision3 250D",
			ColorPalette:   "golden hour warmth, rose and cream",
			Textures:       []string{"lens bloom", "drifting petals", "string lights"},
			NegativePrompt: "harsh shadows, desaturated grime, clinical framing",
			StyleString:    "romantic golden-hour photography, gentle backlight and bloom, creamy bokeh, tender framing, 4K",
		},
		CameraPreferences: []string{"static-close-up", "over-the-shoulder", "crane-down-settle", "slow-push-in"},
		AvgShotDuration:   6,
		Pacing:            PacingSlow,
	},
	{
		ID: "documentary",
		StyleBible: schema.StyleBible{
			FilmStock:      "digital verite",
			ColorPalette:   "unstyled natural color",
			Textures:       []string{"available light", "found locations"},
			NegativePrompt: "stylized grading, theatrical lighting, staged tableaux",
			StyleString:    "observational documentary realism, available light, unobtrusive handheld framing, 4K",
		},
		CameraPreferences: []string{"handheld-follow", "static-medium", "tracking-lateral"},
		AvgShotDuration:   5,
		Pacing:            PacingMedium,
	},
	{
		ID: "comedy",
		StyleBible: schema.StyleBible{
			FilmStock:      "digital, bright and clean",
			ColorPalette:   "saturated primaries, even exposure",
			Textures:       []string{"flat daylight", "tidy symmetry"},
			NegativePrompt: "moody shadows, desaturation, dread",
			StyleString:    "bright ensemble comedy, even high-key lighting, saturated color, precise symmetrical framing, 4K",
		},
		CameraPreferences: []string{"static-wide", "static-medium", "whip-pan", "crash-zoom"},
		AvgShotDuration:   4,
		Pacing:            PacingFast,
	},
}

var genreIndex = make(map[string]GenrePreset, len(genres))

func init() {
	for _, g := range genres {
		genreIndex[g.ID] = g
	}
}

// Genres returns the full preset table in catalog order.
func Genres() []GenrePreset {
	return genres
}

// GenreFor resolves a genre label to a preset. Matching is case-insensitive
// and tolerates compound labels ("psychological horror" resolves to horror).
func GenreFor(label string) (GenrePreset, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return GenrePreset{}, false
	}
	if g, ok := genreIndex[key]; ok {
		return g, true
	}
	for _, g := range genres {
		if strings.Contains(key, g.ID) {
			return g, true
		}
	}
	// common aliases
	switch {
	case strings.Contains(key, "sci-fi"), strings.Contains(key, "science fiction"):
		return genreIndex["scifi"], true
	case strings.Contains(key, "thriller"):
		return genreIndex["noir"], true
	case strings.Contains(key, "romantic"):
		return genreIndex["romance"], true
	}
	return GenrePreset{}, false
}
