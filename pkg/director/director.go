// Package director turns a script analysis into an ordered, camera-directed
// shot list. Planning never fails: missing genre, style, or roster inputs
// degrade to defaults, and every beat yields exactly one shot.
package director

import (
	"math/rand"
	"strings"
	"time"

	"slate/pkg/catalog"
	"slate/pkg/schema"
	"slate/pkg/utils"
)

const (
	// dialogueBiasChance is how often a dialogue beat draws from the
	// dialogue-appropriate pool instead of its tone pool.
	dialogueBiasChance = 0.8

	// repeatPenalty scales down the previous shot's movement in the next
	// draw. Repeats stay possible; sustained runs do not.
	repeatPenalty = 0.15

	// genreBoost scales up movements a genre preset prefers.
	genreBoost = 2.0
	// genreSeedWeight is the weight given to preferred movements absent
	// from the active pool.
	genreSeedWeight = 0.5
)

type Planner struct {
	rng *rand.Rand
}

// New returns a production planner with a time-seeded source.
func New() *Planner {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a planner whose draws are reproducible for the seed.
func NewSeeded(seed int64) *Planner {
	return &Planner{rng: rand.New(rand.NewSource(seed))}
}

// Plan produces one shot per beat in scene traversal order. Style and genre
// may be nil and the roster may be empty.
func (p *Planner) Plan(analysis schema.ScriptAnalysis, characters []schema.CharacterRef, style *schema.StyleBible, genre *catalog.GenrePreset) []schema.Shot {
	var shots []schema.Shot
	order := 0
	prevMovement := ""

	for sceneIndex, scene := range analysis.Scenes {
		for beatIndex, beat := range scene.Beats {
			movement := p.pickMovement(beat, order == 0 && beatIndex == 0, prevMovement, genre)
			prevMovement = movement.ID

			shot := schema.Shot{
				SceneIndex:      sceneIndex,
				Order:           order,
				ShotType:        shotType(movement, beat),
				CameraMovement:  movement.ID,
				CameraPrompt:    movement.PromptSyntax,
				Subject:         p.subject(beat, scene, characters),
				Action:          strings.TrimSpace(beat.Description),
				Environment:     environment(scene),
				Lighting:        lighting(scene.TimeOfDay),
				DurationSeconds: p.duration(movement, beat, genre),
				Dialogue:        bindDialogue(beat, characters),
			}
			shots = append(shots, shot)
			order++
		}
	}
	return shots
}

// pickMovement selects a camera movement for one beat. The very first beat of
// the plan always draws from the establishing openers regardless of tone.
func (p *Planner) pickMovement(beat schema.ScriptBeat, opening bool, prev string, genre *catalog.GenrePreset) catalog.Movement {
	var pool []candidate
	switch {
	case opening:
		pool = uniform(catalog.EstablishingOpeners())
	case len(beat.Dialogue) > 0 && p.rng.Float64() < dialogueBiasChance:
		pool = uniform(catalog.DialogueMovements())
	default:
		tone := strings.ToLower(strings.TrimSpace(beat.EmotionalTone))
		var ok bool
		pool, ok = toneCandidates[tone]
		if !ok {
			pool = defaultCandidates
		}
		pool = applyGenre(pool, genre)
	}

	id := p.draw(pool, prev)
	movement, ok := catalog.Lookup(id)
	if !ok {
		// Pools are validated at init; this is unreachable with intact tables.
		movement, _ = catalog.Lookup("static-medium")
	}
	return movement
}

// applyGenre boosts movements the preset prefers and seeds missing ones at
// low weight, without discarding the tone-driven pool.
func applyGenre(pool []candidate, genre *catalog.GenrePreset) []candidate {
	if genre == nil || len(genre.CameraPreferences) == 0 {
		return pool
	}
	preferred := make(map[string]bool, len(genre.CameraPreferences))
	for _, id := range genre.CameraPreferences {
		preferred[id] = true
	}
	out := make([]candidate, 0, len(pool)+len(genre.CameraPreferences))
	seen := make(map[string]bool, len(pool))
	for _, c := range pool {
		if preferred[c.id] {
			c.weight *= genreBoost
		}
		seen[c.id] = true
		out = append(out, c)
	}
	for _, id := range genre.CameraPreferences {
		if !seen[id] {
			out = append(out, candidate{id: id, weight: genreSeedWeight})
		}
	}
	return out
}

// draw performs the weighted selection with the anti-repetition penalty.
func (p *Planner) draw(pool []candidate, prev string) string {
	total := 0.0
	weights := make([]float64, len(pool))
	for i, c := range pool {
		w := c.weight
		if c.id == prev {
			w *= repeatPenalty
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return pool[0].id
	}
	r := p.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return pool[i].id
		}
	}
	return pool[len(pool)-1].id
}

// duration computes the shot length. Movements with a catalog minimum of 10s
// or more (orbits) escape the general 10s ceiling; everything stays within
// the absolute 3..12s shot bounds because the heuristic never exceeds 12.
func (p *Planner) duration(movement catalog.Movement, beat schema.ScriptBeat, genre *catalog.GenrePreset) int {
	var heuristic int
	if movement.MinDuration >= 10 {
		heuristic = movement.MinDuration + p.rng.Intn(3)
	} else {
		base := 6
		if genre != nil && genre.AvgShotDuration > 0 {
			base = genre.AvgShotDuration
		}
		if len(beat.Dialogue) > 0 {
			base += 2
		}
		heuristic = base + p.rng.Intn(3) - 1
	}

	floor := movement.MinDuration
	if floor < 3 {
		floor = 3
	}
	ceiling := 10
	if movement.MinDuration >= 10 {
		ceiling = 15
	}
	if heuristic < floor {
		return floor
	}
	if heuristic > ceiling {
		return ceiling
	}
	return heuristic
}

func shotType(movement catalog.Movement, beat schema.ScriptBeat) string {
	if len(beat.Dialogue) > 0 {
		return "medium close-up"
	}
	switch movement.Category {
	case catalog.CategoryEstablishing:
		return "wide shot"
	case catalog.CategoryCharacter:
		return "medium shot"
	case catalog.CategoryAction:
		return "full shot"
	default:
		return "wide shot"
	}
}

// subject scans the beat for roster mentions and concatenates the matched
// characters' visual descriptions. With no matches it falls back to the
// scene's bare location string.
func (p *Planner) subject(beat schema.ScriptBeat, scene schema.ScriptScene, characters []schema.CharacterRef) string {
	matched := mentionedCharacters(beat.Description, characters)
	if len(matched) == 0 && len(beat.Dialogue) > 0 {
		if speaker := resolveCharacter(beat.Dialogue[0].Character, characters); speaker != nil {
			matched = []schema.CharacterRef{*speaker}
		}
	}
	if len(matched) == 0 {
		return scene.Location
	}
	parts := make([]string, 0, len(matched))
	for _, c := range matched {
		if c.VisualDescription != "" {
			parts = append(parts, c.Name+", "+c.VisualDescription)
		} else {
			parts = append(parts, c.Name)
		}
	}
	return strings.Join(parts, " and ")
}

// mentionedCharacters returns roster entries whose name appears in the text,
// in roster order. Matching is whole-word on the full name or on a name part
// of at least three characters.
func mentionedCharacters(text string, characters []schema.CharacterRef) []schema.CharacterRef {
	var out []schema.CharacterRef
	for _, c := range characters {
		if c.Name == "" {
			continue
		}
		if utils.MentionsName(text, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// resolveCharacter maps a speaker name from the analysis to a roster entry by
// exact then partial match. Returns nil when unresolved.
func resolveCharacter(name string, characters []schema.CharacterRef) *schema.CharacterRef {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i, c := range characters {
		if strings.EqualFold(c.Name, name) {
			return &characters[i]
		}
	}
	lower := strings.ToLower(name)
	for i, c := range characters {
		cl := strings.ToLower(c.Name)
		if strings.Contains(cl, lower) || strings.Contains(lower, cl) {
			return &characters[i]
		}
	}
	for i, c := range characters {
		if utils.Similarity(c.Name, name) >= 0.8 {
			return &characters[i]
		}
	}
	return nil
}

// bindDialogue populates the shot's dialogue from the beat's first line.
func bindDialogue(beat schema.ScriptBeat, characters []schema.CharacterRef) *schema.ShotDialogue {
	if len(beat.Dialogue) == 0 {
		return nil
	}
	line := beat.Dialogue[0]
	bound := &schema.ShotDialogue{
		CharacterName: strings.TrimSpace(line.Character),
		Line:          line.Line,
		Emotion:       line.Emotion,
	}
	if c := resolveCharacter(line.Character, characters); c != nil {
		bound.CharacterID = c.ID
		bound.CharacterName = c.Name
	}
	return bound
}

func environment(scene schema.ScriptScene) string {
	loc := strings.TrimSpace(scene.Location)
	tod := strings.TrimSpace(scene.TimeOfDay)
	switch {
	case loc == "" && tod == "":
		return ""
	case tod == "":
		return loc
	case loc == "":
		return tod
	}
	return loc + " at " + tod
}

// lightingByTime is ordered so compound labels ("late midnight rain")
// resolve to the most specific entry first.
var lightingByTime = []struct{ key, light string }{
	{"golden hour", "golden hour backlight, warm glow"},
	{"midnight", "moonlit darkness, hard silver edges"},
	{"afternoon", "warm slanting afternoon light"},
	{"morning", "clear directional morning light"},
	{"evening", "warm practical lights against deepening blue"},
	{"night", "low-key night lighting, pools of practical light"},
	{"dawn", "soft pink dawn light, long shadows"},
	{"dusk", "fading violet dusk light"},
	{"day", "bright natural daylight"},
}

func lighting(timeOfDay string) string {
	key := strings.ToLower(strings.TrimSpace(timeOfDay))
	if key == "" {
		return "natural cinematic lighting"
	}
	for _, e := range lightingByTime {
		if strings.Contains(key, e.key) {
			return e.light
		}
	}
	return "natural cinematic lighting"
}
