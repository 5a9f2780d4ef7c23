package catalog

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryEstablishing Category = "establishing"
	CategoryCharacter    Category = "character"
	CategoryAction       Category = "action"
	CategoryTransition   Category = "transition"
)

// Movement is one camera-movement entry. Entries are immutable reference data;
// PromptSyntax is the reusable text fragment copied onto planned shots.
type Movement struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	BestFor       string   `json:"best_for"`
	PromptSyntax  string   `json:"prompt_syntax"`
	MinDuration   int      `json:"min_duration"`
	ExamplePrompt string   `json:"example_prompt"`
}

var movements = []Movement{
	{
		ID:            "static-wide",
		Category:      CategoryEstablishing,
		Name:          "Static Wide",
		Description:   "Locked-off wide frame holding the full space",
		BestFor:       "opening a scene, letting geography read",
		PromptSyntax:  "static wide shot, camera locked off",
		MinDuration:   3,
		ExamplePrompt: "Static wide shot, camera locked off. A lone farmhouse under a storm front.",
	},
	{
		ID:            "crane-up-reveal",
		Category:      CategoryEstablishing,
		Name:          "Crane Up Reveal",
		Description:   "Camera rises vertically to reveal the wider world",
		BestFor:       "scale reveals, scene openings",
		PromptSyntax:  "camera cranes up slowly, revealing the scene",
		MinDuration:   5,
		ExamplePrompt: "Camera cranes up slowly, revealing the scene. The city grid ignites at dusk.",
	},
	{
		ID:            "aerial-drone",
		Category:      CategoryEstablishing,
		Name:          "Aerial Drone",
		Description:   "High aerial drift over the location",
		BestFor:       "geography, isolation, grandeur",
		PromptSyntax:  "aerial drone shot drifting slowly overhead",
		MinDuration:   5,
		ExamplePrompt: "Aerial drone shot drifting slowly overhead. A single car on an empty desert road.",
	},
	{
		ID:            "slow-dolly-forward",
		Category:      CategoryEstablishing,
		Name:          "Slow Dolly Forward",
		Description:   "Camera pushes forward at walking pace into the space",
		BestFor:       "drawing the viewer into a new location",
		PromptSyntax:  "slow dolly forward, camera gliding into the space",
		MinDuration:   4,
		ExamplePrompt: "Slow dolly forward, camera gliding into the space. Doors of the abandoned theater part.",
	},
	{
		ID:            "slow-push-in",
		Category:      CategoryCharacter,
		Name:          "Slow Push In",
		Description:   "Gradual move toward the subject's face",
		BestFor:       "dawning realization, mounting emotion",
		PromptSyntax:  "slow push in toward the subject",
		MinDuration:   4,
		ExamplePrompt: "Slow push in toward the subject. Her expression hardens as the truth lands.",
	},
	{
		ID:            "static-medium",
		Category:      CategoryCharacter,
		Name:          "Static Medium",
		Description:   "Locked medium framing from the waist up",
		BestFor:       "dialogue, measured performance moments",
		PromptSyntax:  "static medium shot",
		MinDuration:   3,
		ExamplePrompt: "Static medium shot. He sets the letter down without reading it.",
	},
	{
		ID:            "static-close-up",
		Category:      CategoryCharacter,
		Name:          "Static Close-Up",
		Description:   "Locked tight framing on the face",
		BestFor:       "intimate dialogue, emotional beats",
		PromptSyntax:  "static close-up",
		MinDuration:   3,
		ExamplePrompt: "Static close-up. A tear she refuses to let fall.",
	},
	{
		ID:            "over-the-shoulder",
		Category:      CategoryCharacter,
		Name:          "Over the Shoulder",
		Description:   "Frames one speaker past the other's shoulder",
		BestFor:       "two-person dialogue, confrontation",
		PromptSyntax:  "over-the-shoulder shot",
		MinDuration:   3,
		ExamplePrompt: "Over-the-shoulder shot. She studies him across the interrogation table.",
	},
	{
		ID:            "shot-reverse-shot",
		Category:      CategoryCharacter,
		Name:          "Shot Reverse Shot",
		Description:   "Alternating singles between two speakers",
		BestFor:       "extended dialogue exchanges",
		PromptSyntax:  "shot reverse shot between the speakers",
		MinDuration:   4,
		ExamplePrompt: "Shot reverse shot between the speakers. The negotiation turns personal.",
	},
	{
		ID:            "rack-focus-drift",
		Category:      CategoryCharacter,
		Name:          "Rack Focus Drift",
		Description:   "Focus shifts between foreground and background subjects",
		BestFor:       "shifting attention, hidden observers",
		PromptSyntax:  "rack focus drifting from foreground to background",
		MinDuration:   4,
		ExamplePrompt: "Rack focus drifting from foreground to background. Behind her glass, a figure watches.",
	},
	{
		ID:            "handheld-follow",
		Category:      CategoryAction,
		Name:          "Handheld Follow",
		Description:   "Unstabilized camera chasing the subject",
		BestFor:       "urgency, chaos, pursuit",
		PromptSyntax:  "handheld camera following the subject, urgent energy",
		MinDuration:   4,
		ExamplePrompt: "Handheld camera following the subject, urgent energy. He shoves through the crowded market.",
	},
	{
		ID:            "tracking-lateral",
		Category:      CategoryAction,
		Name:          "Lateral Tracking",
		Description:   "Camera tracks sideways parallel to motion",
		BestFor:       "travel, momentum, chases",
		PromptSyntax:  "lateral tracking shot moving with the subject",
		MinDuration:   4,
		ExamplePrompt: "Lateral tracking shot moving with the subject. The cyclist weaves between taxis.",
	},
	{
		ID:            "crash-zoom",
		Category:      CategoryAction,
		Name:          "Crash Zoom",
		Description:   "Sudden fast zoom onto the subject",
		BestFor:       "shock beats, punchlines",
		PromptSyntax:  "sudden crash zoom onto the subject",
		MinDuration:   3,
		ExamplePrompt: "Sudden crash zoom onto the subject. The detonator in his open palm.",
	},
	{
		ID:            "low-angle-rise",
		Category:      CategoryAction,
		Name:          "Low Angle Rise",
		Description:   "Camera tilts up from below as the subject looms",
		BestFor:       "power, menace, triumph",
		PromptSyntax:  "low angle shot, camera tilting up as the subject looms",
		MinDuration:   3,
		ExamplePrompt: "Low angle shot, camera tilting up as the subject looms. The champion raises the belt.",
	},
	{
		ID:            "orbit-360",
		Category:      CategoryAction,
		Name:          "360 Orbit",
		Description:   "Full circular orbit around the subject",
		BestFor:       "pivotal turning points, hero moments",
		PromptSyntax:  "camera orbits 360 degrees around the subject",
		MinDuration:   10,
		ExamplePrompt: "Camera orbits 360 degrees around the subject. The duelists circle each other at dawn.",
	},
	{
		ID:            "whip-pan",
		Category:      CategoryTransition,
		Name:          "Whip Pan",
		Description:   "Fast horizontal pan that blurs the frame",
		BestFor:       "energetic transitions between subjects",
		PromptSyntax:  "fast whip pan across the scene",
		MinDuration:   3,
		ExamplePrompt: "Fast whip pan across the scene. From the stage to the stunned front row.",
	},
	{
		ID:            "pull-back-reveal",
		Category:      CategoryTransition,
		Name:          "Pull Back Reveal",
		Description:   "Camera retreats to reveal new context around the subject",
		BestFor:       "recontextualizing, scene exits",
		PromptSyntax:  "camera pulls back slowly, revealing the surroundings",
		MinDuration:   5,
		ExamplePrompt: "Camera pulls back slowly, revealing the surroundings. The garden is a rooftop in a ruined city.",
	},
	{
		ID:            "crane-down-settle",
		Category:      CategoryTransition,
		Name:          "Crane Down Settle",
		Description:   "Camera descends from high and settles on the subject",
		BestFor:       "closing beats, arriving at intimacy from scale",
		PromptSyntax:  "camera cranes down and settles on the subject",
		MinDuration:   5,
		ExamplePrompt: "Camera cranes down and settles on the subject. Rain finds her alone at the bus stop.",
	},
}

// establishingOpeners is the fixed subset eligible for the first shot of the
// first scene, regardless of that beat's tone.
var establishingOpeners = []string{
	"static-wide",
	"crane-up-reveal",
	"aerial-drone",
	"slow-dolly-forward",
}

// dialogueMovements is the fixed subset preferred for beats carrying dialogue.
var dialogueMovements = []string{
	"over-the-shoulder",
	"shot-reverse-shot",
	"static-medium",
	"static-close-up",
}

var movementIndex = make(map[string]Movement, len(movements))

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
	for _, m := range movements {
		movementIndex[m.ID] = m
	}
}

// Movements returns the full camera-movement table in catalog order.
func Movements() []Movement {
	return movements
}

// Lookup returns the movement for the given id.
func Lookup(id string) (Movement, bool) {
	m, ok := movementIndex[id]
	return m, ok
}

// EstablishingOpeners returns the ids eligible for a forced opening shot.
func EstablishingOpeners() []string {
	return establishingOpeners
}

// DialogueMovements returns the ids preferred for dialogue beats.
func DialogueMovements() []string {
	return dialogueMovements
}

// IsOrbit reports whether the movement text describes an orbit/360 move. Works
// on prompt text rather than catalog ids so it also covers shots edited
// downstream.
func IsOrbit(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "orbit") || strings.Contains(lower, "360")
}

// Validate checks the static tables for internal consistency: unique movement
// ids, sane minimum durations, and subset/genre cross-references that resolve
// to real movements.
func Validate() error {
	ids := make(map[string]struct{}, len(movements))
	for _, m := range movements {
		if m.ID == "" {
			return fmt.Errorf("catalog: movement %q has empty id", m.Name)
		}
		if _, dup := ids[m.ID]; dup {
			return fmt.Errorf("catalog: duplicate movement id %q", m.ID)
		}
		ids[m.ID] = struct{}{}
		if m.MinDuration < 1 {
			return fmt.Errorf("catalog: movement %q min duration %d below 1", m.ID, m.MinDuration)
		}
		switch m.Category {
		case CategoryEstablishing, CategoryCharacter, CategoryAction, CategoryTransition:
		default:
			return fmt.Errorf("catalog: movement %q has unknown category %q", m.ID, m.Category)
		}
	}
	for _, id := range establishingOpeners {
		if _, ok := ids[id]; !ok {
			return fmt.Errorf("catalog: establishing opener %q not in movement table", id)
		}
	}
	for _, id := range dialogueMovements {
		if _, ok := ids[id]; !ok {
			return fmt.Errorf("catalog: dialogue movement %q not in movement table", id)
		}
	}
	for _, g := range genres {
		if g.AvgShotDuration < 3 || g.AvgShotDuration > 10 {
			return fmt.Errorf("catalog: genre %q avg shot duration %d outside [3,10]", g.ID, g.AvgShotDuration)
		}
		switch g.Pacing {
		case PacingSlow, PacingMedium, PacingFast:
		default:
			return fmt.Errorf("catalog: genre %q has unknown pacing %q", g.ID, g.Pacing)
		}
		for _, id := range g.CameraPreferences {
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("catalog: genre %q prefers unknown movement %q", g.ID, id)
			}
		}
	}
	return nil
}
