// Package prompt compiles planned shots into the exact text handed to the
// video-generation provider, plus negative prompts and a validation report.
// Everything here is a pure transformation; compiled prompts are derived
// views, never stored truth.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"slate/pkg/schema"
	"slate/pkg/utils"
)

// Assemble flattens one shot into a single sentence-joined prompt. Block
// order: environment, subject, action, camera, dialogue, lighting, style
// string. Empty fields drop their block entirely. Voices may be nil.
func Assemble(shot schema.Shot, characters []schema.CharacterRef, style *schema.StyleBible, voices map[string]schema.VoiceProfile) string {
	var blocks []string

	if env := environmentBlock(shot); env != "" {
		blocks = append(blocks, env)
	}
	if subject := strings.TrimSpace(shot.Subject); subject != "" {
		blocks = append(blocks, SubstituteAnchors(subject, characters))
	}
	if action := strings.TrimSpace(shot.Action); action != "" {
		blocks = append(blocks, enrichAction(action, shot.DurationSeconds))
	}
	if camera := cameraBlock(shot); camera != "" {
		blocks = append(blocks, camera)
	}
	if shot.Dialogue != nil && shot.WantsDialogue() {
		if line := dialogueBlock(*shot.Dialogue, voices); line != "" {
			blocks = append(blocks, line)
		}
	}
	if lighting := strings.TrimSpace(shot.Lighting); lighting != "" {
		blocks = append(blocks, lighting)
	}
	if style != nil && strings.TrimSpace(style.StyleString) != "" {
		blocks = append(blocks, strings.TrimSpace(style.StyleString))
	}

	return tidy(strings.Join(blocks, ". "))
}

func environmentBlock(shot schema.Shot) string {
	env := strings.TrimSpace(shot.Environment)
	if env == "" {
		return ""
	}
	if shot.SceneElementID != "" {
		return "@element_" + shot.SceneElementID + " " + env
	}
	return env
}

// cameraBlock appends the shot type to the movement text unless the movement
// text already names it.
func cameraBlock(shot schema.Shot) string {
	camera := strings.TrimSpace(shot.CameraPrompt)
	shotType := strings.TrimSpace(shot.ShotType)
	if camera == "" {
		return shotType
	}
	if shotType == "" || strings.Contains(strings.ToLower(camera), strings.ToLower(shotType)) {
		return camera
	}
	return camera + ", " + shotType
}

// dialogueBlock renders [Name, <emotion, tone, accent accent, speed pace> voice]: "line".
func dialogueBlock(d schema.ShotDialogue, voices map[string]schema.VoiceProfile) string {
	line := strings.TrimSpace(d.Line)
	if line == "" {
		return ""
	}
	name := d.CharacterName
	if name == "" {
		name = "Character"
	}

	descriptor := []string{}
	if emotion := strings.TrimSpace(d.Emotion); emotion != "" {
		descriptor = append(descriptor, emotion)
	} else {
		descriptor = append(descriptor, "neutral")
	}
	if vp, ok := lookupVoice(d, voices); ok {
		if vp.Tone != "" {
			descriptor = append(descriptor, vp.Tone)
		}
		if vp.Accent != "" {
			descriptor = append(descriptor, vp.Accent+" accent")
		}
		if vp.Pace != "" {
			descriptor = append(descriptor, "speed "+vp.Pace)
		}
	}
	return fmt.Sprintf("[%s, <%s> voice]: %q", name, strings.Join(descriptor, ", "), line)
}

func lookupVoice(d schema.ShotDialogue, voices map[string]schema.VoiceProfile) (schema.VoiceProfile, bool) {
	if voices == nil {
		return schema.VoiceProfile{}, false
	}
	if vp, ok := voices[d.CharacterID]; ok && d.CharacterID != "" {
		return vp, true
	}
	vp, ok := voices[d.CharacterName]
	return vp, ok
}

var (
	multiDotRX   = regexp.MustCompile(`\.{2,}`)
	dotSpaceRX   = regexp.MustCompile(`\. (\. )+`)
	multiSpaceRX = regexp.MustCompile(` {2,}`)
)

// tidy collapses doubled sentence terminators and repeated whitespace left
// over from blocks that already ended with a period.
func tidy(s string) string {
	s = multiDotRX.ReplaceAllString(s, ".")
	s = dotSpaceRX.ReplaceAllString(s, ". ")
	s = multiSpaceRX.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// universalNegatives are the technical artifact exclusions sent with every
// generation regardless of style bible.
var universalNegatives = []string{
	"blurry",
	"distorted faces",
	"deformed hands",
	"extra limbs",
	"warped anatomy",
	"watermark",
	"text overlay",
	"low quality",
	"compression artifacts",
	"flickering",
}

// FormatNegativePrompt joins the style bible's exclusions, the universal
// technical list, and any caller-supplied extras into one comma-separated
// negative prompt.
func FormatNegativePrompt(style *schema.StyleBible, extra ...string) string {
	var parts []string
	if style != nil && strings.TrimSpace(style.NegativePrompt) != "" {
		parts = append(parts, strings.TrimSpace(style.NegativePrompt))
	}
	parts = append(parts, universalNegatives...)
	for _, e := range extra {
		if e = strings.TrimSpace(e); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, ", ")
}

const multiShotLimit = 6

// AssembleMultiShot formats up to the first six shots as a numbered batch
// prompt; shots beyond the sixth are dropped. A trailing style line is added
// when a style bible is present.
func AssembleMultiShot(shots []schema.Shot, characters []schema.CharacterRef, style *schema.StyleBible) string {
	if len(shots) > multiShotLimit {
		shots = shots[:multiShotLimit]
	}
	var b strings.Builder
	for i, shot := range shots {
		subject := SubstituteAnchors(strings.TrimSpace(shot.Subject), characters)
		fmt.Fprintf(&b, "Shot %d (%ds): %s, %s, %s.\n",
			i+1, shot.DurationSeconds, strings.TrimSpace(shot.CameraPrompt), subject, strings.TrimSpace(shot.Action))
		if shot.Dialogue != nil && shot.WantsDialogue() && shot.Dialogue.Line != "" {
			name := shot.Dialogue.CharacterName
			if name == "" {
				name = "Character"
			}
			fmt.Fprintf(&b, "  [%s]: %q\n", name, shot.Dialogue.Line)
		}
	}
	if style != nil && strings.TrimSpace(style.StyleString) != "" {
		fmt.Fprintf(&b, "Style: %s", strings.TrimSpace(style.StyleString))
	}
	return strings.TrimRight(b.String(), "\n")
}

// temporalMarkers indicate an action already describes progression over time.
var temporalMarkers = []string{
	"then",
	"while",
	"gradually",
	"begins to",
	"starts to",
	"slowly",
	"before",
	"after",
	"finally",
	"eventually",
	"continues",
	"as the",
}

// enrichAction rewrites short, static action text into an explicit temporal
// structure for longer shots so the generator has motion to work with.
// Actions that already progress, or that are long enough, pass through.
func enrichAction(action string, durationSeconds int) string {
	if durationSeconds <= 5 {
		return action
	}
	// whole-word matching so "then" does not fire inside "authentic"
	for _, marker := range temporalMarkers {
		if utils.ContainsPhrase(action, marker) {
			return action
		}
	}
	if len(strings.Fields(action)) >= 12 {
		return action
	}

	base := strings.TrimRight(strings.TrimSpace(action), ".")
	if durationSeconds >= 8 {
		return fmt.Sprintf("First, %s. Then, the movement carries forward as the moment builds. Finally, the action settles and holds", base)
	}
	return fmt.Sprintf("First, %s. Then, the motion carries through to its close", base)
}
