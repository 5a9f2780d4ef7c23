package prompt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"slate/pkg/schema"
	"slate/pkg/utils"
)

// AnchorToken derives the visual-anchor tag the provider uses to reuse a
// character's established appearance.
func AnchorToken(name string) string {
	return "@element_" + utils.Slug(name)
}

// SubstituteAnchors replaces mentions of reference-backed characters in the
// subject text with their anchor tokens. Per character the match strategies
// run strictest first and stop at the first hit:
//
//  1. the exact "Name, full visual description" phrase
//  2. a "Name, <anything> and" boundary phrase
//  3. the bare name as a whole word
//
// Any reference-backed character still untagged afterwards, but mentioned by
// a partial name, gets an explicit grounding clause appended so every
// anchored character is tagged somewhere in the subject.
func SubstituteAnchors(subject string, characters []schema.CharacterRef) string {
	result := subject
	for _, c := range characters {
		if !c.HasReferenceImages() || strings.TrimSpace(c.Name) == "" {
			continue
		}
		result = substituteCharacter(result, c, AnchorToken(c.Name))
	}
	for _, c := range characters {
		if !c.HasReferenceImages() || strings.TrimSpace(c.Name) == "" {
			continue
		}
		token := AnchorToken(c.Name)
		if strings.Contains(result, token) {
			continue
		}
		if partialNameMentioned(result, c.Name) {
			result = strings.TrimRight(result, ". ") + ". " + token + " is present in the scene"
		}
	}
	return result
}

func substituteCharacter(text string, c schema.CharacterRef, token string) string {
	// Tier 1: name followed by its full visual description.
	if desc := strings.TrimSpace(c.VisualDescription); desc != "" {
		phrase := c.Name + ", " + desc
		if strings.Contains(text, phrase) {
			return strings.ReplaceAll(text, phrase, token)
		}
	}

	// Tier 2: name with an edited description, bounded by " and ". The match
	// must start on a word boundary so "DeMarcus, ..." never triggers for
	// a roster name "Marcus".
	if start := indexAtWordStart(text, c.Name+", "); start >= 0 {
		rest := text[start:]
		if end := strings.Index(rest, " and "); end > 0 {
			return text[:start] + token + rest[end:]
		}
	}

	// Tier 3: bare whole-word name.
	return replaceWholeName(text, c.Name, token)
}

// indexAtWordStart returns the index of the first occurrence of sub that is
// not preceded by a word rune, or -1.
func indexAtWordStart(text, sub string) int {
	for from := 0; from <= len(text)-len(sub); {
		i := strings.Index(text[from:], sub)
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 {
			return 0
		}
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		if !isWordRune(r) {
			return i
		}
		from = i + 1
	}
	return -1
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' || r == '\'' || r == '@'
}

// replaceWholeName swaps whole-word occurrences of a (possibly multi-word)
// name for the token, scanning tokens instead of cascading regexes so word
// boundaries cannot mis-fire inside longer words.
func replaceWholeName(text, name, token string) string {
	nameWords := strings.Fields(name)
	if len(nameWords) == 0 {
		return text
	}
	tokens := utils.TokenizeWords(text)
	var b strings.Builder
	for i := 0; i < len(tokens); {
		if n, ok := matchNameAt(tokens, i, nameWords); ok {
			b.WriteString(token)
			i += n
			continue
		}
		b.WriteString(tokens[i])
		i++
	}
	return b.String()
}

// matchNameAt reports whether the name's words appear at tokens[i], allowing
// single whitespace tokens between them, and returns the matched span length.
func matchNameAt(tokens []string, i int, nameWords []string) (int, bool) {
	j := i
	for w := 0; w < len(nameWords); w++ {
		if j >= len(tokens) || !strings.EqualFold(tokens[j], nameWords[w]) {
			return 0, false
		}
		j++
		if w < len(nameWords)-1 {
			if j >= len(tokens) || strings.TrimSpace(tokens[j]) != "" {
				return 0, false
			}
			j++
		}
	}
	return j - i, true
}

// partialNameMentioned matches a first or last name of at least three
// characters as a whole word.
func partialNameMentioned(text, name string) bool {
	for _, part := range strings.Fields(name) {
		if utf8.RuneCountInString(part) >= 3 && utils.ContainsWord(text, part) {
			return true
		}
	}
	return false
}
