package director

import (
	"fmt"

	"slate/pkg/catalog"
)

// candidate is one weighted entry in a movement draw.
type candidate struct {
	id     string
	weight float64
}

// toneCandidates maps a beat's emotional tone to its weighted movement pool.
// The tables are data, not code, so the draw itself stays independently
// testable. Unrecognized tones use defaultCandidates.
var toneCandidates = map[string][]candidate{
	"dramatic": {
		{"slow-push-in", 3},
		{"static-close-up", 2},
		{"low-angle-rise", 2},
		{"crane-down-settle", 1},
	},
	"tense": {
		{"slow-push-in", 3},
		{"rack-focus-drift", 2},
		{"handheld-follow", 2},
		{"static-close-up", 1},
	},
	"suspenseful": {
		{"slow-push-in", 3},
		{"rack-focus-drift", 3},
		{"static-wide", 1},
		{"crane-down-settle", 1},
	},
	"romantic": {
		{"static-close-up", 3},
		{"slow-push-in", 2},
		{"crane-down-settle", 2},
		{"orbit-360", 1},
	},
	"hopeful": {
		{"crane-up-reveal", 2},
		{"slow-dolly-forward", 2},
		{"static-medium", 2},
		{"low-angle-rise", 1},
	},
	"joyful": {
		{"tracking-lateral", 2},
		{"whip-pan", 2},
		{"static-wide", 2},
		{"crane-up-reveal", 1},
	},
	"melancholic": {
		{"static-wide", 3},
		{"pull-back-reveal", 2},
		{"crane-down-settle", 2},
		{"rack-focus-drift", 1},
	},
	"somber": {
		{"static-wide", 3},
		{"crane-down-settle", 2},
		{"slow-push-in", 1},
	},
	"exciting": {
		{"handheld-follow", 3},
		{"tracking-lateral", 3},
		{"crash-zoom", 2},
		{"whip-pan", 1},
	},
	"action": {
		{"handheld-follow", 3},
		{"tracking-lateral", 3},
		{"low-angle-rise", 2},
		{"crash-zoom", 2},
	},
	"mysterious": {
		{"rack-focus-drift", 3},
		{"slow-dolly-forward", 2},
		{"pull-back-reveal", 2},
		{"static-wide", 1},
	},
	"fearful": {
		{"handheld-follow", 3},
		{"slow-push-in", 2},
		{"rack-focus-drift", 2},
	},
	"angry": {
		{"crash-zoom", 2},
		{"low-angle-rise", 2},
		{"handheld-follow", 2},
		{"static-close-up", 1},
	},
	"triumphant": {
		{"orbit-360", 3},
		{"low-angle-rise", 3},
		{"crane-up-reveal", 2},
	},
	"peaceful": {
		{"static-wide", 3},
		{"aerial-drone", 2},
		{"crane-down-settle", 1},
	},
}

var defaultCandidates = []candidate{
	{"static-medium", 3},
	{"slow-push-in", 2},
	{"static-wide", 2},
	{"tracking-lateral", 1},
}

func init() {
	for tone, pool := range toneCandidates {
		for _, c := range pool {
			if _, ok := catalog.Lookup(c.id); !ok {
				panic(fmt.Sprintf("director: tone %q references unknown movement %q", tone, c.id))
			}
		}
	}
	for _, c := range defaultCandidates {
		if _, ok := catalog.Lookup(c.id); !ok {
			panic(fmt.Sprintf("director: default pool references unknown movement %q", c.id))
		}
	}
}

// uniform builds an equal-weight pool from movement ids.
func uniform(ids []string) []candidate {
	pool := make([]candidate, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, candidate{id: id, weight: 1})
	}
	return pool
}
