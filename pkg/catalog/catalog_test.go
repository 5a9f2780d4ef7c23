package catalog

import "testing"

func TestValidateTables(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("static tables failed validation: %v", err)
	}
}

func TestEstablishingOpenersAreEstablishing(t *testing.T) {
	for _, id := range EstablishingOpeners() {
		m, ok := Lookup(id)
		if !ok {
			t.Fatalf("opener %q missing from table", id)
		}
		if m.Category != CategoryEstablishing {
			t.Errorf("opener %q has category %q, want establishing", id, m.Category)
		}
	}
}

func TestDialogueMovementsResolve(t *testing.T) {
	for _, id := range DialogueMovements() {
		if _, ok := Lookup(id); !ok {
			t.Fatalf("dialogue movement %q missing from table", id)
		}
	}
}

func TestMovementMinDurations(t *testing.T) {
	for _, m := range Movements() {
		if m.MinDuration < 1 {
			t.Errorf("movement %q min duration %d below 1", m.ID, m.MinDuration)
		}
	}
	orbit, ok := Lookup("orbit-360")
	if !ok {
		t.Fatal("orbit-360 missing from table")
	}
	if orbit.MinDuration < 10 {
		t.Errorf("orbit min duration = %d, want >= 10", orbit.MinDuration)
	}
}

func TestIsOrbit(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"camera orbits 360 degrees around the subject", true},
		{"full 360 sweep", true},
		{"slow push in toward the subject", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsOrbit(tc.text); got != tc.want {
			t.Errorf("IsOrbit(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestGenreForMatching(t *testing.T) {
	cases := []struct {
		label string
		want  string
		ok    bool
	}{
		{"noir", "noir", true},
		{"Film Noir", "noir", true},
		{"psychological horror", "horror", true},
		{"science fiction epic", "scifi", true},
		{"romantic comedy", "comedy", true},
		{"romantic", "romance", true},
		{"Thriller", "noir", true},
		{"", "", false},
		{"western", "", false},
	}
	for _, tc := range cases {
		g, ok := GenreFor(tc.label)
		if ok != tc.ok {
			t.Errorf("GenreFor(%q) ok = %v, want %v", tc.label, ok, tc.ok)
			continue
		}
		if ok && g.ID != tc.want {
			t.Errorf("GenreFor(%q) = %q, want %q", tc.label, g.ID, tc.want)
		}
	}
}

func TestGenrePresetBounds(t *testing.T) {
	for _, g := range Genres() {
		if g.AvgShotDuration < 3 || g.AvgShotDuration > 10 {
			t.Errorf("genre %q avg shot duration %d outside [3,10]", g.ID, g.AvgShotDuration)
		}
		if g.StyleBible.StyleString == "" {
			t.Errorf("genre %q has empty style string", g.ID)
		}
		for _, id := range g.CameraPreferences {
			if _, ok := Lookup(id); !ok {
				t.Errorf("genre %q prefers unknown movement %q", g.ID, id)
			}
		}
	}
}
