package fuzzy

import (
	"reflect"
	"testing"

	"github.com/apeview/apeview/internal/keymap"
)

func TestMatchEmptyQuery(t *testing.T) {
	score, positions, ok := Match("", "M-x")
	if !ok {
		t.Fatal("empty query must match")
	}
	if score != 0 {
		t.Errorf("empty query score = %d, want 0", score)
	}
	if positions != nil {
		t.Errorf("empty query positions = %v, want nil", positions)
	}
}

func TestMatchSubsequence(t *testing.T) {
	tests := []struct {
		query, candidate string
		wantOK           bool
		wantPositions    []int
	}{
		{"mx", "M-x", true, []int{0, 2}},
		{"mx", "M-y", false, nil},
		{"m-x", "M-x", true, []int{0, 1, 2}},
		{"kill", "Kill window", true, []int{0, 1, 2, 3}},
		{"kw", "Kill window", true, []int{0, 5}},
		{"xyz", "Kill window", false, nil},
		{"longer than", "short", false, nil},
		{"q", "", false, nil},
	}

	for _, tt := range tests {
		_, positions, ok := Match(tt.query, tt.candidate)
		if ok != tt.wantOK {
			t.Errorf("Match(%q, %q) ok = %v, want %v", tt.query, tt.candidate, ok, tt.wantOK)
			continue
		}
		if ok && !reflect.DeepEqual(positions, tt.wantPositions) {
			t.Errorf("Match(%q, %q) positions = %v, want %v", tt.query, tt.candidate, positions, tt.wantPositions)
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	upper, _, ok1 := Match("MX", "m-x")
	lower, _, ok2 := Match("mx", "M-X")
	if !ok1 || !ok2 {
		t.Fatal("case must not affect matching")
	}
	if upper != lower {
		t.Errorf("case changed the score: %d vs %d", upper, lower)
	}
}

// An exact full-field match must score at or above any scattered
// subsequence match of the same query.
func TestMatchExactBeatsScattered(t *testing.T) {
	exact, _, ok := Match("m-x", "M-x")
	if !ok {
		t.Fatal("exact match failed")
	}
	scattered, _, ok := Match("m-x", "mop-xylophone")
	if !ok {
		t.Fatal("scattered match failed")
	}
	if exact <= scattered {
		t.Errorf("exact (%d) must beat scattered (%d)", exact, scattered)
	}
}

// A match starting at a field boundary outranks the same rune buried
// inside a word.
func TestMatchBoundaryBonus(t *testing.T) {
	atBoundary, _, _ := Match("x", "M-x")
	buried, _, _ := Match("x", "axe")
	if atBoundary <= buried {
		t.Errorf("boundary match (%d) must beat buried match (%d)", atBoundary, buried)
	}
}

// Contiguous runs outrank scattered matches of equal length.
func TestMatchConsecutiveBonus(t *testing.T) {
	contiguous, _, _ := Match("win", "window")
	scattered, _, _ := Match("win", "wxiyn")
	if contiguous <= scattered {
		t.Errorf("contiguous (%d) must beat scattered (%d)", contiguous, scattered)
	}
}

// For the same match shape, the shorter field wins.
func TestMatchShorterFieldWins(t *testing.T) {
	tight, _, _ := Match("kill", "kill")
	loose, _, _ := Match("kill", "kill the current window")
	if tight <= loose {
		t.Errorf("tight (%d) must beat loose (%d)", tight, loose)
	}
}

func testBinds() []keymap.Keybind {
	return []keymap.Keybind{
		{Keys: "M-x", Description: "Kill window", Section: "Basics"},
		{Keys: "M-y", Description: "Toggle bar", Section: "Basics"},
		{Keys: "M-t", Description: "Open terminal", Section: "Apps"},
		{Keys: "M-<Space>", Description: "Next layout", Section: "Layout"},
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	binds := testBinds()
	results := Search("", binds)

	if len(results) != len(binds) {
		t.Fatalf("expected %d results, got %d", len(binds), len(results))
	}
	for i, r := range results {
		if r.Keys != binds[i].Keys {
			t.Errorf("order not preserved at %d: %q", i, r.Keys)
		}
		if r.Score != 0 {
			t.Errorf("expected uniform zero score, got %d", r.Score)
		}
	}
}

func TestSearchFiltersByKeys(t *testing.T) {
	results := Search("mx", testBinds())
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Keys != "M-x" {
		t.Errorf("expected M-x, got %q", results[0].Keys)
	}
	if !reflect.DeepEqual(results[0].KeyPositions, []int{0, 2}) {
		t.Errorf("key positions = %v", results[0].KeyPositions)
	}
}

func TestSearchMatchesDescription(t *testing.T) {
	results := Search("terminal", testBinds())
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Keys != "M-t" {
		t.Errorf("expected M-t, got %q", r.Keys)
	}
	if r.KeyPositions != nil {
		t.Errorf("keys did not match, positions should be nil: %v", r.KeyPositions)
	}
	if len(r.DescPositions) == 0 {
		t.Error("expected description positions for highlighting")
	}
}

func TestSearchScoreIsMaxOfFields(t *testing.T) {
	binds := []keymap.Keybind{{Keys: "M-t", Description: "mute track"}}
	results := Search("mt", binds)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	ks, _, _ := Match("mt", "M-t")
	ds, _, _ := Match("mt", "mute track")
	want := ks
	if ds > want {
		want = ds
	}
	if results[0].Score != want {
		t.Errorf("score = %d, want max of fields %d", results[0].Score, want)
	}
	// Both fields matched, so both position sets are kept.
	if results[0].KeyPositions == nil || results[0].DescPositions == nil {
		t.Error("expected positions for both matched fields")
	}
}

func TestSearchOrdering(t *testing.T) {
	binds := []keymap.Keybind{
		{Keys: "M-a", Description: "something else"},
		{Keys: "C-k", Description: "kill buffer please"},
		{Keys: "M-x", Description: "kill"},
	}
	results := Search("kill", binds)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// The exact-description entry ranks above the looser one.
	if results[0].Keys != "M-x" || results[1].Keys != "C-k" {
		t.Errorf("unexpected order: %q then %q", results[0].Keys, results[1].Keys)
	}
}

func TestSearchStableOnTies(t *testing.T) {
	binds := []keymap.Keybind{
		{Keys: "M-1", Description: "same thing"},
		{Keys: "M-2", Description: "same thing"},
	}
	results := Search("same", binds)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Keys != "M-1" || results[1].Keys != "M-2" {
		t.Errorf("tie order not stable: %q then %q", results[0].Keys, results[1].Keys)
	}
}

func TestSearchNoMatches(t *testing.T) {
	results := Search("zzzzzz", testBinds())
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchEmptyList(t *testing.T) {
	results := Search("anything", nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	results = Search("", nil)
	if len(results) != 0 {
		t.Errorf("expected no results for empty query on empty list, got %d", len(results))
	}
}
