// Package fuzzy ranks keybinds against a typed query using
// case-insensitive subsequence matching. Scoring is a pure function of
// the query and one candidate string, so edge cases are testable
// without building a keymap.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/apeview/apeview/internal/keymap"
)

// Score weights. A match at a field boundary outranks a merely adjacent
// match, which outranks a scattered one; the candidate length is
// subtracted so tighter fields win ties.
const (
	bonusMatch       = 4
	bonusConsecutive = 8
	bonusBoundary    = 16
)

// isBoundary reports the separators after which a matched rune earns
// the boundary bonus, chosen for key-combination syntax ("M-x",
// "M-<Space>") and plain description text.
func isBoundary(r rune) bool {
	switch r {
	case '-', '_', ' ', '<', '+':
		return true
	}
	return false
}

// Match reports whether every rune of query appears in candidate in
// order, not necessarily contiguously. On a match it returns a score
// (higher is better) and the rune positions of the matched characters
// in candidate, for highlighting. The empty query matches everything
// with score zero and no positions.
func Match(query, candidate string) (score int, positions []int, ok bool) {
	if query == "" {
		return 0, nil, true
	}
	q := []rune(strings.ToLower(query))
	c := []rune(strings.ToLower(candidate))
	if len(q) > len(c) {
		return 0, nil, false
	}

	positions = make([]int, 0, len(q))
	qi := 0
	last := -2
	for ci := 0; ci < len(c) && qi < len(q); ci++ {
		if c[ci] != q[qi] {
			continue
		}
		score += bonusMatch
		if ci == last+1 {
			score += bonusConsecutive
		}
		if ci == 0 || isBoundary(c[ci-1]) {
			score += bonusBoundary
		}
		positions = append(positions, ci)
		last = ci
		qi++
	}
	if qi < len(q) {
		return 0, nil, false
	}
	return score - len(c), positions, true
}

// Result is one surviving keybind with its relevance score and the
// matched rune positions per field. Results are ephemeral; a new query
// produces a fresh list.
type Result struct {
	keymap.Keybind
	Score         int
	KeyPositions  []int
	DescPositions []int
}

// Search scans the flattened keybind list and returns the entries whose
// keys or description match the query, ordered by descending score and
// stable on ties so equal scores keep source order. The final score of
// an entry is the better of its two field scores. An empty query
// returns every keybind in source order with a uniform zero score.
func Search(query string, binds []keymap.Keybind) []Result {
	results := make([]Result, 0, len(binds))

	if query == "" {
		for _, kb := range binds {
			results = append(results, Result{Keybind: kb})
		}
		return results
	}

	for _, kb := range binds {
		ks, kp, kok := Match(query, kb.Keys)
		ds, dp, dok := Match(query, kb.Description)
		if !kok && !dok {
			continue
		}
		r := Result{Keybind: kb}
		switch {
		case kok && dok:
			r.Score = ks
			if ds > r.Score {
				r.Score = ds
			}
			r.KeyPositions = kp
			r.DescPositions = dp
		case kok:
			r.Score = ks
			r.KeyPositions = kp
		default:
			r.Score = ds
			r.DescPositions = dp
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
