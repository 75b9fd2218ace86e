// Package leaderboard keeps the five best survival times.
//
// The board is stored as a single named record holding a YAML sequence of
// entries. Where the record lives is up to the Backend: a SQLite table on the
// desktop, gdata (localStorage in the browser) in the window frontend, or
// memory in tests.
package leaderboard

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"
)

const (
	// Capacity is the number of entries kept.
	Capacity = 5
	// NameLen is the maximum name length in runes.
	NameLen = 5
	// DefaultName replaces an empty name.
	DefaultName = "ASTRO"
	// RecordKey names the persisted record.
	RecordKey = "moonrunner_leaderboard"
)

var (
	// ErrNotFound is returned by backends when the record does not exist yet.
	ErrNotFound = errors.New("leaderboard: record not found")
	// ErrCorrupt is returned when the stored record cannot be decoded.
	ErrCorrupt = errors.New("leaderboard: corrupt record")
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string  `yaml:"name"`
	Score float64 `yaml:"score"` // Seconds survived
}

// SanitizeName trims, uppercases and truncates a player name.
// An empty name becomes DefaultName.
func SanitizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return DefaultName
	}
	if r := []rune(name); len(r) > NameLen {
		name = strings.TrimSpace(string(r[:NameLen]))
	}
	return name
}

// Qualifies reports whether score would enter the board.
func Qualifies(entries []Entry, score float64) bool {
	if len(entries) < Capacity {
		return true
	}
	return score > lowest(entries)
}

// lowest returns the smallest score on the board.
func lowest(entries []Entry) float64 {
	low := math.Inf(1)
	for _, e := range entries {
		low = min(low, e.Score)
	}
	return low
}

// Insert adds an entry and returns a new board sorted by score descending and
// truncated to Capacity. The input slice is not modified.
func Insert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, Entry{Name: SanitizeName(e.Name), Score: e.Score})
	sortEntries(out)
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}

// Preview returns the board as it would look with score inserted under name,
// and the row index of that score, or -1 when it does not make the cut.
// Used to show a run's placement before the player types a name.
func Preview(entries []Entry, name string, score float64) ([]Entry, int) {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, Entry{Name: name, Score: score})

	// Stable sort keeps the new run below equal existing scores.
	sortEntries(out)
	idx := -1
	for i := range out {
		if i >= Capacity {
			break
		}
		if out[i].Name == name && out[i].Score == score {
			idx = i
		}
	}
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out, idx
}

// sortEntries orders entries by score descending, keeping insertion order for
// ties.
func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// normalize re-validates decoded entries: names are sanitized, entries with
// non-finite or negative scores are dropped, then the board is sorted and
// truncated.
func normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if math.IsNaN(e.Score) || math.IsInf(e.Score, 0) || e.Score < 0 {
			continue
		}
		out = append(out, Entry{Name: SanitizeName(e.Name), Score: e.Score})
	}
	sortEntries(out)
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}
