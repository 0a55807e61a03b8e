package lander

import (
	"sort"
	"time"
)

// DefaultMaxEntries is the leaderboard length.
const DefaultMaxEntries = 10

// RankedEntry is one leaderboard row.
type RankedEntry struct {
	Score     int
	Player    string
	Timestamp time.Time
	Breakdown *Breakdown // nil for entries recorded without details
}

// ISOTimestamp returns the entry time in RFC 3339 form.
func (e RankedEntry) ISOTimestamp() string {
	return e.Timestamp.Format(time.RFC3339)
}

// ScoreBoard stores landings and ranks them.
// Implementations own ordering and truncation, and deal with their own
// storage failures: the simulation calls Record once per landing and takes
// whatever list comes back.
type ScoreBoard interface {
	// LoadRanked returns entries ordered by score, highest first.
	LoadRanked() []RankedEntry
	// Record adds a landing and returns the updated ranking.
	Record(score int, b Breakdown, player string) []RankedEntry
}

// PlayerProfile remembers the pilot name between sessions.
type PlayerProfile interface {
	Load() string
	Save(name string)
}

// MergeRanked adds e to entries, sorts by score descending and truncates to
// limit. Ties keep their existing order, so an earlier equal score ranks
// above a new one. entries is not modified.
func MergeRanked(entries []RankedEntry, e RankedEntry, limit int) []RankedEntry {
	if limit <= 0 {
		limit = DefaultMaxEntries
	}
	merged := make([]RankedEntry, 0, len(entries)+1)
	merged = append(merged, entries...)
	merged = append(merged, e)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// MemoryBoard is a ScoreBoard that lives only as long as the process.
// The platform falls back to it when the score database can't be opened.
type MemoryBoard struct {
	entries []RankedEntry
	limit   int
	now     func() time.Time
}

// NewMemoryBoard creates an empty in-memory board keeping limit entries.
func NewMemoryBoard(limit int) *MemoryBoard {
	if limit <= 0 {
		limit = DefaultMaxEntries
	}
	return &MemoryBoard{limit: limit, now: time.Now}
}

// LoadRanked returns a copy of the current ranking.
func (b *MemoryBoard) LoadRanked() []RankedEntry {
	out := make([]RankedEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Record merges a new landing into the ranking.
func (b *MemoryBoard) Record(score int, bd Breakdown, player string) []RankedEntry {
	b.entries = MergeRanked(b.entries, RankedEntry{
		Score:     score,
		Player:    player,
		Timestamp: b.now(),
		Breakdown: &bd,
	}, b.limit)
	return b.LoadRanked()
}

// StaticProfile is a PlayerProfile kept in memory.
type StaticProfile struct {
	Name string
}

// Load returns the stored name, or "Player" if none was set.
func (p *StaticProfile) Load() string {
	if p.Name == "" {
		return DefaultPlayerName
	}
	return p.Name
}

// Save replaces the stored name.
func (p *StaticProfile) Save(name string) {
	p.Name = name
}

// DefaultPlayerName is used until the pilot enters a name.
const DefaultPlayerName = "Player"
