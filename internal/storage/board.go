package storage

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Board is a lander.ScoreBoard backed by a Store.
// Storage failures are logged and the ranking degrades to what is held in
// memory, so a broken database never stops a landing from being shown.
type Board struct {
	store  *Store
	limit  int
	logger *log.Logger
	now    func() time.Time

	cached []lander.RankedEntry
}

// NewBoard creates a board keeping limit entries. A nil logger discards.
func NewBoard(store *Store, limit int, logger *log.Logger) *Board {
	if limit <= 0 {
		limit = lander.DefaultMaxEntries
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{store: store, limit: limit, logger: logger, now: time.Now}
}

// LoadRanked returns the stored top entries.
func (b *Board) LoadRanked() []lander.RankedEntry {
	entries, err := b.store.TopScores(b.limit)
	if err != nil {
		b.logger.Error("Cannot load scores", "error", err)
		return b.copyCached()
	}
	b.cached = toRanked(entries)
	return b.copyCached()
}

// Record stores a landing unless score saving is disabled, then returns the
// updated ranking.
func (b *Board) Record(score int, bd lander.Breakdown, player string) []lander.RankedEntry {
	entry := lander.RankedEntry{
		Score:     score,
		Player:    player,
		Timestamp: b.now(),
		Breakdown: &bd,
	}

	settings, err := b.store.Settings()
	if err != nil {
		b.logger.Warn("Cannot read settings, using defaults", "error", err)
	}
	if !settings.SaveScores {
		b.cached = lander.MergeRanked(b.LoadRanked(), entry, b.limit)
		return b.copyCached()
	}

	if _, err := b.store.SaveScore(ScoreEntry{
		Player:    player,
		Score:     score,
		Breakdown: &bd,
		CreatedAt: entry.Timestamp,
	}); err != nil {
		b.logger.Error("Cannot save score", "player", player, "score", score, "error", err)
		b.cached = lander.MergeRanked(b.cached, entry, b.limit)
		return b.copyCached()
	}

	b.logger.Info("Score recorded", "player", player, "score", score)
	return b.LoadRanked()
}

func (b *Board) copyCached() []lander.RankedEntry {
	out := make([]lander.RankedEntry, len(b.cached))
	copy(out, b.cached)
	return out
}

func toRanked(entries []ScoreEntry) []lander.RankedEntry {
	ranked := make([]lander.RankedEntry, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, lander.RankedEntry{
			Score:     e.Score,
			Player:    e.Player,
			Timestamp: e.CreatedAt,
			Breakdown: e.Breakdown,
		})
	}
	return ranked
}

// Profile is a lander.PlayerProfile stored under a profile key: "local"
// for the terminal game, the SSH user for remote sessions.
type Profile struct {
	store  *Store
	key    string
	logger *log.Logger
}

// LocalProfile is the profile key of the terminal game.
const LocalProfile = "local"

// NewProfile creates a profile for key. A nil logger discards.
func NewProfile(store *Store, key string, logger *log.Logger) *Profile {
	if key == "" {
		key = LocalProfile
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Profile{store: store, key: key, logger: logger}
}

// Load returns the stored name, or the default pilot name.
func (p *Profile) Load() string {
	name, ok, err := p.store.PlayerName(p.key)
	if err != nil {
		p.logger.Error("Cannot load player", "profile", p.key, "error", err)
		return lander.DefaultPlayerName
	}
	if !ok || name == "" {
		return lander.DefaultPlayerName
	}
	return name
}

// Save stores name unless saving the player is disabled.
func (p *Profile) Save(name string) {
	settings, err := p.store.Settings()
	if err != nil {
		p.logger.Warn("Cannot read settings, using defaults", "error", err)
	}
	if !settings.SavePlayer {
		return
	}
	if err := p.store.SavePlayerName(p.key, name); err != nil {
		p.logger.Error("Cannot save player", "profile", p.key, "error", err)
	}
}

var (
	_ lander.ScoreBoard    = (*Board)(nil)
	_ lander.PlayerProfile = (*Profile)(nil)
)
