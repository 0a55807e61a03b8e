package storage

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

func TestBoardRecord(t *testing.T) {
	store := openTestStore(t)
	board := NewBoard(store, 3, nil)

	if got := board.LoadRanked(); len(got) != 0 {
		t.Fatalf("new board = %+v", got)
	}

	var ranked []lander.RankedEntry
	for i, score := range []int{1200, 2500, 1800, 2500} {
		ranked = board.Record(score, lander.Breakdown{Total: score}, string(rune('a'+i)))
	}

	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	if ranked[0].Player != "b" || ranked[1].Player != "d" || ranked[2].Score != 1800 {
		t.Errorf("ranking = %+v", ranked)
	}
	if ranked[0].Breakdown == nil || ranked[0].Breakdown.Total != 2500 {
		t.Errorf("breakdown lost: %+v", ranked[0].Breakdown)
	}

	// A second board over the same store sees the same ranking
	if again := NewBoard(store, 3, nil).LoadRanked(); len(again) != 3 || again[0].Score != 2500 {
		t.Errorf("reloaded = %+v", again)
	}
}

func TestBoardRespectsSaveScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(ScoreEntry{Player: "old", Score: 1000})
	store.SaveSettings(Settings{SavePlayer: true, SaveScores: false})

	board := NewBoard(store, 10, nil)
	ranked := board.Record(2000, lander.Breakdown{Total: 2000}, "new")

	if len(ranked) != 2 || ranked[0].Player != "new" {
		t.Errorf("returned ranking = %+v", ranked)
	}
	if stored, _ := store.TopScores(10); len(stored) != 1 {
		t.Errorf("score persisted with saving disabled: %+v", stored)
	}
}

func TestBoardDegradesWhenStoreFails(t *testing.T) {
	store := openTestStore(t)
	board := NewBoard(store, 10, nil)
	board.Record(1500, lander.Breakdown{Total: 1500}, "a")
	store.Close()

	ranked := board.Record(2500, lander.Breakdown{Total: 2500}, "b")
	if len(ranked) != 2 || ranked[0].Score != 2500 {
		t.Errorf("ranking after failure = %+v", ranked)
	}
	if got := board.LoadRanked(); len(got) != 2 {
		t.Errorf("LoadRanked after failure = %+v", got)
	}
}

func TestBoardTimestamps(t *testing.T) {
	store := openTestStore(t)
	board := NewBoard(store, 10, nil)
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	board.now = func() time.Time { return stamp }

	ranked := board.Record(1000, lander.Breakdown{Total: 1000}, "a")
	if got := ranked[0].ISOTimestamp(); got != "2024-01-02T03:04:05Z" {
		t.Errorf("ISOTimestamp = %q", got)
	}
}

func TestProfile(t *testing.T) {
	store := openTestStore(t)

	local := NewProfile(store, "", nil)
	if got := local.Load(); got != lander.DefaultPlayerName {
		t.Errorf("Load() = %q, want default", got)
	}
	local.Save("Ace")
	if got := local.Load(); got != "Ace" {
		t.Errorf("Load() = %q, want Ace", got)
	}

	remote := NewProfile(store, "bea", nil)
	if got := remote.Load(); got != lander.DefaultPlayerName {
		t.Errorf("other profile sees %q", got)
	}
}

func TestProfileRespectsSavePlayer(t *testing.T) {
	store := openTestStore(t)
	store.SaveSettings(Settings{SavePlayer: false, SaveScores: true})

	p := NewProfile(store, LocalProfile, nil)
	p.Save("Ace")
	if got := p.Load(); got != lander.DefaultPlayerName {
		t.Errorf("name saved with saving disabled: %q", got)
	}
}
