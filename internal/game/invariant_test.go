package game

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/hextiles/internal/events"
)

var invariantKeys = []events.Key{
	events.KeyArrowUp, events.KeyArrowDown, events.KeyArrowLeft, events.KeyArrowRight,
	events.KeyEnter, events.KeyEscape, events.KeyOther,
}

// runRandomSession drives n random key releases and clicks and calls check
// after every event with the state before and after.
func runRandomSession(t *testing.T, seed int64, n int, check func(step int, ev string, before, after snapshot)) *TestSession {
	t.Helper()
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test only
	ts := NewTestSession(
		WithSeed(seed),
		WithGridSize(8, 6),
		WithInfoTile(2, 2, "north"),
		WithInfoTile(5, 4, "south"),
	)
	for i := 0; i < n; i++ {
		before := snap(ts.State)
		var ev string
		if rng.Intn(3) == 0 {
			// Clicks land up to two cells past each edge.
			c := Coord{X: rng.Intn(12) - 2, Y: rng.Intn(10) - 2}
			ev = "click " + c.String()
			if err := ts.Click(c); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		} else {
			k := invariantKeys[rng.Intn(len(invariantKeys))]
			ev = "key " + k.String()
			if err := ts.Press(k); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
		check(i, ev, before, snap(ts.State))
	}
	return ts
}

type snapshot struct {
	cursor   Coord
	mode     Mode
	score    int
	selected int
}

func snap(s *State) snapshot {
	return snapshot{cursor: s.Cursor, mode: s.Mode, score: s.Score, selected: s.Selected.Len()}
}

func TestInvariant_CursorStaysOnBoard(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		runRandomSession(t, seed, 500, func(step int, ev string, _, after snapshot) {
			if after.cursor.X < 0 || after.cursor.X > 7 || after.cursor.Y < 0 || after.cursor.Y > 5 {
				t.Fatalf("seed %d step %d (%s): cursor %s off an 8x6 board", seed, step, ev, after.cursor)
			}
		})
	}
}

func TestInvariant_ScoreMonotonicByAtMostOne(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ts := runRandomSession(t, seed, 500, func(step int, ev string, before, after snapshot) {
			d := after.score - before.score
			if d < 0 || d > 1 {
				t.Fatalf("seed %d step %d (%s): score %d -> %d", seed, step, ev, before.score, after.score)
			}
			if d == 1 && after.selected != before.selected-1 {
				t.Fatalf("seed %d step %d (%s): scoring must consume exactly one selection", seed, step, ev)
			}
		})
		if got, want := ts.Journal().Count(CatScore, "increment"), ts.State.Score; got != want {
			t.Fatalf("seed %d: journal has %d increments, score is %d", seed, got, want)
		}
	}
}

func TestInvariant_ModeOnlyViaEnterEscape(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		runRandomSession(t, seed, 500, func(step int, ev string, before, after snapshot) {
			if before.mode == after.mode {
				return
			}
			switch {
			case before.mode == ModeBoard && ev == "key Enter":
			case before.mode == ModeInfoWindow && ev == "key Escape":
			default:
				t.Fatalf("seed %d step %d (%s): illegal mode change %v -> %v", seed, step, ev, before.mode, after.mode)
			}
		})
	}
}

func TestInvariant_SelectionOnlyOnBoard(t *testing.T) {
	ts := runRandomSession(t, 11, 800, func(int, string, snapshot, snapshot) {})
	for _, c := range ts.State.Selected.Coords() {
		if !ts.State.InBounds(c) {
			t.Fatalf("selection holds off-board coordinate %s", c)
		}
	}
}
