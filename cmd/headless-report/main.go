// headless-report drives seeded random sessions without a window and prints
// per-run and aggregate event counts. Every event is checked against the
// board rules; any violation makes the command exit non-zero.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Garsondee/hextiles/internal/config"
	"github.com/Garsondee/hextiles/internal/events"
	"github.com/Garsondee/hextiles/internal/game"
)

var (
	flagRuns     int
	flagEvents   int
	flagSeedBase int64
	flagSeedStep int64
)

var scriptKeys = []events.Key{
	events.KeyArrowUp, events.KeyArrowDown, events.KeyArrowLeft, events.KeyArrowRight,
	events.KeyEnter, events.KeyEscape, events.KeyOther,
}

type scriptEvent struct {
	click bool
	coord game.Coord
	key   events.Key
}

func (e scriptEvent) String() string {
	if e.click {
		return "click " + e.coord.String()
	}
	return "key " + e.key.String()
}

type snapshot struct {
	cursor   game.Coord
	mode     game.Mode
	score    int
	selected int
}

func snap(s *game.State) snapshot {
	return snapshot{cursor: s.Cursor, mode: s.Mode, score: s.Score, selected: s.Selected.Len()}
}

type runStats struct {
	runIndex int
	seed     int64
	events   int

	firstSelectEvent  int
	firstResolveEvent int
	firstInfoEvent    int

	cursorMoves   int
	modeChanges   int
	selects       int
	deselects     int
	ignoredClicks int
	resolves      int
	tooltips      int

	finalScore    int
	finalSelected int
	visitedInfo   map[string]struct{}
	violations    []string
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "headless-report",
	Short:         "Run seeded random sessions and report event totals",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVar(&flagRuns, "runs", 5, "number of headless runs")
	rootCmd.Flags().IntVar(&flagEvents, "events", 2000, "input events per run")
	rootCmd.Flags().Int64Var(&flagSeedBase, "seed-base", 42, "base RNG seed for run 1")
	rootCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "seed increment between runs")
}

func run(_ *cobra.Command, _ []string) error {
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be > 0")
	}
	if flagEvents <= 0 {
		return fmt.Errorf("--events must be > 0")
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "headless-report"})
	cfg := config.Default()

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("board=%dx%d info_tiles=%d runs=%d events=%d seed_base=%d seed_step=%d\n\n",
		cfg.Grid.Columns, cfg.Grid.Rows, len(cfg.InfoTiles), flagRuns, flagEvents, flagSeedBase, flagSeedStep)

	all := make([]runStats, 0, flagRuns)
	for i := 0; i < flagRuns; i++ {
		seed := flagSeedBase + int64(i)*flagSeedStep
		rs, err := runRandomSession(cfg, i+1, seed, flagEvents)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		for _, v := range rs.violations {
			logger.Warn("violation", "run", rs.runIndex, "seed", rs.seed, "detail", v)
		}
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
	if n := countViolations(all); n > 0 {
		return fmt.Errorf("%d rule violations", n)
	}
	return nil
}

func sessionOptions(cfg config.Config, seed int64) []game.SessionOption {
	opts := []game.SessionOption{
		game.WithGridSize(cfg.Grid.Columns, cfg.Grid.Rows),
		game.WithHexSize(cfg.Grid.HexSize),
		game.WithSeed(seed),
	}
	for _, it := range cfg.InfoTiles {
		opts = append(opts, game.WithInfoTile(it.X, it.Y, it.Text))
	}
	return opts
}

// nextEvent picks a click (one in three) or a key release. Clicks may land
// up to two cells off each edge.
func nextEvent(rng *rand.Rand, rows, columns int) scriptEvent {
	if rng.Intn(3) == 0 {
		return scriptEvent{click: true, coord: game.Coord{X: rng.Intn(columns+4) - 2, Y: rng.Intn(rows+4) - 2}}
	}
	return scriptEvent{key: scriptKeys[rng.Intn(len(scriptKeys))]}
}

func runRandomSession(cfg config.Config, runIndex int, seed int64, n int) (runStats, error) {
	ts := game.NewTestSession(sessionOptions(cfg, seed)...)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible scripts
	rs := runStats{runIndex: runIndex, seed: seed, events: n, visitedInfo: map[string]struct{}{}}

	for i := 0; i < n; i++ {
		ev := nextEvent(rng, cfg.Grid.Rows, cfg.Grid.Columns)
		before := snap(ts.State)
		var err error
		if ev.click {
			err = ts.Click(ev.coord)
		} else {
			err = ts.Press(ev.key)
		}
		if err != nil {
			return rs, fmt.Errorf("event %d (%s): %w", i+1, ev, err)
		}
		after := snap(ts.State)
		for _, v := range checkStep(before, after, ev, cfg.Grid.Rows, cfg.Grid.Columns) {
			rs.violations = append(rs.violations, fmt.Sprintf("event %d (%s): %s", i+1, ev, v))
		}
		if after.mode == game.ModeInfoWindow {
			if it, ok := ts.State.InfoAt(after.cursor); ok {
				rs.visitedInfo[it.Text] = struct{}{}
			}
		}
	}

	j := ts.Journal()
	entries := j.Entries()
	rs.firstSelectEvent = firstEvent(entries, game.CatSelect, "add")
	rs.firstResolveEvent = firstEvent(entries, game.CatSelect, "resolve")
	rs.firstInfoEvent = firstEvent(entries, game.CatMode, game.ModeInfoWindow.String())
	rs.cursorMoves = j.Count(game.CatCursor, "")
	rs.modeChanges = j.Count(game.CatMode, "")
	rs.selects = j.Count(game.CatSelect, "add")
	rs.deselects = j.Count(game.CatSelect, "remove")
	rs.ignoredClicks = j.Count(game.CatSelect, "ignored")
	rs.resolves = j.Count(game.CatSelect, "resolve")
	rs.tooltips = j.Count(game.CatTooltip, "")
	rs.finalScore = ts.State.Score
	rs.finalSelected = ts.State.Selected.Len()

	if rs.resolves != rs.finalScore {
		rs.violations = append(rs.violations,
			fmt.Sprintf("journal resolves=%d but score=%d", rs.resolves, rs.finalScore))
	}
	return rs, nil
}

// checkStep returns every rule broken by a single event.
func checkStep(before, after snapshot, ev scriptEvent, rows, columns int) []string {
	var out []string
	if after.cursor.X < 0 || after.cursor.X >= columns || after.cursor.Y < 0 || after.cursor.Y >= rows {
		out = append(out, fmt.Sprintf("cursor %s off the board", after.cursor))
	}
	switch d := after.score - before.score; {
	case d < 0:
		out = append(out, fmt.Sprintf("score fell %d -> %d", before.score, after.score))
	case d > 1:
		out = append(out, fmt.Sprintf("score jumped %d -> %d", before.score, after.score))
	case d == 1 && after.selected != before.selected-1:
		out = append(out, "score rose without consuming a selection")
	}
	if ev.click && after.score != before.score {
		out = append(out, "click changed the score")
	}
	if before.mode != after.mode {
		legal := !ev.click &&
			((before.mode == game.ModeBoard && ev.key == events.KeyEnter) ||
				(before.mode == game.ModeInfoWindow && ev.key == events.KeyEscape))
		if !legal {
			out = append(out, fmt.Sprintf("mode %s -> %s", before.mode, after.mode))
		}
	}
	return out
}

func firstEvent(entries []game.JournalEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Event
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_select=%d first_resolve=%d first_info=%d\n",
		rs.firstSelectEvent, rs.firstResolveEvent, rs.firstInfoEvent)
	fmt.Printf("event_totals: cursor_move=%d mode_change=%d tooltip=%d\n",
		rs.cursorMoves, rs.modeChanges, rs.tooltips)
	fmt.Printf("selection: add=%d remove=%d ignored=%d resolve=%d\n",
		rs.selects, rs.deselects, rs.ignoredClicks, rs.resolves)
	fmt.Printf("final: score=%d selected=%d\n", rs.finalScore, rs.finalSelected)
	fmt.Printf("info_texts_seen: %s\n", joinSet(rs.visitedInfo))
	fmt.Printf("violations=%d\n\n", len(rs.violations))
}

func printAggregate(all []runStats) {
	totalMoves := 0
	totalModes := 0
	totalSelects := 0
	totalResolves := 0
	totalIgnored := 0
	totalScore := 0
	resolveEvents := make([]int, 0, len(all))
	infoGlobal := map[string]struct{}{}

	for _, rs := range all {
		totalMoves += rs.cursorMoves
		totalModes += rs.modeChanges
		totalSelects += rs.selects
		totalResolves += rs.resolves
		totalIgnored += rs.ignoredClicks
		totalScore += rs.finalScore
		if rs.firstResolveEvent >= 0 {
			resolveEvents = append(resolveEvents, rs.firstResolveEvent)
		}
		for text := range rs.visitedInfo {
			infoGlobal[text] = struct{}{}
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: cursor_move=%.1f mode_change=%.1f select=%.1f resolve=%.1f ignored_click=%.1f score=%.1f\n",
		avg(totalMoves, len(all)), avg(totalModes, len(all)), avg(totalSelects, len(all)),
		avg(totalResolves, len(all)), avg(totalIgnored, len(all)), avg(totalScore, len(all)))
	fmt.Printf("avg_first_resolve_event=%s\n", avgEventString(resolveEvents))
	fmt.Printf("info_texts_seen=%d [%s]\n", len(infoGlobal), joinSet(infoGlobal))
	fmt.Printf("violations=%d\n", countViolations(all))
}

func countViolations(all []runStats) int {
	n := 0
	for _, rs := range all {
		n += len(rs.violations)
	}
	return n
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgEventString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
