package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Garsondee/hextiles/internal/events"
	"github.com/Garsondee/hextiles/internal/scene"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1)) // #nosec G404 -- test only
}

func countKind(nodes []scene.Node, kind scene.NodeKind) int {
	n := 0
	for _, node := range nodes {
		if node.Kind == kind {
			n++
		}
	}
	return n
}

func TestScenario_InfoWindowOpenAndClose(t *testing.T) {
	ts := NewTestSession(WithInfoTile(5, 5, "Some info"), WithCursor(5, 5))

	if err := ts.Press(events.KeyEnter); err != nil {
		t.Fatal(err)
	}
	if ts.State.Mode != ModeInfoWindow {
		t.Fatalf("mode = %v, want info-window", ts.State.Mode)
	}
	text, ok := ts.Renderer.InfoText()
	if !ok || text != "Some info" {
		t.Fatalf("info text = %q (shown=%v), want \"Some info\"", text, ok)
	}
	nodes := ts.Renderer.Stage.Nodes()
	if len(nodes) != 1 || nodes[0].Kind != scene.NodeText {
		t.Fatalf("info window should show exactly one text node, got %d nodes", len(nodes))
	}
	shapes := ts.Renderer.Canvas.Shapes()
	if len(shapes) != 1 || shapes[0].Kind != scene.ShapeRect || !shapes[0].Filled {
		t.Fatalf("info window should draw one filled overlay rect, got %+v", shapes)
	}
	if shapes[0].W != 1200 || shapes[0].H != 768 {
		t.Fatalf("overlay should cover the viewport, got %vx%v", shapes[0].W, shapes[0].H)
	}

	if err := ts.Press(events.KeyEscape); err != nil {
		t.Fatal(err)
	}
	if ts.State.Mode != ModeBoard {
		t.Fatalf("mode = %v, want board", ts.State.Mode)
	}
	if _, ok := ts.Renderer.InfoText(); ok {
		t.Fatal("info text should be gone after Escape")
	}
	if got := countKind(ts.Renderer.Stage.Nodes(), scene.NodeSprite); got != 401 {
		t.Fatalf("board should show 400 terrain sprites + 1 info sprite, got %d", got)
	}
	if got := len(ts.Renderer.Canvas.Shapes()); got != 400 {
		t.Fatalf("board should outline 400 cells, got %d", got)
	}
}

func TestScenario_ClickTogglesSelection(t *testing.T) {
	ts := NewTestSession()
	c := Coord{X: 3, Y: 4}

	if err := ts.Click(c); err != nil {
		t.Fatal(err)
	}
	if !ts.State.Selected.Has(c) {
		t.Fatal("first click should select (3,4)")
	}
	if err := ts.Click(c); err != nil {
		t.Fatal(err)
	}
	if ts.State.Selected.Has(c) || ts.State.Selected.Len() != 0 {
		t.Fatalf("second click should deselect, selection = %v", ts.State.Selected.Coords())
	}
	if ts.Journal().Count(CatSelect, "add") != 1 || ts.Journal().Count(CatSelect, "remove") != 1 {
		t.Fatalf("journal:\n%s", ts.Journal().Format())
	}
}

func TestScenario_ClickOffBoardIgnored(t *testing.T) {
	ts := NewTestSession(WithGridSize(4, 4))
	if err := ts.Click(Coord{X: 6, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if err := ts.Click(Coord{X: -1, Y: -1}); err != nil {
		t.Fatal(err)
	}
	if ts.State.Selected.Len() != 0 {
		t.Fatalf("off-board clicks must not select, got %v", ts.State.Selected.Coords())
	}
	if ts.Journal().Count(CatSelect, "ignored") != 2 {
		t.Fatalf("expected two ignored clicks:\n%s", ts.Journal().Format())
	}
}

func TestScenario_EnterOnSelectedInfoTileScoresAndOpens(t *testing.T) {
	ts := NewTestSession(
		WithInfoTile(5, 5, "Some info"),
		WithCursor(5, 5),
		WithSelected(Coord{X: 5, Y: 5}),
	)
	if err := ts.Press(events.KeyEnter); err != nil {
		t.Fatal(err)
	}
	if ts.State.Score != 1 {
		t.Fatalf("score = %d, want 1", ts.State.Score)
	}
	if ts.State.Selected.Has(Coord{X: 5, Y: 5}) {
		t.Fatal("(5,5) should be removed from the selection")
	}
	if ts.State.Mode != ModeInfoWindow {
		t.Fatalf("mode = %v, want info-window", ts.State.Mode)
	}
}

func TestScenario_ArrowOntoSelectedCellResolves(t *testing.T) {
	ts := NewTestSession(WithCursor(5, 4), WithSelected(Coord{X: 5, Y: 5}, Coord{X: 9, Y: 9}))
	if err := ts.Press(events.KeyArrowDown); err != nil {
		t.Fatal(err)
	}
	if ts.State.Score != 1 || ts.State.Selected.Has(Coord{X: 5, Y: 5}) {
		t.Fatalf("moving onto a selected cell should resolve it, score=%d", ts.State.Score)
	}
	if !ts.State.Selected.Has(Coord{X: 9, Y: 9}) {
		t.Fatal("other selections must be untouched")
	}
	// Away and back: nothing left to resolve.
	if err := ts.Press(events.KeyArrowUp, events.KeyArrowDown, events.KeyEnter); err != nil {
		t.Fatal(err)
	}
	if ts.State.Score != 1 {
		t.Fatalf("score = %d, want 1", ts.State.Score)
	}
}

func TestKeyUp_TooltipForTerrainAndInfo(t *testing.T) {
	ts := NewTestSession(WithTerrain(1, 0, TerrainWood), WithInfoTile(2, 0, "x"))
	if err := ts.Press(events.KeyArrowRight); err != nil {
		t.Fatal(err)
	}
	if got := ts.LastTooltip(); got != "Terrain tile of type Wood" {
		t.Fatalf("tooltip = %q", got)
	}
	if err := ts.Press(events.KeyArrowRight); err != nil {
		t.Fatal(err)
	}
	if got := ts.LastTooltip(); got != "This is a special tile, try hit ENTER" {
		t.Fatalf("tooltip = %q", got)
	}
	if len(ts.Tooltips) != 2 {
		t.Fatalf("expected one tooltip per key, got %d", len(ts.Tooltips))
	}
}

func TestKeyUp_OtherKeyStillRunsPostSteps(t *testing.T) {
	ts := NewTestSession(WithSelected(Coord{}))
	if err := ts.Press(events.KeyOther); err != nil {
		t.Fatal(err)
	}
	if ts.State.Score != 1 {
		t.Fatalf("score = %d, want 1", ts.State.Score)
	}
	if len(ts.Tooltips) != 1 {
		t.Fatalf("expected a tooltip, got %v", ts.Tooltips)
	}
}

func TestEscapeInBoard_IsNoop(t *testing.T) {
	ts := NewTestSession()
	if err := ts.Press(events.KeyEscape); err != nil {
		t.Fatal(err)
	}
	if ts.State.Mode != ModeBoard || ts.Journal().Count(CatMode, "") != 0 {
		t.Fatalf("Escape in board mode should not change mode:\n%s", ts.Journal().Format())
	}
}

func TestEnterOffInfoTile_IsNoop(t *testing.T) {
	ts := NewTestSession(WithInfoTile(5, 5, "Some info"), WithCursor(4, 5))
	if err := ts.Press(events.KeyEnter); err != nil {
		t.Fatal(err)
	}
	if ts.State.Mode != ModeBoard {
		t.Fatalf("mode = %v, want board", ts.State.Mode)
	}
}

func TestInfoWindow_CursorMovesOffInfoTile(t *testing.T) {
	ts := NewTestSession(WithInfoTile(5, 5, "Some info"), WithCursor(5, 5))
	if err := ts.Press(events.KeyEnter, events.KeyArrowRight); err != nil {
		t.Fatal(err)
	}
	if ts.State.Mode != ModeInfoWindow {
		t.Fatal("arrows must not close the info window")
	}
	if text, ok := ts.Renderer.InfoText(); !ok || text != "" {
		t.Fatalf("info text off the info tile = %q (shown=%v), want empty", text, ok)
	}
}

func TestUnknownTerrain_IsFatal(t *testing.T) {
	ts := NewTestSession(WithGridSize(3, 3), WithTerrain(1, 1, Terrain(42)))
	err := ts.Press(events.KeyArrowRight)
	if !errors.Is(err, ErrUnknownTerrain) {
		t.Fatalf("err = %v, want ErrUnknownTerrain", err)
	}
}

func TestStart_RendersFirstFrame(t *testing.T) {
	ts := NewTestSession(WithGridSize(5, 4))
	if err := ts.Start(); err != nil {
		t.Fatal(err)
	}
	if got := countKind(ts.Renderer.Stage.Nodes(), scene.NodeSprite); got != 20 {
		t.Fatalf("expected 20 terrain sprites, got %d", got)
	}
	if ts.Journal().Events() != 0 {
		t.Fatal("Start is not an input event")
	}
}
