package screen

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth      = 320
	panelMaxEntries = 40
	panelLineHeight = 18
	panelTitleH     = 22
)

// MessageEntry is a single line in the message panel.
type MessageEntry struct {
	Seq     int
	Message string
}

// MessageLog is a ring buffer of tooltip messages drawn as a side panel.
// It implements game.Tooltip.
type MessageLog struct {
	entries []MessageEntry
	head    int
	count   int
	seq     int
	logger  *log.Logger
}

// NewMessageLog creates a message log with a fixed capacity. Each message is
// also written to logger at info level when logger is non-nil.
func NewMessageLog(logger *log.Logger) *MessageLog {
	return &MessageLog{
		entries: make([]MessageEntry, panelMaxEntries),
		logger:  logger,
	}
}

// Show appends msg to the log.
func (ml *MessageLog) Show(msg string) {
	ml.seq++
	ml.entries[ml.head] = MessageEntry{Seq: ml.seq, Message: msg}
	ml.head = (ml.head + 1) % panelMaxEntries
	if ml.count < panelMaxEntries {
		ml.count++
	}
	if ml.logger != nil {
		ml.logger.Info("tooltip", "msg", msg)
	}
}

// Recent returns entries in chronological order (oldest first).
func (ml *MessageLog) Recent() []MessageEntry {
	result := make([]MessageEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + panelMaxEntries) % panelMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

// Last returns the newest message, or false if nothing was shown yet.
func (ml *MessageLog) Last() (string, bool) {
	if ml.count == 0 {
		return "", false
	}
	idx := (ml.head - 1 + panelMaxEntries) % panelMaxEntries
	return ml.entries[idx].Message, true
}

// Draw renders the panel on the right side of the screen, newest at the bottom.
func (ml *MessageLog) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), float32(panelH), color.RGBA{R: 24, G: 26, B: 30, A: 235}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 80, G: 80, B: 96, A: 255}, false)

	// Title bar.
	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), panelTitleH, color.RGBA{R: 40, G: 42, B: 52, A: 255}, false)
	drawLine(screen, "TOOLTIPS", face, float64(panelX+8), 3, color.RGBA{R: 200, G: 200, B: 215, A: 255})

	entries := ml.Recent()
	maxVisible := (panelH - panelTitleH - 6) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := panelTitleH + 4
	for i, e := range entries {
		col := color.RGBA{R: 150, G: 150, B: 160, A: 255} // faded
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(panelWidth-4), panelLineHeight, color.RGBA{R: 50, G: 44, B: 70, A: 200}, false)
			col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		drawLine(screen, e.Message, face, float64(panelX+8), float64(y+1), col)
		y += panelLineHeight
	}
}
