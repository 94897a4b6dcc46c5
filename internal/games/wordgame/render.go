package wordgame

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/purrdle/internal/core"
	"github.com/vovakirdan/purrdle/internal/words"
	"github.com/vovakirdan/purrdle/internal/wordle"
)

// flipEdge is the scale below which a flipping tile is drawn edge-on.
const flipEdge = 0.35

// popThreshold is the scale above which a typed tile shows its pop brackets.
const popThreshold = 1.05

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	dst.DrawTextCenteredColor(0, "P U R R D L E", core.ColorBrightGreen)

	switch {
	case g.loading:
		g.renderLoading(dst)
		return
	case g.session == nil:
		g.renderFailed(dst)
		return
	}

	l := g.layout()
	if l.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, l)
	g.renderKeyboard(dst, l)
	g.renderMessages(dst, l)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderLoading(dst *core.Screen) {
	spin := spinnerFrames[(g.frame/4)%len(spinnerFrames)]
	y := g.screenH / 2
	dst.DrawTextCenteredColor(y, fmt.Sprintf("%c Fetching a word...", spin), core.ColorCyan)
	dst.DrawTextCenteredColor(y+2, "Esc: menu | Ctrl+C: quit", core.ColorGray)
}

func (g *Game) renderFailed(dst *core.Screen) {
	y := g.screenH / 2
	msg := g.failed
	if msg == "" {
		msg = "No word available"
	}
	dst.DrawTextCenteredColor(y, truncate(msg, g.screenW), core.ColorRed)
	dst.DrawTextCenteredColor(y+2, "Ctrl+R: try again | Esc: menu", core.ColorGray)
}

// renderHUD draws the mode line and, in vocabulary modes, the definition hint.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	info := fmt.Sprintf("%s  Attempt %d/%d", g.Title(), core.Min(s.Attempts()+1, s.MaxRows()), s.MaxRows())
	if g.kind == Daily {
		info = fmt.Sprintf("%s  %s", info, words.DateKey(g.deps.Now()))
	}
	if s.Mode() == wordle.Vocabulary {
		info = fmt.Sprintf("%s  %d letters", info, s.WordLength())
	}
	dst.DrawTextCenteredColor(1, info, core.ColorWhite)

	if g.definition != "" {
		dst.DrawTextCenteredColor(2, truncate("Hint: "+g.definition, g.screenW-2), core.ColorCyan)
	}
}

// renderBoard draws submitted rows, the row being typed and the empty rows.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	s := g.session
	rows := s.Rows()
	buffer := []rune(s.Buffer())

	for r := 0; r < l.rows; r++ {
		shift := int(math.Round(s.RowOffset(r)))
		y := l.tileY(r)
		for c := 0; c < l.cols; c++ {
			x := l.tileX(c) + shift
			switch {
			case r < len(rows):
				g.drawScoredTile(dst, l, x, y, r, c, rows[r][c])
			case r == len(rows) && s.State() == wordle.Entering && c < len(buffer):
				drawTile(dst, l, x, y, buffer[c], core.ColorBrightWhite, core.ColorGray)
				if s.PopScale(r, c) > popThreshold && l.stride > l.tileW {
					dst.SetCell(x-1, y, core.Cell{Rune: '[', Fg: core.ColorBrightWhite})
					dst.SetCell(x+l.tileW, y, core.Cell{Rune: ']', Fg: core.ColorBrightWhite})
				}
			default:
				drawTile(dst, l, x, y, '_', core.ColorDarkGray, core.ColorDefault)
			}
		}
	}
}

func (g *Game) drawScoredTile(dst *core.Screen, l layout, x, y, row, col int, t wordle.Tile) {
	s := g.session
	if s.TileScale(row, col) < flipEdge {
		edge := strings.Repeat("─", l.tileW)
		dst.DrawTextColor(x, y, edge, core.ColorGray, core.ColorDefault)
		return
	}
	if !s.TileRevealed(row, col) {
		drawTile(dst, l, x, y, t.Char, core.ColorBrightWhite, core.ColorGray)
		return
	}
	fg, bg := feedbackColors(t.Feedback)
	drawTile(dst, l, x, y, t.Char, fg, bg)
}

// drawTile paints one tile with its letter centred.
func drawTile(dst *core.Screen, l layout, x, y int, ch rune, fg, bg core.Color) {
	dst.FillRect(core.NewRect(x, y, l.tileW, 1), core.Cell{Rune: ' ', Fg: fg, Bg: bg})
	dst.SetCell(x+l.tileW/2, y, core.Cell{Rune: ch, Fg: fg, Bg: bg})
}

func feedbackColors(f wordle.Feedback) (fg, bg core.Color) {
	switch f {
	case wordle.Exact:
		return core.ColorBlack, core.ColorExact
	case wordle.Present:
		return core.ColorBlack, core.ColorPresent
	default:
		return core.ColorBrightWhite, core.ColorAbsent
	}
}

func keyColors(k wordle.KeyStatus) (fg, bg core.Color) {
	switch k {
	case wordle.KeyExact:
		return core.ColorBlack, core.ColorExact
	case wordle.KeyPresent:
		return core.ColorBlack, core.ColorPresent
	case wordle.KeyAbsent:
		return core.ColorGray, core.ColorAbsent
	default:
		return core.ColorBlack, core.ColorWhite
	}
}

func (g *Game) renderKeyboard(dst *core.Screen, l layout) {
	for _, k := range l.keys {
		fg, bg := core.ColorBlack, core.ColorWhite
		if k.special == keyLetter {
			fg, bg = keyColors(g.session.KeyStatus(k.char))
		}
		dst.DrawTextColor(k.rect.X, k.rect.Y, " "+k.label+" ", fg, bg)
	}
}

// renderMessages draws the transient notice or the end-of-round banner, then
// the controls line.
func (g *Game) renderMessages(dst *core.Screen, l layout) {
	s := g.session
	switch {
	case s.State() == wordle.Over && s.Outcome() == wordle.Won:
		msg := fmt.Sprintf("Solved in %d/%d! Enter: new word", s.Attempts(), s.MaxRows())
		dst.DrawTextCenteredColor(l.messageY, msg, core.ColorBrightGreen)
	case s.State() == wordle.Over:
		msg := fmt.Sprintf("The word was %s. Enter: new word", strings.ToUpper(s.Word()))
		dst.DrawTextCenteredColor(l.messageY, truncate(msg, g.screenW), core.ColorRed)
	case g.message != "":
		dst.DrawTextCenteredColor(l.messageY, g.message, core.ColorOrange)
	}

	if l.messageY+1 < g.screenH {
		dst.DrawTextCenteredColor(l.messageY+1, truncate(g.Controls(), g.screenW), core.ColorDarkGray)
	}
}

// truncate shortens text to at most width cells.
func truncate(text string, width int) string {
	r := []rune(text)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return text
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
