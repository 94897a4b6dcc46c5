package wordgame

import (
	"github.com/vovakirdan/purrdle/internal/core"
)

const (
	boardTop     = 4 // Rows above the board: title, HUD, hint, spacer
	keyGap       = 1
	keyboardRows = 3
)

// keySpecial marks the non-letter keys of the on-screen keyboard.
type keySpecial int

const (
	keyLetter keySpecial = iota
	keyEnter
	keyDelete
)

// keyboardLayout is the QWERTY arrangement drawn under the board.
var keyboardLayout = [keyboardRows][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"ENTER", "Z", "X", "C", "V", "B", "N", "M", "DEL"},
}

// key is one clickable key on screen.
type key struct {
	rect    core.Rect
	label   string
	char    rune
	special keySpecial
}

// layout is the screen geometry of the board and keyboard.
type layout struct {
	tooSmall bool

	cols, rows int
	boardX     int
	boardY     int
	tileW      int // Cells per tile
	stride     int // Cells between tile starts
	rowStride  int

	keyboardY int
	messageY  int
	keys      []key
}

// tileX returns the left edge of the tile in col.
func (l layout) tileX(col int) int {
	return l.boardX + col*l.stride
}

// tileY returns the screen row of board row.
func (l layout) tileY(row int) int {
	return l.boardY + row*l.rowStride
}

// keyAt returns the key under (x, y).
func (l layout) keyAt(x, y int) (key, bool) {
	for _, k := range l.keys {
		if k.rect.Contains(x, y) {
			return k, true
		}
	}
	return key{}, false
}

// layout computes the geometry for the current screen and round.
func (g *Game) layout() layout {
	l := layout{cols: 5, rows: g.deps.Settings.PuzzleRows}
	if g.session != nil {
		l.cols = g.session.WordLength()
		l.rows = g.session.MaxRows()
	}
	if l.rows <= 0 {
		l.rows = 1
	}

	// Widest tiles that fit, then tighter spacing, then single cells.
	switch {
	case l.cols*4-1 <= g.screenW-2:
		l.tileW, l.stride = 3, 4
	case l.cols*3 <= g.screenW-2:
		l.tileW, l.stride = 3, 3
	default:
		l.tileW, l.stride = 1, 2
	}
	boardW := l.cols*l.stride - (l.stride - l.tileW)
	l.boardX = (g.screenW - boardW) / 2
	l.boardY = boardTop

	// Board, spacer, keyboard, spacer, message line, controls line.
	below := 1 + keyboardRows + 1 + 2
	l.rowStride = 2
	if boardTop+l.rows*2+below > g.screenH {
		l.rowStride = 1
	}
	if boardTop+l.rows*l.rowStride+below > g.screenH || boardW > g.screenW {
		l.tooSmall = true
		return l
	}

	l.keyboardY = l.boardY + l.rows*l.rowStride + 1
	l.messageY = l.keyboardY + keyboardRows + 1
	l.keys = g.keyboardKeys(l.keyboardY)
	return l
}

// keyboardKeys lays out the on-screen keys centred below the board.
func (g *Game) keyboardKeys(top int) []key {
	var keys []key
	for r, row := range keyboardLayout {
		width := 0
		for i, label := range row {
			if i > 0 {
				width += keyGap
			}
			width += len(label) + 2
		}
		x := (g.screenW - width) / 2
		for _, label := range row {
			k := key{
				rect:  core.NewRect(x, top+r, len(label)+2, 1),
				label: label,
			}
			switch label {
			case "ENTER":
				k.special = keyEnter
			case "DEL":
				k.special = keyDelete
			default:
				k.char = rune(label[0])
			}
			keys = append(keys, k)
			x += k.rect.W + keyGap
		}
	}
	return keys
}
