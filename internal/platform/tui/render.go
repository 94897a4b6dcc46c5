package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/purrdle/internal/core"
)

// palette maps core.Color to terminal colours.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorDarkGray:     lipgloss.Color("239"),
}

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per colour pair seen so far.
// SSH sessions render concurrently, so access is locked.
var (
	styleMu    sync.Mutex
	styleCache = map[cellStyle]lipgloss.Style{}
)

func styleFor(cs cellStyle) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if st, ok := styleCache[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := palette[cs.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[cs.bg]; ok {
		st = st.Background(c)
	}
	styleCache[cs] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
