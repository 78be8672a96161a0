package app

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"example.com/lexedit/pkg/config"
	"example.com/lexedit/pkg/lexicon"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	textStyle   = tcell.StyleDefault
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorGray).Attributes(tcell.AttrBlink)
	regionStyle = tcell.StyleDefault.Background(tcell.ColorGreen)
	spellStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Underline(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// cell is one buffer rune placed on a display row.
type cell struct {
	r     rune
	pos   int
	width int
}

// row is one display row. end is the buffer index just past the row: the
// newline that ends it, the first rune of the next row when the line
// wrapped, or the buffer length for the last row.
type row struct {
	cells   []cell
	end     int
	wrapped bool
}

func (rw row) start() int {
	if len(rw.cells) > 0 {
		return rw.cells[0].pos
	}
	return rw.end
}

// layoutRows breaks text into rows no wider than width cells. Lines wrap
// at any character. A cursor just past a full row gets an empty row of its
// own so it can be drawn.
func layoutRows(text []rune, width, cursor int) []row {
	rows := []row{{}}
	used := 0
	closeRow := func(end int) {
		if cur := &rows[len(rows)-1]; end == cursor && used >= width && len(cur.cells) > 0 {
			cur.end = end
			cur.wrapped = true
			rows = append(rows, row{})
		}
		rows[len(rows)-1].end = end
	}
	for i, c := range text {
		if c == '\n' {
			closeRow(i)
			rows = append(rows, row{})
			used = 0
			continue
		}
		w := runewidth.RuneWidth(c)
		if w == 0 {
			w = 1
		}
		if cur := &rows[len(rows)-1]; used+w > width && len(cur.cells) > 0 {
			cur.end = i
			cur.wrapped = true
			rows = append(rows, row{})
			used = 0
		}
		cur := &rows[len(rows)-1]
		cur.cells = append(cur.cells, cell{r: c, pos: i, width: w})
		used += w
	}
	closeRow(len(text))
	return rows
}

// cursorRow returns the index of the row showing pos.
func cursorRow(rows []row, pos int) int {
	for i, rw := range rows {
		if pos >= rw.start() && (pos < rw.end || (!rw.wrapped && pos == rw.end)) {
			return i
		}
	}
	return len(rows) - 1
}

// viewSize returns the text area of the box for a screen of sw x sh cells.
// The border takes two columns and two rows and the status line one row.
// The area is at least two columns wide so a wide rune always fits.
func viewSize(sw, sh int, v config.ViewConfig) (w, h int) {
	maxW, maxH := max(sw-2, 2), max(sh-3, 1)
	w, h = v.Width, v.Height
	if w <= 0 || w > maxW {
		w = maxW
	}
	w = max(w, 2)
	if h <= 0 || h > maxH {
		h = maxH
	}
	return w, h
}

// renderState captures a snapshot of editor state for drawing.
type renderState struct {
	rows        []row
	width       int
	height      int
	topLine     int
	cursor      int
	region      [2]int // empty when region[0] == region[1]
	misspelled  []lexicon.Span
	mode        Mode
	message     string
	filePath    string
	dirty       bool
	showHelp    bool
	keymap      map[string]config.Keybinding
	spellActive bool
}

// renderSnapshot lays out the buffer for the screen and scrolls so the
// cursor row is visible.
func (r *Runner) renderSnapshot() renderState {
	sw, sh := r.Screen.Size()
	w, h := viewSize(sw, sh, r.View)
	rows := layoutRows(r.Buf.Runes(), w, r.Cursor)
	cr := cursorRow(rows, r.Cursor)
	if cr < r.TopLine {
		r.TopLine = cr
	}
	if cr >= r.TopLine+h {
		r.TopLine = cr - h + 1
	}
	st := renderState{
		rows:        rows,
		width:       w,
		height:      h,
		topLine:     r.TopLine,
		cursor:      r.Cursor,
		mode:        r.Mode,
		message:     r.Message,
		filePath:    r.FilePath,
		dirty:       r.Dirty,
		showHelp:    r.ShowHelp,
		keymap:      r.Keymap,
		spellActive: r.Spell.Enabled,
	}
	if start, end, ok := r.region(); ok {
		st.region = [2]int{start, end}
	}
	if r.Spell.Enabled {
		st.misspelled = slices.Clone(r.Spell.Spans)
	}
	return st
}

// draw renders the current state if a screen is attached.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	renderToScreen(r.Screen, r.renderSnapshot())
}

// renderToScreen draws the provided snapshot to the tcell screen.
func renderToScreen(s tcell.Screen, st renderState) {
	s.Clear()
	if st.showHelp {
		drawHelp(s, st.keymap)
		return
	}
	drawBox(s, st.width+2, st.height+2)
	for y := 0; y < st.height && st.topLine+y < len(st.rows); y++ {
		rw := st.rows[st.topLine+y]
		x := 0
		for _, c := range rw.cells {
			ch := c.r
			if unicode.IsControl(ch) {
				ch = ' '
			}
			s.SetContent(1+x, 1+y, ch, nil, st.styleAt(c.pos))
			x += c.width
		}
		// a cursor at a line end or at the end of the buffer sits on a blank
		if !rw.wrapped && st.cursor == rw.end && x < st.width {
			s.SetContent(1+x, 1+y, ' ', nil, cursorStyle)
		}
	}
	drawStatus(s, st.height+2, st.statusLine())
	s.Show()
}

func (st renderState) styleAt(pos int) tcell.Style {
	switch {
	case pos == st.cursor:
		return cursorStyle
	case pos >= st.region[0] && pos < st.region[1]:
		return regionStyle
	case inSpans(st.misspelled, pos):
		return spellStyle
	}
	return textStyle
}

// inSpans reports whether pos falls inside one of the ordered spans.
func inSpans(spans []lexicon.Span, pos int) bool {
	_, found := slices.BinarySearchFunc(spans, pos, func(sp lexicon.Span, p int) int {
		switch {
		case sp.End < p:
			return -1
		case sp.Start > p:
			return 1
		}
		return 0
	})
	return found
}

func (st renderState) statusLine() string {
	var b strings.Builder
	b.WriteString(st.mode.String())
	if st.spellActive {
		b.WriteString(" +spell")
	}
	name := st.filePath
	if name == "" {
		name = "[No File]"
	}
	fmt.Fprintf(&b, " | %s", name)
	if st.dirty {
		b.WriteString(" [+]")
	}
	if st.message != "" {
		fmt.Fprintf(&b, " | %s", st.message)
	}
	return b.String()
}

// drawBox draws a rounded border w cells wide and h rows high at the top left.
func drawBox(s tcell.Screen, w, h int) {
	for x := 1; x < w-1; x++ {
		s.SetContent(x, 0, '─', nil, borderStyle)
		s.SetContent(x, h-1, '─', nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(0, y, '│', nil, borderStyle)
		s.SetContent(w-1, y, '│', nil, borderStyle)
	}
	s.SetContent(0, 0, '╭', nil, borderStyle)
	s.SetContent(w-1, 0, '╮', nil, borderStyle)
	s.SetContent(0, h-1, '╰', nil, borderStyle)
	s.SetContent(w-1, h-1, '╯', nil, borderStyle)
}

func drawStatus(s tcell.Screen, y int, text string) {
	width, _ := s.Size()
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			break
		}
		s.SetContent(x, y, r, nil, statusStyle)
		x += max(w, 1)
	}
}

// keyLabel renders a keymap entry as shown in the help screen.
func keyLabel(km map[string]config.Keybinding, action, fallback string) string {
	kb, ok := km[action]
	if !ok || kb.Key == "" {
		return fallback
	}
	return strings.ToUpper(string(kb.Key[:1])) + string(kb.Key[1:])
}

func drawHelp(s tcell.Screen, km map[string]config.Keybinding) {
	width, height := s.Size()
	lines := []string{
		"Help:",
		fmt.Sprintf("- %s: Quit  %s: Save  %s/F1: Help",
			keyLabel(km, "quit", "Ctrl+q"), keyLabel(km, "save", "Ctrl+s"), keyLabel(km, "help", "Ctrl+g")),
		"- Modes: command (default), insert (i)",
		"- Insert mode: Esc or Tab returns to command mode",
		"- j/k: Back/forward a character   l/;: Previous/next line",
		"- b/w/e: Word start/next word/word end",
		"- m: Set mark   ,: Kill region   p: Paste   y: Older kill",
		"- u/r: Undo/redo",
		"- a: Toggle spell check   n: Next misspelling",
		"- s: Suggestions   c: Complete   A: Add word to dictionary",
		"- ?: Toggle this help   q: Quit",
	}
	y := max((height-len(lines))/2, 0)
	for i, line := range lines {
		x := max((width-runewidth.StringWidth(line))/2, 0)
		for _, r := range line {
			s.SetContent(x, y+i, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
			x += max(runewidth.RuneWidth(r), 1)
		}
	}
	s.Show()
}
