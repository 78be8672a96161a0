package app

import (
	"strings"
	"testing"

	"example.com/lexedit/pkg/config"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

// rowText reads n cells of row y starting at column x.
func rowText(s tcell.Screen, x, y, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		b.WriteRune(r)
	}
	return b.String()
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func foreground(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

func TestLayoutRows(t *testing.T) {
	type got struct {
		Text    string
		End     int
		Wrapped bool
	}
	flatten := func(rows []row) []got {
		var out []got
		for _, rw := range rows {
			var b strings.Builder
			for _, c := range rw.cells {
				b.WriteRune(c.r)
			}
			out = append(out, got{b.String(), rw.end, rw.wrapped})
		}
		return out
	}
	tests := []struct {
		name   string
		text   string
		width  int
		cursor int
		want   []got
	}{
		{"empty", "", 4, 0, []got{{"", 0, false}}},
		{"wrap and newline", "abcdef\ngh", 4, 0, []got{{"abcd", 4, true}, {"ef", 6, false}, {"gh", 9, false}}},
		{"trailing newline", "ab\n", 4, 0, []got{{"ab", 2, false}, {"", 3, false}}},
		{"wide runes", "日本語", 4, 0, []got{{"日本", 2, true}, {"語", 3, false}}},
		{"full row elsewhere", "abcd", 4, 0, []got{{"abcd", 4, false}}},
		{"cursor past full last row", "abcd", 4, 4, []got{{"abcd", 4, true}, {"", 4, false}}},
		{"cursor past full line", "abcd\nx", 4, 4, []got{{"abcd", 4, true}, {"", 4, false}, {"x", 6, false}}},
		{"cursor past full wide row", "日本", 4, 2, []got{{"日本", 2, true}, {"", 2, false}}},
		{"wide rune in narrowest view", "a日", 2, 0, []got{{"a", 1, true}, {"日", 2, false}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, flatten(layoutRows([]rune(tt.text), tt.width, tt.cursor))); diff != "" {
				t.Fatalf("rows (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCursorRow(t *testing.T) {
	for pos, want := range map[int]int{0: 0, 3: 0, 4: 1, 6: 1, 7: 2, 9: 2} {
		rows := layoutRows([]rune("abcdef\ngh"), 4, pos)
		if got := cursorRow(rows, pos); got != want {
			t.Fatalf("cursorRow(%d) = %d, want %d", pos, got, want)
		}
	}
	// a cursor just past a full row lands on the empty row after it
	rows := layoutRows([]rune("abcd"), 4, 4)
	if got := cursorRow(rows, 4); got != 1 {
		t.Fatalf("cursorRow after full row = %d, want 1", got)
	}
}

func TestViewSize(t *testing.T) {
	tests := []struct {
		sw, sh int
		view   config.ViewConfig
		w, h   int
	}{
		{80, 24, config.ViewConfig{Width: 40, Height: 10}, 40, 10},
		{20, 8, config.ViewConfig{Width: 40, Height: 10}, 18, 5},
		{80, 24, config.ViewConfig{}, 78, 21},
		{80, 24, config.ViewConfig{Width: 1, Height: 3}, 2, 3},
		{2, 5, config.ViewConfig{}, 2, 2},
	}
	for _, tt := range tests {
		w, h := viewSize(tt.sw, tt.sh, tt.view)
		if w != tt.w || h != tt.h {
			t.Fatalf("viewSize(%d, %d, %+v) = %dx%d, want %dx%d", tt.sw, tt.sh, tt.view, w, h, tt.w, tt.h)
		}
	}
}

func TestDraw_BoxTextAndStatus(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	r := newRunner("hello world")
	r.Screen = s
	r.View = config.ViewConfig{Width: 10, Height: 3}
	r.FilePath = "f.txt"
	r.draw()

	if got := rowText(s, 0, 0, 12); got != "╭──────────╮" {
		t.Fatalf("unexpected top border %q", got)
	}
	if got := rowText(s, 0, 4, 12); got != "╰──────────╯" {
		t.Fatalf("unexpected bottom border %q", got)
	}
	if got := rowText(s, 1, 1, 10); got != "hello worl" {
		t.Fatalf("unexpected first row %q", got)
	}
	if got := rowText(s, 1, 2, 1); got != "d" {
		t.Fatalf("expected wrapped row to start with d, got %q", got)
	}
	if got := background(s, 1, 1); got != tcell.ColorGray {
		t.Fatalf("expected cursor cell gray, got %v", got)
	}
	if got := rowText(s, 0, 5, 15); got != "command | f.txt" {
		t.Fatalf("unexpected status line %q", got)
	}
}

func TestDraw_CursorAtEndOfBuffer(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	r := newRunner("ab")
	r.Screen = s
	r.Cursor = 2
	r.draw()
	if got := background(s, 3, 1); got != tcell.ColorGray {
		t.Fatalf("expected cursor placeholder after text, got %v", got)
	}
}

func TestDraw_CursorAtEndOfFullRow(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	r := newRunner("xxxxxxxxxx")
	r.Screen = s
	r.View = config.ViewConfig{Width: 10, Height: 5}
	r.Cursor = 10
	r.draw()
	for x := 1; x <= 10; x++ {
		if got := background(s, x, 1); got == tcell.ColorGray {
			t.Fatalf("unexpected cursor on the full row at (%d,1)", x)
		}
	}
	if got := background(s, 1, 2); got != tcell.ColorGray {
		t.Fatalf("expected cursor at the start of the next row, got %v", got)
	}
	if got := rowText(s, 11, 1, 1); got != "│" {
		t.Fatalf("expected right border intact, got %q", got)
	}

	// same for a full line followed by more text
	if err := r.Buf.Insert(10, []rune("\nyy")); err != nil {
		t.Fatal(err)
	}
	r.draw()
	if got := background(s, 1, 2); got != tcell.ColorGray {
		t.Fatalf("expected cursor on its own row before the next line, got %v", got)
	}
	if got := rowText(s, 1, 3, 2); got != "yy" {
		t.Fatalf("expected next line below the cursor row, got %q", got)
	}
}

func TestDraw_WideRuneInNarrowView(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	r := newRunner("日本")
	r.Screen = s
	r.View = config.ViewConfig{Width: 1, Height: 3}
	r.draw()
	if got := rowText(s, 3, 1, 1); got != "│" {
		t.Fatalf("expected right border after a two-cell view, got %q", got)
	}
	if ch, _, _, _ := s.GetContent(1, 2); ch != '本' {
		t.Fatalf("expected second rune on its own row, got %q", ch)
	}
}

func TestDraw_RegionAndMisspelling(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	r := newRunner("hello wrld", "hello")
	r.Screen = s
	r.Spell.Enabled = true
	r.recheck()
	r.Mark = 0
	r.MarkSet = true
	r.Cursor = 3
	r.draw()

	for x := 1; x <= 3; x++ {
		if got := background(s, x, 1); got != tcell.ColorGreen {
			t.Fatalf("expected region at (%d,1), got %v", x, got)
		}
	}
	if got := background(s, 4, 1); got != tcell.ColorGray {
		t.Fatalf("expected cursor at (4,1), got %v", got)
	}
	for x := 7; x <= 10; x++ {
		if got := foreground(s, x, 1); got != tcell.ColorRed {
			t.Fatalf("expected misspelling at (%d,1), got %v", x, got)
		}
	}
	if got := foreground(s, 5, 1); got == tcell.ColorRed {
		t.Fatalf("known word should not be highlighted")
	}
}

func TestDraw_ScrollsToCursor(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	r := newRunner("a\nb\nc\nd")
	r.Screen = s
	r.View = config.ViewConfig{Width: 10, Height: 2}
	r.Cursor = r.Buf.Len()
	r.draw()
	if r.TopLine != 2 {
		t.Fatalf("expected TopLine 2, got %d", r.TopLine)
	}
	if got := rowText(s, 1, 1, 1) + rowText(s, 1, 2, 1); got != "cd" {
		t.Fatalf("expected rows c and d visible, got %q", got)
	}
	r.Cursor = 0
	r.draw()
	if r.TopLine != 0 {
		t.Fatalf("expected scroll back to top, got %d", r.TopLine)
	}
}

func TestDraw_Help(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := newRunner("")
	r.Screen = s
	r.ShowHelp = true
	r.draw()
	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(s, 0, y, 80), "Ctrl+q: Quit") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected help screen listing the quit key")
	}
}
