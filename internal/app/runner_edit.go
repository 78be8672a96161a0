package app

import "example.com/lexedit/pkg/lexicon"

// isWordRune reports whether r can be part of a word.
func isWordRune(r rune) bool { return !lexicon.IsDelimiter(r) }

// insertText inserts text at the current cursor, records history, and updates state.
func (r *Runner) insertText(text string) {
	if text == "" {
		return
	}
	runes := []rune(text)
	if err := r.Buf.Insert(r.Cursor, runes); err != nil {
		r.Message = "[" + err.Error() + "]"
		return
	}
	r.History.RecordInsert(r.Cursor, text)
	if r.MarkSet && r.Mark > r.Cursor {
		r.Mark += len(runes)
	}
	r.Cursor += len(runes)
	r.edited()
}

// deleteRange deletes [start,end) and records it for undo.
func (r *Runner) deleteRange(start, end int) string {
	start = max(start, 0)
	end = min(end, r.Buf.Len())
	if start >= end {
		return ""
	}
	text := string(r.Buf.Slice(start, end))
	if err := r.Buf.Delete(start, end); err != nil {
		r.Message = "[" + err.Error() + "]"
		return ""
	}
	r.History.RecordDelete(start, text)
	r.Cursor = shiftForDelete(r.Cursor, start, end)
	if r.MarkSet {
		r.Mark = shiftForDelete(r.Mark, start, end)
	}
	r.edited()
	return text
}

func shiftForDelete(pos, start, end int) int {
	switch {
	case pos >= end:
		return pos - (end - start)
	case pos > start:
		return start
	}
	return pos
}

// edited marks the buffer dirty and refreshes spell highlights.
func (r *Runner) edited() {
	r.Dirty = true
	r.recheck()
}

func (r *Runner) moveCursor(delta int) {
	r.Cursor = min(max(r.Cursor+delta, 0), r.Buf.Len())
}

// moveCursorVertical moves the cursor up or down by delta lines, preserving the column when possible.
func (r *Runner) moveCursorVertical(delta int) {
	if r.Buf.Len() == 0 {
		return
	}
	line := r.Buf.LineOf(r.Cursor)
	lineStart, _ := r.Buf.LineAt(line)
	col := r.Cursor - lineStart
	start, end := r.Buf.LineAt(line + delta)
	lineLen := end - start
	if lineLen > 0 && r.Buf.RuneAt(end-1) == '\n' {
		lineLen--
	}
	r.Cursor = start + min(col, lineLen)
}

func (r *Runner) setMark() {
	r.Mark = r.Cursor
	r.MarkSet = true
	r.Message = "[mark set]"
}

// region returns the ordered bounds between mark and cursor.
func (r *Runner) region() (start, end int, ok bool) {
	if !r.MarkSet {
		return 0, 0, false
	}
	start, end = r.Mark, r.Cursor
	if start > end {
		start, end = end, start
	}
	return min(start, r.Buf.Len()), min(end, r.Buf.Len()), true
}

// killRegion removes the text between mark and cursor onto the kill ring.
func (r *Runner) killRegion() {
	start, end, ok := r.region()
	if !ok {
		r.Message = "[no mark set]"
		return
	}
	r.History.Seal()
	text := r.deleteRange(start, end)
	r.History.Seal()
	r.MarkSet = false
	r.KillRing.Push(text)
	r.Logger.Event("action", map[string]any{"name": "kill.region", "text": text, "cursor": r.Cursor, "buffer_len": r.Buf.Len()})
}

// paste inserts the most recent kill at the cursor.
func (r *Runner) paste() {
	text := r.KillRing.Current()
	if text == "" {
		r.Message = "[kill ring is empty]"
		return
	}
	start := r.Cursor
	r.History.Seal()
	r.insertText(text)
	r.History.Seal()
	r.lastPaste = &pasteSpan{start, r.Cursor}
	r.Logger.Event("action", map[string]any{"name": "paste", "text": text, "cursor": r.Cursor, "buffer_len": r.Buf.Len()})
}

// yankPop replaces the text pasted by the previous key with the next older
// kill. Repeating it walks further back around the ring.
func (r *Runner) yankPop() {
	sp := r.prevPaste
	if sp == nil {
		r.Message = "[previous command was not a paste]"
		return
	}
	if !r.KillRing.Rotate() {
		r.Message = "[kill ring has only one entry]"
		r.lastPaste = sp
		return
	}
	text := r.KillRing.Current()
	r.History.Seal()
	r.deleteRange(sp.start, sp.end)
	r.Cursor = sp.start
	r.insertText(text)
	r.History.Seal()
	r.lastPaste = &pasteSpan{sp.start, r.Cursor}
	r.Logger.Event("action", map[string]any{"name": "yank.pop", "text": text, "cursor": r.Cursor, "buffer_len": r.Buf.Len()})
}

func (r *Runner) undo() {
	pos, err := r.History.Undo(r.Buf)
	if err != nil {
		r.Message = "[" + err.Error() + "]"
		return
	}
	r.afterHistory(pos, "undo")
}

func (r *Runner) redo() {
	pos, err := r.History.Redo(r.Buf)
	if err != nil {
		r.Message = "[" + err.Error() + "]"
		return
	}
	r.afterHistory(pos, "redo")
}

func (r *Runner) afterHistory(pos int, name string) {
	r.Cursor = min(pos, r.Buf.Len())
	r.Mark = min(r.Mark, r.Buf.Len())
	r.edited()
	r.Logger.Event("action", map[string]any{"name": name, "cursor": r.Cursor, "buffer_len": r.Buf.Len()})
}
