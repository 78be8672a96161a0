// Package history records buffer edits for undo and redo, and keeps the
// ring of killed regions.
package history

import (
	"errors"

	"example.com/lexedit/pkg/buffer"
)

var (
	// ErrNothingToUndo is returned by Undo on an empty past.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo on an empty future.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Kind tells whether an Edit inserted or deleted text.
type Kind int

const (
	Insert Kind = iota
	Delete
)

// Edit is one reversible change. Pos is a rune index.
type Edit struct {
	Kind Kind
	Pos  int
	Text []rune
}

func (e Edit) end() int { return e.Pos + len(e.Text) }

// History keeps stacks of past and undone edits.
type History struct {
	past   []Edit
	future []Edit
	// sealed stops the next edit from merging into the last one.
	sealed bool
}

// New creates an empty History.
func New() *History { return &History{} }

// RecordInsert records text inserted at pos. Consecutive single-position
// typing merges into one edit so a typed word undoes in one step.
func (h *History) RecordInsert(pos int, text string) {
	h.record(Edit{Kind: Insert, Pos: pos, Text: []rune(text)})
}

// RecordDelete records text removed from pos.
func (h *History) RecordDelete(pos int, text string) {
	h.record(Edit{Kind: Delete, Pos: pos, Text: []rune(text)})
}

func (h *History) record(e Edit) {
	if len(e.Text) == 0 {
		return
	}
	h.future = nil
	if n := len(h.past); n > 0 && !h.sealed {
		last := &h.past[n-1]
		switch {
		case e.Kind == Insert && last.Kind == Insert && e.Pos == last.end():
			last.Text = append(last.Text, e.Text...)
			return
		case e.Kind == Delete && last.Kind == Delete && e.end() == last.Pos:
			// backspacing: the new deletion sits just before the last one
			last.Text = append(append([]rune{}, e.Text...), last.Text...)
			last.Pos = e.Pos
			return
		}
	}
	h.past = append(h.past, e)
	h.sealed = false
}

// Seal ends the current run of merged edits.
func (h *History) Seal() { h.sealed = true }

// CanUndo reports whether there is an edit to undo.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether there is an edit to redo.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Undo reverts the last edit in buf and returns the position the cursor
// should move to.
func (h *History) Undo(buf buffer.TextStorage) (int, error) {
	if !h.CanUndo() {
		return 0, ErrNothingToUndo
	}
	e := h.past[len(h.past)-1]
	if err := apply(buf, e, true); err != nil {
		return 0, err
	}
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, e)
	h.sealed = true
	if e.Kind == Insert {
		return e.Pos, nil
	}
	return e.end(), nil
}

// Redo reapplies the last undone edit and returns the new cursor position.
func (h *History) Redo(buf buffer.TextStorage) (int, error) {
	if !h.CanRedo() {
		return 0, ErrNothingToRedo
	}
	e := h.future[len(h.future)-1]
	if err := apply(buf, e, false); err != nil {
		return 0, err
	}
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, e)
	h.sealed = true
	if e.Kind == Insert {
		return e.end(), nil
	}
	return e.Pos, nil
}

func apply(buf buffer.TextStorage, e Edit, inverse bool) error {
	insert := e.Kind == Insert
	if inverse {
		insert = !insert
	}
	if insert {
		return buf.Insert(e.Pos, e.Text)
	}
	return buf.Delete(e.Pos, e.end())
}
