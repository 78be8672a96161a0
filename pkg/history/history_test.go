package history

import (
	"errors"
	"testing"

	"example.com/lexedit/pkg/buffer"
)

func TestHistory_UndoRedo_InsertDelete(t *testing.T) {
	b := buffer.NewGapBufferFromString("abc")
	h := New()

	_ = b.Insert(1, []rune("X"))
	h.RecordInsert(1, "X")
	h.Seal()
	del := string(b.Slice(2, 3))
	_ = b.Delete(2, 3)
	h.RecordDelete(2, del)
	if b.String() != "aXc" {
		t.Fatalf("expected aXc, got %q", b.String())
	}

	cur, err := h.Undo(b)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if b.String() != "aXbc" || cur != 3 {
		t.Fatalf("expected aXbc with cursor 3, got %q cursor %d", b.String(), cur)
	}
	cur, err = h.Undo(b)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if b.String() != "abc" || cur != 1 {
		t.Fatalf("expected abc with cursor 1, got %q cursor %d", b.String(), cur)
	}
	if _, err := h.Undo(b); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}

	cur, err = h.Redo(b)
	if err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if b.String() != "aXbc" || cur != 2 {
		t.Fatalf("expected aXbc with cursor 2, got %q cursor %d", b.String(), cur)
	}
}

func TestHistory_TypingMergesIntoOneEdit(t *testing.T) {
	b := buffer.NewGapBuffer(0)
	h := New()
	for i, r := range "cat" {
		_ = b.Insert(i, []rune{r})
		h.RecordInsert(i, string(r))
	}
	if _, err := h.Undo(b); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected whole word undone, got %q", b.String())
	}
	if h.CanUndo() {
		t.Fatalf("expected a single merged edit")
	}
}

func TestHistory_BackspacesMerge(t *testing.T) {
	b := buffer.NewGapBufferFromString("hello")
	h := New()
	for pos := 5; pos > 2; pos-- {
		text := string(b.Slice(pos-1, pos))
		_ = b.Delete(pos-1, pos)
		h.RecordDelete(pos-1, text)
	}
	if b.String() != "he" {
		t.Fatalf("expected he, got %q", b.String())
	}
	cur, err := h.Undo(b)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if b.String() != "hello" || cur != 5 {
		t.Fatalf("expected hello with cursor 5, got %q cursor %d", b.String(), cur)
	}
}

func TestHistory_NewEditClearsRedo(t *testing.T) {
	b := buffer.NewGapBufferFromString("a")
	h := New()
	_ = b.Insert(1, []rune("b"))
	h.RecordInsert(1, "b")
	_, _ = h.Undo(b)
	h.RecordInsert(1, "c")
	if h.CanRedo() {
		t.Fatalf("expected redo stack cleared by new edit")
	}
}

func TestKillRing(t *testing.T) {
	var k KillRing
	if k.Current() != "" || k.Rotate() {
		t.Fatalf("expected empty ring")
	}
	k.Push("one")
	k.Push("two")
	k.Push("")
	if k.Len() != 2 || k.Current() != "two" {
		t.Fatalf("expected newest entry current, got %q (len %d)", k.Current(), k.Len())
	}
	if !k.Rotate() || k.Current() != "one" {
		t.Fatalf("expected rotation to older entry, got %q", k.Current())
	}
	for i := 0; i < 20; i++ {
		k.Push("x")
	}
	if k.Len() != killRingMax {
		t.Fatalf("expected ring capped at %d, got %d", killRingMax, k.Len())
	}
}
