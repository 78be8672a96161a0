package buffer

// TextStorage defines the editing operations undo history replays.
// Positions and lengths are expressed in runes (not bytes).
type TextStorage interface {
	Insert(pos int, s []rune) error
	Delete(start, end int) error
	Slice(start, end int) []rune
	Len() int
}

var _ TextStorage = (*GapBuffer)(nil)
