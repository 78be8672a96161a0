package buffer

// WordFunc reports whether r belongs to a word.
type WordFunc func(r rune) bool

// WordStart returns the index of the beginning of the word that ends at or
// before pos (Vim's 'b').
func WordStart(g *GapBuffer, pos int, isWord WordFunc) int {
	if g == nil || g.Len() == 0 {
		return 0
	}
	pos = min(pos, g.Len())
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWord(g.RuneAt(pos)) {
		pos--
	}
	for pos > 0 && isWord(g.RuneAt(pos-1)) {
		pos--
	}
	return pos
}

// WordEnd returns the index of the last rune of the word that begins at or
// after pos (Vim's 'e').
func WordEnd(g *GapBuffer, pos int, isWord WordFunc) int {
	n := g.Len()
	if n == 0 {
		return 0
	}
	if pos >= n {
		return n - 1
	}
	if isWord(g.RuneAt(pos)) && (pos == n-1 || !isWord(g.RuneAt(pos+1))) {
		pos++
	}
	for pos < n && !isWord(g.RuneAt(pos)) {
		pos++
	}
	for pos < n && isWord(g.RuneAt(pos)) {
		pos++
	}
	return max(pos-1, 0)
}

// NextWordStart returns the index of the start of the next word after pos
// (Vim's 'w'). It returns Len() when no word follows.
func NextWordStart(g *GapBuffer, pos int, isWord WordFunc) int {
	n := g.Len()
	for pos < n && isWord(g.RuneAt(pos)) {
		pos++
	}
	for pos < n && !isWord(g.RuneAt(pos)) {
		pos++
	}
	return min(pos, n)
}

// WordAt returns the bounds [start,end) of the word touching pos, looking
// at the rune under pos first and then the one before it. ok is false when
// neither is a word rune.
func WordAt(g *GapBuffer, pos int, isWord WordFunc) (start, end int, ok bool) {
	switch {
	case isWord(g.RuneAt(pos)) && pos < g.Len():
	case pos > 0 && isWord(g.RuneAt(pos-1)):
		pos--
	default:
		return 0, 0, false
	}
	start, end = pos, pos+1
	for start > 0 && isWord(g.RuneAt(start-1)) {
		start--
	}
	for end < g.Len() && isWord(g.RuneAt(end)) {
		end++
	}
	return start, end, true
}
