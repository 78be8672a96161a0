package history

const killRingMax = 10

// KillRing stores the most recent killed regions, newest first.
type KillRing struct {
	entries []string
	pos     int
}

// Push adds killed text to the front of the ring and makes it current.
func (k *KillRing) Push(s string) {
	if s == "" {
		return
	}
	k.entries = append([]string{s}, k.entries...)
	if len(k.entries) > killRingMax {
		k.entries = k.entries[:killRingMax]
	}
	k.pos = 0
}

// Rotate makes the next older entry current, wrapping at the end.
func (k *KillRing) Rotate() bool {
	if len(k.entries) <= 1 {
		return false
	}
	k.pos = (k.pos + 1) % len(k.entries)
	return true
}

// Current returns the current entry, or "" for an empty ring.
func (k *KillRing) Current() string {
	if len(k.entries) == 0 {
		return ""
	}
	return k.entries[k.pos]
}

// Len returns the number of entries in the ring.
func (k *KillRing) Len() int { return len(k.entries) }
