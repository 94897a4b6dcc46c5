package wordle

// KeyStatus is the best feedback a key has received so far.
// Values are ordered by priority.
type KeyStatus int

const (
	KeyNone KeyStatus = iota
	KeyAbsent
	KeyPresent
	KeyExact
)

// String returns the lowercase name of the status.
func (k KeyStatus) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyAbsent:
		return "absent"
	case KeyPresent:
		return "present"
	case KeyExact:
		return "exact"
	default:
		return "unknown"
	}
}

// StatusFor maps tile feedback to the key status it implies.
func StatusFor(f Feedback) KeyStatus {
	switch f {
	case Exact:
		return KeyExact
	case Present:
		return KeyPresent
	default:
		return KeyAbsent
	}
}

// Keyboard tracks the status of every key that appeared in a guess.
// A status only ever moves up: Exact beats Present beats Absent.
type Keyboard struct {
	status map[rune]KeyStatus
}

// NewKeyboard creates a keyboard with no known keys.
func NewKeyboard() *Keyboard {
	return &Keyboard{status: make(map[rune]KeyStatus)}
}

// Apply upgrades the keys of a committed row.
func (k *Keyboard) Apply(row GuessRow) {
	for _, t := range row {
		if s := StatusFor(t.Feedback); s > k.status[t.Char] {
			k.status[t.Char] = s
		}
	}
}

// Status returns the status of r, KeyNone if it has not been guessed.
func (k *Keyboard) Status(r rune) KeyStatus {
	return k.status[r]
}

// Snapshot returns a copy of every known key status.
func (k *Keyboard) Snapshot() map[rune]KeyStatus {
	out := make(map[rune]KeyStatus, len(k.status))
	for r, s := range k.status {
		out[r] = s
	}
	return out
}

// Reset forgets all keys.
func (k *Keyboard) Reset() {
	clear(k.status)
}
