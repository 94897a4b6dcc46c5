package dictionary

// fallbackEntries are served when the word services cannot be reached.
var fallbackEntries = []Entry{
	{"apple", "A round fruit with red or green skin and crisp flesh"},
	{"book", "A written or printed work consisting of pages"},
	{"chair", "A separate seat for one person, with a back and four legs"},
	{"dance", "Move rhythmically to music"},
	{"energy", "The strength and vitality required for sustained activity"},
	{"friend", "A person with whom one has a bond of mutual affection"},
	{"garden", "A piece of ground for growing flowers, fruit, or vegetables"},
	{"house", "A building for human habitation"},
	{"island", "A piece of land surrounded by water"},
	{"jungle", "An area of land overgrown with dense vegetation"},
}

// Fallback returns a copy of the built-in offline word list.
func Fallback() []Entry {
	return append([]Entry(nil), fallbackEntries...)
}
