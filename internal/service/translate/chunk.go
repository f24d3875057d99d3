package translate

import "strings"

// splitChunks cuts text into pieces of at most limit runes, preferring
// paragraph, then line, then sentence, then word boundaries. Joining the
// pieces yields the original text.
func splitChunks(text string, limit int) []string {
	if limit <= 0 || runeLen(text) <= limit {
		return []string{text}
	}

	var chunks []string
	rest := text
	for runeLen(rest) > limit {
		cut := cutPoint(rest, limit)
		chunks = append(chunks, rest[:cut])
		rest = rest[cut:]
	}
	if rest != "" {
		chunks = append(chunks, rest)
	}
	return chunks
}

// cutPoint returns a byte offset inside the first limit runes of s.
func cutPoint(s string, limit int) int {
	window := prefixBytes(s, limit)
	head := s[:window]

	for _, sep := range []string{"\n\n", "\n", ". ", " "} {
		if idx := strings.LastIndex(head, sep); idx > 0 {
			return idx + len(sep)
		}
	}
	return window
}

// prefixBytes is the byte length of the first n runes of s.
func prefixBytes(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

func runeLen(s string) int {
	return len([]rune(s))
}
