package openai

import "strings"

// punctuation stripped from extracted entities. Hyphens stay so terms like
// "x-ray" survive normalization.
const punctuation = ".,!?;:\"'()[]{}"

// scrubString drops punctuation and surrounding whitespace.
func scrubString(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
