package sprint

import "regexp"

var wordRegex = regexp.MustCompile(`\b[-?(\w+)?]+\b`)

// CountWords counts the word-like tokens in text.
func CountWords(text string) int {
	return len(wordRegex.FindAllStringIndex(text, -1))
}
