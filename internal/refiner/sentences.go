package refiner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations never end a sentence even when followed by a capital.
var abbreviations = toSet([]string{
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc", "e.g",
	"i.e", "u.s", "u.k", "inc", "ltd", "co", "corp", "no", "fig", "gen",
	"gov", "sen", "rep", "jan", "feb", "mar", "apr", "jun", "jul", "aug",
	"sep", "sept", "oct", "nov", "dec", "a.m", "p.m",
})

const closingMarks = `"')]}”’`

// SplitSentences breaks text into trimmed, non-empty sentences in document order.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != '.' && r != '!' && r != '?' {
			i += size
			continue
		}

		// absorb runs like "?!" or "..." and trailing quotes/brackets
		end := i + size
		for end < len(text) {
			next, n := utf8.DecodeRuneInString(text[end:])
			if next == '.' || next == '!' || next == '?' || strings.ContainsRune(closingMarks, next) {
				end += n
				continue
			}
			break
		}

		if isBoundary(text, start, i, r, end) {
			appendSentence(&sentences, text[start:end])
			start = end
		}
		i = end
	}
	appendSentence(&sentences, text[start:])
	return sentences
}

func appendSentence(sentences *[]string, s string) {
	if s = strings.TrimSpace(s); s != "" {
		*sentences = append(*sentences, s)
	}
}

// isBoundary decides whether the terminator at pos (ending at end) closes a sentence.
func isBoundary(text string, start, pos int, term rune, end int) bool {
	if end >= len(text) {
		return true
	}

	rest := text[end:]
	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(trimmed) == len(rest) {
		return false
	}
	if trimmed == "" {
		return true
	}

	next, _ := utf8.DecodeRuneInString(trimmed)
	if !unicode.IsUpper(next) && !unicode.IsDigit(next) && !strings.ContainsRune(`"'“‘(`, next) {
		return false
	}

	if term == '.' {
		word := lastWord(text[start:pos])
		if _, ok := abbreviations[strings.ToLower(word)]; ok {
			return false
		}
		// single initials such as "J. Smith"
		if utf8.RuneCountInString(word) == 1 {
			if r, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

func lastWord(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	word := s[idx+1:]
	return strings.TrimLeft(word, `"'(“‘`)
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
