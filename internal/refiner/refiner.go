// Package refiner trims text to a word budget by keeping its most salient
// whole sentences.
package refiner

import (
	"sort"
	"strings"
)

// ScoredSentence is a sentence with its salience and original position.
type ScoredSentence struct {
	Text     string
	Score    float64
	Position int
	Words    int
}

// Rank splits text into sentences and orders them by descending salience.
// Equal scores keep their original document order.
func Rank(text string) []ScoredSentence {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	scores := SalienceScores(sentences)
	ranked := make([]ScoredSentence, len(sentences))
	for i, s := range sentences {
		ranked[i] = ScoredSentence{
			Text:     s,
			Score:    scores[i],
			Position: i,
			Words:    CountWords(s),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Refine returns the highest-scoring sentences of text that fit within
// wordBudget words, in score order, joined by single spaces.
//
// Selection is greedy and stops at the first sentence that would overflow
// the budget; lower-ranked sentences are not considered after that point.
// A non-positive budget yields the empty string.
func Refine(text string, wordBudget int) string {
	if wordBudget <= 0 {
		return ""
	}

	var selected []string
	used := 0
	for _, s := range Rank(text) {
		if used+s.Words > wordBudget {
			break
		}
		selected = append(selected, s.Text)
		used += s.Words
	}

	return strings.TrimRight(strings.Join(selected, " "), " \t\r\n")
}
