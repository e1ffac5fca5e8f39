package refiner

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize lowercases text and returns its vocabulary terms: runs of two or
// more letters, digits or underscores that are not stop words.
func Tokenize(text string) []string {
	text = strings.ToLower(norm.NFC.String(text))

	var terms []string
	var current strings.Builder
	runes := 0
	flush := func() {
		if runes >= 2 {
			term := current.String()
			if !IsStopWord(term) {
				terms = append(terms, term)
			}
		}
		current.Reset()
		runes = 0
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()
	return terms
}

// SalienceScores treats each sentence as a document and returns, per
// sentence, the sum of its L2-normalized TF-IDF weights. Sentences without
// vocabulary terms score 0.
func SalienceScores(sentences []string) []float64 {
	n := len(sentences)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}

	counts := make([]map[string]int, n)
	df := make(map[string]int)
	for i, s := range sentences {
		counts[i] = make(map[string]int)
		for _, term := range Tokenize(s) {
			counts[i][term]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}

	for i, tf := range counts {
		terms := make([]string, 0, len(tf))
		for term := range tf {
			terms = append(terms, term)
		}
		// fixed summation order keeps scores bit-identical across runs
		sort.Strings(terms)

		var sum, sumSquares float64
		for _, term := range terms {
			c := tf[term]
			idf := math.Log(float64(1+n)/float64(1+df[term])) + 1
			w := float64(c) * idf
			sum += w
			sumSquares += w * w
		}
		if sumSquares > 0 {
			scores[i] = sum / math.Sqrt(sumSquares)
		}
	}
	return scores
}
