package oracle

import (
	"log"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

// Truncator caps input text at a token count before it reaches a backend.
type Truncator interface {
	Truncate(text string, maxTokens int) string
}

// TokenTruncator counts tokens with a BPE encoding. The encoding is loaded on
// first use; if it cannot be loaded, whitespace words stand in for tokens.
type TokenTruncator struct {
	encoding string
	once     sync.Once
	enc      *tiktoken.Tiktoken
}

func NewTokenTruncator(encoding string) *TokenTruncator {
	return &TokenTruncator{encoding: encoding}
}

func (t *TokenTruncator) load() {
	enc, err := tiktoken.GetEncoding(t.encoding)
	if err != nil {
		log.Printf("[WARN] Token encoding %q unavailable, truncating by words: %v", t.encoding, err)
		return
	}
	t.enc = enc
}

func (t *TokenTruncator) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}
	t.once.Do(t.load)
	if t.enc == nil {
		return WordTruncator{}.Truncate(text, maxTokens)
	}

	tokens := t.enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return t.enc.Decode(tokens[:maxTokens])
}

// WordTruncator treats each whitespace-separated word as one token.
type WordTruncator struct{}

func (WordTruncator) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) <= maxTokens {
		return text
	}
	return strings.Join(words[:maxTokens], " ")
}
