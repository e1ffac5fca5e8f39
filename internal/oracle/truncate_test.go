package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordTruncator(t *testing.T) {
	tr := WordTruncator{}

	assert.Equal(t, "one two three", tr.Truncate("one two three", 5))
	assert.Equal(t, "one two", tr.Truncate("one  two\nthree four", 2))
	assert.Equal(t, "left alone", tr.Truncate("left alone", 0))
}

func TestTokenTruncatorFallsBackToWords(t *testing.T) {
	tr := NewTokenTruncator("no-such-encoding")

	assert.Equal(t, "a b c", tr.Truncate("a b c d e", 3))
	assert.Nil(t, tr.enc)
}
