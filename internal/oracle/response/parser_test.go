package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		instruction string
		want        string
	}{
		{"trims", "  A summary.  \n", "", "A summary."},
		{"collapses spaces", "Too    many\tspaces.", "", "Too many spaces."},
		{"drops label", "Summary: The gist.", "", "The gist."},
		{"drops tldr label", "TL;DR: The gist.", "", "The gist."},
		{"drops echoed instruction", "Summarize this: The gist.", "Summarize this: ", "The gist."},
		{"keeps bullets", "- one\n\n\n\n- two", "", "- one\n\n- two"},
		{"empty", "   ", "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Clean(test.text, test.instruction))
		})
	}
}
