package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "empty", text: "", limit: 10, want: nil},
		{name: "fits", text: "one\ntwo\n", limit: 10, want: []string{"one\ntwo\n"}},
		{name: "cut at last newline", text: "aaa\nbbb\nccc\n", limit: 9, want: []string{"aaa\nbbb\n", "ccc\n"}},
		{name: "hard cut without newline", text: "abcdefghij", limit: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "no limit", text: "abc", limit: 0, want: []string{"abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text, tt.limit))
		})
	}
}

func TestSplit_ReassemblesWithinLimit(t *testing.T) {
	var b strings.Builder
	for i := range 200 {
		b.WriteString(strings.Repeat("🟩", i%7))
		b.WriteString(" LOW (PLAYABLE)\n")
	}
	text := b.String()
	const limit = 95

	segments := Split(text, limit)
	assert.Greater(t, len(segments), 1)
	assert.Equal(t, text, strings.Join(segments, ""))
	for _, s := range segments {
		assert.LessOrEqual(t, utf8.RuneCountInString(s), limit)
		assert.True(t, utf8.ValidString(s))
		assert.True(t, strings.HasSuffix(s, "\n"))
	}
}
