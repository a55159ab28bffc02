package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Easter Sunday Service", "easter-sunday-service"},
		{"  Hello,  World!  ", "hello-world"},
		{"Already-Slugged", "already-slugged"},
		{"UPPER CASE", "upper-case"},
		{"multiple---dashes", "multiple-dashes"},
		{"trailing punctuation!!!", "trailing-punctuation"},
		{"###", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateSlugCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := GenerateSlug(long)
	assert.LessOrEqual(t, len(got), 160)
	assert.False(t, strings.HasSuffix(got, "-"))
}
