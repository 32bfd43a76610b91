package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hope in Rajasthan", "hope-in-rajasthan"},
		{"  Leading & Trailing!  ", "leading-trailing"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"Multiple   Spaces\tAnd\nNewlines", "multiple-spaces-and-newlines"},
		{"100% Organic: Farming!", "100-organic-farming"},
		{"Café Crème Stories", "caf-crme-stories"},
		{"सेवा की कहानी", "post"},
		{"***", "post"},
		{"", "post"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}
