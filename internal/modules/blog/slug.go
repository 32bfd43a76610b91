package blog

import "strings"

// Slugify derives the URL-safe stem of a slug from a post title: lowercase
// ASCII letters, digits and hyphens only, with runs of whitespace and
// hyphens collapsed to single hyphens and the rest stripped. Titles with no
// usable characters fall back to "post". The caller appends a creation-time
// suffix to make the full slug unique.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '\t' || r == '\n':
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) == 0 {
		return "post"
	}
	return strings.Join(fields, "-")
}
