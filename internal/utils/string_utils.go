package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	reScript  = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle   = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
	stripTags = bluemonday.StripTagsPolicy()
)

// SanitizeHTML strips HTML tags, script/style content, and decodes entities
func SanitizeHTML(s string) string {
	// Decode entities first so escaped tags are recognized
	s = html.UnescapeString(s)

	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")
	s = stripTags.Sanitize(s)

	// bluemonday escapes what it keeps; we want plain text
	s = html.UnescapeString(s)

	return strings.Join(strings.Fields(s), " ")
}

// ToValidUTF8 cleans strings to ensure they are valid UTF-8
func ToValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}
