package utils

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{M}0-9_]+)`)

// ExtractHashtags returns the normalized (lowercase, '#'-prefixed) hashtags
// found in text, deduplicated in order of first appearance.
func ExtractHashtags(text string) []string {
	found := hashtagRe.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(found))
	out := make([]string, 0, len(found))
	for _, tag := range found {
		tag = strings.ToLower(tag)
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
