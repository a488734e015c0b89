package utils

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases title, replaces runs of non-alphanumerics with single
// hyphens, and appends a short random suffix so two posts with the same title
// get distinct slugs.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 80 {
		s = strings.Trim(s[:80], "-")
	}
	suffix := bson.NewObjectID().Hex()
	suffix = suffix[len(suffix)-6:]
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}
