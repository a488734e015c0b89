package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tags := ExtractHashtags("Shipping #Go and #mongodb today. #go again!")
	assert.Equal(t, []string{"#go", "#mongodb"}, tags)
}

func TestExtractHashtagsNone(t *testing.T) {
	assert.Nil(t, ExtractHashtags("no tags here"))
}

func TestSlugify(t *testing.T) {
	slug := Slugify("Hello, World! -- A Blog Post")
	assert.True(t, strings.HasPrefix(slug, "hello-world-a-blog-post-"), slug)
	assert.Regexp(t, `^[a-z0-9-]+$`, slug)
}

func TestSlugifyDistinct(t *testing.T) {
	a := Slugify("Same Title")
	b := Slugify("Same Title")
	assert.NotEqual(t, a, b)
}

func TestSlugifyEmptyTitle(t *testing.T) {
	assert.NotEmpty(t, Slugify("!!!"))
}
