package models_test

import (
	"strings"
	"testing"

	"github.com/rpupo63/corporate-site-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Top Investment Opportunities in African Infrastructure Development": "top-investment-opportunities-in-african-infrastructure-development",
		"Breaking: Major Mining Discoveries!":                                "breaking-major-mining-discoveries",
		"  --Hello,   World--  ":                                             "hello-world",
		"Investment Analyst Internship (Harare) - Join GRI":                  "investment-analyst-internship-harare-join-gri",
		"Café 2024":                                                          "caf-2024",
		"!!!":                                                                "",
	}
	for title, want := range cases {
		assert.Equal(t, want, models.GenerateSlug(title), title)
	}
}

func TestCalculateReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	assert.Equal(t, 0, models.CalculateReadingTime(""))
	assert.Equal(t, 1, models.CalculateReadingTime(words(1)))
	assert.Equal(t, 1, models.CalculateReadingTime(words(200)))
	assert.Equal(t, 2, models.CalculateReadingTime(words(201)))
	assert.Equal(t, 2, models.CalculateReadingTime(words(400)))
	assert.Equal(t, 3, models.CalculateReadingTime(words(401)))
	assert.Equal(t, 1, models.CalculateReadingTime("tabs\tand\nnewlines   count once"))
}

func TestDeriveExcerpt(t *testing.T) {
	content := "# Heading\n\nsecond paragraph"
	assert.Equal(t, "Heading", models.DeriveExcerpt(content))

	assert.Equal(t, "bold and code", models.DeriveExcerpt("**bold** and `code`"))

	long := strings.Repeat("a", 200)
	excerpt := models.DeriveExcerpt(long)
	assert.Equal(t, strings.Repeat("a", 160)+"...", excerpt)

	exact := strings.Repeat("b", 160)
	assert.Equal(t, exact, models.DeriveExcerpt(exact))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, models.ValidStatus(models.StatusDraft))
	assert.True(t, models.ValidStatus(models.StatusPublished))
	assert.True(t, models.ValidStatus(models.StatusArchived))
	assert.False(t, models.ValidStatus(""))
	assert.False(t, models.ValidStatus("deleted"))
}

func TestBlogPostCloneDoesNotShareTags(t *testing.T) {
	post := models.BlogPost{Tags: []string{"a", "b"}}
	clone := post.Clone()
	clone.Tags[0] = "changed"
	assert.Equal(t, "a", post.Tags[0])
}
