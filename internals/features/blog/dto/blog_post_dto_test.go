package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "churchheroes_backend/internals/features/blog/model"
)

func TestCreateStampsPublishedAt(t *testing.T) {
	published := true
	m := (&CreateBlogPostRequest{
		BlogPostTitle:       "Easter Service",
		BlogPostContent:     "He is risen.",
		BlogPostIsPublished: &published,
	}).ToModel()

	assert.True(t, m.BlogPostIsPublished)
	require.NotNil(t, m.BlogPostPublishedAt)
	assert.WithinDuration(t, time.Now(), *m.BlogPostPublishedAt, time.Minute)
}

func TestCreateDraftHasNoPublishedAt(t *testing.T) {
	m := (&CreateBlogPostRequest{
		BlogPostTitle:   "Draft",
		BlogPostContent: "Work in progress.",
	}).ToModel()

	assert.False(t, m.BlogPostIsPublished)
	assert.Nil(t, m.BlogPostPublishedAt)
}

func TestCreateKeepsExplicitPublishedAt(t *testing.T) {
	published := true
	at := time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC)
	m := (&CreateBlogPostRequest{
		BlogPostTitle:       "Christmas",
		BlogPostContent:     "Scheduled for Christmas morning.",
		BlogPostIsPublished: &published,
		BlogPostPublishedAt: &at,
	}).ToModel()

	require.NotNil(t, m.BlogPostPublishedAt)
	assert.Equal(t, at, *m.BlogPostPublishedAt)
}

func TestUpdatePublishStampsOnce(t *testing.T) {
	m := &model.BlogPostModel{
		BlogPostTitle:   "Draft",
		BlogPostContent: "text",
	}

	published := true
	(&UpdateBlogPostRequest{BlogPostIsPublished: &published}).ApplyTo(m)
	require.NotNil(t, m.BlogPostPublishedAt)
	first := *m.BlogPostPublishedAt

	// unpublish keeps the original timestamp
	unpublished := false
	(&UpdateBlogPostRequest{BlogPostIsPublished: &unpublished}).ApplyTo(m)
	assert.False(t, m.BlogPostIsPublished)
	require.NotNil(t, m.BlogPostPublishedAt)
	assert.Equal(t, first, *m.BlogPostPublishedAt)

	// re-publish does not rewrite history
	(&UpdateBlogPostRequest{BlogPostIsPublished: &published}).ApplyTo(m)
	assert.Equal(t, first, *m.BlogPostPublishedAt)
}

func TestUpdatePatchesOnlyPresentFields(t *testing.T) {
	excerpt := "old excerpt"
	m := &model.BlogPostModel{
		BlogPostTitle:   "Original",
		BlogPostContent: "body",
		BlogPostExcerpt: &excerpt,
	}

	title := "Renamed"
	(&UpdateBlogPostRequest{BlogPostTitle: &title}).ApplyTo(m)

	assert.Equal(t, "Renamed", m.BlogPostTitle)
	assert.Equal(t, "body", m.BlogPostContent)
	require.NotNil(t, m.BlogPostExcerpt)
	assert.Equal(t, "old excerpt", *m.BlogPostExcerpt)
}
