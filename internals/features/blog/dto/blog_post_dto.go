// file: internals/features/blog/dto/blog_post_dto.go
package dto

import (
	"time"

	model "churchheroes_backend/internals/features/blog/model"
)

type CreateBlogPostRequest struct {
	BlogPostTitle       string     `json:"blog_post_title" validate:"required,max=200"`
	BlogPostSlug        *string    `json:"blog_post_slug" validate:"omitempty,max=160"`
	BlogPostContent     string     `json:"blog_post_content" validate:"required"`
	BlogPostExcerpt     *string    `json:"blog_post_excerpt" validate:"omitempty"`
	BlogPostImageURL    *string    `json:"blog_post_image_url" validate:"omitempty,url"`
	BlogPostCategory    *string    `json:"blog_post_category" validate:"omitempty,max=80"`
	BlogPostIsPublished *bool      `json:"blog_post_is_published" validate:"omitempty"`
	BlogPostPublishedAt *time.Time `json:"blog_post_published_at" validate:"omitempty"`
}

// ToModel maps the draft; publishing at create time stamps published_at when
// the caller did not supply one.
func (r *CreateBlogPostRequest) ToModel() *model.BlogPostModel {
	m := &model.BlogPostModel{
		BlogPostTitle:       r.BlogPostTitle,
		BlogPostContent:     r.BlogPostContent,
		BlogPostExcerpt:     r.BlogPostExcerpt,
		BlogPostImageURL:    r.BlogPostImageURL,
		BlogPostCategory:    r.BlogPostCategory,
		BlogPostIsPublished: r.BlogPostIsPublished != nil && *r.BlogPostIsPublished,
		BlogPostPublishedAt: r.BlogPostPublishedAt,
	}
	if m.BlogPostIsPublished && m.BlogPostPublishedAt == nil {
		now := time.Now()
		m.BlogPostPublishedAt = &now
	}
	return m
}

type UpdateBlogPostRequest struct {
	BlogPostTitle       *string    `json:"blog_post_title" validate:"omitempty,max=200"`
	BlogPostSlug        *string    `json:"blog_post_slug" validate:"omitempty,max=160"`
	BlogPostContent     *string    `json:"blog_post_content" validate:"omitempty"`
	BlogPostExcerpt     *string    `json:"blog_post_excerpt" validate:"omitempty"`
	BlogPostImageURL    *string    `json:"blog_post_image_url" validate:"omitempty,url"`
	BlogPostCategory    *string    `json:"blog_post_category" validate:"omitempty,max=80"`
	BlogPostIsPublished *bool      `json:"blog_post_is_published" validate:"omitempty"`
	BlogPostPublishedAt *time.Time `json:"blog_post_published_at" validate:"omitempty"`
}

// ApplyTo patches only the present fields. Publishing a post that has no
// published_at stamps it now; unpublishing keeps the old timestamp so a
// re-publish does not rewrite history.
func (r *UpdateBlogPostRequest) ApplyTo(m *model.BlogPostModel) {
	if r.BlogPostTitle != nil {
		m.BlogPostTitle = *r.BlogPostTitle
	}
	if r.BlogPostContent != nil {
		m.BlogPostContent = *r.BlogPostContent
	}
	if r.BlogPostExcerpt != nil {
		m.BlogPostExcerpt = r.BlogPostExcerpt
	}
	if r.BlogPostImageURL != nil {
		m.BlogPostImageURL = r.BlogPostImageURL
	}
	if r.BlogPostCategory != nil {
		m.BlogPostCategory = r.BlogPostCategory
	}
	if r.BlogPostPublishedAt != nil {
		m.BlogPostPublishedAt = r.BlogPostPublishedAt
	}
	if r.BlogPostIsPublished != nil {
		m.BlogPostIsPublished = *r.BlogPostIsPublished
		if m.BlogPostIsPublished && m.BlogPostPublishedAt == nil {
			now := time.Now()
			m.BlogPostPublishedAt = &now
		}
	}
}
