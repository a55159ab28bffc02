// file: internals/features/blog/model/blog_post_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostModel struct {
	BlogPostID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:blog_post_id" json:"blog_post_id"`
	BlogPostTitle       string     `gorm:"type:varchar(200);not null;column:blog_post_title" json:"blog_post_title"`
	BlogPostSlug        string     `gorm:"type:varchar(160);not null;uniqueIndex:uq_blog_posts_slug;column:blog_post_slug" json:"blog_post_slug"`
	BlogPostContent     string     `gorm:"type:text;not null;column:blog_post_content" json:"blog_post_content"`
	BlogPostExcerpt     *string    `gorm:"type:text;column:blog_post_excerpt" json:"blog_post_excerpt,omitempty"`
	BlogPostImageURL    *string    `gorm:"type:text;column:blog_post_image_url" json:"blog_post_image_url,omitempty"`
	BlogPostCategory    *string    `gorm:"type:varchar(80);column:blog_post_category" json:"blog_post_category,omitempty"`
	BlogPostIsPublished bool       `gorm:"not null;default:false;column:blog_post_is_published;index:idx_blog_posts_published" json:"blog_post_is_published"`
	BlogPostPublishedAt *time.Time `gorm:"type:timestamptz;column:blog_post_published_at" json:"blog_post_published_at,omitempty"`

	BlogPostCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:blog_post_created_at" json:"blog_post_created_at"`
	BlogPostUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:blog_post_updated_at" json:"blog_post_updated_at"`
	BlogPostDeletedAt gorm.DeletedAt `gorm:"column:blog_post_deleted_at;index" json:"blog_post_deleted_at,omitempty"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
