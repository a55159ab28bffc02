// file: internals/features/blog/controller/blog_post_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	dto "churchheroes_backend/internals/features/blog/dto"
	model "churchheroes_backend/internals/features/blog/model"
	helper "churchheroes_backend/internals/helpers"
)

const entityBlogPosts = "blog_posts"

type BlogPostController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     cache.Cacher
}

func NewBlogPostController(db *gorm.DB, cc cache.Cacher) *BlogPostController {
	return &BlogPostController{
		DB:        db,
		Validator: validator.New(),
		Cache:     cc,
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

/* ==============================
   PUBLIC
============================== */

// ListPublic returns published posts only, newest first.
func (ctl *BlogPostController) ListPublic(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.PublicOpts)
	category := strings.TrimSpace(c.Query("category"))

	key := cache.ListKey(entityBlogPosts, "public", "cat="+category,
		fmt.Sprintf("page=%d:per=%d:ord=%s", p.Page, p.PerPage, p.SortOrder))
	if raw, err := ctl.Cache.Get(ctx, key); err == nil {
		return helper.Success(c, "Posts fetched", json.RawMessage(raw))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.BlogPostModel{}).
		Where("blog_post_is_published = ?", true)
	if category != "" {
		q = q.Where("blog_post_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	var posts []model.BlogPostModel
	if err := q.Order("blog_post_published_at " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	payload := fiber.Map{"posts": posts, "pagination": helper.BuildPageMeta(total, p)}
	if buf, err := sonic.Marshal(payload); err == nil {
		_ = ctl.Cache.Set(ctx, key, buf, 0)
	}
	return helper.Success(c, "Posts fetched", payload)
}

// GetBySlug is the public lookup. Unpublished posts are indistinguishable
// from missing ones here; the record stays reachable through the admin list.
func (ctl *BlogPostController) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing slug")
	}

	key := cache.ListKey(entityBlogPosts, "slug", slug)
	if raw, err := ctl.Cache.Get(ctx, key); err == nil {
		return helper.Success(c, "Post fetched", json.RawMessage(raw))
	}

	var post model.BlogPostModel
	if err := ctl.DB.WithContext(ctx).
		Where("blog_post_slug = ? AND blog_post_is_published = ?", slug, true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch post")
	}

	if buf, err := sonic.Marshal(post); err == nil {
		_ = ctl.Cache.Set(ctx, key, buf, 0)
	}
	return helper.Success(c, "Post fetched", post)
}

/* ==============================
   ADMIN
============================== */

// List includes drafts and unpublished posts.
func (ctl *BlogPostController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(ctx).Model(&model.BlogPostModel{})
	if published := strings.TrimSpace(c.Query("published")); published != "" {
		q = q.Where("blog_post_is_published = ?", published == "true" || published == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	var posts []model.BlogPostModel
	if err := q.Order("blog_post_created_at " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return helper.Success(c, "Posts fetched", fiber.Map{
		"posts":      posts,
		"pagination": helper.BuildPageMeta(total, p),
	})
}

func (ctl *BlogPostController) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	base := ""
	if req.BlogPostSlug != nil {
		base = helper.GenerateSlug(*req.BlogPostSlug)
	}
	if base == "" {
		base = helper.GenerateSlug(req.BlogPostTitle)
	}
	slug, err := helper.EnsureUniqueSlug(db, "blog_posts", "blog_post_slug", base)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	m := req.ToModel()
	m.BlogPostSlug = slug
	if err := db.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entityBlogPosts)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Post created", m)
}

func (ctl *BlogPostController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.UpdateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.BlogPostModel
	if err := db.First(&m, "blog_post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch post")
	}

	req.ApplyTo(&m)

	// Explicit slug change goes through the same normalization + probe.
	if req.BlogPostSlug != nil {
		base := helper.GenerateSlug(*req.BlogPostSlug)
		if base != "" && base != m.BlogPostSlug {
			slug, err := helper.EnsureUniqueSlug(db, "blog_posts", "blog_post_slug", base)
			if err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to update post")
			}
			m.BlogPostSlug = slug
		}
	}

	if err := db.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update post")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entityBlogPosts)
	return helper.Success(c, "Post updated", m)
}

func (ctl *BlogPostController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid post id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("blog_post_id = ?", id).Delete(&model.BlogPostModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Post not found")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entityBlogPosts)
	return helper.Success(c, "Post deleted", fiber.Map{"blog_post_id": id})
}
