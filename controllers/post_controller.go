package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/singleblog/singleblog/models"
	"github.com/singleblog/singleblog/storage"
	"github.com/singleblog/singleblog/utils"
	"github.com/singleblog/singleblog/validators"
)

const (
	postsListCachePrefix  = "cache:posts:list:"
	postDetailCachePrefix = "cache:post:detail:"
)

// RequestPost is the inbound write payload. Pointer fields distinguish
// an absent field (nil, "leave unchanged" on patch) from an explicit
// empty string (rejected by validation).
type RequestPost struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// ResponsePost is the outbound post shape with the assigned id and the
// tag names embedded. Built explicitly from the stored entity.
type ResponsePost struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func toResponsePost(p *models.Post) ResponsePost {
	return ResponsePost{
		ID:       p.ID,
		Title:    p.Title,
		Author:   p.Author,
		Content:  p.Content,
		Category: p.Category,
		Tags:     p.TagNames(),
	}
}

// PostController manages CRUD and tag operations for posts.
type PostController struct {
	db     *gorm.DB
	images *storage.ImageStore
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB, images *storage.ImageStore) *PostController {
	return &PostController{db: db, images: images}
}

// ListPosts returns all posts with their tag names, optionally filtered
// by exact title (case-insensitive), exact category and tag membership.
// Filters combine with AND; an absent or empty filter is no constraint.
func (p *PostController) ListPosts(ctx *gin.Context) {
	titleFilter := queryCI(ctx, "titleFilter")
	categoryFilter := queryCI(ctx, "categoryFilter")
	tagFilter := queryCI(ctx, "tagFilter")

	cacheKey := postsListCachePrefix + "title=" + titleFilter + ":cat=" + categoryFilter + ":tag=" + tagFilter
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var posts []models.Post
	if err := p.db.Preload("Tags").Find(&posts).Error; err != nil {
		utils.InternalError(ctx, "list posts", err)
		return
	}

	// Filters apply in memory so exact-match semantics do not depend on
	// the column collation of the selected driver.
	result := make([]ResponsePost, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		if titleFilter != "" && !strings.EqualFold(post.Title, titleFilter) {
			continue
		}
		if categoryFilter != "" && post.Category != categoryFilter {
			continue
		}
		if tagFilter != "" && !post.HasTag(tagFilter) {
			continue
		}
		result = append(result, toResponsePost(post))
	}

	cacheRenderedJSON(ctx, cacheKey, result)
}

// GetPost returns a single post with its tag names.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, idStr, ok := postID(ctx)
	if !ok {
		return
	}

	if b, ok := utils.CacheGetBytes(postDetailCachePrefix + idStr); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	if err := p.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundf(ctx, "Post Id=%d not found", id)
			return
		}
		utils.InternalError(ctx, "load post", err)
		return
	}

	cacheRenderedJSON(ctx, postDetailCachePrefix+idStr, toResponsePost(&post))
}

// CreatePost validates the payload and stores a new post, replying with
// the assigned id as a plain-text integer.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req RequestPost
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	if res := validators.ValidateFields(req.Title, req.Author, req.Content); !res.Valid {
		utils.BadRequest(ctx, res.Message)
		return
	}

	post := models.Post{
		Title:    *req.Title,
		Author:   *req.Author,
		Content:  *req.Content,
		Category: deref(req.Category),
	}
	if err := p.db.Create(&post).Error; err != nil {
		utils.InternalError(ctx, "create post", err)
		return
	}

	utils.InvalidateByPrefix(postsListCachePrefix)

	utils.Text(ctx, http.StatusOK, strconv.Itoa(post.ID))
}

// UpdatePost fully replaces the four mutable fields of a post. The
// payload is validated before the existence lookup; tags are untouched.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var req RequestPost
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	if res := validators.ValidateFields(req.Title, req.Author, req.Content); !res.Valid {
		utils.BadRequest(ctx, res.Message)
		return
	}

	id, idStr, ok := postID(ctx)
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundf(ctx, "Post Id=%d not found", id)
			return
		}
		utils.InternalError(ctx, "load post", err)
		return
	}

	updates := map[string]any{
		"title":    *req.Title,
		"author":   *req.Author,
		"content":  *req.Content,
		"category": deref(req.Category),
	}
	if err := p.db.Model(&post).Updates(updates).Error; err != nil {
		utils.InternalError(ctx, "update post", err)
		return
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	utils.InvalidateByPrefix(postDetailCachePrefix + idStr)

	utils.OK(ctx)
}

// PatchPost overwrites only the fields supplied as non-null. Partial
// validation runs before the existence lookup.
func (p *PostController) PatchPost(ctx *gin.Context) {
	var req RequestPost
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	if res := validators.ValidateFieldsIfSet(req.Title, req.Author, req.Content); !res.Valid {
		utils.BadRequest(ctx, res.Message)
		return
	}

	id, idStr, ok := postID(ctx)
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundf(ctx, "Post Id=%d not found", id)
			return
		}
		utils.InternalError(ctx, "load post", err)
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if len(updates) > 0 {
		if err := p.db.Model(&post).Updates(updates).Error; err != nil {
			utils.InternalError(ctx, "patch post", err)
			return
		}
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	utils.InvalidateByPrefix(postDetailCachePrefix + idStr)

	utils.OK(ctx)
}

// DeletePost removes a post together with its tags, then best-effort
// removes the associated image file. Authorization is enforced by the
// AdminRequired middleware ahead of this handler. The image removal is
// not transactional with the record delete; a crash in between leaves
// an orphaned file.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, idStr, ok := postID(ctx)
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundf(ctx, "Post Id=%d not found", id)
			return
		}
		utils.InternalError(ctx, "load post", err)
		return
	}

	// Tags are deleted explicitly with the parent; the sqlite driver does
	// not enable foreign-key cascades by default.
	if err := p.db.Select("Tags").Delete(&post).Error; err != nil {
		utils.InternalError(ctx, "delete post", err)
		return
	}

	if _, err := p.images.Remove(id); err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("delete post %d: image cleanup failed: %v", id, err)
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	utils.InvalidateByPrefix(postDetailCachePrefix + idStr)

	utils.OK(ctx)
}

// AddTag adds a named tag to a post. The empty-tag check runs before the
// post lookup; adding a name the post already carries is a no-op success.
func (p *PostController) AddTag(ctx *gin.Context) {
	tag, err := readTagBody(ctx)
	if err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}
	if tag == "" {
		utils.BadRequest(ctx, "Empty Tag")
		return
	}

	id, idStr, ok := postID(ctx)
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundf(ctx, "Post Id=%d not found ", id)
			return
		}
		utils.InternalError(ctx, "load post", err)
		return
	}

	if post.HasTag(tag) {
		utils.OK(ctx)
		return
	}

	if err := p.db.Create(&models.Tag{PostID: post.ID, Name: tag}).Error; err != nil {
		utils.InternalError(ctx, "add tag", err)
		return
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	utils.InvalidateByPrefix(postDetailCachePrefix + idStr)

	utils.OK(ctx)
}

// RemoveTag removes a named tag from a post.
func (p *PostController) RemoveTag(ctx *gin.Context) {
	id, idStr, ok := postID(ctx)
	if !ok {
		return
	}
	tag := ctx.Param("tag")

	var post models.Post
	if err := p.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundf(ctx, "Post Id=%d not found ", id)
			return
		}
		utils.InternalError(ctx, "load post", err)
		return
	}

	var found *models.Tag
	for i := range post.Tags {
		if post.Tags[i].Name == tag {
			found = &post.Tags[i]
			break
		}
	}
	if found == nil {
		utils.NotFoundf(ctx, "Tag %q in Post Id=%d not found", tag, id)
		return
	}

	if err := p.db.Delete(found).Error; err != nil {
		utils.InternalError(ctx, "remove tag", err)
		return
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	utils.InvalidateByPrefix(postDetailCachePrefix + idStr)

	utils.OK(ctx)
}

// postID parses the id path parameter. An unparsable id reads as a post
// that cannot exist, so it replies not-found directly.
func postID(ctx *gin.Context) (int, string, bool) {
	raw := ctx.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.NotFoundf(ctx, "Post Id=%s not found", raw)
		return 0, "", false
	}
	return id, raw, true
}

// queryCI looks up a query parameter by name ignoring case.
func queryCI(ctx *gin.Context, name string) string {
	for key, values := range ctx.Request.URL.Query() {
		if strings.EqualFold(key, name) && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// readTagBody accepts a tag name either as a JSON string or as raw text.
func readTagBody(ctx *gin.Context) (string, error) {
	body, err := ctx.GetRawData()
	if err != nil {
		return "", err
	}
	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return raw, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
