package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/singleblog/singleblog/models"
	"github.com/singleblog/singleblog/storage"
	"github.com/singleblog/singleblog/utils"
)

const allowedImageExtension = ".png"

// ImageController manages the single optional image attached to a post.
// Images live in the filesystem store, keyed by post id.
type ImageController struct {
	db     *gorm.DB
	images *storage.ImageStore
}

// NewImageController creates a new ImageController instance.
func NewImageController(db *gorm.DB, images *storage.ImageStore) *ImageController {
	return &ImageController{db: db, images: images}
}

// UploadImage stores the multipart "imageFile" payload for a post,
// fully replacing any prior image. Checks run in order: post existence,
// payload presence, filename extension.
func (i *ImageController) UploadImage(ctx *gin.Context) {
	id, _, ok := postID(ctx)
	if !ok {
		return
	}

	exists, err := i.postExists(id)
	if err != nil {
		utils.InternalError(ctx, "check post", err)
		return
	}
	if !exists {
		utils.NotFoundf(ctx, "Post Id=%d not found", id)
		return
	}

	file, header, err := ctx.Request.FormFile("imageFile")
	if err != nil {
		// accept the all-lowercase field name too
		file, header, err = ctx.Request.FormFile("imagefile")
		if err != nil {
			utils.BadRequest(ctx, "Image is empty")
			return
		}
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), allowedImageExtension) {
		utils.BadRequest(ctx, "Image with bad extension, allowed *.png")
		return
	}

	if err := i.images.Save(id, file); err != nil {
		utils.InternalError(ctx, "save image", err)
		return
	}

	utils.OK(ctx)
}

// GetImage returns the raw image bytes. A missing post and a missing
// image both read as not-found; no distinction is made.
func (i *ImageController) GetImage(ctx *gin.Context) {
	id, _, ok := postID(ctx)
	if !ok {
		return
	}

	b, found, err := i.images.Read(id)
	if err != nil {
		utils.InternalError(ctx, "read image", err)
		return
	}
	if !found {
		utils.NotFoundf(ctx, "Image for Post Id=%d not found", id)
		return
	}

	ctx.Data(http.StatusOK, "image/png", b)
}

// DeleteImage removes the stored image of a post.
func (i *ImageController) DeleteImage(ctx *gin.Context) {
	id, _, ok := postID(ctx)
	if !ok {
		return
	}

	exists, err := i.postExists(id)
	if err != nil {
		utils.InternalError(ctx, "check post", err)
		return
	}
	if !exists {
		utils.NotFoundf(ctx, "Post Id=%d not found", id)
		return
	}

	removed, err := i.images.Remove(id)
	if err != nil {
		utils.InternalError(ctx, "remove image", err)
		return
	}
	if !removed {
		utils.NotFoundf(ctx, "Image of Post Id=%d not found", id)
		return
	}

	utils.OK(ctx)
}

func (i *ImageController) postExists(id int) (bool, error) {
	var count int64
	if err := i.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
