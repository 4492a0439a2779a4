package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/singleblog/singleblog/config"
	"github.com/singleblog/singleblog/controllers"
	"github.com/singleblog/singleblog/middleware"
	"github.com/singleblog/singleblog/storage"
	"github.com/singleblog/singleblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, db *gorm.DB, images *storage.ImageStore) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.AdminRoleTokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(db, images)
	imageController := controllers.NewImageController(db, images)

	posts := r.Group("/Posts")
	posts.GET("", postController.ListPosts)
	posts.GET("/:id", postController.GetPost)
	posts.GET("/:id/Image", imageController.GetImage)

	writes := posts.Group("")
	writes.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))
	writes.POST("", postController.CreatePost)
	writes.PUT("/:id", postController.UpdatePost)
	writes.PATCH("/:id", postController.PatchPost)
	writes.DELETE("/:id", middleware.AdminRequired(cfg.AdminRoleToken), postController.DeletePost)
	writes.POST("/:id/Image", imageController.UploadImage)
	writes.DELETE("/:id/Image", imageController.DeleteImage)
	writes.POST("/:id/Tags", postController.AddTag)
	writes.DELETE("/:id/Tags/:tag", postController.RemoveTag)

	return r
}
