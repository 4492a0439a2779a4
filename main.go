package main

import (
	"github.com/singleblog/singleblog/config"
	"github.com/singleblog/singleblog/models"
	"github.com/singleblog/singleblog/routes"
	"github.com/singleblog/singleblog/storage"
	"github.com/singleblog/singleblog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	if cfg.AdminRoleToken == "" {
		utils.Sugar.Fatal("AdminRoleToken must be set in config/config.json or ADMIN_ROLE_TOKEN")
	}

	db := config.InitDatabase(&models.Post{}, &models.Tag{})

	images, err := storage.NewImageStore(cfg.ImagesDir)
	if err != nil {
		utils.Sugar.Fatalf("image store init failed: %v", err)
	}

	utils.InitRedis(cfg)

	r := routes.SetupRouter(cfg, db, images)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
