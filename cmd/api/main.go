package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilis-app/carsrent-api/internal/config"
	"github.com/vilis-app/carsrent-api/internal/db"
	"github.com/vilis-app/carsrent-api/internal/logger"
	"github.com/vilis-app/carsrent-api/internal/routes"
)

func main() {
	cfg := config.Load()

	zl := logger.New(cfg.Debug)
	defer zl.Sync()

	database := db.NewDB(cfg)
	rdb := db.NewRedis(cfg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, rdb, cfg, zl)

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
