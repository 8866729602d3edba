package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapperagenda/barber-api/internal/cache"
	"github.com/dapperagenda/barber-api/internal/config"
	dbpkg "github.com/dapperagenda/barber-api/internal/db"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cacheClient, err := cache.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if cacheClient == nil {
		log.Println("redis not configured, running with in-process locks only")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Storage.Driver == "local" || cfg.Storage.Driver == "" {
		r.Static("/uploads", cfg.Storage.UploadsPath)
	}

	routes.RegisterRoutes(r, db, cfg, cacheClient)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
