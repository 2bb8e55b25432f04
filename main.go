package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinema_admin/auth"
	"cinema_admin/backend"
	"cinema_admin/config"
	"cinema_admin/database"
	"cinema_admin/handler"
	"cinema_admin/helper"
	"cinema_admin/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	rdb := database.ConnectRedis()

	var store auth.Store = auth.NewMemoryStore()
	if rdb != nil {
		store = auth.NewRedisStore(rdb)
	}
	secret := config.Config("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET chưa được cấu hình")
	}
	sessions := auth.NewManager(store, secret, config.ConfigDuration("SESSION_TTL", 8*time.Hour))

	api := backend.New(config.ConfigDefault("BACKEND_BASE_URL", "http://localhost:8002/api/v1"),
		config.ConfigDuration("BACKEND_TIMEOUT", 10*time.Second))
	catalog := helper.NewCatalog(rdb, api, config.ConfigDuration("CATALOG_TTL", 6*time.Hour), config.Config("BACKEND_SERVICE_TOKEN"))

	loc := config.Location()
	if err := helper.StartCatalogSchedulers(catalog, config.ConfigDefault("CATALOG_REFRESH_CRON", "*/5 * * * *"), loc); err != nil {
		log.Fatal(err)
	}
	defer helper.StopCatalogSchedulers()

	h := handler.New(api, sessions, catalog, handler.Options{
		BlockOnOverlap:   config.ConfigBool("BLOCK_ON_SLOT_OVERLAP", false),
		ExplicitCouple:   config.ConfigBool("EXPLICIT_COUPLE_SEAT_TYPE", false),
		DefaultBasePrice: int64(config.ConfigInt("DEFAULT_BASE_PRICE", 50000)),
		Location:         loc,
	})
	h.DB = database.DB
	h.Redis = rdb
	h.Notifier = helper.NewNotifierFromConfig()

	router.SetupRoutes(app, h)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Đang tắt server...")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + config.ConfigDefault("APP_PORT", "8080")); err != nil {
		log.Fatal(err)
	}
}
