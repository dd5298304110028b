package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/prasannardyy/Messmate/internal/auth"
	"github.com/prasannardyy/Messmate/internal/db"
	"github.com/prasannardyy/Messmate/internal/favorites"
	"github.com/prasannardyy/Messmate/internal/menu"
	"github.com/prasannardyy/Messmate/internal/middleware"
	"github.com/prasannardyy/Messmate/internal/navigation"
	"github.com/prasannardyy/Messmate/internal/notify"
	"github.com/prasannardyy/Messmate/internal/ratings"
	"github.com/prasannardyy/Messmate/internal/realtime"
	"github.com/prasannardyy/Messmate/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const menuObjectKey = "menus/published.json"

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(ctx)
	if err != nil {
		log.Fatal("❌ Postgres init failed:", err)
	}
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE + MENU ─────────────────────────
	// R2 is optional: without it the menu document is read from a local
	// file and admin publishing is disabled.
	var menuRepo menu.Repository
	var uploader menu.Uploader

	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		menuRepo = menu.NewR2Repository(r2Client, menuObjectKey)
		uploader = r2Client
	} else {
		path := os.Getenv("MENU_FILE")
		if path == "" {
			path = "menudata.json"
		}
		menuRepo = menu.NewFileRepository(path)
		log.Println("⚠️ R2 not configured, serving menu from", path)
	}

	menuService := menu.NewService(menuRepo)
	if err := menuService.Reload(ctx); err != nil {
		log.Println("⚠️ menu not loaded yet:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── LIVE FEED ─────────────────────────
	hub := realtime.NewHub()
	feedHandler := realtime.NewHandler(hub)
	r.GET("/ws/activity", feedHandler.Serve)

	// ───────────────────────── CORE REPOS ─────────────────────────
	ratingRepo := ratings.NewPostgresRepository(pgDB)
	favoriteRepo := favorites.NewPostgresRepository(pgDB)
	subscriptionRepo := notify.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	ratingService := ratings.NewService(ratingRepo, hub)
	favoriteService := favorites.NewService(favoriteRepo)

	var pusher notify.Pusher = notify.LogPusher{}
	if os.Getenv("SNS_FCM_ARN") != "" {
		snsPusher, err := notify.NewSNSPusher(ctx)
		if err != nil {
			log.Fatal("❌ SNS init failed:", err)
		}
		pusher = snsPusher
	} else {
		log.Println("⚠️ SNS not configured, push notifications log only")
	}
	notifyService := notify.NewService(subscriptionRepo, pusher)

	// ───────────────────────── HANDLERS ─────────────────────────
	menuHandler := menu.NewHandler(menuService)
	adminMenuHandler := menu.NewAdminHandler(menuService, uploader, menuObjectKey)
	ratingHandler := ratings.NewHandler(ratingService)
	favoriteHandler := favorites.NewHandler(favoriteService)
	notifyHandler := notify.NewHandler(notifyService)

	// ───────────────────────── MENU ROUTES ─────────────────────────
	r.GET("/schedule", menuHandler.Schedule)

	menus := r.Group("/menus")
	{
		menus.GET("", menuHandler.Messes)
		menus.GET("/:mess/current", menuHandler.Current)
		menus.GET("/:mess/:day", menuHandler.Day)
	}

	// ───────────────────────── NAVIGATION ROUTES ─────────────────────────
	navManager := navigation.NewManager(nil)
	go navManager.Run(time.Second)
	defer navManager.Stop()

	navHandler := navigation.NewHandler(navManager)

	nav := r.Group("/navigation")
	{
		nav.POST("", navHandler.Create)
		nav.GET("/:id", navHandler.Get)
		nav.POST("/:id/next", navHandler.Next)
		nav.POST("/:id/previous", navHandler.Previous)
		nav.POST("/:id/live", navHandler.GoLive)
		nav.POST("/:id/jump", navHandler.Jump)
	}

	// ───────────────────────── RATING ROUTES ─────────────────────────
	ratingsGroup := r.Group("/ratings")
	{
		ratingsGroup.GET("", ratingHandler.Get)
		ratingsGroup.GET("/stats", ratingHandler.Stats)

		ratingsGroup.POST("", middleware.AuthMiddleware(), ratingHandler.Add)
	}

	// ───────────────────────── FAVORITE ROUTES ─────────────────────────
	favoritesGroup := r.Group("/favorites")
	favoritesGroup.Use(middleware.AuthMiddleware())
	{
		favoritesGroup.GET("", favoriteHandler.List)
		favoritesGroup.POST("/toggle", favoriteHandler.Toggle)
		favoritesGroup.DELETE("", favoriteHandler.Remove)
	}

	// ───────────────────────── NOTIFICATION ROUTES ─────────────────────────
	notifications := r.Group("/api/notifications")
	{
		notifications.POST("/subscribe", notifyHandler.Subscribe)
		notifications.POST("/unsubscribe", notifyHandler.Unsubscribe)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/menus", adminMenuHandler.Publish)
		admin.POST("/notifications/test", notifyHandler.Test)
	}

	// ───────────────────────── MEAL REMINDERS ─────────────────────────
	timezone := os.Getenv("TZ_NAME")
	if timezone == "" {
		timezone = "Asia/Kolkata"
	}
	defaultMess := os.Getenv("DEFAULT_MESS")
	if defaultMess == "" {
		defaultMess = "mess1"
	}

	scheduler, err := notify.NewScheduler(notifyService, menuService, defaultMess, timezone)
	if err != nil {
		log.Fatal("❌ Scheduler init failed:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
