package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/nhatduy27/Table-Management-sub000/internal/auth"
	"github.com/nhatduy27/Table-Management-sub000/internal/cart"
	"github.com/nhatduy27/Table-Management-sub000/internal/db"
	"github.com/nhatduy27/Table-Management-sub000/internal/menu"
	"github.com/nhatduy27/Table-Management-sub000/internal/middleware"
	"github.com/nhatduy27/Table-Management-sub000/internal/order"
	"github.com/nhatduy27/Table-Management-sub000/internal/realtime"
	"github.com/nhatduy27/Table-Management-sub000/internal/report"
	"github.com/nhatduy27/Table-Management-sub000/internal/storage"
	"github.com/nhatduy27/Table-Management-sub000/internal/table"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"QR_TOKEN_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// Amounts are whole currency units, serialize them as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Table-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
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

	// ───────────────────────── REPOS ─────────────────────────
	tableRepo := table.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	reportRepo := report.NewRepository(pgDB)
	cartBackend := cart.NewPostgresBackend(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	tableService := table.NewService(tableRepo)
	menuService := menu.NewService(menuRepo, r2Client)
	cartService := cart.NewService(cartBackend, menuService)

	hub := realtime.NewHub()
	orderService := order.NewService(orderRepo, cartBackend, hub)

	// ───────────────────────── HANDLERS ─────────────────────────
	tableHandler := table.NewHandler(tableService)
	menuHandler := menu.NewHandler(menuService)
	adminMenuHandler := menu.NewAdminHandler(menuService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	staffOrderHandler := order.NewStaffHandler(orderService)
	reportHandler := report.NewHandler(reportRepo)
	wsHandler := realtime.NewHandler(hub, tableService)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	r.POST("/session/verify", tableHandler.VerifySession)

	menus := r.Group("/menu")
	{
		menus.GET("/categories", menuHandler.ListCategories)
		menus.GET("/items", menuHandler.ListItems)
		menus.GET("/items/:id", menuHandler.GetItem)
	}

	r.GET("/ws/:table_id", wsHandler.ServeTable)

	// ───────────────────────── TABLE SESSION ROUTES ─────────────────────────
	session := r.Group("/")
	session.Use(middleware.TableSession(tableService))
	{
		session.GET("/cart", cartHandler.GetCart)
		session.POST("/cart/items", cartHandler.AddItem)
		session.PATCH("/cart/items/:line_id/quantity", cartHandler.UpdateQuantity)
		session.PATCH("/cart/items/:line_id/note", cartHandler.UpdateNote)
		session.DELETE("/cart/items/:line_id", cartHandler.RemoveItem)
		session.DELETE("/cart", cartHandler.ClearCart)

		session.POST("/orders", orderHandler.Submit)
		session.GET("/orders/active", orderHandler.GetActive)
		session.POST("/orders/bill-request", orderHandler.RequestBill)
	}

	// ───────────────────────── STAFF ROUTES ─────────────────────────
	staff := r.Group("/staff")
	staff.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN", "STAFF"),
	)
	{
		staff.GET("/orders", staffOrderHandler.ListOrders)
		staff.PATCH("/orders/:id/items/:item_id/status", staffOrderHandler.UpdateItemStatus)
		staff.POST("/orders/:id/bill/confirm", staffOrderHandler.ConfirmBill)
		staff.POST("/orders/:id/cancel", staffOrderHandler.CancelOrder)

		staff.GET("/ws", wsHandler.ServeStaff)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		// Tables
		admin.POST("/tables", tableHandler.CreateTable)
		admin.GET("/tables", tableHandler.ListTables)
		admin.PUT("/tables/:id", tableHandler.UpdateTable)
		admin.POST("/tables/:id/deactivate", tableHandler.DeactivateTable)
		admin.POST("/tables/:id/qr/regenerate", tableHandler.RegenerateQR)

		// Menu
		admin.GET("/menu/categories", adminMenuHandler.ListCategories)
		admin.POST("/menu/categories", adminMenuHandler.CreateCategory)
		admin.PUT("/menu/categories/:id", adminMenuHandler.UpdateCategory)
		admin.GET("/menu/items", adminMenuHandler.ListItems)
		admin.POST("/menu/items", adminMenuHandler.CreateItem)
		admin.PUT("/menu/items/:id", adminMenuHandler.UpdateItem)
		admin.PATCH("/menu/items/:id/availability", adminMenuHandler.SetAvailability)
		admin.DELETE("/menu/items/:id", adminMenuHandler.DeleteItem)
		admin.POST("/menu/items/:id/image", adminMenuHandler.UploadItemImage)
		admin.POST("/menu/items/:id/modifier-groups", adminMenuHandler.CreateModifierGroup)
		admin.POST("/menu/modifier-groups/:group_id/options", adminMenuHandler.CreateModifierOption)
		admin.DELETE("/menu/modifier-groups/:group_id", adminMenuHandler.DeleteModifierGroup)

		// Reports
		admin.GET("/reports/daily", reportHandler.Daily)
	}

	// ───────────────────────── CART EXPIRY WORKER ─────────────────────────
	cart.StartExpiryWorker(context.Background(), cartBackend, 24*time.Hour, time.Hour)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
