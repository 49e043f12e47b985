package main

import (
	"fmt"
	"log"
	"net/http"

	"ticket-commerce-platform/internal/config"
	"ticket-commerce-platform/internal/database"
	"ticket-commerce-platform/internal/handlers"
	"ticket-commerce-platform/internal/metrics"
	"ticket-commerce-platform/internal/middleware"
	"ticket-commerce-platform/internal/repositories"
	"ticket-commerce-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	productRepo := repositories.NewProductRepository(db.DB)
	sessionRepo := repositories.NewSessionRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Cart edits and order finalization for the same user must serialize
	// through the same registry
	locks := services.NewLockRegistry()

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret)
	cartService := services.NewCartService(cartRepo, productRepo, ticketRepo, locks)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, locks)
	redemptionService := services.NewRedemptionService(ticketRepo)

	var storage services.StorageService
	if cfg.Storage.AccessKeyID != "" {
		r2, err := services.NewR2Service(cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize R2 storage:", err)
		}
		storage = r2
		log.Println("R2 storage initialized")
	} else {
		log.Println("R2 storage not configured, image uploads disabled")
	}

	serverMetrics := metrics.New()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cartService)
	productHandler := handlers.NewProductHandler(productRepo, storage)
	sessionHandler := handlers.NewSessionHandler(sessionRepo)
	ticketHandler := handlers.NewTicketHandler(ticketRepo, redemptionService, serverMetrics)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, serverMetrics)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(middleware.MetricsMiddleware(serverMetrics))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users", authHandler.Register)
		r.Post("/users/login", authHandler.Login)
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)
		r.Get("/sessions", sessionHandler.List)
		r.Get("/sessions/{id}", sessionHandler.Get)
		r.Get("/sessions/{id}/tickets", ticketHandler.ListBySession)
		r.Get("/tickets/{id}", ticketHandler.Get)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Delete("/users/logout", authHandler.Logout)
			r.Put("/users/extend", authHandler.Extend)
			r.Get("/users/profile", authHandler.Profile)

			r.Patch("/carts/merch", cartHandler.EditMerchCart)
			r.Get("/carts/merch", cartHandler.GetMerchCart)
			r.Patch("/carts/tickets", cartHandler.EditTicketCart)
			r.Get("/carts/tickets", cartHandler.GetTicketCart)
			r.Get("/carts/total", cartHandler.GetTotals)

			r.Post("/orders/merch", orderHandler.CreateMerchOrder)
			r.Get("/orders/merch", orderHandler.GetMerchOrders)
			r.Post("/orders/tickets", orderHandler.CreateTicketOrder)
			r.Get("/orders/tickets", orderHandler.GetTicketOrders)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Use(authMiddleware.RequireAdmin)

			r.Get("/admin/products", productHandler.ListAll)
			r.Post("/admin/products", productHandler.Create)
			r.Put("/admin/products/{id}", productHandler.Update)
			r.Post("/admin/products/{id}/image", productHandler.UploadImage)
			r.Delete("/admin/products/{id}", productHandler.Delete)

			r.Post("/admin/sessions", sessionHandler.Create)
			r.Put("/admin/sessions/{id}", sessionHandler.Update)
			r.Delete("/admin/sessions/{id}", sessionHandler.Delete)

			r.Post("/admin/tickets", ticketHandler.Create)
			r.Put("/admin/tickets/{id}", ticketHandler.Update)
			r.Delete("/admin/tickets/{id}", ticketHandler.Delete)
			r.Post("/admin/tickets/{id}/redeem", ticketHandler.Redeem)

			r.Get("/admin/orders/merch", orderHandler.GetAllMerchOrders)
			r.Get("/admin/orders/tickets", orderHandler.GetAllTicketOrders)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (env: %s)", addr, cfg.Server.Env)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
