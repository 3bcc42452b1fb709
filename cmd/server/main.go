package main

import (
	"fmt"
	"log"
	"net/http"

	"art-gallery-platform/internal/config"
	"art-gallery-platform/internal/database"
	"art-gallery-platform/internal/handlers"
	"art-gallery-platform/internal/middleware"
	"art-gallery-platform/internal/repositories"
	"art-gallery-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
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

	// Run database migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store for anonymous cart sessions
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionProvider := middleware.NewCookieSessionProvider(sessionStore)

	// Initialize repositories
	artworkRepo := repositories.NewArtworkRepository(db.DB)
	artistRepo := repositories.NewArtistRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	discountRepo := repositories.NewDiscountRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)
	pageRepo := repositories.NewPageContentRepository(db.DB)

	// Initialize services
	pricingService := services.NewPricingService(discountRepo)
	cartService := services.NewCartService(cartRepo, pricingService)
	checkoutService := services.NewCheckoutService(orderRepo, cartRepo, pricingService)

	// Image storage is optional; the admin upload endpoint reports
	// unavailability when R2 is not configured
	var storageService services.StorageService
	if r2, err := services.NewR2Service(cfg.R2); err != nil {
		log.Printf("Warning: R2 storage not available: %v", err)
	} else {
		storageService = r2
	}

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(cartService, pricingService, checkoutService, sessionProvider)
	publicHandler := handlers.NewPublicHandler(artworkRepo, artistRepo, eventRepo, pageRepo)
	adminHandler := handlers.NewAdminHandler(artworkRepo, artistRepo, eventRepo, discountRepo, orderRepo, pageRepo, storageService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)

	// Storefront catalog
	r.Get("/artworks", publicHandler.ListArtworks)
	r.Get("/artworks/{id}", publicHandler.GetArtwork)
	r.Get("/artists", publicHandler.ListArtists)
	r.Get("/artists/{id}", publicHandler.GetArtist)
	r.Get("/events", publicHandler.ListEvents)
	r.Get("/events/{id}", publicHandler.GetEvent)
	r.Get("/pages/{section}", publicHandler.GetPageContent)

	// Cart and checkout
	r.Get("/cart", cartHandler.GetCart)
	r.Post("/cart/items", cartHandler.AddItem)
	r.Patch("/cart/items/{id}", cartHandler.UpdateItem)
	r.Delete("/cart/items/{id}", cartHandler.RemoveItem)
	r.Delete("/cart", cartHandler.ClearCart)
	r.Post("/cart/discount", cartHandler.ApplyDiscount)
	r.Post("/checkout", cartHandler.Checkout)

	// Admin management. Authentication is expected at the hosting layer
	// (reverse proxy) in front of these routes.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/discounts", adminHandler.ListDiscounts)
		r.Post("/discounts", adminHandler.CreateDiscount)
		r.Put("/discounts/{id}", adminHandler.UpdateDiscount)
		r.Post("/discounts/{id}/deactivate", adminHandler.DeactivateDiscount)
		r.Delete("/discounts/{id}", adminHandler.DeleteDiscount)

		r.Post("/artworks", adminHandler.CreateArtwork)
		r.Put("/artworks/{id}", adminHandler.UpdateArtwork)
		r.Delete("/artworks/{id}", adminHandler.DeleteArtwork)

		r.Post("/artists", adminHandler.CreateArtist)
		r.Put("/artists/{id}", adminHandler.UpdateArtist)
		r.Delete("/artists/{id}", adminHandler.DeleteArtist)

		r.Post("/events", adminHandler.CreateEvent)
		r.Put("/events/{id}", adminHandler.UpdateEvent)
		r.Delete("/events/{id}", adminHandler.DeleteEvent)

		r.Post("/images", adminHandler.UploadImage)

		r.Get("/orders", adminHandler.ListOrders)
		r.Get("/orders/{id}", adminHandler.GetOrder)
		r.Put("/orders/{id}/status", adminHandler.UpdateOrderStatus)

		r.Put("/pages/{section}", adminHandler.UpdatePageContent)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting server on %s (env: %s)", addr, cfg.Server.Env)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
