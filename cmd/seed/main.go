package main

import (
	"fmt"
	"log"
	"time"

	"art-gallery-platform/internal/config"
	"art-gallery-platform/internal/database"
	"art-gallery-platform/internal/models"
	"art-gallery-platform/internal/repositories"
)

func intPtr(v int) *int { return &v }

func main() {
	fmt.Println("Seeding gallery catalog")

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

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	artistRepo := repositories.NewArtistRepository(db.DB)
	artworkRepo := repositories.NewArtworkRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	discountRepo := repositories.NewDiscountRepository(db.DB)
	pageRepo := repositories.NewPageContentRepository(db.DB)

	// Artists
	artists := []*models.Artist{
		{
			Name: "Elena Vasquez",
			Bio:  "Contemporary painter working in large-scale abstract landscapes.",
		},
		{
			Name: "Marcus Chen",
			Bio:  "Photographer documenting urban life and industrial spaces.",
		},
		{
			Name: "Amara Osei",
			Bio:  "Sculptor and mixed-media artist exploring textile traditions.",
		},
	}

	artistIDs := make(map[string]int)
	for _, a := range artists {
		created, err := artistRepo.Create(a)
		if err != nil {
			log.Fatal("Failed to create artist:", err)
		}
		artistIDs[created.Name] = created.ID
		fmt.Printf("Created artist: %s (id %d)\n", created.Name, created.ID)
	}

	// Artworks (prices in cents)
	artworks := []*models.Artwork{
		{
			Title:       "Northern Light Study III",
			ArtistID:    artistIDs["Elena Vasquez"],
			Description: "Oil on canvas, part of the Northern Light series.",
			Medium:      "Oil on canvas",
			Dimensions:  "120 x 90 cm",
			Year:        2024,
			Price:       185000,
			Available:   true,
		},
		{
			Title:       "Harbor at Dusk",
			ArtistID:    artistIDs["Elena Vasquez"],
			Description: "Mixed pigment study of the old harbor.",
			Medium:      "Oil on canvas",
			Dimensions:  "80 x 60 cm",
			Year:        2023,
			Price:       95000,
			Available:   true,
		},
		{
			Title:       "Steel and Steam #7",
			ArtistID:    artistIDs["Marcus Chen"],
			Description: "Silver gelatin print, edition of 10.",
			Medium:      "Photography",
			Dimensions:  "60 x 40 cm",
			Year:        2025,
			Price:       42500,
			Available:   true,
		},
		{
			Title:       "Woven Memory",
			ArtistID:    artistIDs["Amara Osei"],
			Description: "Wall-mounted textile sculpture in indigo and brass.",
			Medium:      "Mixed media",
			Dimensions:  "150 x 100 x 20 cm",
			Year:        2024,
			Price:       310000,
			Available:   true,
		},
	}

	for _, a := range artworks {
		created, err := artworkRepo.Create(a)
		if err != nil {
			log.Fatal("Failed to create artwork:", err)
		}
		fmt.Printf("Created artwork: %s (%s)\n", created.Title, models.FormatCents(created.Price))
	}

	// Events
	events := []*models.Event{
		{
			Title:       "Northern Light: Opening Reception",
			Description: "Opening night for Elena Vasquez's new series. Free entry, wine served.",
			EventDate:   time.Now().AddDate(0, 1, 0),
			Location:    "Main Gallery",
			TicketPrice: nil, // free
		},
		{
			Title:       "Artist Talk: Marcus Chen",
			Description: "A conversation on industrial photography, followed by Q&A.",
			EventDate:   time.Now().AddDate(0, 1, 14),
			Location:    "Project Room",
			TicketPrice: intPtr(1500),
		},
		{
			Title:       "Weaving Workshop with Amara Osei",
			Description: "Hands-on introduction to tapestry weaving. Materials included.",
			EventDate:   time.Now().AddDate(0, 2, 0),
			Location:    "Studio B",
			TicketPrice: intPtr(4500),
		},
	}

	for _, e := range events {
		created, err := eventRepo.Create(e)
		if err != nil {
			log.Fatal("Failed to create event:", err)
		}
		fmt.Printf("Created event: %s (%s)\n", created.Title, models.FormatCents(created.Price()))
	}

	// Discount codes
	discounts := []*models.DiscountCode{
		{
			Code:          "SAVE10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			AppliesTo:     models.ItemTypeArtwork,
			StartDate:     time.Now(),
			Active:        true,
		},
		{
			Code:          "MEMBER25",
			DiscountType:  models.DiscountFixed,
			DiscountValue: 2500,
			AppliesTo:     models.ItemTypeEvent,
			MinPurchase:   5000,
			MaxUses:       100,
			StartDate:     time.Now(),
			Active:        true,
		},
	}

	for _, d := range discounts {
		created, err := discountRepo.Create(d)
		if err != nil {
			log.Fatal("Failed to create discount:", err)
		}
		fmt.Printf("Created discount: %s\n", created.Code)
	}

	// Storefront copy
	pages := []*models.PageContent{
		{
			Section: "about",
			Title:   "About the Gallery",
			Body:    "An independent gallery showing contemporary painting, photography, and sculpture.",
		},
		{
			Section: "visit",
			Title:   "Visit Us",
			Body:    "Open Tuesday through Sunday, 10:00-18:00. Admission is free.",
		},
	}

	for _, p := range pages {
		if _, err := pageRepo.Upsert(p); err != nil {
			log.Fatal("Failed to write page content:", err)
		}
		fmt.Printf("Wrote page content: %s\n", p.Section)
	}

	fmt.Println("Seeding complete")
}
