package memory

import (
	"context"
	"log/slog"

	"ecovis/internal/domain/entity"
)

// SeedUsername owns the demo forum posts. It has no password hash, so nobody can sign in as it.
const SeedUsername = "ecomaster"

var seedProducts = []entity.Product{
	{
		Name:        "Reusable Water Bottle",
		Description: "Stainless steel, BPA-free, keeps drinks cold for 24 hours or hot for 12 hours.",
		Price:       "$24.99",
		ImageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Category:    "Kitchen",
		Tag:         "Eco-Friendly",
		Tagline:     "15% of proceeds donated to ocean cleanup",
		InStock:     true,
	},
	{
		Name:        "Bamboo Cutlery Set",
		Description: "Portable utensil set including fork, knife, spoon, and chopsticks in a canvas pouch.",
		Price:       "$18.50",
		ImageURL:    "https://images.unsplash.com/photo-1531951657915-3c3f05e75497?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Category:    "Kitchen",
		Tag:         "Biodegradable",
		Tagline:     "Plastic-free packaging",
		InStock:     true,
	},
	{
		Name:        "Reusable Produce Bags (Set of 5)",
		Description: "Organic cotton mesh bags for grocery shopping. Machine washable and durable.",
		Price:       "$12.99",
		ImageURL:    "https://images.unsplash.com/photo-1584727638096-042c45049ebe?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Category:    "Kitchen",
		Tag:         "Zero Waste",
		Tagline:     "Fair trade certified",
		InStock:     true,
	},
	{
		Name:        "Compostable Phone Case",
		Description: "Made from plant-based materials. Fully compostable at end of life.",
		Price:       "$29.95",
		ImageURL:    "https://images.unsplash.com/photo-1556228578-6cca4e9ae56d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Category:    "Electronics",
		Tag:         "Biodegradable",
		Tagline:     "Carbon-neutral shipping",
		InStock:     true,
	},
	{
		Name:        "Organic Cotton Tote Bag",
		Description: "Heavy-duty organic cotton canvas. Natural dyes, ethically produced.",
		Price:       "$15.00",
		ImageURL:    "https://images.unsplash.com/photo-1557431177-36141475c676?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Category:    "Bags",
		Tag:         "Eco-Friendly",
		Tagline:     "Supports artisan craftspeople",
		InStock:     true,
	},
	{
		Name:        "Beeswax Food Wraps (Set of 3)",
		Description: "Reusable alternative to plastic wrap. Handmade with organic cotton and beeswax.",
		Price:       "$22.50",
		ImageURL:    "https://images.unsplash.com/photo-1624623278313-a930126a11c3?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Category:    "Kitchen",
		Tag:         "Zero Waste",
		Tagline:     "Lasts up to one year",
		InStock:     true,
	},
}

var seedPosts = []entity.ForumPost{
	{
		Title:    "Simple ways to reduce plastic waste",
		Content:  "I've been trying to reduce my plastic waste footprint and wanted to share some simple techniques that have worked well for me...",
		Category: entity.ForumCategoryRecycling,
	},
	{
		Title:    "Community cleanup event this weekend in London",
		Content:  "We're organizing a community cleanup this weekend at Hyde Park. Everyone is welcome to join! We'll provide gloves and collection bags...",
		Category: entity.ForumCategoryEvents,
	},
	{
		Title:    "How accurate is the CO₂ calculator?",
		Content:  "I've been using the CO₂ calculator and I'm wondering how accurate it is for different vehicle types. Has anyone compared the results with other tools?",
		Category: entity.ForumCategoryQuestions,
	},
}

// Seed loads the demo catalog and the seed user's forum posts. Failures are logged and skipped.
func (s *Store) Seed(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx := context.Background()

	for _, product := range seedProducts {
		s.addProduct(product)
	}

	fullName, location := "Eco Master", "Earth"
	owner := &entity.User{
		Username: SeedUsername,
		Email:    "ecomaster@example.com",
		FullName: &fullName,
		Location: &location,
	}
	if err := s.CreateUser(ctx, owner); err != nil {
		logger.Warn("Skipping forum seed", slog.String("username", SeedUsername), slog.Any("error", err))
		return
	}

	for _, post := range seedPosts {
		post.UserID = owner.ID
		if err := s.CreateForumPost(ctx, &post); err != nil {
			logger.Warn("Failed to seed forum post", slog.String("title", post.Title), slog.Any("error", err))
		}
	}

	logger.Info("Memory store seeded",
		slog.Int("products", len(seedProducts)),
		slog.Int("posts", len(seedPosts)),
	)
}
