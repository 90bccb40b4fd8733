// Package main runs the ingredient engine end to end on a pair of sample
// recipes: parse and merge their ingredient lines into a categorized
// shopping list, then auto-tag each recipe.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	shoppinglistapp "github.com/mealcart/engine/internal/application/shoppinglist"
	taggingapp "github.com/mealcart/engine/internal/application/tagging"
	"github.com/mealcart/engine/internal/infrastructure/config"
	gormrepo "github.com/mealcart/engine/internal/infrastructure/persistence/gorm"
	"github.com/mealcart/engine/internal/infrastructure/persistence/sqlite"
	"github.com/mealcart/engine/internal/ports/inbound"
	"github.com/mealcart/engine/pkg/logger"
	"go.uber.org/zap"
)

type sampleRecipe struct {
	ID          uuid.UUID
	Title       string
	Description string
	Ingredients []string
}

func main() {
	cfg, err := config.Load(os.Getenv("MEALCART_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := sqlite.SetupDatabase(cfg.Database.Path, sqlite.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		appLogger.Fatal("failed to set up database", zap.Error(err))
	}
	if cfg.Database.Seed {
		if err := sqlite.SeedDatabase(db); err != nil {
			appLogger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	shoppingSvc := shoppinglistapp.NewService(gormrepo.NewCategoryOverrideRepository(db), appLogger)
	taggingSvc := taggingapp.NewService(gormrepo.NewTagLabelRepository(db), cfg.Tagging.ResolveLabelIDs, appLogger)

	recipes := []sampleRecipe{
		{
			ID:          uuid.New(),
			Title:       "Weeknight Chicken Fajitas",
			Description: "Quick skillet dinner with peppers and warm tortillas.",
			Ingredients: []string{
				"1 lb boneless chicken breasts, sliced",
				"2 red bell peppers, sliced",
				"1 green bell pepper",
				"1 yellow onion, thinly sliced",
				"2 tbsp olive oil",
				"1 tsp ground cumin",
				"8 flour tortillas",
				"1/4 cup chopped fresh cilantro",
				"salt and pepper to taste",
			},
		},
		{
			ID:          uuid.New(),
			Title:       "Stuffed Bell Peppers",
			Description: "Baked peppers filled with rice, beef and cheese.",
			Ingredients: []string{
				"4 bell peppers, halved",
				"1 lb ground beef",
				"1 cup white rice",
				"1 onion, diced",
				"2 cloves garlic, minced",
				"1 tbsp olive oil",
				"1 can diced tomatoes",
				"1 1/2 cups shredded cheddar cheese",
			},
		},
	}

	ctx := context.Background()

	var lines []inbound.IngredientLineInput
	for _, r := range recipes {
		for _, text := range r.Ingredients {
			lines = append(lines, inbound.IngredientLineInput{RecipeID: r.ID, Text: text})
		}
	}

	items, err := shoppingSvc.BuildShoppingList(ctx, inbound.BuildShoppingListCommand{Lines: lines})
	if err != nil {
		appLogger.Fatal("failed to build shopping list", zap.Error(err))
	}

	fmt.Println("Shopping list")
	fmt.Println(strings.Repeat("-", 60))
	for _, item := range items {
		qty := "to taste"
		if item.Total != nil {
			if item.Unit == "" {
				qty = fmt.Sprintf("%g", *item.Total)
			} else {
				qty = fmt.Sprintf("%g %s", *item.Total, item.Unit)
			}
		}
		fmt.Printf("%-28s %-14s [%s]\n", item.DisplayName, qty, item.Category)
		if item.Notes != "" {
			fmt.Printf("    %s\n", item.Notes)
		}
	}

	fmt.Println()
	for _, r := range recipes {
		tags, err := taggingSvc.TagRecipe(ctx, inbound.TagRecipeCommand{
			Title:       r.Title,
			Description: r.Description,
			Ingredients: r.Ingredients,
		})
		if err != nil {
			appLogger.Error("failed to tag recipe", zap.String("title", r.Title), zap.Error(err))
			continue
		}
		fmt.Printf("%s\n", r.Title)
		fmt.Printf("  cuisines:   %s\n", strings.Join(tags.Cuisines, ", "))
		fmt.Printf("  meal types: %s\n", strings.Join(tags.MealTypes, ", "))
		fmt.Printf("  dietary:    %s\n", strings.Join(tags.DietaryLabels, ", "))
	}
}
