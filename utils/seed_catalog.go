package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/modelhomeart/mhabackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var seedCollections = []models.Collection{
	{Slug: "modern", Name: "Modern Frames", Description: "Clean lines and contemporary styles for today's spaces.", Featured: true, Order: 1},
	{Slug: "classic", Name: "Classic Frames", Description: "Timeless traditional frames that never go out of style.", Featured: true, Order: 2},
	{Slug: "gallery-sets", Name: "Gallery Sets", Description: "Curated frame collections for stunning gallery walls.", Featured: true, Order: 3},
	{Slug: "shadow-boxes", Name: "Shadow Boxes", Description: "Deep frames perfect for 3D displays and memorabilia.", Featured: false, Order: 4},
	{Slug: "floating", Name: "Floating Frames", Description: "Modern floating edge designs for a contemporary look.", Featured: false, Order: 5},
}

var seedProducts = []models.Product{
	{Slug: "modern-black-8x10", Name: "Modern Black Frame", Description: "A sleek, contemporary frame with clean lines. Perfect for modern spaces.", Price: 2499, Sizes: []string{"5×7", "8×10", "11×14", "16×20"}, Materials: "Solid wood with matte black finish, glass front", CollectionSlug: "modern", InStock: true, Featured: true},
	{Slug: "modern-white-8x10", Name: "Modern White Frame", Description: "Clean white frame perfect for bright, airy spaces.", Price: 2499, Sizes: []string{"5×7", "8×10", "11×14", "16×20"}, Materials: "Solid wood with matte white finish, glass front", CollectionSlug: "modern", InStock: true, Featured: true},
	{Slug: "slim-metal-black", Name: "Slim Metal Frame", Description: "Ultra-thin metal profile for a minimalist look.", Price: 1999, Sizes: []string{"5×7", "8×10", "11×14"}, Materials: "Aluminum with anodized finish, glass front", CollectionSlug: "modern", InStock: true},
	{Slug: "classic-walnut-11x14", Name: "Classic Walnut Frame", Description: "Rich walnut finish with traditional profile. Perfect for diplomas and certificates.", Price: 3499, Sizes: []string{"8×10", "11×14", "16×20"}, Materials: "Solid walnut wood, UV-protective glass, acid-free backing", CollectionSlug: "classic", InStock: true, Featured: true},
	{Slug: "gold-ornate-8x10", Name: "Gold Ornate Frame", Description: "Elegant gold frame with decorative details.", Price: 3999, Sizes: []string{"5×7", "8×10", "11×14"}, Materials: "Composite wood with gold leaf finish", CollectionSlug: "classic", InStock: true},
	{Slug: "shadow-box-8x8", Name: "Shadow Box Frame", Description: "Deep frame for displaying 3D items, memorabilia, and keepsakes.", Price: 4299, Sizes: []string{"8×8", "12×12", "16×16"}, Materials: "Solid wood construction, 2\" depth, glass front", CollectionSlug: "shadow-boxes", InStock: true, Featured: true},
	{Slug: "floating-12x12", Name: "Floating Frame", Description: "Modern floating design that showcases your art with a contemporary edge.", Price: 3799, Sizes: []string{"8×8", "12×12", "16×16", "20×20"}, Materials: "Wood frame with acrylic panels", CollectionSlug: "floating", InStock: true},
	{Slug: "gallery-set-5pc", Name: "Gallery Wall Set - 5 Pieces", Description: "Curated set of 5 coordinating frames for a stunning gallery wall.", Price: 8999, Sizes: []string{"Set of 5 (various sizes)"}, Materials: "Solid wood frames, glass fronts, hanging hardware included", CollectionSlug: "gallery-sets", InStock: true, Featured: true},
}

// SeedCatalog upserts the shop collections and ready-made products by slug.
func SeedCatalog(ctx context.Context, collectionsCol, productsCol *mongo.Collection) error {
	upsert := options.UpdateOne().SetUpsert(true)
	now := time.Now().UTC()

	for _, col := range seedCollections {
		_, err := collectionsCol.UpdateOne(ctx, bson.M{"slug": col.Slug}, bson.M{
			"$setOnInsert": bson.M{
				"slug":        col.Slug,
				"name":        col.Name,
				"description": col.Description,
				"featured":    col.Featured,
				"order":       col.Order,
			},
		}, upsert)
		if err != nil {
			return fmt.Errorf("seed collection %s: %w", col.Slug, err)
		}
	}

	for _, p := range seedProducts {
		_, err := productsCol.UpdateOne(ctx, bson.M{"slug": p.Slug}, bson.M{
			"$setOnInsert": bson.M{
				"slug":           p.Slug,
				"name":           p.Name,
				"description":    p.Description,
				"price":          p.Price,
				"images":         []string{},
				"sizes":          p.Sizes,
				"materials":      p.Materials,
				"collectionSlug": p.CollectionSlug,
				"inStock":        p.InStock,
				"featured":       p.Featured,
				"createdAt":      now,
			},
		}, upsert)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}

	return nil
}
