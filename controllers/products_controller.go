package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/database"
	"github.com/modelhomeart/mhabackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetProducts returns the ready-made catalog, optionally filtered by
// collection slug or featured flag.
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{"inStock": true}
		if slug := c.Query("collection"); slug != "" {
			filter["collectionSlug"] = slug
		}
		if c.Query("featured") == "true" {
			filter["featured"] = true
		}

		collection := database.OpenCollection("products")
		cursor, err := collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
		if err != nil {
			log.Printf("product list failed: %v", err)
			serverError(c, "Failed to fetch products", "DB_READ_FAILED")
			return
		}

		products := []models.Product{}
		if err := cursor.All(ctx, &products); err != nil {
			log.Printf("product decode failed: %v", err)
			serverError(c, "Failed to fetch products", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func GetProductBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var product models.Product
		err := database.OpenCollection("products").FindOne(ctx, bson.M{"slug": c.Param("slug")}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Printf("product fetch failed: %v", err)
			serverError(c, "Failed to fetch product", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GetCollections lists the catalog's collections in display order.
func GetCollections() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := database.OpenCollection("collections").Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
		if err != nil {
			log.Printf("collection list failed: %v", err)
			serverError(c, "Failed to fetch collections", "DB_READ_FAILED")
			return
		}

		collections := []models.Collection{}
		if err := cursor.All(ctx, &collections); err != nil {
			log.Printf("collection decode failed: %v", err)
			serverError(c, "Failed to fetch collections", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}
